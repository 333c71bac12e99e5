// Package nbtio wraps model and command's codecs with the file-level
// read/write functions cmd/nanofab calls: see ReadModelFile, WriteModelFile,
// ReadTraceFile, and WriteTraceFile.
//
// What
//
//   - .mdl files decode and encode through model.ReadModel/WriteModel.
//   - .nbt files decode and encode through command.DecodeTrace/EncodeTrace.
//
// Why
//
//   - Keeping the byte-layout knowledge inside model and command (where the
//     rest of each type's invariants already live) and leaving this package
//     as a pass-through avoids a second place that could drift out of sync
//     with the wire format.
//
// Errors
//
//	model.ErrInvalidR, model.ErrTruncatedModel from ReadModelFile;
//	command.ErrMalformedCommand from ReadTraceFile.
package nbtio
