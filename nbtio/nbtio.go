// Package nbtio is a thin byte-stream wrapper around model and command's
// codecs: it owns no business logic, only the conventions of reading and
// writing whole .mdl and .nbt files.
package nbtio

import (
	"github.com/voxelfab/nanofab/command"
	"github.com/voxelfab/nanofab/model"
)

// ReadModelFile decodes the full contents of a .mdl file into a Matrix.
// See model.ReadModel for the byte layout.
func ReadModelFile(b []byte) (*model.Matrix, error) {
	return model.ReadModel(b)
}

// WriteModelFile encodes m into the .mdl byte layout, ready to be written
// to disk as-is.
func WriteModelFile(m *model.Matrix) []byte {
	return model.WriteModel(m)
}

// ReadTraceFile decodes the full, headerless contents of a .nbt file into
// a command sequence. See command.DecodeTrace.
func ReadTraceFile(b []byte) ([]command.Command, error) {
	return command.DecodeTrace(b)
}

// WriteTraceFile concatenates the encoding of every command in trace, in
// order, with no header: the .nbt file is this byte slice verbatim.
func WriteTraceFile(trace []command.Command) []byte {
	return command.EncodeTrace(trace)
}
