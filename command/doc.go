// Package command defines the per-agent command algebra: the tagged
// variant set Halt/Wait/Flip/SMove/LMove/Fission/Fill/Void/FusionP/FusionS/
// GFill/GVoid, and its bit-exact binary codec.
//
// What
//
//   - Command is a closed tagged union; each variant carries exactly the
//     arguments its wire encoding needs.
//   - Encode/Decode round-trip every syntactically valid command.
//   - Opcode layout:
//   - Singletons (Halt/Wait/Flip) are one full byte: 0xFF/0xFE/0xFD.
//   - SMove:  byte0 = (llcd.axis<<4)|0b0100, byte1 = llcd.magnitude.
//   - LMove:  byte0 = (slcd2.axis<<6)|(slcd1.axis<<4)|0b1100,
//     byte1 = (slcd2.magnitude<<4)|slcd1.magnitude.
//   - Fission: byte0 = (ncd<<3)|0b101, byte1 = m.
//   - Fill:    byte0 = (ncd<<3)|0b011.
//   - Void:    byte0 = (ncd<<3)|0b010.
//   - FusionP: byte0 = (ncd<<3)|0b111.
//   - FusionS: byte0 = (ncd<<3)|0b110.
//   - GFill:   byte0 = (ncd<<3)|0b001, bytes1-3 = the fcd's dx, dy, dz, each
//     biased by 30 into one byte.
//   - GVoid:   byte0 = (ncd<<3)|0b000, bytes1-3 as GFill.
//
// Why
//
//   - The codec is the only externally-visible representation of a trace;
//     a bit-exact round trip is a core correctness property.
//
// Errors
//
//   - ErrMalformedCommand: opcode bits match no variant, or trailing bytes
//     run out mid-command.
package command
