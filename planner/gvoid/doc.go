// Package gvoid groups the layered group-void disassembler under the
// shared planner framework. See Disassemble.
package gvoid
