// Package voidpath groups the void-path assembler under the shared
// planner framework. See Assemble.
package voidpath
