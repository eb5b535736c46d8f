// Package filesystem provides filesystem implementations for carp.
//
// This package contains the OS implementation of the types.FS interface.
package filesystem
