// Package endian provides byte order utilities for binary encoding and decoding.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder interfaces into a unified EndianEngine
// interface, used by the staging layer when framing packed k-mer records.
//
// # Basic Usage
//
// Record framing is little endian on every host, matching the in-memory
// layout of the packed word arrays on all supported targets:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint64(buf, word)
//
// # Performance
//
// The Append* methods write directly into the destination slice, avoiding
// the scratch-buffer allocation the plain ByteOrder interface requires.
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian from the standard
// library, making it fully compatible with existing Go code while providing
// access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
