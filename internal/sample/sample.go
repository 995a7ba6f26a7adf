// Package sample describes the sample element encodings and provides
// native-byte-order access to samples stored in byte buffers.
package sample

import (
	"encoding/binary"
	"math"
)

// Kind identifies the encoding of one sample element.
type Kind uint8

// Element encodings ordered from highest to lowest quality.
const (
	Float32 Kind = iota
	Int32
	Int24
	Int16
	Int8
	UInt8
)

// NumKinds is the number of element encodings.
const NumKinds = 6

// Width returns the stored size of one element in bytes.
func (k Kind) Width() int {
	switch k {
	case Float32, Int32:
		return 4
	case Int24:
		return 3
	case Int16:
		return 2
	default:
		return 1
	}
}

// String returns the encoding name.
func (k Kind) String() string {
	switch k {
	case Float32:
		return "Float32"
	case Int32:
		return "Int32"
	case Int24:
		return "Int24"
	case Int16:
		return "Int16"
	case Int8:
		return "Int8"
	case UInt8:
		return "UInt8"
	default:
		return "Unknown"
	}
}

// Integer reports whether k is an integer encoding.
func (k Kind) Integer() bool {
	return k != Float32
}

// LoadFloat32 reads the float32 at byte offset off.
func LoadFloat32(b []byte, off int) float32 {
	return math.Float32frombits(binary.NativeEndian.Uint32(b[off:]))
}

// StoreFloat32 writes v at byte offset off.
func StoreFloat32(b []byte, off int, v float32) {
	binary.NativeEndian.PutUint32(b[off:], math.Float32bits(v))
}

// LoadInt32 reads the int32 at byte offset off.
func LoadInt32(b []byte, off int) int32 {
	return int32(binary.NativeEndian.Uint32(b[off:]))
}

// StoreInt32 writes v at byte offset off.
func StoreInt32(b []byte, off int, v int32) {
	binary.NativeEndian.PutUint32(b[off:], uint32(v))
}

// LoadInt16 reads the int16 at byte offset off.
func LoadInt16(b []byte, off int) int16 {
	return int16(binary.NativeEndian.Uint16(b[off:]))
}

// StoreInt16 writes v at byte offset off.
func StoreInt16(b []byte, off int, v int16) {
	binary.NativeEndian.PutUint16(b[off:], uint16(v))
}

// Int24Value converts a 24-bit sample read with LoadInt24 to its signed
// value in [-8388608, 8388607].
func Int24Value(v int32) int32 {
	return v >> 8
}
