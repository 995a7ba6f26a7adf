package sampleconv

import "unsafe"

// Sample is the constraint for typed sample slices.
type Sample interface {
	~float32 | ~int32 | ~int16 | ~int8 | ~uint8
}

// Bytes returns the memory of s as a byte slice without copying, ready for
// Convert. Writes through the result change s.
func Bytes[T Sample](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(zero)))
}
