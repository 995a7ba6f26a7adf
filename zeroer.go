package sampleconv

import "github.com/tphakala/go-audio-sampleconv/internal/kernel"

// Zeroer writes silence in one encoding. Silence is zero for every
// encoding except UInt8, whose midpoint is 0x80.
type Zeroer struct {
	format SampleFormat
	fn     kernel.ZeroFunc
}

// Format returns the encoding the zeroer writes.
func (z *Zeroer) Format() SampleFormat { return z.format }

// Zero writes count silent samples to dst at stride. Like Convert it does
// not allocate and panics on a short buffer.
func (z *Zeroer) Zero(dst []byte, dstStride int, count int) {
	if count <= 0 {
		return
	}
	z.fn(dst, dstStride, count)
}
