package kernel

import "github.com/tphakala/go-audio-sampleconv/internal/sample"

// silenceUInt8 is the offset-binary zero level.
const silenceUInt8 = 0x80

func fill(width int, value byte, dst []byte, dstStride int, count int) {
	if count <= 0 {
		return
	}
	if dstStride == 1 {
		span := dst[:count*width]
		for i := range span {
			span[i] = value
		}
		return
	}
	ds := dstStride * width
	for i := range count {
		b := dst[i*ds : i*ds+width]
		for j := range b {
			b[j] = value
		}
	}
}

func zeroU8(dst []byte, dstStride int, count int) { fill(1, silenceUInt8, dst, dstStride, count) }
func zero8(dst []byte, dstStride int, count int)  { fill(1, 0, dst, dstStride, count) }
func zero16(dst []byte, dstStride int, count int) { fill(2, 0, dst, dstStride, count) }
func zero24(dst []byte, dstStride int, count int) { fill(3, 0, dst, dstStride, count) }
func zero32(dst []byte, dstStride int, count int) { fill(4, 0, dst, dstStride, count) }

// Zeroer returns the silence writer for an element encoding. Float32 silence
// is all-zero bits, so it shares the 32-bit writer.
func Zeroer(k sample.Kind) ZeroFunc {
	switch k {
	case sample.UInt8:
		return zeroU8
	case sample.Int8:
		return zero8
	case sample.Int16:
		return zero16
	case sample.Int24:
		return zero24
	default:
		return zero32
	}
}
