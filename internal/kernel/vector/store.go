package vector

import "github.com/tphakala/go-audio-sampleconv/internal/sample"

func store32x4(dst []byte, off, stride int, v *[lanes]int32) {
	step := stride * 4
	for k := range lanes {
		sample.StoreInt32(dst, off+k*step, v[k])
	}
}

func store16x4(dst []byte, off, stride int, v *[lanes]int16) {
	step := stride * 2
	for k := range lanes {
		sample.StoreInt16(dst, off+k*step, v[k])
	}
}

// store24x4 writes the high 24 bits of four lanes. Contiguous output is laid
// out as four native 32-bit words and compacted to 12 bytes with a shuffle.
func store24x4(dst []byte, off, stride int, v *[lanes]int32) {
	if stride == 1 {
		var wide [4 * lanes]byte
		for k := range lanes {
			sample.StoreInt32(wide[:], 4*k, v[k])
		}
		out := dst[off : off+3*lanes]
		for i, p := range sample.Pack24Shuffle {
			out[i] = wide[p]
		}
		return
	}
	step := stride * 3
	for k := range lanes {
		sample.StoreInt24(dst, off+k*step, v[k])
	}
}
