package kernel

import (
	"github.com/tphakala/go-audio-sampleconv/internal/dither"
	"github.com/tphakala/go-audio-sampleconv/internal/sample"
)

const (
	inv2147483648 = 1.0 / 2147483648.0
	inv32768      = float32(1.0 / 32768.0)
	inv128        = float32(1.0 / 128.0)
)

// Integer conversions widen by shifting left and narrow by keeping the high
// bits. Dithered narrowing adds the dither to the source shifted right by
// one bit; it is not clipped and wraps at the extremes.

func int32ToFloat32(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	ss, ds := srcStride*4, dstStride*4
	for i := range count {
		v := sample.LoadInt32(src, i*ss)
		sample.StoreFloat32(dst, i*ds, float32(float64(v)*inv2147483648))
	}
}

func int32ToInt24(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	ss, ds := srcStride*4, dstStride*3
	for i := range count {
		sample.StoreInt24(dst, i*ds, sample.LoadInt32(src, i*ss))
	}
}

func int32ToInt16(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	ss, ds := srcStride*4, dstStride*2
	for i := range count {
		sample.StoreInt16(dst, i*ds, int16(sample.LoadInt32(src, i*ss)>>16))
	}
}

func int32ToInt16Dither(dst []byte, dstStride int, src []byte, srcStride int, count int, g *dither.Generator) {
	ss, ds := srcStride*4, dstStride*2
	for i := range count {
		d := g.Int16()
		v := sample.LoadInt32(src, i*ss)
		sample.StoreInt16(dst, i*ds, int16(((v>>1)+d)>>15))
	}
}

func int32ToInt8(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	ss := srcStride * 4
	for i := range count {
		dst[i*dstStride] = byte(sample.LoadInt32(src, i*ss) >> 24)
	}
}

func int32ToInt8Dither(dst []byte, dstStride int, src []byte, srcStride int, count int, g *dither.Generator) {
	ss := srcStride * 4
	for i := range count {
		d := g.Int16()
		v := sample.LoadInt32(src, i*ss)
		dst[i*dstStride] = byte(((v >> 1) + d) >> 23)
	}
}

func int32ToUInt8(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	ss := srcStride * 4
	for i := range count {
		dst[i*dstStride] = byte((sample.LoadInt32(src, i*ss) >> 24) + 128)
	}
}

func int24ToFloat32(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	ss, ds := srcStride*3, dstStride*4
	for i := range count {
		v := sample.LoadInt24(src, i*ss)
		sample.StoreFloat32(dst, i*ds, float32(float64(v)*inv2147483648))
	}
}

func int24ToInt32(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	ss, ds := srcStride*3, dstStride*4
	for i := range count {
		sample.StoreInt32(dst, i*ds, sample.LoadInt24(src, i*ss))
	}
}

func int24ToInt16(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	ss, ds := srcStride*3, dstStride*2
	for i := range count {
		sample.StoreInt16(dst, i*ds, int16(sample.LoadInt24(src, i*ss)>>16))
	}
}

func int24ToInt16Dither(dst []byte, dstStride int, src []byte, srcStride int, count int, g *dither.Generator) {
	ss, ds := srcStride*3, dstStride*2
	for i := range count {
		d := g.Int16()
		v := sample.LoadInt24(src, i*ss)
		sample.StoreInt16(dst, i*ds, int16(((v>>1)+d)>>15))
	}
}

func int24ToInt8(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	ss := srcStride * 3
	for i := range count {
		dst[i*dstStride] = byte(sample.LoadInt24(src, i*ss) >> 24)
	}
}

func int24ToInt8Dither(dst []byte, dstStride int, src []byte, srcStride int, count int, g *dither.Generator) {
	ss := srcStride * 3
	for i := range count {
		d := g.Int16()
		v := sample.LoadInt24(src, i*ss)
		dst[i*dstStride] = byte(((v >> 1) + d) >> 23)
	}
}

func int24ToUInt8(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	ss := srcStride * 3
	for i := range count {
		dst[i*dstStride] = byte((sample.LoadInt24(src, i*ss) >> 24) + 128)
	}
}

func int16ToFloat32(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	ss, ds := srcStride*2, dstStride*4
	for i := range count {
		sample.StoreFloat32(dst, i*ds, float32(sample.LoadInt16(src, i*ss))*inv32768)
	}
}

func int16ToInt32(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	ss, ds := srcStride*2, dstStride*4
	for i := range count {
		sample.StoreInt32(dst, i*ds, int32(sample.LoadInt16(src, i*ss))<<16)
	}
}

func int16ToInt24(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	ss, ds := srcStride*2, dstStride*3
	for i := range count {
		sample.StoreInt24(dst, i*ds, int32(sample.LoadInt16(src, i*ss))<<16)
	}
}

func int16ToInt8(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	ss := srcStride * 2
	for i := range count {
		dst[i*dstStride] = byte(sample.LoadInt16(src, i*ss) >> 8)
	}
}

func int16ToUInt8(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	ss := srcStride * 2
	for i := range count {
		dst[i*dstStride] = byte((sample.LoadInt16(src, i*ss) >> 8) + 128)
	}
}

func int8ToFloat32(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	ds := dstStride * 4
	for i := range count {
		sample.StoreFloat32(dst, i*ds, float32(int8(src[i*srcStride]))*inv128)
	}
}

func int8ToInt32(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	ds := dstStride * 4
	for i := range count {
		sample.StoreInt32(dst, i*ds, int32(int8(src[i*srcStride]))<<24)
	}
}

func int8ToInt24(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	ds := dstStride * 3
	for i := range count {
		sample.StoreInt24(dst, i*ds, int32(int8(src[i*srcStride]))<<24)
	}
}

func int8ToInt16(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	ds := dstStride * 2
	for i := range count {
		sample.StoreInt16(dst, i*ds, int16(int8(src[i*srcStride]))<<8)
	}
}

func int8ToUInt8(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	for i := range count {
		dst[i*dstStride] = src[i*srcStride] + 128
	}
}

// unsigned8 converts an offset-binary 8-bit sample to its signed value.
func unsigned8(u byte) int32 {
	return int32(u) - 128
}

func uint8ToFloat32(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	ds := dstStride * 4
	for i := range count {
		sample.StoreFloat32(dst, i*ds, float32(unsigned8(src[i*srcStride]))*inv128)
	}
}

func uint8ToInt32(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	ds := dstStride * 4
	for i := range count {
		sample.StoreInt32(dst, i*ds, unsigned8(src[i*srcStride])<<24)
	}
}

func uint8ToInt24(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	ds := dstStride * 3
	for i := range count {
		sample.StoreInt24(dst, i*ds, unsigned8(src[i*srcStride])<<24)
	}
}

func uint8ToInt16(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	ds := dstStride * 2
	for i := range count {
		sample.StoreInt16(dst, i*ds, int16(unsigned8(src[i*srcStride])<<8))
	}
}

func uint8ToInt8(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	for i := range count {
		dst[i*dstStride] = src[i*srcStride] - 128
	}
}
