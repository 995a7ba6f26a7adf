package kernel

import (
	"github.com/tphakala/go-audio-sampleconv/internal/dither"
	"github.com/tphakala/go-audio-sampleconv/internal/sample"
)

// Full-scale multipliers. The dithered variants use one step less so the
// added dither cannot overflow the destination.
const (
	scale32       = 2147483647.0
	scale32Dither = 2147483646.0
	scale16       = 32767.0
	scale16Dither = 32766.0
	scale8        = 127.0
	scale8Dither  = 126.0

	clip32Min = -2147483648.0
	clip32Max = 2147483647.0
)

// Conversions from float32 truncate toward zero. Unclipped variants wrap
// when the input lies outside [-1, 1]; the clip variants saturate.
// Products are converted explicitly before additions so no multiply-add is
// fused and every strategy rounds identically.

func clampFloat64(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func float32ToInt32(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	ss, ds := srcStride*4, dstStride*4
	for i := range count {
		scaled := float64(sample.LoadFloat32(src, i*ss)) * scale32
		sample.StoreInt32(dst, i*ds, int32(scaled))
	}
}

func float32ToInt32Dither(dst []byte, dstStride int, src []byte, srcStride int, count int, g *dither.Generator) {
	ss, ds := srcStride*4, dstStride*4
	for i := range count {
		d := g.Float()
		dithered := float64(float64(sample.LoadFloat32(src, i*ss))*scale32Dither) + float64(d)
		sample.StoreInt32(dst, i*ds, int32(dithered))
	}
}

func float32ToInt32Clip(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	ss, ds := srcStride*4, dstStride*4
	for i := range count {
		scaled := clampFloat64(float64(sample.LoadFloat32(src, i*ss))*scale32, clip32Min, clip32Max)
		sample.StoreInt32(dst, i*ds, int32(scaled))
	}
}

func float32ToInt32DitherClip(dst []byte, dstStride int, src []byte, srcStride int, count int, g *dither.Generator) {
	ss, ds := srcStride*4, dstStride*4
	for i := range count {
		d := g.Float()
		dithered := float64(float64(sample.LoadFloat32(src, i*ss))*scale32Dither) + float64(d)
		sample.StoreInt32(dst, i*ds, int32(clampFloat64(dithered, clip32Min, clip32Max)))
	}
}

func float32ToInt24(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	ss, ds := srcStride*4, dstStride*3
	for i := range count {
		scaled := float64(sample.LoadFloat32(src, i*ss)) * scale32
		sample.StoreInt24(dst, i*ds, int32(scaled))
	}
}

func float32ToInt24Dither(dst []byte, dstStride int, src []byte, srcStride int, count int, g *dither.Generator) {
	ss, ds := srcStride*4, dstStride*3
	for i := range count {
		d := g.Float24()
		dithered := float64(float64(sample.LoadFloat32(src, i*ss))*scale32Dither) + float64(d)
		sample.StoreInt24(dst, i*ds, int32(dithered))
	}
}

func float32ToInt24Clip(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	ss, ds := srcStride*4, dstStride*3
	for i := range count {
		scaled := clampFloat64(float64(sample.LoadFloat32(src, i*ss))*scale32, clip32Min, clip32Max)
		sample.StoreInt24(dst, i*ds, int32(scaled))
	}
}

func float32ToInt24DitherClip(dst []byte, dstStride int, src []byte, srcStride int, count int, g *dither.Generator) {
	ss, ds := srcStride*4, dstStride*3
	for i := range count {
		d := g.Float24()
		dithered := float64(float64(sample.LoadFloat32(src, i*ss))*scale32Dither) + float64(d)
		sample.StoreInt24(dst, i*ds, int32(clampFloat64(dithered, clip32Min, clip32Max)))
	}
}

func float32ToInt16(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	ss, ds := srcStride*4, dstStride*2
	for i := range count {
		scaled := sample.LoadFloat32(src, i*ss) * scale16
		sample.StoreInt16(dst, i*ds, int16(int32(scaled)))
	}
}

func float32ToInt16Dither(dst []byte, dstStride int, src []byte, srcStride int, count int, g *dither.Generator) {
	ss, ds := srcStride*4, dstStride*2
	for i := range count {
		d := g.Float()
		dithered := float32(sample.LoadFloat32(src, i*ss)*scale16Dither) + d
		sample.StoreInt16(dst, i*ds, int16(int32(dithered)))
	}
}

func float32ToInt16Clip(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	ss, ds := srcStride*4, dstStride*2
	for i := range count {
		scaled := clampFloat32(sample.LoadFloat32(src, i*ss)*scale16, -32768, 32767)
		sample.StoreInt16(dst, i*ds, int16(scaled))
	}
}

func float32ToInt16DitherClip(dst []byte, dstStride int, src []byte, srcStride int, count int, g *dither.Generator) {
	ss, ds := srcStride*4, dstStride*2
	for i := range count {
		d := g.Float()
		dithered := float32(sample.LoadFloat32(src, i*ss)*scale16Dither) + d
		sample.StoreInt16(dst, i*ds, int16(clampFloat32(dithered, -32768, 32767)))
	}
}

func float32ToInt8(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	ss := srcStride * 4
	for i := range count {
		scaled := sample.LoadFloat32(src, i*ss) * scale8
		dst[i*dstStride] = byte(int32(scaled))
	}
}

func float32ToInt8Dither(dst []byte, dstStride int, src []byte, srcStride int, count int, g *dither.Generator) {
	ss := srcStride * 4
	for i := range count {
		d := g.Float()
		dithered := float32(sample.LoadFloat32(src, i*ss)*scale8Dither) + d
		dst[i*dstStride] = byte(int32(dithered))
	}
}

func float32ToInt8Clip(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	ss := srcStride * 4
	for i := range count {
		scaled := clampFloat32(sample.LoadFloat32(src, i*ss)*scale8, -128, 127)
		dst[i*dstStride] = byte(int32(scaled))
	}
}

func float32ToInt8DitherClip(dst []byte, dstStride int, src []byte, srcStride int, count int, g *dither.Generator) {
	ss := srcStride * 4
	for i := range count {
		d := g.Float()
		dithered := float32(sample.LoadFloat32(src, i*ss)*scale8Dither) + d
		dst[i*dstStride] = byte(int32(clampFloat32(dithered, -128, 127)))
	}
}

func float32ToUInt8(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	ss := srcStride * 4
	for i := range count {
		scaled := sample.LoadFloat32(src, i*ss) * scale8
		dst[i*dstStride] = byte(128 + int32(scaled))
	}
}

func float32ToUInt8Dither(dst []byte, dstStride int, src []byte, srcStride int, count int, g *dither.Generator) {
	ss := srcStride * 4
	for i := range count {
		d := g.Float()
		dithered := float32(sample.LoadFloat32(src, i*ss)*scale8Dither) + d
		dst[i*dstStride] = byte(128 + int32(dithered))
	}
}

func float32ToUInt8Clip(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	ss := srcStride * 4
	for i := range count {
		scaled := clampFloat32(sample.LoadFloat32(src, i*ss)*scale8, -128, 127)
		dst[i*dstStride] = byte(128 + int32(scaled))
	}
}

func float32ToUInt8DitherClip(dst []byte, dstStride int, src []byte, srcStride int, count int, g *dither.Generator) {
	ss := srcStride * 4
	for i := range count {
		d := g.Float()
		dithered := float32(sample.LoadFloat32(src, i*ss)*scale8Dither) + d
		dst[i*dstStride] = byte(128 + int32(clampFloat32(dithered, -128, 127)))
	}
}
