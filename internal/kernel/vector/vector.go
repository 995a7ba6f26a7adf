// Package vector provides the 4-lane strategy for the float32 to Int32,
// Int24 and Int16 conversions.
//
// Samples are gathered into fixed blocks, scaled with one SIMD call per
// block, then converted and stored four lanes at a time. Whatever does not
// fill a group of four is handed to the portable kernel, which continues
// the same dither stream. Outputs match the portable kernels exactly except
// for the dithered Int32 variants, which do not dither at 32-bit width.
package vector

import (
	"github.com/tphakala/go-audio-sampleconv/internal/dither"
	"github.com/tphakala/go-audio-sampleconv/internal/kernel"
	"github.com/tphakala/go-audio-sampleconv/internal/sample"
	"github.com/tphakala/go-audio-sampleconv/internal/simdops"
)

const lanes = dither.Lanes

// blockLen is the number of samples scaled per SIMD call. It must be a
// multiple of lanes.
const blockLen = 256

const (
	scale32       = 2147483647.0
	scale32Dither = 2147483646.0
	scale16       = 32767.0
	scale16Dither = 32766.0

	clip32Min = -2147483648.0
	clip32Max = 2147483647.0
	clip16Min = -32768.0
	clip16Max = 32767.0
)

// Priority ranks the vector strategy above the portable one.
const Priority = 10

// wideOp converts float32 to 32-bit integers computed in float64, written as
// Int32 or packed Int24.
type wideOp struct {
	scale    float64
	dither   bool
	clip     bool
	width    int
	fallback kernel.ID
}

func (op wideOp) convert(dst []byte, dstStride int, src []byte, srcStride int, count int, g *dither.Generator) {
	var raw, scaled [blockLen]float64
	ops := simdops.Float64Ops()

	n := count &^ (lanes - 1)
	ss, ds := srcStride*4, dstStride*op.width
	for base := 0; base < n; base += blockLen {
		m := min(blockLen, n-base)
		for j := range m {
			raw[j] = float64(sample.LoadFloat32(src, (base+j)*ss))
		}
		ops.Scale(scaled[:m], raw[:m], op.scale)

		for j := 0; j < m; j += lanes {
			var d [lanes]float32
			if op.dither {
				d = g.Float24x4()
			}
			var v [lanes]int32
			for k := range lanes {
				x := scaled[j+k]
				if op.dither {
					x += float64(d[k])
				}
				if op.clip {
					x = clampFloat64(x, clip32Min, clip32Max)
				}
				v[k] = int32(x)
			}
			off := (base + j) * ds
			if op.width == 3 {
				store24x4(dst, off, dstStride, &v)
			} else {
				store32x4(dst, off, dstStride, &v)
			}
		}
	}

	if rem := count - n; rem > 0 {
		kernel.Scalar(op.fallback)(dst[n*ds:], dstStride, src[n*ss:], srcStride, rem, g)
	}
}

// narrowOp converts float32 to Int16 computed in float32.
type narrowOp struct {
	scale    float32
	dither   bool
	clip     bool
	fallback kernel.ID
}

func (op narrowOp) convert(dst []byte, dstStride int, src []byte, srcStride int, count int, g *dither.Generator) {
	var raw, scaled [blockLen]float32
	ops := simdops.Float32Ops()

	n := count &^ (lanes - 1)
	ss, ds := srcStride*4, dstStride*2
	for base := 0; base < n; base += blockLen {
		m := min(blockLen, n-base)
		for j := range m {
			raw[j] = sample.LoadFloat32(src, (base+j)*ss)
		}
		ops.Scale(scaled[:m], raw[:m], op.scale)

		for j := 0; j < m; j += lanes {
			var d [lanes]float32
			if op.dither {
				d = g.Floatx4()
			}
			var v [lanes]int16
			for k := range lanes {
				x := scaled[j+k] + d[k]
				if op.clip {
					x = clampFloat32(x, clip16Min, clip16Max)
				}
				v[k] = int16(int32(x))
			}
			store16x4(dst, (base+j)*ds, dstStride, &v)
		}
	}

	if rem := count - n; rem > 0 {
		kernel.Scalar(op.fallback)(dst[n*ds:], dstStride, src[n*ss:], srcStride, rem, g)
	}
}

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

var kernels = map[kernel.ID]kernel.Func{
	kernel.Float32ToInt32:           wideOp{scale: scale32, width: 4, fallback: kernel.Float32ToInt32}.convert,
	kernel.Float32ToInt32Dither:     wideOp{scale: scale32, width: 4, fallback: kernel.Float32ToInt32}.convert,
	kernel.Float32ToInt32Clip:       wideOp{scale: scale32, clip: true, width: 4, fallback: kernel.Float32ToInt32Clip}.convert,
	kernel.Float32ToInt32DitherClip: wideOp{scale: scale32, clip: true, width: 4, fallback: kernel.Float32ToInt32Clip}.convert,

	kernel.Float32ToInt24:           wideOp{scale: scale32, width: 3, fallback: kernel.Float32ToInt24}.convert,
	kernel.Float32ToInt24Dither:     wideOp{scale: scale32Dither, dither: true, width: 3, fallback: kernel.Float32ToInt24Dither}.convert,
	kernel.Float32ToInt24Clip:       wideOp{scale: scale32, clip: true, width: 3, fallback: kernel.Float32ToInt24Clip}.convert,
	kernel.Float32ToInt24DitherClip: wideOp{scale: scale32Dither, dither: true, clip: true, width: 3, fallback: kernel.Float32ToInt24DitherClip}.convert,

	kernel.Float32ToInt16:           narrowOp{scale: scale16, fallback: kernel.Float32ToInt16}.convert,
	kernel.Float32ToInt16Dither:     narrowOp{scale: scale16Dither, dither: true, fallback: kernel.Float32ToInt16Dither}.convert,
	kernel.Float32ToInt16Clip:       narrowOp{scale: scale16, clip: true, fallback: kernel.Float32ToInt16Clip}.convert,
	kernel.Float32ToInt16DitherClip: narrowOp{scale: scale16Dither, dither: true, clip: true, fallback: kernel.Float32ToInt16DitherClip}.convert,
}

// Kernels returns the vector kernels by identity. The map must not be
// modified.
func Kernels() map[kernel.ID]kernel.Func {
	return kernels
}

// Kernel returns the vector kernel for id, or nil if id has none.
func Kernel(id kernel.ID) kernel.Func {
	return kernels[id]
}

// Strategy returns the vector strategy for this architecture, or nil when
// the architecture has no SIMD level to tie it to.
func Strategy() *kernel.Strategy {
	level, name, ok := simdLevel()
	if !ok {
		return nil
	}
	return kernel.NewStrategy(name, level, Priority, kernels)
}
