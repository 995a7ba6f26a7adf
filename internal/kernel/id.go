// Package kernel holds the converter identities and the portable per-sample
// conversion kernels. Every kernel reads count samples from src, writes count
// samples to dst, and advances each buffer by its stride (in samples) after
// every element. Buffers hold samples in host byte order.
package kernel

import (
	"github.com/tphakala/go-audio-sampleconv/internal/dither"
	"github.com/tphakala/go-audio-sampleconv/internal/sample"
)

// Func converts count samples. The dither generator may be nil for
// variants that do not dither.
type Func func(dst []byte, dstStride int, src []byte, srcStride int, count int, g *dither.Generator)

// ZeroFunc writes count silent samples.
type ZeroFunc func(dst []byte, dstStride int, count int)

// ID identifies one converter in the table.
type ID uint8

// Converter identities. The order is stable.
const (
	Float32ToInt32 ID = iota
	Float32ToInt32Dither
	Float32ToInt32Clip
	Float32ToInt32DitherClip

	Float32ToInt24
	Float32ToInt24Dither
	Float32ToInt24Clip
	Float32ToInt24DitherClip

	Float32ToInt16
	Float32ToInt16Dither
	Float32ToInt16Clip
	Float32ToInt16DitherClip

	Float32ToInt8
	Float32ToInt8Dither
	Float32ToInt8Clip
	Float32ToInt8DitherClip

	Float32ToUInt8
	Float32ToUInt8Dither
	Float32ToUInt8Clip
	Float32ToUInt8DitherClip

	Int32ToFloat32
	Int32ToInt24
	Int32ToInt24Dither
	Int32ToInt16
	Int32ToInt16Dither
	Int32ToInt8
	Int32ToInt8Dither
	Int32ToUInt8
	Int32ToUInt8Dither

	Int24ToFloat32
	Int24ToInt32
	Int24ToInt16
	Int24ToInt16Dither
	Int24ToInt8
	Int24ToInt8Dither
	Int24ToUInt8
	Int24ToUInt8Dither

	Int16ToFloat32
	Int16ToInt32
	Int16ToInt24
	Int16ToInt8
	Int16ToInt8Dither
	Int16ToUInt8
	Int16ToUInt8Dither

	Int8ToFloat32
	Int8ToInt32
	Int8ToInt24
	Int8ToInt16
	Int8ToUInt8

	UInt8ToFloat32
	UInt8ToInt32
	UInt8ToInt24
	UInt8ToInt16
	UInt8ToInt8

	Copy8
	Copy16
	Copy24
	Copy32

	NumIDs
)

// Variant flags of a converter.
const (
	variantDither = 1 << iota
	variantClip
)

type idInfo struct {
	name    string
	src     sample.Kind
	dst     sample.Kind
	variant uint8
}

var ids = [NumIDs]idInfo{
	Float32ToInt32:           {"Float32ToInt32", sample.Float32, sample.Int32, 0},
	Float32ToInt32Dither:     {"Float32ToInt32Dither", sample.Float32, sample.Int32, variantDither},
	Float32ToInt32Clip:       {"Float32ToInt32Clip", sample.Float32, sample.Int32, variantClip},
	Float32ToInt32DitherClip: {"Float32ToInt32DitherClip", sample.Float32, sample.Int32, variantDither | variantClip},

	Float32ToInt24:           {"Float32ToInt24", sample.Float32, sample.Int24, 0},
	Float32ToInt24Dither:     {"Float32ToInt24Dither", sample.Float32, sample.Int24, variantDither},
	Float32ToInt24Clip:       {"Float32ToInt24Clip", sample.Float32, sample.Int24, variantClip},
	Float32ToInt24DitherClip: {"Float32ToInt24DitherClip", sample.Float32, sample.Int24, variantDither | variantClip},

	Float32ToInt16:           {"Float32ToInt16", sample.Float32, sample.Int16, 0},
	Float32ToInt16Dither:     {"Float32ToInt16Dither", sample.Float32, sample.Int16, variantDither},
	Float32ToInt16Clip:       {"Float32ToInt16Clip", sample.Float32, sample.Int16, variantClip},
	Float32ToInt16DitherClip: {"Float32ToInt16DitherClip", sample.Float32, sample.Int16, variantDither | variantClip},

	Float32ToInt8:           {"Float32ToInt8", sample.Float32, sample.Int8, 0},
	Float32ToInt8Dither:     {"Float32ToInt8Dither", sample.Float32, sample.Int8, variantDither},
	Float32ToInt8Clip:       {"Float32ToInt8Clip", sample.Float32, sample.Int8, variantClip},
	Float32ToInt8DitherClip: {"Float32ToInt8DitherClip", sample.Float32, sample.Int8, variantDither | variantClip},

	Float32ToUInt8:           {"Float32ToUInt8", sample.Float32, sample.UInt8, 0},
	Float32ToUInt8Dither:     {"Float32ToUInt8Dither", sample.Float32, sample.UInt8, variantDither},
	Float32ToUInt8Clip:       {"Float32ToUInt8Clip", sample.Float32, sample.UInt8, variantClip},
	Float32ToUInt8DitherClip: {"Float32ToUInt8DitherClip", sample.Float32, sample.UInt8, variantDither | variantClip},

	Int32ToFloat32:     {"Int32ToFloat32", sample.Int32, sample.Float32, 0},
	Int32ToInt24:       {"Int32ToInt24", sample.Int32, sample.Int24, 0},
	Int32ToInt24Dither: {"Int32ToInt24Dither", sample.Int32, sample.Int24, variantDither},
	Int32ToInt16:       {"Int32ToInt16", sample.Int32, sample.Int16, 0},
	Int32ToInt16Dither: {"Int32ToInt16Dither", sample.Int32, sample.Int16, variantDither},
	Int32ToInt8:        {"Int32ToInt8", sample.Int32, sample.Int8, 0},
	Int32ToInt8Dither:  {"Int32ToInt8Dither", sample.Int32, sample.Int8, variantDither},
	Int32ToUInt8:       {"Int32ToUInt8", sample.Int32, sample.UInt8, 0},
	Int32ToUInt8Dither: {"Int32ToUInt8Dither", sample.Int32, sample.UInt8, variantDither},

	Int24ToFloat32:     {"Int24ToFloat32", sample.Int24, sample.Float32, 0},
	Int24ToInt32:       {"Int24ToInt32", sample.Int24, sample.Int32, 0},
	Int24ToInt16:       {"Int24ToInt16", sample.Int24, sample.Int16, 0},
	Int24ToInt16Dither: {"Int24ToInt16Dither", sample.Int24, sample.Int16, variantDither},
	Int24ToInt8:        {"Int24ToInt8", sample.Int24, sample.Int8, 0},
	Int24ToInt8Dither:  {"Int24ToInt8Dither", sample.Int24, sample.Int8, variantDither},
	Int24ToUInt8:       {"Int24ToUInt8", sample.Int24, sample.UInt8, 0},
	Int24ToUInt8Dither: {"Int24ToUInt8Dither", sample.Int24, sample.UInt8, variantDither},

	Int16ToFloat32:     {"Int16ToFloat32", sample.Int16, sample.Float32, 0},
	Int16ToInt32:       {"Int16ToInt32", sample.Int16, sample.Int32, 0},
	Int16ToInt24:       {"Int16ToInt24", sample.Int16, sample.Int24, 0},
	Int16ToInt8:        {"Int16ToInt8", sample.Int16, sample.Int8, 0},
	Int16ToInt8Dither:  {"Int16ToInt8Dither", sample.Int16, sample.Int8, variantDither},
	Int16ToUInt8:       {"Int16ToUInt8", sample.Int16, sample.UInt8, 0},
	Int16ToUInt8Dither: {"Int16ToUInt8Dither", sample.Int16, sample.UInt8, variantDither},

	Int8ToFloat32: {"Int8ToFloat32", sample.Int8, sample.Float32, 0},
	Int8ToInt32:   {"Int8ToInt32", sample.Int8, sample.Int32, 0},
	Int8ToInt24:   {"Int8ToInt24", sample.Int8, sample.Int24, 0},
	Int8ToInt16:   {"Int8ToInt16", sample.Int8, sample.Int16, 0},
	Int8ToUInt8:   {"Int8ToUInt8", sample.Int8, sample.UInt8, 0},

	UInt8ToFloat32: {"UInt8ToFloat32", sample.UInt8, sample.Float32, 0},
	UInt8ToInt32:   {"UInt8ToInt32", sample.UInt8, sample.Int32, 0},
	UInt8ToInt24:   {"UInt8ToInt24", sample.UInt8, sample.Int24, 0},
	UInt8ToInt16:   {"UInt8ToInt16", sample.UInt8, sample.Int16, 0},
	UInt8ToInt8:    {"UInt8ToInt8", sample.UInt8, sample.Int8, 0},

	Copy8:  {"Copy8", sample.Int8, sample.Int8, 0},
	Copy16: {"Copy16", sample.Int16, sample.Int16, 0},
	Copy24: {"Copy24", sample.Int24, sample.Int24, 0},
	Copy32: {"Copy32", sample.Int32, sample.Int32, 0},
}

// String returns the converter name.
func (id ID) String() string {
	if id >= NumIDs {
		return "Unknown"
	}
	return ids[id].name
}

// Source returns the element encoding the converter reads. Copy converters
// report the integer encoding of their width.
func (id ID) Source() sample.Kind { return ids[id].src }

// Dest returns the element encoding the converter writes.
func (id ID) Dest() sample.Kind { return ids[id].dst }

// Dithers reports whether the converter adds dither.
func (id ID) Dithers() bool { return ids[id].variant&variantDither != 0 }

// Clips reports whether the converter clamps out-of-range input.
func (id ID) Clips() bool { return ids[id].variant&variantClip != 0 }

// IsCopy reports whether the converter copies samples unchanged.
func (id ID) IsCopy() bool { return id >= Copy8 && id <= Copy32 }

// CopyFor returns the copy converter for an element width in bytes.
func CopyFor(width int) ID {
	switch width {
	case 1:
		return Copy8
	case 2:
		return Copy16
	case 3:
		return Copy24
	default:
		return Copy32
	}
}
