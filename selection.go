package sampleconv

import (
	"github.com/tphakala/go-audio-sampleconv/internal/kernel"
	"github.com/tphakala/go-audio-sampleconv/internal/sample"
)

// ruleMode says which flag combinations a source/destination pair
// distinguishes.
type ruleMode uint8

const (
	// modePlain ignores both flags: widening, integer to float and the
	// Int8/UInt8 offset change.
	modePlain ruleMode = iota

	// modeDither honors DitherOff only: integer narrowing by shifts cannot
	// overflow, so there is no clip variant.
	modeDither

	// modeFull honors both flags: float to integer.
	modeFull
)

type rule struct {
	mode                            ruleMode
	plain, dither, clip, ditherClip kernel.ID
}

func plainRule(id kernel.ID) rule { return rule{mode: modePlain, plain: id} }

func ditherRule(plain, dither kernel.ID) rule {
	return rule{mode: modeDither, plain: plain, dither: dither}
}

func fullRule(plain, dither, clip, ditherClip kernel.ID) rule {
	return rule{mode: modeFull, plain: plain, dither: dither, clip: clip, ditherClip: ditherClip}
}

// rules holds the converter choice for every distinct encoding pair.
// The diagonal is unused; identical encodings always copy.
var rules = [sample.NumKinds][sample.NumKinds]rule{
	sample.Float32: {
		sample.Int32: fullRule(kernel.Float32ToInt32, kernel.Float32ToInt32Dither, kernel.Float32ToInt32Clip, kernel.Float32ToInt32DitherClip),
		sample.Int24: fullRule(kernel.Float32ToInt24, kernel.Float32ToInt24Dither, kernel.Float32ToInt24Clip, kernel.Float32ToInt24DitherClip),
		sample.Int16: fullRule(kernel.Float32ToInt16, kernel.Float32ToInt16Dither, kernel.Float32ToInt16Clip, kernel.Float32ToInt16DitherClip),
		sample.Int8:  fullRule(kernel.Float32ToInt8, kernel.Float32ToInt8Dither, kernel.Float32ToInt8Clip, kernel.Float32ToInt8DitherClip),
		sample.UInt8: fullRule(kernel.Float32ToUInt8, kernel.Float32ToUInt8Dither, kernel.Float32ToUInt8Clip, kernel.Float32ToUInt8DitherClip),
	},
	sample.Int32: {
		sample.Float32: plainRule(kernel.Int32ToFloat32),
		sample.Int24:   ditherRule(kernel.Int32ToInt24, kernel.Int32ToInt24Dither),
		sample.Int16:   ditherRule(kernel.Int32ToInt16, kernel.Int32ToInt16Dither),
		sample.Int8:    ditherRule(kernel.Int32ToInt8, kernel.Int32ToInt8Dither),
		sample.UInt8:   ditherRule(kernel.Int32ToUInt8, kernel.Int32ToUInt8Dither),
	},
	sample.Int24: {
		sample.Float32: plainRule(kernel.Int24ToFloat32),
		sample.Int32:   plainRule(kernel.Int24ToInt32),
		sample.Int16:   ditherRule(kernel.Int24ToInt16, kernel.Int24ToInt16Dither),
		sample.Int8:    ditherRule(kernel.Int24ToInt8, kernel.Int24ToInt8Dither),
		sample.UInt8:   ditherRule(kernel.Int24ToUInt8, kernel.Int24ToUInt8Dither),
	},
	sample.Int16: {
		sample.Float32: plainRule(kernel.Int16ToFloat32),
		sample.Int32:   plainRule(kernel.Int16ToInt32),
		sample.Int24:   plainRule(kernel.Int16ToInt24),
		sample.Int8:    ditherRule(kernel.Int16ToInt8, kernel.Int16ToInt8Dither),
		sample.UInt8:   ditherRule(kernel.Int16ToUInt8, kernel.Int16ToUInt8Dither),
	},
	sample.Int8: {
		sample.Float32: plainRule(kernel.Int8ToFloat32),
		sample.Int32:   plainRule(kernel.Int8ToInt32),
		sample.Int24:   plainRule(kernel.Int8ToInt24),
		sample.Int16:   plainRule(kernel.Int8ToInt16),
		sample.UInt8:   plainRule(kernel.Int8ToUInt8),
	},
	sample.UInt8: {
		sample.Float32: plainRule(kernel.UInt8ToFloat32),
		sample.Int32:   plainRule(kernel.UInt8ToInt32),
		sample.Int24:   plainRule(kernel.UInt8ToInt24),
		sample.Int16:   plainRule(kernel.UInt8ToInt16),
		sample.Int8:    plainRule(kernel.UInt8ToInt8),
	},
}

// resolve maps an encoding pair and the enabled processing to a converter.
func resolve(src, dst sample.Kind, ditherOn, clip bool) kernel.ID {
	if src == dst {
		return kernel.CopyFor(src.Width())
	}
	r := rules[src][dst]
	switch r.mode {
	case modeFull:
		switch {
		case ditherOn && clip:
			return r.ditherClip
		case ditherOn:
			return r.dither
		case clip:
			return r.clip
		default:
			return r.plain
		}
	case modeDither:
		if ditherOn {
			return r.dither
		}
		return r.plain
	default:
		return r.plain
	}
}
