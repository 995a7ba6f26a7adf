package sampleconv

import (
	"fmt"
	"strings"

	"github.com/tphakala/go-audio-sampleconv/internal/sample"
)

// SampleFormat is a bit set of sample encodings. A single bit names one
// encoding; several bits describe the formats a device or stream
// supports. Lower bits rank higher in quality.
type SampleFormat uint32

// Sample encodings, best quality first.
const (
	Float32 SampleFormat = 0x00000001
	Int32   SampleFormat = 0x00000002
	Int24   SampleFormat = 0x00000004 // packed, 3 bytes per sample
	Int16   SampleFormat = 0x00000008
	Int8    SampleFormat = 0x00000010
	UInt8   SampleFormat = 0x00000020 // offset binary, silence is 0x80

	// CustomFormat marks a host-specific encoding no converter handles.
	CustomFormat SampleFormat = 0x00010000

	// NonInterleaved marks buffers with one block per channel. It never
	// affects format selection.
	NonInterleaved SampleFormat = 0x80000000
)

// bestFormat and worstFormat bound the quality ordering.
const (
	bestFormat  = Float32
	worstFormat = UInt8
)

var formatKinds = map[SampleFormat]sample.Kind{
	Float32: sample.Float32,
	Int32:   sample.Int32,
	Int24:   sample.Int24,
	Int16:   sample.Int16,
	Int8:    sample.Int8,
	UInt8:   sample.UInt8,
}

var kindFormats = [sample.NumKinds]SampleFormat{
	sample.Float32: Float32,
	sample.Int32:   Int32,
	sample.Int24:   Int24,
	sample.Int16:   Int16,
	sample.Int8:    Int8,
	sample.UInt8:   UInt8,
}

// Base returns f without the NonInterleaved bit.
func (f SampleFormat) Base() SampleFormat {
	return f &^ NonInterleaved
}

// IsNonInterleaved reports whether the NonInterleaved bit is set.
func (f SampleFormat) IsNonInterleaved() bool {
	return f&NonInterleaved != 0
}

// kind returns the element encoding of a single-bit format.
func (f SampleFormat) kind() (sample.Kind, bool) {
	k, ok := formatKinds[f.Base()]
	return k, ok
}

// BytesPerSample returns the stored size of one sample, or 0 if f is not a
// single known encoding.
func (f SampleFormat) BytesPerSample() int {
	k, ok := f.kind()
	if !ok {
		return 0
	}
	return k.Width()
}

// String returns the encoding names joined by "|".
func (f SampleFormat) String() string {
	if f == 0 {
		return "None"
	}
	var parts []string
	for _, b := range []SampleFormat{Float32, Int32, Int24, Int16, Int8, UInt8, CustomFormat, NonInterleaved} {
		if f&b == 0 {
			continue
		}
		switch b {
		case CustomFormat:
			parts = append(parts, "Custom")
		case NonInterleaved:
			parts = append(parts, "NonInterleaved")
		default:
			k, _ := b.kind()
			parts = append(parts, k.String())
		}
		f &^= b
	}
	if f != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(f)))
	}
	return strings.Join(parts, "|")
}

// SelectClosestFormat picks the format to use when format is requested and
// only the formats in available are supported.
//
// The requested format wins if available. Otherwise better formats are
// searched first, nearest first, and then worse ones. A format that is
// already the best skips the upward search. The NonInterleaved bit is
// ignored on both arguments and never set on the result.
func SelectClosestFormat(available, format SampleFormat) (SampleFormat, error) {
	available = available.Base()
	format = format.Base()

	if _, ok := format.kind(); !ok {
		return 0, fmt.Errorf("%w: requested format %s", ErrFormatNotSupported, format)
	}
	if format&available != 0 {
		return format, nil
	}

	if format != bestFormat {
		for f := format >> 1; f >= bestFormat; f >>= 1 {
			if f&available != 0 {
				return f, nil
			}
		}
	}

	for f := format << 1; f <= worstFormat; f <<= 1 {
		if f&available != 0 {
			return f, nil
		}
	}

	return 0, fmt.Errorf("%w: no format near %s in %s", ErrFormatNotSupported, format, available)
}
