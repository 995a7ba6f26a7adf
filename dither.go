package sampleconv

import "github.com/tphakala/go-audio-sampleconv/internal/dither"

// DitherState is the state of one dither stream. Use one per channel and
// stream; it is not safe for concurrent use.
type DitherState = dither.Generator

// NewDitherState returns a dither stream in its initial state.
func NewDitherState() *DitherState {
	return dither.New()
}
