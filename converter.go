package sampleconv

import (
	"fmt"

	"github.com/tphakala/go-audio-sampleconv/internal/kernel"
)

// Converter converts samples between two encodings. Converters come from a
// Registry and are immutable; one converter may serve any number of
// streams at once as long as each stream has its own DitherState.
type Converter struct {
	id          kernel.ID
	fn          kernel.Func
	src, dst    SampleFormat
	accelerated bool
}

// Name returns the converter identity, e.g. "Float32ToInt16Dither".
func (c *Converter) Name() string { return c.id.String() }

// Source returns the encoding the converter reads.
func (c *Converter) Source() SampleFormat { return c.src }

// Destination returns the encoding the converter writes.
func (c *Converter) Destination() SampleFormat { return c.dst }

// Dithers reports whether Convert consumes dither.
func (c *Converter) Dithers() bool { return c.id.Dithers() }

// Clips reports whether out-of-range input saturates.
func (c *Converter) Clips() bool { return c.id.Clips() }

// Accelerated reports whether the converter runs a vector kernel.
func (c *Converter) Accelerated() bool { return c.accelerated }

// Convert converts count samples from src to dst. Strides are in samples,
// so an interleaved stereo buffer has stride 2. Buffers hold samples in
// host byte order, 24-bit samples packed in 3 bytes.
//
// Convert does not allocate, lock or return errors, and it panics if a
// buffer is shorter than count samples at its stride. d may be nil only
// when Dithers reports false.
func (c *Converter) Convert(dst []byte, dstStride int, src []byte, srcStride int, count int, d *DitherState) {
	if count <= 0 {
		return
	}
	c.fn(dst, dstStride, src, srcStride, count, d)
}

// ConvertInterleaved converts frames of interleaved audio with one dither
// stream per channel. states may be nil when the converter does not dither.
func (c *Converter) ConvertInterleaved(dst, src []byte, channels, frames int, states []*DitherState) error {
	if err := c.checkChannels(channels, states); err != nil {
		return err
	}
	if err := CheckBuffer(src, c.src, 1, channels*frames); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	if err := CheckBuffer(dst, c.dst, 1, channels*frames); err != nil {
		return fmt.Errorf("destination: %w", err)
	}
	if frames <= 0 {
		return nil
	}

	sw, dw := c.src.BytesPerSample(), c.dst.BytesPerSample()
	for ch := range channels {
		c.Convert(dst[ch*dw:], channels, src[ch*sw:], channels, frames, state(states, ch))
	}
	return nil
}

// ConvertNonInterleaved converts one buffer per channel.
func (c *Converter) ConvertNonInterleaved(dst, src [][]byte, frames int, states []*DitherState) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: %d destination and %d source buffers", ErrChannelMismatch, len(dst), len(src))
	}
	if err := c.checkChannels(len(src), states); err != nil {
		return err
	}
	for ch := range src {
		if err := CheckBuffer(src[ch], c.src, 1, frames); err != nil {
			return fmt.Errorf("source channel %d: %w", ch, err)
		}
		if err := CheckBuffer(dst[ch], c.dst, 1, frames); err != nil {
			return fmt.Errorf("destination channel %d: %w", ch, err)
		}
	}
	for ch := range src {
		c.Convert(dst[ch], 1, src[ch], 1, frames, state(states, ch))
	}
	return nil
}

func (c *Converter) checkChannels(channels int, states []*DitherState) error {
	if channels < 1 {
		return fmt.Errorf("%w: channels must be at least 1", ErrChannelMismatch)
	}
	if !c.Dithers() && states == nil {
		return nil
	}
	if len(states) != channels {
		return fmt.Errorf("%w: %d dither states for %d channels", ErrChannelMismatch, len(states), channels)
	}
	for ch, s := range states {
		if s == nil && c.Dithers() {
			return fmt.Errorf("%w: nil dither state for channel %d", ErrChannelMismatch, ch)
		}
	}
	return nil
}

func state(states []*DitherState, ch int) *DitherState {
	if states == nil {
		return nil
	}
	return states[ch]
}

// RequiredBytes returns the buffer size count samples of format occupy at
// the given stride.
func RequiredBytes(format SampleFormat, stride, count int) int {
	if count <= 0 {
		return 0
	}
	return ((count-1)*stride + 1) * format.BytesPerSample()
}

// CheckBuffer verifies that buf can hold count samples of format at stride.
func CheckBuffer(buf []byte, format SampleFormat, stride, count int) error {
	if format.BytesPerSample() == 0 {
		return fmt.Errorf("%w: %s", ErrFormatNotSupported, format)
	}
	if stride < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidStride, stride)
	}
	if need := RequiredBytes(format, stride, count); len(buf) < need {
		return fmt.Errorf("%w: need %d bytes, have %d", ErrBufferTooSmall, need, len(buf))
	}
	return nil
}
