package sampleconv

import "errors"

// Errors returned by selection and the checked helpers.
var (
	// ErrFormatNotSupported indicates no converter or format exists for the
	// requested combination.
	ErrFormatNotSupported = errors.New("sample format not supported")

	// ErrUnimplementedConversion indicates a dithered integer narrowing that
	// has no kernel. Request it with DitherOff instead.
	ErrUnimplementedConversion = errors.New("conversion not implemented")

	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid converter configuration")

	// ErrBufferTooSmall indicates a buffer cannot hold the requested samples.
	ErrBufferTooSmall = errors.New("buffer too small")

	// ErrInvalidStride indicates a stride below one sample.
	ErrInvalidStride = errors.New("invalid stride")

	// ErrChannelMismatch indicates per-channel arguments that disagree with
	// the channel count.
	ErrChannelMismatch = errors.New("channel count mismatch")
)
