package sampleconv

import (
	"fmt"

	"github.com/go-audio/audio"

	"github.com/tphakala/go-audio-sampleconv/internal/sample"
)

// FormatForBitDepth returns the encoding PCM WAV data of the given bit
// depth uses. 8-bit PCM is offset binary.
func FormatForBitDepth(bits int) (SampleFormat, error) {
	switch bits {
	case 8:
		return UInt8, nil
	case 16:
		return Int16, nil
	case 24:
		return Int24, nil
	case 32:
		return Int32, nil
	default:
		return 0, fmt.Errorf("%w: %d-bit PCM", ErrFormatNotSupported, bits)
	}
}

// PackInts encodes data into dst and returns the number of bytes written.
// Values are in the native range of format: signed 24-bit for Int24,
// 0..255 for UInt8.
func PackInts(dst []byte, format SampleFormat, data []int) (int, error) {
	k, ok := format.kind()
	if !ok || !k.Integer() {
		return 0, fmt.Errorf("%w: %s is not an integer encoding", ErrFormatNotSupported, format)
	}
	if err := CheckBuffer(dst, format, 1, len(data)); err != nil {
		return 0, err
	}
	w := k.Width()
	for i, v := range data {
		off := i * w
		switch k {
		case sample.Int32:
			sample.StoreInt32(dst, off, int32(v))
		case sample.Int24:
			sample.StoreInt24(dst, off, int32(v)<<8)
		case sample.Int16:
			sample.StoreInt16(dst, off, int16(v))
		default:
			dst[off] = byte(v)
		}
	}
	return len(data) * w, nil
}

// UnpackInts decodes len(data) samples from src into data.
func UnpackInts(data []int, format SampleFormat, src []byte) error {
	k, ok := format.kind()
	if !ok || !k.Integer() {
		return fmt.Errorf("%w: %s is not an integer encoding", ErrFormatNotSupported, format)
	}
	if err := CheckBuffer(src, format, 1, len(data)); err != nil {
		return err
	}
	w := k.Width()
	for i := range data {
		off := i * w
		switch k {
		case sample.Int32:
			data[i] = int(sample.LoadInt32(src, off))
		case sample.Int24:
			data[i] = int(sample.Int24Value(sample.LoadInt24(src, off)))
		case sample.Int16:
			data[i] = int(sample.LoadInt16(src, off))
		case sample.Int8:
			data[i] = int(int8(src[off]))
		default:
			data[i] = int(src[off])
		}
	}
	return nil
}

// PackIntBuffer encodes a decoded PCM buffer in the encoding of its source
// bit depth.
func PackIntBuffer(dst []byte, buf *audio.IntBuffer) (SampleFormat, int, error) {
	format, err := FormatForBitDepth(buf.SourceBitDepth)
	if err != nil {
		return 0, 0, err
	}
	n, err := PackInts(dst, format, buf.Data)
	return format, n, err
}

// UnpackIntBuffer decodes n samples of format from src into buf, growing
// buf.Data as needed and recording the bit depth.
func UnpackIntBuffer(buf *audio.IntBuffer, format SampleFormat, src []byte, n int) error {
	if cap(buf.Data) < n {
		buf.Data = make([]int, n)
	}
	buf.Data = buf.Data[:n]
	if err := UnpackInts(buf.Data, format, src); err != nil {
		return err
	}
	buf.SourceBitDepth = 8 * format.BytesPerSample()
	return nil
}

// PackFloat32Buffer encodes buf.Data as Float32 samples.
func PackFloat32Buffer(dst []byte, buf *audio.Float32Buffer) (int, error) {
	if err := CheckBuffer(dst, Float32, 1, len(buf.Data)); err != nil {
		return 0, err
	}
	for i, v := range buf.Data {
		sample.StoreFloat32(dst, 4*i, v)
	}
	return 4 * len(buf.Data), nil
}
