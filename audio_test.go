package sampleconv

import (
	"testing"

	"github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatForBitDepth(t *testing.T) {
	tests := map[int]SampleFormat{8: UInt8, 16: Int16, 24: Int24, 32: Int32}
	for bits, want := range tests {
		got, err := FormatForBitDepth(bits)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := FormatForBitDepth(12)
	assert.ErrorIs(t, err, ErrFormatNotSupported)
}

func TestPackUnpackInts(t *testing.T) {
	tests := []struct {
		format SampleFormat
		data   []int
	}{
		{Int32, []int{0, 1, -1, 2147483647, -2147483648}},
		{Int24, []int{0, 1, -1, 8388607, -8388608}},
		{Int16, []int{0, 1, -1, 32767, -32768}},
		{Int8, []int{0, 1, -1, 127, -128}},
		{UInt8, []int{0, 1, 128, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			buf := make([]byte, len(tt.data)*tt.format.BytesPerSample())
			n, err := PackInts(buf, tt.format, tt.data)
			require.NoError(t, err)
			assert.Equal(t, len(buf), n)

			got := make([]int, len(tt.data))
			require.NoError(t, UnpackInts(got, tt.format, buf))
			assert.Equal(t, tt.data, got)
		})
	}
}

func TestPackInts_Errors(t *testing.T) {
	_, err := PackInts(make([]byte, 8), Float32, []int{1})
	assert.ErrorIs(t, err, ErrFormatNotSupported)

	_, err = PackInts(make([]byte, 5), Int24, []int{1, 2})
	assert.ErrorIs(t, err, ErrBufferTooSmall)

	err = UnpackInts(make([]int, 3), Int16, make([]byte, 4))
	assert.ErrorIs(t, err, ErrBufferTooSmall)
}

func TestIntBufferRoundTrip(t *testing.T) {
	in := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: 44100},
		Data:           []int{100, -100, 8000000, -8000000},
		SourceBitDepth: 24,
	}

	raw := make([]byte, 12)
	format, n, err := PackIntBuffer(raw, in)
	require.NoError(t, err)
	assert.Equal(t, Int24, format)
	assert.Equal(t, 12, n)

	out := &audio.IntBuffer{Format: in.Format}
	require.NoError(t, UnpackIntBuffer(out, format, raw, len(in.Data)))
	assert.Equal(t, in.Data, out.Data)
	assert.Equal(t, 24, out.SourceBitDepth)
}

func TestPackFloat32Buffer(t *testing.T) {
	buf := &audio.Float32Buffer{Data: []float32{0.25, -1}}
	raw := make([]byte, 8)
	n, err := PackFloat32Buffer(raw, buf)
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	out := make([]float32, 2)
	copy(Bytes(out), raw)
	assert.Equal(t, buf.Data, out)

	_, err = PackFloat32Buffer(raw[:7], buf)
	assert.ErrorIs(t, err, ErrBufferTooSmall)
}
