package main

import (
	"encoding/binary"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sampleconv "github.com/tphakala/go-audio-sampleconv"
)

// fakeMP3 serves little-endian 16-bit PCM like gomp3.Decoder.
type fakeMP3 struct {
	pcm []byte
	err error
}

func (f *fakeMP3) SampleRate() int { return 44100 }

func (f *fakeMP3) Read(p []byte) (int, error) {
	if len(f.pcm) == 0 {
		if f.err != nil {
			return 0, f.err
		}
		return 0, io.EOF
	}
	n := copy(p, f.pcm)
	f.pcm = f.pcm[n:]
	return n, nil
}

func leInt16s(values ...int16) []byte {
	b := make([]byte, 2*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint16(b[2*i:], uint16(v))
	}
	return b
}

func hostInt16s(b []byte, n int) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = int16(binary.NativeEndian.Uint16(b[2*i:]))
	}
	return out
}

func TestMP3Input_Read(t *testing.T) {
	// Three whole stereo frames and one trailing sample.
	in := newMP3Input(&fakeMP3{pcm: leInt16s(1, -1, 256, -256, 32767, -32768, 7)}, nil)

	info := in.info()
	assert.Equal(t, 44100, info.rate)
	assert.Equal(t, 2, info.channels)
	assert.Equal(t, sampleconv.Int16, info.format)

	dst := make([]byte, 64)
	n, err := in.read(dst)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, []int16{1, -1, 256, -256, 32767, -32768}, hostInt16s(dst, n))

	_, err = in.read(dst)
	assert.ErrorIs(t, err, io.EOF)
	assert.NoError(t, in.Close())
}

func TestMP3Input_ReadInChunks(t *testing.T) {
	in := newMP3Input(&fakeMP3{pcm: leInt16s(1, 2, 3, 4, 5, 6)}, nil)

	// Room for one frame and a half: only the whole frame is returned.
	dst := make([]byte, 6)
	var got []int16
	for {
		n, err := in.read(dst)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		require.Equal(t, 2, n)
		got = append(got, hostInt16s(dst, n)...)
	}
	assert.Equal(t, []int16{1, 2, 3, 4, 5, 6}, got)
}

func TestMP3Input_DecodeError(t *testing.T) {
	boom := errors.New("corrupt frame")
	in := newMP3Input(&fakeMP3{err: boom}, nil)
	_, err := in.read(make([]byte, 16))
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to decode MP3")
}

// fakeOgg serves interleaved float32 like oggvorbis.Reader.
type fakeOgg struct {
	channels int
	values   []float32
}

func (f *fakeOgg) SampleRate() int { return 48000 }
func (f *fakeOgg) Channels() int   { return f.channels }

func (f *fakeOgg) Read(p []float32) (int, error) {
	if len(f.values) == 0 {
		return 0, io.EOF
	}
	n := copy(p, f.values)
	f.values = f.values[n:]
	return n, nil
}

func TestOggInput_Read(t *testing.T) {
	in := newOggInput(&fakeOgg{channels: 2, values: []float32{0.5, -0.5, 1, -1}}, nil)

	info := in.info()
	assert.Equal(t, 48000, info.rate)
	assert.Equal(t, 2, info.channels)
	assert.Equal(t, sampleconv.Float32, info.format)

	dst := make([]byte, 64)
	n, err := in.read(dst)
	require.NoError(t, err)
	require.Equal(t, 4, n)

	got := make([]float32, n)
	copy(sampleconv.Bytes(got), dst)
	assert.Equal(t, []float32{0.5, -0.5, 1, -1}, got)

	_, err = in.read(dst)
	assert.ErrorIs(t, err, io.EOF)
}

func TestOggInput_ReadWholeFrames(t *testing.T) {
	in := newOggInput(&fakeOgg{channels: 3, values: make([]float32, 9)}, nil)

	// Room for two values short of three frames.
	n, err := in.read(make([]byte, 7*4))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestOpenInput_ByExtension(t *testing.T) {
	dir := t.TempDir()
	for _, tc := range []struct {
		name string
		want string
	}{
		{"bad.mp3", "invalid MP3 file"},
		{"bad.OGG", "invalid Ogg Vorbis file"},
		{"bad.wav", "invalid WAV file"},
		{"bad.raw", "invalid WAV file"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name)
			require.NoError(t, os.WriteFile(path, []byte("not audio at all"), 0o644))

			src, err := openInput(path, false)
			require.Error(t, err)
			assert.Nil(t, src)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestOpenInput_WAVSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.wav")
	writeTestWAV(t, path, 16, 1, []int{100, -100, 200})

	src, err := openInput(path, false)
	require.NoError(t, err)
	defer func() { _ = src.Close() }()

	info := src.info()
	assert.Equal(t, 44100, info.rate)
	assert.Equal(t, 1, info.channels)
	assert.Equal(t, sampleconv.Int16, info.format)

	dst := make([]byte, 16)
	n, err := src.read(dst)
	require.NoError(t, err)
	assert.Equal(t, []int16{100, -100, 200}, hostInt16s(dst, n))

	_, err = src.read(dst)
	assert.ErrorIs(t, err, io.EOF)
}
