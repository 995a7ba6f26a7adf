package main

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sampleconv "github.com/tphakala/go-audio-sampleconv"
)

// writeTestWAV encodes interleaved PCM samples with go-audio/wav.
func writeTestWAV(t *testing.T, path string, bitDepth, channels int, data []int) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	enc := wav.NewEncoder(f, 44100, bitDepth, channels, wavFormatPCM)
	require.NoError(t, enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: 44100},
		Data:           data,
		SourceBitDepth: bitDepth,
	}))
	require.NoError(t, enc.Close())
}

// readTestWAV decodes a whole WAV file with go-audio/wav.
func readTestWAV(t *testing.T, path string) *audio.IntBuffer {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	dec := wav.NewDecoder(f)
	require.True(t, dec.IsValidFile())
	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	return buf
}

// rawData returns the bytes after the canonical 44-byte header.
func rawData(t *testing.T, path string) []byte {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(b), wavHeaderSize)
	assert.Equal(t, uint32(len(b)-wavHeaderSize), binary.LittleEndian.Uint32(b[wavDataSizeOffset:]))
	assert.Equal(t, uint32(len(b)-8), binary.LittleEndian.Uint32(b[wavFileSizeOffset:]))
	return b[wavHeaderSize:]
}

func stereoRamp(frames, lo, hi int) []int {
	data := make([]int, 2*frames)
	for i := range frames {
		v := lo + (hi-lo)*i/(frames-1)
		data[2*i] = v
		data[2*i+1] = -v
	}
	return data
}

func TestConvertWAV_Widen16To24(t *testing.T) {
	dir := t.TempDir()
	in, out := filepath.Join(dir, "in.wav"), filepath.Join(dir, "out.wav")
	data := stereoRamp(1000, -32767, 32767)
	writeTestWAV(t, in, 16, 2, data)

	stats, err := convertWAV(in, out, options{bits: 24, dither: true, clip: true, simd: true})
	require.NoError(t, err)
	assert.Equal(t, sampleconv.Int16, stats.source)
	assert.Equal(t, sampleconv.Int24, stats.destination)
	assert.Equal(t, "Int16ToInt24", stats.converter)
	assert.Equal(t, int64(1000), stats.frames)

	got := readTestWAV(t, out)
	assert.Equal(t, 24, got.SourceBitDepth)
	assert.Equal(t, 2, got.Format.NumChannels)
	require.Len(t, got.Data, len(data))
	for i, v := range data {
		assert.Equal(t, v<<8, got.Data[i], "sample %d", i)
	}
}

func TestConvertWAV_SameDepthCopies(t *testing.T) {
	dir := t.TempDir()
	in, out := filepath.Join(dir, "in.wav"), filepath.Join(dir, "out.wav")
	writeTestWAV(t, in, 16, 1, []int{0, 1, -1, 32767, -32768, 1234})

	stats, err := convertWAV(in, out, options{bits: 16, dither: true, clip: true})
	require.NoError(t, err)
	assert.Equal(t, "Copy16", stats.converter)
	assert.Equal(t, []int{0, 1, -1, 32767, -32768, 1234}, readTestWAV(t, out).Data)
}

func TestConvertWAV_Narrow24To16WithoutDither(t *testing.T) {
	dir := t.TempDir()
	in, out := filepath.Join(dir, "in.wav"), filepath.Join(dir, "out.wav")
	data := stereoRamp(500, -8388607, 8388607)
	writeTestWAV(t, in, 24, 2, data)

	_, err := convertWAV(in, out, options{bits: 16, dither: false, clip: true})
	require.NoError(t, err)

	got := readTestWAV(t, out)
	require.Len(t, got.Data, len(data))
	for i, v := range data {
		assert.Equal(t, v>>8, got.Data[i], "sample %d", i)
	}
}

func TestConvertWAV_StereoDitherPerChannel(t *testing.T) {
	dir := t.TempDir()
	in, out := filepath.Join(dir, "in.wav"), filepath.Join(dir, "out.wav")
	const frames = 700
	data := stereoRamp(frames, -8000000, 8000000)
	writeTestWAV(t, in, 24, 2, data)

	stats, err := convertWAV(in, out, options{bits: 16, dither: true, clip: true})
	require.NoError(t, err)
	assert.Equal(t, "Int24ToInt16Dither", stats.converter)
	got := readTestWAV(t, out).Data

	reg, err := sampleconv.NewRegistry(&sampleconv.Config{Strategy: sampleconv.StrategyPortable})
	require.NoError(t, err)
	conv, err := reg.Select(sampleconv.Int24, sampleconv.Int16, 0)
	require.NoError(t, err)

	for ch := range 2 {
		mono := make([]int, frames)
		for i := range frames {
			mono[i] = data[2*i+ch]
		}
		src := make([]byte, frames*3)
		_, err := sampleconv.PackInts(src, sampleconv.Int24, mono)
		require.NoError(t, err)
		want := make([]int16, frames)
		conv.Convert(sampleconv.Bytes(want), 1, src, 1, frames, sampleconv.NewDitherState())

		for i := range frames {
			assert.Equal(t, int(want[i]), got[2*i+ch], "channel %d frame %d", ch, i)
		}
	}
}

func TestConvertWAV_UnimplementedDitherFallsBack(t *testing.T) {
	dir := t.TempDir()
	in, out := filepath.Join(dir, "in.wav"), filepath.Join(dir, "out.wav")
	writeTestWAV(t, in, 16, 1, []int{0, 256, -256, 32767, -32768})

	stats, err := convertWAV(in, out, options{bits: 8, dither: true, clip: true})
	require.NoError(t, err)
	assert.Equal(t, "Int16ToUInt8", stats.converter)
	assert.Equal(t, []byte{128, 129, 127, 255, 0}, rawData(t, out))
}

func TestConvertWAV_FloatOutput(t *testing.T) {
	dir := t.TempDir()
	in, out := filepath.Join(dir, "in.wav"), filepath.Join(dir, "out.wav")
	writeTestWAV(t, in, 16, 1, []int{16384, -16384, 0, -32768})

	stats, err := convertWAV(in, out, options{bits: 16, float: true, dither: true, clip: true})
	require.NoError(t, err)
	assert.Equal(t, sampleconv.Float32, stats.destination)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, uint16(wavFormatFloat), binary.LittleEndian.Uint16(b[20:22]))
	assert.Equal(t, uint16(32), binary.LittleEndian.Uint16(b[34:36]))

	raw := rawData(t, out)
	require.Len(t, raw, 16)
	want := []float32{0.5, -0.5, 0, -1}
	for i, w := range want {
		assert.InDelta(t, w, math.Float32frombits(binary.LittleEndian.Uint32(raw[4*i:])), 0)
	}
}

func TestOpenWAVInput_FileNotFound(t *testing.T) {
	_, err := openWAVInput("/nonexistent/file.wav", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")
}

func TestOpenWAVInput_InvalidWAV(t *testing.T) {
	tmpDir := t.TempDir()
	invalidFile := filepath.Join(tmpDir, "invalid.wav")
	err := os.WriteFile(invalidFile, []byte("not a wav file"), 0o644)
	require.NoError(t, err)

	_, err = openWAVInput(invalidFile, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid WAV file")
}

func TestOpenWAVInput_RejectsFloat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "float.wav")
	w, err := createWAVOutput(path, 48000, sampleconv.Float32, 1)
	require.NoError(t, err)
	require.NoError(t, w.WriteRaw(make([]byte, 64)))
	require.NoError(t, w.Close())

	_, err = openWAVInput(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported WAV format tag 3")
}

func TestOpenWAVInput_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.wav")
	writeTestWAV(t, path, 24, 2, make([]int, 200))

	input, err := openWAVInput(path, false)
	require.NoError(t, err)
	defer func() { _ = input.Close() }()

	assert.Equal(t, 44100, input.rate)
	assert.Equal(t, 2, input.channels)
	assert.Equal(t, 24, input.bitDepth)
	assert.Equal(t, sampleconv.Int24, input.format)
}

func TestCreateWAVOutput_InvalidDirectory(t *testing.T) {
	_, err := createWAVOutput("/nonexistent/dir/output.wav", 48000, sampleconv.Int16, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}

func TestCreateWAVOutput_Header(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	w, err := createWAVOutput(path, 48000, sampleconv.Int24, 2)
	require.NoError(t, err)
	require.NoError(t, w.WriteRaw(make([]byte, 6*10)))
	require.NoError(t, w.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, b, wavHeaderSize+60)
	assert.Equal(t, "RIFF", string(b[0:4]))
	assert.Equal(t, "WAVE", string(b[8:12]))
	assert.Equal(t, uint16(wavFormatPCM), binary.LittleEndian.Uint16(b[20:22]))
	assert.Equal(t, uint16(2), binary.LittleEndian.Uint16(b[22:24]))
	assert.Equal(t, uint32(48000*6), binary.LittleEndian.Uint32(b[28:32]))
	assert.Equal(t, uint16(6), binary.LittleEndian.Uint16(b[32:34]))
	assert.Equal(t, uint16(24), binary.LittleEndian.Uint16(b[34:36]))
	assert.Equal(t, uint32(60), binary.LittleEndian.Uint32(b[40:44]))
}

func TestOptions(t *testing.T) {
	assert.Equal(t, sampleconv.Flags(0), options{dither: true, clip: true}.flags())
	assert.Equal(t, sampleconv.DitherOff|sampleconv.ClipOff, options{}.flags())

	f, err := options{bits: 24}.destination()
	require.NoError(t, err)
	assert.Equal(t, sampleconv.Int24, f)

	f, err = options{bits: 8, float: true}.destination()
	require.NoError(t, err)
	assert.Equal(t, sampleconv.Float32, f)

	_, err = options{bits: 12}.destination()
	assert.ErrorIs(t, err, sampleconv.ErrFormatNotSupported)
}

func TestNewChannelDither(t *testing.T) {
	states := newChannelDither(3)
	require.Len(t, states, 3)
	assert.NotSame(t, states[0], states[1])
	assert.Equal(t, states[0].Int16(), states[1].Int16())
}

func TestProgressTracker_VerboseMode(t *testing.T) {
	tracker := newProgressTracker(1000, true)
	require.NotNil(t, tracker)

	assert.Equal(t, int64(1000), tracker.totalFrames)
	tracker.reportIfNeeded(500)
	assert.Equal(t, 50, tracker.lastProgress)
}

func TestProgressTracker_NonVerboseMode(t *testing.T) {
	tracker := newProgressTracker(1000, false)
	tracker.reportIfNeeded(500)
	assert.Equal(t, 0, tracker.lastProgress)
}

func TestProgressTracker_ZeroFrames(t *testing.T) {
	tracker := newProgressTracker(0, true)
	tracker.reportIfNeeded(100)
	assert.Equal(t, 0, tracker.lastProgress)
}
