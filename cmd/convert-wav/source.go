package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"

	sampleconv "github.com/tphakala/go-audio-sampleconv"
)

// mp3Channels is the channel count go-mp3 always decodes to.
const mp3Channels = 2

// audioSource yields interleaved samples encoded in its sample format.
type audioSource interface {
	info() sourceInfo

	// read fills dst with whole frames and returns the number of samples
	// written. It returns io.EOF once the stream is exhausted.
	read(dst []byte) (int, error)

	Close() error
}

// sourceInfo describes the layout of an input stream.
type sourceInfo struct {
	rate        int
	channels    int
	format      sampleconv.SampleFormat
	totalFrames int64
}

// openInput opens path with the decoder matching its extension. Anything
// that is not MP3 or Ogg Vorbis is read as WAV.
func openInput(path string, verbose bool) (audioSource, error) {
	var (
		src audioSource
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		src, err = openMP3Input(path, verbose)
	case ".ogg", ".oga":
		src, err = openOggInput(path, verbose)
	default:
		src, err = openWAVInput(path, verbose)
	}
	if err != nil {
		return nil, err
	}
	return src, nil
}

// mp3Reader is the part of gomp3.Decoder the input uses.
type mp3Reader interface {
	io.Reader
	SampleRate() int
}

// mp3Input decodes MP3 to 16-bit stereo in host byte order.
type mp3Input struct {
	closer      io.Closer
	dec         mp3Reader
	rate        int
	totalFrames int64
	buf         []byte
	samples     []int16
}

func openMP3Input(path string, verbose bool) (*mp3Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	dec, err := gomp3.NewDecoder(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("invalid MP3 file %s: %w", path, err)
	}

	in := newMP3Input(dec, f)
	if n := dec.Length(); n > 0 {
		in.totalFrames = n / (mp3Channels * 2)
	}
	if verbose {
		log.Printf("Input format: %d Hz, %d channels, MP3 decoded to %s", in.rate, mp3Channels, sampleconv.Int16)
	}
	return in, nil
}

func newMP3Input(dec mp3Reader, closer io.Closer) *mp3Input {
	return &mp3Input{closer: closer, dec: dec, rate: dec.SampleRate()}
}

func (m *mp3Input) info() sourceInfo {
	return sourceInfo{
		rate:        m.rate,
		channels:    mp3Channels,
		format:      sampleconv.Int16,
		totalFrames: m.totalFrames,
	}
}

func (m *mp3Input) read(dst []byte) (int, error) {
	const frameBytes = mp3Channels * 2
	want := len(dst) / frameBytes * frameBytes
	if cap(m.buf) < want {
		m.buf = make([]byte, want)
		m.samples = make([]int16, want/2)
	}

	n, err := io.ReadFull(m.dec, m.buf[:want])
	n = n / frameBytes * frameBytes
	if n == 0 {
		if err == nil || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, io.EOF
		}
		return 0, fmt.Errorf("failed to decode MP3: %w", err)
	}

	// go-mp3 emits little-endian samples.
	samples := m.samples[:n/2]
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(m.buf[2*i:]))
	}
	copy(dst, sampleconv.Bytes(samples))
	return len(samples), nil
}

// Close closes the input file.
func (m *mp3Input) Close() error {
	if m.closer == nil {
		return nil
	}
	return m.closer.Close()
}

// oggReader is the part of oggvorbis.Reader the input uses.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// oggInput decodes Ogg Vorbis to interleaved float32.
type oggInput struct {
	closer   io.Closer
	dec      oggReader
	rate     int
	channels int
	values   []float32
}

func openOggInput(path string, verbose bool) (*oggInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	dec, err := oggvorbis.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("invalid Ogg Vorbis file %s: %w", path, err)
	}

	in := newOggInput(dec, f)
	if verbose {
		log.Printf("Input format: %d Hz, %d channels, Vorbis decoded to %s", in.rate, in.channels, sampleconv.Float32)
	}
	return in, nil
}

func newOggInput(dec oggReader, closer io.Closer) *oggInput {
	return &oggInput{closer: closer, dec: dec, rate: dec.SampleRate(), channels: dec.Channels()}
}

func (o *oggInput) info() sourceInfo {
	return sourceInfo{
		rate:     o.rate,
		channels: o.channels,
		format:   sampleconv.Float32,
	}
}

func (o *oggInput) read(dst []byte) (int, error) {
	want := len(dst) / 4
	want -= want % o.channels
	if cap(o.values) < want {
		o.values = make([]float32, want)
	}

	n, err := o.dec.Read(o.values[:want])
	n -= n % o.channels
	if n == 0 {
		if err == nil || errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
		return 0, fmt.Errorf("failed to decode Vorbis: %w", err)
	}
	copy(dst, sampleconv.Bytes(o.values[:n]))
	return n, nil
}

// Close closes the input file.
func (o *oggInput) Close() error {
	if o.closer == nil {
		return nil
	}
	return o.closer.Close()
}
