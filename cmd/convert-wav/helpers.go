package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	sampleconv "github.com/tphakala/go-audio-sampleconv"
)

// wavFormatPCM is the WAVE format tag of integer PCM data.
const wavFormatPCM = 1

// wavInputInfo holds validated input file information.
type wavInputInfo struct {
	file        *os.File
	decoder     *wav.Decoder
	rate        int
	channels    int
	bitDepth    int
	format      sampleconv.SampleFormat
	totalFrames int64
	audioFormat *audio.Format
	buf         *audio.IntBuffer
}

// openWAVInput opens and validates a PCM WAV file, returning format information.
func openWAVInput(path string, verbose bool) (*wavInputInfo, error) {
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		_ = inputFile.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}
	if decoder.WavAudioFormat != wavFormatPCM {
		_ = inputFile.Close()
		return nil, fmt.Errorf("unsupported WAV format tag %d: only integer PCM input is supported", decoder.WavAudioFormat)
	}

	format := decoder.Format()
	bitDepth := int(decoder.BitDepth)
	sampleFormat, err := sampleconv.FormatForBitDepth(bitDepth)
	if err != nil {
		_ = inputFile.Close()
		return nil, err
	}

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit (%s)", format.SampleRate, format.NumChannels, bitDepth, sampleFormat)
	}

	// Get total duration for progress reporting
	duration, err := decoder.Duration()
	if err != nil {
		duration = 0
	}
	totalFrames := int64(duration.Seconds() * float64(format.SampleRate))

	return &wavInputInfo{
		file:        inputFile,
		decoder:     decoder,
		rate:        format.SampleRate,
		channels:    format.NumChannels,
		bitDepth:    bitDepth,
		format:      sampleFormat,
		totalFrames: totalFrames,
		audioFormat: format,
	}, nil
}

func (w *wavInputInfo) info() sourceInfo {
	return sourceInfo{
		rate:        w.rate,
		channels:    w.channels,
		format:      w.format,
		totalFrames: w.totalFrames,
	}
}

// read decodes whole frames and encodes them in the source format.
func (w *wavInputInfo) read(dst []byte) (int, error) {
	samples := len(dst) / w.format.BytesPerSample()
	samples -= samples % w.channels
	if w.buf == nil || cap(w.buf.Data) < samples {
		w.buf = &audio.IntBuffer{
			Data:           make([]int, samples),
			Format:         w.audioFormat,
			SourceBitDepth: w.bitDepth,
		}
	}
	// PCMBuffer shortens Data at the end of the stream.
	w.buf.Data = w.buf.Data[:samples]

	n, err := w.decoder.PCMBuffer(w.buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("failed to read audio data: %w", err)
	}
	n -= n % w.channels
	if n == 0 {
		return 0, io.EOF
	}
	if _, err := sampleconv.PackInts(dst, w.format, w.buf.Data[:n]); err != nil {
		return 0, fmt.Errorf("failed to encode input samples: %w", err)
	}
	return n, nil
}

// Close closes the input file.
func (w *wavInputInfo) Close() error {
	return w.file.Close()
}

// selectConverter resolves the converter for the file. Dithered integer
// narrowings without a kernel fall back to plain truncation.
func selectConverter(reg *sampleconv.Registry, src, dst sampleconv.SampleFormat, flags sampleconv.Flags) (*sampleconv.Converter, error) {
	conv, err := reg.Select(src, dst, flags)
	if errors.Is(err, sampleconv.ErrUnimplementedConversion) {
		log.Printf("No dithered %s to %s converter, converting without dither", src, dst)
		conv, err = reg.Select(src, dst, flags|sampleconv.DitherOff)
	}
	if err != nil {
		return nil, fmt.Errorf("no converter from %s to %s: %w", src, dst, err)
	}
	return conv, nil
}

// newChannelDither returns one fresh dither stream per channel.
func newChannelDither(channels int) []*sampleconv.DitherState {
	states := make([]*sampleconv.DitherState, channels)
	for ch := range states {
		states[ch] = sampleconv.NewDitherState()
	}
	return states
}

// wavOutputWriter wraps output file and fast writer.
type wavOutputWriter struct {
	file   *os.File
	writer *fastWAVWriter
}

// createWAVOutput creates output file and writer.
func createWAVOutput(path string, sampleRate int, format sampleconv.SampleFormat, channels int) (*wavOutputWriter, error) {
	outputFile, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	fastWriter, err := newFastWAVWriter(outputFile, sampleRate, format, channels)
	if err != nil {
		_ = outputFile.Close()
		return nil, fmt.Errorf("failed to create WAV writer: %w", err)
	}

	return &wavOutputWriter{
		file:   outputFile,
		writer: fastWriter,
	}, nil
}

// WriteRaw writes encoded samples to the output file.
func (w *wavOutputWriter) WriteRaw(b []byte) error {
	return w.writer.WriteRaw(b)
}

// Close closes the output writer and file.
func (w *wavOutputWriter) Close() error {
	if err := w.writer.Close(); err != nil {
		return err
	}
	return w.file.Close()
}

// conversionBuffers holds the preallocated source and destination buffers
// for one file.
type conversionBuffers struct {
	raw []byte
	out []byte
}

// newConversionBuffers sizes both buffers for bufferFrames frames.
func newConversionBuffers(src sourceInfo, dst sampleconv.SampleFormat) *conversionBuffers {
	samples := bufferFrames * src.channels
	return &conversionBuffers{
		raw: make([]byte, samples*src.format.BytesPerSample()),
		out: make([]byte, samples*dst.BytesPerSample()),
	}
}

// progressTracker handles progress reporting.
type progressTracker struct {
	totalFrames  int64
	lastProgress int
	verbose      bool
}

// newProgressTracker creates a new progress tracker.
func newProgressTracker(totalFrames int64, verbose bool) *progressTracker {
	return &progressTracker{
		totalFrames: totalFrames,
		verbose:     verbose,
	}
}

// reportIfNeeded reports progress if threshold crossed.
func (p *progressTracker) reportIfNeeded(currentFrames int64) {
	if !p.verbose || p.totalFrames == 0 {
		return
	}

	progress := int(float64(currentFrames) / float64(p.totalFrames) * percentScale)
	if progress >= p.lastProgress+progressInterval {
		log.Printf("Progress: %d%%", progress)
		p.lastProgress = progress
	}
}
