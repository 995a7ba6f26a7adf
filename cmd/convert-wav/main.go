// Command convert-wav changes the sample encoding of audio files and writes
// the result as WAV.
//
// Usage:
//
//	convert-wav -bits 16 input.wav output.wav
//	convert-wav -bits 24 -dither=false input.wav output.wav
//	convert-wav -float input.wav output.wav          # 32-bit IEEE float output
//	convert-wav -bits 8 -clip=false input.wav out.wav
//	convert-wav -bits 24 input.mp3 output.wav        # MP3 decodes to Int16
//	convert-wav -bits 16 input.ogg output.wav        # Vorbis decodes to Float32
//
// WAV input must be integer PCM. MP3 and Ogg Vorbis input is recognized by
// file extension.
//
// Every channel has its own dither stream, so converting a stereo file
// gives the same result as converting each channel on its own.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"time"

	sampleconv "github.com/tphakala/go-audio-sampleconv"
)

const (
	// Frames per processing chunk.
	bufferFrames = 65536

	// CLI defaults
	defaultBits     = 16
	minRequiredArgs = 2

	progressInterval = 10 // Print progress every N%
	percentScale     = 100
	bitsPerByte      = 8
)

// options controls one conversion.
type options struct {
	bits    int
	float   bool
	dither  bool
	clip    bool
	simd    bool
	verbose bool
}

func (o options) flags() sampleconv.Flags {
	var f sampleconv.Flags
	if !o.dither {
		f |= sampleconv.DitherOff
	}
	if !o.clip {
		f |= sampleconv.ClipOff
	}
	return f
}

// destination returns the output encoding.
func (o options) destination() (sampleconv.SampleFormat, error) {
	if o.float {
		return sampleconv.Float32, nil
	}
	return sampleconv.FormatForBitDepth(o.bits)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var opts options
	flag.IntVar(&opts.bits, "bits", defaultBits, "Output bit depth: 8, 16, 24 or 32")
	flag.BoolVar(&opts.float, "float", false, "Write 32-bit float samples (overrides -bits)")
	flag.BoolVar(&opts.dither, "dither", true, "Dither when reducing bit depth")
	flag.BoolVar(&opts.clip, "clip", true, "Clip out-of-range float samples")
	flag.BoolVar(&opts.simd, "simd", true, "Use vector kernels when the CPU supports them")
	flag.BoolVar(&opts.verbose, "v", false, "Verbose output")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file (for PGO)")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.{wav,mp3,ogg} output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -bits 16 master.wav cd.wav        # Dither down to 16-bit\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -bits 24 input.wav input_24.wav   # Widen to 24-bit\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -float input.wav input_f32.wav    # Convert to float\n", os.Args[0])
		return errors.New("insufficient arguments")
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	inputPath := args[0]
	outputPath := args[1]

	if opts.verbose {
		log.Printf("Input: %s", inputPath)
		log.Printf("Output: %s", outputPath)
		log.Printf("Dither: %v, clip: %v, SIMD: %v", opts.dither, opts.clip, opts.simd)
	}

	start := time.Now()
	stats, err := convertWAV(inputPath, outputPath, opts)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Converted %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %s -> %s via %s (%d channels, %d Hz)\n",
		stats.source, stats.destination, stats.converter, stats.channels, stats.sampleRate)
	fmt.Printf("  %d frames, strategy %s\n", stats.frames, stats.strategy)
	if secs := elapsed.Seconds(); secs > 0 && stats.sampleRate > 0 {
		fmt.Printf("  Duration: %.2fs, Speed: %.1fx realtime\n",
			secs, float64(stats.frames)/float64(stats.sampleRate)/secs)
	}

	return nil
}

type convertStats struct {
	source      sampleconv.SampleFormat
	destination sampleconv.SampleFormat
	converter   string
	strategy    string
	channels    int
	sampleRate  int
	frames      int64
}

func convertWAV(inputPath, outputPath string, opts options) (stats *convertStats, err error) {
	// 1. Open and validate input
	input, err := openInput(inputPath, opts.verbose)
	if err != nil {
		return nil, err
	}
	defer func() { _ = input.Close() }()
	src := input.info()

	dst, err := opts.destination()
	if err != nil {
		return nil, err
	}

	// 2. Resolve the converter once for the whole file
	reg, err := sampleconv.NewRegistry(&sampleconv.Config{EnableSIMD: opts.simd})
	if err != nil {
		return nil, err
	}
	conv, err := selectConverter(reg, src.format, dst, opts.flags())
	if err != nil {
		return nil, err
	}
	if opts.verbose {
		info := reg.Info()
		log.Printf("Converter: %s (accelerated: %v, strategy: %s)", conv.Name(), conv.Accelerated(), info.Strategy)
	}

	// 3. Create output writer
	output, err := createWAVOutput(outputPath, src.rate, dst, src.channels)
	if err != nil {
		return nil, err
	}
	// Close output, capturing close errors on success path (important for WAV header updates)
	defer func() {
		if closeErr := output.Close(); err == nil {
			err = closeErr
		}
	}()

	// 4. Initialize processing buffers and per-channel dither
	buffers := newConversionBuffers(src, dst)
	states := newChannelDither(src.channels)

	stats = &convertStats{
		source:      src.format,
		destination: dst,
		converter:   conv.Name(),
		strategy:    reg.Info().Strategy,
		channels:    src.channels,
		sampleRate:  src.rate,
	}
	progress := newProgressTracker(src.totalFrames, opts.verbose)

	// 5. Main processing loop
	for {
		n, err := input.read(buffers.raw)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		frames := n / src.channels

		raw := buffers.raw[:n*src.format.BytesPerSample()]
		out := buffers.out[:n*dst.BytesPerSample()]
		if err := conv.ConvertInterleaved(out, raw, src.channels, frames, states); err != nil {
			return nil, fmt.Errorf("conversion failed: %w", err)
		}
		if err := output.WriteRaw(out); err != nil {
			return nil, fmt.Errorf("failed to write audio data: %w", err)
		}

		stats.frames += int64(frames)
		progress.reportIfNeeded(stats.frames)
	}

	return stats, nil
}
