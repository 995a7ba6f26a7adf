// Package accelcheck cross-checks accelerated kernels against the portable
// kernels and times both.
//
// Every case converts the same ramp with a fresh dither stream through both
// kernels and compares the decoded samples within a per-converter
// tolerance. Timing repeats the conversion with one dither stream per path.
package accelcheck

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/tphakala/go-audio-sampleconv/internal/dither"
	"github.com/tphakala/go-audio-sampleconv/internal/kernel"
	"github.com/tphakala/go-audio-sampleconv/internal/sample"
)

// Default case grid.
var (
	DefaultSizes   = []int{64, 256, 1024, 4096}
	DefaultStrides = []int{1, 2, 4}
)

// DefaultRepetitions is the number of timed conversions per case.
const DefaultRepetitions = 1000

// ErrInvalidOptions indicates an unusable case grid.
var ErrInvalidOptions = errors.New("invalid accelcheck options")

// Options selects the cases to run.
type Options struct {
	Sizes   []int
	Strides []int

	// Repetitions is the number of timed conversions per case. Zero skips
	// timing.
	Repetitions int

	// Filter keeps converters whose name contains it. Empty keeps all.
	Filter string
}

// DefaultOptions returns the default case grid with timing enabled.
func DefaultOptions() Options {
	return Options{
		Sizes:       DefaultSizes,
		Strides:     DefaultStrides,
		Repetitions: DefaultRepetitions,
	}
}

func (o Options) validate() error {
	if len(o.Sizes) == 0 || len(o.Strides) == 0 {
		return fmt.Errorf("%w: empty size or stride list", ErrInvalidOptions)
	}
	for _, n := range o.Sizes {
		if n < 1 {
			return fmt.Errorf("%w: size %d", ErrInvalidOptions, n)
		}
	}
	for _, s := range o.Strides {
		if s < 1 {
			return fmt.Errorf("%w: stride %d", ErrInvalidOptions, s)
		}
	}
	if o.Repetitions < 0 {
		return fmt.Errorf("%w: repetitions %d", ErrInvalidOptions, o.Repetitions)
	}
	return nil
}

// Result is the outcome of one converter, size and stride.
type Result struct {
	ID     kernel.ID
	Size   int
	Stride int

	// MaxDiff is the largest sample difference in destination units.
	MaxDiff int64

	// Tolerance is the largest difference accepted for ID.
	Tolerance int64

	// Mismatches counts samples differing by more than Tolerance.
	Mismatches int

	// Scalar and Vector are the total times of the timed repetitions.
	Scalar time.Duration
	Vector time.Duration
}

// Passed reports whether every sample was within tolerance.
func (r Result) Passed() bool { return r.Mismatches == 0 }

// Speedup returns the scalar time divided by the vector time, or 0 when
// the case was not timed.
func (r Result) Speedup() float64 {
	if r.Vector <= 0 {
		return 0
	}
	return float64(r.Scalar) / float64(r.Vector)
}

func (r Result) String() string {
	status := "ok"
	if !r.Passed() {
		status = fmt.Sprintf("FAIL %d samples", r.Mismatches)
	}
	return fmt.Sprintf("%s size %d stride %d: max diff %d (tol %d) %s",
		r.ID, r.Size, r.Stride, r.MaxDiff, r.Tolerance, status)
}

// Tolerance returns the largest accepted difference between the portable
// and accelerated outputs of id. Packed 24-bit output may round ties
// differently; dithered 32-bit output is not dithered when accelerated.
func Tolerance(id kernel.ID) int64 {
	switch {
	case id.Dest() == sample.Int24:
		return 1
	case id.Dest() == sample.Int32 && id.Dithers():
		return 3
	default:
		return 0
	}
}

// Ramp returns size samples of kind at stride. The values sweep the full
// range of kind in 256 steps and repeat; gaps are zero.
func Ramp(kind sample.Kind, size, stride int) []byte {
	w := kind.Width()
	buf := make([]byte, ((size-1)*stride+1)*w)
	for i := range size {
		step := int32(i%256) - 128
		off := i * stride * w
		switch kind {
		case sample.Float32:
			sample.StoreFloat32(buf, off, float32(step)/128)
		case sample.Int32:
			sample.StoreInt32(buf, off, step<<24)
		case sample.Int24:
			sample.StoreInt24(buf, off, step<<24)
		case sample.Int16:
			sample.StoreInt16(buf, off, int16(step<<8))
		case sample.Int8:
			buf[off] = byte(int8(step))
		case sample.UInt8:
			buf[off] = byte(i % 256)
		}
	}
	return buf
}

// decode returns count samples of kind at stride as integers in the
// native units of kind. Float32 samples decode to their bit patterns, so
// only exact equality is meaningful.
func decode(kind sample.Kind, b []byte, stride, count int) []int64 {
	w := kind.Width()
	out := make([]int64, count)
	for i := range out {
		off := i * stride * w
		switch kind {
		case sample.Float32:
			out[i] = int64(math.Float32bits(sample.LoadFloat32(b, off)))
		case sample.Int32:
			out[i] = int64(sample.LoadInt32(b, off))
		case sample.Int24:
			out[i] = int64(sample.Int24Value(sample.LoadInt24(b, off)))
		case sample.Int16:
			out[i] = int64(sample.LoadInt16(b, off))
		case sample.Int8:
			out[i] = int64(int8(b[off]))
		case sample.UInt8:
			out[i] = int64(b[off])
		}
	}
	return out
}

// Compare decodes count samples of kind from want and got and returns the
// largest difference and the number of samples differing by more than tol.
func Compare(kind sample.Kind, want, got []byte, stride, count int, tol int64) (maxDiff int64, mismatches int) {
	w := decode(kind, want, stride, count)
	g := decode(kind, got, stride, count)
	for i := range w {
		d := w[i] - g[i]
		if d < 0 {
			d = -d
		}
		maxDiff = max(maxDiff, d)
		if d > tol {
			mismatches++
		}
	}
	return maxDiff, mismatches
}

// Check runs one case of id against the accelerated kernel accel.
func Check(id kernel.ID, accel kernel.Func, size, stride, reps int) Result {
	src := Ramp(id.Source(), size, stride)
	dstLen := ((size-1)*stride + 1) * id.Dest().Width()
	want := make([]byte, dstLen)
	got := make([]byte, dstLen)

	scalar := kernel.Scalar(id)
	scalar(want, stride, src, stride, size, dither.New())
	accel(got, stride, src, stride, size, dither.New())

	tol := Tolerance(id)
	maxDiff, mismatches := Compare(id.Dest(), want, got, stride, size, tol)

	r := Result{
		ID:         id,
		Size:       size,
		Stride:     stride,
		MaxDiff:    maxDiff,
		Tolerance:  tol,
		Mismatches: mismatches,
	}
	if reps > 0 {
		r.Scalar = timeKernel(scalar, want, src, stride, size, reps)
		r.Vector = timeKernel(accel, got, src, stride, size, reps)
	}
	return r
}

func timeKernel(fn kernel.Func, dst, src []byte, stride, size, reps int) time.Duration {
	g := dither.New()
	start := time.Now()
	for range reps {
		fn(dst, stride, src, stride, size, g)
	}
	return time.Since(start)
}

// Run checks every kernel in accel over the option grid, converters in
// identity order.
func Run(accel map[kernel.ID]kernel.Func, opts Options) ([]Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	ids := make([]kernel.ID, 0, len(accel))
	for id := range accel {
		if opts.Filter != "" && !strings.Contains(id.String(), opts.Filter) {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var results []Result
	for _, id := range ids {
		for _, size := range opts.Sizes {
			for _, stride := range opts.Strides {
				results = append(results, Check(id, accel[id], size, stride, opts.Repetitions))
			}
		}
	}
	return results, nil
}

// Failed returns the results that exceeded their tolerance.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed() {
			failed = append(failed, r)
		}
	}
	return failed
}
