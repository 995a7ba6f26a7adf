// Package analysis measures the statistics and spectrum of dither streams.
package analysis

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/tphakala/go-audio-sampleconv/internal/dither"
	"github.com/tphakala/go-audio-sampleconv/internal/simdops"
)

// FFTSize is the block length used for band power estimates.
const FFTSize = 1024

// ErrTooFewSamples indicates an input too short to analyze.
var ErrTooFewSamples = errors.New("too few samples")

// Report summarizes a sequence of dither values.
type Report struct {
	Samples    int
	Mean       float64
	StdDev     float64
	RMS        float64
	ExKurtosis float64
	Min        float64
	Max        float64

	// Edges holds len(Counts)+1 bin boundaries spanning [Min, Max].
	Edges  []float64
	Counts []float64

	// LowBand and HighBand are the mean spectral power in the lowest and
	// highest eighth of the spectrum, averaged over FFTSize blocks. Zero
	// when the input is shorter than one block.
	LowBand  float64
	HighBand float64
}

// Generate returns the first n float dither values of a fresh stream.
func Generate(n int) []float64 {
	g := dither.New()
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(g.Float())
	}
	return out
}

// GenerateInt returns the first n integer dither values of a fresh stream.
func GenerateInt(n int) []float64 {
	g := dither.New()
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(g.Int16())
	}
	return out
}

// Analyze computes a report over x with the given number of histogram
// bins. x is not modified.
func Analyze(x []float64, bins int) (Report, error) {
	if len(x) < 2 {
		return Report{}, fmt.Errorf("%w: %d", ErrTooFewSamples, len(x))
	}
	if bins < 1 {
		return Report{}, fmt.Errorf("analysis: bins must be positive, got %d", bins)
	}

	r := Report{
		Samples:    len(x),
		Mean:       stat.Mean(x, nil),
		StdDev:     stat.StdDev(x, nil),
		ExKurtosis: stat.ExKurtosis(x, nil),
		Min:        floats.Min(x),
		Max:        floats.Max(x),
		RMS:        math.Sqrt(simdops.Float64Ops().DotProductUnsafe(x, x) / float64(len(x))),
	}

	sorted := append([]float64(nil), x...)
	sort.Float64s(sorted)

	// The last divider is exclusive.
	r.Edges = make([]float64, bins+1)
	floats.Span(r.Edges, r.Min, math.Nextafter(r.Max, math.Inf(1)))
	r.Counts = stat.Histogram(nil, r.Edges, sorted, nil)

	r.LowBand, r.HighBand = BandPower(x)
	return r, nil
}

// BandPower returns the mean power of the lowest and highest eighth of
// the spectrum over consecutive FFTSize blocks of x. The DC bin is
// excluded. Trailing samples that do not fill a block are ignored.
func BandPower(x []float64) (low, high float64) {
	blocks := len(x) / FFTSize
	if blocks == 0 {
		return 0, 0
	}

	fft := fourier.NewFFT(FFTSize)
	ops := simdops.Float64Ops()

	nbins := FFTSize/2 + 1
	band := FFTSize / 16
	power := make([]float64, nbins)
	var coeffs []complex128

	for b := range blocks {
		coeffs = fft.Coefficients(coeffs, x[b*FFTSize:(b+1)*FFTSize])
		for i, c := range coeffs {
			a := cmplx.Abs(c)
			power[i] = a * a
		}
		low += ops.Sum(power[1 : 1+band])
		high += ops.Sum(power[nbins-band:])
	}

	n := float64(blocks * band)
	return low / n, high / n
}

// Peaked reports whether the histogram rises from both edges towards the
// middle, as a triangular or bell shaped density does. Uniform noise
// fails because its outer bins hold as much as the centre.
func (r Report) Peaked() bool {
	n := len(r.Counts)
	if n < 3 {
		return false
	}
	mid := r.Counts[n/2]
	return mid > 2*r.Counts[0] && mid > 2*r.Counts[n-1]
}

// Bounded reports whether every value lies within [lo, hi].
func (r Report) Bounded(lo, hi float64) bool {
	return r.Min >= lo && r.Max <= hi
}
