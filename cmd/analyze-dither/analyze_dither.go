package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/tphakala/go-audio-sampleconv/internal/analysis"
)

const (
	// Analysis defaults
	defaultSamples = 100000
	defaultBins    = 24

	// Display limits
	histogramWidth = 50 // Characters for the fullest histogram bin
	firstValues    = 8  // Leading integer dither values to show
)

func main() {
	n := flag.Int("n", defaultSamples, "Number of dither samples to analyze")
	bins := flag.Int("bins", defaultBins, "Number of histogram bins")
	flag.Parse()

	fmt.Println("=== Analyzing Triangular Dither ===")

	head := analysis.GenerateInt(firstValues)
	fmt.Printf("First %d integer values: %v\n\n", firstValues, head)

	report, err := analysis.Analyze(analysis.Generate(*n), *bins)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Float dither statistics (%d samples):\n", report.Samples)
	fmt.Printf("  Mean:            %+.6f\n", report.Mean)
	fmt.Printf("  StdDev:          %.6f\n", report.StdDev)
	fmt.Printf("  RMS:             %.6f\n", report.RMS)
	fmt.Printf("  Excess kurtosis: %+.4f (uniform -1.2, triangular -0.6)\n", report.ExKurtosis)
	fmt.Printf("  Range:           [%+.6f, %+.6f]\n", report.Min, report.Max)
	fmt.Printf("  Peaked:          %v\n\n", report.Peaked())

	fmt.Println("Histogram:")
	var most float64
	for _, c := range report.Counts {
		most = math.Max(most, c)
	}
	for i, c := range report.Counts {
		bar := 0
		if most > 0 {
			bar = int(c / most * histogramWidth)
		}
		fmt.Printf("  [%+.3f, %+.3f) %6.0f %s\n", report.Edges[i], report.Edges[i+1], c, strings.Repeat("#", bar))
	}

	fmt.Println("\nSpectrum (high-pass check):")
	if report.LowBand == 0 {
		fmt.Printf("  Need at least %d samples for a band power estimate\n", analysis.FFTSize)
		return
	}
	fmt.Printf("  Low band power:  %.6g\n", report.LowBand)
	fmt.Printf("  High band power: %.6g\n", report.HighBand)
	fmt.Printf("  High/low ratio:  %.1f dB\n", 10*math.Log10(report.HighBand/report.LowBand))
}
