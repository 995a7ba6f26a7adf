// Command accel-bench cross-checks the vector conversion kernels against
// the portable ones and reports their timings.
//
// Usage:
//
//	accel-bench                      # every accelerated converter
//	accel-bench -filter Int24        # converters whose name contains Int24
//	accel-bench -reps 0              # correctness only
//	accel-bench -list                # list accelerated converters
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/cwbudde/algo-vecmath/cpu"
	simdcpu "github.com/tphakala/simd/cpu"

	"github.com/tphakala/go-audio-sampleconv/internal/accelcheck"
	"github.com/tphakala/go-audio-sampleconv/internal/kernel/vector"
)

func main() {
	if err := run(os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer) error {
	var (
		reps   = flag.Int("reps", defaultRepetitions, "Timed conversions per case (0 skips timing)")
		filter = flag.String("filter", "", "Only converters whose name contains this text")
		list   = flag.Bool("list", false, "List accelerated converters and exit")
	)
	flag.Parse()

	if *list {
		listKernels(w)
		return nil
	}

	printHeader(w)

	opts := accelcheck.DefaultOptions()
	opts.Repetitions = *reps
	opts.Filter = *filter

	results, err := accelcheck.Run(vector.Kernels(), opts)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("no accelerated converter matches %q", *filter)
	}

	printResults(w, results, *reps > 0)

	if failed := accelcheck.Failed(results); len(failed) > 0 {
		return fmt.Errorf("%d of %d cases exceeded tolerance", len(failed), len(results))
	}
	fmt.Fprintf(w, "\nAll %d cases within tolerance.\n", len(results))
	return nil
}

func listKernels(w io.Writer) {
	var names []string
	for id := range vector.Kernels() {
		names = append(names, id.String())
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintln(w, n)
	}
}

func printHeader(w io.Writer) {
	features := cpu.DetectFeatures()
	fmt.Fprintf(w, "Architecture: %s\n", features.Architecture)
	fmt.Fprintf(w, "SIMD backend: %s\n", simdcpu.Info())
	if s := vector.Strategy(); s != nil && cpu.Supports(features, s.SIMDLevel) {
		fmt.Fprintf(w, "Vector strategy: %s (selected by default)\n", s.Name)
	} else {
		fmt.Fprintf(w, "Vector strategy: not selected on this CPU, checking kernels anyway\n")
	}
	fmt.Fprintln(w)
}

func printResults(w io.Writer, results []accelcheck.Result, timed bool) {
	if timed {
		fmt.Fprintf(w, "%-28s %6s %6s %8s %6s %12s %12s %8s\n",
			"Converter", "Size", "Stride", "MaxDiff", "Tol", "Scalar(us)", "Vector(us)", "Speedup")
	} else {
		fmt.Fprintf(w, "%-28s %6s %6s %8s %6s\n", "Converter", "Size", "Stride", "MaxDiff", "Tol")
	}

	for _, r := range results {
		status := ""
		if !r.Passed() {
			status = fmt.Sprintf("  FAIL (%d samples)", r.Mismatches)
		}
		if timed {
			fmt.Fprintf(w, "%-28s %6d %6d %8d %6d %12.1f %12.1f %7.2fx%s\n",
				r.ID, r.Size, r.Stride, r.MaxDiff, r.Tolerance,
				float64(r.Scalar.Nanoseconds())/nanosPerMicro,
				float64(r.Vector.Nanoseconds())/nanosPerMicro,
				r.Speedup(), status)
			continue
		}
		fmt.Fprintf(w, "%-28s %6d %6d %8d %6d%s\n",
			r.ID, r.Size, r.Stride, r.MaxDiff, r.Tolerance, status)
	}
}
