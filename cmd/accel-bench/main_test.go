package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-audio-sampleconv/internal/accelcheck"
	"github.com/tphakala/go-audio-sampleconv/internal/kernel"
)

func TestListKernels(t *testing.T) {
	var buf bytes.Buffer
	listKernels(&buf)
	out := buf.String()
	assert.Contains(t, out, "Float32ToInt16DitherClip\n")
	assert.Contains(t, out, "Float32ToInt24\n")
	assert.NotContains(t, out, "Float32ToInt8")
}

func TestPrintResults(t *testing.T) {
	results := []accelcheck.Result{
		{ID: kernel.Float32ToInt16, Size: 64, Stride: 1, Scalar: 2 * time.Microsecond, Vector: time.Microsecond},
		{ID: kernel.Float32ToInt24, Size: 64, Stride: 2, MaxDiff: 4, Tolerance: 1, Mismatches: 2},
	}

	var buf bytes.Buffer
	printResults(&buf, results, true)
	out := buf.String()
	assert.Contains(t, out, "Speedup")
	assert.Contains(t, out, "2.00x")
	assert.Contains(t, out, "FAIL (2 samples)")

	buf.Reset()
	printResults(&buf, results, false)
	assert.NotContains(t, buf.String(), "Speedup")
}

func TestPrintHeader(t *testing.T) {
	var buf bytes.Buffer
	printHeader(&buf)
	assert.Contains(t, buf.String(), "SIMD backend:")
	assert.Contains(t, buf.String(), "Vector strategy:")
}
