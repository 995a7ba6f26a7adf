// Package testutil provides reusable helpers for sample conversion tests:
// buffer encoders and decoders in host byte order plus testify assertions.
package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-audio-sampleconv/internal/sample"
)

// Float32Bytes encodes values as a contiguous float32 buffer.
func Float32Bytes(values []float32) []byte {
	b := make([]byte, 4*len(values))
	for i, v := range values {
		sample.StoreFloat32(b, 4*i, v)
	}
	return b
}

// Int32Bytes encodes values as a contiguous int32 buffer.
func Int32Bytes(values []int32) []byte {
	b := make([]byte, 4*len(values))
	for i, v := range values {
		sample.StoreInt32(b, 4*i, v)
	}
	return b
}

// Int24Bytes encodes signed 24-bit values as a packed 3-byte buffer.
func Int24Bytes(values []int32) []byte {
	b := make([]byte, 3*len(values))
	for i, v := range values {
		sample.StoreInt24(b, 3*i, v<<8)
	}
	return b
}

// Int16Bytes encodes values as a contiguous int16 buffer.
func Int16Bytes(values []int16) []byte {
	b := make([]byte, 2*len(values))
	for i, v := range values {
		sample.StoreInt16(b, 2*i, v)
	}
	return b
}

// Int8Bytes encodes values as a contiguous int8 buffer.
func Int8Bytes(values []int8) []byte {
	b := make([]byte, len(values))
	for i, v := range values {
		b[i] = byte(v)
	}
	return b
}

// Float32s decodes n float32 samples at the given stride.
func Float32s(b []byte, stride, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = sample.LoadFloat32(b, 4*i*stride)
	}
	return out
}

// Int32s decodes n int32 samples at the given stride.
func Int32s(b []byte, stride, n int) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = sample.LoadInt32(b, 4*i*stride)
	}
	return out
}

// Int24s decodes n packed 24-bit samples as signed 24-bit values.
func Int24s(b []byte, stride, n int) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = sample.Int24Value(sample.LoadInt24(b, 3*i*stride))
	}
	return out
}

// Int16s decodes n int16 samples at the given stride.
func Int16s(b []byte, stride, n int) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = sample.LoadInt16(b, 2*i*stride)
	}
	return out
}

// Int8s decodes n int8 samples at the given stride.
func Int8s(b []byte, stride, n int) []int8 {
	out := make([]int8, n)
	for i := range out {
		out[i] = int8(b[i*stride])
	}
	return out
}

// Ramp returns n float32 values stepping linearly from lo to hi inclusive.
func Ramp(n int, lo, hi float32) []float32 {
	out := make([]float32, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (float64(hi) - float64(lo)) / float64(n-1)
	for i := range out {
		out[i] = float32(float64(lo) + float64(i)*step)
	}
	return out
}

// Integer is the constraint for decoded integer samples.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// AssertWithinUnits verifies that every element of got lies within tol
// units of the corresponding element of want.
func AssertWithinUnits[T Integer](t *testing.T, want, got []T, tol int64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, got, len(want), msgAndArgs...) {
		return false
	}
	for i := range want {
		diff := int64(got[i]) - int64(want[i])
		if diff < -tol || diff > tol {
			return assert.Fail(t, fmt.Sprintf("index %d: got %d, want %d (tolerance %d)", i, got[i], want[i], tol), msgAndArgs...)
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float32, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
			return assert.Fail(t, fmt.Sprintf("s[%d] is %v", i, v), msgAndArgs...)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, fmt.Sprintf("s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal), msgAndArgs...)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is monotonically non-decreasing.
func AssertMonotonic(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, fmt.Sprintf("not monotonic: s[%d]=%f < s[%d]=%f", i, s[i], i-1, s[i-1]), msgAndArgs...)
		}
	}
	return true
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, fmt.Sprintf("value %f is outside range [%f, %f]", value, minVal, maxVal), msgAndArgs...)
	}
	return true
}
