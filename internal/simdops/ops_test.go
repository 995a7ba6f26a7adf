package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScale_MatchesScalarFloat32(t *testing.T) {
	ops := Float32Ops()
	for _, n := range []int{1, 3, 4, 7, 16, 255, 256} {
		a := make([]float32, n)
		for i := range a {
			a[i] = float32((i%256)-128) / 128
		}
		dst := make([]float32, n)
		for _, s := range []float32{32767, 32766, 127, 2147483647} {
			ops.Scale(dst, a, s)
			for i := range a {
				require.Equal(t, a[i]*s, dst[i], "n=%d s=%v i=%d", n, s, i)
			}
		}
	}
}

func TestScale_MatchesScalarFloat64(t *testing.T) {
	ops := Float64Ops()
	a := make([]float64, 259)
	for i := range a {
		a[i] = float64(float32(i%256-128) / 128)
	}
	dst := make([]float64, len(a))
	for _, s := range []float64{2147483647, 2147483646} {
		ops.Scale(dst, a, s)
		for i := range a {
			require.Equal(t, a[i]*s, dst[i], "s=%v i=%d", s, i)
		}
	}
}

func TestSumAndDotProduct(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{2, 2, 2, 2, 2}
	assert.InDelta(t, 15.0, Float64Ops().Sum(a), 1e-12)
	assert.InDelta(t, 30.0, Float64Ops().DotProductUnsafe(a, b), 1e-12)
	assert.InDelta(t, float32(15), Float32Ops().Sum([]float32{1, 2, 3, 4, 5}), 1e-6)
}

func BenchmarkScaleFloat32(b *testing.B) {
	ops := Float32Ops()
	a := make([]float32, 256)
	dst := make([]float32, 256)
	for i := range a {
		a[i] = float32(i) * 0.001
	}

	b.ReportAllocs()
	for b.Loop() {
		ops.Scale(dst, a, 32767)
	}
}
