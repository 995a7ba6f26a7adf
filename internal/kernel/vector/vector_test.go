package vector

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-audio-sampleconv/internal/dither"
	"github.com/tphakala/go-audio-sampleconv/internal/kernel"
	tu "github.com/tphakala/go-audio-sampleconv/internal/testutil"
)

// reference is the portable kernel a vector kernel must reproduce.
func reference(id kernel.ID) kernel.ID {
	switch id {
	case kernel.Float32ToInt32Dither:
		return kernel.Float32ToInt32
	case kernel.Float32ToInt32DitherClip:
		return kernel.Float32ToInt32Clip
	default:
		return id
	}
}

func TestKernels_MatchPortable(t *testing.T) {
	counts := []int{1, 3, 4, 5, 64, 255, 256, 257, 1029}
	strides := []int{1, 2, 3}

	for id, fn := range Kernels() {
		for _, n := range counts {
			for _, stride := range strides {
				t.Run(fmt.Sprintf("%s/n=%d/stride=%d", id, n, stride), func(t *testing.T) {
					limit := float32(0.99)
					if id.Clips() {
						limit = 1.2
					}
					in := tu.Ramp(n*stride, -limit, limit)
					src := tu.Float32Bytes(in)
					w := id.Dest().Width()

					want := make([]byte, w*n*stride)
					got := make([]byte, w*n*stride)
					gs, gv := dither.New(), dither.New()

					kernel.Scalar(reference(id))(want, stride, src, stride, n, gs)
					fn(got, stride, src, stride, n, gv)

					require.Equal(t, want, got)
					if reference(id) == id {
						assert.Equal(t, gs.Int16(), gv.Int16(), "dither streams diverged")
					}
				})
			}
		}
	}
}

func TestKernels_Coverage(t *testing.T) {
	want := []kernel.ID{
		kernel.Float32ToInt32, kernel.Float32ToInt32Dither, kernel.Float32ToInt32Clip, kernel.Float32ToInt32DitherClip,
		kernel.Float32ToInt24, kernel.Float32ToInt24Dither, kernel.Float32ToInt24Clip, kernel.Float32ToInt24DitherClip,
		kernel.Float32ToInt16, kernel.Float32ToInt16Dither, kernel.Float32ToInt16Clip, kernel.Float32ToInt16DitherClip,
	}
	assert.Len(t, Kernels(), len(want))
	for _, id := range want {
		assert.NotNil(t, Kernel(id), "%s", id)
	}
	assert.Nil(t, Kernel(kernel.Int16ToFloat32))
}

func TestKernels_ContinueDitherStream(t *testing.T) {
	const n = 37
	in := tu.Float32Bytes(tu.Ramp(2*n, -0.5, 0.5))
	fn := Kernel(kernel.Float32ToInt16Dither)

	want := make([]byte, 4*n)
	got := make([]byte, 4*n)

	gs := dither.New()
	kernel.Scalar(kernel.Float32ToInt16Dither)(want, 1, in, 1, 2*n, gs)

	gv := dither.New()
	fn(got, 1, in, 1, n, gv)
	fn(got[2*n:], 1, in[4*n:], 1, n, gv)

	assert.Equal(t, want, got)
}

func TestStrategy(t *testing.T) {
	s := Strategy()
	if s == nil {
		t.Skip("no vector strategy on this architecture")
	}
	assert.Equal(t, Priority, s.Priority)
	assert.Len(t, s.AcceleratedIDs(), len(Kernels()))
	assert.True(t, s.Accelerated(kernel.Float32ToInt24Dither))
	assert.False(t, s.Accelerated(kernel.Int32ToFloat32))
	assert.NotNil(t, s.Kernel(kernel.Int32ToFloat32))
}
