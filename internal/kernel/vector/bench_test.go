package vector

import (
	"testing"

	"github.com/tphakala/go-audio-sampleconv/internal/dither"
	"github.com/tphakala/go-audio-sampleconv/internal/kernel"
	tu "github.com/tphakala/go-audio-sampleconv/internal/testutil"
)

func BenchmarkFloat32ToInt16Dither(b *testing.B) {
	const n = 4096
	src := tu.Float32Bytes(tu.Ramp(n, -1, 1))
	dst := make([]byte, 2*n)
	g := dither.New()

	for _, impl := range []struct {
		name string
		fn   kernel.Func
	}{
		{"portable", kernel.Scalar(kernel.Float32ToInt16Dither)},
		{"vector", Kernel(kernel.Float32ToInt16Dither)},
	} {
		b.Run(impl.name, func(b *testing.B) {
			b.SetBytes(4 * n)
			b.ReportAllocs()
			for b.Loop() {
				impl.fn(dst, 1, src, 1, n, g)
			}
		})
	}
}
