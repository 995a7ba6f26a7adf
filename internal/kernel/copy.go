package kernel

import (
	"github.com/tphakala/go-audio-sampleconv/internal/dither"
)

// copyWidth moves count elements of width bytes. Contiguous buffers are
// copied in one call.
func copyWidth(width int, dst []byte, dstStride int, src []byte, srcStride int, count int) {
	if count <= 0 {
		return
	}
	if dstStride == 1 && srcStride == 1 {
		n := count * width
		copy(dst[:n], src[:n])
		return
	}
	ss, ds := srcStride*width, dstStride*width
	for i := range count {
		copy(dst[i*ds:i*ds+width], src[i*ss:i*ss+width])
	}
}

func copy8(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	copyWidth(1, dst, dstStride, src, srcStride, count)
}

func copy16(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	copyWidth(2, dst, dstStride, src, srcStride, count)
}

func copy24(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	copyWidth(3, dst, dstStride, src, srcStride, count)
}

func copy32(dst []byte, dstStride int, src []byte, srcStride int, count int, _ *dither.Generator) {
	copyWidth(4, dst, dstStride, src, srcStride, count)
}
