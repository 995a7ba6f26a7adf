package vector

import "github.com/cwbudde/algo-vecmath/cpu"

func simdLevel() (level cpu.SIMDLevel, name string, ok bool) {
	return cpu.SIMDSSE2, "sse2", true
}
