// Package dither generates the high-passed triangular noise added to samples
// before they are narrowed to a smaller integer width.
//
// Two uniform pseudo-random streams are summed to obtain a triangular
// distribution, and a first-order difference moves the noise energy toward
// high frequencies where it is least audible. The 4-lane variants produce
// exactly the values four successive scalar calls would produce, so scalar
// and vector kernels may be mixed on one stream without changing its output.
package dither

// Linear congruential generator constants. The sequence relies on uint32
// wraparound.
const (
	lcgMul uint32 = 196314165
	lcgAdd uint32 = 907633515
)

// Initial generator state.
const (
	seed1Init uint32 = 22222
	seed2Init uint32 = 5555555
)

const (
	// Bits is the dither amplitude in bits.
	Bits = 15

	// shift keeps the top Bits-1 bits of each seed so the sum of two
	// streams fits in Bits bits.
	shift = 32 - Bits + 1

	// FloatScale maps an integer dither value to roughly [-1, 1).
	FloatScale float32 = 1.0 / ((1 << Bits) - 1)

	// Float24Scale expresses the dither in the 32-bit scale used before the
	// low byte is dropped on 24-bit output.
	Float24Scale float32 = FloatScale * 256
)

// Lanes is the number of values produced per vector call.
const Lanes = 4

// laneMul and laneAdd advance one seed by k+1 steps in a single
// multiply-add: seed_{n+k+1} = laneMul[k]*seed_n + laneAdd[k].
var laneMul, laneAdd = jumpTable()

func jumpTable() (mul, add [Lanes]uint32) {
	m, a := uint32(1), uint32(0)
	for k := range Lanes {
		m *= lcgMul
		a = a*lcgMul + lcgAdd
		mul[k], add[k] = m, a
	}
	return mul, add
}

// Generator holds the state of one dither stream. A Generator is not safe
// for concurrent use; give each channel or stream its own.
type Generator struct {
	previous int32
	seed1    uint32
	seed2    uint32
}

// New returns a generator in its initial state.
func New() *Generator {
	g := &Generator{}
	g.Reset()
	return g
}

// Reset restores the initial state so the stream repeats from its start.
func (g *Generator) Reset() {
	g.previous = 0
	g.seed1 = seed1Init
	g.seed2 = seed2Init
}

// next advances both seeds and returns the high-passed triangular value.
func (g *Generator) next() int32 {
	g.seed1 = g.seed1*lcgMul + lcgAdd
	g.seed2 = g.seed2*lcgMul + lcgAdd
	current := (int32(g.seed1) >> shift) + (int32(g.seed2) >> shift)
	highPass := current - g.previous
	g.previous = current
	return highPass
}

// Int16 returns the next dither value, ranged for adding to a 32-bit sample
// that has been shifted right by one bit before a final shift of 15.
// The result lies in [-32768, 32767].
func (g *Generator) Int16() int32 {
	return g.next()
}

// Float returns the next dither value ranged for adding to a float sample
// scaled slightly below full scale. The result lies within [-1, 1].
func (g *Generator) Float() float32 {
	return float32(g.next()) * FloatScale
}

// Float24 returns the next dither value for 24-bit output computed at
// 32-bit scale.
func (g *Generator) Float24() float32 {
	return float32(g.next()) * Float24Scale
}

// Int16x4 returns the next four dither values at once.
func (g *Generator) Int16x4() [Lanes]int32 {
	var s1, s2 [Lanes]uint32
	for k := range Lanes {
		s1[k] = laneMul[k]*g.seed1 + laneAdd[k]
		s2[k] = laneMul[k]*g.seed2 + laneAdd[k]
	}
	var out [Lanes]int32
	prev := g.previous
	for k := range Lanes {
		c := (int32(s1[k]) >> shift) + (int32(s2[k]) >> shift)
		out[k] = c - prev
		prev = c
	}
	g.seed1 = s1[Lanes-1]
	g.seed2 = s2[Lanes-1]
	g.previous = prev
	return out
}

// Floatx4 is the 4-lane form of Float.
func (g *Generator) Floatx4() [Lanes]float32 {
	return g.scaledx4(FloatScale)
}

// Float24x4 is the 4-lane form of Float24.
func (g *Generator) Float24x4() [Lanes]float32 {
	return g.scaledx4(Float24Scale)
}

func (g *Generator) scaledx4(scale float32) [Lanes]float32 {
	v := g.Int16x4()
	var out [Lanes]float32
	for k, d := range v {
		out[k] = float32(d) * scale
	}
	return out
}
