package kernel

import (
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Table maps every converter identity to its kernel. A nil entry marks a
// conversion that has no implementation.
type Table [NumIDs]Func

// Strategy is a complete kernel table tied to the SIMD level it needs.
type Strategy struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	Priority  int

	kernels     Table
	accelerated [NumIDs]bool
}

// Kernel returns the kernel for id, or nil if the conversion is
// unimplemented.
func (s *Strategy) Kernel(id ID) Func {
	return s.kernels[id]
}

// Accelerated reports whether id runs a vector kernel in this strategy.
func (s *Strategy) Accelerated(id ID) bool {
	return s.accelerated[id]
}

// AcceleratedIDs lists the identities that run vector kernels.
func (s *Strategy) AcceleratedIDs() []ID {
	var out []ID
	for id := range NumIDs {
		if s.accelerated[id] {
			out = append(out, id)
		}
	}
	return out
}

var portableTable = Table{
	Float32ToInt32:           float32ToInt32,
	Float32ToInt32Dither:     float32ToInt32Dither,
	Float32ToInt32Clip:       float32ToInt32Clip,
	Float32ToInt32DitherClip: float32ToInt32DitherClip,

	Float32ToInt24:           float32ToInt24,
	Float32ToInt24Dither:     float32ToInt24Dither,
	Float32ToInt24Clip:       float32ToInt24Clip,
	Float32ToInt24DitherClip: float32ToInt24DitherClip,

	Float32ToInt16:           float32ToInt16,
	Float32ToInt16Dither:     float32ToInt16Dither,
	Float32ToInt16Clip:       float32ToInt16Clip,
	Float32ToInt16DitherClip: float32ToInt16DitherClip,

	Float32ToInt8:           float32ToInt8,
	Float32ToInt8Dither:     float32ToInt8Dither,
	Float32ToInt8Clip:       float32ToInt8Clip,
	Float32ToInt8DitherClip: float32ToInt8DitherClip,

	Float32ToUInt8:           float32ToUInt8,
	Float32ToUInt8Dither:     float32ToUInt8Dither,
	Float32ToUInt8Clip:       float32ToUInt8Clip,
	Float32ToUInt8DitherClip: float32ToUInt8DitherClip,

	Int32ToFloat32:     int32ToFloat32,
	Int32ToInt24:       int32ToInt24,
	Int32ToInt16:       int32ToInt16,
	Int32ToInt16Dither: int32ToInt16Dither,
	Int32ToInt8:        int32ToInt8,
	Int32ToInt8Dither:  int32ToInt8Dither,
	Int32ToUInt8:       int32ToUInt8,

	Int24ToFloat32:     int24ToFloat32,
	Int24ToInt32:       int24ToInt32,
	Int24ToInt16:       int24ToInt16,
	Int24ToInt16Dither: int24ToInt16Dither,
	Int24ToInt8:        int24ToInt8,
	Int24ToInt8Dither:  int24ToInt8Dither,
	Int24ToUInt8:       int24ToUInt8,

	Int16ToFloat32: int16ToFloat32,
	Int16ToInt32:   int16ToInt32,
	Int16ToInt24:   int16ToInt24,
	Int16ToInt8:    int16ToInt8,
	Int16ToUInt8:   int16ToUInt8,

	Int8ToFloat32: int8ToFloat32,
	Int8ToInt32:   int8ToInt32,
	Int8ToInt24:   int8ToInt24,
	Int8ToInt16:   int8ToInt16,
	Int8ToUInt8:   int8ToUInt8,

	UInt8ToFloat32: uint8ToFloat32,
	UInt8ToInt32:   uint8ToInt32,
	UInt8ToInt24:   uint8ToInt24,
	UInt8ToInt16:   uint8ToInt16,
	UInt8ToInt8:    uint8ToInt8,

	Copy8:  copy8,
	Copy16: copy16,
	Copy24: copy24,
	Copy32: copy32,
}

var portable = &Strategy{
	Name:      "portable",
	SIMDLevel: cpu.SIMDNone,
	Priority:  0,
	kernels:   portableTable,
}

// Portable returns the scalar strategy. It runs everywhere and implements
// every conversion that any strategy implements.
func Portable() *Strategy {
	return portable
}

// Scalar returns the portable kernel for id.
func Scalar(id ID) Func {
	return portableTable[id]
}

// NewStrategy builds a strategy from the portable table with the given
// kernels replaced. Overrides for unimplemented identities are ignored.
func NewStrategy(name string, level cpu.SIMDLevel, priority int, overrides map[ID]Func) *Strategy {
	s := &Strategy{
		Name:      name,
		SIMDLevel: level,
		Priority:  priority,
		kernels:   portableTable,
	}
	for id, fn := range overrides {
		if fn == nil || portableTable[id] == nil {
			continue
		}
		s.kernels[id] = fn
		s.accelerated[id] = true
	}
	return s
}

// Select returns the highest-priority strategy the features support.
// Nil candidates are skipped. The portable strategy is the fallback.
func Select(features cpu.Features, candidates ...*Strategy) *Strategy {
	best := portable
	for _, s := range candidates {
		if s == nil || !cpu.Supports(features, s.SIMDLevel) {
			continue
		}
		if s.Priority > best.Priority {
			best = s
		}
	}
	return best
}
