package sampleconv

import (
	"fmt"
	"sort"

	simdcpu "github.com/tphakala/simd/cpu"

	"github.com/tphakala/go-audio-sampleconv/internal/kernel"
	"github.com/tphakala/go-audio-sampleconv/internal/kernel/vector"
	"github.com/tphakala/go-audio-sampleconv/internal/sample"
)

// Key identifies one converter request. Source and Destination are single
// encodings; Dither and Clip say which processing is enabled.
type Key struct {
	Source      SampleFormat
	Destination SampleFormat
	Dither      bool
	Clip        bool
}

// KeyFor returns the key Select would look up.
func KeyFor(src, dst SampleFormat, flags Flags) Key {
	return Key{
		Source:      src.Base(),
		Destination: dst.Base(),
		Dither:      flags.dither(),
		Clip:        flags.clip(),
	}
}

func keyIndex(ditherOn, clip bool) int {
	i := 0
	if ditherOn {
		i |= 1
	}
	if clip {
		i |= 2
	}
	return i
}

type entry struct {
	conv *Converter
	err  error
}

// Registry resolves converter requests against one kernel strategy. It is
// built once, never modified, and safe for concurrent use.
type Registry struct {
	strategy *kernel.Strategy
	simd     bool
	table    [sample.NumKinds][sample.NumKinds][4]entry
	zeroers  [sample.NumKinds]Zeroer
}

// NewRegistry builds the converter table. A nil config means
// DefaultConfig().
func NewRegistry(cfg *Config) (*Registry, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	strategy, err := pickStrategy(cfg)
	if err != nil {
		return nil, err
	}

	r := &Registry{
		strategy: strategy,
		simd:     len(strategy.AcceleratedIDs()) > 0,
	}
	for sk := range sample.Kind(sample.NumKinds) {
		for dk := range sample.Kind(sample.NumKinds) {
			for _, ditherOn := range []bool{false, true} {
				for _, clip := range []bool{false, true} {
					r.table[sk][dk][keyIndex(ditherOn, clip)] = r.build(sk, dk, ditherOn, clip)
				}
			}
		}
		r.zeroers[sk] = Zeroer{format: kindFormats[sk], fn: kernel.Zeroer(sk)}
	}
	return r, nil
}

func pickStrategy(cfg *Config) (*kernel.Strategy, error) {
	switch cfg.Strategy {
	case StrategyPortable:
		return kernel.Portable(), nil
	case StrategyVector:
		s := vector.Strategy()
		if s == nil {
			return nil, fmt.Errorf("%w: no vector strategy on this architecture", ErrInvalidConfig)
		}
		return s, nil
	}
	if !cfg.EnableSIMD {
		return kernel.Portable(), nil
	}
	return kernel.Select(cfg.features(), vector.Strategy()), nil
}

func (r *Registry) build(sk, dk sample.Kind, ditherOn, clip bool) entry {
	id := resolve(sk, dk, ditherOn, clip)
	fn := r.strategy.Kernel(id)
	if fn == nil {
		return entry{err: fmt.Errorf("%w: %s", ErrUnimplementedConversion, id)}
	}
	return entry{conv: &Converter{
		id:          id,
		fn:          fn,
		src:         kindFormats[sk],
		dst:         kindFormats[dk],
		accelerated: r.strategy.Accelerated(id),
	}}
}

// Select returns the converter from src to dst honoring flags. The
// NonInterleaved bit is ignored. Identical formats always return a copy
// converter regardless of flags.
func (r *Registry) Select(src, dst SampleFormat, flags Flags) (*Converter, error) {
	return r.Lookup(KeyFor(src, dst, flags))
}

// Lookup returns the converter for k.
func (r *Registry) Lookup(k Key) (*Converter, error) {
	sk, ok := k.Source.kind()
	if !ok {
		return nil, fmt.Errorf("%w: source %s", ErrFormatNotSupported, k.Source)
	}
	dk, ok := k.Destination.kind()
	if !ok {
		return nil, fmt.Errorf("%w: destination %s", ErrFormatNotSupported, k.Destination)
	}
	e := r.table[sk][dk][keyIndex(k.Dither, k.Clip)]
	if e.err != nil {
		return nil, e.err
	}
	return e.conv, nil
}

// SelectZeroer returns the silence writer for format.
func (r *Registry) SelectZeroer(format SampleFormat) (*Zeroer, error) {
	k, ok := format.kind()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFormatNotSupported, format)
	}
	return &r.zeroers[k], nil
}

// Converters lists every key that resolves to a converter, ordered by
// source, destination, dither and clip.
func (r *Registry) Converters() []Key {
	var keys []Key
	for sk := range sample.Kind(sample.NumKinds) {
		for dk := range sample.Kind(sample.NumKinds) {
			for _, ditherOn := range []bool{false, true} {
				for _, clip := range []bool{false, true} {
					if r.table[sk][dk][keyIndex(ditherOn, clip)].conv == nil {
						continue
					}
					keys = append(keys, Key{
						Source:      kindFormats[sk],
						Destination: kindFormats[dk],
						Dither:      ditherOn,
						Clip:        clip,
					})
				}
			}
		}
	}
	return keys
}

// Info describes the registry's kernel strategy.
type Info struct {
	// Strategy names the kernel set in use.
	Strategy string

	// SIMDEnabled indicates if any converter runs a vector kernel.
	SIMDEnabled bool

	// SIMDType describes the SIMD instruction set used for block math.
	SIMDType string

	// Accelerated lists the converters that run vector kernels.
	Accelerated []string
}

// Info returns information about the registry.
func (r *Registry) Info() Info {
	var names []string
	for _, id := range r.strategy.AcceleratedIDs() {
		names = append(names, id.String())
	}
	sort.Strings(names)

	info := Info{
		Strategy:    r.strategy.Name,
		SIMDEnabled: r.simd,
		Accelerated: names,
	}
	if r.simd {
		info.SIMDType = simdcpu.Info()
	}
	return info
}
