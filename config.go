package sampleconv

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Strategy names accepted by Config.Strategy.
const (
	StrategyAuto     = ""
	StrategyPortable = "portable"
	StrategyVector   = "vector"
)

// Config holds the options fixed when a Registry is built.
type Config struct {
	// EnableSIMD allows vector kernels when the CPU supports them.
	EnableSIMD bool

	// Strategy forces a kernel set. StrategyAuto picks the best one the
	// CPU supports; StrategyVector uses the vector kernels without
	// consulting CPU features.
	Strategy string

	// Features overrides CPU detection. Nil means detect.
	Features *cpu.Features
}

// DefaultConfig returns a configuration with vector kernels enabled and
// CPU features detected at runtime.
func DefaultConfig() *Config {
	return &Config{EnableSIMD: true}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Strategy {
	case StrategyAuto, StrategyPortable:
	case StrategyVector:
		if !c.EnableSIMD {
			return fmt.Errorf("%w: vector strategy requires EnableSIMD", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfig, c.Strategy)
	}
	return nil
}

func (c *Config) features() cpu.Features {
	if c.Features != nil {
		return *c.Features
	}
	return cpu.DetectFeatures()
}
