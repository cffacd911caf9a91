package engine

import (
	"github.com/cwbudde/algo-spectral/synth/eqstate"
	"github.com/cwbudde/algo-spectral/synth/wavelength"
)

// Config defines the synthesis settings. Lengths are Å and velocities
// km/s; conversion to CGS happens inside Synthesize.
type Config struct {
	Metallicity         float64
	Abundances          map[string]float64
	VmicKms             float64
	AirWavelengths      bool
	ConversionTolerance float64
	LineBuffer          float64
	CntmStep            float64
	HydrogenLines       bool
	MuGrid              []float64
	LineCutoff          float64
	Tables              eqstate.Tables
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sensible defaults for late-type stars.
func DefaultConfig() Config {
	return Config{
		VmicKms:             1.0,
		ConversionTolerance: wavelength.DefaultConversionTolerance,
		LineBuffer:          10,
		CntmStep:            1,
		HydrogenLines:       true,
		LineCutoff:          3e-4,
		Tables:              eqstate.DefaultTables(),
	}
}

// WithMetallicity sets the metallicity [M/H].
func WithMetallicity(mh float64) Option {
	return func(cfg *Config) {
		cfg.Metallicity = mh
	}
}

// WithAbundances sets explicit per-element A(X) overrides.
func WithAbundances(overrides map[string]float64) Option {
	return func(cfg *Config) {
		cfg.Abundances = overrides
	}
}

// WithVmic sets the microturbulent velocity in km/s.
func WithVmic(kms float64) Option {
	return func(cfg *Config) {
		if kms >= 0 {
			cfg.VmicKms = kms
		}
	}
}

// WithAirWavelengths declares the requested grid to be air wavelengths;
// the grid is converted to vacuum before synthesis.
func WithAirWavelengths(air bool) Option {
	return func(cfg *Config) {
		cfg.AirWavelengths = air
	}
}

// WithConversionTolerance sets the maximum deviation, in Å, accepted
// when a linear air grid is replaced by a linear vacuum grid.
func WithConversionTolerance(tol float64) Option {
	return func(cfg *Config) {
		if tol > 0 {
			cfg.ConversionTolerance = tol
		}
	}
}

// WithLineBuffer sets how far beyond the synthesis window, in Å, line
// transitions are still considered.
func WithLineBuffer(buffer float64) Option {
	return func(cfg *Config) {
		if buffer >= 0 {
			cfg.LineBuffer = buffer
		}
	}
}

// WithCntmStep sets the spacing, in Å, of the coarse grid the continuum
// is evaluated on before interpolation.
func WithCntmStep(step float64) Option {
	return func(cfg *Config) {
		if step > 0 {
			cfg.CntmStep = step
		}
	}
}

// WithHydrogenLines enables or disables hydrogen line opacity.
func WithHydrogenLines(enabled bool) Option {
	return func(cfg *Config) {
		cfg.HydrogenLines = enabled
	}
}

// WithMuGrid sets the surface angle grid used for spherical geometries.
func WithMuGrid(mu []float64) Option {
	return func(cfg *Config) {
		cfg.MuGrid = mu
	}
}

// WithLineCutoff sets the fraction of the local continuum opacity below
// which a line profile is truncated. The dominant cost/accuracy knob.
func WithLineCutoff(cutoff float64) Option {
	return func(cfg *Config) {
		if cutoff >= 0 {
			cfg.LineCutoff = cutoff
		}
	}
}

// WithTables replaces the ionization, partition-function, and molecular
// equilibrium data tables.
func WithTables(tables eqstate.Tables) Option {
	return func(cfg *Config) {
		cfg.Tables = tables
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
