// Package rectify normalizes a spectrum by a moving-quantile estimate
// of its pseudo-continuum. A high quantile of the flux inside a sliding
// wavelength window tracks the continuum through absorption lines
// without modeling it physically; dividing by it makes line depths
// comparable across exposures.
package rectify

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cwbudde/algo-spectral/synth/core"
)

// Errors returned by Rectify.
var (
	ErrEmptyInput      = errors.New("rectify: empty input")
	ErrLengthMismatch  = errors.New("rectify: flux and wavelength lengths differ")
	ErrBandwidth       = errors.New("rectify: bandwidth must be positive")
	ErrQuantile        = errors.New("rectify: quantile must lie in (0, 1]")
	ErrNonAscendingWls = errors.New("rectify: wavelengths must ascend")
	ErrZeroContinuum   = errors.New("rectify: moving quantile is not positive")
)

// Config holds the rectification parameters.
type Config struct {
	// Bandwidth is the window half-width in wavelength units.
	Bandwidth float64

	// Quantile is the continuum estimator's rank, in (0, 1].
	Quantile float64
}

// DefaultConfig returns the standard parameters: a 50 Å half-width
// window with the 0.95 quantile.
func DefaultConfig() Config {
	return Config{
		Bandwidth: 50,
		Quantile:  0.95,
	}
}

// Option modifies a Config.
type Option func(*Config)

// WithBandwidth sets the window half-width in wavelength units.
func WithBandwidth(bandwidth float64) Option {
	return func(c *Config) {
		c.Bandwidth = bandwidth
	}
}

// WithQuantile sets the continuum estimator's rank.
func WithQuantile(q float64) Option {
	return func(c *Config) {
		c.Quantile = q
	}
}

// ApplyOptions builds a Config from the defaults and the given options.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Rectify divides flux by the moving Quantile of the flux values whose
// wavelength lies within Bandwidth of each grid point. The window is
// advanced with a two-pointer sweep, so the whole pass is near linear
// in the grid size apart from the per-window quantile sort. The input
// slices are not modified.
func Rectify(flux, wls []float64, opts ...Option) ([]float64, error) {
	cfg := ApplyOptions(opts...)

	if len(flux) == 0 {
		return nil, ErrEmptyInput
	}
	if len(flux) != len(wls) {
		return nil, ErrLengthMismatch
	}
	if cfg.Bandwidth <= 0 {
		return nil, ErrBandwidth
	}
	if cfg.Quantile <= 0 || cfg.Quantile > 1 {
		return nil, ErrQuantile
	}
	for i := 1; i < len(wls); i++ {
		if wls[i] <= wls[i-1] {
			return nil, ErrNonAscendingWls
		}
	}

	out := make([]float64, len(flux))
	window := make([]float64, 0, 256)

	lower, upper := 0, 0
	for i, wl := range wls {
		lower, upper = core.MoveBounds(wls, lower, upper, wl, cfg.Bandwidth)

		window = append(window[:0], flux[lower:upper]...)
		sort.Float64s(window)

		cont := quantileSorted(window, cfg.Quantile)
		if cont <= 0 {
			return nil, fmt.Errorf("%w: index %d", ErrZeroContinuum, i)
		}
		out[i] = flux[i] / cont
	}

	return out, nil
}

// quantileSorted interpolates the q-quantile of an ascending slice.
func quantileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(pos)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[lo+1]*frac
}
