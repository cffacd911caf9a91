// Package continuum provides the wavelength-smooth part of the
// absorption coefficient: the interpolated per-layer opacity curve and
// a reference hydrogenic continuum model.
//
// Continuum opacity varies slowly with wavelength, so it is evaluated
// on a coarse grid and interpolated onto the synthesis grid. The Curve
// abstraction keeps the interpolation scheme replaceable.
package continuum

import (
	"errors"

	"github.com/cwbudde/algo-spectral/synth/species"
)

// Curve evaluates a per-layer continuum opacity at a wavelength in cm.
type Curve interface {
	Evaluate(wl float64) float64
}

// Model computes continuum opacities for one layer. Frequencies are in
// Hz, ascending; the result has one value per frequency in input order.
// The partition functions map may be consulted for the species present
// in the density map.
type Model interface {
	Evaluate(freqs []float64, temp, ne float64, n map[species.Species]float64, partition map[species.Species]species.PartitionFunc) ([]float64, error)
}

// Errors returned by curve construction.
var (
	ErrCurveTooShort = errors.New("continuum: curve needs at least two knots")
	ErrCurveLengths  = errors.New("continuum: knot and value counts differ")
)

// linearCurve interpolates piecewise-linearly between knots with an
// evenly spaced abscissa, allowing O(1) segment lookup.
type linearCurve struct {
	x0, step float64
	ys       []float64
}

// NewLinearCurve builds a piecewise-linear Curve over the evenly spaced
// knots starting at x0 with the given spacing.
func NewLinearCurve(x0, step float64, ys []float64) (Curve, error) {
	if len(ys) < 2 {
		return nil, ErrCurveTooShort
	}
	if step <= 0 {
		return nil, errors.New("continuum: knot spacing must be > 0")
	}

	vals := make([]float64, len(ys))
	copy(vals, ys)

	return &linearCurve{x0: x0, step: step, ys: vals}, nil
}

// Evaluate returns the interpolated value at wl, clamping to the end
// values outside the knot span.
func (c *linearCurve) Evaluate(wl float64) float64 {
	t := (wl - c.x0) / c.step
	if t <= 0 {
		return c.ys[0]
	}
	if t >= float64(len(c.ys)-1) {
		return c.ys[len(c.ys)-1]
	}

	i := int(t)
	frac := t - float64(i)

	return c.ys[i] + frac*(c.ys[i+1]-c.ys[i])
}

// Reverse returns a reversed copy of xs. Continuum models work in
// ascending frequency, which is descending wavelength; callers reverse
// the wavelength grid on the way in and the opacities on the way out.
func Reverse(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[len(xs)-1-i] = v
	}

	return out
}

// ReverseInPlace reverses xs in place.
func ReverseInPlace(xs []float64) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}
