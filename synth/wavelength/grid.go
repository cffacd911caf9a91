package wavelength

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by range construction.
var (
	ErrDescendingGrid       = errors.New("wavelength: grid must be ascending with positive step")
	ErrAirGridApproximation = errors.New("wavelength: air grid cannot be represented as a linear vacuum grid within tolerance")
)

// DefaultConversionTolerance is the maximum deviation, in the same unit
// as the grid, tolerated when replacing a pointwise air-to-vacuum
// converted grid by an evenly spaced one.
const DefaultConversionTolerance = 1e-4

// Range is an evenly spaced ascending wavelength grid. The zero value is
// not usable; construct one with NewRange or NewAirRange.
type Range struct {
	start float64
	step  float64
	n     int
}

// NewRange builds an evenly spaced range covering [start, stop] with the
// given step. The range has floor((stop-start)/step)+1 points; stop is
// included only when it lies on the step lattice.
func NewRange(start, stop, step float64) (Range, error) {
	if step <= 0 || stop < start {
		return Range{}, fmt.Errorf("%w: start=%g stop=%g step=%g", ErrDescendingGrid, start, stop, step)
	}

	n := int(math.Floor((stop-start)/step)) + 1

	return Range{start: start, step: step, n: n}, nil
}

// NewAirRange builds a vacuum range approximately equivalent to the
// evenly spaced air range [start, stop] with the given step (all in Å).
//
// The endpoints are converted to vacuum and a linear vacuum range with
// the same point count is constructed. Because the air-to-vacuum mapping
// is not linear, this range deviates from the pointwise conversion of
// the air grid; if the maximum absolute deviation exceeds tol the range
// is rejected with ErrAirGridApproximation. A tol <= 0 selects
// DefaultConversionTolerance.
func NewAirRange(start, stop, step, tol float64) (Range, error) {
	if tol <= 0 {
		tol = DefaultConversionTolerance
	}

	air, err := NewRange(start, stop, step)
	if err != nil {
		return Range{}, err
	}

	vacStart := AirToVacuum(air.At(0))
	vacStop := AirToVacuum(air.At(air.Len() - 1))

	vac := Range{start: vacStart, n: air.Len()}
	if air.Len() > 1 {
		vac.step = (vacStop - vacStart) / float64(air.Len()-1)
	} else {
		vac.step = step
	}

	if vac.step <= 0 {
		return Range{}, fmt.Errorf("%w: converted step %g", ErrDescendingGrid, vac.step)
	}

	maxErr := 0.0
	for i := 0; i < air.Len(); i++ {
		diff := math.Abs(vac.At(i) - AirToVacuum(air.At(i)))
		if diff > maxErr {
			maxErr = diff
		}
	}

	if maxErr > tol {
		return Range{}, fmt.Errorf("%w: max deviation %g exceeds %g", ErrAirGridApproximation, maxErr, tol)
	}

	return vac, nil
}

// Len returns the number of grid points.
func (r Range) Len() int { return r.n }

// Step returns the grid spacing.
func (r Range) Step() float64 { return r.step }

// Min returns the first grid point.
func (r Range) Min() float64 { return r.start }

// Max returns the last grid point.
func (r Range) Max() float64 { return r.start + float64(r.n-1)*r.step }

// At returns the i-th grid point.
func (r Range) At(i int) float64 { return r.start + float64(i)*r.step }

// Values materializes the grid as a slice.
func (r Range) Values() []float64 {
	out := make([]float64, r.n)
	for i := range out {
		out[i] = r.At(i)
	}

	return out
}

// Scale returns the range with start and step multiplied by f. It is
// used to move a grid between Å and cm without re-deriving it.
func (r Range) Scale(f float64) Range {
	return Range{start: r.start * f, step: r.step * f, n: r.n}
}
