// Package linelist holds spectral line transitions and the windowing
// applied to them before synthesis.
package linelist

import (
	"sort"

	"github.com/cwbudde/algo-spectral/synth/species"
)

// Transition is one spectral line. Wavelength is the vacuum wavelength
// in cm; LogGF is log10 of the oscillator strength times the statistical
// weight; ExcitationPotential is the lower-level energy in eV. The
// Gamma fields are broadening parameters: radiative FWHM in s^-1, and
// the Stark and van der Waals per-perturber values at 10^4 K.
type Transition struct {
	Wavelength          float64
	LogGF               float64
	Species             species.Species
	ExcitationPotential float64
	GammaRad            float64
	GammaStark          float64
	GammaVdW            float64
}

// Sorted reports whether lines are ascending in wavelength.
func Sorted(lines []Transition) bool {
	return sort.SliceIsSorted(lines, func(i, j int) bool {
		return lines[i].Wavelength < lines[j].Wavelength
	})
}

// SortByWavelength sorts lines ascending in wavelength, in place.
func SortByWavelength(lines []Transition) {
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Wavelength < lines[j].Wavelength
	})
}

// FilterWindow returns the lines with wavelength in [min-buffer,
// max+buffer]. Lines outside are dropped entirely; truncating their
// profiles instead would re-admit the cost the buffer exists to bound.
// The input must be sorted ascending.
func FilterWindow(lines []Transition, min, max, buffer float64) []Transition {
	lo := sort.Search(len(lines), func(i int) bool {
		return lines[i].Wavelength >= min-buffer
	})
	hi := sort.Search(len(lines), func(i int) bool {
		return lines[i].Wavelength > max+buffer
	})

	out := make([]Transition, hi-lo)
	copy(out, lines[lo:hi])

	return out
}
