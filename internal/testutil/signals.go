package testutil

import (
	"math"
	"math/rand"
)

// FlatSpectrum returns a constant flux vector.
func FlatSpectrum(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// AbsorptionLine returns a flat continuum with a Gaussian absorption
// feature of the given fractional depth centered at index pos. The
// width is in index units.
func AbsorptionLine(continuum, depth, width float64, length, pos int) []float64 {
	out := make([]float64, length)
	for i := range out {
		d := float64(i-pos) / width
		out[i] = continuum * (1 - depth*math.Exp(-d*d))
	}
	return out
}

// NoisySpectrum returns a flat continuum with uniform noise of the
// given amplitude, seeded for reproducibility.
func NoisySpectrum(seed int64, continuum, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = continuum + (rng.Float64()*2-1)*amplitude
	}
	return out
}

// Impulse returns a unit spike at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}
