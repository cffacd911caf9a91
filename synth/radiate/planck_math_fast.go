//go:build fastmath

package radiate

import "github.com/meko-christian/algo-approx"

// mathExp computes e^x using a fast approximation. The Planck function
// is evaluated once per layer and wavelength, which makes it one of the
// hot loops of a synthesis.
func mathExp(x float64) float64 {
	return approx.FastExp(x)
}
