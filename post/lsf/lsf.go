package lsf

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectral/synth/core"
)

// Errors returned by the LSF routines.
var (
	ErrEmptyInput      = errors.New("lsf: empty input")
	ErrLengthMismatch  = errors.New("lsf: flux and wavelength lengths differ")
	ErrResolvingPower  = errors.New("lsf: resolving power must be positive")
	ErrNonAscendingWls = errors.New("lsf: wavelengths must ascend")
)

// truncation half-width in units of sigma
const kernelCutoff = 4.0

// Degrade convolves flux with a Gaussian line-spread function of
// standard deviation lambda/(2R), where R is the resolving power. The
// kernel is rebuilt per grid point, truncated at 4 sigma and
// normalized to unit sum over the truncation window, so the total flux
// is preserved except near the grid edges where the window is clipped.
// wls is the ascending wavelength grid matching flux; any consistent
// wavelength unit works since only ratios enter.
func Degrade(flux, wls []float64, resolvingPower float64) ([]float64, error) {
	if len(flux) == 0 {
		return nil, ErrEmptyInput
	}
	if len(flux) != len(wls) {
		return nil, ErrLengthMismatch
	}
	if resolvingPower <= 0 {
		return nil, ErrResolvingPower
	}
	for i := 1; i < len(wls); i++ {
		if wls[i] <= wls[i-1] {
			return nil, ErrNonAscendingWls
		}
	}

	out := make([]float64, len(flux))
	weights := make([]float64, 0, 64)

	lower, upper := 0, 0
	for i, wl := range wls {
		sigma := wl / (2 * resolvingPower)
		lower, upper = core.MoveBounds(wls, lower, upper, wl, kernelCutoff*sigma)
		if lower == upper {
			continue
		}

		weights = weights[:0]
		sum := 0.0
		for j := lower; j < upper; j++ {
			d := (wls[j] - wl) / sigma
			w := math.Exp(-0.5 * d * d)
			weights = append(weights, w)
			sum += w
		}

		// Scatter the point's flux through the normalized kernel.
		vecmath.ScaleBlock(weights, weights, flux[i]/sum)
		vecmath.AddBlockInPlace(out[lower:upper], weights)
	}

	return out, nil
}
