package radiate

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectral/synth/atmosphere"
	"github.com/cwbudde/algo-spectral/synth/opacity"
)

// Errors returned by the transfer solver.
var (
	ErrShapeMismatch = errors.New("radiate: matrix shapes do not match the atmosphere")
	ErrNoReference   = errors.New("radiate: reference opacity must be positive")
)

// PlaneParallel is the reference transfer solver. It rescales each
// layer's tabulated reference optical depth by the ratio of monochromatic
// to reference opacity and integrates the formal solution
//
//	F(λ) = 2π ∫ S(t) E2(t) dt
//
// with the source function taken constant on each depth interval. The
// integral telescopes through E3, so an isothermal atmosphere yields
// exactly π B. The mu grid is accepted for interface compatibility;
// the E2 kernel already carries the angle integration.
type PlaneParallel struct{}

// Solve implements the transfer contract.
func (PlaneParallel) Solve(atm *atmosphere.Model, alpha, source *opacity.Matrix, alphaRef []float64, mu []float64) ([]float64, error) {
	layers := len(atm.Layers)
	if alpha.Rows() != layers || source.Rows() != layers ||
		alpha.Cols() != source.Cols() || len(alphaRef) != layers {
		return nil, ErrShapeMismatch
	}

	for i, a := range alphaRef {
		if a <= 0 {
			return nil, fmt.Errorf("%w: layer %d has alpha_ref %g", ErrNoReference, i, a)
		}
	}

	nWl := alpha.Cols()
	flux := make([]float64, nWl)
	tau := make([]float64, layers)

	for j := 0; j < nWl; j++ {
		for i := 0; i < layers; i++ {
			tau[i] = atm.Layers[i].TauRef * alpha.At(i, j) / alphaRef[i]
		}

		// First interval from the surface, interior intervals with the
		// mean source, and the diffusion tail below the deepest layer.
		sum := source.At(0, j) * (0.5 - ExpIntE3(tau[0]))

		for i := 0; i < layers-1; i++ {
			mean := 0.5 * (source.At(i, j) + source.At(i+1, j))
			sum += mean * (ExpIntE3(tau[i]) - ExpIntE3(tau[i+1]))
		}

		sum += source.At(layers-1, j) * ExpIntE3(tau[layers-1])

		flux[j] = 2 * math.Pi * sum
	}

	return flux, nil
}
