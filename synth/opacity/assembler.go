package opacity

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectral/synth/atmosphere"
	"github.com/cwbudde/algo-spectral/synth/continuum"
	"github.com/cwbudde/algo-spectral/synth/core"
	"github.com/cwbudde/algo-spectral/synth/hydrogen"
	"github.com/cwbudde/algo-spectral/synth/species"
	"github.com/cwbudde/algo-spectral/synth/wavelength"
)

// ErrNonFinite flags a NaN or Inf absorption value. It indicates a bug
// in a collaborator, not bad user input.
var ErrNonFinite = errors.New("opacity: non-finite absorption value")

// referenceWavelength is the vacuum wavelength, in cm, of the
// normalization anchor used by the transfer solver.
const referenceWavelength = 5000 * core.CMPerAngstrom

// EquilibriumContext yields per-species number densities for one layer.
type EquilibriumContext interface {
	Solve(temp, nTotal, ne float64) (map[species.Species]float64, error)
}

// Assembler builds one absorption row per atmospheric layer. The coarse
// grid carries the continuum evaluation; rows are seeded by
// interpolation onto the fine grid and then incremented by hydrogen
// line opacity. All wavelengths are in cm.
type Assembler struct {
	Continuum continuum.Model
	Hydrogen  hydrogen.Model
	Equilib   EquilibriumContext

	Coarse wavelength.Range
	Fine   []float64

	Partition map[species.Species]species.PartitionFunc

	HydrogenLines bool
	VmicCMS       float64

	// Densities receives each layer's equilibrium result.
	Densities *species.Densities
}

var hI = species.Species{Formula: "H", Charge: 0}

// AssembleLayer fills row with the layer's continuum plus hydrogen-line
// absorption and returns the reference opacity at 5000 Å together with
// the continuum interpolant used for the seeding.
func (a *Assembler) AssembleLayer(idx int, layer atmosphere.Layer, row []float64) (float64, continuum.Curve, error) {
	n, err := a.Equilib.Solve(layer.Temp, layer.NumberDensity, layer.ElectronDensity)
	if err != nil {
		return 0, nil, fmt.Errorf("opacity: layer %d equilibrium: %w", idx, err)
	}

	if err := a.Densities.SetLayer(idx, n); err != nil {
		return 0, nil, err
	}

	// Continuum models work in ascending frequency, i.e. descending
	// wavelength: reverse the grid going in and the result coming out.
	coarseWls := a.Coarse.Values()
	freqs := make([]float64, len(coarseWls))
	for i, wl := range coarseWls {
		freqs[len(freqs)-1-i] = core.WavelengthToFrequency(wl)
	}

	cntm, err := a.Continuum.Evaluate(freqs, layer.Temp, layer.ElectronDensity, n, a.Partition)
	if err != nil {
		return 0, nil, fmt.Errorf("opacity: layer %d continuum: %w", idx, err)
	}
	continuum.ReverseInPlace(cntm)

	curve, err := continuum.NewLinearCurve(a.Coarse.Min(), a.Coarse.Step(), cntm)
	if err != nil {
		return 0, nil, err
	}

	for i, wl := range a.Fine {
		row[i] = curve.Evaluate(wl)
	}

	refOp, err := a.Continuum.Evaluate(
		[]float64{core.WavelengthToFrequency(referenceWavelength)},
		layer.Temp, layer.ElectronDensity, n, a.Partition)
	if err != nil {
		return 0, nil, fmt.Errorf("opacity: layer %d reference opacity: %w", idx, err)
	}

	if a.HydrogenLines {
		if err := a.addHydrogenLines(layer, n, row); err != nil {
			return 0, nil, err
		}
	}

	if !core.AllFinite(row) {
		return 0, nil, fmt.Errorf("%w: layer %d", ErrNonFinite, idx)
	}

	return refOp[0], curve, nil
}

func (a *Assembler) addHydrogenLines(layer atmosphere.Layer, n map[species.Species]float64, row []float64) error {
	mH, err := hI.Mass()
	if err != nil {
		return err
	}

	doppler := math.Sqrt(2*core.Boltzmann*layer.Temp/mH + a.VmicCMS*a.VmicCMS)

	uHI := 2.0
	if f, ok := a.Partition[hI]; ok {
		uHI = f(layer.Temp)
	}

	contrib, err := a.Hydrogen.Evaluate(a.Fine, layer.Temp, layer.ElectronDensity, n[hI], uHI, doppler)
	if err != nil {
		return fmt.Errorf("opacity: hydrogen lines: %w", err)
	}

	vecmath.AddBlockInPlace(row, contrib)

	return nil
}
