package opacity

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-spectral/synth/atmosphere"
	"github.com/cwbudde/algo-spectral/synth/core"
	"github.com/cwbudde/algo-spectral/synth/species"
	"github.com/cwbudde/algo-spectral/synth/wavelength"
)

// constantContinuum returns the same opacity at every frequency.
type constantContinuum struct {
	value float64
}

func (c constantContinuum) Evaluate(freqs []float64, temp, ne float64, n map[species.Species]float64, partition map[species.Species]species.PartitionFunc) ([]float64, error) {
	out := make([]float64, len(freqs))
	for i := range out {
		out[i] = c.value
	}
	return out, nil
}

// slopedContinuum is linear in wavelength, so linear interpolation
// reproduces it exactly.
type slopedContinuum struct{}

func (slopedContinuum) Evaluate(freqs []float64, temp, ne float64, n map[species.Species]float64, partition map[species.Species]species.PartitionFunc) ([]float64, error) {
	out := make([]float64, len(freqs))
	for i, nu := range freqs {
		out[i] = core.FrequencyToWavelength(nu) / core.CMPerAngstrom // opacity == λ in Å
	}
	return out, nil
}

type fixedEquilibrium struct {
	n map[species.Species]float64
}

func (f fixedEquilibrium) Solve(temp, nTotal, ne float64) (map[species.Species]float64, error) {
	return f.n, nil
}

func testGrids(t *testing.T) (wavelength.Range, []float64) {
	t.Helper()

	fine, err := wavelength.NewRange(5000, 5010, 0.01)
	if err != nil {
		t.Fatalf("fine range: %v", err)
	}
	coarse, err := wavelength.NewRange(4980, 5030, 1)
	if err != nil {
		t.Fatalf("coarse range: %v", err)
	}

	return coarse.Scale(core.CMPerAngstrom), fine.Scale(core.CMPerAngstrom).Values()
}

func TestAssembleLayerSeedsFromContinuum(t *testing.T) {
	coarse, fine := testGrids(t)

	dens := species.NewDensities(1)
	a := &Assembler{
		Continuum: constantContinuum{value: 2.5e-7},
		Equilib:   fixedEquilibrium{n: map[species.Species]float64{{Formula: "H", Charge: 0}: 1e17}},
		Coarse:    coarse,
		Fine:      fine,
		Densities: dens,
	}

	row := make([]float64, len(fine))
	alphaRef, curve, err := a.AssembleLayer(0, atmosphere.Layer{Temp: 5000, NumberDensity: 1e17, ElectronDensity: 1e13}, row)
	if err != nil {
		t.Fatalf("AssembleLayer: %v", err)
	}

	for i, v := range row {
		if math.Abs(v-2.5e-7)/2.5e-7 > 1e-12 {
			t.Fatalf("row[%d] = %v, want 2.5e-7", i, v)
		}
	}
	if math.Abs(alphaRef-2.5e-7)/2.5e-7 > 1e-12 {
		t.Fatalf("alphaRef = %v, want 2.5e-7", alphaRef)
	}
	if curve == nil {
		t.Fatal("nil continuum curve")
	}

	if got := dens.Get(species.Species{Formula: "H", Charge: 0}); got == nil || got[0] != 1e17 {
		t.Fatalf("densities not captured: %v", got)
	}
}

func TestAssembleLayerInterpolationIsExactOnLinearContinuum(t *testing.T) {
	coarse, fine := testGrids(t)

	a := &Assembler{
		Continuum: slopedContinuum{},
		Equilib:   fixedEquilibrium{n: map[species.Species]float64{{Formula: "H", Charge: 0}: 1e17}},
		Coarse:    coarse,
		Fine:      fine,
		Densities: species.NewDensities(1),
	}

	row := make([]float64, len(fine))
	if _, _, err := a.AssembleLayer(0, atmosphere.Layer{Temp: 5000, NumberDensity: 1e17, ElectronDensity: 1e13}, row); err != nil {
		t.Fatalf("AssembleLayer: %v", err)
	}

	// The stub's opacity equals the wavelength in Å, so the seeded row
	// must reproduce the fine grid itself.
	for i, wl := range fine {
		want := wl / core.CMPerAngstrom
		if math.Abs(row[i]-want) > 1e-6 {
			t.Fatalf("row[%d] = %v, want %v", i, row[i], want)
		}
	}
}

type nanContinuum struct{}

func (nanContinuum) Evaluate(freqs []float64, temp, ne float64, n map[species.Species]float64, partition map[species.Species]species.PartitionFunc) ([]float64, error) {
	out := make([]float64, len(freqs))
	for i := range out {
		out[i] = math.NaN()
	}
	return out, nil
}

func TestAssembleLayerRejectsNonFinite(t *testing.T) {
	coarse, fine := testGrids(t)

	a := &Assembler{
		Continuum: nanContinuum{},
		Equilib:   fixedEquilibrium{n: map[species.Species]float64{{Formula: "H", Charge: 0}: 1e17}},
		Coarse:    coarse,
		Fine:      fine,
		Densities: species.NewDensities(1),
	}

	row := make([]float64, len(fine))
	_, _, err := a.AssembleLayer(0, atmosphere.Layer{Temp: 5000, NumberDensity: 1e17, ElectronDensity: 1e13}, row)
	if !errors.Is(err, ErrNonFinite) {
		t.Fatalf("got %v, want ErrNonFinite", err)
	}
}

func TestMatrixRowsAreDisjoint(t *testing.T) {
	m := NewMatrix(3, 4)

	r1 := m.Row(1)
	for i := range r1 {
		r1[i] = 7
	}

	for j := 0; j < 4; j++ {
		if m.At(0, j) != 0 || m.At(2, j) != 0 {
			t.Fatal("write to row 1 leaked into another row")
		}
		if m.At(1, j) != 7 {
			t.Fatal("write through Row not visible in At")
		}
	}

	c := m.Clone()
	r1[0] = 9
	if c.At(1, 0) != 7 {
		t.Fatal("Clone shares backing storage")
	}
}
