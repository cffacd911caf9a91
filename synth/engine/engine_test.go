package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-spectral/internal/testutil"
	"github.com/cwbudde/algo-spectral/synth/abund"
	"github.com/cwbudde/algo-spectral/synth/atmosphere"
	"github.com/cwbudde/algo-spectral/synth/linelist"
	"github.com/cwbudde/algo-spectral/synth/opacity"
	"github.com/cwbudde/algo-spectral/synth/radiate"
	"github.com/cwbudde/algo-spectral/synth/species"
	"github.com/cwbudde/algo-spectral/synth/wavelength"
)

// constantContinuum returns the same opacity at every frequency.
type constantContinuum struct {
	value float64
}

func (c constantContinuum) Evaluate(freqs []float64, temp, ne float64,
	n map[species.Species]float64,
	partition map[species.Species]species.PartitionFunc) ([]float64, error) {
	out := make([]float64, len(freqs))
	for i := range out {
		out[i] = c.value
	}
	return out, nil
}

// fixedEquilibrium hands out the same density map for every layer.
type fixedEquilibrium struct {
	densities map[species.Species]float64
}

func (f fixedEquilibrium) NewContext(ab abund.Table) (opacity.EquilibriumContext, error) {
	return fixedContext{densities: f.densities}, nil
}

type fixedContext struct {
	densities map[species.Species]float64
}

func (f fixedContext) Solve(temp, nTotal, ne float64) (map[species.Species]float64, error) {
	return f.densities, nil
}

func singleLayerModel() *atmosphere.Model {
	return &atmosphere.Model{
		Geometry: atmosphere.PlaneParallel,
		Layers: []atmosphere.Layer{
			{Temp: 5000, NumberDensity: 1e17, ElectronDensity: 1e13, TauRef: 1.0, ColumnMass: 1.0},
		},
	}
}

func TestSynthesizeIsothermalPlanck(t *testing.T) {
	e := New(Collaborators{
		Equilibrium: fixedEquilibrium{densities: map[species.Species]float64{
			{Formula: "H", Charge: 0}: 1e17,
		}},
		Continuum: constantContinuum{value: 1e-10},
	}, WithHydrogenLines(false))

	res, err := e.Synthesize(singleLayerModel(), nil, 5000, 5001, 0.5)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	if len(res.Wavelengths) != 3 || len(res.Flux) != 3 {
		t.Fatalf("got %d wavelengths, %d fluxes, want 3 each",
			len(res.Wavelengths), len(res.Flux))
	}

	for i, wl := range res.Wavelengths {
		want := math.Pi * radiate.Planck(5000, wl*1e-8)
		testutil.RequireNearlyEqual(t, res.Flux[i], want, 1e-10*want)
	}
}

func TestSynthesizeLineDepressesFlux(t *testing.T) {
	fe := species.Species{Formula: "Fe", Charge: 0}
	h := species.Species{Formula: "H", Charge: 0}

	// A temperature gradient is required for lines to show: an
	// isothermal atmosphere emits π B at every wavelength.
	atm := &atmosphere.Model{
		Geometry: atmosphere.PlaneParallel,
		Layers: []atmosphere.Layer{
			{Temp: 4500, NumberDensity: 1e16, ElectronDensity: 1e12, TauRef: 1e-3, ColumnMass: 0.1},
			{Temp: 6000, NumberDensity: 1e17, ElectronDensity: 1e13, TauRef: 1.0, ColumnMass: 1.0},
		},
	}

	// The continuum level and line strength keep the cutoff window well
	// inside the grid, so the edge points stay pure continuum.
	e := New(Collaborators{
		Equilibrium: fixedEquilibrium{densities: map[species.Species]float64{
			h:  1e17,
			fe: 1e12,
		}},
		Continuum: constantContinuum{value: 1e-5},
	}, WithHydrogenLines(false))

	center := 5000.5
	lns := []linelist.Transition{{
		Wavelength:          center * 1e-8,
		LogGF:               -1.0,
		Species:             fe,
		ExcitationPotential: 1.0,
		GammaRad:            1e8,
	}}

	res, err := e.Synthesize(atm, lns, 4999, 5002, 0.01)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	centerIdx := 0
	for i, wl := range res.Wavelengths {
		if math.Abs(wl-center) < math.Abs(res.Wavelengths[centerIdx]-center) {
			centerIdx = i
		}
	}

	if res.Flux[centerIdx] >= res.Flux[0] {
		t.Fatalf("flux at line center %g not below continuum flux %g",
			res.Flux[centerIdx], res.Flux[0])
	}
}

func TestSynthesizeUnsortedLinelist(t *testing.T) {
	fe := species.Species{Formula: "Fe", Charge: 0}
	h := species.Species{Formula: "H", Charge: 0}

	e := New(Collaborators{
		Equilibrium: fixedEquilibrium{densities: map[species.Species]float64{
			h: 1e17, fe: 1e12,
		}},
		Continuum: constantContinuum{value: 1e-10},
	}, WithHydrogenLines(false))

	lns := []linelist.Transition{
		{Wavelength: 5001e-8, LogGF: -1, Species: fe, ExcitationPotential: 1, GammaRad: 1e8},
		{Wavelength: 5000.2e-8, LogGF: -1, Species: fe, ExcitationPotential: 1, GammaRad: 1e8},
	}

	if _, err := e.Synthesize(singleLayerModel(), lns, 5000, 5001, 0.1); err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	// The caller's slice keeps its original order.
	if lns[0].Wavelength != 5001e-8 {
		t.Fatal("input linelist was reordered")
	}
}

func TestSynthesizeRejectsDescendingRange(t *testing.T) {
	e := New(Collaborators{}, WithHydrogenLines(false))

	_, err := e.Synthesize(singleLayerModel(), nil, 5001, 5000, 0.5)
	if !errors.Is(err, wavelength.ErrDescendingGrid) {
		t.Fatalf("got %v, want ErrDescendingGrid", err)
	}
}

func TestSynthesizeRejectsHydrogenOverride(t *testing.T) {
	e := New(Collaborators{}, WithAbundances(map[string]float64{"H": 12.5}))

	_, err := e.Synthesize(singleLayerModel(), nil, 5000, 5001, 0.5)
	if !errors.Is(err, abund.ErrHydrogenOverride) {
		t.Fatalf("got %v, want ErrHydrogenOverride", err)
	}
}

func TestSynthesizeRejectsEmptyModel(t *testing.T) {
	e := New(Collaborators{})

	_, err := e.Synthesize(&atmosphere.Model{Geometry: atmosphere.PlaneParallel}, nil, 5000, 5001, 0.5)
	if !errors.Is(err, atmosphere.ErrEmptyModel) {
		t.Fatalf("got %v, want ErrEmptyModel", err)
	}
}

func TestSynthesizeAirGrid(t *testing.T) {
	e := New(Collaborators{
		Equilibrium: fixedEquilibrium{densities: map[species.Species]float64{
			{Formula: "H", Charge: 0}: 1e17,
		}},
		Continuum: constantContinuum{value: 1e-10},
	}, WithHydrogenLines(false), WithAirWavelengths(true))

	res, err := e.Synthesize(singleLayerModel(), nil, 5000, 5001, 0.5)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	// The result grid is vacuum, so it sits above the requested air range.
	if res.Wavelengths[0] <= 5000 {
		t.Fatalf("vacuum grid starts at %g, want above 5000", res.Wavelengths[0])
	}
	want := wavelength.AirToVacuum(5000)
	testutil.RequireNearlyEqual(t, res.Wavelengths[0], want, 1e-8)
}
