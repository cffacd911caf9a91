package engine

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/synth/abund"
	"github.com/cwbudde/algo-spectral/synth/atmosphere"
	"github.com/cwbudde/algo-spectral/synth/continuum"
	"github.com/cwbudde/algo-spectral/synth/core"
	"github.com/cwbudde/algo-spectral/synth/eqstate"
	"github.com/cwbudde/algo-spectral/synth/hydrogen"
	"github.com/cwbudde/algo-spectral/synth/linelist"
	"github.com/cwbudde/algo-spectral/synth/lines"
	"github.com/cwbudde/algo-spectral/synth/opacity"
	"github.com/cwbudde/algo-spectral/synth/radiate"
	"github.com/cwbudde/algo-spectral/synth/species"
	"github.com/cwbudde/algo-spectral/synth/wavelength"
)

// EquilibriumSolver builds a per-synthesis equilibrium context from a
// resolved abundance table. The context is shared across layers; only
// temperature and the densities vary per call.
type EquilibriumSolver interface {
	NewContext(ab abund.Table) (opacity.EquilibriumContext, error)
}

// LineAbsorber adds line opacity to the absorption matrix in place.
type LineAbsorber interface {
	Accumulate(alpha *opacity.Matrix, lns []linelist.Transition, wls []float64,
		temps, electronDensities []float64, densities map[species.Species][]float64,
		curves []continuum.Curve, vmicCMS, cutoff float64) error
}

// TransferSolver integrates the transfer equation to an emergent flux.
type TransferSolver interface {
	Solve(atm *atmosphere.Model, alpha, source *opacity.Matrix,
		alphaRef []float64, mu []float64) ([]float64, error)
}

// Collaborators are the external models the pipeline consumes. Zero
// fields select the built-in reference implementations.
type Collaborators struct {
	Equilibrium EquilibriumSolver
	Continuum   continuum.Model
	Hydrogen    hydrogen.Model
	Lines       LineAbsorber
	Transfer    TransferSolver
}

// defaultEquilibrium adapts the reference Saha solver.
type defaultEquilibrium struct {
	tables eqstate.Tables
}

func (d defaultEquilibrium) NewContext(ab abund.Table) (opacity.EquilibriumContext, error) {
	return eqstate.NewSolver(d.tables).NewContext(ab)
}

// Engine runs syntheses with a fixed configuration and collaborator set.
type Engine struct {
	cfg    Config
	collab Collaborators
}

// New creates an engine. Collaborator fields left zero are filled with
// the reference implementations, configured from the applied options.
func New(collab Collaborators, opts ...Option) *Engine {
	cfg := ApplyOptions(opts...)

	if collab.Equilibrium == nil {
		collab.Equilibrium = defaultEquilibrium{tables: cfg.Tables}
	}
	if collab.Continuum == nil {
		collab.Continuum = &continuum.Hydrogenic{}
	}
	if collab.Hydrogen == nil {
		collab.Hydrogen = &hydrogen.Gaussian{}
	}
	if collab.Lines == nil {
		collab.Lines = lines.NewAbsorber(cfg.Tables.PartitionFuncs)
	}
	if collab.Transfer == nil {
		collab.Transfer = radiate.PlaneParallel{}
	}

	return &Engine{cfg: cfg, collab: collab}
}

// Result is the immutable output bundle of one synthesis.
type Result struct {
	// Wavelengths is the final vacuum grid in Å.
	Wavelengths []float64

	// Flux is the emergent flux, one value per wavelength, in
	// erg s^-1 cm^-2 cm^-1.
	Flux []float64

	// Alpha is the total absorption matrix in cm^-1.
	Alpha *opacity.Matrix

	// Densities holds the per-species, per-layer number densities.
	Densities *species.Densities
}

// Synthesize computes the emergent spectrum of atm over [start, stop]
// with the given step, all in Å. The linelist need not be sorted; it is
// never mutated.
func (e *Engine) Synthesize(atm *atmosphere.Model, lns []linelist.Transition, start, stop, step float64) (*Result, error) {
	cfg := e.cfg

	if err := atm.Validate(); err != nil {
		return nil, err
	}

	var fine wavelength.Range
	var err error
	if cfg.AirWavelengths {
		fine, err = wavelength.NewAirRange(start, stop, step, cfg.ConversionTolerance)
	} else {
		fine, err = wavelength.NewRange(start, stop, step)
	}
	if err != nil {
		return nil, err
	}

	coarse, err := wavelength.NewRange(
		fine.Min()-cfg.LineBuffer-cfg.CntmStep,
		fine.Max()+cfg.LineBuffer+cfg.CntmStep,
		cfg.CntmStep)
	if err != nil {
		return nil, fmt.Errorf("synth: continuum grid: %w", err)
	}

	fineCM := fine.Scale(core.CMPerAngstrom)
	wls := fineCM.Values()

	if !linelist.Sorted(lns) {
		sorted := make([]linelist.Transition, len(lns))
		copy(sorted, lns)
		linelist.SortByWavelength(sorted)
		lns = sorted
	}
	lns = linelist.FilterWindow(lns, fineCM.Min(), fineCM.Max(), core.AngstromToCM(cfg.LineBuffer))

	ab, err := abund.Resolve(cfg.Metallicity, cfg.Abundances)
	if err != nil {
		return nil, err
	}

	eqCtx, err := e.collab.Equilibrium.NewContext(ab)
	if err != nil {
		return nil, fmt.Errorf("synth: equilibrium context: %w", err)
	}

	layers := len(atm.Layers)
	alpha := opacity.NewMatrix(layers, fine.Len())
	alphaRef := make([]float64, layers)
	curves := make([]continuum.Curve, layers)
	densities := species.NewDensities(layers)

	assembler := &opacity.Assembler{
		Continuum:     e.collab.Continuum,
		Hydrogen:      e.collab.Hydrogen,
		Equilib:       eqCtx,
		Coarse:        coarse.Scale(core.CMPerAngstrom),
		Fine:          wls,
		Partition:     cfg.Tables.PartitionFuncs,
		HydrogenLines: cfg.HydrogenLines,
		VmicCMS:       core.KmsToCms(cfg.VmicKms),
		Densities:     densities,
	}

	for i, layer := range atm.Layers {
		ref, curve, err := assembler.AssembleLayer(i, layer, alpha.Row(i))
		if err != nil {
			return nil, err
		}
		alphaRef[i] = ref
		curves[i] = curve
	}

	err = e.collab.Lines.Accumulate(alpha, lns, wls,
		atm.Temps(), atm.ElectronDensities(), densities.Map(), curves,
		core.KmsToCms(cfg.VmicKms), cfg.LineCutoff)
	if err != nil {
		return nil, fmt.Errorf("synth: line absorption: %w", err)
	}

	source := radiate.SourceMatrix(atm.Temps(), wls)

	flux, err := e.collab.Transfer.Solve(atm, alpha, source, alphaRef, cfg.MuGrid)
	if err != nil {
		return nil, fmt.Errorf("synth: transfer: %w", err)
	}

	return &Result{
		Wavelengths: fine.Values(),
		Flux:        flux,
		Alpha:       alpha,
		Densities:   densities,
	}, nil
}
