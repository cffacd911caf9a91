// Package eqstate solves the per-layer ionization equilibrium. The
// reference solver applies the Saha equation across the first three
// ionization stages of every element with tabulated ionization data;
// molecule formation is left to substitute solvers.
package eqstate

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-spectral/synth/abund"
	"github.com/cwbudde/algo-spectral/synth/core"
	"github.com/cwbudde/algo-spectral/synth/species"
)

// Solver builds equilibrium contexts from abundance tables.
type Solver struct {
	tables Tables
}

// NewSolver creates a Saha solver over the given data tables.
func NewSolver(tables Tables) *Solver {
	return &Solver{tables: tables}
}

// ErrNoAbundances indicates an empty abundance table.
var ErrNoAbundances = errors.New("eqstate: empty abundance table")

// Context carries everything that is constant across layers of one
// synthesis: the abundance table and the data tables. Only temperature
// and the densities vary per layer.
type Context struct {
	tables Tables
	ab     abund.Table
}

// NewContext prepares a per-synthesis context.
func (s *Solver) NewContext(ab abund.Table) (*Context, error) {
	if len(ab) == 0 {
		return nil, ErrNoAbundances
	}

	return &Context{tables: s.tables, ab: ab}, nil
}

// sahaPrefactor is 2 (2 pi m_e k / h^2)^(3/2) in CGS.
var sahaPrefactor = 2 * math.Pow(2*math.Pi*core.ElectronMass*core.Boltzmann/(core.PlanckH*core.PlanckH), 1.5)

// Solve returns the number density of every tracked species for one
// layer. The species key set is identical for every call on the same
// context.
func (c *Context) Solve(temp, nTotal, ne float64) (map[species.Species]float64, error) {
	out := make(map[species.Species]float64, 2*len(c.ab))
	kT := core.Boltzmann * temp

	for symbol, fraction := range c.ab {
		nElem := fraction * nTotal

		chi, ok := c.tables.IonizationEnergies[symbol]
		neutral := species.Species{Formula: symbol, Charge: 0}
		if !ok {
			out[neutral] = nElem
			continue
		}

		ion := species.Species{Formula: symbol, Charge: 1}
		ion2 := species.Species{Formula: symbol, Charge: 2}

		// A non-positive second energy caps the element at single
		// ionization (hydrogen has no He-like stage).
		hasSecond := chi[1] > 0

		if ne <= 0 {
			out[neutral] = 0
			if hasSecond {
				out[ion] = 0
				out[ion2] = nElem
			} else {
				out[ion] = nElem
			}
			continue
		}

		u0 := c.tables.Partition(neutral, temp)
		u1 := c.tables.Partition(ion, temp)

		r1 := sahaPrefactor / ne * u1 / u0 *
			math.Pow(temp, 1.5) * math.Exp(-chi[0]*core.EVToErg/kT)

		r2 := 0.0
		if hasSecond {
			u2 := c.tables.Partition(ion2, temp)
			r2 = sahaPrefactor / ne * u2 / u1 *
				math.Pow(temp, 1.5) * math.Exp(-chi[1]*core.EVToErg/kT)
		}

		denom := 1 + r1*(1+r2)
		out[neutral] = nElem / denom
		out[ion] = nElem * r1 / denom
		if hasSecond {
			out[ion2] = nElem * r1 * r2 / denom
		}
	}

	return out, nil
}
