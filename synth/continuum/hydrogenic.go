package continuum

import (
	"math"

	"github.com/cwbudde/algo-spectral/synth/core"
	"github.com/cwbudde/algo-spectral/synth/species"
)

// Hydrogenic is a reference continuum model: hydrogen bound-free and
// free-free opacity in the Kramers approximation (unit Gaunt factors)
// plus Thomson scattering off free electrons. It expects the density
// map to carry at least "H I" and "H II".
type Hydrogenic struct {
	// Levels is the number of H I levels considered for bound-free
	// edges. The zero value selects 6.
	Levels int
}

var (
	hI  = species.Species{Formula: "H", Charge: 0}
	hII = species.Species{Formula: "H", Charge: 1}
)

// Kramers bound-free cross section prefactor, cm^2 Hz^3 per level:
// sigma_n = 2.815e29 / (n^5 nu^3) for nu above the edge.
const kramersBF = 2.815e29

// Free-free prefactor from the Kramers formula, in CGS.
const kramersFF = 3.7e8

// Evaluate implements Model.
func (h *Hydrogenic) Evaluate(freqs []float64, temp, ne float64, n map[species.Species]float64, partition map[species.Species]species.PartitionFunc) ([]float64, error) {
	levels := h.Levels
	if levels <= 0 {
		levels = 6
	}

	nHI := n[hI]
	nHII := n[hII]

	uHI := 2.0
	if partition != nil {
		if u, ok := partition[hI]; ok {
			uHI = u(temp)
		}
	}

	kT := core.Boltzmann * temp
	out := make([]float64, len(freqs))

	for i, nu := range freqs {
		stim := 1 - math.Exp(-core.PlanckH*nu/kT)

		// Bound-free: sum over levels whose edge lies below nu, with
		// Boltzmann occupation of each level.
		bf := 0.0
		for lvl := 1; lvl <= levels; lvl++ {
			fl := float64(lvl)
			edge := core.RydbergH / (core.PlanckH * fl * fl)
			if nu < edge {
				continue
			}

			pop := nHI * 2 * fl * fl / uHI * math.Exp(-core.RydbergH*(1-1/(fl*fl))/kT)
			bf += pop * kramersBF / (fl * fl * fl * fl * fl * nu * nu * nu)
		}

		ff := kramersFF * ne * nHII / (math.Sqrt(temp) * nu * nu * nu)

		out[i] = (bf+ff)*stim + core.ThomsonCrossSection*ne
	}

	return out, nil
}
