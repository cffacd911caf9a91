// Package species identifies atoms, ions, and molecules, and stores their
// per-layer number densities in columnar form.
package species

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-spectral/synth/core"
)

// Species identifies a chemical species: an element or molecular formula
// plus an ionization stage (0 = neutral, 1 = singly ionized, ...).
type Species struct {
	Formula string
	Charge  int
}

// PartitionFunc returns the partition function of a species at the given
// temperature in K.
type PartitionFunc func(tempK float64) float64

var romans = []string{"I", "II", "III", "IV", "V", "VI"}

// String renders the species in spectroscopic notation, e.g. "Fe II".
func (s Species) String() string {
	if s.Charge >= 0 && s.Charge < len(romans) {
		return s.Formula + " " + romans[s.Charge]
	}

	return fmt.Sprintf("%s +%d", s.Formula, s.Charge)
}

// Mass returns the species mass in g, summing atomic weights over the
// formula. It returns an error for unknown element symbols.
func (s Species) Mass() (float64, error) {
	total := 0.0

	for i := 0; i < len(s.Formula); {
		j := i + 1
		for j < len(s.Formula) && s.Formula[j] >= 'a' && s.Formula[j] <= 'z' {
			j++
		}
		symbol := s.Formula[i:j]

		count := 0
		for j < len(s.Formula) && s.Formula[j] >= '0' && s.Formula[j] <= '9' {
			count = count*10 + int(s.Formula[j]-'0')
			j++
		}
		if count == 0 {
			count = 1
		}

		w, ok := AtomicWeight(symbol)
		if !ok {
			return 0, fmt.Errorf("species: unknown element %q in formula %q", symbol, s.Formula)
		}

		total += w * float64(count)
		i = j
	}

	return total * core.AtomicMassUnit, nil
}

// ErrSpeciesMismatch indicates that an equilibrium result for one layer
// carried a different species set than the first layer. This is an
// internal consistency failure of the equilibrium collaborator, not a
// usage error.
var ErrSpeciesMismatch = errors.New("species: species set differs between layers")

// Densities stores number densities per species and layer. The species
// set is fixed by the first layer written; each species maps to a dense
// vector indexed by layer.
type Densities struct {
	layers int
	index  map[Species]int
	order  []Species
	data   [][]float64
}

// NewDensities creates an empty store for the given layer count.
func NewDensities(layers int) *Densities {
	return &Densities{
		layers: layers,
		index:  make(map[Species]int),
	}
}

// Layers returns the number of layers the store was sized for.
func (d *Densities) Layers() int { return d.layers }

// SetLayer records the densities of layer i. The first call fixes the
// species key set; any later call with a differing set fails with
// ErrSpeciesMismatch.
func (d *Densities) SetLayer(i int, n map[Species]float64) error {
	if i < 0 || i >= d.layers {
		return fmt.Errorf("species: layer index %d out of range [0,%d)", i, d.layers)
	}

	if len(d.order) == 0 {
		for sp := range n {
			d.index[sp] = len(d.order)
			d.order = append(d.order, sp)
			d.data = append(d.data, make([]float64, d.layers))
		}
	} else if len(n) != len(d.order) {
		return fmt.Errorf("%w: layer %d has %d species, expected %d", ErrSpeciesMismatch, i, len(n), len(d.order))
	}

	for sp, v := range n {
		col, ok := d.index[sp]
		if !ok {
			return fmt.Errorf("%w: layer %d introduced %s", ErrSpeciesMismatch, i, sp)
		}
		d.data[col][i] = v
	}

	return nil
}

// Get returns the per-layer density vector for a species, or nil when
// the species is not tracked. The returned slice is not a copy.
func (d *Densities) Get(sp Species) []float64 {
	col, ok := d.index[sp]
	if !ok {
		return nil
	}

	return d.data[col]
}

// Species returns the tracked species in first-seen order.
func (d *Densities) Species() []Species {
	out := make([]Species, len(d.order))
	copy(out, d.order)

	return out
}

// Map returns the store as a species-to-vector mapping. Vectors are
// shared with the store, not copied.
func (d *Densities) Map() map[Species][]float64 {
	out := make(map[Species][]float64, len(d.order))
	for sp, col := range d.index {
		out[sp] = d.data[col]
	}

	return out
}
