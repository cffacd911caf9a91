// Package atmosphere holds 1-D model stellar atmospheres: an ordered
// stack of plane-parallel or spherical-shell layers with the local
// thermodynamic state.
package atmosphere

import (
	"errors"
	"fmt"
)

// Geometry distinguishes plane-parallel from spherical-shell models.
type Geometry int

const (
	PlaneParallel Geometry = iota
	Spherical
)

// Layer is one depth point of a model atmosphere. TauRef is the optical
// depth at the 5000 Å reference wavelength; ColumnMass and Radius are
// geometry-specific coordinates consumed only by the transfer solver.
type Layer struct {
	Temp            float64 // K
	NumberDensity   float64 // total particles, cm^-3
	ElectronDensity float64 // cm^-3
	TauRef          float64
	ColumnMass      float64 // g cm^-2, plane-parallel models
	Radius          float64 // cm, spherical models
}

// Model is an ordered layer stack, outermost layer first. It is treated
// as immutable once loaded.
type Model struct {
	Geometry Geometry
	Layers   []Layer
}

// ErrEmptyModel indicates a model without layers.
var ErrEmptyModel = errors.New("atmosphere: model has no layers")

// Validate checks the basic per-layer field contracts.
func (m *Model) Validate() error {
	if len(m.Layers) == 0 {
		return ErrEmptyModel
	}

	for i, l := range m.Layers {
		if l.Temp <= 0 {
			return fmt.Errorf("atmosphere: layer %d: temperature %g must be > 0", i, l.Temp)
		}
		if l.NumberDensity <= 0 {
			return fmt.Errorf("atmosphere: layer %d: number density %g must be > 0", i, l.NumberDensity)
		}
		if l.ElectronDensity < 0 {
			return fmt.Errorf("atmosphere: layer %d: electron density %g must be >= 0", i, l.ElectronDensity)
		}
	}

	return nil
}

// Temps returns the per-layer temperatures in layer order.
func (m *Model) Temps() []float64 {
	out := make([]float64, len(m.Layers))
	for i, l := range m.Layers {
		out[i] = l.Temp
	}

	return out
}

// ElectronDensities returns the per-layer electron densities in layer order.
func (m *Model) ElectronDensities() []float64 {
	out := make([]float64, len(m.Layers))
	for i, l := range m.Layers {
		out[i] = l.ElectronDensity
	}

	return out
}
