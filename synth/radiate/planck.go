// Package radiate builds the Planck source function and integrates the
// transfer equation to an emergent flux.
package radiate

import (
	"github.com/cwbudde/algo-spectral/synth/core"
	"github.com/cwbudde/algo-spectral/synth/opacity"
)

// Planck returns the blackbody specific intensity B(T, λ) in
// erg s^-1 cm^-2 cm^-1 sr^-1, with λ in cm.
func Planck(temp, wl float64) float64 {
	c2 := core.PlanckH * core.SpeedOfLight / (core.Boltzmann * temp)
	wl5 := wl * wl * wl * wl * wl

	return 2 * core.PlanckH * core.SpeedOfLight * core.SpeedOfLight / wl5 /
		(mathExp(c2/wl) - 1)
}

// SourceMatrix evaluates the Planck function per layer and wavelength,
// in the same [layer, wavelength] shape as the absorption matrix.
func SourceMatrix(temps, wls []float64) *opacity.Matrix {
	m := opacity.NewMatrix(len(temps), len(wls))
	for i, t := range temps {
		row := m.Row(i)
		for j, wl := range wls {
			row[j] = Planck(t, wl)
		}
	}

	return m
}
