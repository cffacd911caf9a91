// Package hydrogen provides a reference hydrogen line opacity model:
// the strongest Lyman, Balmer, and Paschen lines with thermal-plus-
// microturbulent Gaussian profiles.
package hydrogen

import (
	"math"

	"github.com/cwbudde/algo-spectral/synth/core"
)

// Model computes hydrogen line opacities aligned to a wavelength grid.
type Model interface {
	// Evaluate returns opacities in cm^-1, one per wavelength (cm).
	// nHI and uHI are the neutral hydrogen number density and
	// partition function; dopplerVel is the combined thermal and
	// microturbulent velocity in cm/s.
	Evaluate(wls []float64, temp, ne, nHI, uHI, dopplerVel float64) ([]float64, error)
}

// line is one hydrogen transition with its lower level, vacuum
// wavelength in Å, and oscillator strength.
type line struct {
	lower int
	wl    float64
	f     float64
}

// Strongest series members, ascending in vacuum wavelength so that the
// MoveBounds sweep below never backtracks.
var hLines = []line{
	{1, 972.54, 0.0290},  // Ly γ
	{1, 1025.72, 0.0791}, // Ly β
	{1, 1215.67, 0.4164}, // Ly α
	{2, 4102.89, 0.0221}, // H δ
	{2, 4341.68, 0.0447}, // H γ
	{2, 4862.68, 0.1193}, // H β
	{2, 6564.61, 0.6407}, // H α
	{3, 10941.1, 0.0558}, // Pa γ
	{3, 12821.6, 0.1506}, // Pa β
	{3, 18756.1, 0.8421}, // Pa α
}

// Gaussian is the reference model. The profile is cut where it falls
// below WingCutoff Doppler widths from the line center; the zero value
// selects 6.
type Gaussian struct {
	WingCutoff float64
}

// crossSectionPrefactor is pi e^2 / (m_e c) in CGS, the frequency-
// integrated absorption cross section per unit oscillator strength.
const crossSectionPrefactor = math.Pi * core.ElectronCharge * core.ElectronCharge /
	(core.ElectronMass * core.SpeedOfLight)

// Evaluate implements Model.
func (g *Gaussian) Evaluate(wls []float64, temp, ne, nHI, uHI, dopplerVel float64) ([]float64, error) {
	cut := g.WingCutoff
	if cut <= 0 {
		cut = 6
	}

	kT := core.Boltzmann * temp
	out := make([]float64, len(wls))

	lb, ub := 0, 0
	for _, hl := range hLines {
		wl0 := core.AngstromToCM(hl.wl)

		// Doppler width in wavelength units.
		dld := wl0 * dopplerVel / core.SpeedOfLight
		if dld <= 0 {
			continue
		}

		// Boltzmann population of the lower level; chi_n measured from
		// the ground state.
		fl := float64(hl.lower)
		chi := core.RydbergH * (1 - 1/(fl*fl))
		pop := nHI * 2 * fl * fl / uHI * math.Exp(-chi/kT)

		stim := 1 - math.Exp(-core.PlanckH*core.SpeedOfLight/(wl0*kT))

		// Line-center opacity of a Doppler profile.
		alpha0 := crossSectionPrefactor * hl.f * pop * stim *
			wl0 * wl0 / (core.SpeedOfLight * dld * math.Sqrt(math.Pi))

		lb, ub = core.MoveBounds(wls, lb, ub, wl0, cut*dld)
		for i := lb; i < ub; i++ {
			v := (wls[i] - wl0) / dld
			out[i] += alpha0 * math.Exp(-v*v)
		}
	}

	return out, nil
}
