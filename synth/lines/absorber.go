// Package lines accumulates line absorption into the shared opacity
// matrix. Profiles are Voigt: thermal plus microturbulent Doppler cores
// with radiative, Stark, and van der Waals pressure-broadened wings.
// Each profile is added only where it exceeds a configurable fraction
// of the local continuum opacity, which bounds the per-line cost.
package lines

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectral/synth/continuum"
	"github.com/cwbudde/algo-spectral/synth/core"
	"github.com/cwbudde/algo-spectral/synth/linelist"
	"github.com/cwbudde/algo-spectral/synth/opacity"
	"github.com/cwbudde/algo-spectral/synth/species"
)

// Absorber adds line opacity to absorption rows. Partition supplies the
// per-species partition functions used for level populations.
type Absorber struct {
	Partition map[species.Species]species.PartitionFunc
}

// NewAbsorber creates an Absorber over the given partition functions.
func NewAbsorber(partition map[species.Species]species.PartitionFunc) *Absorber {
	return &Absorber{Partition: partition}
}

// sigmaPrefactor is pi e^2 / (m_e c) in CGS.
const sigmaPrefactor = math.Pi * core.ElectronCharge * core.ElectronCharge /
	(core.ElectronMass * core.SpeedOfLight)

// Accumulate adds every line's contribution to alpha in place. Lines
// must be sorted ascending in wavelength; wls is the fine grid in cm;
// temps and electronDensities are per layer; curves are the per-layer
// continuum interpolants used to resolve the cutoff. A line is
// truncated where its profile falls below cutoff times the local
// continuum opacity.
func (ab *Absorber) Accumulate(
	alpha *opacity.Matrix,
	lines []linelist.Transition,
	wls []float64,
	temps, electronDensities []float64,
	densities map[species.Species][]float64,
	curves []continuum.Curve,
	vmicCMS, cutoff float64,
) error {
	if len(lines) == 0 {
		return nil
	}

	masses := make(map[species.Species]float64)
	for _, l := range lines {
		if _, ok := masses[l.Species]; ok {
			continue
		}
		m, err := l.Species.Mass()
		if err != nil {
			return fmt.Errorf("lines: %w", err)
		}
		masses[l.Species] = m
	}

	hIDens := densities[species.Species{Formula: "H", Charge: 0}]

	for layer := 0; layer < alpha.Rows(); layer++ {
		row := alpha.Row(layer)
		temp := temps[layer]
		ne := electronDensities[layer]
		kT := core.Boltzmann * temp

		nH := 0.0
		if hIDens != nil {
			nH = hIDens[layer]
		}

		lb, ub := 0, 0
		for _, l := range lines {
			n := densities[l.Species]
			if n == nil || n[layer] <= 0 {
				continue
			}

			mass := masses[l.Species]
			dld := l.Wavelength / core.SpeedOfLight *
				math.Sqrt(2*kT/mass+vmicCMS*vmicCMS)
			if dld <= 0 {
				continue
			}

			// Lorentz FWHM in angular frequency, then converted to a
			// wavelength half-width. Stark and van der Waals terms are
			// per-perturber values referenced to 10^4 K.
			gamma := l.GammaRad +
				l.GammaStark*ne +
				l.GammaVdW*nH*math.Pow(temp/1e4, 0.3)
			dlL := gamma * l.Wavelength * l.Wavelength / (4 * math.Pi * core.SpeedOfLight)
			a := dlL / dld

			u := 1.0
			if f, ok := ab.Partition[l.Species]; ok {
				u = f(temp)
			}

			stim := 1 - math.Exp(-core.PlanckH*core.SpeedOfLight/(l.Wavelength*kT))
			pop := n[layer] / u * math.Exp(-l.ExcitationPotential*core.EVToErg/kT)

			alpha0 := sigmaPrefactor * math.Pow(10, l.LogGF) * pop * stim *
				l.Wavelength * l.Wavelength / (core.SpeedOfLight * dld * math.Sqrt(math.Pi))

			window := profileWindow(alpha0, a, dld, cutoff*curves[layer].Evaluate(l.Wavelength))
			lb, ub = core.MoveBounds(wls, lb, ub, l.Wavelength, window)

			for i := lb; i < ub; i++ {
				v := math.Abs(wls[i]-l.Wavelength) / dld
				row[i] += alpha0 * Hjerting(a, v)
			}
		}
	}

	return nil
}

// profileWindow returns the half-width, in wavelength units, beyond
// which a Voigt profile of the given center opacity stays below the
// threshold. The Gaussian core and the Lorentzian wing are bounded
// separately and the wider one wins.
func profileWindow(alpha0, a, dld, threshold float64) float64 {
	if threshold <= 0 || alpha0 <= threshold {
		if threshold <= 0 {
			// No usable continuum level: keep a generous fixed window.
			return 10 * dld
		}
		// The whole profile sits below the cutoff; the core may still
		// peek above between grid points, so keep one Doppler width.
		return dld
	}

	gaussian := math.Sqrt(math.Log(alpha0 / threshold))

	lorentzian := 0.0
	if a > 0 {
		lorentzian = math.Sqrt(alpha0 * a / (math.SqrtPi * threshold))
	}

	return math.Max(gaussian, lorentzian) * dld
}
