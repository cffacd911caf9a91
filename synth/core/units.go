package core

// Public interfaces of this module use Å for lengths and km/s for
// velocities; all internal computation is CGS (cm, cm/s). These helpers
// are the single conversion point between the two conventions.

// CMPerAngstrom is the number of centimeters per ångström.
const CMPerAngstrom = 1e-8

// AngstromToCM converts a length from Å to cm.
func AngstromToCM(wl float64) float64 {
	return wl * CMPerAngstrom
}

// CMToAngstrom converts a length from cm to Å.
func CMToAngstrom(wl float64) float64 {
	return wl / CMPerAngstrom
}

// KmsToCms converts a velocity from km/s to cm/s.
func KmsToCms(v float64) float64 {
	return v * 1e5
}

// CmsToKms converts a velocity from cm/s to km/s.
func CmsToKms(v float64) float64 {
	return v / 1e5
}

// WavelengthToFrequency converts a vacuum wavelength in cm to Hz.
func WavelengthToFrequency(wl float64) float64 {
	return SpeedOfLight / wl
}

// FrequencyToWavelength converts a frequency in Hz to a vacuum
// wavelength in cm.
func FrequencyToWavelength(nu float64) float64 {
	return SpeedOfLight / nu
}
