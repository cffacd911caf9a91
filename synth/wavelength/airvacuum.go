package wavelength

// Air <-> vacuum conversion using the Birch & Downs (1994) dispersion
// relation for standard air, an updated Edlén-type formula. Inputs and
// outputs are in Å.

// refractiveIndex returns n(air) for the wavenumber argument s = 1e4/λ[Å].
func refractiveIndex(s float64) float64 {
	s2 := s * s
	return 1 + 8.34254e-5 + 2.406147e-2/(130-s2) + 1.5998e-4/(38.9-s2)
}

// AirToVacuum converts an air wavelength in Å to the corresponding
// vacuum wavelength in Å.
//
// The refractive index is evaluated at the air wavelength, which is
// accurate to well below 1e-6 relative error in the optical and
// near-infrared.
func AirToVacuum(wl float64) float64 {
	return wl * refractiveIndex(1e4/wl)
}

// VacuumToAir converts a vacuum wavelength in Å to the corresponding
// air wavelength in Å.
func VacuumToAir(wl float64) float64 {
	return wl / refractiveIndex(1e4/wl)
}
