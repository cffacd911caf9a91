package core

// Physical constants in CGS units (erg, cm, s, g, K).
//
// Values follow CODATA 2018; derived quantities are computed from the exact
// SI definitions where possible.
const (
	// PlanckH is the Planck constant in erg s.
	PlanckH = 6.62607015e-27

	// Boltzmann is the Boltzmann constant in erg/K.
	Boltzmann = 1.380649e-16

	// SpeedOfLight is the speed of light in vacuum in cm/s.
	SpeedOfLight = 2.99792458e10

	// ElectronMass is the electron rest mass in g.
	ElectronMass = 9.1093837015e-28

	// ElectronCharge is the elementary charge in statcoulomb (esu).
	ElectronCharge = 4.80320425e-10

	// AtomicMassUnit is the unified atomic mass unit in g.
	AtomicMassUnit = 1.66053906660e-24

	// BohrRadius is the Bohr radius in cm.
	BohrRadius = 5.29177210903e-9

	// RydbergH is the hydrogen Rydberg energy (ionization energy of H I
	// from the ground state) in erg.
	RydbergH = 2.1787094174620437e-11

	// RydbergEV is the Rydberg energy in eV.
	RydbergEV = 13.598287264

	// EVToErg converts electron volts to erg.
	EVToErg = 1.602176634e-12

	// ThomsonCrossSection is the Thomson electron scattering cross
	// section in cm^2.
	ThomsonCrossSection = 6.6524587321e-25
)
