package eqstate

import "github.com/cwbudde/algo-spectral/synth/species"

// Tables bundles the overridable physical data consumed by the
// equilibrium solver: ionization energies, partition functions, and
// molecular equilibrium constants.
type Tables struct {
	// IonizationEnergies maps element symbols to first and second
	// ionization energies in eV. Elements absent from the map are kept
	// neutral; a non-positive second energy caps the element at single
	// ionization.
	IonizationEnergies map[string][2]float64

	// PartitionFuncs maps species to their partition functions. Species
	// absent from the map fall back to a partition function of 1.
	PartitionFuncs map[species.Species]species.PartitionFunc

	// EquilibriumConstants maps molecular formulas to log10 equilibrium
	// constants as functions of temperature. The reference solver does
	// not form molecules and ignores this table; it is threaded through
	// for solvers that do.
	EquilibriumConstants map[string]species.PartitionFunc
}

// First and second ionization energies in eV (NIST ASD), for the
// elements that matter most in late-type stellar photospheres.
var ionizationEnergies = map[string][2]float64{
	"H":  {13.598, 0},
	"He": {24.587, 54.418},
	"Li": {5.392, 75.640},
	"C":  {11.260, 24.383},
	"N":  {14.534, 29.601},
	"O":  {13.618, 35.121},
	"Na": {5.139, 47.286},
	"Mg": {7.646, 15.035},
	"Al": {5.986, 18.829},
	"Si": {8.152, 16.346},
	"S":  {10.360, 23.338},
	"K":  {4.341, 31.625},
	"Ca": {6.113, 11.872},
	"Sc": {6.561, 12.800},
	"Ti": {6.828, 13.576},
	"V":  {6.746, 14.618},
	"Cr": {6.767, 16.486},
	"Mn": {7.434, 15.640},
	"Fe": {7.902, 16.199},
	"Co": {7.881, 17.084},
	"Ni": {7.640, 18.169},
	"Cu": {7.726, 20.292},
	"Zn": {9.394, 17.964},
	"Sr": {5.695, 11.030},
	"Y":  {6.217, 12.224},
	"Zr": {6.634, 13.130},
	"Ba": {5.212, 10.004},
	"La": {5.577, 11.185},
	"Eu": {5.670, 11.240},
}

// DefaultTables returns the built-in data tables. Callers may replace
// any of the maps wholesale to substitute their own data.
func DefaultTables() Tables {
	pf := map[species.Species]species.PartitionFunc{
		{Formula: "H", Charge: 0}:  constant(2),
		{Formula: "H", Charge: 1}:  constant(1),
		{Formula: "He", Charge: 0}: constant(1),
		{Formula: "He", Charge: 1}: constant(2),
		{Formula: "Na", Charge: 0}: constant(2),
		{Formula: "Mg", Charge: 0}: constant(1),
		{Formula: "Ca", Charge: 0}: constant(1),
		{Formula: "Ca", Charge: 1}: constant(2),
		{Formula: "Fe", Charge: 0}: constant(25),
		{Formula: "Fe", Charge: 1}: constant(30),
	}

	return Tables{
		IonizationEnergies:   ionizationEnergies,
		PartitionFuncs:       pf,
		EquilibriumConstants: map[string]species.PartitionFunc{},
	}
}

func constant(v float64) species.PartitionFunc {
	return func(float64) float64 { return v }
}

// Partition returns the partition function value for a species at the
// given temperature, falling back to 1 for untracked species.
func (t Tables) Partition(sp species.Species, tempK float64) float64 {
	if f, ok := t.PartitionFuncs[sp]; ok {
		return f(tempK)
	}

	return 1
}
