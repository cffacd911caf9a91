package abund

// Solar photospheric abundances on the customary logarithmic scale
// A(X) = log10(n_X/n_H) + 12, from Asplund, Amarsi & Grevesse (2021),
// meteoritic values where no photospheric determination exists.
// Elements without a stable isotope and without a meteoritic value are
// omitted.
var solar = map[string]float64{
	"H": 12.00, "He": 10.914,
	"Li": 0.96, "Be": 1.38, "B": 2.70, "C": 8.46, "N": 7.83,
	"O": 8.69, "F": 4.40, "Ne": 8.06,
	"Na": 6.22, "Mg": 7.55, "Al": 6.43, "Si": 7.51, "P": 5.41,
	"S": 7.12, "Cl": 5.31, "Ar": 6.38,
	"K": 5.07, "Ca": 6.30, "Sc": 3.14, "Ti": 4.97, "V": 3.90,
	"Cr": 5.62, "Mn": 5.42, "Fe": 7.46, "Co": 4.94, "Ni": 6.20,
	"Cu": 4.18, "Zn": 4.56, "Ga": 3.02, "Ge": 3.62, "As": 2.30,
	"Se": 3.34, "Br": 2.54, "Kr": 3.12,
	"Rb": 2.32, "Sr": 2.83, "Y": 2.21, "Zr": 2.59, "Nb": 1.47,
	"Mo": 1.88, "Ru": 1.75, "Rh": 0.78, "Pd": 1.57, "Ag": 0.96,
	"Cd": 1.71, "In": 0.80, "Sn": 2.02, "Sb": 1.01, "Te": 2.18,
	"I": 1.55, "Xe": 2.22,
	"Cs": 1.08, "Ba": 2.27, "La": 1.11, "Ce": 1.58, "Pr": 0.75,
	"Nd": 1.42, "Sm": 0.95, "Eu": 0.52, "Gd": 1.08, "Tb": 0.31,
	"Dy": 1.10, "Ho": 0.48, "Er": 0.93, "Tm": 0.11, "Yb": 0.85,
	"Lu": 0.10, "Hf": 0.85, "Ta": -0.15, "W": 0.79, "Re": 0.26,
	"Os": 1.35, "Ir": 1.32, "Pt": 1.61, "Au": 0.91, "Hg": 1.17,
	"Tl": 0.92, "Pb": 1.95, "Bi": 0.65,
	"Th": 0.03, "U": -0.54,
}

// Solar returns the solar abundance A(X) for an element symbol and
// whether the element is tracked.
func Solar(symbol string) (float64, bool) {
	a, ok := solar[symbol]
	return a, ok
}

// Elements returns the number of tracked elements.
func Elements() int { return len(solar) }
