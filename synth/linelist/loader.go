package linelist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-spectral/synth/core"
	"github.com/cwbudde/algo-spectral/synth/species"
)

// Load reads a whitespace-delimited linelist. Each record is
//
//	wavelength[Å]  species  log(gf)  chi_lo[eV]  [gamma_rad  gamma_stark  gamma_vdw]
//
// where species is spectroscopic notation without the space, e.g.
// "FeI" or "CaII". Blank lines and '#' comments are skipped. Broadening
// parameters default to zero when absent.
func Load(r io.Reader) ([]Transition, error) {
	sc := bufio.NewScanner(r)
	ln := 0

	var lines []Transition
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}

		f := strings.Fields(line)
		if len(f) != 4 && len(f) != 7 {
			return nil, fmt.Errorf("linelist: line %d: want 4 or 7 fields, got %d", ln, len(f))
		}

		sp, err := parseSpecies(f[1])
		if err != nil {
			return nil, fmt.Errorf("linelist: line %d: %w", ln, err)
		}

		vals := make([]float64, 0, 6)
		for _, col := range append(f[:1:1], f[2:]...) {
			v, err := strconv.ParseFloat(col, 64)
			if err != nil {
				return nil, fmt.Errorf("linelist: line %d: %w", ln, err)
			}
			vals = append(vals, v)
		}

		tr := Transition{
			Wavelength:          core.AngstromToCM(vals[0]),
			Species:             sp,
			LogGF:               vals[1],
			ExcitationPotential: vals[2],
		}
		if len(vals) == 6 {
			tr.GammaRad = vals[3]
			tr.GammaStark = vals[4]
			tr.GammaVdW = vals[5]
		}

		lines = append(lines, tr)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// parseSpecies splits compact spectroscopic notation ("FeI", "CaII")
// into formula and charge.
func parseSpecies(s string) (species.Species, error) {
	i := len(s)
	for i > 0 && (s[i-1] == 'I' || s[i-1] == 'V') {
		i--
	}
	if i == 0 {
		// Vanadium and iodine start with roman-numeral letters; the
		// first character always belongs to the formula.
		i = 1
	}

	if i == len(s) {
		return species.Species{}, fmt.Errorf("bad species %q", s)
	}

	roman := s[i:]
	charge := 0
	switch roman {
	case "I":
		charge = 0
	case "II":
		charge = 1
	case "III":
		charge = 2
	case "IV":
		charge = 3
	case "V":
		charge = 4
	case "VI":
		charge = 5
	default:
		return species.Species{}, fmt.Errorf("bad ionization stage %q in %q", roman, s)
	}

	return species.Species{Formula: s[:i], Charge: charge}, nil
}
