// Package abund resolves a metallicity scalar and per-element overrides
// into normalized relative number densities.
package abund

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by Resolve.
var (
	// ErrHydrogenOverride rejects an explicit hydrogen abundance: the
	// scale is defined by A(H) = 12, so overriding hydrogen is a
	// contradiction the caller must express through metallicity or
	// other-element overrides instead.
	ErrHydrogenOverride = errors.New("abund: hydrogen abundance is fixed at A(H)=12 and cannot be overridden")

	ErrUnknownElement = errors.New("abund: unknown element symbol")
)

// Table maps element symbols to relative number densities n_X/n_total.
// Entries are non-negative and sum to 1 over all tracked elements.
type Table map[string]float64

// Resolve converts a metallicity [M/H] and optional per-element A(X)
// overrides into a normalized Table.
//
// Hydrogen is pinned to the reference value; helium defaults to its
// solar abundance without the metallicity shift; every other element
// without an override is scaled by the metallicity.
func Resolve(metallicity float64, overrides map[string]float64) (Table, error) {
	if _, ok := overrides["H"]; ok {
		return nil, ErrHydrogenOverride
	}

	for symbol := range overrides {
		if _, ok := solar[symbol]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownElement, symbol)
		}
	}

	table := make(Table, len(solar))
	total := 0.0

	for symbol, a := range solar {
		var v float64
		switch {
		case symbol == "H":
			v = 1.0
		case hasKey(overrides, symbol):
			v = math.Pow(10, overrides[symbol]-12)
		case symbol == "He":
			// Helium is not a metal; it keeps its solar value.
			v = math.Pow(10, a-12)
		default:
			v = math.Pow(10, a+metallicity-12)
		}

		table[symbol] = v
		total += v
	}

	// Normalize only after every element is resolved, so that the
	// relative proportions above are exact.
	for symbol := range table {
		table[symbol] /= total
	}

	return table, nil
}

func hasKey(m map[string]float64, k string) bool {
	_, ok := m[k]
	return ok
}
