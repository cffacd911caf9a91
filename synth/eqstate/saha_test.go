package eqstate

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-spectral/synth/abund"
	"github.com/cwbudde/algo-spectral/synth/species"
)

func newContext(t *testing.T) *Context {
	t.Helper()

	ab, err := abund.Resolve(0, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	ctx, err := NewSolver(DefaultTables()).NewContext(ab)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}

	return ctx
}

func TestSolveConservesElementDensity(t *testing.T) {
	ctx := newContext(t)

	n, err := ctx.Solve(5777, 1e17, 1e13)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	ab, _ := abund.Resolve(0, nil)
	for _, symbol := range []string{"H", "Fe", "Ca"} {
		got := n[species.Species{Formula: symbol, Charge: 0}] +
			n[species.Species{Formula: symbol, Charge: 1}] +
			n[species.Species{Formula: symbol, Charge: 2}]
		want := ab[symbol] * 1e17
		if math.Abs(got-want)/want > 1e-12 {
			t.Fatalf("%s: stages sum to %v, want %v", symbol, got, want)
		}
	}
}

func TestSolveIonizationGrowsWithTemperature(t *testing.T) {
	ctx := newContext(t)

	ionFrac := func(temp float64) float64 {
		n, err := ctx.Solve(temp, 1e17, 1e13)
		if err != nil {
			t.Fatalf("Solve: %v", err)
		}
		n0 := n[species.Species{Formula: "Fe", Charge: 0}]
		n1 := n[species.Species{Formula: "Fe", Charge: 1}]
		return n1 / (n0 + n1)
	}

	cool, hot := ionFrac(4000), ionFrac(8000)
	if hot <= cool {
		t.Fatalf("Fe ionization fraction fell with temperature: %v -> %v", cool, hot)
	}
}

func TestSolveSecondIonizationGrowsWithTemperature(t *testing.T) {
	ctx := newContext(t)

	doubleFrac := func(temp float64) float64 {
		n, err := ctx.Solve(temp, 1e17, 1e13)
		if err != nil {
			t.Fatalf("Solve: %v", err)
		}
		n0 := n[species.Species{Formula: "Ca", Charge: 0}]
		n1 := n[species.Species{Formula: "Ca", Charge: 1}]
		n2 := n[species.Species{Formula: "Ca", Charge: 2}]
		return n2 / (n0 + n1 + n2)
	}

	cool, hot := doubleFrac(5000), doubleFrac(15000)
	if hot <= cool {
		t.Fatalf("Ca III fraction fell with temperature: %v -> %v", cool, hot)
	}
	if hot == 0 {
		t.Fatal("no doubly ionized calcium at 15000 K")
	}

	// Hydrogen has no second stage: the key must never appear.
	n, err := ctx.Solve(15000, 1e17, 1e13)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if _, ok := n[species.Species{Formula: "H", Charge: 2}]; ok {
		t.Fatal("solver produced a doubly ionized hydrogen stage")
	}
}

func TestSolveStableKeySet(t *testing.T) {
	ctx := newContext(t)

	a, err := ctx.Solve(4000, 1e17, 1e13)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	b, err := ctx.Solve(9000, 1e18, 1e15)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	if len(a) != len(b) {
		t.Fatalf("key set size changed: %d vs %d", len(a), len(b))
	}
	for sp := range a {
		if _, ok := b[sp]; !ok {
			t.Fatalf("species %s missing from second layer", sp)
		}
	}
}

func TestSolveZeroElectronDensity(t *testing.T) {
	ctx := newContext(t)

	n, err := ctx.Solve(5777, 1e17, 0)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	for sp, v := range n {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("%s: non-finite density %v", sp, v)
		}
	}
}

func TestNewContextRejectsEmptyTable(t *testing.T) {
	_, err := NewSolver(DefaultTables()).NewContext(nil)
	if !errors.Is(err, ErrNoAbundances) {
		t.Fatalf("got %v, want ErrNoAbundances", err)
	}
}
