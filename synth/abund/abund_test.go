package abund

import (
	"errors"
	"math"
	"testing"
)

func TestResolveNormalized(t *testing.T) {
	for _, tc := range []struct {
		name        string
		metallicity float64
		overrides   map[string]float64
	}{
		{"solar", 0, nil},
		{"metal poor", -2, nil},
		{"metal rich", 0.5, nil},
		{"with overrides", 0, map[string]float64{"Fe": 7.0, "C": 8.8}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			table, err := Resolve(tc.metallicity, tc.overrides)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}

			if len(table) != Elements() {
				t.Fatalf("table has %d entries, want %d", len(table), Elements())
			}

			sum := 0.0
			for symbol, v := range table {
				if v < 0 {
					t.Fatalf("%s: negative abundance %v", symbol, v)
				}
				sum += v
			}
			if math.Abs(sum-1) > 1e-12 {
				t.Fatalf("sum %v, want 1", sum)
			}
		})
	}
}

func TestResolveRejectsHydrogenOverride(t *testing.T) {
	_, err := Resolve(0, map[string]float64{"H": 12.5})
	if !errors.Is(err, ErrHydrogenOverride) {
		t.Fatalf("got %v, want ErrHydrogenOverride", err)
	}
}

func TestResolveRejectsUnknownElement(t *testing.T) {
	_, err := Resolve(0, map[string]float64{"Xx": 3})
	if !errors.Is(err, ErrUnknownElement) {
		t.Fatalf("got %v, want ErrUnknownElement", err)
	}
}

func TestHeliumNotScaledByMetallicity(t *testing.T) {
	solarTable, err := Resolve(0, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	poor, err := Resolve(-1, nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	// He/H must be unchanged by metallicity; Fe/H must scale by 10^[M/H].
	heSolar := solarTable["He"] / solarTable["H"]
	hePoor := poor["He"] / poor["H"]
	if math.Abs(heSolar-hePoor)/heSolar > 1e-12 {
		t.Fatalf("He/H changed with metallicity: %v vs %v", heSolar, hePoor)
	}

	feRatio := (poor["Fe"] / poor["H"]) / (solarTable["Fe"] / solarTable["H"])
	if math.Abs(feRatio-0.1) > 1e-12 {
		t.Fatalf("Fe/H scaled by %v, want 0.1", feRatio)
	}
}

func TestOverrideApplied(t *testing.T) {
	table, err := Resolve(0, map[string]float64{"Fe": 6.46})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	a, _ := Solar("Fe")
	want := math.Pow(10, 6.46-a)
	solarTable, _ := Resolve(0, nil)
	got := (table["Fe"] / table["H"]) / (solarTable["Fe"] / solarTable["H"])
	if math.Abs(got-want)/want > 1e-12 {
		t.Fatalf("override ratio %v, want %v", got, want)
	}
}
