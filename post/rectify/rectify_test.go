package rectify

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-spectral/internal/testutil"
)

func evenGrid(start, step float64, n int) []float64 {
	wls := make([]float64, n)
	for i := range wls {
		wls[i] = start + float64(i)*step
	}
	return wls
}

func TestRectifyConstant(t *testing.T) {
	const n = 201
	wls := evenGrid(5000, 1.0, n)
	flux := testutil.FlatSpectrum(2.0, n)

	out, err := Rectify(flux, wls, WithBandwidth(10))
	if err != nil {
		t.Fatalf("Rectify: %v", err)
	}

	// A constant rectifies to exactly 1 everywhere; even clipped edge
	// windows see only the constant value.
	for i, v := range out {
		if math.Abs(v-1.0) > 1e-15 {
			t.Fatalf("index %d: got %v, want 1.0", i, v)
		}
	}
}

func TestRectifyLineDepthPreserved(t *testing.T) {
	const n = 401
	wls := evenGrid(5000, 0.1, n)
	flux := testutil.AbsorptionLine(3.0, 0.4, 5.0, n, n/2)

	out, err := Rectify(flux, wls, WithBandwidth(10))
	if err != nil {
		t.Fatalf("Rectify: %v", err)
	}

	// The narrow line barely moves the 0.95 quantile of a 10 Å
	// window, so the rectified depth matches the relative depth.
	testutil.RequireNearlyEqual(t, out[n/2], 0.6, 1e-2)
	testutil.RequireNearlyEqual(t, out[20], 1.0, 1e-2)
}

func TestRectifyRemovesSlope(t *testing.T) {
	const n = 501
	wls := evenGrid(5000, 0.1, n)
	flux := make([]float64, n)
	for i := range flux {
		flux[i] = 1.0 + 0.001*float64(i)
	}

	out, err := Rectify(flux, wls, WithBandwidth(5))
	if err != nil {
		t.Fatalf("Rectify: %v", err)
	}

	for i := 60; i < n-60; i++ {
		if math.Abs(out[i]-1.0) > 0.05 {
			t.Fatalf("index %d: got %v, want near 1.0", i, out[i])
		}
	}
}

func TestRectifyDefaults(t *testing.T) {
	cfg := ApplyOptions()
	if cfg.Bandwidth != 50 || cfg.Quantile != 0.95 {
		t.Fatalf("defaults = %+v, want bandwidth 50 quantile 0.95", cfg)
	}
}

func TestRectifyValidation(t *testing.T) {
	wls := evenGrid(5000, 1.0, 3)
	flux := []float64{1, 1, 1}

	if _, err := Rectify(nil, nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("got %v, want ErrEmptyInput", err)
	}
	if _, err := Rectify([]float64{1}, wls); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("got %v, want ErrLengthMismatch", err)
	}
	if _, err := Rectify(flux, wls, WithBandwidth(-1)); !errors.Is(err, ErrBandwidth) {
		t.Fatalf("got %v, want ErrBandwidth", err)
	}
	if _, err := Rectify(flux, wls, WithQuantile(1.5)); !errors.Is(err, ErrQuantile) {
		t.Fatalf("got %v, want ErrQuantile", err)
	}
	if _, err := Rectify(flux, []float64{3, 2, 1}); !errors.Is(err, ErrNonAscendingWls) {
		t.Fatalf("got %v, want ErrNonAscendingWls", err)
	}
	if _, err := Rectify([]float64{0, 0, 0}, wls); !errors.Is(err, ErrZeroContinuum) {
		t.Fatalf("got %v, want ErrZeroContinuum", err)
	}
}

func TestQuantileSorted(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5}

	cases := []struct {
		q    float64
		want float64
	}{
		{1.0, 5},
		{0.5, 3},
		{0.25, 2},
		{0.95, 4.8},
	}
	for _, tc := range cases {
		got := quantileSorted(data, tc.q)
		if math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("q=%v: got %v, want %v", tc.q, got, tc.want)
		}
	}

	if got := quantileSorted([]float64{7}, 0.5); got != 7 {
		t.Fatalf("single element: got %v, want 7", got)
	}
}
