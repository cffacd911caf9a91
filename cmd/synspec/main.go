// Command synspec synthesizes a stellar spectrum from a model
// atmosphere and a linelist and writes it as two-column text.
//
// Usage:
//
//	synspec [flags] -atmosphere model.dat
//
// Examples:
//
//	synspec -atmosphere sun.dat -start 5000 -stop 5100
//	synspec -atmosphere sun.dat -linelist fe.lst -mh -0.5 -vmic 1.2
//	synspec -atmosphere sun.dat -R 50000 -rectify
//	synspec -atmosphere sun.dat -air -step 0.005
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/cwbudde/algo-spectral/post/lsf"
	"github.com/cwbudde/algo-spectral/post/rectify"
	"github.com/cwbudde/algo-spectral/synth/atmosphere"
	"github.com/cwbudde/algo-spectral/synth/engine"
	"github.com/cwbudde/algo-spectral/synth/linelist"
)

func main() {
	atmPath := flag.String("atmosphere", "", "model atmosphere file (required)")
	linePath := flag.String("linelist", "", "linelist file; empty synthesizes pure continuum")
	start := flag.Float64("start", 5000, "first wavelength in Å")
	stop := flag.Float64("stop", 5100, "last wavelength in Å")
	step := flag.Float64("step", 0.01, "grid spacing in Å")
	mh := flag.Float64("mh", 0, "metallicity [M/H] in dex")
	vmic := flag.Float64("vmic", 1.0, "microturbulent velocity in km/s")
	air := flag.Bool("air", false, "interpret the wavelength range as air wavelengths")
	noHydrogen := flag.Bool("no-hydrogen", false, "disable hydrogen line opacity")
	resolving := flag.Float64("R", 0, "degrade to this resolving power; 0 keeps full resolution")
	doRectify := flag.Bool("rectify", false, "normalize by a moving-quantile continuum")
	bandwidth := flag.Float64("bandwidth", 50, "rectification window half-width in Å")
	quantile := flag.Float64("quantile", 0.95, "rectification continuum quantile")
	out := flag.String("o", "", "output file; defaults to stdout")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: synspec [flags] -atmosphere model.dat\n\n")
		fmt.Fprintf(os.Stderr, "Synthesizes a stellar spectrum and writes wavelength/flux pairs.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  synspec -atmosphere sun.dat -start 5000 -stop 5100\n")
		fmt.Fprintf(os.Stderr, "  synspec -atmosphere sun.dat -linelist fe.lst -mh -0.5\n")
		fmt.Fprintf(os.Stderr, "  synspec -atmosphere sun.dat -R 50000 -rectify\n")
	}
	flag.Parse()

	if *atmPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*atmPath, *linePath, *out, *start, *stop, *step, *mh, *vmic,
		*resolving, *bandwidth, *quantile, *air, !*noHydrogen, *doRectify); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(atmPath, linePath, outPath string, start, stop, step, mh, vmic,
	resolving, bandwidth, quantile float64, air, hydrogen, doRectify bool) error {

	atm, err := loadAtmosphere(atmPath)
	if err != nil {
		return err
	}

	var lns []linelist.Transition
	if linePath != "" {
		lns, err = loadLinelist(linePath)
		if err != nil {
			return err
		}
	}

	e := engine.New(engine.Collaborators{},
		engine.WithMetallicity(mh),
		engine.WithVmic(vmic),
		engine.WithAirWavelengths(air),
		engine.WithHydrogenLines(hydrogen),
	)

	res, err := e.Synthesize(atm, lns, start, stop, step)
	if err != nil {
		return err
	}

	flux := res.Flux
	if resolving > 0 {
		flux, err = lsf.Degrade(flux, res.Wavelengths, resolving)
		if err != nil {
			return err
		}
	}
	if doRectify {
		flux, err = rectify.Rectify(flux, res.Wavelengths,
			rectify.WithBandwidth(bandwidth), rectify.WithQuantile(quantile))
		if err != nil {
			return err
		}
	}

	return writeSpectrum(outPath, res.Wavelengths, flux)
}

func loadAtmosphere(path string) (*atmosphere.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return atmosphere.Load(f)
}

func loadLinelist(path string) ([]linelist.Transition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return linelist.Load(f)
}

func writeSpectrum(path string, wls, flux []float64) error {
	var w *bufio.Writer
	if path == "" {
		w = bufio.NewWriter(os.Stdout)
	} else {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = bufio.NewWriter(f)
	}

	for i := range wls {
		if _, err := fmt.Fprintf(w, "%.4f %.6e\n", wls[i], flux[i]); err != nil {
			return err
		}
	}
	return w.Flush()
}
