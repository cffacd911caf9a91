// Package lsf degrades a synthetic spectrum to a finite instrumental
// resolving power by convolution with a Gaussian line-spread function.
//
// Two entry points are provided. Degrade builds a local kernel per
// grid point, so the kernel width tracks the wavelength across the
// grid; this is the reference path. FixedKernel freezes the kernel at
// the grid midpoint and convolves via FFT, trading the wavelength
// dependence for speed on long grids where the relative width change
// across the grid is negligible.
//
// Both paths expect a fine, evenly spaced wavelength grid (spacing
// well below the kernel width). Behavior on irregular grids is
// undefined.
package lsf
