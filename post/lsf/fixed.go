package lsf

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// FixedKernel is an FFT convolver with the line-spread kernel frozen
// at the midpoint of a wavelength grid. It is the fast path for long
// grids whose relative width spans a few percent at most, where the
// wavelength dependence of the kernel is below the noise floor of any
// downstream comparison.
type FixedKernel struct {
	kernelFFT []complex128
	kernelLen int
	fftSize   int
	plan      *algofft.Plan[complex128]

	inputPadded  []complex128
	outputPadded []complex128
}

// NewFixedKernel builds the convolver for a grid with the given
// midpoint wavelength, grid spacing, and resolving power. Wavelength
// and spacing share one unit. n is the grid length the convolver will
// process.
func NewFixedKernel(midWl, step float64, resolvingPower float64, n int) (*FixedKernel, error) {
	if n <= 0 {
		return nil, ErrEmptyInput
	}
	if resolvingPower <= 0 {
		return nil, ErrResolvingPower
	}
	if step <= 0 {
		return nil, ErrNonAscendingWls
	}

	sigma := midWl / (2 * resolvingPower)
	half := int(math.Ceil(kernelCutoff * sigma / step))
	kernelLen := 2*half + 1

	kernel := make([]float64, kernelLen)
	sum := 0.0
	for i := range kernel {
		d := float64(i-half) * step / sigma
		kernel[i] = math.Exp(-0.5 * d * d)
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	fftSize := nextPowerOf2(n + kernelLen - 1)
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("lsf: fft plan: %w", err)
	}

	fk := &FixedKernel{
		kernelFFT:    make([]complex128, fftSize),
		kernelLen:    kernelLen,
		fftSize:      fftSize,
		plan:         plan,
		inputPadded:  make([]complex128, fftSize),
		outputPadded: make([]complex128, fftSize),
	}

	kernelPadded := make([]complex128, fftSize)
	for i, v := range kernel {
		kernelPadded[i] = complex(v, 0)
	}
	if err := plan.Forward(fk.kernelFFT, kernelPadded); err != nil {
		return nil, fmt.Errorf("lsf: kernel fft: %w", err)
	}

	return fk, nil
}

// KernelLen returns the truncated kernel length in samples.
func (fk *FixedKernel) KernelLen() int { return fk.kernelLen }

// Process convolves flux with the frozen kernel and returns the
// same-length center slice of the linear convolution, so features stay
// aligned with the input grid.
func (fk *FixedKernel) Process(flux []float64) ([]float64, error) {
	if len(flux) == 0 {
		return nil, ErrEmptyInput
	}
	if len(flux)+fk.kernelLen-1 > fk.fftSize {
		return nil, fmt.Errorf("%w: input %d exceeds plan capacity", ErrLengthMismatch, len(flux))
	}

	for i := range fk.inputPadded {
		fk.inputPadded[i] = 0
	}
	for i, v := range flux {
		fk.inputPadded[i] = complex(v, 0)
	}

	if err := fk.plan.Forward(fk.inputPadded, fk.inputPadded); err != nil {
		return nil, fmt.Errorf("lsf: forward fft: %w", err)
	}
	for i := range fk.outputPadded {
		fk.outputPadded[i] = fk.inputPadded[i] * fk.kernelFFT[i]
	}
	if err := fk.plan.Inverse(fk.outputPadded, fk.outputPadded); err != nil {
		return nil, fmt.Errorf("lsf: inverse fft: %w", err)
	}

	out := make([]float64, len(flux))
	offset := fk.kernelLen / 2
	for i := range out {
		out[i] = real(fk.outputPadded[offset+i])
	}
	return out, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
