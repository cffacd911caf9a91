// Package opacity assembles the total absorption coefficient, layer by
// layer, from interpolated continuum opacity and line contributions.
package opacity

import "fmt"

// Matrix is a dense [layer, wavelength] array of linear absorption
// coefficients in cm^-1. Rows are built by accumulation: seeded from
// the continuum and incremented in place by line contributions.
type Matrix struct {
	rows, cols int
	data       []float64
}

// NewMatrix creates a zeroed rows×cols matrix.
func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// Rows returns the layer count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the wavelength count.
func (m *Matrix) Cols() int { return m.cols }

// Row returns the backing slice of layer i. Writes through the slice
// mutate the matrix.
func (m *Matrix) Row(i int) []float64 {
	return m.data[i*m.cols : (i+1)*m.cols : (i+1)*m.cols]
}

// At returns the element at layer i, wavelength j.
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.cols+j]
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	out := NewMatrix(m.rows, m.cols)
	copy(out.data, m.data)

	return out
}

// String summarizes the matrix shape.
func (m *Matrix) String() string {
	return fmt.Sprintf("opacity.Matrix(%d layers × %d wavelengths)", m.rows, m.cols)
}
