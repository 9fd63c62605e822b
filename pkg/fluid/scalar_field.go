package fluid

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ScalarField is a read-only snapshot of one scalar grid. Values are stored
// x-major: the cell at column i, row j lives at offset i*Size()+j.
type ScalarField struct {
	size     int
	values   []float64
	min, max float64
}

func newScalarField(size int, src []float64) ScalarField {
	values := make([]float64, len(src))
	copy(values, src)
	s := ScalarField{size: size, values: values}
	if len(values) > 0 {
		s.min = floats.Min(values)
		s.max = floats.Max(values)
	}
	return s
}

// Size returns the number of cells per axis.
func (s ScalarField) Size() int { return s.size }

// Min returns the smallest cell value, ghost ring included.
func (s ScalarField) Min() float64 { return s.min }

// Max returns the largest cell value, ghost ring included.
func (s ScalarField) Max() float64 { return s.max }

// Value returns the cell at column i, row j.
func (s ScalarField) Value(i, j int) (float64, error) {
	if i < 0 || i >= s.size {
		return 0, fmt.Errorf("%w: x index %d, must be between 0 and %d", ErrInvalidCoordinate, i, s.size-1)
	}
	if j < 0 || j >= s.size {
		return 0, fmt.Errorf("%w: y index %d, must be between 0 and %d", ErrInvalidCoordinate, j, s.size-1)
	}
	return s.values[i*s.size+j], nil
}

// Values returns a copy of the cells in x-major order.
func (s ScalarField) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// Sum returns the total over every cell, ghost ring included.
func (s ScalarField) Sum() float64 {
	return floats.Sum(s.values)
}

// InteriorSum returns the total over the cells that can hold sources.
func (s ScalarField) InteriorSum() float64 {
	var total float64
	for i := 1; i < s.size-1; i++ {
		total += floats.Sum(s.values[i*s.size+1 : (i+1)*s.size-1])
	}
	return total
}

// Matrix returns the field as a dense matrix with rows indexed by y and
// columns by x, the layout image-oriented consumers expect.
func (s ScalarField) Matrix() *mat.Dense {
	m := mat.NewDense(s.size, s.size, nil)
	for i := 0; i < s.size; i++ {
		m.SetCol(i, s.values[i*s.size:(i+1)*s.size])
	}
	return m
}

// Density returns a snapshot of the density field.
func (f *Fluid) Density() ScalarField {
	return newScalarField(f.size, f.density.cur)
}

// Pressure returns the pressure solved by the most recent projection.
func (f *Fluid) Pressure() ScalarField {
	return newScalarField(f.size, f.p)
}
