package fluid

import "fmt"

// VectorField is a read-only snapshot of the velocity grid, laid out like
// ScalarField.
type VectorField struct {
	size             int
	valuesU, valuesV []float64
}

func (v VectorField) Size() int { return v.size }

// Value returns the (u, v) velocity at column i, row j.
func (v VectorField) Value(i, j int) (float64, float64, error) {
	if i < 0 || i >= v.size {
		return 0, 0, fmt.Errorf("%w: x index %d, must be between 0 and %d", ErrInvalidCoordinate, i, v.size-1)
	}
	if j < 0 || j >= v.size {
		return 0, 0, fmt.Errorf("%w: y index %d, must be between 0 and %d", ErrInvalidCoordinate, j, v.size-1)
	}
	return v.valuesU[i*v.size+j], v.valuesV[i*v.size+j], nil
}

// U returns the x component as a scalar field.
func (v VectorField) U() ScalarField { return newScalarField(v.size, v.valuesU) }

// V returns the y component as a scalar field.
func (v VectorField) V() ScalarField { return newScalarField(v.size, v.valuesV) }

// Velocity returns a snapshot of the velocity field.
func (f *Fluid) Velocity() VectorField {
	uCopy := make([]float64, f.numCells)
	copy(uCopy, f.u.cur)
	vCopy := make([]float64, f.numCells)
	copy(vCopy, f.v.cur)
	return VectorField{
		size:    f.size,
		valuesU: uCopy,
		valuesV: vCopy,
	}
}
