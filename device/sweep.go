package device

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Range is a closed, linearly spaced bias interval. Steps counts the
// samples, endpoints included, so the spacing is (Stop-Start)/(Steps-1).
// Descending ranges (Stop < Start) are valid and sweep high to low.
type Range struct {
	Start float64
	Stop  float64
	Steps int
}

// Values materializes the range. At least two samples are required so both
// endpoints appear.
func (r Range) Values() ([]float64, error) {
	if r.Steps < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 steps, got %d", r.Steps)
	}
	return floats.Span(make([]float64, r.Steps), r.Start, r.Stop), nil
}

// SweepDrain evaluates the device across drain bias at fixed Vgs. The
// result is fully materialized in sweep order, one operating point per
// sample. Non-finite bias anywhere in the sweep aborts it.
func SweepDrain(d *DerivedParameters, vgs float64, r Range) ([]OperatingPoint, error) {
	vals, err := r.Values()
	if err != nil {
		return nil, err
	}
	ops := make([]OperatingPoint, 0, len(vals))
	for _, vds := range vals {
		op, err := Evaluate(d, Bias{Vgs: vgs, Vds: vds})
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// SweepGate evaluates the device across gate bias at fixed Vds.
func SweepGate(d *DerivedParameters, vds float64, r Range) ([]OperatingPoint, error) {
	vals, err := r.Values()
	if err != nil {
		return nil, err
	}
	ops := make([]OperatingPoint, 0, len(vals))
	for _, vgs := range vals {
		op, err := Evaluate(d, Bias{Vgs: vgs, Vds: vds})
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// Surface is a grid of operating points over a gate x drain bias lattice,
// the raw material for I-V surface views. Points[i][j] is evaluated at
// Gate[i], Drain[j].
type Surface struct {
	Gate   []float64
	Drain  []float64
	Points [][]OperatingPoint
}

// SweepSurface evaluates the full bias lattice.
func SweepSurface(d *DerivedParameters, gate, drain Range) (*Surface, error) {
	gateVals, err := gate.Values()
	if err != nil {
		return nil, fmt.Errorf("gate range: %w", err)
	}
	drainVals, err := drain.Values()
	if err != nil {
		return nil, fmt.Errorf("drain range: %w", err)
	}
	s := &Surface{
		Gate:   gateVals,
		Drain:  drainVals,
		Points: make([][]OperatingPoint, 0, len(gateVals)),
	}
	for _, vgs := range gateVals {
		row := make([]OperatingPoint, 0, len(drainVals))
		for _, vds := range drainVals {
			op, err := Evaluate(d, Bias{Vgs: vgs, Vds: vds})
			if err != nil {
				return nil, err
			}
			row = append(row, op)
		}
		s.Points = append(s.Points, row)
	}
	return s, nil
}
