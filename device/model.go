package device

import "math"

// Region identifies which branch of the piecewise current equation applies
// at an operating point.
type Region int

const (
	Cutoff Region = iota
	Triode
	Saturation
)

var regionNames = map[Region]string{
	Cutoff:     "cutoff",
	Triode:     "triode",
	Saturation: "saturation",
}

func (r Region) String() string {
	if name, ok := regionNames[r]; ok {
		return name
	}
	return "unknown"
}

// Bias is a gate-source / drain-source voltage pair in volts, referenced to
// the source terminal.
type Bias struct {
	Vgs float64
	Vds float64
}

// OperatingPoint is the model output at one bias. Currents and conductances
// follow the device's native sign convention: a conducting p-channel device
// reports negative drain current and negative overdrive, while
// transconductance and output conductance stay non-negative.
type OperatingPoint struct {
	Bias   Bias
	Region Region

	DrainCurrent      float64 // A
	Transconductance  float64 // dId/dVgs, S
	OutputConductance float64 // dId/dVds, S
	Overdrive         float64 // Vgs - Vth, V
}

// Evaluate computes the square-law operating point at bias b. The
// computation is pure: equal inputs give equal outputs, and nothing is
// cached between calls. Non-finite bias values are rejected with
// *InvalidBiasError; finite inputs never fail.
func Evaluate(d *DerivedParameters, b Bias) (OperatingPoint, error) {
	if math.IsNaN(b.Vgs) || math.IsInf(b.Vgs, 0) {
		return OperatingPoint{}, &InvalidBiasError{Input: "Vgs", Value: b.Vgs}
	}
	if math.IsNaN(b.Vds) || math.IsInf(b.Vds, 0) {
		return OperatingPoint{}, &InvalidBiasError{Input: "Vds", Value: b.Vds}
	}

	// P-channel devices evaluate in the mirrored frame; only the current
	// changes sign on the way back out.
	vgs, vds, vth := b.Vgs, b.Vds, d.Threshold
	sign := 1.0
	if d.Polarity == PChannel {
		sign = -1
		vgs, vds, vth = -vgs, -vds, -vth
	}

	op := OperatingPoint{Bias: b, Overdrive: b.Vgs - d.Threshold}
	vov := vgs - vth
	beta := d.Beta
	switch {
	case vov <= 0:
		op.Region = Cutoff
	case vds < vov:
		op.Region = Triode
		op.DrainCurrent = sign * beta * (vov*vds - 0.5*vds*vds)
		op.Transconductance = beta * vds
		op.OutputConductance = beta * (vov - vds)
	default:
		op.Region = Saturation
		op.DrainCurrent = sign * 0.5 * beta * vov * vov
		op.Transconductance = beta * vov
	}
	return op, nil
}
