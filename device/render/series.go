package render

import "github.com/mosviz/mosviz/device"

// Series is one plottable curve. Y values stay in SI amps; the plot layer
// owns axis scaling.
type Series struct {
	Label string
	X     []float64
	Y     []float64
}

// DrainCurve maps a drain sweep onto an Id(Vds) series.
func DrainCurve(label string, ops []device.OperatingPoint) Series {
	s := Series{Label: label, X: make([]float64, len(ops)), Y: make([]float64, len(ops))}
	for i, op := range ops {
		s.X[i] = op.Bias.Vds
		s.Y[i] = op.DrainCurrent
	}
	return s
}

// TransferCurve maps a gate sweep onto an Id(Vgs) series.
func TransferCurve(label string, ops []device.OperatingPoint) Series {
	s := Series{Label: label, X: make([]float64, len(ops)), Y: make([]float64, len(ops))}
	for i, op := range ops {
		s.X[i] = op.Bias.Vgs
		s.Y[i] = op.DrainCurrent
	}
	return s
}

// DrainPoint is a one-sample series marking an operating point on an output
// characteristic.
func DrainPoint(label string, op device.OperatingPoint) Series {
	return Series{Label: label, X: []float64{op.Bias.Vds}, Y: []float64{op.DrainCurrent}}
}

// TransferPoint is a one-sample series marking an operating point on a
// transfer characteristic.
func TransferPoint(label string, op device.OperatingPoint) Series {
	return Series{Label: label, X: []float64{op.Bias.Vgs}, Y: []float64{op.DrainCurrent}}
}

// Segment is a maximal run of consecutive sweep samples sharing an
// operating region. Adjacent segments share their boundary sample so the
// drawn curve stays connected across region changes.
type Segment struct {
	Region device.Region
	Ops    []device.OperatingPoint
}

// RegionSegments splits a sweep wherever the operating region changes,
// the raw material for region-colored curves.
func RegionSegments(ops []device.OperatingPoint) []Segment {
	if len(ops) == 0 {
		return nil
	}
	var segments []Segment
	start := 0
	for i := 1; i <= len(ops); i++ {
		if i == len(ops) || ops[i].Region != ops[start].Region {
			end := i
			if i < len(ops) {
				end = i + 1 // carry the boundary sample into this segment
			}
			segments = append(segments, Segment{Region: ops[start].Region, Ops: ops[start:end]})
			start = i
		}
	}
	return segments
}
