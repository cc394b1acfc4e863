package device

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// PartVertexCount is the number of corners a part carries: two four-corner
// caps (0-3 and 4-7) matched by index and joined side to side.
const PartVertexCount = 8

// Part is one physical region of the device: a named, colored eight-corner
// solid with a doping description. Corner positions are in microns.
type Part struct {
	Name     string
	Color    [3]float64 // linear RGB, each component in [0,1]
	Vertices [PartVertexCount]r3.Vec
	Doping   Doping
}

// Centroid returns the mean of the part's corners.
func (p *Part) Centroid() r3.Vec {
	var sum r3.Vec
	for _, v := range p.Vertices {
		sum = r3.Add(sum, v)
	}
	return r3.Scale(1.0/PartVertexCount, sum)
}

// Bounds returns the part's axis-aligned bounding box.
func (p *Part) Bounds() Box {
	return VertexBounds(p.Vertices)
}

// Solid assembles the part's closed six-face solid. Geometry failures are
// reported as *GeometryError naming the part.
func (p *Part) Solid() (*Solid, error) {
	s, err := BuildSolid(p.Vertices)
	if err != nil {
		var gerr *GeometryError
		if errors.As(err, &gerr) {
			gerr.Part = p.Name
		}
		return nil, err
	}
	return s, nil
}

// validate checks part-local invariants. The catalog loader calls it for
// every part after normalization; geometry is not checked here (solids are
// built on demand).
func (p *Part) validate() error {
	if p.Name == "" {
		return &ValidationError{Field: "name", Reason: "part name must be non-empty"}
	}
	for i, c := range p.Color {
		if math.IsNaN(c) || c < 0 || c > 1 {
			return &ValidationError{Part: p.Name, Field: "color",
				Reason: fmt.Sprintf("component %d must be in [0,1], got %v", i, c)}
		}
	}
	for i, v := range p.Vertices {
		for axis := 0; axis < 3; axis++ {
			if c := component(v, axis); math.IsNaN(c) || math.IsInf(c, 0) {
				return &ValidationError{Part: p.Name, Field: "vertices",
					Reason: fmt.Sprintf("vertex %d has a non-finite %s coordinate", i, axisNames[axis])}
			}
		}
	}
	switch p.Doping.Type {
	case NType, PType:
		n := p.Doping.Concentration
		if math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
			return &ValidationError{Part: p.Name, Field: "doping",
				Reason: fmt.Sprintf("concentration must be positive, got %v", n)}
		}
	case Oxide:
		// Concentration is normalized to zero before validation.
	default:
		return &ValidationError{Part: p.Name, Field: "doping", Reason: "unknown doping type"}
	}
	return nil
}
