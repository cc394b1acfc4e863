package device

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// axisNames labels the coordinate axes in error messages and reports.
var axisNames = [3]string{"x", "y", "z"}

// component returns v's coordinate along the given axis (0=x, 1=y, 2=z).
func component(v r3.Vec, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Box is an axis-aligned bounding box in micron coordinates.
type Box struct {
	Min r3.Vec
	Max r3.Vec
}

// VertexBounds returns the axis-aligned box spanning the given corners.
func VertexBounds(vertices [PartVertexCount]r3.Vec) Box {
	b := Box{Min: vertices[0], Max: vertices[0]}
	for _, v := range vertices[1:] {
		b.Min.X = math.Min(b.Min.X, v.X)
		b.Min.Y = math.Min(b.Min.Y, v.Y)
		b.Min.Z = math.Min(b.Min.Z, v.Z)
		b.Max.X = math.Max(b.Max.X, v.X)
		b.Max.Y = math.Max(b.Max.Y, v.Y)
		b.Max.Z = math.Max(b.Max.Z, v.Z)
	}
	return b
}

// CatalogBounds returns the box spanning every part in the catalog, for
// camera framing. The zero Box is returned for an empty catalog.
func CatalogBounds(c *Catalog) Box {
	parts := c.Parts()
	if len(parts) == 0 {
		return Box{}
	}
	b := parts[0].Bounds()
	for i := range parts[1:] {
		b = b.Union(parts[i+1].Bounds())
	}
	return b
}

// Union returns the smallest box containing both b and other.
func (b Box) Union(other Box) Box {
	return Box{
		Min: r3.Vec{
			X: math.Min(b.Min.X, other.Min.X),
			Y: math.Min(b.Min.Y, other.Min.Y),
			Z: math.Min(b.Min.Z, other.Min.Z),
		},
		Max: r3.Vec{
			X: math.Max(b.Max.X, other.Max.X),
			Y: math.Max(b.Max.Y, other.Max.Y),
			Z: math.Max(b.Max.Z, other.Max.Z),
		},
	}
}

// Center returns the box midpoint.
func (b Box) Center() r3.Vec {
	return r3.Scale(0.5, r3.Add(b.Min, b.Max))
}

// Size returns the extent per axis.
func (b Box) Size() r3.Vec {
	return r3.Sub(b.Max, b.Min)
}

// Extent returns the box length along the given axis.
func (b Box) Extent(axis int) float64 {
	return component(b.Max, axis) - component(b.Min, axis)
}

// ThinnestAxis returns the axis of minimum extent. Ties resolve to the
// lowest axis index.
func (b Box) ThinnestAxis() int {
	axis := 0
	for a := 1; a < 3; a++ {
		if b.Extent(a) < b.Extent(axis) {
			axis = a
		}
	}
	return axis
}

// Overlap returns the length of the 1D intersection of b and other along the
// given axis, zero when they do not overlap.
func (b Box) Overlap(other Box, axis int) float64 {
	lo := math.Max(component(b.Min, axis), component(other.Min, axis))
	hi := math.Min(component(b.Max, axis), component(other.Max, axis))
	if hi < lo {
		return 0
	}
	return hi - lo
}
