package device

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestVertexBounds_SpansAllCorners(t *testing.T) {
	b := VertexBounds(boxVertices(-1, 3, 0.5, 2, -2, 7))
	assert.Equal(t, r3.Vec{X: -1, Y: 0.5, Z: -2}, b.Min)
	assert.Equal(t, r3.Vec{X: 3, Y: 2, Z: 7}, b.Max)
	assert.Equal(t, r3.Vec{X: 1, Y: 1.25, Z: 2.5}, b.Center())
	assert.Equal(t, 4.0, b.Extent(0))
	assert.Equal(t, 1.5, b.Extent(1))
	assert.Equal(t, 9.0, b.Extent(2))
}

func TestBoxUnion_CoversBoth(t *testing.T) {
	a := VertexBounds(boxVertices(0, 1, 0, 1, 0, 1))
	b := VertexBounds(boxVertices(-2, 0.5, 0.25, 3, 0.5, 0.75))
	u := a.Union(b)
	assert.Equal(t, r3.Vec{X: -2, Y: 0, Z: 0}, u.Min)
	assert.Equal(t, r3.Vec{X: 1, Y: 3, Z: 1}, u.Max)
}

func TestBoxThinnestAxis(t *testing.T) {
	assert.Equal(t, 1, VertexBounds(boxVertices(0, 2, 0, 0.1, 0, 3)).ThinnestAxis())
	assert.Equal(t, 0, VertexBounds(boxVertices(0, 0.25, 0, 1, 0, 3)).ThinnestAxis())
	assert.Equal(t, 2, VertexBounds(boxVertices(0, 2, 0, 1, 0, 0.5)).ThinnestAxis())
	// Ties resolve to the lowest axis.
	assert.Equal(t, 0, VertexBounds(boxVertices(0, 1, 0, 1, 0, 1)).ThinnestAxis())
}

func TestBoxOverlap(t *testing.T) {
	a := VertexBounds(boxVertices(0, 2, 0, 1, 0, 1))
	b := VertexBounds(boxVertices(1.5, 4, 0, 1, 0, 1))
	assert.InDelta(t, 0.5, a.Overlap(b, 0), 1e-12)
	assert.InDelta(t, 0.5, b.Overlap(a, 0), 1e-12)
	assert.Equal(t, 1.0, a.Overlap(b, 1), "full overlap on y")

	c := VertexBounds(boxVertices(3, 4, 0, 1, 0, 1))
	assert.Equal(t, 0.0, a.Overlap(c, 0), "disjoint boxes")
}

func TestCatalogBounds_CoversEveryPart(t *testing.T) {
	c := referenceCatalog(t)
	b := CatalogBounds(c)
	assert.Equal(t, r3.Vec{X: 0, Y: 0, Z: 0}, b.Min)
	assert.Equal(t, r3.Vec{X: 4, Y: 1.625, Z: 2}, b.Max)

	for _, p := range c.Parts() {
		pb := p.Bounds()
		assert.Equal(t, b, b.Union(pb), "part %s escapes the device box", p.Name)
	}
}
