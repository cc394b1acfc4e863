package device

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/spatial/r3"
)

// boxVertices builds the eight corners of an axis-aligned slab, cap 0-3 at
// z0 and cap 4-7 at z1, both caps wound (x0,y0) (x1,y0) (x1,y1) (x0,y1).
func boxVertices(x0, x1, y0, y1, z0, z1 float64) [PartVertexCount]r3.Vec {
	return [PartVertexCount]r3.Vec{
		{X: x0, Y: y0, Z: z0}, {X: x1, Y: y0, Z: z0}, {X: x1, Y: y1, Z: z0}, {X: x0, Y: y1, Z: z0},
		{X: x0, Y: y0, Z: z1}, {X: x1, Y: y0, Z: z1}, {X: x1, Y: y1, Z: z1}, {X: x0, Y: y1, Z: z1},
	}
}

// referenceParts builds the slab layout of the stock n-channel device:
// 1 um drawn channel, 2 um width, 0.125 um gate oxide.
func referenceParts() []Part {
	return []Part{
		{Name: RoleBody, Color: [3]float64{0.6, 0.6, 0.6}, Vertices: boxVertices(0, 4, 0, 1.2, 0, 2),
			Doping: Doping{Type: PType, Concentration: 5e15}},
		{Name: RoleSource, Color: [3]float64{0.2, 0.4, 1}, Vertices: boxVertices(0.2, 1.2, 0.9, 1.2, 0, 2),
			Doping: Doping{Type: NType, Concentration: 1e17}},
		{Name: RoleDrain, Color: [3]float64{0.2, 0.8, 0.3}, Vertices: boxVertices(2.2, 3.2, 0.9, 1.2, 0, 2),
			Doping: Doping{Type: NType, Concentration: 5e16}},
		{Name: RoleGateOxide, Color: [3]float64{1, 0.95, 0.55}, Vertices: boxVertices(1.2, 2.2, 1.2, 1.325, 0, 2),
			Doping: Doping{Type: Oxide}},
		{Name: RoleGate, Color: [3]float64{0.85, 0.2, 0.2}, Vertices: boxVertices(1.1, 2.3, 1.325, 1.625, 0, 2),
			Doping: Doping{Type: PType, Concentration: 1e18}},
	}
}

// referenceCatalog assembles referenceParts into a catalog.
func referenceCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog(referenceParts())
	require.NoError(t, err)
	return c
}

// withoutPart returns parts minus the named one.
func withoutPart(parts []Part, name string) []Part {
	out := make([]Part, 0, len(parts))
	for _, p := range parts {
		if p.Name != name {
			out = append(out, p)
		}
	}
	return out
}

// nchannelParams builds minimal derived parameters for model-only tests.
func nchannelParams(vth, beta float64) *DerivedParameters {
	return &DerivedParameters{Polarity: NChannel, Threshold: vth, Beta: beta}
}
