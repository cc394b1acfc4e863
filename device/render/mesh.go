// Package render adapts device geometry and sweep output for the host
// application's renderer and plot views: flat triangle/line buffers on the
// geometry side, labelled series and PNG charts on the electrical side.
package render

import (
	"github.com/mosviz/mosviz/device"
)

// Mesh holds flat, upload-ready buffers for one part: triangle corner
// positions with matching per-face normals, and line segment endpoints for
// the wireframe overlay. Coordinates stay in the catalog's micron units;
// the host's camera transform owns scaling.
type Mesh struct {
	Name      string     `json:"name"`
	Color     [3]float64 `json:"color"`
	Positions []float32  `json:"positions"` // 36 triangle corners, xyz-interleaved
	Normals   []float32  `json:"normals"`   // parallel to Positions, one normal per corner
	Lines     []float32  `json:"lines"`     // 24 wireframe endpoints, xyz-interleaved
}

// BuildMesh triangulates one part into flat render buffers. Degenerate
// parts surface the underlying *device.GeometryError.
func BuildMesh(p device.Part) (*Mesh, error) {
	solid, err := p.Solid()
	if err != nil {
		return nil, err
	}
	m := &Mesh{
		Name:      p.Name,
		Color:     p.Color,
		Positions: make([]float32, 0, 12*3*3),
		Normals:   make([]float32, 0, 12*3*3),
		Lines:     make([]float32, 0, 12*2*3),
	}
	for ti, tri := range solid.Triangles() {
		n := solid.Faces[ti/2].Normal
		for _, ci := range tri {
			v := solid.Vertices[ci]
			m.Positions = append(m.Positions, float32(v.X), float32(v.Y), float32(v.Z))
			m.Normals = append(m.Normals, float32(n.X), float32(n.Y), float32(n.Z))
		}
	}
	for _, e := range solid.Edges() {
		for _, ci := range e {
			v := solid.Vertices[ci]
			m.Lines = append(m.Lines, float32(v.X), float32(v.Y), float32(v.Z))
		}
	}
	return m, nil
}

// Scene bundles every part mesh with the shared camera framing box.
type Scene struct {
	Meshes []*Mesh    `json:"meshes"`
	Bounds device.Box `json:"bounds"`
}

// BuildScene meshes every catalog part in file order.
func BuildScene(c *device.Catalog) (*Scene, error) {
	s := &Scene{
		Meshes: make([]*Mesh, 0, c.Len()),
		Bounds: device.CatalogBounds(c),
	}
	for _, p := range c.Parts() {
		m, err := BuildMesh(p)
		if err != nil {
			return nil, err
		}
		s.Meshes = append(s.Meshes, m)
	}
	return s, nil
}
