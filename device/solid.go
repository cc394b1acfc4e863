package device

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// hexFaces lists the six quadrilateral faces as corner indices: the two
// caps plus the four side walls joining them.
var hexFaces = [6][4]int{
	{0, 1, 2, 3},
	{3, 2, 6, 7},
	{7, 6, 5, 4},
	{4, 5, 1, 0},
	{1, 5, 6, 2},
	{4, 0, 3, 7},
}

// hexEdges lists the twelve wireframe edges: each cap's perimeter plus the
// four risers between index-matched corners.
var hexEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// coplanarTol bounds the enclosed volume, relative to the cube of the
// bounding box diagonal, below which corners are treated as coplanar.
const coplanarTol = 1e-9

// Face is one quadrilateral of a solid: four corner indices wound so that
// Normal points away from the interior. Normal is the zero vector for a
// face collapsed to zero area.
type Face struct {
	Corners [4]int
	Normal  r3.Vec
}

// Solid is the closed six-face form of a part, ready for triangulation.
// Corner positions stay in the part's micron coordinates.
type Solid struct {
	Vertices [PartVertexCount]r3.Vec
	Faces    [6]Face
	Volume   float64 // enclosed volume, cubic microns
	Bounds   Box
}

// BuildSolid assembles a closed solid over eight corners: two index-matched
// four-corner caps (0-3 and 4-7) joined by four side walls. Arbitrary convex
// hexahedra are accepted. Corner sets that enclose no volume, and cap
// pairings that twist a face into a bowtie, are rejected with
// *GeometryError.
func BuildSolid(vertices [PartVertexCount]r3.Vec) (*Solid, error) {
	s := &Solid{Vertices: vertices, Bounds: VertexBounds(vertices)}
	diag := r3.Norm(s.Bounds.Size())
	areaTol := 1e-12 * diag * diag

	var centroid r3.Vec
	for _, v := range vertices {
		centroid = r3.Add(centroid, v)
	}
	centroid = r3.Scale(1.0/PartVertexCount, centroid)

	volume := 0.0
	for fi, corners := range hexFaces {
		var quad [4]r3.Vec
		for i, ci := range corners {
			quad[i] = vertices[ci]
		}

		// A twisted quad splits into two triangles with opposing normals
		// along the shared 0-2 diagonal.
		n1 := r3.Cross(r3.Sub(quad[1], quad[0]), r3.Sub(quad[2], quad[0]))
		n2 := r3.Cross(r3.Sub(quad[2], quad[0]), r3.Sub(quad[3], quad[0]))
		if r3.Norm(n1) > areaTol && r3.Norm(n2) > areaTol && r3.Dot(n1, n2) < 0 {
			return nil, &GeometryError{
				Reason: fmt.Sprintf("face %d (corners %v) is twisted; corner order is inconsistent", fi, corners)}
		}

		// Newell's method: stable for the non-planar quads a skewed
		// hexahedron produces.
		var normal r3.Vec
		for i := 0; i < 4; i++ {
			a, b := quad[i], quad[(i+1)%4]
			normal.X += (a.Y - b.Y) * (a.Z + b.Z)
			normal.Y += (a.Z - b.Z) * (a.X + b.X)
			normal.Z += (a.X - b.X) * (a.Y + b.Y)
		}

		face := Face{Corners: corners}
		faceCenter := r3.Scale(0.25, r3.Add(r3.Add(quad[0], quad[1]), r3.Add(quad[2], quad[3])))
		if r3.Dot(normal, r3.Sub(faceCenter, centroid)) < 0 {
			face.Corners = [4]int{corners[3], corners[2], corners[1], corners[0]}
			normal = r3.Scale(-1, normal)
		}
		if n := r3.Norm(normal); n > areaTol {
			face.Normal = r3.Scale(1/n, normal)
		}
		s.Faces[fi] = face

		// Tetrahedra against the centroid accumulate the enclosed volume.
		for _, tri := range [2][3]int{{0, 1, 2}, {0, 2, 3}} {
			a := r3.Sub(vertices[face.Corners[tri[0]]], centroid)
			b := r3.Sub(vertices[face.Corners[tri[1]]], centroid)
			c := r3.Sub(vertices[face.Corners[tri[2]]], centroid)
			volume += r3.Dot(a, r3.Cross(b, c)) / 6
		}
	}
	s.Volume = volume

	if diag == 0 || volume <= coplanarTol*diag*diag*diag {
		return nil, &GeometryError{Reason: "corners are coplanar; the part encloses no volume"}
	}
	return s, nil
}

// Triangles returns the twelve outward-wound triangles covering the solid,
// two per face, as corner index triples.
func (s *Solid) Triangles() [12][3]int {
	var tris [12][3]int
	for i, f := range s.Faces {
		c := f.Corners
		tris[2*i] = [3]int{c[0], c[1], c[2]}
		tris[2*i+1] = [3]int{c[0], c[2], c[3]}
	}
	return tris
}

// Edges returns the twelve wireframe edges as corner index pairs.
func (s *Solid) Edges() [12][2]int {
	return hexEdges
}
