package device

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/spatial/r3"
)

// Catalog is an immutable, validated part list. Build one with Load, Parse,
// or NewCatalog; hosts that reload a device construct a fresh Catalog and
// swap the pointer. Accessors return views into the catalog that callers
// must treat as read-only.
type Catalog struct {
	parts []Part
	index map[string]int
}

// catalogFile, partFile and dopingFile mirror the on-disk JSON device
// format: a device_parts array of named parts with color, eight corner
// positions in microns, and a doping tag.
type catalogFile struct {
	Parts []partFile `json:"device_parts"`
}

type partFile struct {
	Name     string      `json:"name"`
	Color    []float64   `json:"color"`
	Vertices [][]float64 `json:"vertices"`
	Doping   *dopingFile `json:"doping"`
}

type dopingFile struct {
	Type          string   `json:"type"`
	Concentration *float64 `json:"concentration,omitempty"`
}

// stripComments drops every line whose first non-blank character is '#'.
// The device format allows such comment lines anywhere around the JSON.
func stripComments(data []byte) []byte {
	var out bytes.Buffer
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t\r"), []byte("#")) {
			continue
		}
		out.Write(line)
		out.WriteByte('\n')
	}
	return out.Bytes()
}

// LoadFile reads and parses a JSON device description file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading device description: %w", err)
	}
	return Parse(data)
}

// Load reads and parses a JSON device description from r.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading device description: %w", err)
	}
	return Parse(data)
}

// Parse parses a JSON device description. Comment lines starting with '#'
// are stripped first. Descriptions that violate a catalog invariant are
// rejected with *ValidationError naming the part and field at fault.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := json.Unmarshal(stripComments(data), &file); err != nil {
		return nil, fmt.Errorf("parsing device description: %w", err)
	}
	if len(file.Parts) == 0 {
		return nil, &ValidationError{Field: "device_parts", Reason: "device description has no parts"}
	}
	parts := make([]Part, 0, len(file.Parts))
	for i, pf := range file.Parts {
		p, err := pf.toPart(i)
		if err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	return NewCatalog(parts)
}

// NewCatalog validates parts and assembles them into a catalog. Oxide
// concentrations are normalized to zero first, matching the loader's
// treatment of concentration values on insulating parts.
func NewCatalog(parts []Part) (*Catalog, error) {
	c := &Catalog{
		parts: make([]Part, len(parts)),
		index: make(map[string]int, len(parts)),
	}
	copy(c.parts, parts)
	for i := range c.parts {
		p := &c.parts[i]
		if p.Doping.Type == Oxide {
			p.Doping.Concentration = 0
		}
		if err := p.validate(); err != nil {
			return nil, err
		}
		if _, dup := c.index[p.Name]; dup {
			return nil, &ValidationError{Part: p.Name, Field: "name", Reason: "duplicate part name"}
		}
		c.index[p.Name] = i
	}
	return c, nil
}

// toPart converts one wire-format part, checking structural invariants.
func (pf *partFile) toPart(idx int) (Part, error) {
	if pf.Name == "" {
		return Part{}, &ValidationError{Field: "name",
			Reason: fmt.Sprintf("part %d has no name", idx)}
	}
	p := Part{Name: pf.Name}
	if len(pf.Color) != 3 {
		return Part{}, &ValidationError{Part: pf.Name, Field: "color",
			Reason: fmt.Sprintf("must have 3 components, got %d", len(pf.Color))}
	}
	copy(p.Color[:], pf.Color)
	if len(pf.Vertices) != PartVertexCount {
		return Part{}, &ValidationError{Part: pf.Name, Field: "vertices",
			Reason: fmt.Sprintf("must have %d corners, got %d", PartVertexCount, len(pf.Vertices))}
	}
	for i, v := range pf.Vertices {
		if len(v) != 3 {
			return Part{}, &ValidationError{Part: pf.Name, Field: "vertices",
				Reason: fmt.Sprintf("corner %d must have 3 coordinates, got %d", i, len(v))}
		}
		p.Vertices[i] = r3.Vec{X: v[0], Y: v[1], Z: v[2]}
	}
	if pf.Doping == nil {
		return Part{}, &ValidationError{Part: pf.Name, Field: "doping", Reason: "missing"}
	}
	t, ok := dopingTypesByName[pf.Doping.Type]
	if !ok {
		return Part{}, &ValidationError{Part: pf.Name, Field: "doping",
			Reason: fmt.Sprintf("unknown type %q; valid: n, p, oxide", pf.Doping.Type)}
	}
	p.Doping.Type = t
	if t.IsSemiconductor() {
		if pf.Doping.Concentration == nil {
			return Part{}, &ValidationError{Part: pf.Name, Field: "doping",
				Reason: "concentration required for doped parts"}
		}
		p.Doping.Concentration = *pf.Doping.Concentration
	}
	// Oxide concentration, if present in the file, is ignored.
	return p, nil
}

// Parts returns the catalog's parts in file order.
func (c *Catalog) Parts() []Part {
	return c.parts
}

// Part looks up a part by name.
func (c *Catalog) Part(name string) (*Part, bool) {
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return &c.parts[i], true
}

// Len returns the number of parts.
func (c *Catalog) Len() int {
	return len(c.parts)
}

// Encode writes the canonical JSON form of the catalog to w. Parsing the
// output reproduces the catalog exactly.
func (c *Catalog) Encode(w io.Writer) error {
	file := catalogFile{Parts: make([]partFile, 0, len(c.parts))}
	for i := range c.parts {
		p := &c.parts[i]
		pf := partFile{
			Name:     p.Name,
			Color:    append([]float64(nil), p.Color[:]...),
			Vertices: make([][]float64, 0, PartVertexCount),
			Doping:   &dopingFile{Type: p.Doping.Type.String()},
		}
		for _, v := range p.Vertices {
			pf.Vertices = append(pf.Vertices, []float64{v.X, v.Y, v.Z})
		}
		if p.Doping.Type.IsSemiconductor() {
			n := p.Doping.Concentration
			pf.Doping.Concentration = &n
		}
		file.Parts = append(file.Parts, pf)
	}
	data, err := json.MarshalIndent(&file, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding device description: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// Bytes returns the canonical JSON form of the catalog.
func (c *Catalog) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
