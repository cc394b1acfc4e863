package device

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Role names a complete MOSFET catalog must provide. Derive matches parts to
// roles by name.
const (
	RoleSource    = "Source"
	RoleDrain     = "Drain"
	RoleGate      = "Gate"
	RoleBody      = "Body"
	RoleGateOxide = "GateOxide"
)

// Conversions from catalog units to SI.
const (
	micronToMeter = 1e-6
	perCm3ToPerM3 = 1e6
	cm2ToM2       = 1e-4
)

// Polarity identifies the channel type, fixed by the body doping: a p-type
// body conducts through an n-channel and vice versa.
type Polarity int

const (
	NChannel Polarity = iota
	PChannel
)

func (p Polarity) String() string {
	if p == PChannel {
		return "p-channel"
	}
	return "n-channel"
}

// DerivedParameters holds everything the electrical model needs, computed
// once per catalog. All values are SI; threshold and Fermi potential carry
// the sign conventions noted on the fields. The struct is immutable after
// Derive returns.
type DerivedParameters struct {
	Polarity Polarity

	// Channel geometry extracted from the part layout.
	ChannelLength  float64 // m
	ChannelWidth   float64 // m
	OxideThickness float64 // m

	OxideCapacitance  float64 // F/m^2
	FermiPotential    float64 // body Fermi potential, V; negative for n-type bodies
	BodyEffect        float64 // gamma, sqrt(V)
	Threshold         float64 // V; negative for p-channel devices
	SourceJunction    float64 // body-source built-in potential, V
	DrainJunction     float64 // body-drain built-in potential, V
	MaxDepletionWidth float64 // m
	Mobility          float64 // channel mobility, m^2/(V*s)
	KPrime            float64 // process transconductance mu*Cox, A/V^2
	Beta              float64 // device transconductance KPrime*W/L, A/V^2

	Constants Constants
}

// rolePart finds the named role part and checks that its doping class can
// serve the role. A missing or misclassed part counts as an incomplete
// device.
func rolePart(c *Catalog, role string, wantOxide bool) (*Part, error) {
	p, ok := c.Part(role)
	if !ok || p.Doping.Type.IsSemiconductor() == wantOxide {
		return nil, &IncompleteDeviceError{Role: role}
	}
	return p, nil
}

// Derive extracts the channel geometry from the catalog's role parts and
// computes the electrical parameters of the square-law model under the
// given constants table.
func Derive(c *Catalog, k Constants) (*DerivedParameters, error) {
	source, err := rolePart(c, RoleSource, false)
	if err != nil {
		return nil, err
	}
	drain, err := rolePart(c, RoleDrain, false)
	if err != nil {
		return nil, err
	}
	gate, err := rolePart(c, RoleGate, false)
	if err != nil {
		return nil, err
	}
	body, err := rolePart(c, RoleBody, false)
	if err != nil {
		return nil, err
	}
	oxide, err := rolePart(c, RoleGateOxide, true)
	if err != nil {
		return nil, err
	}

	if source.Doping.Type != drain.Doping.Type {
		return nil, &ValidationError{Part: RoleDrain, Field: "doping",
			Reason: fmt.Sprintf("source is %s but drain is %s; the junctions must match", source.Doping.Type, drain.Doping.Type)}
	}
	if body.Doping.Type != source.Doping.Type.Opposite() {
		return nil, &ValidationError{Part: RoleBody, Field: "doping",
			Reason: fmt.Sprintf("body must be %s under %s source/drain junctions", source.Doping.Type.Opposite(), source.Doping.Type)}
	}

	d := &DerivedParameters{Constants: k, Polarity: NChannel}
	if body.Doping.Type == NType {
		d.Polarity = PChannel
	}

	// Conduction axis: the axis along which source and drain sit apart.
	sep := r3.Sub(drain.Centroid(), source.Centroid())
	conduction := 0
	for axis := 1; axis < 3; axis++ {
		if math.Abs(component(sep, axis)) > math.Abs(component(sep, conduction)) {
			conduction = axis
		}
	}
	if component(sep, conduction) == 0 {
		return nil, &GeometryError{Reason: "source and drain centroids coincide; no conduction axis"}
	}

	// Oxide normal: the gate oxide is a thin slab whose thinnest axis points
	// from channel to gate. The remaining axis carries the channel width.
	oxideBox := oxide.Bounds()
	normal := oxideBox.ThinnestAxis()
	if normal == conduction {
		return nil, &GeometryError{Part: RoleGateOxide,
			Reason: fmt.Sprintf("oxide slab is thinnest along the %s conduction axis", axisNames[conduction])}
	}
	widthAxis := 3 - conduction - normal

	tox := oxideBox.Extent(normal)
	if tox <= 0 {
		return nil, &GeometryError{Part: RoleGateOxide, Reason: "oxide slab has zero thickness"}
	}

	// The channel is the stretch of gate not overhanging the source or
	// drain diffusions.
	gateBox := gate.Bounds()
	length := gateBox.Extent(conduction) -
		gateBox.Overlap(source.Bounds(), conduction) -
		gateBox.Overlap(drain.Bounds(), conduction)
	if length <= 0 {
		return nil, &GeometryError{Part: RoleGate,
			Reason: fmt.Sprintf("no channel remains between the source and drain overlaps along %s", axisNames[conduction])}
	}
	width := gateBox.Extent(widthAxis)
	if width <= 0 {
		return nil, &GeometryError{Part: RoleGate,
			Reason: fmt.Sprintf("gate has zero extent along %s", axisNames[widthAxis])}
	}

	d.ChannelLength = length * micronToMeter
	d.ChannelWidth = width * micronToMeter
	d.OxideThickness = tox * micronToMeter

	vt := k.ThermalVoltage()
	ni := k.IntrinsicDensity
	bodySI := body.Doping.Concentration * perCm3ToPerM3

	d.OxideCapacitance = k.OxideRelPerm * k.VacuumPermittivity / d.OxideThickness

	// Fermi potential: positive for p-type bodies, negative for n-type.
	phi := vt * math.Log(body.Doping.Concentration/ni)
	if body.Doping.Type == NType {
		phi = -phi
	}
	d.FermiPotential = phi
	phiAbs := math.Abs(phi)

	d.BodyEffect = math.Sqrt(2*k.ElectronCharge*k.SiliconRelPerm*k.VacuumPermittivity*bodySI) / d.OxideCapacitance

	// Threshold magnitude: flat-band voltage, surface inversion at twice the
	// Fermi potential, plus the depletion charge term. P-channel devices
	// mirror the sign.
	vth := k.FlatBandVoltage + 2*phiAbs + d.BodyEffect*math.Sqrt(2*phiAbs)
	if d.Polarity == PChannel {
		vth = -vth
	}
	d.Threshold = vth

	d.SourceJunction = vt * math.Log(body.Doping.Concentration*source.Doping.Concentration/(ni*ni))
	d.DrainJunction = vt * math.Log(body.Doping.Concentration*drain.Doping.Concentration/(ni*ni))

	d.MaxDepletionWidth = math.Sqrt(4 * k.SiliconRelPerm * k.VacuumPermittivity * phiAbs / (k.ElectronCharge * bodySI))

	mobility := k.NChannelMobility
	if d.Polarity == PChannel {
		mobility = k.PChannelMobility
	}
	d.Mobility = mobility * cm2ToM2
	d.KPrime = d.Mobility * d.OxideCapacitance
	d.Beta = d.KPrime * d.ChannelWidth / d.ChannelLength

	return d, nil
}
