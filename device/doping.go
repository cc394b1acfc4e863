package device

// DopingType classifies a part's material: donor-doped semiconductor,
// acceptor-doped semiconductor, or insulating oxide.
type DopingType int

const (
	NType DopingType = iota
	PType
	Oxide
)

// dopingNames maps types to their wire-format names. The reverse map is the
// registry of valid names accepted by the catalog loader.
var dopingNames = map[DopingType]string{
	NType: "n",
	PType: "p",
	Oxide: "oxide",
}

var dopingTypesByName = map[string]DopingType{
	"n":     NType,
	"p":     PType,
	"oxide": Oxide,
}

func (t DopingType) String() string {
	if name, ok := dopingNames[t]; ok {
		return name
	}
	return "unknown"
}

// IsSemiconductor reports whether the material carries dopant-controlled free
// carriers. Oxide parts are insulators and carry no concentration.
func (t DopingType) IsSemiconductor() bool {
	return t == NType || t == PType
}

// Opposite returns the complementary semiconductor type. Calling it on Oxide
// returns Oxide.
func (t DopingType) Opposite() DopingType {
	switch t {
	case NType:
		return PType
	case PType:
		return NType
	default:
		return t
	}
}

// Doping describes a part's material. Concentration is dopant atoms per
// cm^3, strictly positive for semiconductor types and zero for oxide.
type Doping struct {
	Type          DopingType
	Concentration float64
}
