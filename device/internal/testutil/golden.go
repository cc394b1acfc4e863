// Package testutil provides shared test infrastructure for the device model
// packages. It consolidates the golden reference-device dataset and float
// assertion helpers used across device/ and device/render/ test packages.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDevice represents the structure of testdata/goldendevice.json: the
// reference device description path, its expected derived parameters, and a
// set of pinned operating points.
type GoldenDevice struct {
	Device  string        `json:"device"`
	Derived GoldenDerived `json:"derived"`
	Points  []GoldenPoint `json:"operating_points"`
}

// GoldenDerived pins the derived parameters of the reference device.
// Geometry is recorded in catalog units (microns), the electrical values
// in SI.
type GoldenDerived struct {
	Polarity          string  `json:"polarity"`
	ChannelLengthUm   float64 `json:"channel_length_um"`
	ChannelWidthUm    float64 `json:"channel_width_um"`
	OxideThicknessUm  float64 `json:"oxide_thickness_um"`
	OxideCapacitance  float64 `json:"oxide_capacitance_f_per_m2"`
	FermiPotential    float64 `json:"fermi_potential_v"`
	BodyEffect        float64 `json:"body_effect_sqrt_v"`
	Threshold         float64 `json:"threshold_v"`
	SourceJunction    float64 `json:"source_junction_v"`
	DrainJunction     float64 `json:"drain_junction_v"`
	MaxDepletionWidth float64 `json:"max_depletion_width_m"`
	KPrime            float64 `json:"kprime_a_per_v2"`
	Beta              float64 `json:"beta_a_per_v2"`
}

// GoldenPoint pins the model output at one bias.
type GoldenPoint struct {
	Vgs               float64 `json:"vgs"`
	Vds               float64 `json:"vds"`
	Region            string  `json:"region"`
	DrainCurrent      float64 `json:"drain_current_a"`
	Transconductance  float64 `json:"transconductance_s"`
	OutputConductance float64 `json:"output_conductance_s"`
}

// RepoPath resolves path elements against the repository root. The root is
// located relative to this source file: device/internal/testutil/ -> root.
func RepoPath(t *testing.T, elems ...string) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	root := filepath.Join(filepath.Dir(thisFile), "..", "..", "..")
	return filepath.Join(append([]string{root}, elems...)...)
}

// LoadGoldenDevice loads the golden dataset from the testdata directory.
func LoadGoldenDevice(t *testing.T) *GoldenDevice {
	t.Helper()

	data, err := os.ReadFile(RepoPath(t, "testdata", "goldendevice.json"))
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}
	var golden GoldenDevice
	if err := json.Unmarshal(data, &golden); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	return &golden
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
