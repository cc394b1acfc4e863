package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosviz/mosviz/device/internal/testutil"
)

// relTol bounds the acceptable relative drift against the golden dataset.
const relTol = 1e-9

func goldenDerived(t *testing.T) (*testutil.GoldenDevice, *DerivedParameters) {
	t.Helper()
	golden := testutil.LoadGoldenDevice(t)

	c, err := LoadFile(testutil.RepoPath(t, golden.Device))
	require.NoError(t, err, "failed to load %s", golden.Device)

	d, err := Derive(c, Silicon())
	require.NoError(t, err, "derivation failed")
	return golden, d
}

func TestGoldenDevice_DerivedParameters(t *testing.T) {
	golden, d := goldenDerived(t)
	want := golden.Derived

	assert.Equal(t, want.Polarity, d.Polarity.String())

	testutil.AssertFloat64Equal(t, "channel_length", want.ChannelLengthUm, d.ChannelLength/micronToMeter, relTol)
	testutil.AssertFloat64Equal(t, "channel_width", want.ChannelWidthUm, d.ChannelWidth/micronToMeter, relTol)
	testutil.AssertFloat64Equal(t, "oxide_thickness", want.OxideThicknessUm, d.OxideThickness/micronToMeter, relTol)
	testutil.AssertFloat64Equal(t, "oxide_capacitance", want.OxideCapacitance, d.OxideCapacitance, relTol)
	testutil.AssertFloat64Equal(t, "fermi_potential", want.FermiPotential, d.FermiPotential, relTol)
	testutil.AssertFloat64Equal(t, "body_effect", want.BodyEffect, d.BodyEffect, relTol)
	testutil.AssertFloat64Equal(t, "threshold", want.Threshold, d.Threshold, relTol)
	testutil.AssertFloat64Equal(t, "source_junction", want.SourceJunction, d.SourceJunction, relTol)
	testutil.AssertFloat64Equal(t, "drain_junction", want.DrainJunction, d.DrainJunction, relTol)
	testutil.AssertFloat64Equal(t, "max_depletion_width", want.MaxDepletionWidth, d.MaxDepletionWidth, relTol)
	testutil.AssertFloat64Equal(t, "kprime", want.KPrime, d.KPrime, relTol)
	testutil.AssertFloat64Equal(t, "beta", want.Beta, d.Beta, relTol)
}

func TestGoldenDevice_ThresholdWindow(t *testing.T) {
	_, d := goldenDerived(t)

	// The stock device must land in the canonical enhancement-mode window.
	assert.Greater(t, d.Threshold, 0.7)
	assert.Less(t, d.Threshold, 1.0)
}

func TestGoldenDevice_OperatingPoints(t *testing.T) {
	golden, d := goldenDerived(t)
	require.NotEmpty(t, golden.Points)

	for _, want := range golden.Points {
		op, err := Evaluate(d, Bias{Vgs: want.Vgs, Vds: want.Vds})
		require.NoError(t, err, "Vgs=%v Vds=%v", want.Vgs, want.Vds)

		assert.Equal(t, want.Region, op.Region.String(), "region at Vgs=%v Vds=%v", want.Vgs, want.Vds)
		testutil.AssertFloat64Equal(t, "drain_current", want.DrainCurrent, op.DrainCurrent, relTol)
		testutil.AssertFloat64Equal(t, "transconductance", want.Transconductance, op.Transconductance, relTol)
		testutil.AssertFloat64Equal(t, "output_conductance", want.OutputConductance, op.OutputConductance, relTol)
	}
}
