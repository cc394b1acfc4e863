package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosviz/mosviz/device"
)

func sweepFixture() []device.OperatingPoint {
	return []device.OperatingPoint{
		{Bias: device.Bias{Vgs: 2, Vds: 0.0}, Region: device.Triode, DrainCurrent: 0},
		{Bias: device.Bias{Vgs: 2, Vds: 0.5}, Region: device.Triode, DrainCurrent: 8e-6},
		{Bias: device.Bias{Vgs: 2, Vds: 1.0}, Region: device.Saturation, DrainCurrent: 1.1e-5},
		{Bias: device.Bias{Vgs: 2, Vds: 1.5}, Region: device.Saturation, DrainCurrent: 1.1e-5},
		{Bias: device.Bias{Vgs: 2, Vds: 2.0}, Region: device.Saturation, DrainCurrent: 1.1e-5},
	}
}

func TestDrainCurve_MapsBiasToAxes(t *testing.T) {
	s := DrainCurve("Vgs=2.0V", sweepFixture())
	assert.Equal(t, "Vgs=2.0V", s.Label)
	assert.Equal(t, []float64{0, 0.5, 1, 1.5, 2}, s.X)
	assert.Equal(t, []float64{0, 8e-6, 1.1e-5, 1.1e-5, 1.1e-5}, s.Y)
}

func TestTransferCurve_MapsGateBias(t *testing.T) {
	ops := []device.OperatingPoint{
		{Bias: device.Bias{Vgs: 0, Vds: 3}, Region: device.Cutoff, DrainCurrent: 0},
		{Bias: device.Bias{Vgs: 2, Vds: 3}, Region: device.Saturation, DrainCurrent: 1.2e-5},
	}
	s := TransferCurve("Vds=3.0V", ops)
	assert.Equal(t, []float64{0, 2}, s.X)
	assert.Equal(t, []float64{0, 1.2e-5}, s.Y)
}

func TestRegionSegments_SharedBoundarySample(t *testing.T) {
	segments := RegionSegments(sweepFixture())
	require.Len(t, segments, 2)

	assert.Equal(t, device.Triode, segments[0].Region)
	assert.Equal(t, device.Saturation, segments[1].Region)

	// The triode run carries the first saturation sample so the drawn
	// curve stays connected.
	require.Len(t, segments[0].Ops, 3)
	require.Len(t, segments[1].Ops, 3)
	assert.Equal(t, segments[0].Ops[2], segments[1].Ops[0])
}

func TestRegionSegments_SingleRegion(t *testing.T) {
	ops := sweepFixture()[2:]
	segments := RegionSegments(ops)
	require.Len(t, segments, 1)
	assert.Equal(t, device.Saturation, segments[0].Region)
	assert.Len(t, segments[0].Ops, 3)
}

func TestRegionSegments_Empty(t *testing.T) {
	assert.Nil(t, RegionSegments(nil))
}

func TestPointSeries(t *testing.T) {
	op := device.OperatingPoint{Bias: device.Bias{Vgs: 2, Vds: 3}, DrainCurrent: 1.2e-5}

	d := DrainPoint("operating point", op)
	assert.Equal(t, []float64{3}, d.X)
	assert.Equal(t, []float64{1.2e-5}, d.Y)

	g := TransferPoint("operating point", op)
	assert.Equal(t, []float64{2}, g.X)
	assert.Equal(t, []float64{1.2e-5}, g.Y)
}
