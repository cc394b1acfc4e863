package cmd

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mosviz/mosviz/device"
)

// captureStdout runs fn with os.Stdout redirected and returns what it wrote.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = old
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestPrintOperatingPoint_SaturationReport(t *testing.T) {
	op := device.OperatingPoint{
		Bias:              device.Bias{Vgs: 2, Vds: 3},
		Region:            device.Saturation,
		DrainCurrent:      1.2128128724613916e-05,
		Transconductance:  2.3152822701019334e-05,
		OutputConductance: 0,
		Overdrive:         1.0476587568806425,
	}

	output := captureStdout(t, func() { printOperatingPoint(op) })

	assert.Contains(t, output, "Vgs=2.000 V, Vds=3.000 V")
	assert.Contains(t, output, "saturation")
	assert.Contains(t, output, "12.128 uA")
	assert.Contains(t, output, "23.153 uA/V")
	assert.Contains(t, output, "gm/Id")
}

func TestPrintOperatingPoint_CutoffOmitsEfficiency(t *testing.T) {
	op := device.OperatingPoint{
		Bias:      device.Bias{Vgs: 0.5, Vds: 1},
		Region:    device.Cutoff,
		Overdrive: -0.45,
	}

	output := captureStdout(t, func() { printOperatingPoint(op) })

	// THEN a zero-current point reports no gm/Id ratio
	assert.Contains(t, output, "cutoff")
	assert.Contains(t, output, "0.000 A")
	assert.NotContains(t, output, "gm/Id")
}
