package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosviz/mosviz/device"
)

// writeSession drops YAML content into a temp file and returns its path.
func writeSession(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultSessionConfig_SliderWindows(t *testing.T) {
	cfg := DefaultSessionConfig()

	assert.Equal(t, SweepWindow{Start: 0, Stop: 6, Steps: 100}, cfg.GateSweep)
	assert.Equal(t, SweepWindow{Start: 0, Stop: 4, Steps: 100}, cfg.DrainSweep)
	assert.Equal(t, 25, cfg.SurfaceSteps)
	assert.NoError(t, cfg.Validate())
}

func TestLoadSessionConfig_FullFile(t *testing.T) {
	path := writeSession(t, `
device: dev.json
gate_sweep:
  start: 0.5
  stop: 5.5
  steps: 61
drain_sweep:
  start: 0.0
  stop: 3.0
  steps: 41
surface_steps: 12
`)

	cfg, err := LoadSessionConfig(path)
	require.NoError(t, err)

	// THEN the relative device path resolves against the session file dir
	assert.Equal(t, filepath.Join(filepath.Dir(path), "dev.json"), cfg.Device)
	assert.Equal(t, SweepWindow{Start: 0.5, Stop: 5.5, Steps: 61}, cfg.GateSweep)
	assert.Equal(t, SweepWindow{Start: 0, Stop: 3, Steps: 41}, cfg.DrainSweep)
	assert.Equal(t, 12, cfg.SurfaceSteps)
}

func TestLoadSessionConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeSession(t, "device: mydev.json\n")

	cfg, err := LoadSessionConfig(path)
	require.NoError(t, err)

	defaults := DefaultSessionConfig()
	assert.Equal(t, defaults.GateSweep, cfg.GateSweep)
	assert.Equal(t, defaults.DrainSweep, cfg.DrainSweep)
	assert.Equal(t, defaults.SurfaceSteps, cfg.SurfaceSteps)
	assert.True(t, strings.HasSuffix(cfg.Device, "mydev.json"))
}

func TestLoadSessionConfig_UnknownKeyRejected(t *testing.T) {
	path := writeSession(t, "device: dev.json\nsurface_stepz: 3\n")

	_, err := LoadSessionConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "surface_stepz")
}

func TestLoadSessionConfig_EmptyFileUsesDefaults(t *testing.T) {
	path := writeSession(t, "")

	cfg, err := LoadSessionConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultSessionConfig(), cfg)
}

func TestLoadSessionConfig_AbsoluteDevicePathKept(t *testing.T) {
	path := writeSession(t, "device: /etc/devices/nmos.json\n")

	cfg, err := LoadSessionConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/etc/devices/nmos.json", cfg.Device)
}

func TestLoadSessionConfig_MissingFile(t *testing.T) {
	_, err := LoadSessionConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading session settings")
}

func TestSessionConfigValidate_RejectsDegenerateWindows(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SessionConfig)
		wantMsg string
	}{
		{"gate steps", func(c *SessionConfig) { c.GateSweep.Steps = 1 }, "gate_sweep"},
		{"drain steps", func(c *SessionConfig) { c.DrainSweep.Steps = 0 }, "drain_sweep"},
		{"surface steps", func(c *SessionConfig) { c.SurfaceSteps = 1 }, "surface_steps"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSessionConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestSweepWindowRange_Conversion(t *testing.T) {
	w := SweepWindow{Start: 1, Stop: 2, Steps: 5}
	assert.Equal(t, device.Range{Start: 1, Stop: 2, Steps: 5}, w.Range())
}

func TestLoadSessionConfig_StockExample(t *testing.T) {
	// GIVEN the session file shipped in examples/
	cfg, err := LoadSessionConfig(filepath.Join("..", "examples", "session.yaml"))
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(cfg.Device, filepath.Join("examples", "device.json")))
	assert.Equal(t, SweepWindow{Start: 0, Stop: 6, Steps: 100}, cfg.GateSweep)
	assert.Equal(t, SweepWindow{Start: 0, Stop: 4, Steps: 100}, cfg.DrainSweep)
	assert.Equal(t, 25, cfg.SurfaceSteps)
	assert.NoError(t, cfg.Validate())
}

func TestSessionSettings_DeviceFlagOverridesFile(t *testing.T) {
	oldDevice, oldSession := devicePath, sessionPath
	defer func() { devicePath, sessionPath = oldDevice, oldSession }()

	sessionPath = writeSession(t, "device: from-file.json\n")
	devicePath = "/explicit/override.json"

	cfg := sessionSettings()
	assert.Equal(t, "/explicit/override.json", cfg.Device)
}
