package cmd

import (
	"encoding/json"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mosviz/mosviz/device"
)

var surfaceOut string // Output path for the surface JSON; empty writes to stdout

// surfaceRecord is the serialized I-V lattice: Id[i][j] is the drain current
// at Gate[i], Drain[j].
type surfaceRecord struct {
	Gate  []float64   `json:"gate"`
	Drain []float64   `json:"drain"`
	Id    [][]float64 `json:"id"`
}

func newSurfaceRecord(s *device.Surface) surfaceRecord {
	rec := surfaceRecord{
		Gate:  s.Gate,
		Drain: s.Drain,
		Id:    make([][]float64, len(s.Points)),
	}
	for i, row := range s.Points {
		ids := make([]float64, len(row))
		for j, op := range row {
			ids[j] = op.DrainCurrent
		}
		rec.Id[i] = ids
	}
	return rec
}

// surfaceCmd samples the full Vgs x Vds lattice for a 3-D I-V sheet. The
// grid resolution comes from surface_steps in the session settings.
var surfaceCmd = &cobra.Command{
	Use:   "surface",
	Short: "Emit the I-V surface lattice as JSON",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := sessionSettings()
		_, derived := loadDerived(cfg)

		gate := device.Range{Start: cfg.GateSweep.Start, Stop: cfg.GateSweep.Stop, Steps: cfg.SurfaceSteps}
		drain := device.Range{Start: cfg.DrainSweep.Start, Stop: cfg.DrainSweep.Stop, Steps: cfg.SurfaceSteps}
		surface, err := device.SweepSurface(derived, gate, drain)
		if err != nil {
			logrus.Fatalf("Surface sweep failed: %v", err)
		}

		out := os.Stdout
		if surfaceOut != "" {
			f, err := os.Create(surfaceOut)
			if err != nil {
				logrus.Fatalf("Failed to create %s: %v", surfaceOut, err)
			}
			defer func() { _ = f.Close() }()
			out = f
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(newSurfaceRecord(surface)); err != nil {
			logrus.Fatalf("Failed to encode surface: %v", err)
		}
		if surfaceOut != "" {
			logrus.Infof("Wrote %dx%d surface to %s", len(surface.Gate), len(surface.Drain), surfaceOut)
		}
	},
}

func init() {
	surfaceCmd.Flags().StringVar(&surfaceOut, "out", "", "Output file for the surface JSON; empty writes to stdout")
	rootCmd.AddCommand(surfaceCmd)
}
