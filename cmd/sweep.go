package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mosviz/mosviz/device"
	"github.com/mosviz/mosviz/device/render"
)

var (
	sweepVar   string  // Swept bias: "vds" or "vgs"
	sweepFixed float64 // Held bias in volts
	sweepStart float64 // Sweep start in volts
	sweepStop  float64 // Sweep stop in volts
	sweepSteps int     // Number of sweep samples
	sweepOut   string  // Output path; extension picks CSV or JSON
	sweepPlot  string  // Optional PNG plot path
)

// sweepCmd tabulates the model along one bias axis.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep one bias and tabulate the operating points",
	Long:  "Sweep Vds at fixed Vgs (--var vds) or Vgs at fixed Vds (--var vgs). Points go to --out as CSV or JSON by extension; without --out, CSV is written to stdout for piping.",
	Run: func(cmd *cobra.Command, args []string) {
		if sweepVar != "vds" && sweepVar != "vgs" {
			logrus.Fatalf("Unknown sweep variable %q (want vds or vgs)", sweepVar)
		}
		cfg := sessionSettings()
		_, derived := loadDerived(cfg)

		// Session windows are the defaults; explicit flags win.
		window := cfg.DrainSweep
		if sweepVar == "vgs" {
			window = cfg.GateSweep
		}
		if cmd.Flags().Changed("start") {
			window.Start = sweepStart
		}
		if cmd.Flags().Changed("stop") {
			window.Stop = sweepStop
		}
		if cmd.Flags().Changed("steps") {
			window.Steps = sweepSteps
		}

		var (
			ops []device.OperatingPoint
			err error
		)
		if sweepVar == "vds" {
			ops, err = device.SweepDrain(derived, sweepFixed, window.Range())
		} else {
			ops, err = device.SweepGate(derived, sweepFixed, window.Range())
		}
		if err != nil {
			logrus.Fatalf("Sweep failed: %v", err)
		}

		if err := writeSweep(ops, sweepOut); err != nil {
			logrus.Fatalf("Failed to write sweep output: %v", err)
		}
		if sweepPlot != "" {
			if err := plotSweep(ops, sweepVar, sweepFixed, sweepPlot); err != nil {
				logrus.Fatalf("Failed to plot sweep: %v", err)
			}
			logrus.Infof("Wrote plot to %s", sweepPlot)
		}
	},
}

// writeSweep routes the points to CSV or JSON by the output extension. An
// empty path writes CSV to stdout.
func writeSweep(ops []device.OperatingPoint, path string) error {
	if path == "" {
		return writePointsCSV(os.Stdout, ops)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return writePointsCSV(f, ops)
	case ".json":
		return writePointsJSON(f, ops)
	default:
		return fmt.Errorf("unknown output extension %q (want .csv or .json)", filepath.Ext(path))
	}
}

// writePointsCSV writes a header row and one row per operating point.
func writePointsCSV(w io.Writer, ops []device.OperatingPoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"vgs", "vds", "region", "id", "gm", "gds", "overdrive"}); err != nil {
		return err
	}
	for _, op := range ops {
		rec := newPointRecord(op)
		row := []string{
			formatFloat(rec.Vgs),
			formatFloat(rec.Vds),
			rec.Region,
			formatFloat(rec.Id),
			formatFloat(rec.Gm),
			formatFloat(rec.Gds),
			formatFloat(rec.Overdrive),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// writePointsJSON writes the points as an indented JSON array.
func writePointsJSON(w io.Writer, ops []device.OperatingPoint) error {
	records := make([]pointRecord, len(ops))
	for i, op := range ops {
		records[i] = newPointRecord(op)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// plotSweep draws the swept curve split into one series per operating
// region, so the triode and saturation stretches are visually distinct.
func plotSweep(ops []device.OperatingPoint, variable string, fixed float64, path string) error {
	segments := render.RegionSegments(ops)
	curves := make([]render.Series, 0, len(segments))
	for _, seg := range segments {
		if variable == "vgs" {
			curves = append(curves, render.TransferCurve(seg.Region.String(), seg.Ops))
		} else {
			curves = append(curves, render.DrainCurve(seg.Region.String(), seg.Ops))
		}
	}
	title := fmt.Sprintf("Output characteristic, Vgs=%.2f V", fixed)
	xLabel := "Vds (V)"
	if variable == "vgs" {
		title = fmt.Sprintf("Transfer characteristic, Vds=%.2f V", fixed)
		xLabel = "Vgs (V)"
	}
	return render.SaveCurves(path, title, xLabel, curves, nil)
}

func init() {
	sweepCmd.Flags().StringVar(&sweepVar, "var", "vds", "Swept bias (vds or vgs)")
	sweepCmd.Flags().Float64Var(&sweepFixed, "fixed", 0, "Held bias in volts (Vgs for --var vds, Vds for --var vgs)")
	sweepCmd.Flags().Float64Var(&sweepStart, "start", 0, "Sweep start in volts (defaults to the session window)")
	sweepCmd.Flags().Float64Var(&sweepStop, "stop", 0, "Sweep stop in volts (defaults to the session window)")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 0, "Number of samples (defaults to the session window)")
	sweepCmd.Flags().StringVar(&sweepOut, "out", "", "Output file (.csv or .json); empty writes CSV to stdout")
	sweepCmd.Flags().StringVar(&sweepPlot, "plot", "", "Optional PNG path for the swept curve")
	_ = sweepCmd.MarkFlagRequired("fixed")

	rootCmd.AddCommand(sweepCmd)
}
