package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mosviz/mosviz/device"
	"github.com/mosviz/mosviz/device/render"
)

var (
	plotOut   string    // Output PNG path
	plotGates []float64 // Gate biases for the curve family in volts
	plotVgs   float64   // Marker gate bias in volts
	plotVds   float64   // Marker drain bias in volts
)

// plotCmd draws the output-characteristic family the visualizer shows: one
// drain curve per gate bias, with an optional operating-point marker.
var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Draw an output-characteristic family plot",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := sessionSettings()
		_, derived := loadDerived(cfg)

		gates := plotGates
		if len(gates) == 0 {
			var err error
			gates, err = device.Range{Start: cfg.GateSweep.Start, Stop: cfg.GateSweep.Stop, Steps: 5}.Values()
			if err != nil {
				logrus.Fatalf("Failed to build gate family: %v", err)
			}
		}

		curves := make([]render.Series, 0, len(gates))
		for _, vgs := range gates {
			ops, err := device.SweepDrain(derived, vgs, cfg.DrainSweep.Range())
			if err != nil {
				logrus.Fatalf("Drain sweep at Vgs=%.2f V failed: %v", vgs, err)
			}
			curves = append(curves, render.DrainCurve(fmt.Sprintf("Vgs=%.2f V", vgs), ops))
		}

		if cmd.Flags().Changed("vgs") != cmd.Flags().Changed("vds") {
			logrus.Fatalf("A marker needs both --vgs and --vds")
		}
		var marker *render.Series
		if cmd.Flags().Changed("vgs") {
			point, err := device.Evaluate(derived, device.Bias{Vgs: plotVgs, Vds: plotVds})
			if err != nil {
				logrus.Fatalf("Marker bias rejected: %v", err)
			}
			m := render.DrainPoint(fmt.Sprintf("Vgs=%.2f V, Vds=%.2f V", plotVgs, plotVds), point)
			marker = &m
		}

		if err := render.SaveCurves(plotOut, "Output characteristics", "Vds (V)", curves, marker); err != nil {
			logrus.Fatalf("Failed to save plot: %v", err)
		}
		logrus.Infof("Wrote %s", plotOut)
	},
}

func init() {
	plotCmd.Flags().StringVar(&plotOut, "out", "iv.png", "Output PNG path")
	plotCmd.Flags().Float64SliceVar(&plotGates, "gates", nil, "Comma-separated gate biases for the curve family")
	plotCmd.Flags().Float64Var(&plotVgs, "vgs", 0, "Marker gate-source voltage in volts")
	plotCmd.Flags().Float64Var(&plotVds, "vds", 0, "Marker drain-source voltage in volts")

	rootCmd.AddCommand(plotCmd)
}
