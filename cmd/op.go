package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mosviz/mosviz/device"
)

var (
	opVgs    float64 // Gate-source bias in volts
	opVds    float64 // Drain-source bias in volts
	opAsJSON bool    // Emit the operating point as JSON instead of text
)

// pointRecord is the serializable form of an operating point, shared by the
// op and sweep outputs.
type pointRecord struct {
	Vgs       float64 `json:"vgs"`
	Vds       float64 `json:"vds"`
	Region    string  `json:"region"`
	Id        float64 `json:"id"`
	Gm        float64 `json:"gm"`
	Gds       float64 `json:"gds"`
	Overdrive float64 `json:"overdrive"`
}

func newPointRecord(op device.OperatingPoint) pointRecord {
	return pointRecord{
		Vgs:       op.Bias.Vgs,
		Vds:       op.Bias.Vds,
		Region:    op.Region.String(),
		Id:        op.DrainCurrent,
		Gm:        op.Transconductance,
		Gds:       op.OutputConductance,
		Overdrive: op.Overdrive,
	}
}

// opCmd evaluates the model at one bias pair.
var opCmd = &cobra.Command{
	Use:   "op",
	Short: "Evaluate a single operating point",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := sessionSettings()
		_, derived := loadDerived(cfg)

		point, err := device.Evaluate(derived, device.Bias{Vgs: opVgs, Vds: opVds})
		if err != nil {
			logrus.Fatalf("Bias rejected: %v", err)
		}
		if opAsJSON {
			data, err := json.MarshalIndent(newPointRecord(point), "", "  ")
			if err != nil {
				logrus.Fatalf("JSON marshal failed: %v", err)
			}
			fmt.Println(string(data))
			return
		}
		printOperatingPoint(point)
	},
}

// printOperatingPoint writes the human-readable report for one bias.
func printOperatingPoint(op device.OperatingPoint) {
	fmt.Printf("Operating point at Vgs=%.3f V, Vds=%.3f V:\n", op.Bias.Vgs, op.Bias.Vds)
	fmt.Printf("  %-16s %s\n", "region", op.Region)
	fmt.Printf("  %-16s %s\n", "drain current", formatEng(op.DrainCurrent, "A"))
	fmt.Printf("  %-16s %s\n", "gm", formatEng(op.Transconductance, "A/V"))
	fmt.Printf("  %-16s %s\n", "gds", formatEng(op.OutputConductance, "A/V"))
	fmt.Printf("  %-16s %.4f V\n", "overdrive", op.Overdrive)
	if op.DrainCurrent != 0 {
		fmt.Printf("  %-16s %.3f /V\n", "gm/Id", op.Transconductance/op.DrainCurrent)
	}
}

func init() {
	opCmd.Flags().Float64Var(&opVgs, "vgs", 0, "Gate-source voltage in volts")
	opCmd.Flags().Float64Var(&opVds, "vds", 0, "Drain-source voltage in volts")
	opCmd.Flags().BoolVar(&opAsJSON, "json", false, "Emit the operating point as JSON")
	_ = opCmd.MarkFlagRequired("vgs")
	_ = opCmd.MarkFlagRequired("vds")

	rootCmd.AddCommand(opCmd)
}
