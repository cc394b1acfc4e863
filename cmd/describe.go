package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mosviz/mosviz/device"
)

// Display conversions for the parameter report.
const (
	faradPerM2ToNanoFPerCm2 = 1e5 // F/m^2 -> nF/cm^2
	m2PerVsToCm2PerVs       = 1e4 // m^2/(V*s) -> cm^2/(V*s)
)

// describeCmd prints the part list and the derived electrical parameters,
// the CLI counterpart of the visualizer's parameter dialog.
var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Show the device parts and derived electrical parameters",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := sessionSettings()
		catalog, derived := loadDerived(cfg)

		fmt.Printf("Device: %s (%d parts, %s)\n\n", cfg.Device, catalog.Len(), derived.Polarity)
		printParts(catalog)
		fmt.Println()
		printParameters(derived)
	},
}

// printParts writes one line per part with its doping and solid volume.
func printParts(catalog *device.Catalog) {
	fmt.Printf("%-12s %-7s %-14s %s\n", "PART", "DOPING", "CONCENTRATION", "VOLUME")
	for _, p := range catalog.Parts() {
		solid, err := p.Solid()
		if err != nil {
			logrus.Fatalf("Failed to build %s geometry: %v", p.Name, err)
		}
		conc := "-"
		if p.Doping.Type.IsSemiconductor() {
			conc = fmt.Sprintf("%.3g /cm3", p.Doping.Concentration)
		}
		fmt.Printf("%-12s %-7s %-14s %.3f um3\n", p.Name, p.Doping.Type, conc, solid.Volume)
	}
}

// printParameters reports the derived model parameters in the units the
// parameter dialog uses.
func printParameters(d *device.DerivedParameters) {
	fmt.Println("Derived parameters:")
	fmt.Printf("  %-22s %s\n", "channel length", formatEng(d.ChannelLength, "m"))
	fmt.Printf("  %-22s %s\n", "channel width", formatEng(d.ChannelWidth, "m"))
	fmt.Printf("  %-22s %s\n", "oxide thickness", formatEng(d.OxideThickness, "m"))
	fmt.Printf("  %-22s %.3f nF/cm2\n", "oxide capacitance", d.OxideCapacitance*faradPerM2ToNanoFPerCm2)
	fmt.Printf("  %-22s %.4f V\n", "Fermi potential", d.FermiPotential)
	fmt.Printf("  %-22s %.4f sqrt(V)\n", "body effect", d.BodyEffect)
	fmt.Printf("  %-22s %.4f V\n", "threshold voltage", d.Threshold)
	fmt.Printf("  %-22s %.4f V\n", "source junction", d.SourceJunction)
	fmt.Printf("  %-22s %.4f V\n", "drain junction", d.DrainJunction)
	fmt.Printf("  %-22s %s\n", "max depletion width", formatEng(d.MaxDepletionWidth, "m"))
	fmt.Printf("  %-22s %.1f cm2/Vs\n", "mobility", d.Mobility*m2PerVsToCm2PerVs)
	fmt.Printf("  %-22s %s\n", "k' (mu*Cox)", formatEng(d.KPrime, "A/V2"))
	fmt.Printf("  %-22s %s\n", "beta (k'*W/L)", formatEng(d.Beta, "A/V2"))
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
