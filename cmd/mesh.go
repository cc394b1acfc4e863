package cmd

import (
	"encoding/json"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mosviz/mosviz/device/render"
)

var meshOut string // Output path for the scene JSON; empty writes to stdout

// meshCmd serializes the triangle and edge buffers for an external renderer.
// Only the geometry needs to be valid; derivation is not run.
var meshCmd = &cobra.Command{
	Use:   "mesh",
	Short: "Emit the device scene buffers as JSON",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := sessionSettings()
		catalog := loadCatalog(cfg)

		scene, err := render.BuildScene(catalog)
		if err != nil {
			logrus.Fatalf("Failed to build scene: %v", err)
		}

		out := os.Stdout
		if meshOut != "" {
			f, err := os.Create(meshOut)
			if err != nil {
				logrus.Fatalf("Failed to create %s: %v", meshOut, err)
			}
			defer func() { _ = f.Close() }()
			out = f
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(scene); err != nil {
			logrus.Fatalf("Failed to encode scene: %v", err)
		}
		if meshOut != "" {
			logrus.Infof("Wrote %d meshes to %s", len(scene.Meshes), meshOut)
		}
	},
}

func init() {
	meshCmd.Flags().StringVar(&meshOut, "out", "", "Output file for the scene JSON; empty writes to stdout")
	rootCmd.AddCommand(meshCmd)
}
