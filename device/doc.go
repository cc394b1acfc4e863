// Package device implements the MOSFET device model engine: a declarative
// part catalog, solid geometry construction, semiconductor parameter
// derivation, and the analytic square-law electrical model.
//
// # Reading Guide
//
// Start with these three files to understand the pipeline:
//   - catalog.go: loading and validating the part description (JSON with # comments)
//   - derive.go: extracting channel geometry and computing DerivedParameters
//   - model.go: the piecewise cutoff/triode/saturation current equations
//
// # Architecture
//
// The package is a pure computational core. Load builds an immutable Catalog,
// Derive turns it into immutable DerivedParameters, and Evaluate maps a Bias
// to an OperatingPoint with no hidden state. Sweeps (sweep.go) are plain
// loops over Evaluate. Hosts that reload a device build a fresh
// Catalog/DerivedParameters pair and swap pointers; nothing here locks.
//
// Geometry lives alongside the model: solid.go assembles closed six-face
// solids from eight-corner part descriptions, bounds.go provides the
// axis-aligned boxes used for channel extraction and camera framing.
// Renderer-facing buffers and plot series live in the render sub-package.
//
// All catalog inputs are microns and atoms/cm^3; DerivedParameters and every
// electrical quantity are SI.
package device
