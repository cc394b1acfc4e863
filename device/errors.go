package device

import "fmt"

// ValidationError reports a device description that violates a catalog
// invariant. Part is empty when the catalog itself, rather than a single
// part, is at fault.
type ValidationError struct {
	Part   string // offending part name
	Field  string // offending field ("name", "color", "doping", ...)
	Reason string // violated invariant
}

func (e *ValidationError) Error() string {
	if e.Part == "" {
		return fmt.Sprintf("invalid device description: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid part %q: %s: %s", e.Part, e.Field, e.Reason)
}

// GeometryError reports vertices that do not form a usable solid, or role
// parts arranged so that no channel can be extracted. Part is empty when the
// failure is not attributable to a single part.
type GeometryError struct {
	Part   string
	Reason string
}

func (e *GeometryError) Error() string {
	if e.Part == "" {
		return fmt.Sprintf("degenerate geometry: %s", e.Reason)
	}
	return fmt.Sprintf("degenerate geometry in part %q: %s", e.Part, e.Reason)
}

// IncompleteDeviceError reports a catalog that lacks a usable part for one of
// the roles a MOSFET needs (Source, Drain, Gate, Body, GateOxide). A part
// whose doping class cannot serve its role (an insulating Body, a doped
// GateOxide) counts as missing.
type IncompleteDeviceError struct {
	Role string
}

func (e *IncompleteDeviceError) Error() string {
	return fmt.Sprintf("incomplete device: no usable %s part", e.Role)
}

// InvalidBiasError reports a non-finite bias input.
type InvalidBiasError struct {
	Input string // which input ("Vgs", "Vds")
	Value float64
}

func (e *InvalidBiasError) Error() string {
	return fmt.Sprintf("invalid bias: %s must be finite, got %v", e.Input, e.Value)
}
