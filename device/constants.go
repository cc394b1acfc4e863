package device

// Constants groups the physical constants and material parameters the
// derivation depends on. Callers pass the table explicitly so alternate
// materials or temperatures stay testable; Silicon returns the reference
// table used by the stock device descriptions.
type Constants struct {
	Boltzmann          float64 // J/K
	ElectronCharge     float64 // C
	VacuumPermittivity float64 // F/m
	SiliconRelPerm     float64 // relative permittivity of the semiconductor bulk
	OxideRelPerm       float64 // relative permittivity of the gate dielectric
	IntrinsicDensity   float64 // intrinsic carrier concentration, cm^-3
	Temperature        float64 // lattice temperature, K
	NChannelMobility   float64 // channel mobility for n-channel devices, cm^2/(V*s)
	PChannelMobility   float64 // channel mobility for p-channel devices, cm^2/(V*s)
	FlatBandVoltage    float64 // gate flat-band voltage, V
}

// Silicon returns the constants table for a silicon/SiO2 device at 300 K
// with a degenerately doped poly gate.
func Silicon() Constants {
	return Constants{
		Boltzmann:          1.380649e-23,
		ElectronCharge:     1.602176634e-19,
		VacuumPermittivity: 8.854e-12,
		SiliconRelPerm:     11.68,
		OxideRelPerm:       3.9,
		IntrinsicDensity:   1.5e10,
		Temperature:        300,
		NChannelMobility:   400,
		PChannelMobility:   1200,
		FlatBandVoltage:    -0.9,
	}
}

// ThermalVoltage returns kT/q in volts.
func (c Constants) ThermalVoltage() float64 {
	return c.Boltzmann * c.Temperature / c.ElectronCharge
}
