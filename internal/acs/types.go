// Package acs converts raw counts from the WET Labs ac-s dual-channel
// spectrophotometer into calibrated absorption and beam-attenuation
// coefficients. The processing chain per packet is: internal-temperature
// estimation, optical-density calculation with temperature-bin
// interpolation, temperature/salinity correction, and (absorption channel
// only) scattering correction against the co-measured attenuation channel.
package acs

// Channel identifies which of the two ac-s measurement channels a value
// belongs to.
type Channel string

// Channel constants. The ac-s measures beam attenuation ('c') and optical
// absorption ('a') on separate flow tubes.
const (
	ChannelAttenuation Channel = "c"
	ChannelAbsorption  Channel = "a"
)

// Instrument constants from the ac-s hardware.
const (
	// PathLengthMeters is the optical pathlength of the flow tubes.
	PathLengthMeters = 0.25

	// countsFullScale and voltsFullScale describe the 16-bit thermistor
	// digitizer.
	countsFullScale = 65535.0
	voltsFullScale  = 5.0

	// thermistorBiasVolts and thermistorDividerOhms are the fixed values of
	// the internal thermistor's voltage divider.
	thermistorBiasVolts   = 4.516
	thermistorDividerOhms = 10000.0

	// kelvinOffset converts between Celsius and Kelvin.
	kelvinOffset = 273.15
)

// Scattering-correction defaults. Both are empirically chosen; deployments
// can override them on the Processor but the defaults must be preserved for
// compatibility with previously published data products.
const (
	// DefaultRefWavelength is the wavelength [nm] where absorption is
	// assumed to be pure scattering leakage.
	DefaultRefWavelength = 715.0

	// DefaultMinLeakage is the minimum attenuation-minus-absorption signal
	// [m^-1] at the reference wavelength below which the scattering
	// correction is suppressed.
	DefaultMinLeakage = 0.02
)

// ChannelCal holds the per-channel static calibration from the ac-s device
// file: the wavelength grid, the pure-water offsets, and the internal
// temperature correction table (rows follow Wavelengths, columns follow the
// device file's temperature bins).
type ChannelCal struct {
	Wavelengths     []float64   `json:"wavelengths"`
	Offsets         []float64   `json:"offsets"`
	TempCorrections [][]float64 `json:"temp_corrections"`
}

// DeviceFile is the static per-instrument calibration shipped by the
// manufacturer. It is immutable for the lifetime of a processing run.
type DeviceFile struct {
	Serial string `json:"serial,omitempty"`

	// TCal is the factory calibration reference (pure water) temperature [degC].
	TCal float64 `json:"tcal"`

	// TBins is the ascending grid of internal temperatures [degC] at which
	// the instrument was characterised.
	TBins []float64 `json:"tbins"`

	Attenuation ChannelCal `json:"attenuation"`
	Absorption  ChannelCal `json:"absorption"`
}

// Packet is one time-indexed ac-s observation plus the co-located CTD
// readings needed to correct it. Packets are processed independently.
type Packet struct {
	// RawTemp is the raw internal thermistor reading [counts].
	RawTemp float64 `json:"raw_temp"`

	// Temperature is the in-situ water temperature from the co-located CTD [degC].
	Temperature float64 `json:"temperature"`

	// Salinity is the in-situ practical salinity from the co-located CTD.
	Salinity float64 `json:"salinity"`

	// CRef/CSig are the attenuation-channel raw reference and signal light
	// measurements [counts], one value per wavelength.
	CRef []float64 `json:"cref"`
	CSig []float64 `json:"csig"`

	// ARef/ASig are the absorption-channel raw reference and signal light
	// measurements [counts], one value per wavelength.
	ARef []float64 `json:"aref"`
	ASig []float64 `json:"asig"`
}

// Result holds the fully corrected coefficients [m^-1] for one packet, one
// value per wavelength of the respective channel grid.
type Result struct {
	// Attenuation is the temperature/salinity corrected beam attenuation.
	Attenuation []float64 `json:"attenuation"`

	// Absorption is the temperature/salinity and scattering corrected
	// optical absorption.
	Absorption []float64 `json:"absorption"`
}
