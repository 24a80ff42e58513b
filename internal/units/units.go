// Package units provides shared constants and conversions for the
// irradiance and coefficient units used by the optical data products.
package units

// Unit name constants, as published with the data products.
const (
	InverseMeters     = "m-1"
	UmolPhotonsM2S    = "umol photons m-2 s-1"
	MicrowattsCm2Nm   = "uW cm-2 nm-1"
	DegreesCelsius    = "degC"
	PracticalSalinity = "psu"
)

// QuantaPerCm2SecPerUmol converts scale factors expressed in
// V/(quanta cm^-2 s^-1) to V/(umol photons m^-2 s^-1):
// 1 umol photons m^-2 s^-1 = 6.02e13 quanta cm^-2 s^-1.
const QuantaPerCm2SecPerUmol = 6.02e13

// MillivoltsPerVolt converts sensor outputs reported in millivolts.
const MillivoltsPerVolt = 1000.0

// VoltsFromMillivolts converts a reading in millivolts to volts.
func VoltsFromMillivolts(mv float64) float64 {
	return mv / MillivoltsPerVolt
}
