package acs

import "math"

// Steinhart-Hart style coefficients for the internal thermistor, from the
// instrument data sheet.
const (
	thermistorA = 0.00093135
	thermistorB = 0.000221631
	thermistorC = 0.000000125741
)

// InternalTemp converts a raw internal thermistor reading [counts] to the
// instrument's internal temperature [degC]. Pure function of the input; not
// guarded against counts that drive the divider resistance non-positive.
func InternalTemp(rawCounts float64) float64 {
	volts := voltsFullScale * rawCounts / countsFullScale
	res := thermistorDividerOhms * volts / (thermistorBiasVolts - volts)

	logRes := math.Log(res)
	kelvin := 1.0 / (thermistorA + thermistorB*logRes + thermistorC*logRes*logRes*logRes)
	return kelvin - kelvinOffset
}
