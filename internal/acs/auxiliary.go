package acs

// Conversions for the auxiliary sensors some ac-s units carry. Neither
// feeds the channel pipelines; they are published alongside the optical
// data products.

// Coefficients for the auxiliary external temperature sensor's cubic
// count-to-degC polynomial, from the instrument data sheet.
const (
	externalTempA = -7.1023317e-13
	externalTempB = 7.09341920e-08
	externalTempC = -3.87065673e-03
	externalTempD = 95.8241397
)

// Pressure converts a raw auxiliary pressure reading [counts] to depth [m]
// using the offset [m] and scale factor [m/count] from the device file.
func Pressure(rawCounts, offset, scaleFactor float64) float64 {
	return rawCounts*scaleFactor + offset
}

// ExternalTemp converts a raw auxiliary temperature reading [counts] to the
// external environment temperature [degC].
func ExternalTemp(rawCounts float64) float64 {
	return externalTempA*rawCounts*rawCounts*rawCounts +
		externalTempB*rawCounts*rawCounts +
		externalTempC*rawCounts +
		externalTempD
}
