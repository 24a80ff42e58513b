// Package par converts raw readings from photosynthetically-active-
// radiation sensors and the OCR-507 multispectral radiometer into
// irradiance. Each sensor family has its own manufacturer-specified
// formula; apart from the OCR-507 shape contract these are single
// expressions with no error conditions.
package par

import (
	"fmt"
	"math"

	"github.com/pelagic-data/optics.report/internal/units"
)

// Satlantic converts a Satlantic PAR sensor reading to irradiance
// [umol photons m^-2 s^-1] via the linear-counts model.
//
//	PAR = Im * a1 * (counts - a0)
//
// a0 is the voltage offset [counts], a1 the scale factor, and im the
// immersion coefficient.
func Satlantic(counts, a0, a1, im float64) float64 {
	return im * a1 * (counts - a0)
}

// WetLabs converts a WET Labs PAR sensor reading to irradiance
// [umol photons m^-2 s^-1] via the logarithmic-counts model.
//
//	PAR = Im * 10^((counts - a0) / a1)
func WetLabs(counts, a0, a1, im float64) float64 {
	return im * math.Pow(10, (counts-a0)/a1)
}

// BiosphericalMobile converts a Biospherical QSP-2100 reading to irradiance
// [umol photons m^-2 s^-1]. output and darkOffset are in volts; scaleWet is
// the wet calibration scale factor [V per umol photons m^-2 s^-1].
func BiosphericalMobile(output, darkOffset, scaleWet float64) float64 {
	return (output - darkOffset) / scaleWet
}

// BiosphericalWFP converts a Biospherical QSP-2200 reading to irradiance
// [umol photons m^-2 s^-1]. output and darkOffset are in millivolts;
// scaleWet is in V per (quanta cm^-2 s^-1) and is rescaled to photon-flux
// units before use.
func BiosphericalWFP(output, darkOffset, scaleWet float64) float64 {
	outputVolts := units.VoltsFromMillivolts(output)
	darkOffsetVolts := units.VoltsFromMillivolts(darkOffset)
	scaleWetConverted := scaleWet * units.QuantaPerCm2SecPerUmol

	return (outputVolts - darkOffsetVolts) / scaleWetConverted
}

// OCR507Channels is the number of wavelength channels on the OCR-507
// multispectral radiometer. Every data packet carries one record per
// channel.
const OCR507Channels = 7

// OCR507Irradiance converts raw OCR-507 counts to downwelling vector
// irradiance Ed [uW cm^-2 nm^-1]. Each row of the inputs is one data
// packet and each column one wavelength channel; all four inputs must have
// identical shapes with exactly 7 columns.
//
//	Ed = (counts - offset) * scale * immersionFactor
func OCR507Irradiance(counts, offset, scale, immersionFactor [][]float64) ([][]float64, error) {
	if err := checkShape("offset", counts, offset); err != nil {
		return nil, err
	}
	if err := checkShape("scale", counts, scale); err != nil {
		return nil, err
	}
	if err := checkShape("immersion factor", counts, immersionFactor); err != nil {
		return nil, err
	}
	for i, row := range counts {
		if len(row) != OCR507Channels {
			return nil, fmt.Errorf("row %d has %d wavelength channels, want %d", i, len(row), OCR507Channels)
		}
	}

	ed := make([][]float64, len(counts))
	for i, row := range counts {
		ed[i] = make([]float64, len(row))
		for j, c := range row {
			ed[i][j] = (c - offset[i][j]) * scale[i][j] * immersionFactor[i][j]
		}
	}
	return ed, nil
}

func checkShape(name string, counts, other [][]float64) error {
	if len(other) != len(counts) {
		return fmt.Errorf("counts (%d rows) and %s (%d rows) arrays must have the same shape", len(counts), name, len(other))
	}
	for i := range counts {
		if len(other[i]) != len(counts[i]) {
			return fmt.Errorf("counts row %d (%d columns) and %s row %d (%d columns) must have the same shape", i, len(counts[i]), name, i, len(other[i]))
		}
	}
	return nil
}
