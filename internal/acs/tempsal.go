package acs

import (
	"fmt"

	"github.com/pelagic-data/optics.report/internal/tscor"
)

// TempSalCorrect removes the component of an uncorrected coefficient that
// is attributable to the offset between the in-situ water temperature and
// the factory calibration temperature, and to the water's salinity. The
// correction coefficients come from the supplied tscor table, looked up per
// wavelength rounded to 0.1 nm; a wavelength absent from the table is a
// hard failure with no interpolation or fallback.
func TempSalCorrect(channel Channel, pd, wavelengths []float64, tcal, temperature, salinity float64, table tscor.Table) ([]float64, error) {
	if len(pd) != len(wavelengths) {
		return nil, fmt.Errorf("coefficient (%d) and wavelength (%d) arrays must be the same length", len(pd), len(wavelengths))
	}

	switch channel {
	case ChannelAttenuation, ChannelAbsorption:
	default:
		return nil, fmt.Errorf("channel must be either %q or %q, got %q", ChannelAbsorption, ChannelAttenuation, channel)
	}

	dT := temperature - tcal

	corrected := make([]float64, len(pd))
	for i, wl := range wavelengths {
		coeffs, ok := table.Lookup(wl)
		if !ok {
			return nil, fmt.Errorf("wavelength %.1f nm is not in the temperature/salinity correction table", wl)
		}

		salCoef := coeffs.SalC
		if channel == ChannelAbsorption {
			salCoef = coeffs.SalA
		}

		corrected[i] = pd[i] - dT*coeffs.Temp - salinity*salCoef
	}

	return corrected, nil
}
