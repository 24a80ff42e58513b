package acs

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// ScatterCorrect removes the fraction of the absorption signal attributable
// to light scattering, using the co-measured attenuation channel as the
// reference. Both inputs must already be temperature/salinity corrected.
//
// The absorption wavelength closest to refWavelength is taken as the point
// where absorption is assumed to be pure scattering leakage. The
// attenuation spectrum is interpolated onto the absorption wavelength grid
// (clamping to the endpoints outside the attenuation grid), and the
// scattering ratio aRef/(cRef-aRef) scales the correction at every
// wavelength. The ratio is forced to zero when aRef <= 0 or when the
// leakage cRef-aRef does not exceed minLeakage; a noisy correction in the
// near-zero-scattering regime would only obscure the data.
func ScatterCorrect(apd, awl, cpd, cwl []float64, refWavelength, minLeakage float64) ([]float64, error) {
	if len(apd) != len(awl) {
		return nil, fmt.Errorf("absorption (%d) and absorption wavelength (%d) arrays must be the same length", len(apd), len(awl))
	}
	if len(cpd) != len(cwl) {
		return nil, fmt.Errorf("attenuation (%d) and attenuation wavelength (%d) arrays must be the same length", len(cpd), len(cwl))
	}
	if len(apd) == 0 {
		return nil, fmt.Errorf("absorption array is empty")
	}
	if len(cwl) < 2 {
		return nil, fmt.Errorf("attenuation grid must have at least 2 wavelengths for interpolation, got %d", len(cwl))
	}
	for i := 1; i < len(cwl); i++ {
		if cwl[i] <= cwl[i-1] {
			return nil, fmt.Errorf("attenuation wavelengths must be strictly ascending: channel %d (%.1f) <= channel %d (%.1f)", i, cwl[i], i-1, cwl[i-1])
		}
	}

	// Locate the absorption channel nearest the scattering reference
	// wavelength.
	dist := make([]float64, len(awl))
	for i, wl := range awl {
		dist[i] = math.Abs(wl - refWavelength)
	}
	refIdx := floats.MinIdx(dist)
	aRef := apd[refIdx]

	// Interpolate the attenuation spectrum onto the absorption grid. Fit
	// cannot fail here: the grid length and ascent were validated above.
	var pl interp.PiecewiseLinear
	_ = pl.Fit(cwl, cpd)
	cInterp := make([]float64, len(awl))
	for i, wl := range awl {
		cInterp[i] = pl.Predict(wl)
	}
	cRef := cInterp[refIdx]

	ratio := 0.0
	if aRef > 0 && cRef-aRef > minLeakage {
		ratio = aRef / (cRef - aRef)
	}

	corrected := make([]float64, len(apd))
	for i := range apd {
		corrected[i] = apd[i] - ratio*(cInterp[i]-apd[i])
	}

	return corrected, nil
}
