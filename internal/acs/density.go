package acs

import (
	"fmt"
	"math"
)

// UncorrectedDensity converts raw reference and signal light measurements
// for one channel of one packet into an uncorrected absorption or
// attenuation coefficient [m^-1], applying the pure-water offsets and a
// correction for the instrument's internal temperature interpolated from
// the device file's temperature-bin table.
//
// ref, sig and offsets must have one entry per wavelength channel. tbins is
// the ascending temperature-bin grid and tempCorrections the matching
// wavelength-by-bin correction table from the device file.
//
// The returned tempCorr slice is the interpolated per-wavelength correction
// term. It is not used in subsequent processing; it is exposed so unit
// tests can verify the interpolation independently of the coefficient.
func UncorrectedDensity(ref, sig, offsets []float64, internalTemp float64, tbins []float64, tempCorrections [][]float64) (pd, tempCorr []float64, err error) {
	if len(ref) != len(sig) {
		return nil, nil, fmt.Errorf("reference (%d) and signal (%d) arrays must be the same length", len(ref), len(sig))
	}

	n := len(sig)

	if len(offsets) != n {
		return nil, nil, fmt.Errorf("calibration offset channel count (%d) must match the signal and reference channel count (%d)", len(offsets), n)
	}

	if len(tbins) == 0 {
		return nil, nil, fmt.Errorf("temperature bin grid is empty")
	}

	if len(tempCorrections) != n {
		return nil, nil, fmt.Errorf("temperature correction table has %d rows, want one per wavelength channel (%d)", len(tempCorrections), n)
	}
	for i, row := range tempCorrections {
		if len(row) != len(tbins) {
			return nil, nil, fmt.Errorf("temperature correction table row %d has %d columns, want one per temperature bin (%d)", i, len(row), len(tbins))
		}
	}

	// Bracket the internal temperature with the largest bin strictly below
	// it and the smallest bin strictly above it. Both comparisons are
	// deliberately strict: a reading exactly on an interior bin interpolates
	// between its neighbours, and a reading on (or beyond) the first or last
	// bin is out of range. This matches the instrument vendor's published
	// processing and must not be "fixed".
	lo, hi := -1, -1
	for i, b := range tbins {
		if b < internalTemp {
			lo = i
		}
	}
	for i, b := range tbins {
		if b > internalTemp {
			hi = i
			break
		}
	}
	if lo < 0 || hi < 0 {
		return nil, nil, fmt.Errorf("internal temperature %.4f degC is outside the calibration bin range [%.4f, %.4f]", internalTemp, tbins[0], tbins[len(tbins)-1])
	}

	t0, t1 := tbins[lo], tbins[hi]
	frac := (internalTemp - t0) / (t1 - t0)

	pd = make([]float64, n)
	tempCorr = make([]float64, n)
	for i := 0; i < n; i++ {
		d0 := tempCorrections[i][lo]
		d1 := tempCorrections[i][hi]
		tempCorr[i] = d0 + frac*(d1-d0)

		pd[i] = offsets[i] - (1.0/PathLengthMeters)*math.Log(sig[i]/ref[i]) - tempCorr[i]
	}

	return pd, tempCorr, nil
}
