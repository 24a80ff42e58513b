// Package tscor holds the empirically derived temperature and salinity
// correction coefficients for the ac-s optical channels. The table is keyed
// by wavelength rounded to 0.1 nm and is loaded once at startup; callers
// pass the loaded Table into every correction call so the pipeline stays
// free of ambient global state.
package tscor

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
)

// Coeffs is one table entry: the temperature correction factor shared by
// both channels and the per-channel salinity correction factors.
type Coeffs struct {
	Temp float64 // psi_T
	SalC float64 // psi_S for the attenuation channel
	SalA float64 // psi_S for the absorption channel
}

// Table maps wavelength (in tenths of a nanometre, see Key) to its
// correction coefficients. Read-only after construction.
type Table map[int]Coeffs

// Key converts a wavelength [nm] to the table's lookup key, rounding to one
// decimal place. Integer tenths avoid float map keys.
func Key(wavelength float64) int {
	return int(math.Round(wavelength * 10))
}

// Lookup returns the coefficients for the wavelength rounded to 0.1 nm.
func (t Table) Lookup(wavelength float64) (Coeffs, bool) {
	c, ok := t[Key(wavelength)]
	return c, ok
}

// Parse reads a correction table from CSV with records of the form
// wavelength,temp,sal_c,sal_a. A single header line beginning with a
// non-numeric wavelength field is skipped.
func Parse(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 4

	table := make(Table)
	line := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read tscor record: %w", err)
		}
		line++

		wl, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			if line == 1 {
				// header
				continue
			}
			return nil, fmt.Errorf("tscor line %d: invalid wavelength %q", line, record[0])
		}

		var c Coeffs
		for i, dst := range []*float64{&c.Temp, &c.SalC, &c.SalA} {
			v, err := strconv.ParseFloat(record[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("tscor line %d: invalid coefficient %q", line, record[i+1])
			}
			*dst = v
		}

		table[Key(wl)] = c
	}

	if len(table) == 0 {
		return nil, fmt.Errorf("tscor table is empty")
	}
	return table, nil
}

// Load reads a correction table from a CSV file.
func Load(path string) (Table, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".csv" {
		return nil, fmt.Errorf("tscor file must have .csv extension, got %q", ext)
	}

	f, err := os.Open(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open tscor file: %w", err)
	}
	defer f.Close()

	table, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cleanPath, err)
	}
	return table, nil
}
