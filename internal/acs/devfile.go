package acs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LoadDeviceFile loads an ac-s device calibration file from JSON. The file
// is validated to ensure it has a .json extension and is under the max file
// size before parsing, and the parsed calibration is checked for internal
// consistency.
func LoadDeviceFile(path string) (*DeviceFile, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("device file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat device file: %w", err)
	}
	const maxFileSize = 4 * 1024 * 1024 // 4MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("device file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read device file: %w", err)
	}

	dev := &DeviceFile{}
	if err := json.Unmarshal(data, dev); err != nil {
		return nil, fmt.Errorf("failed to parse device file JSON: %w", err)
	}

	if err := dev.Validate(); err != nil {
		return nil, fmt.Errorf("invalid device file: %w", err)
	}

	return dev, nil
}

// Validate checks the calibration for internal consistency: a non-empty
// ascending temperature-bin grid, and per-channel wavelength/offset/table
// dimensions that agree.
func (d *DeviceFile) Validate() error {
	if len(d.TBins) < 2 {
		return fmt.Errorf("temperature bin grid must have at least 2 entries, got %d", len(d.TBins))
	}
	for i := 1; i < len(d.TBins); i++ {
		if d.TBins[i] <= d.TBins[i-1] {
			return fmt.Errorf("temperature bins must be strictly ascending: bin %d (%.4f) <= bin %d (%.4f)", i, d.TBins[i], i-1, d.TBins[i-1])
		}
	}

	if err := d.Attenuation.validate(len(d.TBins)); err != nil {
		return fmt.Errorf("attenuation channel: %w", err)
	}
	if err := d.Absorption.validate(len(d.TBins)); err != nil {
		return fmt.Errorf("absorption channel: %w", err)
	}
	return nil
}

func (c *ChannelCal) validate(bins int) error {
	n := len(c.Wavelengths)
	if n < 2 {
		return fmt.Errorf("wavelength grid must have at least 2 entries, got %d", n)
	}
	for i := 1; i < n; i++ {
		if c.Wavelengths[i] <= c.Wavelengths[i-1] {
			return fmt.Errorf("wavelengths must be strictly ascending: channel %d (%.1f) <= channel %d (%.1f)", i, c.Wavelengths[i], i-1, c.Wavelengths[i-1])
		}
	}
	if len(c.Offsets) != n {
		return fmt.Errorf("offset count (%d) must match wavelength count (%d)", len(c.Offsets), n)
	}
	if len(c.TempCorrections) != n {
		return fmt.Errorf("temperature correction table has %d rows, want %d", len(c.TempCorrections), n)
	}
	for i, row := range c.TempCorrections {
		if len(row) != bins {
			return fmt.Errorf("temperature correction table row %d has %d columns, want %d", i, len(row), bins)
		}
	}
	return nil
}
