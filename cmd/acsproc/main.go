// Package main provides a one-shot processing tool for ac-s optical data.
// It loads a device calibration file, the temperature/salinity correction
// table, and a batch of raw packets, runs both channel pipelines, and
// writes the corrected spectra as CSV (optionally rendering spectra PNGs).
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"

	"github.com/pelagic-data/optics.report/internal/acs"
	"github.com/pelagic-data/optics.report/internal/tscor"
)

// Config holds configuration for one processing run.
type Config struct {
	DeviceFile    string
	TSCorFile     string
	PacketsFile   string
	OutputCSV     string
	PlotDir       string
	RefWavelength float64
	MinLeakage    float64
	Workers       int
}

func main() {
	var cfg Config
	flag.StringVar(&cfg.DeviceFile, "devfile", "", "path to the ac-s device calibration file (JSON)")
	flag.StringVar(&cfg.TSCorFile, "tscor", "", "path to the temperature/salinity correction table (CSV)")
	flag.StringVar(&cfg.PacketsFile, "packets", "", "path to the raw packet batch (JSON array)")
	flag.StringVar(&cfg.OutputCSV, "out", "spectra.csv", "path for the corrected spectra CSV")
	flag.StringVar(&cfg.PlotDir, "plot-dir", "", "directory for per-packet spectra PNGs (disabled if empty)")
	flag.Float64Var(&cfg.RefWavelength, "ref-wavelength", acs.DefaultRefWavelength, "scattering reference wavelength (nm)")
	flag.Float64Var(&cfg.MinLeakage, "min-leakage", acs.DefaultMinLeakage, "minimum scattering leakage (m^-1) below which the correction is suppressed")
	flag.IntVar(&cfg.Workers, "workers", 1, "number of packets to process concurrently")
	flag.Parse()

	if cfg.DeviceFile == "" || cfg.TSCorFile == "" || cfg.PacketsFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("[acsproc] %v", err)
	}
}

func run(cfg Config) error {
	runID := uuid.New().String()
	start := time.Now()
	log.Printf("[acsproc] Started run %s", runID)

	device, err := acs.LoadDeviceFile(cfg.DeviceFile)
	if err != nil {
		return err
	}
	log.Printf("[acsproc] Loaded device file %s (serial %q, %d 'c' / %d 'a' wavelengths, %d temperature bins)",
		cfg.DeviceFile, device.Serial, len(device.Attenuation.Wavelengths), len(device.Absorption.Wavelengths), len(device.TBins))

	table, err := tscor.Load(cfg.TSCorFile)
	if err != nil {
		return err
	}
	log.Printf("[acsproc] Loaded temperature/salinity correction table %s (%d wavelengths)", cfg.TSCorFile, len(table))

	packets, err := loadPackets(cfg.PacketsFile)
	if err != nil {
		return err
	}
	log.Printf("[acsproc] Loaded %d packets from %s", len(packets), cfg.PacketsFile)

	proc := acs.NewProcessor(device, table)
	proc.RefWavelength = cfg.RefWavelength
	proc.MinLeakage = cfg.MinLeakage

	results, err := proc.ProcessBatch(packets, cfg.Workers)
	if err != nil {
		return err
	}

	for i, r := range results {
		log.Printf("[acsproc] Packet %d: attenuation [%.4f, %.4f] m^-1, absorption [%.4f, %.4f] m^-1",
			i, floats.Min(r.Attenuation), floats.Max(r.Attenuation), floats.Min(r.Absorption), floats.Max(r.Absorption))
	}

	if err := writeCSV(cfg.OutputCSV, device, results); err != nil {
		return err
	}
	log.Printf("[acsproc] Wrote corrected spectra to %s", cfg.OutputCSV)

	if cfg.PlotDir != "" {
		count, err := plotSpectra(cfg.PlotDir, device, results)
		if err != nil {
			return fmt.Errorf("failed to render spectra plots: %w", err)
		}
		log.Printf("[acsproc] Rendered %d spectra plots to %s", count, cfg.PlotDir)
	}

	log.Printf("[acsproc] Completed run %s: %d packets in %.2fs", runID, len(results), time.Since(start).Seconds())
	return nil
}

// loadPackets reads a JSON array of raw packets.
func loadPackets(path string) ([]acs.Packet, error) {
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read packets file: %w", err)
	}

	var packets []acs.Packet
	if err := json.Unmarshal(data, &packets); err != nil {
		return nil, fmt.Errorf("failed to parse packets JSON: %w", err)
	}
	if len(packets) == 0 {
		return nil, fmt.Errorf("packets file %s contains no packets", cleanPath)
	}
	return packets, nil
}

// writeCSV writes the corrected spectra in long format: one row per packet,
// channel, and wavelength.
func writeCSV(path string, device *acs.DeviceFile, results []acs.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"packet", "channel", "wavelength_nm", "coefficient_m-1"}); err != nil {
		return err
	}

	writeChannel := func(packet int, channel acs.Channel, wavelengths, coefficients []float64) error {
		for i, wl := range wavelengths {
			record := []string{
				strconv.Itoa(packet),
				string(channel),
				strconv.FormatFloat(wl, 'f', 1, 64),
				strconv.FormatFloat(coefficients[i], 'g', -1, 64),
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
		return nil
	}

	for i, r := range results {
		if err := writeChannel(i, acs.ChannelAttenuation, device.Attenuation.Wavelengths, r.Attenuation); err != nil {
			return err
		}
		if err := writeChannel(i, acs.ChannelAbsorption, device.Absorption.Wavelengths, r.Absorption); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
