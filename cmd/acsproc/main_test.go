package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelagic-data/optics.report/internal/acs"
)

func TestLoadPackets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packets.json")
	payload := `[
		{"raw_temp": 50000, "temperature": 12.5, "salinity": 34.2,
		 "cref": [4000, 5000], "csig": [3500, 4600],
		 "aref": [4100, 5100], "asig": [3300, 4700]}
	]`
	if err := os.WriteFile(path, []byte(payload), 0644); err != nil {
		t.Fatal(err)
	}

	packets, err := loadPackets(path)
	if err != nil {
		t.Fatalf("loadPackets: %v", err)
	}
	if len(packets) != 1 {
		t.Fatalf("got %d packets, want 1", len(packets))
	}
	if packets[0].RawTemp != 50000 || len(packets[0].CRef) != 2 {
		t.Errorf("unexpected packet: %+v", packets[0])
	}
}

func TestLoadPacketsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packets.json")
	if err := os.WriteFile(path, []byte("[]"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadPackets(path); err == nil || !strings.Contains(err.Error(), "no packets") {
		t.Fatalf("expected empty-batch error, got %v", err)
	}
}

func TestWriteCSV(t *testing.T) {
	device := &acs.DeviceFile{
		Attenuation: acs.ChannelCal{Wavelengths: []float64{650.0, 715.0}},
		Absorption:  acs.ChannelCal{Wavelengths: []float64{650.5}},
	}
	results := []acs.Result{
		{Attenuation: []float64{0.5, 0.25}, Absorption: []float64{0.125}},
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	if err := writeCSV(path, device, results); err != nil {
		t.Fatalf("writeCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	// Header plus one row per channel wavelength.
	if len(records) != 4 {
		t.Fatalf("got %d records, want 4", len(records))
	}
	if records[1][1] != "c" || records[1][2] != "650.0" || records[1][3] != "0.5" {
		t.Errorf("unexpected first data row: %v", records[1])
	}
	if records[3][1] != "a" || records[3][2] != "650.5" {
		t.Errorf("unexpected absorption row: %v", records[3])
	}
}
