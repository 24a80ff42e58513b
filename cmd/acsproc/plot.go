package main

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/pelagic-data/optics.report/internal/acs"
)

// plotSpectra renders one PNG per packet showing the corrected attenuation
// and absorption spectra. Returns the number of plots written.
func plotSpectra(outputDir string, device *acs.DeviceFile, results []acs.Result) (int, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create output dir: %w", err)
	}

	for i, r := range results {
		p := plot.New()
		p.Title.Text = fmt.Sprintf("Packet %d - Corrected Spectra", i)
		p.X.Label.Text = "Wavelength (nm)"
		p.Y.Label.Text = "Coefficient (m^-1)"

		cLine, err := plotter.NewLine(spectrumXYs(device.Attenuation.Wavelengths, r.Attenuation))
		if err != nil {
			return i, err
		}
		cLine.Color = color.RGBA{R: 217, G: 72, B: 15, A: 255}
		cLine.Width = vg.Points(1)
		p.Add(cLine)
		p.Legend.Add("attenuation", cLine)

		aLine, err := plotter.NewLine(spectrumXYs(device.Absorption.Wavelengths, r.Absorption))
		if err != nil {
			return i, err
		}
		aLine.Color = color.RGBA{R: 15, G: 98, B: 217, A: 255}
		aLine.Width = vg.Points(1)
		p.Add(aLine)
		p.Legend.Add("absorption", aLine)

		p.Legend.Top = true

		file := filepath.Join(outputDir, fmt.Sprintf("packet_%04d.png", i))
		if err := p.Save(10*vg.Inch, 5*vg.Inch, file); err != nil {
			return i, fmt.Errorf("save spectra plot: %w", err)
		}
	}

	return len(results), nil
}

func spectrumXYs(wavelengths, coefficients []float64) plotter.XYs {
	pts := make(plotter.XYs, len(wavelengths))
	for i := range wavelengths {
		pts[i] = plotter.XY{X: wavelengths[i], Y: coefficients[i]}
	}
	return pts
}
