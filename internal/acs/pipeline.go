package acs

import (
	"fmt"
	"sync"

	"github.com/pelagic-data/optics.report/internal/tscor"
)

// Processor runs the ac-s channel pipelines over packets. It bundles the
// immutable calibration inputs (device file and temperature/salinity
// correction table) with the scattering-correction parameters. A Processor
// holds no mutable state and is safe for concurrent use.
type Processor struct {
	Device *DeviceFile
	TSCor  tscor.Table

	// RefWavelength is the scattering reference wavelength [nm].
	RefWavelength float64

	// MinLeakage is the minimum reference-wavelength scattering leakage
	// [m^-1] below which the scattering correction is suppressed.
	MinLeakage float64
}

// NewProcessor returns a Processor with the default scattering parameters.
func NewProcessor(device *DeviceFile, table tscor.Table) *Processor {
	return &Processor{
		Device:        device,
		TSCor:         table,
		RefWavelength: DefaultRefWavelength,
		MinLeakage:    DefaultMinLeakage,
	}
}

// BeamAttenuation runs the attenuation-channel pipeline for one packet:
// internal temperature, optical density against the 'c' channel
// calibration, then temperature/salinity correction. The result is the
// corrected beam attenuation coefficient [m^-1] per 'c' wavelength.
func (p *Processor) BeamAttenuation(pkt Packet) ([]float64, error) {
	internalTemp := InternalTemp(pkt.RawTemp)

	cal := p.Device.Attenuation
	cpd, _, err := UncorrectedDensity(pkt.CRef, pkt.CSig, cal.Offsets, internalTemp, p.Device.TBins, cal.TempCorrections)
	if err != nil {
		return nil, fmt.Errorf("attenuation density: %w", err)
	}

	cpdTS, err := TempSalCorrect(ChannelAttenuation, cpd, cal.Wavelengths, p.Device.TCal, pkt.Temperature, pkt.Salinity, p.TSCor)
	if err != nil {
		return nil, fmt.Errorf("attenuation temp/sal correction: %w", err)
	}

	return cpdTS, nil
}

// OpticalAbsorption runs the absorption-channel pipeline for one packet.
// attenuation must be the packet's already-corrected attenuation output
// (from BeamAttenuation); the scattering correction interpolates it onto
// the absorption wavelength grid. The result is the fully corrected optical
// absorption coefficient [m^-1] per 'a' wavelength.
func (p *Processor) OpticalAbsorption(pkt Packet, attenuation []float64) ([]float64, error) {
	internalTemp := InternalTemp(pkt.RawTemp)

	cal := p.Device.Absorption
	apd, _, err := UncorrectedDensity(pkt.ARef, pkt.ASig, cal.Offsets, internalTemp, p.Device.TBins, cal.TempCorrections)
	if err != nil {
		return nil, fmt.Errorf("absorption density: %w", err)
	}

	apdTS, err := TempSalCorrect(ChannelAbsorption, apd, cal.Wavelengths, p.Device.TCal, pkt.Temperature, pkt.Salinity, p.TSCor)
	if err != nil {
		return nil, fmt.Errorf("absorption temp/sal correction: %w", err)
	}

	apdTSS, err := ScatterCorrect(apdTS, cal.Wavelengths, attenuation, p.Device.Attenuation.Wavelengths, p.RefWavelength, p.MinLeakage)
	if err != nil {
		return nil, fmt.Errorf("absorption scattering correction: %w", err)
	}

	return apdTSS, nil
}

// Process runs both channel pipelines for one packet. The attenuation
// output feeds the absorption channel's scattering correction, so a packet
// either yields both corrected spectra or an error.
func (p *Processor) Process(pkt Packet) (Result, error) {
	attenuation, err := p.BeamAttenuation(pkt)
	if err != nil {
		return Result{}, err
	}

	absorption, err := p.OpticalAbsorption(pkt, attenuation)
	if err != nil {
		return Result{}, err
	}

	return Result{Attenuation: attenuation, Absorption: absorption}, nil
}

// ProcessBatch runs Process over a batch of packets. Results are returned
// in input order. workers bounds the number of packets processed
// concurrently; values below 2 process the batch sequentially. Packets only
// read their own fields plus the shared immutable calibration data, so no
// coordination beyond the result slice is needed. The first error observed
// fails the whole batch.
func (p *Processor) ProcessBatch(packets []Packet, workers int) ([]Result, error) {
	results := make([]Result, len(packets))

	if workers < 2 || len(packets) < 2 {
		for i, pkt := range packets {
			r, err := p.Process(pkt)
			if err != nil {
				return nil, fmt.Errorf("packet %d: %w", i, err)
			}
			results[i] = r
		}
		return results, nil
	}

	if workers > len(packets) {
		workers = len(packets)
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	jobs := make(chan int)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				r, err := p.Process(packets[i])
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = fmt.Errorf("packet %d: %w", i, err)
					}
					mu.Unlock()
					continue
				}
				results[i] = r
			}
		}()
	}

	for i := range packets {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}
