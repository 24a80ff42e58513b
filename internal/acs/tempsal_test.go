package acs

import (
	"math"
	"strings"
	"testing"

	"github.com/pelagic-data/optics.report/internal/tscor"
)

// testTSCor covers both channel wavelength grids used by the fixtures.
func testTSCor() tscor.Table {
	return tscor.Table{
		tscor.Key(650.0): {Temp: -0.001, SalC: -0.00085, SalA: 0.0003},
		tscor.Key(650.5): {Temp: -0.0011, SalC: -0.00086, SalA: 0.00031},
		tscor.Key(676.5): {Temp: -0.0008, SalC: -0.0008, SalA: 0.00028},
		tscor.Key(677.0): {Temp: -0.00081, SalC: -0.00081, SalA: 0.00029},
		tscor.Key(714.5): {Temp: 0.0028, SalC: -0.0007, SalA: 0.00072},
		tscor.Key(715.0): {Temp: 0.003, SalC: -0.00068, SalA: 0.00073},
	}
}

func TestTempSalCorrect(t *testing.T) {
	pd := []float64{0.05, 0.04, 0.03}
	table := testTSCor()

	t.Run("attenuation", func(t *testing.T) {
		got, err := TempSalCorrect(ChannelAttenuation, pd, []float64{650.0, 676.5, 715.0}, 18.0, 12.5, 34.2, table)
		if err != nil {
			t.Fatalf("TempSalCorrect: %v", err)
		}
		want := []float64{0.07357000000000001, 0.06296, 0.069756}
		for i := range want {
			if math.Abs(got[i]-want[i]) > 1e-12 {
				t.Errorf("corrected[%d] = %v, want %v", i, got[i], want[i])
			}
		}
	})

	t.Run("absorption", func(t *testing.T) {
		got, err := TempSalCorrect(ChannelAbsorption, pd, []float64{650.5, 677.0, 714.5}, 18.0, 12.5, 34.2, table)
		if err != nil {
			t.Fatalf("TempSalCorrect: %v", err)
		}
		want := []float64{0.033348, 0.025626999999999997, 0.020775999999999992}
		for i := range want {
			if math.Abs(got[i]-want[i]) > 1e-12 {
				t.Errorf("corrected[%d] = %v, want %v", i, got[i], want[i])
			}
		}
	})
}

func TestTempSalCorrectInvalidChannel(t *testing.T) {
	_, err := TempSalCorrect(Channel("x"), []float64{0.05}, []float64{650.0}, 18, 12.5, 34.2, testTSCor())
	if err == nil {
		t.Fatal("expected invalid-channel error")
	}
	if !strings.Contains(err.Error(), `"x"`) {
		t.Errorf("error should name the bad channel: %v", err)
	}
}

func TestTempSalCorrectLengthMismatch(t *testing.T) {
	_, err := TempSalCorrect(ChannelAttenuation, []float64{0.05, 0.04}, []float64{650.0}, 18, 12.5, 34.2, testTSCor())
	if err == nil {
		t.Fatal("expected length-mismatch error")
	}
	if !strings.Contains(err.Error(), "(2)") || !strings.Contains(err.Error(), "(1)") {
		t.Errorf("error should name both lengths: %v", err)
	}
}

func TestTempSalCorrectMissingWavelength(t *testing.T) {
	// No interpolation or fallback for wavelengths absent from the table.
	_, err := TempSalCorrect(ChannelAbsorption, []float64{0.05}, []float64{531.7}, 18, 12.5, 34.2, testTSCor())
	if err == nil {
		t.Fatal("expected lookup-miss error")
	}
	if !strings.Contains(err.Error(), "531.7") {
		t.Errorf("error should name the missing wavelength: %v", err)
	}
}

func TestTempSalCorrectRoundsWavelengths(t *testing.T) {
	// 649.96 rounds to the 650.0 table key.
	got, err := TempSalCorrect(ChannelAttenuation, []float64{0.05}, []float64{649.96}, 18.0, 12.5, 34.2, testTSCor())
	if err != nil {
		t.Fatalf("TempSalCorrect: %v", err)
	}
	if math.Abs(got[0]-0.07357000000000001) > 1e-12 {
		t.Errorf("corrected[0] = %v, want %v", got[0], 0.07357000000000001)
	}
}
