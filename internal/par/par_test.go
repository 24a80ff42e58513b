package par

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSatlantic(t *testing.T) {
	// PAR = Im * a1 * (counts - a0), expected value computed independently.
	got := Satlantic(2763451, 2156849, 5.8e-4, 1.359)
	assert.InDelta(t, 478.13582843999995, got, 1e-9)
}

func TestWetLabs(t *testing.T) {
	// PAR = Im * 10^((counts - a0) / a1).
	got := WetLabs(3200, 2000, 800, 1.05)
	assert.InDelta(t, 33.20391543176798, got, 1e-9)
}

func TestBiosphericalMobile(t *testing.T) {
	got := BiosphericalMobile(1.234, 0.012, 0.425)
	assert.InDelta(t, 2.875294117647059, got, 1e-12)
}

func TestBiosphericalWFP(t *testing.T) {
	// Inputs in millivolts; scale factor in V/(quanta cm^-2 s^-1).
	got := BiosphericalWFP(1234, 12, 4.5e-16)
	assert.InDelta(t, 45.108896271686966, got, 1e-9)
}

func TestOCR507Irradiance(t *testing.T) {
	counts := [][]float64{{2148, 2200, 2300, 2400, 2500, 2600, 2700}}
	offset := [][]float64{{2147, 2147, 2147, 2147, 2147, 2147, 2147}}
	scale := [][]float64{{2, 2, 2, 2, 2, 2, 2}}
	immersion := [][]float64{{1.5, 1.5, 1.5, 1.5, 1.5, 1.5, 1.5}}

	ed, err := OCR507Irradiance(counts, offset, scale, immersion)
	require.NoError(t, err)
	require.Len(t, ed, 1)

	want := []float64{3, 159, 459, 759, 1059, 1359, 1659}
	assert.Equal(t, want, ed[0])
}

func TestOCR507IrradianceChannelCount(t *testing.T) {
	for _, cols := range []int{6, 8} {
		row := make([]float64, cols)
		in := [][]float64{row}
		_, err := OCR507Irradiance(in, in, in, in)
		require.Errorf(t, err, "cols=%d", cols)
		assert.Contains(t, err.Error(), "want 7")
	}
}

func TestOCR507IrradianceShapeMismatch(t *testing.T) {
	seven := [][]float64{make([]float64, 7)}

	t.Run("row count", func(t *testing.T) {
		_, err := OCR507Irradiance(seven, [][]float64{make([]float64, 7), make([]float64, 7)}, seven, seven)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "same shape")
	})

	t.Run("column count", func(t *testing.T) {
		_, err := OCR507Irradiance(seven, seven, [][]float64{make([]float64, 6)}, seven)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "same shape")
	})
}
