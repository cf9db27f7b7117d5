package hdd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateSandyLoam(t *testing.T) {
	res, err := Calculate(Input{Index: 1, PipeDiameterMM: 200, LengthM: 100, SoilType: "Супесь"})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Index)
	assert.Equal(t, GroupI, res.Group)
	assert.Equal(t, "sandy-loam", res.SoilCode)
	assert.InDelta(t, 10.0, res.DeltaLM, 1e-9)
	assert.InDelta(t, 0.3, res.BoreholeDiameterM, 1e-12)
	assert.Equal(t, 300, res.BoreholeDiameterMM)
	assert.InDelta(t, 7.7754, res.VolumeM3, 1e-4)
	assert.InDelta(t, 311.02, res.BentoniteTotalKG, 1e-2)
	assert.InDelta(t, 3.1102, res.BentonitePerMKG, 1e-4)
	assert.InDelta(t, 2.3326, res.PolymerTotalKG, 1e-4)
	assert.InDelta(t, 0.023326, res.PolymerPerMKG, 1e-6)
	assert.Equal(t, 110.0, res.TabulatedForceKN)
	assert.Equal(t, 1.5, res.ReserveCoefficient)
	assert.Equal(t, 165.0, res.TotalForceKN)

	shown := res.Rounded()
	assert.Equal(t, 7.78, shown.VolumeM3)
	assert.Equal(t, 311.0, shown.BentoniteTotalKG)
	assert.Equal(t, 3.11, shown.BentonitePerMKG)
	assert.Equal(t, 2.3, shown.PolymerTotalKG)
	assert.Equal(t, 0.02, shown.PolymerPerMKG)
	assert.Equal(t, 165.0, shown.TotalForceKN)
	// unrounded fields stay untouched
	assert.Equal(t, res.BoreholeDiameterM, shown.BoreholeDiameterM)
	assert.Equal(t, res.DeltaLM, shown.DeltaLM)
}

func TestCalculateRock(t *testing.T) {
	res, err := Calculate(Input{PipeDiameterMM: 1000, LengthM: 150, SoilType: "Скала"})
	require.NoError(t, err)

	assert.Equal(t, 1100, res.BoreholeDiameterMM)
	assert.Equal(t, 340.0, res.TabulatedForceKN)
	assert.Equal(t, 2.5, res.ReserveCoefficient)
	assert.Equal(t, 850.0, res.TotalForceKN)
	want := math.Pi * 1.1 * 1.1 / 4 * 165 * 1.5
	assert.InDelta(t, want, res.VolumeM3, 1e-9)
	assert.InDelta(t, want*110, res.BentoniteTotalKG, 1e-9)
}

func TestCalculateDeterministic(t *testing.T) {
	in := Input{Index: 3, PipeDiameterMM: 630, LengthM: 437, SoilType: "Глина тугопластичная"}
	first, err := Calculate(in)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		again, err := Calculate(in)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestCalculateMonotonicInLength(t *testing.T) {
	for _, soil := range Soils() {
		prev, err := Calculate(Input{PipeDiameterMM: 315, LengthM: 1, SoilType: soil.Name})
		require.NoError(t, err)
		for _, l := range []float64{2, 10, 60, 99, 100, 500, 9999, 10000} {
			cur, err := Calculate(Input{PipeDiameterMM: 315, LengthM: l, SoilType: soil.Name})
			require.NoError(t, err)
			assert.Greater(t, cur.VolumeM3, prev.VolumeM3, "%s at %v m", soil.Name, l)
			assert.Greater(t, cur.BentoniteTotalKG, prev.BentoniteTotalKG, "%s at %v m", soil.Name, l)
			prev = cur
		}
	}
}

func TestCalculateInvalidLength(t *testing.T) {
	for _, l := range []float64{0, -1, -100, 0.5, 10001, math.NaN(), math.Inf(1)} {
		res, err := Calculate(Input{PipeDiameterMM: 200, LengthM: l, SoilType: "Песок"})
		assert.ErrorIs(t, err, ErrInvalidLength, "length %v", l)
		assert.Equal(t, Result{}, res)
	}
}

func TestCalculateInvalidDiameter(t *testing.T) {
	for _, d := range []float64{0, 49, -200, 2001, 5000, math.NaN(), math.Inf(-1)} {
		res, err := Calculate(Input{PipeDiameterMM: d, LengthM: 100, SoilType: "Песок"})
		assert.ErrorIs(t, err, ErrInvalidDiameter, "diameter %v", d)
		assert.Equal(t, Result{}, res)
	}
}

func TestCalculateUnknownSoil(t *testing.T) {
	res, err := Calculate(Input{PipeDiameterMM: 200, LengthM: 100, SoilType: "Торф"})
	assert.ErrorIs(t, err, ErrUnknownSoilType)
	assert.Equal(t, Result{}, res)
}

func TestCalculateSoilCheckedFirst(t *testing.T) {
	_, err := Calculate(Input{PipeDiameterMM: 0, LengthM: 0, SoilType: "nope"})
	assert.ErrorIs(t, err, ErrUnknownSoilType)
}

func TestCalculateBounds(t *testing.T) {
	for _, in := range []Input{
		{PipeDiameterMM: MinPipeDiameterMM, LengthM: MinLengthM, SoilType: "Мергель"},
		{PipeDiameterMM: MaxPipeDiameterMM, LengthM: MaxLengthM, SoilType: "Мергель"},
	} {
		res, err := Calculate(in)
		require.NoError(t, err)
		assert.False(t, math.IsInf(res.BentonitePerMKG, 0) || math.IsNaN(res.BentonitePerMKG))
		assert.False(t, math.IsInf(res.PolymerPerMKG, 0) || math.IsNaN(res.PolymerPerMKG))
	}
}
