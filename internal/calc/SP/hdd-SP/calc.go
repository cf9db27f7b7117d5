package hdd

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

const (
	MinPipeDiameterMM = 50
	MaxPipeDiameterMM = 2000
	MinLengthM        = 1
	MaxLengthM        = 10000

	// Length allowance for drilling slack, fraction of the crossing length.
	lengthAllowance = 0.1
)

type Input struct {
	Index          int     `json:"index"`
	PipeDiameterMM float64 `json:"pipe_diameter_mm"`
	LengthM        float64 `json:"length_m"`
	SoilType       string  `json:"soil_type"`
}

type Result struct {
	Index              int     `json:"index"`
	PipeDiameterMM     float64 `json:"pipe_diameter_mm"`
	LengthM            float64 `json:"length_m"`
	SoilType           string  `json:"soil_type"`
	SoilCode           string  `json:"soil_code"`
	Group              Group   `json:"group"`
	VolumeFactor       float64 `json:"volume_factor"`
	DeltaLM            float64 `json:"delta_l_m"`
	BoreholeDiameterM  float64 `json:"borehole_diameter_m"`
	BoreholeDiameterMM int     `json:"borehole_diameter_mm"`
	VolumeM3           float64 `json:"volume_m3"`
	BentoniteTotalKG   float64 `json:"bentonite_total_kg"`
	BentonitePerMKG    float64 `json:"bentonite_per_m_kg"`
	PolymerTotalKG     float64 `json:"polymer_total_kg"`
	PolymerPerMKG      float64 `json:"polymer_per_m_kg"`
	TabulatedForceKN   float64 `json:"tabulated_force_kn"`
	ReserveCoefficient float64 `json:"reserve_coefficient"`
	TotalForceKN       float64 `json:"total_force_kn"`
}

// Calculate computes drilling fluid volume, bentonite and polymer
// consumption and pulling force for one HDD section per SP 341.1325800.2017.
// Inputs are validated before any formula is evaluated.
func Calculate(in Input) (Result, error) {
	soil, err := SoilProfileByName(in.SoilType)
	if err != nil {
		return Result{}, err
	}
	reserveK, err := ReserveCoefficient(soil.Group)
	if err != nil {
		return Result{}, err
	}
	if !finite(in.LengthM) || in.LengthM < MinLengthM || in.LengthM > MaxLengthM {
		return Result{}, fmt.Errorf("%w: %v m (allowed %d..%d)", ErrInvalidLength, in.LengthM, MinLengthM, MaxLengthM)
	}
	if !finite(in.PipeDiameterMM) || in.PipeDiameterMM < MinPipeDiameterMM || in.PipeDiameterMM > MaxPipeDiameterMM {
		return Result{}, fmt.Errorf("%w: %v mm (allowed %d..%d)", ErrInvalidDiameter, in.PipeDiameterMM, MinPipeDiameterMM, MaxPipeDiameterMM)
	}

	L := in.LengthM
	deltaL := L * lengthAllowance
	dBur := BoreholeDiameterM(in.PipeDiameterMM)

	// V = pi * D^2 / 4 * (L + dL) * f
	volume := math.Pi * dBur * dBur / 4 * (L + deltaL) * soil.VolumeFactor
	bentonite := volume * soil.BentoniteNorm
	polymer := volume * soil.PolymerNorm

	dBurMM := int(math.Round(dBur * 1000))
	fTab := TabulatedForce(dBurMM, L)

	return Result{
		Index:              in.Index,
		PipeDiameterMM:     in.PipeDiameterMM,
		LengthM:            L,
		SoilType:           soil.Name,
		SoilCode:           soil.Code,
		Group:              soil.Group,
		VolumeFactor:       soil.VolumeFactor,
		DeltaLM:            deltaL,
		BoreholeDiameterM:  dBur,
		BoreholeDiameterMM: dBurMM,
		VolumeM3:           volume,
		BentoniteTotalKG:   bentonite,
		BentonitePerMKG:    bentonite / L,
		PolymerTotalKG:     polymer,
		PolymerPerMKG:      polymer / L,
		TabulatedForceKN:   fTab,
		ReserveCoefficient: reserveK,
		TotalForceKN:       fTab * reserveK,
	}, nil
}

// Rounded returns a copy with quantities rounded to their display precision.
func (r Result) Rounded() Result {
	r.VolumeM3 = round(r.VolumeM3, 2)
	r.BentoniteTotalKG = round(r.BentoniteTotalKG, 1)
	r.BentonitePerMKG = round(r.BentonitePerMKG, 2)
	r.PolymerTotalKG = round(r.PolymerTotalKG, 1)
	r.PolymerPerMKG = round(r.PolymerPerMKG, 2)
	r.TotalForceKN = round(r.TotalForceKN, 1)
	return r
}

func round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
