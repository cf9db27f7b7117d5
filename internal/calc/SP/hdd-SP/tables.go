package hdd

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Group is the soil drillability group, I to VIII.
type Group string

const (
	GroupI    Group = "I"
	GroupII   Group = "II"
	GroupIII  Group = "III"
	GroupIV   Group = "IV"
	GroupV    Group = "V"
	GroupVI   Group = "VI"
	GroupVII  Group = "VII"
	GroupVIII Group = "VIII"
)

type DiameterRange struct {
	MinMM      float64 `json:"min_mm"`
	MaxMM      float64 `json:"max_mm"`
	BoreholeMM float64 `json:"borehole_mm"`
}

type SoilProfile struct {
	Name          string  `json:"name"`
	Code          string  `json:"code"`
	Group         Group   `json:"group"`
	VolumeFactor  float64 `json:"volume_factor"`
	BentoniteNorm float64 `json:"bentonite_norm_kg_m3"`
	PolymerNorm   float64 `json:"polymer_norm_kg_m3"`
}

// SP 341 table 8.3, pipe outer diameter to borehole diameter. Ascending.
var boreholeTable = []DiameterRange{
	{0, 160, 240},
	{161, 225, 300},
	{226, 315, 400},
	{316, 400, 500},
	{401, 500, 600},
	{501, 630, 700},
	{631, 710, 800},
	{711, 800, 900},
	{801, 900, 1000},
	{901, 1000, 1100},
	{1001, 1200, 1300},
	{1201, 1400, 1500},
	{1401, 1600, 1700},
	{1601, 1800, 1900},
	{1801, 2000, 2100},
}

// Untabulated diameters are reamed to 1.3 of the pipe.
const boreholeOversize = 1.3

var soils = []SoilProfile{
	{"Супесь", "sandy-loam", GroupI, 1.0, 40, 0.3},
	{"Песок", "sand", GroupII, 1.0, 45, 0.4},
	{"Суглинок", "loam", GroupIII, 1.2, 50, 0.5},
	{"Глина", "clay", GroupIV, 1.2, 70, 0.6},
	{"Песок средней плотности", "medium-dense-sand", GroupV, 1.3, 80, 0.8},
	{"Глина тугопластичная", "stiff-clay", GroupVI, 1.4, 90, 1.0},
	{"Мергель", "marl", GroupVII, 1.5, 100, 1.2},
	{"Скала", "rock", GroupVIII, 1.5, 110, 1.5},
}

var (
	soilsByName = lo.KeyBy(soils, func(s SoilProfile) string { return s.Name })
	soilsByCode = lo.KeyBy(soils, func(s SoilProfile) string { return s.Code })
)

var reserveCoefficients = map[Group]float64{
	GroupI:    1.5,
	GroupII:   1.5,
	GroupIII:  1.5,
	GroupIV:   2.0,
	GroupV:    2.0,
	GroupVI:   2.5,
	GroupVII:  2.5,
	GroupVIII: 2.5,
}

// SP 341 table A.3 (reference values): borehole mm -> length m -> force kN.
var forceTable = map[int]map[int]float64{
	240:  {60: 70, 100: 90, 120: 100, 150: 110},
	300:  {60: 90, 100: 110, 120: 120, 150: 140},
	400:  {60: 120, 100: 140, 120: 160, 150: 180},
	500:  {60: 140, 100: 160, 120: 180, 150: 200},
	600:  {60: 160, 100: 180, 120: 200, 150: 220},
	700:  {60: 180, 100: 200, 120: 230, 150: 250},
	800:  {60: 200, 100: 230, 120: 260, 150: 280},
	900:  {60: 220, 100: 260, 120: 290, 150: 310},
	1000: {60: 240, 100: 280, 120: 310, 150: 340},
}

// BoreholeDiameterM returns the borehole diameter in metres for a pipe
// diameter in millimetres. The first matching range wins.
func BoreholeDiameterM(pipeDiameterMM float64) float64 {
	for _, r := range boreholeTable {
		if r.MinMM <= pipeDiameterMM && pipeDiameterMM <= r.MaxMM {
			return r.BoreholeMM / 1000
		}
	}
	return pipeDiameterMM * boreholeOversize / 1000
}

// BoreholeRanges returns a copy of the diameter table.
func BoreholeRanges() []DiameterRange {
	return slices.Clone(boreholeTable)
}

func SoilProfileByName(name string) (SoilProfile, error) {
	s, ok := soilsByName[name]
	if !ok {
		return SoilProfile{}, fmt.Errorf("%w: %q", ErrUnknownSoilType, name)
	}
	return s, nil
}

// SoilProfileByCode looks a soil up by its Latin code.
func SoilProfileByCode(code string) (SoilProfile, error) {
	s, ok := soilsByCode[code]
	if !ok {
		return SoilProfile{}, fmt.Errorf("%w: %q", ErrUnknownSoilType, code)
	}
	return s, nil
}

// FindSoil accepts either the soil name or its code, ignoring surrounding
// spaces and the case of the code.
func FindSoil(s string) (SoilProfile, error) {
	s = strings.TrimSpace(s)
	if p, ok := soilsByName[s]; ok {
		return p, nil
	}
	return SoilProfileByCode(strings.ToLower(s))
}

// Soils lists the soil profiles in group order.
func Soils() []SoilProfile {
	return slices.Clone(soils)
}

func ReserveCoefficient(group Group) (float64, error) {
	k, ok := reserveCoefficients[group]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSoilGroup, group)
	}
	return k, nil
}

// TabulatedForce snaps to the nearest tabulated borehole diameter, then to
// the nearest tabulated length within it, and returns the force in kN.
// On equal distance the smaller key wins.
func TabulatedForce(boreholeMM int, lengthM float64) float64 {
	diam := nearestKey(lo.Keys(forceTable), float64(boreholeMM))
	row := forceTable[diam]
	return row[nearestKey(lo.Keys(row), lengthM)]
}

func nearestKey(keys []int, target float64) int {
	slices.Sort(keys)
	return lo.MinBy(keys, func(a, b int) bool {
		return math.Abs(float64(a)-target) < math.Abs(float64(b)-target)
	})
}
