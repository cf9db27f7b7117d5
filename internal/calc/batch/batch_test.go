package batch

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hdd "Burmix/internal/calc/SP/hdd-SP"
)

func sections(n int) []hdd.Input {
	out := make([]hdd.Input, n)
	for i := range out {
		out[i] = hdd.Input{PipeDiameterMM: 200, LengthM: float64(100 + i), SoilType: "Супесь"}
	}
	return out
}

func TestCalculate(t *testing.T) {
	res, err := Calculate(Input{Sections: sections(3)})
	require.NoError(t, err)
	require.Equal(t, 3, res.Count)
	for i, r := range res.Results {
		assert.Equal(t, i+1, r.Index)
		assert.Equal(t, float64(100+i), r.LengthM)
	}
}

func TestCalculateKeepsExplicitIndex(t *testing.T) {
	in := sections(2)
	in[0].Index = 7
	res, err := Calculate(Input{Sections: in})
	require.NoError(t, err)
	assert.Equal(t, 7, res.Results[0].Index)
	assert.Equal(t, 2, res.Results[1].Index)
}

func TestCalculateSectionCount(t *testing.T) {
	_, err := Calculate(Input{})
	assert.ErrorIs(t, err, ErrInvalidSectionCount)
	_, err = Calculate(Input{Sections: sections(MaxSections + 1)})
	assert.ErrorIs(t, err, ErrInvalidSectionCount)
	res, err := Calculate(Input{Sections: sections(MaxSections)})
	require.NoError(t, err)
	assert.Equal(t, MaxSections, res.Count)
}

func TestCalculateAbortsOnFailure(t *testing.T) {
	in := sections(3)
	in[1].LengthM = 0
	res, err := Calculate(Input{Sections: in})
	assert.ErrorIs(t, err, hdd.ErrInvalidLength)
	assert.Contains(t, err.Error(), "section 2")
	assert.Empty(t, res.Results)
}

func TestRounded(t *testing.T) {
	res, err := Calculate(Input{Sections: sections(1)})
	require.NoError(t, err)
	shown := res.Rounded()
	assert.Equal(t, 7.78, shown.Results[0].VolumeM3)
	assert.NotEqual(t, 7.78, res.Results[0].VolumeM3)
}

func TestHandlerCalc(t *testing.T) {
	body, err := json.Marshal(Input{Sections: sections(2)})
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	(&Handler{}).Calc(rec, httptest.NewRequest(http.MethodPost, "/batch", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var got Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, 165.0, got.Results[0].TotalForceKN)
}

func TestHandlerCalcErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad json", "{"},
		{"no sections", `{"sections":[]}`},
		{"bad soil", `{"sections":[{"pipe_diameter_mm":200,"length_m":100,"soil_type":"x"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			(&Handler{}).Calc(rec, httptest.NewRequest(http.MethodPost, "/batch", bytes.NewBufferString(tt.body)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
