package hdd

import (
	"encoding/json"
	"net/http"

	"Burmix/internal/log"

	"go.uber.org/zap"
)

type Handler struct{}

type SoilInfo struct {
	SoilProfile
	ReserveCoefficient float64 `json:"reserve_coefficient"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		log.Logger.Debug("hdd calculation rejected", zap.Error(err))
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res.Rounded())
}

func (h *Handler) Soils(w http.ResponseWriter, r *http.Request) {
	list := make([]SoilInfo, 0, len(soils))
	for _, s := range soils {
		list = append(list, SoilInfo{SoilProfile: s, ReserveCoefficient: reserveCoefficients[s.Group]})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}
