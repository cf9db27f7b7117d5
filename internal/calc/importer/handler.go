package importer

import (
	"encoding/json"
	"net/http"

	"Burmix/internal/calc/batch"
	"Burmix/internal/log"

	"go.uber.org/zap"
)

const MaxUploadSize = 10 << 20 // 10MB

type Handler struct{}

func (h *Handler) Sections(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	sections, err := ParseSections(file)
	if err != nil {
		log.Logger.Debug("section import rejected", zap.Error(err))
		http.Error(w, "Invalid file: "+err.Error(), http.StatusBadRequest)
		return
	}
	res, err := batch.Calculate(batch.Input{Sections: sections})
	if err != nil {
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res.Rounded())
}
