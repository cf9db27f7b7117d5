package report

import (
	"bytes"
	"encoding/json"
	"net/http"

	"Burmix/internal/calc/batch"
	"Burmix/internal/log"

	"go.uber.org/zap"
)

type Handler struct{}

func decode(w http.ResponseWriter, r *http.Request) (batch.Input, batch.Result, bool) {
	var input batch.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return input, batch.Result{}, false
	}
	res, err := batch.Calculate(input)
	if err != nil {
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return input, batch.Result{}, false
	}
	return input, res, true
}

func (h *Handler) XLSX(w http.ResponseWriter, r *http.Request) {
	_, res, ok := decode(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := WriteWorkbook(&buf, res.Results); err != nil {
		log.Logger.Error("workbook generation failed", zap.Error(err))
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+FileName+"\"")
	w.Write(buf.Bytes())
}

func (h *Handler) PDF(w http.ResponseWriter, r *http.Request) {
	input, res, ok := decode(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := WritePDF(&buf, input.Title, res.Results); err != nil {
		log.Logger.Error("pdf generation failed", zap.Error(err))
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	w.Write(buf.Bytes())
}
