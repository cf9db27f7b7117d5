package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Burmix/internal/config"
)

func newRouter(t *testing.T) *mux.Router {
	t.Helper()
	static := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(static, "index.html"), []byte("<html>form</html>"), 0o600))
	r := mux.NewRouter()
	HandleList(r, config.Config{StaticDir: static, RateLimit: 100, RateBurst: 100})
	return r
}

func TestRoutes(t *testing.T) {
	r := newRouter(t)
	section := `{"sections":[{"pipe_diameter_mm":200,"length_m":100,"soil_type":"Супесь"}]}`
	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/api/tools-sp/hdd/soils", "", http.StatusOK},
		{http.MethodPost, "/api/tools-sp/hdd/calc", `{"pipe_diameter_mm":200,"length_m":100,"soil_type":"Супесь"}`, http.StatusOK},
		{http.MethodPost, "/api/tools-sp/hdd/batch", section, http.StatusOK},
		{http.MethodPost, "/api/tools-sp/hdd/xlsx", section, http.StatusOK},
		{http.MethodPost, "/api/tools-sp/hdd/pdf", section, http.StatusOK},
		{http.MethodPost, "/api/tools-sp/hdd/import", "", http.StatusBadRequest},
		{http.MethodGet, "/", "", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body)))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
