package main

import (
	hdd "Burmix/internal/calc/SP/hdd-SP"
	"Burmix/internal/calc/batch"
	"Burmix/internal/calc/importer"
	"Burmix/internal/calc/report"
	"Burmix/internal/config"
	"Burmix/internal/log"
	"Burmix/internal/middleware"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func HandleList(mux *mux.Router, cfg config.Config) {
	limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	hddH := &hdd.Handler{}
	batchH := &batch.Handler{}
	reportH := &report.Handler{}
	importH := &importer.Handler{}

	tools := api.PathPrefix("/tools-sp/hdd").Subrouter()
	tools.HandleFunc("/soils", hddH.Soils).Methods("GET")
	tools.HandleFunc("/calc", hddH.Calc).Methods("POST")
	tools.HandleFunc("/batch", batchH.Calc).Methods("POST")
	tools.HandleFunc("/xlsx", reportH.XLSX).Methods("POST")
	tools.HandleFunc("/pdf", reportH.PDF).Methods("POST")
	tools.HandleFunc("/import", importH.Sections).Methods("POST")

	mainFileServer := http.FileServer(http.Dir(cfg.StaticDir))
	mux.PathPrefix("/").
		Handler(mainFileServer)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.InitProductionLogger()
		log.Logger.Fatal("config", zap.Error(err))
	}
	log.Init(cfg.LogMode)
	defer log.Logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	router := mux.NewRouter()
	HandleList(router, cfg)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: middleware.CORS(router),
	}

	log.Logger.Info("starting server", zap.String("addr", cfg.Addr), zap.Bool("tls", cfg.TLS()))
	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Logger.Error("server error", zap.Error(err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Logger.Info("shutdown signal received, closing active connections")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Logger.Fatal("server shutdown", zap.Error(err))
	}
	log.Logger.Info("server stopped")

	wg.Wait()
}
