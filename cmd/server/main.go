package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/storyvest/storyvest/internal/api"
	"github.com/storyvest/storyvest/internal/config"
	"github.com/storyvest/storyvest/internal/logger"
	"github.com/storyvest/storyvest/internal/scenario/llm"
	"github.com/storyvest/storyvest/internal/sim"
	"github.com/storyvest/storyvest/internal/storage"
)

func main() {
	appCfg := config.Load()
	logger.Setup(appCfg.LogFile, 10, 3)

	store, err := storage.New(appCfg.DataDir)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	var gen api.Generator
	if appCfg.GeminiAPIKey != "" {
		provider, err := llm.NewProvider(llm.Config{
			APIKey:      appCfg.GeminiAPIKey,
			Model:       appCfg.ModelName,
			Temperature: appCfg.Temperature,
			MaxTokens:   appCfg.MaxTokens,
		})
		if err != nil {
			log.Printf("scenario provider unavailable, serving samples: %v", err)
		} else {
			gen = provider
		}
	} else {
		log.Println("no API key configured, serving the sample scenario")
	}

	svc := api.NewService(api.Config{
		Addr: appCfg.HTTPAddr,
		Sim:  sim.Config{InitialCapital: appCfg.InitialCapital},
	}, store, gen)

	srv := &http.Server{
		Addr:              appCfg.HTTPAddr,
		Handler:           svc,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Handle interrupt signals for graceful shutdown.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("received interrupt signal, shutting down...")
		cancel()
	}()

	go func() {
		log.Printf("game API listening on %s", appCfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	log.Println("server stopped")
}
