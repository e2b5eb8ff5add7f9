package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dental-tracker-api/internal/config"
	"dental-tracker-api/internal/container"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		config.Logger().Fatalf("failed to load config: %v", err)
	}
	config.Init(cfg)
	log := config.Logger()

	c := container.New(cfg)

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      c.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Info("server stopped")
}
