package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/saulo-duarte/quiz-lambda/internal/config"
	"github.com/saulo-duarte/quiz-lambda/internal/container"
)

func main() {
	addr := pflag.String("addr", "", "listen address (defaults to :$PORT)")
	seed := pflag.Bool("seed", true, "populate sample data when the result table is empty")
	pflag.Parse()

	ctx := context.Background()

	c, err := container.New(ctx)
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to initialize application")
	}
	defer config.Close()

	if pflag.CommandLine.Changed("seed") {
		c.Settings.SeedOnStart = *seed
	}
	if err := c.Seed(ctx); err != nil {
		config.Logger.WithError(err).Fatal("Failed to seed sample data")
	}

	listen := *addr
	if listen == "" {
		listen = ":" + c.Settings.Port
	}

	srv := &http.Server{
		Addr:         listen,
		Handler:      c.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  90 * time.Second,
	}

	go func() {
		config.Logger.Infof("Listening on %s", listen)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Logger.WithError(err).Fatal("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.Logger.WithError(err).Error("Graceful shutdown failed")
	}
	config.Logger.Info("Server stopped")
}
