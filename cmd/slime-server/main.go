package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dsneed1234/slime-volleyball/config"
	"github.com/dsneed1234/slime-volleyball/logger"
	"github.com/dsneed1234/slime-volleyball/network"
	"github.com/dsneed1234/slime-volleyball/room"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Log)

	manager, err := room.NewManager(cfg.BestOf, log)
	if err != nil {
		log.WithError(err).Fatal("bad configuration")
	}
	ws := network.NewServer(manager, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", ws.HandleWS)
	mux.HandleFunc("GET /rooms", ws.HandleRooms)
	mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: mux,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("slime volleyball server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("server failed")
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("shutdown failed")
	}
}
