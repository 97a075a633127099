package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Afresh-Revolution/Knowrist/internal/auth"
	"github.com/Afresh-Revolution/Knowrist/internal/backend"
	"github.com/Afresh-Revolution/Knowrist/internal/chat"
	"github.com/Afresh-Revolution/Knowrist/internal/config"
	"github.com/Afresh-Revolution/Knowrist/internal/entryflow"
	"github.com/Afresh-Revolution/Knowrist/internal/localstore"
	"github.com/Afresh-Revolution/Knowrist/internal/logger"
	"github.com/Afresh-Revolution/Knowrist/internal/notification"
	"github.com/Afresh-Revolution/Knowrist/internal/pool"
	"github.com/Afresh-Revolution/Knowrist/internal/server"
	"github.com/Afresh-Revolution/Knowrist/internal/user"
	"github.com/Afresh-Revolution/Knowrist/internal/wallet"
)

func main() {

	logger.Init()
	logger.Info("Starting Knowrist application")
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	store, err := localstore.Open(cfg.StatePath)
	if err != nil {
		logger.Fatalf("Failed to open local store: %v", err)
	}
	logger.Infof("Local store opened at %s", cfg.StatePath)

	client := backend.NewClient(cfg.BackendBaseURL)

	walletSvc := wallet.NewService(client, cfg.DemoBalance, cfg.AuthEnabled)
	users := user.NewService(client, store, walletSvc)
	admin := auth.NewAdminService(client, store)

	pools := pool.NewStore(pool.SeedPools()...)
	poolAdmin := pool.NewAdminService(client, pools)

	feed := notification.NewFeed(notification.SeedWelcome()...)

	flow := entryflow.New(pools, walletSvc, feed, client)
	hub := chat.NewHub()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	users.Restore(ctx)
	admin.Restore()

	go pool.NewTicker(pools).Run(ctx)
	go hub.Run(ctx)

	srv := server.New(server.Deps{
		Config:        cfg,
		Pools:         pools,
		PoolAdmin:     poolAdmin,
		Wallet:        walletSvc,
		Notifications: feed,
		Flow:          flow,
		Users:         users,
		Admin:         admin,
		Chat:          hub,
	})

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
