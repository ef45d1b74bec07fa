package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	itemAPI "github.com/ridloal/item-inventory-service/internal/item/api"
	"github.com/ridloal/item-inventory-service/internal/item/audit"
	itemRepo "github.com/ridloal/item-inventory-service/internal/item/repository"
	"github.com/ridloal/item-inventory-service/internal/item/seed"
	itemService "github.com/ridloal/item-inventory-service/internal/item/service"
	"github.com/ridloal/item-inventory-service/internal/platform/config"
	"github.com/ridloal/item-inventory-service/internal/platform/logger"
)

var version = "dev"

func main() {
	cfg := config.LoadItemServiceConfig()
	logger.Setup(cfg.LogLevel, cfg.DevMode, "item-service")
	if !cfg.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Item Service %s...", version)

	src, err := loadSeed(cfg.SeedFile)
	if err != nil {
		logger.Error("Failed to load seed data", err)
		os.Exit(1)
	}
	logger.Info("Loaded %d seed items", src.Len())

	// Setup Dependencies
	repo := itemRepo.NewMemoryItemRepository(src)
	detachAudit := audit.NewLogger(logger.Get()).Attach(repo)
	defer detachAudit()

	svc := itemService.NewItemService(repo, version)
	handler := itemAPI.NewItemHandler(svc, cfg.SSEBufferSize)

	// event streams end when baseCtx is cancelled, otherwise Shutdown would wait for them
	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()

	server := &http.Server{
		Addr:              cfg.Server.Port,
		Handler:           itemAPI.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Item Service running on port " + cfg.Server.Port)
		if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errCh <- serveErr
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("Received %s, shutting down", sig)
	case serveErr := <-errCh:
		logger.Error("Item Service server failed", serveErr)
	}

	cancelBase()
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Item Service shutdown error", err)
	}
	logger.Info("Item Service stopped")
}

func loadSeed(path string) (*seed.Source, error) {
	if path == "" {
		return seed.Default()
	}
	return seed.LoadFile(path)
}
