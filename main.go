package main

import (
	"context"
	"time"

	"github.com/cppla/miniblog/config"
	"github.com/cppla/miniblog/routes"
	"github.com/cppla/miniblog/storage"
	"github.com/cppla/miniblog/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}
	defer func() { _ = utils.Logger.Sync() }()

	store, closeStore, err := storage.Open(context.Background(), cfg)
	if err != nil {
		utils.Sugar.Fatalf("open %s post store: %v", cfg.StoreDriver, err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			utils.Sugar.Warnf("closing post store: %v", err)
		}
	}()

	r := routes.SetupRouter(cfg, store, utils.UUIDTokens{})

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r, time.Duration(cfg.ShutdownTimeoutSec)*time.Second); err != nil {
		utils.Sugar.Errorf("server stopped with error: %v", err)
	}
}
