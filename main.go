package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ciripa6pa-alt/penjualan-vocer-wf/api"
	"github.com/ciripa6pa-alt/penjualan-vocer-wf/internal/config"
	"github.com/ciripa6pa-alt/penjualan-vocer-wf/internal/store"
	"github.com/ciripa6pa-alt/penjualan-vocer-wf/internal/voucher"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config:", err)
	}

	var logger *zap.Logger
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatal("failed to build logger:", err)
	}
	defer logger.Sync()

	kv, err := store.OpenSQLite(cfg.DBPath)
	if err != nil {
		logger.Fatal("failed to open storage", zap.String("path", cfg.DBPath), zap.Error(err))
	}

	service := voucher.NewService(kv, logger)

	r := gin.Default()
	api.InitRoutes(r, service, logger, cfg.AllowOrigin)

	logger.Info("server starting", zap.String("port", cfg.Port), zap.String("db", cfg.DBPath))
	if err := r.Run(":" + cfg.Port); err != nil {
		panic(fmt.Errorf("error trying to start server: %v", err))
	}
}
