package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nurpe/billboard-rentals/internal/auth"
	"github.com/nurpe/billboard-rentals/internal/cache"
	"github.com/nurpe/billboard-rentals/internal/config"
	"github.com/nurpe/billboard-rentals/internal/db"
	"github.com/nurpe/billboard-rentals/internal/excel"
	httphandler "github.com/nurpe/billboard-rentals/internal/http"
	"github.com/nurpe/billboard-rentals/internal/http/middleware"
	"github.com/nurpe/billboard-rentals/internal/logger"
	"github.com/nurpe/billboard-rentals/internal/pdf"
	"github.com/nurpe/billboard-rentals/internal/repository"
	"github.com/nurpe/billboard-rentals/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	ttl, err := time.ParseDuration(cfg.Redis.TTL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid REDIS_TTL")
	}
	sharedCache := cache.New(redisClient, ttl)

	billboardRepo := repository.NewBillboardRepository(database)
	contractRepo := repository.NewContractRepository(database)
	pricingRepo := repository.NewPricingRepository(database)
	ledgerRepo := repository.NewLedgerRepository(database)

	workbooks := excel.NewGenerator()
	pricingService := service.NewPricingService(pricingRepo, sharedCache, workbooks, log)
	pricingService.Init(context.Background())

	contractService := service.NewContractService(
		contractRepo,
		billboardRepo,
		pricingService.Resolver(),
		workbooks,
		pdf.NewGenerator(),
		cfg.Company.Name,
		log,
	)
	billboardService := service.NewBillboardService(billboardRepo)
	rentService := service.NewRentService(billboardRepo, ledgerRepo, cfg.Company.Name, log)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(contractService, billboardService, rentService, pricingService, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting billboards service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
