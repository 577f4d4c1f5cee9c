package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/carlsburger/GastroCore-sub002/internal/config"
	"github.com/carlsburger/GastroCore-sub002/internal/database"
	"github.com/carlsburger/GastroCore-sub002/internal/handler"
	"github.com/carlsburger/GastroCore-sub002/internal/middleware"
	"github.com/carlsburger/GastroCore-sub002/internal/queue"
	"github.com/carlsburger/GastroCore-sub002/internal/repository"
	"github.com/carlsburger/GastroCore-sub002/internal/router"
	"github.com/carlsburger/GastroCore-sub002/internal/utils"
)

func main() {
	// A missing .env is fine in production where the environment is real.
	_ = godotenv.Load()

	cfg := config.Load()
	plan := config.LoadPlanConfig()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	cipher, err := utils.NewFieldCipher(cfg.HRKey)
	if err != nil {
		log.Fatalf("hr cipher: %v", err)
	}

	e := echo.New()

	// Redis backs the response cache and the rate limiter; both degrade
	// to pass-through when the client is nil.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, cache and rate limiting disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	resRepo := repository.NewReservationRepo(db)
	tableRepo := repository.NewTableRepo(db)
	areaRepo := repository.NewAreaRepo(db)
	eventRepo := repository.NewEventRepo(db)
	comboRepo := repository.NewCombinationRepo(db)
	staffRepo := repository.NewStaffRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)
	marketingRepo := repository.NewMarketingRepo(db)
	posRepo := repository.NewPosRepo(db)

	back := handler.NewBackofficeHandler(resRepo, tableRepo, areaRepo, eventRepo, comboRepo, plan)
	admin := handler.NewAdminHandler(staffRepo, paymentRepo, marketingRepo, posRepo, cipher, cfg.BcryptCost)

	router.RegisterRoutes(e)
	router.RegisterBackoffice(e, back, cfg.JWTSecret)
	router.RegisterAdmin(e, back, admin, cfg.JWTSecret)

	// The confirmation consumer runs for the life of the process and
	// reconnects on its own.
	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			log.Printf("reservation consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
