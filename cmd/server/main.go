package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/acarder/cardshop/internal/config"
	"github.com/acarder/cardshop/internal/es"
	"github.com/acarder/cardshop/internal/events"
	"github.com/acarder/cardshop/internal/filestore"
	"github.com/acarder/cardshop/internal/httpserver"
	"github.com/acarder/cardshop/internal/logging"
	"github.com/acarder/cardshop/internal/payment"
	"github.com/acarder/cardshop/internal/repo"
	"github.com/acarder/cardshop/internal/service"
	pkgdb "github.com/acarder/cardshop/pkg/db"
	loggingmw "github.com/acarder/cardshop/pkg/middleware/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	logger := logging.New(cfg.LogLevel).With("service", "cardshop")
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL, cfg.SQLitePath)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	store := repo.NewGormRepo(db)
	initCtx := logging.IntoContext(context.Background(), logger)
	err = store.Init(initCtx, repo.SeedAdmin{
		Username: cfg.AdminUsername,
		Phone:    cfg.AdminPhone,
		Password: cfg.AdminPassword,
	})
	if err != nil {
		log.Fatalf("store init: %v", err)
	}

	var producer events.Producer = events.NoopProducer{}
	if len(cfg.KafkaBrokers) > 0 {
		kp := events.NewKafkaProducer(cfg.KafkaBrokers)
		defer kp.Close()
		producer = kp
	}

	var esClient *elasticsearch.Client
	if cfg.ESURL != "" {
		esClient, err = es.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			log.Fatalf("elasticsearch: %v", err)
		}
	}

	couponSvc := &service.CouponService{Store: store}
	authSvc := &service.AuthService{Store: store, JWTSecret: cfg.JWTSecret, Producer: producer}
	catalogSvc := &service.CatalogService{Store: store, Files: filestore.NewStubStore(), ES: esClient, Producer: producer}
	walletSvc := &service.WalletService{Store: store, Verifier: payment.NewStubVerifier(), Producer: producer}
	orderSvc := &service.OrderService{Store: store, Coupons: couponSvc, Producer: producer, Delay: cfg.CheckoutDelay}
	adminSvc := &service.AdminService{Store: store}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		Auth:          &httpserver.AuthHTTP{Svc: authSvc},
		Catalog:       &httpserver.CatalogHTTP{Svc: catalogSvc},
		Orders:        &httpserver.OrderHTTP{Svc: orderSvc},
		Wallet:        &httpserver.WalletHTTP{Svc: walletSvc},
		Users:         &httpserver.UserHTTP{Store: store, Admin: adminSvc},
		Settings:      &httpserver.SettingsHTTP{Store: store, Admin: adminSvc},
		Coupons:       &httpserver.CouponHTTP{Svc: couponSvc, Catalog: catalogSvc},
		JWTSecret:     cfg.JWTSecret,
		SearchEnabled: esClient != nil,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("cardshop listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Println("cardshop stopped")
}
