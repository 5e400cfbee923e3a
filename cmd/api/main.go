package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/puregold/inventory-api/internal/ai"
	"github.com/puregold/inventory-api/internal/auth"
	"github.com/puregold/inventory-api/internal/catalog"
	"github.com/puregold/inventory-api/internal/config"
	"github.com/puregold/inventory-api/internal/dashboard"
	"github.com/puregold/inventory-api/internal/events"
	"github.com/puregold/inventory-api/internal/httpx"
	"github.com/puregold/inventory-api/internal/inventory"
	kafkax "github.com/puregold/inventory-api/internal/kafka"
	"github.com/puregold/inventory-api/internal/logx"
	"github.com/puregold/inventory-api/internal/orders"
	"github.com/puregold/inventory-api/internal/postgres"
	"github.com/puregold/inventory-api/internal/redisx"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logx.New(cfg.ServiceName)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect")
	}
	defer db.Close()
	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producers, one per topic
	pOrders := kafkax.NewProducer(cfg.KafkaBrokers, events.TopicOrderCreated, 1024, log)
	pOrders.Start(ctx)
	pStatus := kafkax.NewProducer(cfg.KafkaBrokers, events.TopicOrderStatusChanged, 1024, log)
	pStatus.Start(ctx)
	pStock := kafkax.NewProducer(cfg.KafkaBrokers, events.TopicStockChanged, 1024, log)
	pStock.Start(ctx)

	// Repos & services
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	authRepo := &auth.Repo{DB: db}
	catalogRepo := &catalog.Repo{DB: db}
	ledgerRepo := &inventory.Repo{DB: db}
	orderRepo := &orders.Repo{DB: db, RestockOnCancel: cfg.RestockOnCancel}
	dashRepo := &dashboard.Repo{DB: db}
	aiClient := ai.NewClient(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AIModel, log)

	// Router & handlers
	router := httpx.NewRouter()
	authmw := httpx.RequireAuth(tokens)

	(&httpx.AuthHandler{Repo: authRepo, Tokens: tokens}).Register(router)
	(&httpx.ProductsHandler{Repo: catalogRepo, Auth: authmw}).Register(router)
	(&httpx.SuppliersHandler{Repo: catalogRepo, Auth: authmw}).Register(router)
	(&httpx.StockHandler{Service: cfg.ServiceName, Repo: ledgerRepo, ProducerStock: pStock, Auth: authmw}).Register(router)
	(&httpx.DashboardHandler{Repo: dashRepo, Redis: rdb}).Register(router)
	(&httpx.AIHandler{Client: aiClient, Catalog: catalogRepo, Ledger: ledgerRepo, Log: log}).Register(router)
	(&httpx.OrdersHandler{
		Service:        cfg.ServiceName,
		Repo:           orderRepo,
		ProducerOrders: pOrders,
		ProducerStatus: pStatus,
		ProducerStock:  pStock,
		Auth:           authmw,
	}).Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("http listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info().Msg("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)

	// cancel stops the flush goroutines after they drain their inboxes
	cancel()
	pOrders.WaitClosed()
	pStatus.WaitClosed()
	pStock.WaitClosed()
}
