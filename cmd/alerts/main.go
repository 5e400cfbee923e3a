package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/puregold/inventory-api/internal/alerts"
	"github.com/puregold/inventory-api/internal/catalog"
	"github.com/puregold/inventory-api/internal/config"
	"github.com/puregold/inventory-api/internal/events"
	kafkax "github.com/puregold/inventory-api/internal/kafka"
	"github.com/puregold/inventory-api/internal/logx"
	"github.com/puregold/inventory-api/internal/postgres"
	"github.com/puregold/inventory-api/internal/redisx"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logx.New("inventory-alerts")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect")
	}
	defer db.Close()

	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	svc := &alerts.Service{
		Products: &catalog.Repo{DB: db},
		Redis:    rdb,
		Log:      log,
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info().Msg("shutting down...")
		cancel()
	}()

	consumer := kafkax.NewConsumer(cfg.KafkaBrokers, cfg.AlertsGroup, events.TopicStockChanged, cfg.AlertsWorkers, log)
	log.Info().Str("topic", events.TopicStockChanged).Msg("alert worker started")
	if err := consumer.Start(ctx, svc.HandleStockChanged); err != nil {
		log.Fatal().Err(err).Msg("consumer stopped")
	}
}
