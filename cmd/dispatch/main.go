package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/elavarasan-maker/RETAILIQO/internal/config"
	"github.com/elavarasan-maker/RETAILIQO/internal/dispatch"
	kafkax "github.com/elavarasan-maker/RETAILIQO/internal/kafka"
	"github.com/elavarasan-maker/RETAILIQO/internal/orders"
	"github.com/elavarasan-maker/RETAILIQO/internal/postgres"
	"github.com/elavarasan-maker/RETAILIQO/internal/redisx"
	"github.com/joho/godotenv"
)

func mustAtoi(s, def string) int {
	if s == "" {
		s = def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}
	return i
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Producer for dispatch confirmations
	prod := kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderDispatched, 1024)
	prod.Start(ctx)

	// Service
	svc := &dispatch.Service{
		Store:       &orders.Repo{DB: db},
		Redis:       rdb,
		Producer:    prod,
		ServiceName: cfg.ServiceName + "-dispatch",
	}

	// Consumer
	group := getenv("DISPATCH_GROUP", "dispatch-svc")
	workers := mustAtoi(os.Getenv("DISPATCH_WORKERS"), "8")
	cons := kafkax.NewConsumer(cfg.KafkaBrokers, group, orders.TopicOrderCreated, workers)

	go func() {
		log.Printf("dispatch consumer started: group=%s topic=%s workers=%d", group, orders.TopicOrderCreated, workers)
		if err := cons.Start(ctx, svc.HandleOrderCreated); err != nil {
			log.Printf("consumer exit: %v", err)
			cancel()
		}
	}()

	// graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down consumer...")
	cancel()
	time.Sleep(500 * time.Millisecond)
	prod.Close()
	prod.WaitClosed()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
