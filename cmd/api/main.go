package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elavarasan-maker/RETAILIQO/internal/app"
	"github.com/elavarasan-maker/RETAILIQO/internal/cart"
	"github.com/elavarasan-maker/RETAILIQO/internal/config"
	"github.com/elavarasan-maker/RETAILIQO/internal/gemini"
	"github.com/elavarasan-maker/RETAILIQO/internal/httpx"
	kafkax "github.com/elavarasan-maker/RETAILIQO/internal/kafka"
	"github.com/elavarasan-maker/RETAILIQO/internal/orders"
	"github.com/elavarasan-maker/RETAILIQO/internal/postgres"
	"github.com/elavarasan-maker/RETAILIQO/internal/quotes"
	"github.com/elavarasan-maker/RETAILIQO/internal/redisx"
	"github.com/elavarasan-maker/RETAILIQO/internal/session"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer db.Close()

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producer (supplier broadcast)
	prod := kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderCreated, 1024)
	prod.Start(ctx)

	// Repos & gateways
	ordersRepo := &orders.Repo{DB: db}
	quotesRepo := &quotes.Repo{DB: db}
	book := &orders.Book{
		Repo:     ordersRepo,
		Producer: prod,
		Redis:    rdb,
		Service:  cfg.ServiceName,
	}
	ai := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.GeminiModel)

	qs := &quotes.Service{
		Store: quotesRepo,
		AI:    &app.AIGateway{Client: ai},
		Book:  book,
	}
	sess := &session.Service{
		Profiles: &session.ProfileRepo{DB: db},
		Quotes:   quotesRepo,
		Orders:   ordersRepo,
		Cache:    &session.ProfileCache{Redis: rdb},
	}
	co := &cart.Checkout{Book: book}

	ctrl := app.NewController(ctx, sess, qs, co)

	// Handlers
	router := httpx.NewRouter()
	ph := &httpx.PortalHandler{App: ctrl, Orders: ordersRepo, Redis: rdb}
	ph.Register(router)
	ah := &httpx.AIToolsHandler{App: ctrl, AI: ai}
	ah.Register(router)

	// HTTP server
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	// graceful shutdown
	go func() {
		log.Printf("HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	prod.Close()      // close inbox, flush & close writer
	cancel()          // stop producer loop
	prod.WaitClosed() // drain
}
