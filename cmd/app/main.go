package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skyfare/flightbooking/api"
	"github.com/skyfare/flightbooking/config"
	"github.com/skyfare/flightbooking/internal/bootstrap"
	"github.com/skyfare/flightbooking/internal/catalog"
	"github.com/skyfare/flightbooking/internal/kafka"
	"github.com/skyfare/flightbooking/internal/search"
	"github.com/skyfare/flightbooking/internal/service/booking"
	"github.com/skyfare/flightbooking/internal/storage"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var store storage.Store
	if cfg.Redis.Addr != "" {
		store = storage.NewRedisStore(cfg.Redis)
	} else {
		log.Printf("no redis configured, recent searches and history will not survive a restart")
		store = storage.NewMemoryStore()
	}

	var producer *kafka.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		producer = kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
	}

	offers := catalog.NewGenerator(cfg.Catalog.Seed).Generate()
	engine := search.NewEngine(offers, store, search.WithHistoryCap(cfg.Search.HistoryCap))

	opts := []booking.ServiceOption{
		booking.WithDebounce(time.Duration(cfg.Search.DebounceMillis) * time.Millisecond),
	}
	if cfg.Kafka.NotificationsTopic != "" {
		opts = append(opts, booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic))
	}

	var svc *booking.Service
	if producer != nil {
		svc = booking.NewService(engine, store, producer, cfg.Kafka.BookingTopic, opts...)
	} else {
		svc = booking.NewService(engine, store, nil, "", opts...)
	}
	manager := booking.NewManager(svc)

	flightHandler := api.NewFlightHandler(engine)
	searchHandler := api.NewSearchHandler(engine)
	bookingHandler := api.NewBookingHandler(manager, svc, &booking.PaymentSimulator{})

	if err := bootstrap.Run(ctx, cfg, flightHandler, searchHandler, bookingHandler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
