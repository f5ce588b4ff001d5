package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/flightdesk/config"
	"github.com/Domenick1991/flightdesk/internal/bootstrap"
	"github.com/Domenick1991/flightdesk/internal/cache"
	"github.com/Domenick1991/flightdesk/internal/catalog"
	apischema "github.com/Domenick1991/flightdesk/internal/graphql"
	"github.com/Domenick1991/flightdesk/internal/kafka"
	"github.com/Domenick1991/flightdesk/internal/repository"
	"github.com/Domenick1991/flightdesk/internal/service/account"
	"github.com/Domenick1991/flightdesk/internal/service/booking"
	"github.com/Domenick1991/flightdesk/internal/service/flights"
	"github.com/jackc/pgx/v5/pgxpool"
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

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	log.Printf("loaded %d flights from %s", cat.Len(), cfg.Catalog.Path)

	var bookingRepo repository.BookingRepository
	var userRepo repository.UserRepository
	switch cfg.Storage.Driver {
	case "memory":
		bookingRepo = repository.NewMemBookingRepository()
		userRepo = repository.NewMemUserRepository()
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.Storage.Postgres.DSN())
		if err != nil {
			log.Fatalf("connect postgres: %v", err)
		}
		defer pool.Close()
		bookingRepo = repository.NewPGBookingRepository(pool)
		userRepo = repository.NewPGUserRepository(pool)
	default:
		log.Fatalf("unknown storage driver %q", cfg.Storage.Driver)
	}

	var searchCache flights.Cache
	if cfg.Redis.Addr != "" {
		ttl := time.Duration(cfg.Search.CacheTTLSeconds) * time.Second
		redisCache := cache.NewRedisCache(cfg.Redis, ttl)
		defer redisCache.Close()
		searchCache = redisCache
	}

	var bookingOpts []booking.BookingServiceOption
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		bookingOpts = append(bookingOpts, booking.WithProducer(producer, cfg.Kafka.BookingEventsTopic, cfg.Kafka.NotificationsTopic))
	}

	flightService := flights.NewFlightService(cat, searchCache, time.Duration(cfg.Search.CacheTTLSeconds)*time.Second)
	bookingService := booking.NewBookingService(bookingRepo, userRepo, cat, bookingOpts...)
	accountService := account.NewAccountService(userRepo)

	schema, err := apischema.NewSchema(apischema.NewResolver(flightService, bookingService, accountService))
	if err != nil {
		log.Fatalf("build schema: %v", err)
	}

	log.Printf("serving GraphQL on %s", cfg.HTTP.Address)
	if err := bootstrap.Run(ctx, cfg, schema); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
