package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	gomongo "go.mongodb.org/mongo-driver/mongo"

	"github.com/handypro/connect-api/internal/api"
	"github.com/handypro/connect-api/internal/core/ports"
	"github.com/handypro/connect-api/internal/core/service"
	"github.com/handypro/connect-api/internal/infrastructure/config"
	mongodb "github.com/handypro/connect-api/internal/infrastructure/db/mongo"
	redisdb "github.com/handypro/connect-api/internal/infrastructure/db/redis"
	"github.com/handypro/connect-api/internal/infrastructure/memory"
	"github.com/handypro/connect-api/pkg/logger"
	"github.com/handypro/connect-api/pkg/password"
	"github.com/handypro/connect-api/pkg/token"
)

func main() {
	log := logger.Init(logger.Options{
		Level:  os.Getenv("LOG_LEVEL"),
		Pretty: os.Getenv("ENV") == "development",
	})

	cfg := config.Load(log)

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET environment variable is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	hasher := password.NewHasher()

	var (
		users   ports.UserRepository
		jobs    ports.JobRepository
		quotes  ports.QuoteRepository
		mongoDB *gomongo.Database
		rdb     *goredis.Client
	)

	switch cfg.Storage {
	case "mongo":
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongodb")
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(shutdownCtx)
		}()

		rdb, err = redisdb.Connect(ctx, redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer rdb.Close()

		seq := redisdb.NewSequence(rdb)
		userRepo := mongodb.NewUserRepository(db, seq)
		jobRepo := mongodb.NewJobRepository(db, seq)
		quoteRepo := mongodb.NewQuoteRepository(db, seq)

		if err := userRepo.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to ensure user indexes")
		}
		if err := jobRepo.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to ensure job indexes")
		}
		if err := quoteRepo.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to ensure quote indexes")
		}

		users, jobs, quotes = userRepo, jobRepo, quoteRepo
		mongoDB = db
	case "memory":
		users = memory.NewUserRepository()
		jobs = memory.NewJobRepository()
		quotes = memory.NewQuoteRepository()
	default:
		log.Fatal().Str("backend", cfg.Storage).Msg("unknown storage backend")
	}

	authService := service.NewAuthService(users, hasher, tokens, log)

	e := api.NewRouter(api.Dependencies{
		Users:  users,
		Jobs:   jobs,
		Quotes: quotes,
		Tokens: tokens,
		Auth:   authService,
		Mongo:  mongoDB,
		Redis:  rdb,
		Logger: log,
	})

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("env", cfg.Env).
			Str("storage", cfg.Storage).
			Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
