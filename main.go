package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"civictrack/config"
	"civictrack/controllers"
	"civictrack/metrics"
	"civictrack/middlewares"
	"civictrack/routes"
	"civictrack/seed"
	"civictrack/services"
	"civictrack/store"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"
)

type stores interface {
	store.IssueStore
	store.AuthorityStore
}

func main() {
	if err := run(); err != nil {
		log.WithError(err).Fatal("Server failed")
	}
}

func run() error {
	flagSet := pflag.NewFlagSet("civictrack", pflag.ContinueOnError)
	envFile := flagSet.String("env-file", ".env", "file of KEY=value pairs loaded before reading the environment")
	port := flagSet.String("port", "", "listen port (overrides PORT)")
	driver := flagSet.String("store", "", "storage backend: mongo or memory (overrides STORE_DRIVER)")
	logLevel := flagSet.String("log-level", "", "log level (overrides LOG_LEVEL)")
	runSeed := flagSet.Bool("seed", false, "load the sample issues before serving")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	config.LoadEnvFile(*envFile)
	cfg := config.Load()
	if *port != "" {
		cfg.Port = *port
	}
	if *driver != "" {
		cfg.StoreDriver = *driver
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	config.SetupLogging(cfg.LogLevel, cfg.LogFormat)
	metrics.Register()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	var limiter gin.HandlerFunc
	if cfg.RedisAddress != "" && cfg.IssueCreateLimit > 0 {
		client, err := config.ConnectRedis(ctx, cfg.RedisAddress, cfg.RedisPassword)
		if err != nil {
			return err
		}
		defer client.Close()
		limiter = middlewares.IssueRateLimiter(middlewares.NewRedisCounter(client), cfg.IssueLimitPrefix, cfg.IssueCreateLimit)
	} else {
		log.Info("Issue rate limiting disabled")
	}

	if *runSeed {
		rnd := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
		ids, err := seed.Run(ctx, st, time.Now(), rnd)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		log.WithField("count", len(ids)).Info("Seeded sample issues")
	}

	if cfg.JWTSecret == "" {
		log.Warn("JWT_SECRET is not set, authenticated routes will fail")
	}

	gin.SetMode(gin.ReleaseMode)
	router := routes.NewRouter(routes.RouterDeps{
		Issues: controllers.NewIssueController(
			services.NewIssueService(st),
			services.NewAnalyticsService(st, time.Now),
		),
		Auth:         controllers.NewAuthController(st, cfg.JWTSecret, cfg.JWTExpiresIn),
		JWTSecret:    cfg.JWTSecret,
		CORSOrigin:   cfg.CORSOrigin,
		IssueLimiter: limiter,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.Port).Info("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Info("Server exited")
	return nil
}

func openStore(ctx context.Context, cfg *config.Config) (stores, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreMemory:
		log.Info("Using in-memory store")
		return store.NewMemoryStore(), func() {}, nil
	case config.StoreMongo:
		db, err := config.ConnectDB(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := db.Client().Disconnect(context.Background()); err != nil {
				log.WithError(err).Warn("Failed to disconnect from MongoDB")
			}
		}
		st := store.NewMongoStore(db)
		if err := st.EnsureIndexes(ctx); err != nil {
			closeFn()
			return nil, nil, err
		}
		return st, closeFn, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
