package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/reflection"

	grpcAdapter "github.com/quentinrf/plant-monitor/services/dosing-service/internal/adapters/grpc"
	"github.com/quentinrf/plant-monitor/services/dosing-service/internal/adapters/memory"
	"github.com/quentinrf/plant-monitor/services/dosing-service/internal/adapters/sqlite"
	"github.com/quentinrf/plant-monitor/services/dosing-service/internal/domain"
	"github.com/quentinrf/plant-monitor/services/dosing-service/internal/ports"
	"github.com/quentinrf/plant-monitor/services/dosing-service/pkg/api"
	"github.com/quentinrf/plant-monitor/services/dosing-service/pkg/tlsconfig"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	config := loadConfig()
	zerolog.SetGlobalLevel(config.LogLevel)

	log.Info().Msg("starting dosing service")

	var repo domain.JournalRepository
	switch config.RepoType {
	case "sqlite":
		r, err := sqlite.NewJournalRepository(config.DBPath)
		if err != nil {
			log.Fatal().Err(err).Str("db_path", config.DBPath).Msg("failed to open SQLite database")
		}
		defer r.Close()
		repo = r
		log.Info().Str("db_path", config.DBPath).Msg("initialized SQLite repository")
	default:
		repo = memory.NewJournalRepository()
		log.Info().Msg("initialized in-memory repository")
	}

	engine := domain.NewEngine(domain.DefaultConfig())
	service := ports.NewDosingService(repo, engine, ports.SystemClock{})
	handler := grpcAdapter.NewDosingServiceHandler(repo, service)

	var serverOpts []grpc.ServerOption
	if config.TLS.Enabled() {
		tlsCfg, err := config.TLS.Server()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load TLS config")
		}
		serverOpts = append(serverOpts, grpc.Creds(credentials.NewTLS(tlsCfg)))
		log.Info().Msg("mTLS enabled")
	} else {
		log.Warn().Msg("TLS_CERT not set, starting without TLS (dev mode only)")
	}

	grpcServer := grpc.NewServer(serverOpts...)
	api.RegisterDosingServiceServer(grpcServer, handler)
	reflection.Register(grpcServer)

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", config.Port))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to listen")
	}

	log.Info().Str("port", config.Port).Msg("gRPC server listening")

	go func() {
		if err := grpcServer.Serve(listener); err != nil {
			log.Fatal().Err(err).Msg("failed to serve")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reporter := ports.NewReporter(service, repo, config.ReportInterval, config.DoseRetention)
	go reporter.Start(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	cancel()
	grpcServer.GracefulStop()

	log.Info().Msg("server stopped")
}

// Config holds application configuration
type Config struct {
	Port           string
	RepoType       string // "memory" | "sqlite"
	DBPath         string // SQLite database file path (used when RepoType=sqlite)
	ReportInterval time.Duration
	DoseRetention  time.Duration
	LogLevel       zerolog.Level
	TLS            tlsconfig.Files
}

// loadConfig reads configuration from environment variables
func loadConfig() Config {
	return Config{
		Port:           envOr("PORT", "50053"),
		RepoType:       envOr("REPO_TYPE", "memory"),
		DBPath:         envOr("DB_PATH", "./dosing.db"),
		ReportInterval: durationEnv("REPORT_INTERVAL", time.Hour),
		DoseRetention:  durationEnv("DOSE_RETENTION", 90*24*time.Hour),
		LogLevel:       levelEnv("LOG_LEVEL", zerolog.InfoLevel),
		TLS:            tlsconfig.FromEnv(),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	if s := os.Getenv(key); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 {
			return d
		}
		log.Warn().Str(key, s).Msg("invalid duration, using default")
	}
	return fallback
}

func levelEnv(key string, fallback zerolog.Level) zerolog.Level {
	if s := os.Getenv(key); s != "" {
		if l, err := zerolog.ParseLevel(s); err == nil {
			return l
		}
	}
	return fallback
}
