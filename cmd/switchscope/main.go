package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/switchscope/switchscope/internal/common/logtrace"
	"github.com/switchscope/switchscope/internal/invsrv/config"
	"github.com/switchscope/switchscope/internal/invsrv/db"
	"github.com/switchscope/switchscope/internal/invsrv/invmanager"
	"github.com/switchscope/switchscope/internal/invsrv/server"
)

func init() {
	logtrace.InitLogger()
}

type cmdoptions struct {
	configFile string
	seed       bool
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := run(ctx); err != nil {
		log.Error().Err(err).Msg("server failed")
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	slog := log.With().Str("state", "init").Logger()

	opt := parseFlags()

	// A .env alongside the binary can override secrets in development.
	_ = godotenv.Load()

	slog.Info().Str("config_file", opt.configFile).Msg("loading config file")
	if err := config.LoadConfig(opt.configFile); err != nil {
		return fmt.Errorf("loading config file: %w", err)
	}
	if config.Config().ServerPort == "" {
		return fmt.Errorf("server port not defined")
	}

	db.Init()

	if opt.seed {
		if err := seedCatalogs(ctx); err != nil {
			return fmt.Errorf("seeding catalogs: %w", err)
		}
	}

	serverErrors, shutdownServer, err := createInventoryServer(ctx)
	if err != nil {
		return fmt.Errorf("creating inventory server: %w", err)
	}

	// Channel to listen for an interrupt or terminate signal from the OS.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		slog.Info().Str("signal", sig.String()).Msg("shutdown signal received")
		shutdownServer()
	}

	slog.Info().Msg("server stopped")
	return nil
}

func parseFlags() cmdoptions {
	opt := cmdoptions{}
	flag.StringVar(&opt.configFile, "config", "switchscope.conf", "path to the configuration file")
	flag.BoolVar(&opt.seed, "seed", true, "seed the default catalog entries on startup")
	flag.Parse()
	return opt
}

// seedCatalogs loads the built-in catalog entries over a short-lived
// connection.
func seedCatalogs(ctx context.Context) error {
	seedCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	seedCtx = log.Logger.WithContext(seedCtx)

	connCtx, err := db.ConnCtx(seedCtx)
	if err != nil {
		return err
	}
	defer db.DB(connCtx).Close(context.Background())

	if err := invmanager.SeedDefaultCatalogs(connCtx); err != nil {
		return err
	}
	return nil
}

func createInventoryServer(ctx context.Context) (chan error, func(), error) {
	slog := log.With().Str("state", "init").Logger()

	s, err := server.CreateNewServer()
	if err != nil {
		return nil, nil, fmt.Errorf("creating server: %w", err)
	}
	s.MountHandlers()

	srv := &http.Server{
		Addr:              ":" + config.Config().ServerPort,
		Handler:           s.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		slog.Info().Str("port", config.Config().ServerPort).Msg("server started")
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := func() {
		// Give outstanding requests 5 seconds to complete and initiate the shutdown.
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error().Err(err).Msg("could not stop server gracefully")
			if err := srv.Close(); err != nil {
				slog.Error().Err(err).Msg("could not stop server")
			}
		}
	}

	return serverErrors, shutdown, nil
}
