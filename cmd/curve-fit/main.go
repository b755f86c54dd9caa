package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/drakos74/curve-fit/infra/config"
	"github.com/drakos74/curve-fit/internal/curve"
	"github.com/drakos74/curve-fit/internal/metrics"
	"github.com/drakos74/curve-fit/internal/server"
	"github.com/drakos74/curve-fit/internal/storage"
	"github.com/rs/zerolog/log"
)

const name = "curve-fit"

func main() {
	file := flag.String("config", "", "config file (.json or .toml), defaults to infra/config/curve-fit.json")
	flag.Parse()

	cfg := config.Default()
	if *file != "" {
		if err := config.Load(*file, &cfg); err != nil {
			log.Fatal().Err(err).Msg("could not load config")
		}
	} else {
		config.MustLoad(name, &cfg)
	}
	if err := cfg.Log.Setup(); err != nil {
		log.Fatal().Err(err).Msg("could not set up logging")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gateway, err := curve.NewGateway(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Str("storage", cfg.Storage.Type).Msg("could not create storage")
	}
	if closer, ok := gateway.(storage.Closer); ok {
		defer closer.Close()
	}

	service := curve.New(gateway)

	srv := server.NewServer(name, cfg.Server.Port).
		Limit(cfg.Server.Rate, cfg.Server.Burst).
		Add(server.LiveRoute()).
		Add(service.Routes(cfg.Server.Debug)...).
		Mount("/metrics", metrics.Observer.Handler())
	if cfg.Server.Debug {
		srv.Debug()
	}

	if err := srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped")
		return
	}
	log.Info().Msg("server stopped")
}
