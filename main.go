package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"investmint-dashboard/config"
	"investmint-dashboard/di"
)

func main() {
	addr := flag.String("addr", "", "listen address, overrides LISTEN_ADDR")
	debug := flag.Bool("debug", false, "sets log level to debug")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := config.LoadDotEnv(config.BaseDir()); err != nil {
		log.Fatal().Err(err).Msg("[MAIN] failed to load .env files")
	}

	settings := config.Load()
	if *debug || settings.LogLevel == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if *addr != "" {
		settings.ListenAddr = *addr
	}

	container, err := di.NewContainer(settings)
	if err != nil {
		log.Fatal().Err(err).Msg("[MAIN] failed to initialize container")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := container.DashboardHttpServer.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("[MAIN] server stopped")
	}
}
