package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "cotacao_ia/docs"
	"cotacao_ia/internal/adapter/http/routes"
	"cotacao_ia/internal/config"
	"cotacao_ia/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
)

// @title           Cotação IA API
// @version         1.0
// @description     Lead intake chat and health plan quotes for Vidda Seguros Saúde.

// @contact.name   Vidda Seguros Saúde
// @contact.url    https://viddasegurossaude.com.br/contato

// @host localhost:8000

// @BasePath  /api

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("[main] invalid configuration")
	}
	if _, err := logger.New(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatal().Err(err).Msg("[main] failed to build logger")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("[main] server stopped with error")
		stop()
		os.Exit(1)
	}
	log.Info().Msg("[main] server stopped")
}
