package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/mindreader/internal/api"
	"github.com/robalobadob/mindreader/internal/config"
	"github.com/robalobadob/mindreader/internal/game"
	"github.com/robalobadob/mindreader/internal/tui"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	view := tui.NewView(os.Stdout)
	ctrl := game.New(api.New(cfg.ServerURL), view)
	ctrl.QuestionDelay = time.Duration(cfg.QuestionDelayMS) * time.Millisecond

	log.Info().Str("server", cfg.ServerURL).Msg("starting mindreader client")
	if err := tui.NewApp(ctrl, view, os.Stdin).Run(); err != nil {
		log.Fatal().Err(err).Msg("client exited")
	}
}
