package app

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/tarefasapp/tarefas/internal/config"
)

func MustReadEnv() *config.Config {
	cfg, err := config.NewEnvReader().Read()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to read env")
		panic(err)
	}
	globalLogger.Info().
		Str("env", cfg.Env).
		Msg("read env")

	return cfg
}

func MustReadDigestEnv() *config.DigestConfig {
	cfg, err := config.NewEnvReader().ReadDigest()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to read digest env")
		panic(err)
	}
	globalLogger.Info().
		Str("env", cfg.Env).
		Str("schedule", cfg.Digest.Schedule).
		Msg("read digest env")

	return cfg
}
