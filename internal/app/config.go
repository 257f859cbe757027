package app

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/rs/zerolog"

	"smarttask/internal/config"
)

func MustReadEnv(logger zerolog.Logger) *config.Config {
	cfg, err := config.NewEnvReader().Read()
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to read env")
		panic(err)
	}
	logger.Info().
		Str("env", cfg.Env).
		Msg("read env")

	if cfg.JWT.SigningKey == config.DefaultJWTSigningKey {
		logger.Warn().
			Msg("JWT_SECRET is not set, signing tokens with the default placeholder key")
	}

	return cfg
}
