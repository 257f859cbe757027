package main

import "smarttask/internal/app"

func main() {
	logger := app.NewDefaultLogger()
	cfg := app.MustReadEnv(logger)
	logger = app.MustInitApplicationLogger(logger, cfg)

	pgPool := app.MustConnectPostgres(logger, cfg.Postgres)
	defer pgPool.Close()

	app.MustListenAndServeHTTP(logger, cfg, pgPool)
}
