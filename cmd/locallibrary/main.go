package main

import (
	stdLog "log"
	"time"

	"github.com/joho/godotenv"
	"github.com/mvoronov/locallibrary/config"
	"github.com/mvoronov/locallibrary/app"
	"go.uber.org/zap/zapcore"
)

// @title        LocalLibrary Genre API
// @version      1.0
// @description  Genre section of the library catalog.
// @BasePath     /api/v1
func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Print("load envs from .env ", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(cfg)
}
