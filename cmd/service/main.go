package main

import (
	"log"

	"go.uber.org/zap"

	"gitlab.com/contactbook/contacts-api/internal/config"
	"gitlab.com/contactbook/contacts-api/internal/logging"
	"gitlab.com/contactbook/contacts-api/internal/repository"
	"gitlab.com/contactbook/contacts-api/internal/routes"
	"gitlab.com/contactbook/contacts-api/internal/service"
)

// Usage example on the command line:
// > PORT=8080 DBUSER=appuser DBPWD=s3cret DBHOST=localhost:3306 GIN_MODE=release GIN_LOGGING=off go run main.go
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := logging.New(cfg.LogLevel)
	defer logger.Sync()

	sqlDB, err := repository.OpenDatabase(cfg)
	if err != nil {
		logger.Fatal("could not open database", zap.Error(err))
	}
	repo, err := repository.New(sqlDB)
	if err != nil {
		logger.Fatal("could not prepare statements", zap.Error(err))
	}
	svc := service.New(repo)
	router := routes.SetupHttpRouter(svc, logger, cfg.RequestLogging())

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
