package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/uniquebrothers/sales-entry-api/infrastructure/database/postgres"
	"github.com/uniquebrothers/sales-entry-api/infrastructure/repository"
	"github.com/uniquebrothers/sales-entry-api/internal/api"
	"github.com/uniquebrothers/sales-entry-api/internal/config"
	"github.com/uniquebrothers/sales-entry-api/internal/scheduler"
	"github.com/uniquebrothers/sales-entry-api/internal/usecases/authenticating"
	"github.com/uniquebrothers/sales-entry-api/internal/usecases/fielding"
	"github.com/uniquebrothers/sales-entry-api/internal/usecases/recording"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	fieldRepo := repository.NewFieldConfigRepository(pgConn)
	entryRepo := repository.NewSalesEntryRepository(pgConn)
	summaryRepo := repository.NewDailySummaryRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	fieldService := fielding.NewService(fieldRepo, entryRepo, cfg)
	recordService := recording.NewService(entryRepo, fieldRepo)

	summarySyncService := scheduler.NewDailySummarySyncService(entryRepo, summaryRepo, cfg)
	if err := summarySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Failed to start the daily summary sync scheduler")
	}

	server, err := api.New(
		cfg,
		fieldService,
		recordService,
		authenticator,
		summarySyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Failed to ping PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
