package main

import (
	"net/http"

	notificationapp "github.com/baraholka/marketplace/application/notification"
	productapp "github.com/baraholka/marketplace/application/product"
	verificationapp "github.com/baraholka/marketplace/application/verification"
	"github.com/baraholka/marketplace/cmd/config"
	_ "github.com/baraholka/marketplace/docs"
	notificationRepo "github.com/baraholka/marketplace/repository/notification"
	productRepo "github.com/baraholka/marketplace/repository/product"
	txRepo "github.com/baraholka/marketplace/repository/tx"
	userRepo "github.com/baraholka/marketplace/repository/user"
	verificationRepo "github.com/baraholka/marketplace/repository/verification"
	"github.com/baraholka/marketplace/transport"
	"github.com/baraholka/marketplace/utils/logger"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// @title Baraholka Marketplace API
// @version 1.0
// @description Marketplace backend: notifications, products, seller verification
// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("pgx", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize repositories
	NotificationRepo := notificationRepo.NewNotificationRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	VerificationRepo := verificationRepo.NewVerificationRepository(db)
	TxRepo := txRepo.NewTxRepository(db)

	// Initialize application layers
	NotificationApp := notificationapp.NewNotificationApp(NotificationRepo)
	ProductApp := productapp.NewProductApp(ProductRepo)
	VerificationApp := verificationapp.NewVerificationApp(TxRepo, VerificationRepo, UserRepo, ProductRepo)

	httpTransport := transport.NewTransport(NotificationApp, ProductApp, VerificationApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
