package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	appointmentapp "github.com/muhammadheryan/heating-backoffice/application/appointment"
	categoryapp "github.com/muhammadheryan/heating-backoffice/application/category"
	cityapp "github.com/muhammadheryan/heating-backoffice/application/city"
	dashboardapp "github.com/muhammadheryan/heating-backoffice/application/dashboard"
	productapp "github.com/muhammadheryan/heating-backoffice/application/product"
	proposalapp "github.com/muhammadheryan/heating-backoffice/application/proposal"
	storeapp "github.com/muhammadheryan/heating-backoffice/application/store"
	userapp "github.com/muhammadheryan/heating-backoffice/application/user"
	"github.com/muhammadheryan/heating-backoffice/cmd/config"
	redisclient "github.com/muhammadheryan/heating-backoffice/cmd/redis"
	_ "github.com/muhammadheryan/heating-backoffice/docs"
	"github.com/muhammadheryan/heating-backoffice/migrations"
	appointmentRepo "github.com/muhammadheryan/heating-backoffice/repository/appointment"
	categoryRepo "github.com/muhammadheryan/heating-backoffice/repository/category"
	cityRepo "github.com/muhammadheryan/heating-backoffice/repository/city"
	"github.com/muhammadheryan/heating-backoffice/repository/migrate"
	productRepo "github.com/muhammadheryan/heating-backoffice/repository/product"
	proposalRepo "github.com/muhammadheryan/heating-backoffice/repository/proposal"
	redisRepo "github.com/muhammadheryan/heating-backoffice/repository/redis"
	storeRepo "github.com/muhammadheryan/heating-backoffice/repository/store"
	txRepo "github.com/muhammadheryan/heating-backoffice/repository/tx"
	userRepo "github.com/muhammadheryan/heating-backoffice/repository/user"
	"github.com/muhammadheryan/heating-backoffice/transport"
	"github.com/muhammadheryan/heating-backoffice/utils/logger"
	"github.com/muhammadheryan/heating-backoffice/utils/metrics"
	"go.uber.org/zap"
)

// @title HEATING BACKOFFICE API
// @version 1.0
// @description Back-office API for heating and pool equipment sales
// @host localhost:3000
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if cfg.Database.AutoMigrate {
		if err := migrate.ApplyMigrations(context.Background(), db, migrations.Files); err != nil {
			logger.Fatal("err apply migrations", zap.Error(err))
		}
	}

	// Initialize Redis client
	if err := redisclient.New(cfg.Redis); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	m := metrics.Registry(cfg.Metrics.Namespace)

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	StoreRepo := storeRepo.NewStoreRepository(db)
	CategoryRepo := categoryRepo.NewCategoryRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	CityRepo := cityRepo.NewCityRepository(db)
	AppointmentRepo := appointmentRepo.NewAppointmentRepository(db)
	ProposalRepo := proposalRepo.NewProposalRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	resolver := appointmentapp.NewSellerResolver(UserRepo, AppointmentRepo, m)
	rh := &transport.RestHandler{
		UserApp:        userapp.NewUserApp(cfg, UserRepo, StoreRepo, RedisRepo),
		StoreApp:       storeapp.NewStoreApp(StoreRepo, UserRepo),
		CategoryApp:    categoryapp.NewCategoryApp(CategoryRepo, ProductRepo),
		ProductApp:     productapp.NewProductApp(ProductRepo),
		CityApp:        cityapp.NewCityApp(TxRepo, CityRepo),
		AppointmentApp: appointmentapp.NewAppointmentApp(AppointmentRepo, StoreRepo, UserRepo, resolver),
		ProposalApp:    proposalapp.NewProposalApp(ProposalRepo, AppointmentRepo),
		DashboardApp:   dashboardapp.NewDashboardApp(ProposalRepo, AppointmentRepo, UserRepo, nil),
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      transport.NewTransport(rh, m),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("err shutdown server", zap.Error(err))
	}
}
