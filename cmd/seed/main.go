package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/churn/entity"
	"github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/churn/generator"
	"github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/churn/repository"
	"github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/churn/service"
	"github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/config"
)

func main() {
	customers := flag.Int("customers", generator.DefaultCustomerCount, "number of customers to generate")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	wipe := flag.Bool("wipe", false, "delete existing rows before seeding")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := openDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := entity.AutoMigrate(db); err != nil {
		zapLogger.Fatal("Failed to auto-migrate churn tables", zap.Error(err))
	}
	if err := entity.CreateViews(db); err != nil {
		zapLogger.Fatal("Failed to create analytics views", zap.Error(err))
	}

	// the CLI seeder is a single process, no Redis lock needed
	seedSvc := service.NewSeedService(repository.NewDatasetRepository(db), nil, zapLogger)

	counts, err := seedSvc.Run(context.Background(), service.SeedOptions{
		Customers: *customers,
		Seed:      *seed,
		Wipe:      *wipe,
	})
	if err != nil {
		zapLogger.Fatal("Seed run failed", zap.Error(err))
	}

	zapLogger.Info("Seed run completed",
		zap.Int64("services", counts.Services),
		zap.Int64("customers", counts.Customers),
		zap.Int64("subscriptions", counts.Subscriptions),
		zap.Int64("usage_metrics", counts.UsageMetrics),
		zap.Int64("payments", counts.Payments),
	)
}

func openDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}
