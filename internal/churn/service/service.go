package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/churn/repository"
	"github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/config"
)

// Services churn service collection
type Services struct {
	Customer  *CustomerService
	Analytics *AnalyticsService
	Seed      *SeedService
	Export    *ExportService
}

func NewServices(repos *repository.Repositories, rdb *redis.Client, mc *minio.Client, cfg *config.Config, logger *zap.Logger) *Services {
	return &Services{
		Customer:  NewCustomerService(repos.Customer, repos.Catalog),
		Analytics: NewAnalyticsService(repos.Analytics),
		Seed:      NewSeedService(repos.Dataset, rdb, logger),
		Export:    NewExportService(repos.Analytics, mc, cfg.MinIO.Bucket),
	}
}
