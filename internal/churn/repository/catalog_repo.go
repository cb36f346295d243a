package repository

import (
	"github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/churn/entity"
	"gorm.io/gorm"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) ListServices(serviceType string) ([]entity.Service, error) {
	query := r.db.Model(&entity.Service{})
	if serviceType != "" {
		query = query.Where("service_type = ?", serviceType)
	}
	var services []entity.Service
	err := query.Order("monthly_price").Find(&services).Error
	return services, err
}

func (r *CatalogRepository) GetServiceByID(id string) (*entity.Service, error) {
	var svc entity.Service
	err := r.db.Where("id = ?", id).First(&svc).Error
	return &svc, err
}
