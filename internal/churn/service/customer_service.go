package service

import (
	"github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/churn/entity"
	"github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/churn/repository"
)

type CustomerService struct {
	repo    *repository.CustomerRepository
	catalog *repository.CatalogRepository
}

func NewCustomerService(repo *repository.CustomerRepository, catalog *repository.CatalogRepository) *CustomerService {
	return &CustomerService{repo: repo, catalog: catalog}
}

func (s *CustomerService) List(params repository.CustomerListParams) ([]entity.Customer, int64, error) {
	return s.repo.List(params)
}

func (s *CustomerService) GetByID(id string) (*entity.Customer, error) {
	return s.repo.GetByID(id)
}

func (s *CustomerService) ListUsage(customerID string) ([]entity.UsageMetric, error) {
	return s.repo.ListUsage(customerID)
}

func (s *CustomerService) ListPayments(customerID string) ([]entity.Payment, error) {
	return s.repo.ListPayments(customerID)
}

func (s *CustomerService) ListServices(serviceType string) ([]entity.Service, error) {
	return s.catalog.ListServices(serviceType)
}
