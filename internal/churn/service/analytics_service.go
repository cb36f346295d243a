package service

import (
	"github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/churn/entity"
	"github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/churn/repository"
)

// AnalyticsService exposes the derived views. Every call hits the views
// directly; results are never cached because the risk window slides with
// query time.
type AnalyticsService struct {
	repo *repository.AnalyticsRepository
}

func NewAnalyticsService(repo *repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

func (s *AnalyticsService) ListLTV(params repository.LTVListParams) ([]entity.CustomerLTV, int64, error) {
	return s.repo.ListLTV(params)
}

func (s *AnalyticsService) GetLTV(customerID string) (*entity.CustomerLTV, error) {
	return s.repo.GetLTV(customerID)
}

func (s *AnalyticsService) ChurnSummary() ([]entity.ChurnAnalysis, error) {
	return s.repo.ChurnSummary()
}

func (s *AnalyticsService) ListRiskFeatures(params repository.RiskListParams) ([]entity.CustomerRiskFeatures, int64, error) {
	return s.repo.ListRiskFeatures(params)
}

func (s *AnalyticsService) GetRiskFeatures(customerID string) (*entity.CustomerRiskFeatures, error) {
	return s.repo.GetRiskFeatures(customerID)
}
