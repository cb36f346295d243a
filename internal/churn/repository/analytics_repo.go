package repository

import (
	"github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/churn/entity"
	"gorm.io/gorm"
)

// AnalyticsRepository reads the derived views. The views are plain
// projections recomputed by the database on every query; nothing here is
// cached or materialized.
type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

type LTVListParams struct {
	Segment string
	Status  string
	Page    int
	Size    int
}

func (r *AnalyticsRepository) ListLTV(params LTVListParams) ([]entity.CustomerLTV, int64, error) {
	query := r.db.Table("customer_ltv")
	if params.Segment != "" {
		query = query.Where("customer_segment = ?", params.Segment)
	}
	if params.Status != "" {
		query = query.Where("current_status = ?", params.Status)
	}
	var total int64
	query.Count(&total)
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}
	var rows []entity.CustomerLTV
	err := query.Order("total_revenue DESC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).Find(&rows).Error
	return rows, total, err
}

func (r *AnalyticsRepository) GetLTV(customerID string) (*entity.CustomerLTV, error) {
	var row entity.CustomerLTV
	err := r.db.Table("customer_ltv").Where("customer_id = ?", customerID).First(&row).Error
	return &row, err
}

// ChurnSummary returns the per-segment churn rollup.
func (r *AnalyticsRepository) ChurnSummary() ([]entity.ChurnAnalysis, error) {
	var rows []entity.ChurnAnalysis
	err := r.db.Table("churn_analysis").Order("customer_segment").Find(&rows).Error
	return rows, err
}

type RiskListParams struct {
	RiskCategory string
	Segment      string
	Page         int
	Size         int
}

func (r *AnalyticsRepository) ListRiskFeatures(params RiskListParams) ([]entity.CustomerRiskFeatures, int64, error) {
	query := r.db.Table("customer_risk_features")
	if params.RiskCategory != "" {
		query = query.Where("risk_category = ?", params.RiskCategory)
	}
	if params.Segment != "" {
		query = query.Where("customer_segment = ?", params.Segment)
	}
	var total int64
	query.Count(&total)
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}
	var rows []entity.CustomerRiskFeatures
	err := query.Order("customer_id").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).Find(&rows).Error
	return rows, total, err
}

func (r *AnalyticsRepository) GetRiskFeatures(customerID string) (*entity.CustomerRiskFeatures, error) {
	var row entity.CustomerRiskFeatures
	err := r.db.Table("customer_risk_features").Where("customer_id = ?", customerID).First(&row).Error
	return &row, err
}

// AllRiskFeatures streams the whole feature table for export, ordered for
// stable output.
func (r *AnalyticsRepository) AllRiskFeatures() ([]entity.CustomerRiskFeatures, error) {
	var rows []entity.CustomerRiskFeatures
	err := r.db.Table("customer_risk_features").Order("customer_id").Find(&rows).Error
	return rows, err
}
