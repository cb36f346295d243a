package repository

import (
	"github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/churn/entity"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

type CustomerListParams struct {
	Segment string
	City    string
	Keyword string
	Page    int
	Size    int
}

func (r *CustomerRepository) List(params CustomerListParams) ([]entity.Customer, int64, error) {
	query := r.db.Model(&entity.Customer{})
	if params.Segment != "" {
		query = query.Where("customer_segment = ?", params.Segment)
	}
	if params.City != "" {
		query = query.Where("city = ?", params.City)
	}
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", kw, kw)
	}
	var total int64
	query.Count(&total)
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}
	var customers []entity.Customer
	err := query.Order("signup_date DESC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).Find(&customers).Error
	return customers, total, err
}

func (r *CustomerRepository) GetByID(id string) (*entity.Customer, error) {
	var c entity.Customer
	err := r.db.Preload("Subscriptions").Preload("Subscriptions.Service").
		Where("id = ?", id).First(&c).Error
	return &c, err
}

func (r *CustomerRepository) ListUsage(customerID string) ([]entity.UsageMetric, error) {
	var metrics []entity.UsageMetric
	err := r.db.Where("customer_id = ?", customerID).
		Order("record_date DESC").Find(&metrics).Error
	return metrics, err
}

func (r *CustomerRepository) ListPayments(customerID string) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.db.Where("customer_id = ?", customerID).
		Order("payment_date DESC").Find(&payments).Error
	return payments, err
}
