package entity

import (
	"time"
)

// ServiceType values
const (
	ServiceTypeInternet = "Internet"
	ServiceTypePhone    = "Phone"
	ServiceTypeTV       = "TV"
	ServiceTypeBundle   = "Bundle"
)

// Service is a catalog offering. Static reference data, created once.
type Service struct {
	ID                   string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ServiceName          string    `json:"service_name" gorm:"size:100;not null"`
	ServiceType          string    `json:"service_type" gorm:"size:20;not null;index"`
	MonthlyPrice         float64   `json:"monthly_price" gorm:"type:decimal(10,2);not null"`
	SetupFee             float64   `json:"setup_fee" gorm:"type:decimal(10,2);default:0"`
	ContractLengthMonths int       `json:"contract_length_months" gorm:"default:12"`
	CreatedAt            time.Time `json:"created_at"`
}

func (Service) TableName() string {
	return "services"
}
