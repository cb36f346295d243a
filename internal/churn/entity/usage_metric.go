package entity

import (
	"time"
)

// UsageMetric is one row per (customer, calendar month). DataUsageGB is
// nullable to model missing telemetry.
type UsageMetric struct {
	ID                string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CustomerID        string    `json:"customer_id" gorm:"type:uuid;not null;uniqueIndex:idx_usage_customer_record"`
	RecordDate        time.Time `json:"record_date" gorm:"not null;uniqueIndex:idx_usage_customer_record"`
	DataUsageGB       *float64  `json:"data_usage_gb" gorm:"type:decimal(10,2)"`
	CallMinutes       int       `json:"call_minutes" gorm:"default:0"`
	SupportTickets    int       `json:"support_tickets" gorm:"default:0"`
	WebsiteVisits     int       `json:"website_visits" gorm:"default:0"`
	AppLogins         int       `json:"app_logins" gorm:"default:0"`
	SatisfactionScore int       `json:"satisfaction_score" gorm:"check:satisfaction_score >= 1 AND satisfaction_score <= 10"`
	CreatedAt         time.Time `json:"created_at"`

	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}

func (UsageMetric) TableName() string {
	return "usage_metrics"
}
