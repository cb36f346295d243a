package entity

import (
	"time"
)

// PaymentMethod values
const (
	PaymentMethodCreditCard      = "Credit Card"
	PaymentMethodBankTransfer    = "Bank Transfer"
	PaymentMethodElectronicCheck = "Electronic Check"
	PaymentMethodMailedCheck     = "Mailed Check"
)

// ChurnReason values used by the generator. The column itself is free text.
const (
	ChurnReasonPrice       = "Price too high"
	ChurnReasonQuality     = "Poor service quality"
	ChurnReasonCompetitor  = "Moved to competitor"
	ChurnReasonRelocation  = "Relocation"
	ChurnReasonSupport     = "Dissatisfied with support"
	ChurnReasonNoLongerUse = "No longer needed"
)

// Subscription links a customer to a catalog service. A customer may hold
// multiple subscriptions; the valid_dates check constrains end_date only,
// churn_date is deliberately unconstrained.
type Subscription struct {
	ID               string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CustomerID       string     `json:"customer_id" gorm:"type:uuid;not null;index"`
	ServiceID        string     `json:"service_id" gorm:"type:uuid;not null;index"`
	StartDate        time.Time  `json:"start_date" gorm:"not null"`
	EndDate          *time.Time `json:"end_date" gorm:"check:valid_dates,end_date IS NULL OR end_date >= start_date"`
	MonthlyCharges   float64    `json:"monthly_charges" gorm:"type:decimal(10,2);not null"`
	TotalCharges     float64    `json:"total_charges" gorm:"type:decimal(12,2);default:0"`
	PaymentMethod    string     `json:"payment_method" gorm:"size:30"`
	PaperlessBilling bool       `json:"paperless_billing" gorm:"default:false"`
	IsActive         bool       `json:"is_active" gorm:"default:true;index"`
	ChurnDate        *time.Time `json:"churn_date" gorm:"index"`
	ChurnReason      string     `json:"churn_reason" gorm:"size:100"`
	CreatedAt        time.Time  `json:"created_at"`

	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Service  *Service  `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
