package entity

import (
	"time"
)

// PaymentStatus values
const (
	PaymentStatusSuccess  = "Success"
	PaymentStatusFailed   = "Failed"
	PaymentStatusPending  = "Pending"
	PaymentStatusRefunded = "Refunded"
)

// Payment is one billing event for a customer.
type Payment struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CustomerID  string    `json:"customer_id" gorm:"type:uuid;not null;index"`
	PaymentDate time.Time `json:"payment_date" gorm:"not null;index"`
	Amount      float64   `json:"amount" gorm:"type:decimal(10,2);not null"`
	Status      string    `json:"status" gorm:"size:20;not null;default:Pending;index"`
	LateFee     float64   `json:"late_fee" gorm:"type:decimal(8,2);default:0"`
	CreatedAt   time.Time `json:"created_at"`

	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}

func (Payment) TableName() string {
	return "payments"
}
