package entity

import (
	"time"
)

// CustomerSegment values
const (
	SegmentPremium  = "Premium"
	SegmentStandard = "Standard"
	SegmentBasic    = "Basic"
)

// Gender values
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// Customer is a telecom subscriber. Rows are written once at seed time and
// never mutated afterwards.
type Customer struct {
	ID              string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name            string    `json:"name" gorm:"size:100;not null"`
	Email           string    `json:"email" gorm:"size:100;not null;uniqueIndex"`
	Phone           string    `json:"phone" gorm:"size:20"`
	Age             int       `json:"age" gorm:"not null;check:age >= 18 AND age <= 100"`
	Gender          string    `json:"gender" gorm:"size:10"`
	City            string    `json:"city" gorm:"size:50"`
	State           string    `json:"state" gorm:"size:50"`
	Country         string    `json:"country" gorm:"size:50;not null;default:USA"`
	SignupDate      time.Time `json:"signup_date" gorm:"not null;index"`
	CustomerSegment string    `json:"customer_segment" gorm:"size:20;not null;default:Basic;index"`
	CreatedAt       time.Time `json:"created_at"`

	Subscriptions []Subscription `json:"subscriptions,omitempty" gorm:"foreignKey:CustomerID"`
	UsageMetrics  []UsageMetric  `json:"usage_metrics,omitempty" gorm:"foreignKey:CustomerID"`
	Payments      []Payment      `json:"payments,omitempty" gorm:"foreignKey:CustomerID"`
}

func (Customer) TableName() string {
	return "customers"
}
