package entity

import (
	"time"

	"gorm.io/gorm"
)

// CustomerStatus values derived by the customer_ltv view
const (
	StatusActive  = "Active"
	StatusChurned = "Churned"
)

// RiskCategory values derived by the customer_risk_features view
const (
	RiskHigh   = "High Risk"
	RiskMedium = "Medium Risk"
	RiskLow    = "Low Risk"
)

// CustomerLTV is one row of the customer_ltv view: per-customer lifetime
// value rollup. current_status is Churned iff any subscription carries a
// non-null churn_date.
type CustomerLTV struct {
	CustomerID         string     `json:"customer_id"`
	Name               string     `json:"name"`
	CustomerSegment    string     `json:"customer_segment"`
	SignupDate         time.Time  `json:"signup_date"`
	TotalSubscriptions int        `json:"total_subscriptions"`
	TotalRevenue       float64    `json:"total_revenue"`
	AvgMonthlyCharges  float64    `json:"avg_monthly_charges"`
	LastChurnDate      *time.Time `json:"last_churn_date"`
	CurrentStatus      string     `json:"current_status"`
	TenureDays         int        `json:"tenure_days"`
}

// ChurnAnalysis is one row of the churn_analysis view: per-segment churn
// rollup over customer_ltv.
type ChurnAnalysis struct {
	CustomerSegment  string  `json:"customer_segment"`
	TotalCustomers   int     `json:"total_customers"`
	ChurnedCustomers int     `json:"churned_customers"`
	ChurnRatePct     float64 `json:"churn_rate_pct"`
	AvgLTV           float64 `json:"avg_ltv" gorm:"column:avg_ltv"`
	AvgTenureDays    float64 `json:"avg_tenure_days"`
}

// CustomerRiskFeatures is one row of the customer_risk_features view: the
// per-customer feature vector consumed by the churn model. Every column is
// null-safe; the downstream trainer tolerates no missing values.
type CustomerRiskFeatures struct {
	CustomerID          string  `json:"customer_id"`
	CustomerSegment     string  `json:"customer_segment"`
	Age                 int     `json:"age"`
	TotalSubscriptions  int     `json:"total_subscriptions"`
	AvgMonthlyCharges   float64 `json:"avg_monthly_charges"`
	TotalSpent          float64 `json:"total_spent"`
	HasChurned          int     `json:"has_churned"`
	HasPaperlessBilling bool    `json:"has_paperless_billing"`
	AvgDataUsage        float64 `json:"avg_data_usage"`
	TotalSupportTickets int     `json:"total_support_tickets"`
	AvgSatisfaction     float64 `json:"avg_satisfaction"`
	FailedPaymentsCount int     `json:"failed_payments_count"`
	AvgLateFees         float64 `json:"avg_late_fees"`
	RiskCategory        string  `json:"risk_category"`
}

// customer_ltv: per-customer subscription rollup. Tenure runs from signup
// to the last churn date, or to now for customers that never churned.
const customerLTVView = `
CREATE OR REPLACE VIEW customer_ltv AS
SELECT
	c.id AS customer_id,
	c.name,
	c.customer_segment,
	c.signup_date,
	COUNT(DISTINCT s.id) AS total_subscriptions,
	COALESCE(SUM(s.total_charges), 0) AS total_revenue,
	COALESCE(AVG(s.monthly_charges), 0) AS avg_monthly_charges,
	MAX(s.churn_date) AS last_churn_date,
	CASE WHEN COUNT(s.churn_date) > 0 THEN 'Churned' ELSE 'Active' END AS current_status,
	(COALESCE(MAX(s.churn_date), NOW())::date - c.signup_date::date) AS tenure_days
FROM customers c
LEFT JOIN subscriptions s ON s.customer_id = c.id
GROUP BY c.id, c.name, c.customer_segment, c.signup_date
`

// churn_analysis: segment-level churn rates over customer_ltv.
const churnAnalysisView = `
CREATE OR REPLACE VIEW churn_analysis AS
SELECT
	customer_segment,
	COUNT(*) AS total_customers,
	COUNT(*) FILTER (WHERE current_status = 'Churned') AS churned_customers,
	ROUND(100.0 * COUNT(*) FILTER (WHERE current_status = 'Churned') / COUNT(*), 2) AS churn_rate_pct,
	ROUND(AVG(total_revenue)::numeric, 2) AS avg_ltv,
	ROUND(AVG(tenure_days)::numeric, 2) AS avg_tenure_days
FROM customer_ltv
GROUP BY customer_segment
`

// customer_risk_features: the feature vector for the churn model. Each
// joined table is pre-aggregated per customer so the three left joins
// cannot multiply each other's rows. Usage metrics are restricted to a
// sliding last-3-months window. Customers with no rows in a joined table
// fall back to neutral defaults (0 for counts and charges, 7 for
// satisfaction, false for paperless billing) so the view never emits NULL.
// High Risk (conjunction) is evaluated before Medium Risk (disjunction).
const customerRiskFeaturesView = `
CREATE OR REPLACE VIEW customer_risk_features AS
SELECT
	c.id AS customer_id,
	c.customer_segment,
	c.age,
	COALESCE(s.total_subscriptions, 0) AS total_subscriptions,
	COALESCE(s.avg_monthly_charges, 0) AS avg_monthly_charges,
	COALESCE(s.total_spent, 0) AS total_spent,
	COALESCE(s.has_churned, 0) AS has_churned,
	COALESCE(s.has_paperless_billing, FALSE) AS has_paperless_billing,
	COALESCE(u.avg_data_usage, 0) AS avg_data_usage,
	COALESCE(u.total_support_tickets, 0) AS total_support_tickets,
	COALESCE(u.avg_satisfaction, 7) AS avg_satisfaction,
	COALESCE(p.failed_payments_count, 0) AS failed_payments_count,
	COALESCE(p.avg_late_fees, 0) AS avg_late_fees,
	CASE
		WHEN COALESCE(u.avg_satisfaction, 7) < 5 AND COALESCE(u.total_support_tickets, 0) > 2 THEN 'High Risk'
		WHEN COALESCE(u.avg_satisfaction, 7) < 7 OR COALESCE(p.failed_payments_count, 0) > 1 THEN 'Medium Risk'
		ELSE 'Low Risk'
	END AS risk_category
FROM customers c
LEFT JOIN (
	SELECT
		customer_id,
		COUNT(DISTINCT id) AS total_subscriptions,
		AVG(monthly_charges) AS avg_monthly_charges,
		SUM(total_charges) AS total_spent,
		CASE WHEN COUNT(churn_date) > 0 THEN 1 ELSE 0 END AS has_churned,
		BOOL_OR(paperless_billing) AS has_paperless_billing
	FROM subscriptions
	GROUP BY customer_id
) s ON s.customer_id = c.id
LEFT JOIN (
	SELECT
		customer_id,
		AVG(data_usage_gb) AS avg_data_usage,
		SUM(support_tickets) AS total_support_tickets,
		AVG(satisfaction_score) AS avg_satisfaction
	FROM usage_metrics
	WHERE record_date >= NOW() - INTERVAL '3 months'
	GROUP BY customer_id
) u ON u.customer_id = c.id
LEFT JOIN (
	SELECT
		customer_id,
		COUNT(*) FILTER (WHERE status = 'Failed') AS failed_payments_count,
		AVG(late_fee) AS avg_late_fees
	FROM payments
	GROUP BY customer_id
) p ON p.customer_id = c.id
`

// CreateViews creates or replaces the three derived views. Idempotent;
// safe to run after every migration.
func CreateViews(db *gorm.DB) error {
	for _, stmt := range []string{customerLTVView, churnAnalysisView, customerRiskFeaturesView} {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
