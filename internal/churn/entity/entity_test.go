package entity_test

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/churn/entity"
	"github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/churn/testutil"
)

func TestAgeCheckConstraint(t *testing.T) {
	db := testutil.SetupTestDB(t)

	c := &entity.Customer{
		ID:         uuid.NewString(),
		Name:       "Underage",
		Email:      "kid@test.com",
		Age:        15,
		SignupDate: time.Now(),
	}
	if err := db.Create(c).Error; err == nil {
		t.Fatal("expected age check violation, insert succeeded")
	}
}

func TestEmailUniqueConstraint(t *testing.T) {
	db := testutil.SetupTestDB(t)

	testutil.SeedTestCustomer(t, db, "First", "dup@test.com", entity.SegmentBasic)

	c := &entity.Customer{
		ID:         uuid.NewString(),
		Name:       "Second",
		Email:      "dup@test.com",
		Age:        30,
		SignupDate: time.Now(),
	}
	if err := db.Create(c).Error; err == nil {
		t.Fatal("expected unique email violation, insert succeeded")
	}
}

func TestSatisfactionCheckConstraint(t *testing.T) {
	db := testutil.SetupTestDB(t)

	c := testutil.SeedTestCustomer(t, db, "Customer", "c1@test.com", entity.SegmentBasic)

	m := &entity.UsageMetric{
		CustomerID:        c.ID,
		RecordDate:        time.Now(),
		SatisfactionScore: 11,
	}
	if err := db.Create(m).Error; err == nil {
		t.Fatal("expected satisfaction check violation, insert succeeded")
	}
}

func TestUsageMonthUniqueConstraint(t *testing.T) {
	db := testutil.SetupTestDB(t)

	c := testutil.SeedTestCustomer(t, db, "Customer", "c1@test.com", entity.SegmentBasic)

	record := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	first := &entity.UsageMetric{CustomerID: c.ID, RecordDate: record, SatisfactionScore: 8}
	if err := db.Create(first).Error; err != nil {
		t.Fatalf("first usage row: %v", err)
	}

	second := &entity.UsageMetric{CustomerID: c.ID, RecordDate: record, SatisfactionScore: 5}
	if err := db.Create(second).Error; err == nil {
		t.Fatal("expected (customer_id, record_date) uniqueness violation, insert succeeded")
	}
}

func TestSubscriptionDateCheckConstraint(t *testing.T) {
	db := testutil.SetupTestDB(t)

	c := testutil.SeedTestCustomer(t, db, "Customer", "c1@test.com", entity.SegmentBasic)
	svc := testutil.SeedTestService(t, db, "TV Standard", entity.ServiceTypeTV, 59.99)

	start := time.Now()
	end := start.AddDate(0, 0, -10)
	sub := &entity.Subscription{
		ID:             uuid.NewString(),
		CustomerID:     c.ID,
		ServiceID:      svc.ID,
		StartDate:      start,
		EndDate:        &end,
		MonthlyCharges: 59.99,
	}
	if err := db.Create(sub).Error; err == nil {
		t.Fatal("expected valid_dates violation, insert succeeded")
	}

	// churn_date is deliberately not covered by the check; a churn date
	// before start is accepted as-is
	churn := start.AddDate(0, 0, -10)
	sub = &entity.Subscription{
		ID:             uuid.NewString(),
		CustomerID:     c.ID,
		ServiceID:      svc.ID,
		StartDate:      start,
		MonthlyCharges: 59.99,
		ChurnDate:      &churn,
	}
	if err := db.Create(sub).Error; err != nil {
		t.Fatalf("churn_date should be unconstrained: %v", err)
	}
}
