package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/churn/entity"
	"github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/churn/generator"
	"github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/churn/testutil"
)

func smallDataset(email string) *generator.Dataset {
	now := time.Now()
	customerID := uuid.New().String()
	serviceID := uuid.New().String()
	return &generator.Dataset{
		Services: []entity.Service{{
			ID: serviceID, ServiceName: "Unlimited Phone", ServiceType: entity.ServiceTypePhone, MonthlyPrice: 29.99,
		}},
		Customers: []entity.Customer{{
			ID: customerID, Name: "Jane Walker", Email: email, Age: 33,
			Gender: entity.GenderFemale, Country: "USA",
			SignupDate: now.AddDate(0, -8, 0), CustomerSegment: entity.SegmentStandard,
		}},
		Subscriptions: []entity.Subscription{{
			ID: uuid.New().String(), CustomerID: customerID, ServiceID: serviceID,
			StartDate: now.AddDate(0, -8, 0), MonthlyCharges: 29.99, TotalCharges: 239.92,
			PaymentMethod: entity.PaymentMethodBankTransfer, IsActive: true,
		}},
		UsageMetrics: []entity.UsageMetric{{
			ID: uuid.New().String(), CustomerID: customerID,
			RecordDate: now.AddDate(0, -1, 0), SatisfactionScore: 8,
		}},
		Payments: []entity.Payment{{
			ID: uuid.New().String(), CustomerID: customerID,
			PaymentDate: now.AddDate(0, -1, 0), Amount: 29.99, Status: entity.PaymentStatusSuccess,
		}},
	}
}

// A duplicate email is swallowed, and the duplicate customer's dependent
// rows are dropped with it so nothing dangles.
func TestInsertDatasetSkipsDuplicateEmails(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewDatasetRepository(db)

	if err := repo.InsertDataset(smallDataset("jane@test.com")); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if err := repo.InsertDataset(smallDataset("jane@test.com")); err != nil {
		t.Fatalf("second insert should swallow the email conflict: %v", err)
	}

	counts, err := repo.Counts()
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if counts.Customers != 1 {
		t.Fatalf("expected 1 customer after duplicate insert, got %d", counts.Customers)
	}
	if counts.Subscriptions != 1 || counts.UsageMetrics != 1 || counts.Payments != 1 {
		t.Fatalf("dependent rows of the skipped customer leaked: %+v", counts)
	}
	// the catalog is not deduplicated; both inserts land
	if counts.Services != 2 {
		t.Fatalf("expected 2 services, got %d", counts.Services)
	}
}

func TestInsertGeneratedDatasetAndWipe(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewDatasetRepository(db)

	ds := generator.New(42).Generate(50)
	if err := repo.InsertDataset(ds); err != nil {
		t.Fatalf("InsertDataset: %v", err)
	}

	counts, err := repo.Counts()
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if counts.Customers != 50 || counts.Subscriptions != 50 {
		t.Fatalf("unexpected counts after seed: %+v", counts)
	}
	if counts.UsageMetrics == 0 || counts.Payments == 0 {
		t.Fatalf("expected usage and payment rows: %+v", counts)
	}

	if err := repo.Wipe(); err != nil {
		t.Fatalf("Wipe: %v", err)
	}
	counts, err = repo.Counts()
	if err != nil {
		t.Fatalf("Counts after wipe: %v", err)
	}
	if counts.Customers != 0 || counts.Services != 0 || counts.Payments != 0 {
		t.Fatalf("wipe left rows behind: %+v", counts)
	}
}
