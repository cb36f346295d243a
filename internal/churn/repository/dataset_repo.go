package repository

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/churn/entity"
	"github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/churn/generator"
)

const insertBatchSize = 500

// DatasetRepository owns bulk seeding of the churn tables.
type DatasetRepository struct {
	db *gorm.DB
}

func NewDatasetRepository(db *gorm.DB) *DatasetRepository {
	return &DatasetRepository{db: db}
}

// TableCounts row counts per table after a seed run
type TableCounts struct {
	Services      int64 `json:"services"`
	Customers     int64 `json:"customers"`
	Subscriptions int64 `json:"subscriptions"`
	UsageMetrics  int64 `json:"usage_metrics"`
	Payments      int64 `json:"payments"`
}

// InsertDataset bulk-inserts a generated dataset inside one transaction.
// Customers colliding on email are skipped silently, and their dependent
// rows are dropped with them so referential integrity holds on re-runs.
// Every other constraint violation aborts the transaction.
func (r *DatasetRepository) InsertDataset(ds *generator.Dataset) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(ds.Services) > 0 {
			if err := tx.CreateInBatches(ds.Services, insertBatchSize).Error; err != nil {
				return fmt.Errorf("insert services: %w", err)
			}
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).CreateInBatches(ds.Customers, insertBatchSize).Error; err != nil {
			return fmt.Errorf("insert customers: %w", err)
		}

		inserted, err := insertedCustomerIDs(tx, ds.Customers)
		if err != nil {
			return fmt.Errorf("resolve inserted customers: %w", err)
		}

		subs := filterByCustomer(ds.Subscriptions, inserted, func(s entity.Subscription) string { return s.CustomerID })
		if len(subs) > 0 {
			if err := tx.CreateInBatches(subs, insertBatchSize).Error; err != nil {
				return fmt.Errorf("insert subscriptions: %w", err)
			}
		}

		metrics := filterByCustomer(ds.UsageMetrics, inserted, func(m entity.UsageMetric) string { return m.CustomerID })
		if len(metrics) > 0 {
			if err := tx.CreateInBatches(metrics, insertBatchSize).Error; err != nil {
				return fmt.Errorf("insert usage metrics: %w", err)
			}
		}

		payments := filterByCustomer(ds.Payments, inserted, func(p entity.Payment) string { return p.CustomerID })
		if len(payments) > 0 {
			if err := tx.CreateInBatches(payments, insertBatchSize).Error; err != nil {
				return fmt.Errorf("insert payments: %w", err)
			}
		}

		return nil
	})
}

// insertedCustomerIDs returns which of the generated customer IDs survived
// the skip-on-conflict insert.
func insertedCustomerIDs(tx *gorm.DB, customers []entity.Customer) (map[string]bool, error) {
	ids := make([]string, 0, len(customers))
	for _, c := range customers {
		ids = append(ids, c.ID)
	}
	var existing []string
	if err := tx.Model(&entity.Customer{}).Where("id IN ?", ids).Pluck("id", &existing).Error; err != nil {
		return nil, err
	}
	inserted := make(map[string]bool, len(existing))
	for _, id := range existing {
		inserted[id] = true
	}
	return inserted, nil
}

func filterByCustomer[T any](rows []T, inserted map[string]bool, customerID func(T) string) []T {
	kept := rows[:0:0]
	for _, row := range rows {
		if inserted[customerID(row)] {
			kept = append(kept, row)
		}
	}
	return kept
}

// Wipe deletes all churn rows, children first.
func (r *DatasetRepository) Wipe() error {
	for _, table := range []string{"payments", "usage_metrics", "subscriptions", "customers", "services"} {
		if err := r.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("wipe %s: %w", table, err)
		}
	}
	return nil
}

// Counts reports per-table row counts.
func (r *DatasetRepository) Counts() (*TableCounts, error) {
	counts := &TableCounts{}
	for _, c := range []struct {
		model interface{}
		dst   *int64
	}{
		{&entity.Service{}, &counts.Services},
		{&entity.Customer{}, &counts.Customers},
		{&entity.Subscription{}, &counts.Subscriptions},
		{&entity.UsageMetric{}, &counts.UsageMetrics},
		{&entity.Payment{}, &counts.Payments},
	} {
		if err := r.db.Model(c.model).Count(c.dst).Error; err != nil {
			return nil, err
		}
	}
	return counts, nil
}
