package entity

import "gorm.io/gorm"

// AutoMigrate migrates all churn tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// reference data
		&Service{},
		&Customer{},

		// fact tables
		&Subscription{},
		&UsageMetric{},
		&Payment{},
	)
}
