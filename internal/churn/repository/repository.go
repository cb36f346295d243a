package repository

import "gorm.io/gorm"

// Repositories churn data access collection
type Repositories struct {
	Customer  *CustomerRepository
	Catalog   *CatalogRepository
	Dataset   *DatasetRepository
	Analytics *AnalyticsRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Customer:  NewCustomerRepository(db),
		Catalog:   NewCatalogRepository(db),
		Dataset:   NewDatasetRepository(db),
		Analytics: NewAnalyticsRepository(db),
	}
}
