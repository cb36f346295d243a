package handler

import (
	"github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/churn/service"
)

// Handlers churn handler collection
type Handlers struct {
	Customer  *CustomerHandler
	Analytics *AnalyticsHandler
	Admin     *AdminHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Customer:  NewCustomerHandler(services.Customer),
		Analytics: NewAnalyticsHandler(services.Analytics, services.Export),
		Admin:     NewAdminHandler(services.Seed),
	}
}
