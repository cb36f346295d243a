package generator

import "github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/churn/entity"

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
	"Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan",
	"Joseph", "Jessica", "Thomas", "Sarah", "Charles", "Karen", "Daniel",
	"Lisa", "Matthew", "Nancy", "Anthony", "Betty", "Mark", "Sandra",
	"Steven", "Ashley", "Andrew", "Emily", "Paul", "Donna", "Joshua",
	"Michelle", "Kevin", "Carol", "Brian", "Amanda",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark",
	"Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen", "King",
	"Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
}

// cities paired index-wise with states
var cities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
	"Philadelphia", "San Antonio", "San Diego", "Dallas", "Austin",
	"Seattle", "Denver", "Boston", "Atlanta", "Miami",
}

var states = []string{
	"NY", "CA", "IL", "TX", "AZ",
	"PA", "TX", "CA", "TX", "TX",
	"WA", "CO", "MA", "GA", "FL",
}

var genders = []string{entity.GenderMale, entity.GenderFemale, entity.GenderOther}

var paymentMethods = []string{
	entity.PaymentMethodCreditCard,
	entity.PaymentMethodBankTransfer,
	entity.PaymentMethodElectronicCheck,
	entity.PaymentMethodMailedCheck,
}

var churnReasons = []string{
	entity.ChurnReasonPrice,
	entity.ChurnReasonQuality,
	entity.ChurnReasonCompetitor,
	entity.ChurnReasonRelocation,
	entity.ChurnReasonSupport,
	entity.ChurnReasonNoLongerUse,
}

// DefaultServices is the fixed service catalog seeded before customers.
func DefaultServices() []entity.Service {
	return []entity.Service{
		{ServiceName: "Basic Internet 100", ServiceType: entity.ServiceTypeInternet, MonthlyPrice: 49.99, SetupFee: 49.00, ContractLengthMonths: 12},
		{ServiceName: "Fiber Internet Gigabit", ServiceType: entity.ServiceTypeInternet, MonthlyPrice: 89.99, SetupFee: 99.00, ContractLengthMonths: 24},
		{ServiceName: "Unlimited Phone", ServiceType: entity.ServiceTypePhone, MonthlyPrice: 29.99, SetupFee: 0, ContractLengthMonths: 12},
		{ServiceName: "TV Standard", ServiceType: entity.ServiceTypeTV, MonthlyPrice: 59.99, SetupFee: 25.00, ContractLengthMonths: 12},
		{ServiceName: "TV Premium", ServiceType: entity.ServiceTypeTV, MonthlyPrice: 79.99, SetupFee: 25.00, ContractLengthMonths: 24},
		{ServiceName: "Triple Play Bundle", ServiceType: entity.ServiceTypeBundle, MonthlyPrice: 129.99, SetupFee: 75.00, ContractLengthMonths: 24},
	}
}
