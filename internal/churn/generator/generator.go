package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/churn/entity"
)

// Distributional constants. These are fixed policy, not configuration.
const (
	DefaultCustomerCount = 1000

	// signup falls uniformly between 30 and ~3 years + 30 days ago
	signupMinDaysAgo = 30
	signupMaxDaysAgo = 30 + 3*365

	// chained-threshold segment assignment: the Standard draw only happens
	// for customers that miss the Premium draw, so the effective split is
	// 20% / 32% / 48%, not 20% / 40% / 40%.
	premiumProb  = 0.20
	standardProb = 0.40

	churnProb        = 0.27
	churnMinDays     = 30
	churnMaxDays     = 530
	usageEmitProb    = 0.80
	usageNullProb    = 0.10
	usageWindowMonth = 12

	paymentSuccessProb = 0.85
	paymentFailedProb  = 0.10 // remainder after Success and Failed is Pending
	lateFeeProb        = 0.15
	lateFeeRate        = 0.05
)

// Dataset is a fully generated, referentially consistent set of rows ready
// for bulk insertion.
type Dataset struct {
	Services      []entity.Service
	Customers     []entity.Customer
	Subscriptions []entity.Subscription
	UsageMetrics  []entity.UsageMetric
	Payments      []entity.Payment
}

// Generator produces synthetic churn data from fixed distributional rules.
// All randomness flows through a single seeded source so runs are
// reproducible.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

func New(seed int64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now(),
	}
}

// Now returns the reference time the generator anchors its windows on.
func (g *Generator) Now() time.Time {
	return g.now
}

// Generate builds the full dataset: catalog, customers, one subscription
// per customer, monthly usage rows and monthly payments.
func (g *Generator) Generate(customerCount int) *Dataset {
	if customerCount <= 0 {
		customerCount = DefaultCustomerCount
	}

	ds := &Dataset{Services: DefaultServices()}
	for i := range ds.Services {
		ds.Services[i].ID = uuid.New().String()
	}

	for i := 0; i < customerCount; i++ {
		customer := g.generateCustomer(i)
		ds.Customers = append(ds.Customers, customer)

		sub := g.generateSubscription(&customer, ds.Services)
		ds.Subscriptions = append(ds.Subscriptions, sub)

		ds.UsageMetrics = append(ds.UsageMetrics, g.generateUsage(&customer, &sub)...)
		ds.Payments = append(ds.Payments, g.generatePayments(&customer, &sub)...)
	}

	return ds
}

func (g *Generator) generateCustomer(seq int) entity.Customer {
	first := firstNames[g.rng.Intn(len(firstNames))]
	last := lastNames[g.rng.Intn(len(lastNames))]
	loc := g.rng.Intn(len(cities))

	return entity.Customer{
		ID:    uuid.New().String(),
		Name:  first + " " + last,
		Email: fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), seq),
		Phone: fmt.Sprintf("+1-%03d-%03d-%04d", g.intBetween(200, 999), g.intBetween(200, 999), g.rng.Intn(10000)),
		Age:   g.intBetween(18, 100),

		Gender:          genders[g.rng.Intn(len(genders))],
		City:            cities[loc],
		State:           states[loc],
		Country:         "USA",
		SignupDate:      g.now.AddDate(0, 0, -g.intBetween(signupMinDaysAgo, signupMaxDaysAgo)),
		CustomerSegment: g.pickSegment(),
	}
}

// pickSegment reproduces the sequential threshold assignment: a customer
// that misses the Premium draw gets an independent Standard draw.
func (g *Generator) pickSegment() string {
	if g.rng.Float64() < premiumProb {
		return entity.SegmentPremium
	}
	if g.rng.Float64() < standardProb {
		return entity.SegmentStandard
	}
	return entity.SegmentBasic
}

func (g *Generator) generateSubscription(c *entity.Customer, services []entity.Service) entity.Subscription {
	svc := services[g.rng.Intn(len(services))]
	start := c.SignupDate

	sub := entity.Subscription{
		ID:               uuid.New().String(),
		CustomerID:       c.ID,
		ServiceID:        svc.ID,
		StartDate:        start,
		MonthlyCharges:   svc.MonthlyPrice,
		PaymentMethod:    paymentMethods[g.rng.Intn(len(paymentMethods))],
		PaperlessBilling: g.rng.Float64() < 0.5,
		IsActive:         true,
	}

	if g.rng.Float64() < churnProb {
		churn := start.AddDate(0, 0, g.intBetween(churnMinDays, churnMaxDays))
		sub.ChurnDate = &churn
		sub.ChurnReason = churnReasons[g.rng.Intn(len(churnReasons))]
		sub.IsActive = false
	}

	sub.TotalCharges = sub.MonthlyCharges * float64(billableMonths(start, sub.ChurnDate, g.now))
	return sub
}

// billableMonths is the whole months elapsed from start to churn-or-now,
// floored at one month. The floor is the billing policy for zero or
// negative elapsed time.
func billableMonths(start time.Time, churn *time.Time, now time.Time) int {
	end := now
	if churn != nil {
		end = *churn
	}
	months := int(end.Sub(start).Hours() / 24 / 30)
	if months < 1 {
		months = 1
	}
	return months
}

// generateUsage emits one row per calendar month in the intersection of
// the subscription's lifetime and the trailing 12-month window. Each month
// is emitted with 80% probability, and data_usage_gb is independently
// nulled 10% of the time; the two missingness mechanisms are separate
// draws on the same row.
func (g *Generator) generateUsage(c *entity.Customer, sub *entity.Subscription) []entity.UsageMetric {
	windowStart := g.now.AddDate(0, -usageWindowMonth, 0)
	if sub.StartDate.After(windowStart) {
		windowStart = sub.StartDate
	}
	windowEnd := g.now
	if sub.ChurnDate != nil && sub.ChurnDate.Before(windowEnd) {
		windowEnd = *sub.ChurnDate
	}

	var metrics []entity.UsageMetric
	for month := firstOfMonth(windowStart); !month.After(windowEnd); month = month.AddDate(0, 1, 0) {
		if g.rng.Float64() >= usageEmitProb {
			continue
		}

		m := entity.UsageMetric{
			ID:             uuid.New().String(),
			CustomerID:     c.ID,
			RecordDate:     month,
			CallMinutes:    g.rng.Intn(2000),
			SupportTickets: g.rng.Intn(6),
			WebsiteVisits:  g.rng.Intn(50),
			AppLogins:      g.rng.Intn(60),
		}

		if g.rng.Float64() >= usageNullProb {
			usage := 1 + g.rng.Float64()*499
			m.DataUsageGB = &usage
		}

		// satisfaction collapses in the 30 days before churn
		if sub.ChurnDate != nil && month.After(sub.ChurnDate.AddDate(0, 0, -30)) {
			m.SatisfactionScore = g.intBetween(1, 3)
		} else {
			m.SatisfactionScore = g.intBetween(3, 10)
		}

		metrics = append(metrics, m)
	}
	return metrics
}

// generatePayments emits one payment per month from subscription start to
// churn-or-now: 85% Success, 10% Failed, 5% Pending, with a 5% late fee
// applied 15% of the time.
func (g *Generator) generatePayments(c *entity.Customer, sub *entity.Subscription) []entity.Payment {
	end := g.now
	if sub.ChurnDate != nil && sub.ChurnDate.Before(end) {
		end = *sub.ChurnDate
	}

	var payments []entity.Payment
	for due := sub.StartDate; !due.After(end); due = due.AddDate(0, 1, 0) {
		p := entity.Payment{
			ID:          uuid.New().String(),
			CustomerID:  c.ID,
			PaymentDate: due,
			Amount:      sub.MonthlyCharges,
			Status:      g.pickPaymentStatus(),
		}
		if g.rng.Float64() < lateFeeProb {
			p.LateFee = p.Amount * lateFeeRate
		}
		payments = append(payments, p)
	}
	return payments
}

func (g *Generator) pickPaymentStatus() string {
	r := g.rng.Float64()
	switch {
	case r < paymentSuccessProb:
		return entity.PaymentStatusSuccess
	case r < paymentSuccessProb+paymentFailedProb:
		return entity.PaymentStatusFailed
	default:
		return entity.PaymentStatusPending
	}
}

// intBetween returns a uniform int in [lo, hi].
func (g *Generator) intBetween(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
