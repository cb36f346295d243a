package generator

import (
	"testing"
	"time"

	"github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/churn/entity"
)

func TestGenerateCounts(t *testing.T) {
	g := New(42)
	ds := g.Generate(500)

	if len(ds.Customers) != 500 {
		t.Fatalf("expected 500 customers, got %d", len(ds.Customers))
	}
	if len(ds.Subscriptions) != 500 {
		t.Fatalf("expected one subscription per customer, got %d", len(ds.Subscriptions))
	}
	if len(ds.Services) == 0 {
		t.Fatal("expected a non-empty service catalog")
	}
	if len(ds.UsageMetrics) == 0 || len(ds.Payments) == 0 {
		t.Fatal("expected usage metrics and payments to be generated")
	}
}

func TestCustomerFieldBounds(t *testing.T) {
	g := New(42)
	ds := g.Generate(1000)

	seen := make(map[string]bool)
	for _, c := range ds.Customers {
		if c.Age < 18 || c.Age > 100 {
			t.Fatalf("customer %s age out of range: %d", c.ID, c.Age)
		}
		if seen[c.Email] {
			t.Fatalf("duplicate email generated: %s", c.Email)
		}
		seen[c.Email] = true
		if c.Country != "USA" {
			t.Fatalf("unexpected country: %s", c.Country)
		}

		daysAgo := g.Now().Sub(c.SignupDate).Hours() / 24
		if daysAgo < signupMinDaysAgo-1 || daysAgo > signupMaxDaysAgo+1 {
			t.Fatalf("signup date outside window: %.0f days ago", daysAgo)
		}

		switch c.CustomerSegment {
		case entity.SegmentPremium, entity.SegmentStandard, entity.SegmentBasic:
		default:
			t.Fatalf("unexpected segment: %s", c.CustomerSegment)
		}
	}
}

// The segment split comes from two chained draws, so the effective
// proportions are 20% / 32% / 48%, not the 20/20/60 a single-draw
// threshold reading of the constants would give.
func TestSegmentDistributionMatchesChainedThresholds(t *testing.T) {
	g := New(7)
	ds := g.Generate(20000)

	counts := make(map[string]int)
	for _, c := range ds.Customers {
		counts[c.CustomerSegment]++
	}

	total := float64(len(ds.Customers))
	assertFraction(t, "Premium", float64(counts[entity.SegmentPremium])/total, 0.20, 0.02)
	assertFraction(t, "Standard", float64(counts[entity.SegmentStandard])/total, 0.32, 0.02)
	assertFraction(t, "Basic", float64(counts[entity.SegmentBasic])/total, 0.48, 0.02)
}

func TestChurnAssignment(t *testing.T) {
	g := New(11)
	ds := g.Generate(20000)

	churned := 0
	for _, s := range ds.Subscriptions {
		if s.ChurnDate == nil {
			if !s.IsActive || s.ChurnReason != "" {
				t.Fatalf("active subscription %s carries churn attributes", s.ID)
			}
			continue
		}
		churned++
		if s.IsActive {
			t.Fatalf("churned subscription %s still marked active", s.ID)
		}
		if s.ChurnReason == "" {
			t.Fatalf("churned subscription %s has no reason", s.ID)
		}
		offset := s.ChurnDate.Sub(s.StartDate).Hours() / 24
		if offset < churnMinDays-1 || offset > churnMaxDays+1 {
			t.Fatalf("churn offset outside [30,530]: %.0f days", offset)
		}
	}

	assertFraction(t, "churn rate", float64(churned)/float64(len(ds.Subscriptions)), churnProb, 0.02)
}

func TestBillableMonthsFloor(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name  string
		start time.Time
		churn *time.Time
		want  int
	}{
		{"started today", now, nil, 1},
		{"under one month", now.AddDate(0, 0, -29), nil, 1},
		{"two months", now.AddDate(0, 0, -61), nil, 2},
		{"one year", now.AddDate(0, 0, -365), nil, 12},
	}
	churn := now.AddDate(0, 0, -100)
	start := now.AddDate(0, 0, -400)
	cases = append(cases, struct {
		name  string
		start time.Time
		churn *time.Time
		want  int
	}{"churned caps the window", start, &churn, 10})

	for _, tc := range cases {
		if got := billableMonths(tc.start, tc.churn, now); got != tc.want {
			t.Errorf("%s: billableMonths = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestTotalChargesMatchesBillableMonths(t *testing.T) {
	g := New(3)
	ds := g.Generate(2000)

	for _, s := range ds.Subscriptions {
		want := s.MonthlyCharges * float64(billableMonths(s.StartDate, s.ChurnDate, g.Now()))
		if s.TotalCharges != want {
			t.Fatalf("subscription %s total_charges = %.2f, want %.2f", s.ID, s.TotalCharges, want)
		}
		if s.TotalCharges < s.MonthlyCharges {
			t.Fatalf("total_charges below the one-month floor: %.2f < %.2f", s.TotalCharges, s.MonthlyCharges)
		}
	}
}

func TestUsageMetricRules(t *testing.T) {
	g := New(5)
	ds := g.Generate(5000)

	subByCustomer := make(map[string]entity.Subscription)
	for _, s := range ds.Subscriptions {
		subByCustomer[s.CustomerID] = s
	}

	seen := make(map[string]bool)
	nulls := 0
	windowStart := firstOfMonth(g.Now().AddDate(0, -usageWindowMonth, 0))
	for _, m := range ds.UsageMetrics {
		key := m.CustomerID + m.RecordDate.Format("2006-01")
		if seen[key] {
			t.Fatalf("duplicate (customer, month) usage row: %s", key)
		}
		seen[key] = true

		if m.SatisfactionScore < 1 || m.SatisfactionScore > 10 {
			t.Fatalf("satisfaction out of range: %d", m.SatisfactionScore)
		}
		if m.RecordDate.Before(windowStart) {
			t.Fatalf("usage row before the 12-month window: %s", m.RecordDate)
		}
		if m.RecordDate.After(g.Now()) {
			t.Fatalf("usage row in the future: %s", m.RecordDate)
		}

		sub := subByCustomer[m.CustomerID]
		if sub.ChurnDate != nil {
			if m.RecordDate.After(*sub.ChurnDate) {
				t.Fatalf("usage row after churn: %s > %s", m.RecordDate, sub.ChurnDate)
			}
			// scores collapse to 1-3 in the final 30 days
			if m.RecordDate.After(sub.ChurnDate.AddDate(0, 0, -30)) && m.SatisfactionScore > 3 {
				t.Fatalf("pre-churn satisfaction too high: %d", m.SatisfactionScore)
			}
		}

		if m.DataUsageGB == nil {
			nulls++
		} else if *m.DataUsageGB <= 0 {
			t.Fatalf("non-positive data usage: %f", *m.DataUsageGB)
		}
	}

	assertFraction(t, "data_usage_gb null rate", float64(nulls)/float64(len(ds.UsageMetrics)), usageNullProb, 0.02)
}

func TestPaymentRules(t *testing.T) {
	g := New(9)
	ds := g.Generate(5000)

	subByCustomer := make(map[string]entity.Subscription)
	for _, s := range ds.Subscriptions {
		subByCustomer[s.CustomerID] = s
	}

	statusCount := make(map[string]int)
	lateFees := 0
	for _, p := range ds.Payments {
		sub := subByCustomer[p.CustomerID]
		if p.Amount != sub.MonthlyCharges {
			t.Fatalf("payment amount %.2f does not match monthly charges %.2f", p.Amount, sub.MonthlyCharges)
		}
		if p.PaymentDate.Before(sub.StartDate) {
			t.Fatalf("payment before subscription start")
		}
		end := g.Now()
		if sub.ChurnDate != nil && sub.ChurnDate.Before(end) {
			end = *sub.ChurnDate
		}
		if p.PaymentDate.After(end) {
			t.Fatalf("payment after churn-or-now")
		}

		statusCount[p.Status]++
		if p.LateFee != 0 {
			lateFees++
			if diff := p.LateFee - p.Amount*lateFeeRate; diff > 0.0001 || diff < -0.0001 {
				t.Fatalf("late fee %.4f is not 5%% of %.2f", p.LateFee, p.Amount)
			}
		}
	}

	total := float64(len(ds.Payments))
	assertFraction(t, "Success", float64(statusCount[entity.PaymentStatusSuccess])/total, 0.85, 0.02)
	assertFraction(t, "Failed", float64(statusCount[entity.PaymentStatusFailed])/total, 0.10, 0.02)
	assertFraction(t, "Pending", float64(statusCount[entity.PaymentStatusPending])/total, 0.05, 0.02)
	assertFraction(t, "late fee rate", float64(lateFees)/total, lateFeeProb, 0.02)
}

func TestDeterministicForSameSeed(t *testing.T) {
	a := New(123).Generate(100)
	b := New(123).Generate(100)

	for i := range a.Customers {
		if a.Customers[i].Email != b.Customers[i].Email ||
			a.Customers[i].CustomerSegment != b.Customers[i].CustomerSegment {
			t.Fatalf("same seed produced different customers at index %d", i)
		}
	}
}

func assertFraction(t *testing.T, name string, got, want, tolerance float64) {
	t.Helper()
	if got < want-tolerance || got > want+tolerance {
		t.Fatalf("%s fraction = %.4f, want %.2f +/- %.2f", name, got, want, tolerance)
	}
}
