package core

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestBillingCycleMonthlyPrice(t *testing.T) {
	cases := []struct {
		cycle BillingCycle
		price float64
		want  float64
	}{
		{CycleMonthly, 10, 10},
		{CycleYearly, 120, 10},
		{CycleWeekly, 10, 43.3},
		{BillingCycle("daily"), 10, 0}, // unrecognized cycle contributes nothing
		{BillingCycle(""), 10, 0},
	}
	for i, tc := range cases {
		got := tc.cycle.MonthlyPrice(tc.price)
		if !almostEqual(got, tc.want, 1e-9) {
			t.Fatalf("case %d (%s): got %v, want %v", i, tc.cycle, got, tc.want)
		}
	}
}

func TestBillingCycleYearlyPrice(t *testing.T) {
	cases := []struct {
		cycle BillingCycle
		price float64
		want  float64
	}{
		{CycleMonthly, 10, 120},
		{CycleYearly, 120, 120},
		{CycleWeekly, 10, 520},
		{BillingCycle("biannual"), 10, 0},
	}
	for i, tc := range cases {
		got := tc.cycle.YearlyPrice(tc.price)
		if !almostEqual(got, tc.want, 1e-9) {
			t.Fatalf("case %d (%s): got %v, want %v", i, tc.cycle, got, tc.want)
		}
	}
}

func TestWeeklySubscriptionScenario(t *testing.T) {
	// $9.99 weekly: monthly via 4.33 weeks/month, yearly via 52 weeks.
	monthly := CycleWeekly.MonthlyPrice(9.99)
	if !almostEqual(monthly, 43.26, 0.01) {
		t.Fatalf("monthly: got %v, want ~43.26", monthly)
	}
	yearly := CycleWeekly.YearlyPrice(9.99)
	if !almostEqual(yearly, 519.48, 1e-9) {
		t.Fatalf("yearly: got %v, want 519.48", yearly)
	}
}

func TestFrequencyMonthlyAmount(t *testing.T) {
	cases := []struct {
		freq   Frequency
		amount float64
		want   float64
	}{
		{FreqMonthly, 100, 100},
		{FreqAnnually, 1200, 100},
		{FreqQuarterly, 300, 100},
		{FreqWeekly, 100, 433},
		{FreqBiWeekly, 100, 217},
		{Frequency("daily"), 100, 0},
		{Frequency(""), 100, 0},
	}
	for i, tc := range cases {
		got := tc.freq.MonthlyAmount(tc.amount)
		if !almostEqual(got, tc.want, 1e-9) {
			t.Fatalf("case %d (%s): got %v, want %v", i, tc.freq, got, tc.want)
		}
	}
}

func TestFrequencyAnnualAmount(t *testing.T) {
	cases := []struct {
		freq   Frequency
		amount float64
		want   float64
	}{
		{FreqMonthly, 100, 1200},
		{FreqAnnually, 100, 100},
		{FreqQuarterly, 100, 400},
		{FreqWeekly, 100, 5200},
		{FreqBiWeekly, 100, 2600},
		{Frequency("hourly"), 100, 0},
	}
	for i, tc := range cases {
		got := tc.freq.AnnualAmount(tc.amount)
		if !almostEqual(got, tc.want, 1e-9) {
			t.Fatalf("case %d (%s): got %v, want %v", i, tc.freq, got, tc.want)
		}
	}
}

// Monthly, annually and quarterly round-trip exactly: monthly equivalent
// times 12 equals the annual equivalent. Weekly and bi-weekly do NOT: each
// path uses its own documented multiplier (4.33/2.17 vs 52/26), so the two
// figures intentionally diverge.
func TestFrequencyRoundTrip(t *testing.T) {
	exact := []Frequency{FreqMonthly, FreqAnnually, FreqQuarterly}
	for _, f := range exact {
		monthly := f.MonthlyAmount(90) * 12
		annual := f.AnnualAmount(90)
		if !almostEqual(monthly, annual, 1e-9) {
			t.Fatalf("%s: monthly*12=%v, annual=%v", f, monthly, annual)
		}
	}

	approx := []Frequency{FreqWeekly, FreqBiWeekly}
	for _, f := range approx {
		monthly := f.MonthlyAmount(90) * 12
		annual := f.AnnualAmount(90)
		if almostEqual(monthly, annual, 1e-9) {
			t.Fatalf("%s: expected divergent paths, both gave %v", f, monthly)
		}
	}

	// Each approximate path pins to its own constant.
	if got := FreqWeekly.MonthlyAmount(1); got != 4.33 {
		t.Fatalf("weekly monthly factor: got %v, want 4.33", got)
	}
	if got := FreqBiWeekly.MonthlyAmount(1); got != 2.17 {
		t.Fatalf("bi-weekly monthly factor: got %v, want 2.17", got)
	}
	if got := FreqWeekly.AnnualAmount(1); got != 52 {
		t.Fatalf("weekly annual factor: got %v, want 52", got)
	}
	if got := FreqBiWeekly.AnnualAmount(1); got != 26 {
		t.Fatalf("bi-weekly annual factor: got %v, want 26", got)
	}
}
