package core

// Two recurrence taxonomies exist and are deliberately kept apart:
// subscriptions bill on a BillingCycle, passive income arrives on a
// Frequency. They share constants but not code paths.

const (
	// Average weeks per month.
	weeksPerMonth = 4.33
	// Average bi-week periods per month.
	biweeksPerMonth = 2.17

	weeksPerYear   = 52.0
	biweeksPerYear = 26.0
)

type (
	// BillingCycle is the recurrence unit of a subscription.
	BillingCycle string

	// Frequency is the recurrence unit of a passive-income entry.
	Frequency string
)

const (
	CycleMonthly BillingCycle = "monthly"
	CycleYearly  BillingCycle = "yearly"
	CycleWeekly  BillingCycle = "weekly"
)

const (
	FreqMonthly   Frequency = "monthly"
	FreqAnnually  Frequency = "annually"
	FreqQuarterly Frequency = "quarterly"
	FreqWeekly    Frequency = "weekly"
	FreqBiWeekly  Frequency = "bi-weekly"
)

// MonthlyPrice normalizes a subscription price to its monthly equivalent.
// Unrecognized cycles contribute zero rather than failing.
func (c BillingCycle) MonthlyPrice(price float64) float64 {
	switch c {
	case CycleMonthly:
		return price
	case CycleYearly:
		return price / 12
	case CycleWeekly:
		return price * weeksPerMonth
	}
	return 0
}

// YearlyPrice normalizes a subscription price to its yearly equivalent.
// The weekly path uses 52 weeks directly, not 12x the monthly figure.
func (c BillingCycle) YearlyPrice(price float64) float64 {
	switch c {
	case CycleMonthly:
		return price * 12
	case CycleYearly:
		return price
	case CycleWeekly:
		return price * weeksPerYear
	}
	return 0
}

// MonthlyAmount normalizes a passive-income amount to its monthly
// equivalent. Unrecognized frequencies contribute zero.
func (f Frequency) MonthlyAmount(amount float64) float64 {
	switch f {
	case FreqMonthly:
		return amount
	case FreqAnnually:
		return amount / 12
	case FreqQuarterly:
		return amount / 3
	case FreqWeekly:
		return amount * weeksPerMonth
	case FreqBiWeekly:
		return amount * biweeksPerMonth
	}
	return 0
}

// AnnualAmount normalizes a passive-income amount to its annual equivalent.
// Weekly and bi-weekly use their own whole-year multipliers, so the annual
// figure is not exactly 12x the monthly one for those frequencies.
func (f Frequency) AnnualAmount(amount float64) float64 {
	switch f {
	case FreqMonthly:
		return amount * 12
	case FreqAnnually:
		return amount
	case FreqQuarterly:
		return amount * 4
	case FreqWeekly:
		return amount * weeksPerYear
	case FreqBiWeekly:
		return amount * biweeksPerYear
	}
	return 0
}
