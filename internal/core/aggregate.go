package core

import (
	"context"
	"fmt"
)

// RateProvider resolves a directed currency pair to a multiplicative rate.
// ok reports whether a rate is known for the pair; a miss is an expected
// outcome, not an error. Errors are I/O failures and abort the aggregation.
type RateProvider interface {
	Rate(ctx context.Context, from, to Currency) (rate float64, ok bool, err error)
}

// Records is the raw per-category input for one household, already fetched
// from storage. The aggregator reads it and creates nothing.
type Records struct {
	Properties     []Property
	BankAccounts   []BankAccount
	Vehicles       []Vehicle
	Credits        []Credit
	Subscriptions  []Subscription
	Stocks         []Stock
	PassiveIncomes []PassiveIncome
	Investments    []Investment
}

// Aggregator folds a household's records into a FinancialSummary, converting
// every figure into one reporting currency. Each run is a single stateless
// pass; nothing is cached between invocations.
type Aggregator struct {
	rates RateProvider
}

func NewAggregator(rates RateProvider) *Aggregator {
	return &Aggregator{rates: rates}
}

// toReporting converts an amount from a record's currency into the reporting
// currency. Same currency converts at exactly 1 without a lookup. When the
// provider has no rate for the pair, the raw amount is kept as-is: a missing
// rate silently mixes currencies rather than dropping the record. Provider
// errors abort.
func (a *Aggregator) toReporting(ctx context.Context, amount float64, from, reporting Currency) (float64, error) {
	from = from.OrDefault()
	if from == reporting {
		return amount, nil
	}
	rate, ok, err := a.rates.Rate(ctx, from, reporting)
	if err != nil {
		return 0, fmt.Errorf("rate %s->%s: %w", from, reporting, err)
	}
	if !ok {
		return amount, nil
	}
	return Convert(amount, rate), nil
}

// Summarize walks every category once, accumulating converted totals, and
// assembles the summary. Categories are processed sequentially; each
// conversion may issue its own rate lookup.
func (a *Aggregator) Summarize(ctx context.Context, recs Records, reporting Currency) (FinancialSummary, error) {
	reporting = reporting.OrDefault()
	s := FinancialSummary{Currency: reporting}

	for _, p := range recs.Properties {
		price, err := a.toReporting(ctx, p.Price, p.Currency, reporting)
		if err != nil {
			return FinancialSummary{}, fmt.Errorf("property %q: %w", p.Name, err)
		}
		expense, err := a.toReporting(ctx, p.MonthlyExpense(), p.Currency, reporting)
		if err != nil {
			return FinancialSummary{}, fmt.Errorf("property %q: %w", p.Name, err)
		}
		s.TotalProperties += price
		s.MonthlyPropertyExpenses += expense
	}

	for _, b := range recs.BankAccounts {
		amount, err := a.toReporting(ctx, b.Amount, b.Currency, reporting)
		if err != nil {
			return FinancialSummary{}, fmt.Errorf("bank account %q: %w", b.Name, err)
		}
		s.TotalBankAccounts += amount

		if b.InterestRate != 0 {
			interest, err := a.toReporting(ctx, MonthlyInterestIncome(b.Amount, b.InterestRate), b.Currency, reporting)
			if err != nil {
				return FinancialSummary{}, fmt.Errorf("bank account %q: %w", b.Name, err)
			}
			s.MonthlyInterestIncome += interest
		}
	}

	for _, v := range recs.Vehicles {
		price, err := a.toReporting(ctx, v.SalePrice, v.Currency, reporting)
		if err != nil {
			return FinancialSummary{}, fmt.Errorf("vehicle %q: %w", v.Model, err)
		}
		maint, err := a.toReporting(ctx, v.MonthlyMaintenance(), v.Currency, reporting)
		if err != nil {
			return FinancialSummary{}, fmt.Errorf("vehicle %q: %w", v.Model, err)
		}
		s.TotalVehicles += price
		s.MonthlyCarMaintenance += maint
	}

	for _, st := range recs.Stocks {
		value, err := a.toReporting(ctx, st.Value(), st.Currency, reporting)
		if err != nil {
			return FinancialSummary{}, fmt.Errorf("stock %q: %w", st.Symbol, err)
		}
		s.TotalStocks += value

		// Yield applies to the same display-price valuation as the total.
		s.AnnualDividendIncome += st.DividendOn(value)
	}

	for _, inv := range recs.Investments {
		value, err := a.toReporting(ctx, inv.Value(), inv.Currency, reporting)
		if err != nil {
			return FinancialSummary{}, fmt.Errorf("investment %q: %w", inv.Name, err)
		}
		s.TotalInvestments += value
	}

	for _, c := range recs.Credits {
		remaining, err := a.toReporting(ctx, c.RemainingAmount, c.Currency, reporting)
		if err != nil {
			return FinancialSummary{}, fmt.Errorf("credit %q: %w", c.Name, err)
		}
		payment, err := a.toReporting(ctx, c.MonthlyPayment, c.Currency, reporting)
		if err != nil {
			return FinancialSummary{}, fmt.Errorf("credit %q: %w", c.Name, err)
		}
		s.TotalLiabilities += remaining
		s.MonthlyPayments += payment
	}

	for _, sub := range recs.Subscriptions {
		monthly, err := a.toReporting(ctx, sub.BillingCycle.MonthlyPrice(sub.Price), sub.Currency, reporting)
		if err != nil {
			return FinancialSummary{}, fmt.Errorf("subscription %q: %w", sub.Name, err)
		}
		yearly, err := a.toReporting(ctx, sub.BillingCycle.YearlyPrice(sub.Price), sub.Currency, reporting)
		if err != nil {
			return FinancialSummary{}, fmt.Errorf("subscription %q: %w", sub.Name, err)
		}
		s.MonthlySubscriptions += monthly
		s.YearlySubscriptions += yearly
	}

	for _, pi := range recs.PassiveIncomes {
		monthly, err := a.toReporting(ctx, pi.Frequency.MonthlyAmount(pi.Amount), pi.Currency, reporting)
		if err != nil {
			return FinancialSummary{}, fmt.Errorf("passive income %q: %w", pi.Name, err)
		}
		s.MonthlyPassiveIncome += monthly
	}

	// Assets include both stocks and generic investments.
	s.TotalAssets = s.TotalProperties + s.TotalBankAccounts + s.TotalVehicles + s.TotalStocks + s.TotalInvestments
	s.NetWorth = s.TotalAssets - s.TotalLiabilities

	s.TotalMonthlyExpenses = s.MonthlyPayments + s.MonthlyPropertyExpenses + s.MonthlyCarMaintenance + s.MonthlySubscriptions

	s.MonthlyDividendIncome = s.AnnualDividendIncome / 12
	s.TotalMonthlyPassiveIncome = s.MonthlyInterestIncome + s.MonthlyDividendIncome + s.MonthlyPassiveIncome

	s.AssetDistribution = []AssetSlice{
		{Name: "Properties", Value: s.TotalProperties, Percentage: share(s.TotalProperties, s.TotalAssets)},
		{Name: "Bank Accounts", Value: s.TotalBankAccounts, Percentage: share(s.TotalBankAccounts, s.TotalAssets)},
		{Name: "Vehicles", Value: s.TotalVehicles, Percentage: share(s.TotalVehicles, s.TotalAssets)},
		{Name: "Stocks", Value: s.TotalStocks, Percentage: share(s.TotalStocks, s.TotalAssets)},
		{Name: "Investments", Value: s.TotalInvestments, Percentage: share(s.TotalInvestments, s.TotalAssets)},
	}

	s.Counts = CategoryCounts{
		Properties:     len(recs.Properties),
		BankAccounts:   len(recs.BankAccounts),
		Vehicles:       len(recs.Vehicles),
		Credits:        len(recs.Credits),
		Subscriptions:  len(recs.Subscriptions),
		Stocks:         len(recs.Stocks),
		PassiveIncomes: len(recs.PassiveIncomes),
		Investments:    len(recs.Investments),
	}

	return s, nil
}

// share guards the divide-by-zero when a household has no assets.
func share(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return value / total * 100
}
