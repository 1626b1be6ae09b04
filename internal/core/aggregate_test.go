package core

import (
	"context"
	"errors"
	"testing"
)

// fakeRates is an in-memory RateProvider recording every lookup.
type fakeRates struct {
	rates   map[[2]Currency]float64
	err     error
	lookups int
}

func newFakeRates(pairs map[[2]Currency]float64) *fakeRates {
	return &fakeRates{rates: pairs}
}

func (f *fakeRates) Rate(_ context.Context, from, to Currency) (float64, bool, error) {
	f.lookups++
	if f.err != nil {
		return 0, false, f.err
	}
	r, ok := f.rates[[2]Currency{from, to}]
	return r, ok, nil
}

func TestSummarizeSameCurrencyIdentity(t *testing.T) {
	rates := newFakeRates(nil)
	agg := NewAggregator(rates)

	recs := Records{
		Properties:   []Property{{Name: "Flat", Price: 100000, Currency: USD}},
		BankAccounts: []BankAccount{{Name: "Checking", Amount: 5000, Currency: USD}},
	}
	s, err := agg.Summarize(context.Background(), recs, USD)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if s.TotalProperties != 100000 || s.TotalBankAccounts != 5000 {
		t.Fatalf("totals: %v / %v", s.TotalProperties, s.TotalBankAccounts)
	}
	// Same-currency records must never hit the provider.
	if rates.lookups != 0 {
		t.Fatalf("expected 0 lookups, got %d", rates.lookups)
	}
}

func TestSummarizeEmptyCurrencyDefaultsUSD(t *testing.T) {
	rates := newFakeRates(nil)
	agg := NewAggregator(rates)

	recs := Records{BankAccounts: []BankAccount{{Name: "Checking", Amount: 100}}}
	s, err := agg.Summarize(context.Background(), recs, USD)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if s.TotalBankAccounts != 100 {
		t.Fatalf("got %v, want 100", s.TotalBankAccounts)
	}
	if rates.lookups != 0 {
		t.Fatalf("blank currency should default to USD without a lookup, got %d lookups", rates.lookups)
	}
}

func TestSummarizeConversion(t *testing.T) {
	// €100 property with EUR->USD at 1.08 contributes $108.
	rates := newFakeRates(map[[2]Currency]float64{{EUR, USD}: 1.08})
	agg := NewAggregator(rates)

	recs := Records{Properties: []Property{{Name: "Flat", Price: 100, Currency: EUR}}}
	s, err := agg.Summarize(context.Background(), recs, USD)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if !almostEqual(s.TotalProperties, 108, 1e-9) {
		t.Fatalf("got %v, want 108", s.TotalProperties)
	}
}

// A missing rate keeps the raw amount unconverted. This mixes currencies in
// the total and is the documented degrade-gracefully behavior, not a bug.
func TestSummarizeMissingRateFallback(t *testing.T) {
	rates := newFakeRates(nil) // knows no pairs at all
	agg := NewAggregator(rates)

	recs := Records{
		Properties: []Property{{Name: "Sofia flat", Price: 300000, Currency: BGN}},
		Credits:    []Credit{{Name: "Loan", RemainingAmount: 5000, MonthlyPayment: 250, Currency: GBP}},
	}
	s, err := agg.Summarize(context.Background(), recs, USD)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if s.TotalProperties != 300000 {
		t.Fatalf("property fallback: got %v, want raw 300000", s.TotalProperties)
	}
	if s.TotalLiabilities != 5000 || s.MonthlyPayments != 250 {
		t.Fatalf("credit fallback: %v / %v", s.TotalLiabilities, s.MonthlyPayments)
	}
	if rates.lookups == 0 {
		t.Fatal("expected lookups to have been attempted")
	}
}

func TestSummarizeProviderErrorPropagates(t *testing.T) {
	rates := newFakeRates(nil)
	rates.err = errors.New("rate store down")
	agg := NewAggregator(rates)

	recs := Records{Properties: []Property{{Name: "Flat", Price: 100, Currency: EUR}}}
	_, err := agg.Summarize(context.Background(), recs, USD)
	if err == nil {
		t.Fatal("expected error, got none")
	}
	if !errors.Is(err, rates.err) {
		t.Fatalf("expected wrapped provider error, got %v", err)
	}
}

func TestSummarizeZeroAssetsDistribution(t *testing.T) {
	agg := NewAggregator(newFakeRates(nil))

	s, err := agg.Summarize(context.Background(), Records{}, USD)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if len(s.AssetDistribution) != 5 {
		t.Fatalf("expected 5 slices, got %d", len(s.AssetDistribution))
	}
	for _, slice := range s.AssetDistribution {
		if slice.Percentage != 0 {
			t.Fatalf("%s: got %v, want 0 (never NaN)", slice.Name, slice.Percentage)
		}
	}
}

func TestSummarizeBankInterest(t *testing.T) {
	agg := NewAggregator(newFakeRates(nil))

	recs := Records{BankAccounts: []BankAccount{{Name: "Savings", Amount: 10000, InterestRate: 6, Currency: USD}}}
	s, err := agg.Summarize(context.Background(), recs, USD)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if !almostEqual(s.MonthlyInterestIncome, 50, 1e-9) {
		t.Fatalf("interest: got %v, want 50", s.MonthlyInterestIncome)
	}
	if !almostEqual(s.TotalMonthlyPassiveIncome, 50, 1e-9) {
		t.Fatalf("total passive: got %v, want 50", s.TotalMonthlyPassiveIncome)
	}
}

func TestSummarizeMixedHousehold(t *testing.T) {
	rates := newFakeRates(map[[2]Currency]float64{
		{EUR, USD}: 1.08,
		{GBP, USD}: 1.27,
	})
	agg := NewAggregator(rates)

	recs := Records{
		Properties: []Property{
			{Name: "House", Price: 200000, MaintenanceAmount: 100, YearlyTax: 1200, Currency: USD},
			{Name: "Flat", Price: 100000, Currency: EUR}, // 108000 USD
		},
		BankAccounts: []BankAccount{
			{Name: "Savings", Amount: 10000, InterestRate: 6, Currency: USD}, // 50/mo interest
		},
		Vehicles: []Vehicle{
			{Model: "Corolla", SalePrice: 12000, MaintenanceCosts: 600, Currency: USD}, // 50/mo
		},
		Credits: []Credit{
			{Name: "Mortgage", TotalAmount: 250000, RemainingAmount: 200000, MonthlyPayment: 1000, Currency: USD},
		},
		Subscriptions: []Subscription{
			{Name: "Stream", Price: 12, BillingCycle: CycleMonthly, Currency: USD},
			{Name: "Cloud", Price: 120, BillingCycle: CycleYearly, Currency: USD}, // 10/mo
		},
		Stocks: []Stock{
			{Symbol: "VT", Shares: 100, PurchasePrice: fp(50), DividendYield: fp(2), Currency: USD}, // 5000, 100/yr dividends
		},
		PassiveIncomes: []PassiveIncome{
			{Name: "Rent", Amount: 300, Frequency: FreqQuarterly, Currency: GBP}, // 100 GBP/mo -> 127 USD
		},
		Investments: []Investment{
			{Name: "BTC", Amount: 1000, CurrentValue: fp(1500), Currency: USD},
		},
	}

	s, err := agg.Summarize(context.Background(), recs, USD)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}

	wantAssets := 200000.0 + 108000 + 10000 + 12000 + 5000 + 1500
	if !almostEqual(s.TotalAssets, wantAssets, 1e-6) {
		t.Fatalf("assets: got %v, want %v", s.TotalAssets, wantAssets)
	}
	if !almostEqual(s.NetWorth, wantAssets-200000, 1e-6) {
		t.Fatalf("net worth: got %v", s.NetWorth)
	}

	// 1000 payments + (100+1200/12)=200 property + 50 car + 22 subscriptions
	if !almostEqual(s.TotalMonthlyExpenses, 1272, 1e-6) {
		t.Fatalf("expenses: got %v, want 1272", s.TotalMonthlyExpenses)
	}

	// 50 interest + 100/12 dividends + 127 passive records
	wantPassive := 50 + 100.0/12 + 127
	if !almostEqual(s.TotalMonthlyPassiveIncome, wantPassive, 1e-6) {
		t.Fatalf("passive: got %v, want %v", s.TotalMonthlyPassiveIncome, wantPassive)
	}

	var pct float64
	for _, slice := range s.AssetDistribution {
		pct += slice.Percentage
	}
	if !almostEqual(pct, 100, 1e-6) {
		t.Fatalf("distribution sums to %v, want 100", pct)
	}

	if s.Counts.Properties != 2 || s.Counts.Subscriptions != 2 || s.Counts.Investments != 1 {
		t.Fatalf("counts: %+v", s.Counts)
	}
}
