package core

import (
	"testing"
	"time"
)

func fp(v float64) *float64 { return &v }

func TestMonthlyInterestIncome(t *testing.T) {
	// $10,000 at 6% annual interest earns $50/month.
	got := MonthlyInterestIncome(10000, 6)
	if !almostEqual(got, 50, 1e-9) {
		t.Fatalf("got %v, want 50", got)
	}

	if got := MonthlyInterestIncome(10000, 0); got != 0 {
		t.Fatalf("zero rate: got %v, want 0", got)
	}
}

func TestPropertyMonthlyExpense(t *testing.T) {
	p := Property{MaintenanceAmount: 200, YearlyTax: 1200}
	if got := p.MonthlyExpense(); !almostEqual(got, 300, 1e-9) {
		t.Fatalf("got %v, want 300", got)
	}
}

func TestVehicleMonthlyMaintenance(t *testing.T) {
	v := Vehicle{MaintenanceCosts: 600}
	if got := v.MonthlyMaintenance(); !almostEqual(got, 50, 1e-9) {
		t.Fatalf("got %v, want 50", got)
	}
}

func TestCreditProgress(t *testing.T) {
	c := Credit{TotalAmount: 250000, RemainingAmount: 200000}
	if got := c.Paid(); got != 50000 {
		t.Fatalf("paid: got %v, want 50000", got)
	}
	if got := c.Progress(); !almostEqual(got, 20, 1e-9) {
		t.Fatalf("progress: got %v, want 20", got)
	}

	// A zero-total credit reports zero progress, not NaN.
	zero := Credit{}
	if got := zero.Progress(); got != 0 {
		t.Fatalf("zero total: got %v, want 0", got)
	}
}

func TestStockDisplayPrice(t *testing.T) {
	cases := []struct {
		name  string
		stock Stock
		want  float64
	}{
		{"current preferred", Stock{CurrentPrice: fp(60), PurchasePrice: fp(50)}, 60},
		{"purchase fallback", Stock{PurchasePrice: fp(50)}, 50},
		{"zero current treated as absent", Stock{CurrentPrice: fp(0), PurchasePrice: fp(50)}, 50},
		{"no prices", Stock{}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.stock.DisplayPrice(); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestStockAnnualDividend(t *testing.T) {
	// 100 shares at $50 purchase price with 2% yield pay $100/year.
	s := Stock{Shares: 100, PurchasePrice: fp(50), DividendYield: fp(2)}
	if got := s.AnnualDividend(); !almostEqual(got, 100, 1e-9) {
		t.Fatalf("annual: got %v, want 100", got)
	}
	if got := s.AnnualDividend() / 12; !almostEqual(got, 8.3333, 0.0001) {
		t.Fatalf("monthly: got %v, want ~8.3333", got)
	}

	noYield := Stock{Shares: 100, PurchasePrice: fp(50)}
	if got := noYield.AnnualDividend(); got != 0 {
		t.Fatalf("no yield: got %v, want 0", got)
	}

	// The yield applies to an externally converted value the same way.
	if got := s.DividendOn(s.Value() * 1.08); !almostEqual(got, 108, 1e-9) {
		t.Fatalf("converted: got %v, want 108", got)
	}
	if got := noYield.DividendOn(5400); got != 0 {
		t.Fatalf("converted no yield: got %v, want 0", got)
	}
}

func TestInvestmentValue(t *testing.T) {
	withCurrent := Investment{Amount: 1000, CurrentValue: fp(1500)}
	if got := withCurrent.Value(); got != 1500 {
		t.Fatalf("got %v, want 1500", got)
	}
	costBasis := Investment{Amount: 1000}
	if got := costBasis.Value(); got != 1000 {
		t.Fatalf("got %v, want 1000", got)
	}
}

func TestInvestmentMetadataRoundTrip(t *testing.T) {
	md := InvestmentMetadata{Crypto: &CryptoMetadata{Ticker: "BTC", Quantity: 0.5, Platform: "kraken"}}
	raw, err := EncodeMetadata(InvestmentCrypto, md)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := DecodeMetadata(InvestmentCrypto, raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Crypto == nil || decoded.Crypto.Ticker != "BTC" || decoded.Crypto.Quantity != 0.5 {
		t.Fatalf("decoded %+v", decoded.Crypto)
	}
	if decoded.Business != nil || decoded.Domain != nil {
		t.Fatalf("unexpected variants set: %+v", decoded)
	}
}

func TestInvestmentMetadataUnknownType(t *testing.T) {
	// "other" and unknown types carry no structured metadata.
	md, err := DecodeMetadata(InvestmentOther, []byte(`{"anything":"goes"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if md != (InvestmentMetadata{}) {
		t.Fatalf("expected empty union, got %+v", md)
	}

	raw, err := EncodeMetadata(InvestmentOther, InvestmentMetadata{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(raw) != "{}" {
		t.Fatalf("got %s, want {}", raw)
	}
}

func TestInvestmentMetadataEmptyBlob(t *testing.T) {
	for _, raw := range [][]byte{nil, []byte("{}"), []byte("null")} {
		md, err := DecodeMetadata(InvestmentCrypto, raw)
		if err != nil {
			t.Fatalf("decode %q: %v", raw, err)
		}
		if md.Crypto != nil {
			t.Fatalf("decode %q: expected empty union", raw)
		}
	}
}

func TestRecordValidation(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		err  error
		ok   bool
	}{
		{"property ok", Property{Name: "Flat", Price: 100000}.Validate(), true},
		{"property negative", Property{Name: "Flat", Price: -1}.Validate(), false},
		{"property unnamed", Property{Price: 1}.Validate(), false},
		{"account ok", BankAccount{Name: "Checking"}.Validate(), true},
		{"vehicle ok", Vehicle{Model: "Corolla"}.Validate(), true},
		{"credit ok", Credit{Name: "Mortgage"}.Validate(), true},
		{"subscription ok", Subscription{Name: "Stream", Price: 10}.Validate(), true},
		{"stock ok", Stock{Symbol: "VT", Shares: 1}.Validate(), true},
		{"stock negative shares", Stock{Symbol: "VT", Shares: -1}.Validate(), false},
		{"income ok", PassiveIncome{Name: "Rent", Amount: 500}.Validate(), true},
		{"income reversed dates", PassiveIncome{Name: "Rent", Amount: 1, StartDate: &start, EndDate: &end}.Validate(), false},
		{"investment ok", Investment{Name: "BTC", Amount: 100}.Validate(), true},
		{"rate ok", CurrencyRate{From: EUR, To: USD, Rate: 1.08}.Validate(), true},
		{"rate same pair", CurrencyRate{From: USD, To: USD, Rate: 1}.Validate(), false},
		{"rate nonpositive", CurrencyRate{From: EUR, To: USD, Rate: 0}.Validate(), false},
	}
	for _, tc := range cases {
		if tc.ok && tc.err != nil {
			t.Fatalf("%s: expected ok, got %v", tc.name, tc.err)
		}
		if !tc.ok && tc.err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}
