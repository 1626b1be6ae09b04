package services

import (
	"context"
	"errors"
	"testing"

	"hearth/internal/core"
)

type fakeRecords struct {
	recs     core.Records
	failLoad error
}

func (f *fakeRecords) ListProperties(ctx context.Context, id int64) ([]core.Property, error) {
	return f.recs.Properties, f.failLoad
}
func (f *fakeRecords) ListBankAccounts(ctx context.Context, id int64) ([]core.BankAccount, error) {
	return f.recs.BankAccounts, nil
}
func (f *fakeRecords) ListVehicles(ctx context.Context, id int64) ([]core.Vehicle, error) {
	return f.recs.Vehicles, nil
}
func (f *fakeRecords) ListCredits(ctx context.Context, id int64) ([]core.Credit, error) {
	return f.recs.Credits, nil
}
func (f *fakeRecords) ListSubscriptions(ctx context.Context, id int64) ([]core.Subscription, error) {
	return f.recs.Subscriptions, nil
}
func (f *fakeRecords) ListStocks(ctx context.Context, id int64) ([]core.Stock, error) {
	return f.recs.Stocks, nil
}
func (f *fakeRecords) ListPassiveIncome(ctx context.Context, id int64) ([]core.PassiveIncome, error) {
	return f.recs.PassiveIncomes, nil
}
func (f *fakeRecords) ListInvestments(ctx context.Context, id int64) ([]core.Investment, error) {
	return f.recs.Investments, nil
}

type staticRates map[[2]core.Currency]float64

func (s staticRates) Rate(ctx context.Context, from, to core.Currency) (float64, bool, error) {
	r, ok := s[[2]core.Currency{from, to}]
	return r, ok, nil
}

type capturePublisher struct {
	householdID int64
	reason      string
	calls       int
	err         error
}

func (p *capturePublisher) PublishSummaryRefresh(ctx context.Context, householdID int64, reason string) error {
	p.calls++
	p.householdID = householdID
	p.reason = reason
	return p.err
}

func TestBuildSummary(t *testing.T) {
	records := &fakeRecords{recs: core.Records{
		BankAccounts: []core.BankAccount{
			{Name: "checking", Amount: 10000, Currency: core.USD, InterestRate: 2.4},
		},
		Credits: []core.Credit{
			{Name: "car loan", RemainingAmount: 4000, MonthlyPayment: 300, Currency: core.USD},
		},
	}}
	svc := NewSummaryService(records, staticRates{}, nil)

	summary, err := svc.BuildSummary(context.Background(), 1, core.USD)
	if err != nil {
		t.Fatalf("build summary: %v", err)
	}
	if summary.NetWorth != 6000 {
		t.Errorf("net worth = %v, want 6000", summary.NetWorth)
	}
	if summary.MonthlyInterestIncome != 20 {
		t.Errorf("monthly interest = %v, want 20", summary.MonthlyInterestIncome)
	}
	if summary.Counts.BankAccounts != 1 || summary.Counts.Credits != 1 {
		t.Errorf("unexpected counts: %+v", summary.Counts)
	}
}

func TestBuildSummaryLoadError(t *testing.T) {
	boom := errors.New("db gone")
	svc := NewSummaryService(&fakeRecords{failLoad: boom}, staticRates{}, nil)

	if _, err := svc.BuildSummary(context.Background(), 1, core.USD); !errors.Is(err, boom) {
		t.Errorf("expected load error to propagate, got %v", err)
	}
}

func TestNotifyRecordChange(t *testing.T) {
	pub := &capturePublisher{}
	svc := NewSummaryService(&fakeRecords{}, staticRates{}, pub)

	svc.NotifyRecordChange(context.Background(), 7, "property_created")
	if pub.calls != 1 || pub.householdID != 7 || pub.reason != "property_created" {
		t.Errorf("unexpected publish: %+v", pub)
	}
}

func TestNotifyRecordChangeSwallowsErrors(t *testing.T) {
	pub := &capturePublisher{err: errors.New("broker down")}
	svc := NewSummaryService(&fakeRecords{}, staticRates{}, pub)

	// Must not panic or surface the error; the mutation is already durable.
	svc.NotifyRecordChange(context.Background(), 7, "property_created")
	if pub.calls != 1 {
		t.Errorf("expected publish attempt, got %d", pub.calls)
	}
}

func TestNotifyRecordChangeNilPublisher(t *testing.T) {
	svc := NewSummaryService(&fakeRecords{}, staticRates{}, nil)
	svc.NotifyRecordChange(context.Background(), 7, "property_created")
}
