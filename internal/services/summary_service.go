package services

import (
	"context"
	"fmt"
	"log/slog"

	"hearth/internal/core"
)

// RecordSource provides the per-category record sets the aggregator consumes.
// *storage.SQLiteRepository satisfies it.
type RecordSource interface {
	ListProperties(ctx context.Context, householdID int64) ([]core.Property, error)
	ListBankAccounts(ctx context.Context, householdID int64) ([]core.BankAccount, error)
	ListVehicles(ctx context.Context, householdID int64) ([]core.Vehicle, error)
	ListCredits(ctx context.Context, householdID int64) ([]core.Credit, error)
	ListSubscriptions(ctx context.Context, householdID int64) ([]core.Subscription, error)
	ListStocks(ctx context.Context, householdID int64) ([]core.Stock, error)
	ListPassiveIncome(ctx context.Context, householdID int64) ([]core.PassiveIncome, error)
	ListInvestments(ctx context.Context, householdID int64) ([]core.Investment, error)
}

// RefreshPublisher announces that a household's records changed.
// *amqp.Client satisfies it.
type RefreshPublisher interface {
	PublishSummaryRefresh(ctx context.Context, householdID int64, reason string) error
}

// SummaryService assembles the household financial overview.
type SummaryService struct {
	records   RecordSource
	rates     core.RateProvider
	publisher RefreshPublisher
}

func NewSummaryService(records RecordSource, rates core.RateProvider, publisher RefreshPublisher) *SummaryService {
	return &SummaryService{
		records:   records,
		rates:     rates,
		publisher: publisher,
	}
}

// BuildSummary loads every record category for the household and aggregates
// it into a single summary in the reporting currency. Category loads run one
// by one; the first failure aborts the whole summary.
func (s *SummaryService) BuildSummary(ctx context.Context, householdID int64, reporting core.Currency) (core.FinancialSummary, error) {
	var (
		recs core.Records
		err  error
	)

	if recs.Properties, err = s.records.ListProperties(ctx, householdID); err != nil {
		return core.FinancialSummary{}, fmt.Errorf("load properties: %w", err)
	}
	if recs.BankAccounts, err = s.records.ListBankAccounts(ctx, householdID); err != nil {
		return core.FinancialSummary{}, fmt.Errorf("load bank accounts: %w", err)
	}
	if recs.Vehicles, err = s.records.ListVehicles(ctx, householdID); err != nil {
		return core.FinancialSummary{}, fmt.Errorf("load vehicles: %w", err)
	}
	if recs.Credits, err = s.records.ListCredits(ctx, householdID); err != nil {
		return core.FinancialSummary{}, fmt.Errorf("load credits: %w", err)
	}
	if recs.Subscriptions, err = s.records.ListSubscriptions(ctx, householdID); err != nil {
		return core.FinancialSummary{}, fmt.Errorf("load subscriptions: %w", err)
	}
	if recs.Stocks, err = s.records.ListStocks(ctx, householdID); err != nil {
		return core.FinancialSummary{}, fmt.Errorf("load stocks: %w", err)
	}
	if recs.PassiveIncomes, err = s.records.ListPassiveIncome(ctx, householdID); err != nil {
		return core.FinancialSummary{}, fmt.Errorf("load passive income: %w", err)
	}
	if recs.Investments, err = s.records.ListInvestments(ctx, householdID); err != nil {
		return core.FinancialSummary{}, fmt.Errorf("load investments: %w", err)
	}

	agg := core.NewAggregator(s.rates)
	summary, err := agg.Summarize(ctx, recs, reporting)
	if err != nil {
		return core.FinancialSummary{}, fmt.Errorf("aggregate household %d: %w", householdID, err)
	}
	return summary, nil
}

// NotifyRecordChange publishes a refresh message after a record mutation.
// The mutation is already durable, so publish failures are logged and
// swallowed rather than failing the request.
func (s *SummaryService) NotifyRecordChange(ctx context.Context, householdID int64, reason string) {
	if s.publisher == nil {
		slog.WarnContext(ctx, "AMQP client not available, skipping refresh message")
		return
	}
	if err := s.publisher.PublishSummaryRefresh(ctx, householdID, reason); err != nil {
		slog.ErrorContext(ctx, "Failed to publish refresh message",
			"household_id", householdID,
			"reason", reason,
			"error", err)
	}
}
