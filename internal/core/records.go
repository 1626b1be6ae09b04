package core

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyName       = errors.New("empty name")
	ErrNegativeAmount  = errors.New("negative amount")
	ErrInvalidCurrency = errors.New("invalid currency code")
)

type (
	// Property is a real-estate holding. Maintenance is a monthly figure,
	// tax a yearly one.
	Property struct {
		ID                int64
		HouseholdID       int64
		Name              string
		Address           string
		Price             float64
		Currency          Currency
		MaintenanceAmount float64
		YearlyTax         float64
		CreatedBy         int64
		CreatedAt         time.Time
		UpdatedAt         time.Time
	}

	// BankAccount holds a balance plus an optional annual interest rate
	// expressed as a percentage.
	BankAccount struct {
		ID           int64
		HouseholdID  int64
		Name         string
		BankName     string
		Amount       float64
		Currency     Currency
		InterestRate float64
		CreatedBy    int64
		CreatedAt    time.Time
		UpdatedAt    time.Time
	}

	// Vehicle carries a resale value and annual maintenance costs.
	Vehicle struct {
		ID               int64
		HouseholdID      int64
		Model            string
		Year             int
		SalePrice        float64
		MaintenanceCosts float64
		Currency         Currency
		CreatedBy        int64
		CreatedAt        time.Time
		UpdatedAt        time.Time
	}

	// Credit is an outstanding loan. The remaining amount is the liability;
	// the monthly payment feeds the expense totals.
	Credit struct {
		ID              int64
		HouseholdID     int64
		Name            string
		Description     string
		TotalAmount     float64
		RemainingAmount float64
		MonthlyPayment  float64
		Currency        Currency
		CreatedBy       int64
		CreatedAt       time.Time
		UpdatedAt       time.Time
	}

	// Subscription is a recurring service charge.
	Subscription struct {
		ID           int64
		HouseholdID  int64
		Name         string
		Description  string
		Price        float64
		Currency     Currency
		BillingCycle BillingCycle
		Priority     Priority
		CreatedBy    int64
		CreatedAt    time.Time
		UpdatedAt    time.Time
	}

	// Stock is an equity position. CurrentPrice, PurchasePrice and
	// DividendYield are nullable; yield is an annual percentage.
	Stock struct {
		ID                int64
		HouseholdID       int64
		Symbol            string
		CompanyName       string
		Shares            float64
		CurrentPrice      *float64
		PurchasePrice     *float64
		PurchaseDate      *time.Time
		DividendYield     *float64
		DividendFrequency string
		Notes             string
		Currency          Currency
		CreatedBy         int64
		CreatedAt         time.Time
		UpdatedAt         time.Time
	}

	// PassiveIncome is a recurring income entry (rent, pension, royalties...).
	PassiveIncome struct {
		ID          int64
		HouseholdID int64
		Name        string
		Description string
		Amount      float64
		Frequency   Frequency
		Currency    Currency
		Category    IncomeCategory
		Taxable     bool
		StartDate   *time.Time
		EndDate     *time.Time
		CreatedBy   int64
		CreatedAt   time.Time
		UpdatedAt   time.Time
	}

	// Investment is a generic holding (crypto, business stake, domain...).
	// Amount is the cost basis; CurrentValue overrides it when set.
	Investment struct {
		ID           int64
		HouseholdID  int64
		Type         InvestmentType
		Name         string
		Description  string
		Amount       float64
		Currency     Currency
		PurchaseDate *time.Time
		CurrentValue *float64
		Metadata     InvestmentMetadata
		CreatedBy    int64
		CreatedAt    time.Time
		UpdatedAt    time.Time
	}

	// CurrencyRate is a directed conversion rate. Pairs are not guaranteed
	// symmetric; the inverse direction is a separate row.
	CurrencyRate struct {
		From      Currency
		To        Currency
		Rate      float64
		UpdatedAt time.Time
	}
)

// Priority orders subscriptions for display.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IncomeCategory labels a passive-income entry.
type IncomeCategory string

const (
	IncomeRental        IncomeCategory = "rental"
	IncomePension       IncomeCategory = "pension"
	IncomeRoyalty       IncomeCategory = "royalty"
	IncomeDisability    IncomeCategory = "disability"
	IncomeInvestment    IncomeCategory = "investment"
	IncomeOther         IncomeCategory = "other"
	IncomeUncategorized IncomeCategory = "uncategorized"
)

// MonthlyInterestIncome converts an annual percentage rate on a balance
// into a monthly income figure.
func MonthlyInterestIncome(amount, annualRatePercent float64) float64 {
	return amount * (annualRatePercent / 100) / 12
}

// MonthlyExpense returns the property's monthly upkeep: maintenance plus a
// twelfth of the yearly tax.
func (p Property) MonthlyExpense() float64 {
	return p.MaintenanceAmount + p.YearlyTax/12
}

// MonthlyMaintenance spreads the vehicle's annual maintenance over twelve
// months.
func (v Vehicle) MonthlyMaintenance() float64 {
	return v.MaintenanceCosts / 12
}

// Paid returns how much of the credit has been repaid so far.
func (c Credit) Paid() float64 {
	return c.TotalAmount - c.RemainingAmount
}

// Progress returns repayment progress as a percentage, 0 when the total is
// zero.
func (c Credit) Progress() float64 {
	if c.TotalAmount == 0 {
		return 0
	}
	return c.Paid() / c.TotalAmount * 100
}

// DisplayPrice is the price used for valuation: the current price when one
// is recorded, otherwise the purchase price. Zero counts as absent.
func (s Stock) DisplayPrice() float64 {
	if s.CurrentPrice != nil && *s.CurrentPrice != 0 {
		return *s.CurrentPrice
	}
	if s.PurchasePrice != nil {
		return *s.PurchasePrice
	}
	return 0
}

// Value is the position value at the display price.
func (s Stock) Value() float64 {
	return s.Shares * s.DisplayPrice()
}

// AnnualDividend applies the annual yield percentage to the position value.
// Positions without a yield earn nothing.
func (s Stock) AnnualDividend() float64 {
	return s.DividendOn(s.Value())
}

// DividendOn applies the yield to a position value that may already have
// been converted into another currency.
func (s Stock) DividendOn(value float64) float64 {
	if s.DividendYield == nil || *s.DividendYield == 0 {
		return 0
	}
	return value * *s.DividendYield / 100
}

// Value is the investment's current value, falling back to cost basis when
// no current value has been recorded.
func (i Investment) Value() float64 {
	if i.CurrentValue != nil {
		return *i.CurrentValue
	}
	return i.Amount
}

func validName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}

func (p Property) Validate() error {
	if err := validName(p.Name); err != nil {
		return err
	}
	if p.Price < 0 || p.MaintenanceAmount < 0 || p.YearlyTax < 0 {
		return ErrNegativeAmount
	}
	return nil
}

func (b BankAccount) Validate() error {
	return validName(b.Name)
}

func (v Vehicle) Validate() error {
	if err := validName(v.Model); err != nil {
		return err
	}
	if v.SalePrice < 0 || v.MaintenanceCosts < 0 {
		return ErrNegativeAmount
	}
	return nil
}

func (c Credit) Validate() error {
	if err := validName(c.Name); err != nil {
		return err
	}
	if c.TotalAmount < 0 || c.RemainingAmount < 0 || c.MonthlyPayment < 0 {
		return ErrNegativeAmount
	}
	return nil
}

func (s Subscription) Validate() error {
	if err := validName(s.Name); err != nil {
		return err
	}
	if s.Price < 0 {
		return ErrNegativeAmount
	}
	return nil
}

func (s Stock) Validate() error {
	if err := validName(s.Symbol); err != nil {
		return err
	}
	if s.Shares < 0 {
		return ErrNegativeAmount
	}
	return nil
}

func (p PassiveIncome) Validate() error {
	if err := validName(p.Name); err != nil {
		return err
	}
	if p.Amount < 0 {
		return ErrNegativeAmount
	}
	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		return errors.New("end date before start date")
	}
	return nil
}

func (i Investment) Validate() error {
	if err := validName(i.Name); err != nil {
		return err
	}
	if i.Amount < 0 {
		return ErrNegativeAmount
	}
	return nil
}

func (r CurrencyRate) Validate() error {
	if r.From == "" || r.To == "" {
		return ErrInvalidCurrency
	}
	if r.From == r.To {
		return errors.New("identical currency pair")
	}
	if r.Rate <= 0 {
		return errors.New("rate must be positive")
	}
	return nil
}
