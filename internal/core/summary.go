package core

type (
	// AssetSlice is one row of the asset-distribution table.
	AssetSlice struct {
		Name       string  `json:"name"`
		Value      float64 `json:"value"`
		Percentage float64 `json:"percentage"`
	}

	// CategoryCounts reports how many records fed each category.
	CategoryCounts struct {
		Properties     int `json:"properties"`
		BankAccounts   int `json:"bank_accounts"`
		Vehicles       int `json:"vehicles"`
		Credits        int `json:"credits"`
		Subscriptions  int `json:"subscriptions"`
		Stocks         int `json:"stocks"`
		PassiveIncomes int `json:"passive_incomes"`
		Investments    int `json:"investments"`
	}

	// FinancialSummary is the normalized household overview. Every monetary
	// field is expressed in Currency.
	FinancialSummary struct {
		Currency Currency `json:"currency"`

		TotalProperties   float64 `json:"total_properties"`
		TotalBankAccounts float64 `json:"total_bank_accounts"`
		TotalVehicles     float64 `json:"total_vehicles"`
		TotalStocks       float64 `json:"total_stocks"`
		TotalInvestments  float64 `json:"total_investments"`

		TotalAssets      float64 `json:"total_assets"`
		TotalLiabilities float64 `json:"total_liabilities"`
		NetWorth         float64 `json:"net_worth"`

		MonthlyPayments         float64 `json:"monthly_payments"`
		MonthlyPropertyExpenses float64 `json:"monthly_property_expenses"`
		MonthlyCarMaintenance   float64 `json:"monthly_car_maintenance"`
		MonthlySubscriptions    float64 `json:"monthly_subscriptions"`
		YearlySubscriptions     float64 `json:"yearly_subscriptions"`
		TotalMonthlyExpenses    float64 `json:"total_monthly_expenses"`

		AnnualDividendIncome      float64 `json:"annual_dividend_income"`
		MonthlyDividendIncome     float64 `json:"monthly_dividend_income"`
		MonthlyInterestIncome     float64 `json:"monthly_interest_income"`
		MonthlyPassiveIncome      float64 `json:"monthly_passive_income"`
		TotalMonthlyPassiveIncome float64 `json:"total_monthly_passive_income"`

		AssetDistribution []AssetSlice   `json:"asset_distribution"`
		Counts            CategoryCounts `json:"counts"`
	}
)
