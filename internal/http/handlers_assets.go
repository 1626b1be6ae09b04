package http

import (
	"encoding/json"
	"net/http"
	"time"

	"hearth/internal/core"
)

// Subscription

type subscriptionRequest struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Currency     string  `json:"currency"`
	BillingCycle string  `json:"billing_cycle"`
	Priority     string  `json:"priority"`
	CreatedBy    int64   `json:"created_by"`
}

type subscriptionResponse struct {
	ID           int64     `json:"id"`
	HouseholdID  int64     `json:"household_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Currency     string    `json:"currency"`
	BillingCycle string    `json:"billing_cycle"`
	Priority     string    `json:"priority"`
	MonthlyPrice float64   `json:"monthly_price"`
	YearlyPrice  float64   `json:"yearly_price"`
	CreatedBy    int64     `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toSubscriptionResponse(sub core.Subscription) subscriptionResponse {
	return subscriptionResponse{
		ID:           sub.ID,
		HouseholdID:  sub.HouseholdID,
		Name:         sub.Name,
		Description:  sub.Description,
		Price:        sub.Price,
		Currency:     string(sub.Currency),
		BillingCycle: string(sub.BillingCycle),
		Priority:     string(sub.Priority),
		MonthlyPrice: sub.BillingCycle.MonthlyPrice(sub.Price),
		YearlyPrice:  sub.BillingCycle.YearlyPrice(sub.Price),
		CreatedBy:    sub.CreatedBy,
		CreatedAt:    sub.CreatedAt,
		UpdatedAt:    sub.UpdatedAt,
	}
}

func (req subscriptionRequest) toCore(householdID int64) core.Subscription {
	priority := core.Priority(req.Priority)
	if priority == "" {
		priority = core.PriorityMedium
	}
	cycle := core.BillingCycle(req.BillingCycle)
	if cycle == "" {
		cycle = core.CycleMonthly
	}
	return core.Subscription{
		HouseholdID:  householdID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Currency:     core.Currency(req.Currency).OrDefault(),
		BillingCycle: cycle,
		Priority:     priority,
		CreatedBy:    req.CreatedBy,
	}
}

func (s *Server) handleListSubscriptions(w http.ResponseWriter, r *http.Request) {
	hid, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	items, err := s.repo.ListSubscriptions(r.Context(), hid)
	if err != nil {
		respondError(w, r, err)
		return
	}
	out := make([]subscriptionResponse, 0, len(items))
	for _, sub := range items {
		out = append(out, toSubscriptionResponse(sub))
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateSubscription(w http.ResponseWriter, r *http.Request) {
	hid, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	var req subscriptionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err)
		return
	}
	sub := req.toCore(hid)
	if err := sub.Validate(); err != nil {
		respondBadRequest(w, err)
		return
	}

	created, err := s.repo.CreateSubscription(r.Context(), sub)
	if err != nil {
		respondRecordError(w, r, err)
		return
	}
	s.recordMutated(r.Context(), hid, "subscription_created")
	respondJSON(w, http.StatusCreated, toSubscriptionResponse(created))
}

func (s *Server) handleGetSubscription(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	sub, err := s.repo.GetSubscription(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toSubscriptionResponse(sub))
}

func (s *Server) handleUpdateSubscription(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	existing, err := s.repo.GetSubscription(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var req subscriptionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err)
		return
	}
	sub := req.toCore(existing.HouseholdID)
	sub.ID = id
	if err := sub.Validate(); err != nil {
		respondBadRequest(w, err)
		return
	}

	updated, err := s.repo.UpdateSubscription(r.Context(), sub)
	if err != nil {
		respondRecordError(w, r, err)
		return
	}
	s.recordMutated(r.Context(), existing.HouseholdID, "subscription_updated")
	respondJSON(w, http.StatusOK, toSubscriptionResponse(updated))
}

func (s *Server) handleDeleteSubscription(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	existing, err := s.repo.GetSubscription(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := s.repo.DeleteSubscription(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	s.recordMutated(r.Context(), existing.HouseholdID, "subscription_deleted")
	respondJSON(w, http.StatusNoContent, nil)
}

// Stock

type stockRequest struct {
	Symbol            string     `json:"symbol"`
	CompanyName       string     `json:"company_name"`
	Shares            float64    `json:"shares"`
	CurrentPrice      *float64   `json:"current_price"`
	PurchasePrice     *float64   `json:"purchase_price"`
	PurchaseDate      *time.Time `json:"purchase_date"`
	DividendYield     *float64   `json:"dividend_yield"`
	DividendFrequency string     `json:"dividend_frequency"`
	Notes             string     `json:"notes"`
	Currency          string     `json:"currency"`
	CreatedBy         int64      `json:"created_by"`
}

type stockResponse struct {
	ID                int64      `json:"id"`
	HouseholdID       int64      `json:"household_id"`
	Symbol            string     `json:"symbol"`
	CompanyName       string     `json:"company_name"`
	Shares            float64    `json:"shares"`
	CurrentPrice      *float64   `json:"current_price"`
	PurchasePrice     *float64   `json:"purchase_price"`
	PurchaseDate      *time.Time `json:"purchase_date"`
	DividendYield     *float64   `json:"dividend_yield"`
	DividendFrequency string     `json:"dividend_frequency"`
	Notes             string     `json:"notes"`
	Currency          string     `json:"currency"`
	Value             float64    `json:"value"`
	AnnualDividend    float64    `json:"annual_dividend"`
	CreatedBy         int64      `json:"created_by"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func toStockResponse(st core.Stock) stockResponse {
	return stockResponse{
		ID:                st.ID,
		HouseholdID:       st.HouseholdID,
		Symbol:            st.Symbol,
		CompanyName:       st.CompanyName,
		Shares:            st.Shares,
		CurrentPrice:      st.CurrentPrice,
		PurchasePrice:     st.PurchasePrice,
		PurchaseDate:      st.PurchaseDate,
		DividendYield:     st.DividendYield,
		DividendFrequency: st.DividendFrequency,
		Notes:             st.Notes,
		Currency:          string(st.Currency),
		Value:             st.Value(),
		AnnualDividend:    st.AnnualDividend(),
		CreatedBy:         st.CreatedBy,
		CreatedAt:         st.CreatedAt,
		UpdatedAt:         st.UpdatedAt,
	}
}

func (req stockRequest) toCore(householdID int64) core.Stock {
	return core.Stock{
		HouseholdID:       householdID,
		Symbol:            req.Symbol,
		CompanyName:       req.CompanyName,
		Shares:            req.Shares,
		CurrentPrice:      req.CurrentPrice,
		PurchasePrice:     req.PurchasePrice,
		PurchaseDate:      req.PurchaseDate,
		DividendYield:     req.DividendYield,
		DividendFrequency: req.DividendFrequency,
		Notes:             req.Notes,
		Currency:          core.Currency(req.Currency).OrDefault(),
		CreatedBy:         req.CreatedBy,
	}
}

func (s *Server) handleListStocks(w http.ResponseWriter, r *http.Request) {
	hid, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	items, err := s.repo.ListStocks(r.Context(), hid)
	if err != nil {
		respondError(w, r, err)
		return
	}
	out := make([]stockResponse, 0, len(items))
	for _, st := range items {
		out = append(out, toStockResponse(st))
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateStock(w http.ResponseWriter, r *http.Request) {
	hid, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	var req stockRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err)
		return
	}
	st := req.toCore(hid)
	if err := st.Validate(); err != nil {
		respondBadRequest(w, err)
		return
	}

	created, err := s.repo.CreateStock(r.Context(), st)
	if err != nil {
		respondRecordError(w, r, err)
		return
	}
	s.recordMutated(r.Context(), hid, "stock_created")
	respondJSON(w, http.StatusCreated, toStockResponse(created))
}

func (s *Server) handleGetStock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	st, err := s.repo.GetStock(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toStockResponse(st))
}

func (s *Server) handleUpdateStock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	existing, err := s.repo.GetStock(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var req stockRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err)
		return
	}
	st := req.toCore(existing.HouseholdID)
	st.ID = id
	if err := st.Validate(); err != nil {
		respondBadRequest(w, err)
		return
	}

	updated, err := s.repo.UpdateStock(r.Context(), st)
	if err != nil {
		respondRecordError(w, r, err)
		return
	}
	s.recordMutated(r.Context(), existing.HouseholdID, "stock_updated")
	respondJSON(w, http.StatusOK, toStockResponse(updated))
}

func (s *Server) handleDeleteStock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	existing, err := s.repo.GetStock(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := s.repo.DeleteStock(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	s.recordMutated(r.Context(), existing.HouseholdID, "stock_deleted")
	respondJSON(w, http.StatusNoContent, nil)
}

// PassiveIncome

type passiveIncomeRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	Frequency   string     `json:"frequency"`
	Currency    string     `json:"currency"`
	Category    string     `json:"category"`
	Taxable     bool       `json:"is_taxable"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	CreatedBy   int64      `json:"created_by"`
}

type passiveIncomeResponse struct {
	ID            int64      `json:"id"`
	HouseholdID   int64      `json:"household_id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Amount        float64    `json:"amount"`
	Frequency     string     `json:"frequency"`
	Currency      string     `json:"currency"`
	Category      string     `json:"category"`
	Taxable       bool       `json:"is_taxable"`
	MonthlyAmount float64    `json:"monthly_amount"`
	AnnualAmount  float64    `json:"annual_amount"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	CreatedBy     int64      `json:"created_by"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func toPassiveIncomeResponse(p core.PassiveIncome) passiveIncomeResponse {
	return passiveIncomeResponse{
		ID:            p.ID,
		HouseholdID:   p.HouseholdID,
		Name:          p.Name,
		Description:   p.Description,
		Amount:        p.Amount,
		Frequency:     string(p.Frequency),
		Currency:      string(p.Currency),
		Category:      string(p.Category),
		Taxable:       p.Taxable,
		MonthlyAmount: p.Frequency.MonthlyAmount(p.Amount),
		AnnualAmount:  p.Frequency.AnnualAmount(p.Amount),
		StartDate:     p.StartDate,
		EndDate:       p.EndDate,
		CreatedBy:     p.CreatedBy,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (req passiveIncomeRequest) toCore(householdID int64) core.PassiveIncome {
	freq := core.Frequency(req.Frequency)
	if freq == "" {
		freq = core.FreqMonthly
	}
	category := core.IncomeCategory(req.Category)
	if category == "" {
		category = core.IncomeUncategorized
	}
	return core.PassiveIncome{
		HouseholdID: householdID,
		Name:        req.Name,
		Description: req.Description,
		Amount:      req.Amount,
		Frequency:   freq,
		Currency:    core.Currency(req.Currency).OrDefault(),
		Category:    category,
		Taxable:     req.Taxable,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		CreatedBy:   req.CreatedBy,
	}
}

func (s *Server) handleListPassiveIncome(w http.ResponseWriter, r *http.Request) {
	hid, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	items, err := s.repo.ListPassiveIncome(r.Context(), hid)
	if err != nil {
		respondError(w, r, err)
		return
	}
	out := make([]passiveIncomeResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toPassiveIncomeResponse(p))
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreatePassiveIncome(w http.ResponseWriter, r *http.Request) {
	hid, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	var req passiveIncomeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err)
		return
	}
	p := req.toCore(hid)
	if err := p.Validate(); err != nil {
		respondBadRequest(w, err)
		return
	}

	created, err := s.repo.CreatePassiveIncome(r.Context(), p)
	if err != nil {
		respondRecordError(w, r, err)
		return
	}
	s.recordMutated(r.Context(), hid, "passive_income_created")
	respondJSON(w, http.StatusCreated, toPassiveIncomeResponse(created))
}

func (s *Server) handleGetPassiveIncome(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	p, err := s.repo.GetPassiveIncome(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toPassiveIncomeResponse(p))
}

func (s *Server) handleUpdatePassiveIncome(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	existing, err := s.repo.GetPassiveIncome(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var req passiveIncomeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err)
		return
	}
	p := req.toCore(existing.HouseholdID)
	p.ID = id
	if err := p.Validate(); err != nil {
		respondBadRequest(w, err)
		return
	}

	updated, err := s.repo.UpdatePassiveIncome(r.Context(), p)
	if err != nil {
		respondRecordError(w, r, err)
		return
	}
	s.recordMutated(r.Context(), existing.HouseholdID, "passive_income_updated")
	respondJSON(w, http.StatusOK, toPassiveIncomeResponse(updated))
}

func (s *Server) handleDeletePassiveIncome(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	existing, err := s.repo.GetPassiveIncome(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := s.repo.DeletePassiveIncome(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	s.recordMutated(r.Context(), existing.HouseholdID, "passive_income_deleted")
	respondJSON(w, http.StatusNoContent, nil)
}

// Investment

type investmentRequest struct {
	Type         string          `json:"type"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Amount       float64         `json:"amount"`
	Currency     string          `json:"currency"`
	PurchaseDate *time.Time      `json:"purchase_date"`
	CurrentValue *float64        `json:"current_value"`
	Metadata     json.RawMessage `json:"metadata"`
	CreatedBy    int64           `json:"created_by"`
}

type investmentResponse struct {
	ID           int64      `json:"id"`
	HouseholdID  int64      `json:"household_id"`
	Type         string     `json:"type"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Amount       float64    `json:"amount"`
	Currency     string     `json:"currency"`
	PurchaseDate *time.Time `json:"purchase_date"`
	CurrentValue *float64   `json:"current_value"`
	Value        float64    `json:"value"`
	Metadata     any        `json:"metadata"`
	CreatedBy    int64      `json:"created_by"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func toInvestmentResponse(inv core.Investment) investmentResponse {
	return investmentResponse{
		ID:           inv.ID,
		HouseholdID:  inv.HouseholdID,
		Type:         string(inv.Type),
		Name:         inv.Name,
		Description:  inv.Description,
		Amount:       inv.Amount,
		Currency:     string(inv.Currency),
		PurchaseDate: inv.PurchaseDate,
		CurrentValue: inv.CurrentValue,
		Value:        inv.Value(),
		Metadata:     inv.Metadata.Variant(),
		CreatedBy:    inv.CreatedBy,
		CreatedAt:    inv.CreatedAt,
		UpdatedAt:    inv.UpdatedAt,
	}
}

func (req investmentRequest) toCore(householdID int64) (core.Investment, error) {
	typ := core.InvestmentType(req.Type)
	if typ == "" {
		typ = core.InvestmentOther
	}
	md, err := core.DecodeMetadata(typ, req.Metadata)
	if err != nil {
		return core.Investment{}, err
	}
	return core.Investment{
		HouseholdID:  householdID,
		Type:         typ,
		Name:         req.Name,
		Description:  req.Description,
		Amount:       req.Amount,
		Currency:     core.Currency(req.Currency).OrDefault(),
		PurchaseDate: req.PurchaseDate,
		CurrentValue: req.CurrentValue,
		Metadata:     md,
		CreatedBy:    req.CreatedBy,
	}, nil
}

func (s *Server) handleListInvestments(w http.ResponseWriter, r *http.Request) {
	hid, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	items, err := s.repo.ListInvestments(r.Context(), hid)
	if err != nil {
		respondError(w, r, err)
		return
	}
	out := make([]investmentResponse, 0, len(items))
	for _, inv := range items {
		out = append(out, toInvestmentResponse(inv))
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateInvestment(w http.ResponseWriter, r *http.Request) {
	hid, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	var req investmentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err)
		return
	}
	inv, err := req.toCore(hid)
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	if err := inv.Validate(); err != nil {
		respondBadRequest(w, err)
		return
	}

	created, err := s.repo.CreateInvestment(r.Context(), inv)
	if err != nil {
		respondRecordError(w, r, err)
		return
	}
	s.recordMutated(r.Context(), hid, "investment_created")
	respondJSON(w, http.StatusCreated, toInvestmentResponse(created))
}

func (s *Server) handleGetInvestment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	inv, err := s.repo.GetInvestment(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toInvestmentResponse(inv))
}

func (s *Server) handleUpdateInvestment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	existing, err := s.repo.GetInvestment(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var req investmentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err)
		return
	}
	inv, err := req.toCore(existing.HouseholdID)
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	inv.ID = id
	if err := inv.Validate(); err != nil {
		respondBadRequest(w, err)
		return
	}

	updated, err := s.repo.UpdateInvestment(r.Context(), inv)
	if err != nil {
		respondRecordError(w, r, err)
		return
	}
	s.recordMutated(r.Context(), existing.HouseholdID, "investment_updated")
	respondJSON(w, http.StatusOK, toInvestmentResponse(updated))
}

func (s *Server) handleDeleteInvestment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	existing, err := s.repo.GetInvestment(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := s.repo.DeleteInvestment(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	s.recordMutated(r.Context(), existing.HouseholdID, "investment_deleted")
	respondJSON(w, http.StatusNoContent, nil)
}
