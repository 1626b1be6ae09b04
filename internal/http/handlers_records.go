package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"hearth/internal/core"
)

// registerRecordRoutes wires the per-category CRUD endpoints. Collections
// hang off the household; single records are addressed by their own id.
func (s *Server) registerRecordRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /households/{id}/properties", s.wrap(s.handleListProperties))
	mux.HandleFunc("POST /households/{id}/properties", s.wrap(s.handleCreateProperty))
	mux.HandleFunc("GET /properties/{id}", s.wrap(s.handleGetProperty))
	mux.HandleFunc("PUT /properties/{id}", s.wrap(s.handleUpdateProperty))
	mux.HandleFunc("DELETE /properties/{id}", s.wrap(s.handleDeleteProperty))

	mux.HandleFunc("GET /households/{id}/bank-accounts", s.wrap(s.handleListBankAccounts))
	mux.HandleFunc("POST /households/{id}/bank-accounts", s.wrap(s.handleCreateBankAccount))
	mux.HandleFunc("GET /bank-accounts/{id}", s.wrap(s.handleGetBankAccount))
	mux.HandleFunc("PUT /bank-accounts/{id}", s.wrap(s.handleUpdateBankAccount))
	mux.HandleFunc("DELETE /bank-accounts/{id}", s.wrap(s.handleDeleteBankAccount))

	mux.HandleFunc("GET /households/{id}/vehicles", s.wrap(s.handleListVehicles))
	mux.HandleFunc("POST /households/{id}/vehicles", s.wrap(s.handleCreateVehicle))
	mux.HandleFunc("GET /vehicles/{id}", s.wrap(s.handleGetVehicle))
	mux.HandleFunc("PUT /vehicles/{id}", s.wrap(s.handleUpdateVehicle))
	mux.HandleFunc("DELETE /vehicles/{id}", s.wrap(s.handleDeleteVehicle))

	mux.HandleFunc("GET /households/{id}/credits", s.wrap(s.handleListCredits))
	mux.HandleFunc("POST /households/{id}/credits", s.wrap(s.handleCreateCredit))
	mux.HandleFunc("GET /credits/{id}", s.wrap(s.handleGetCredit))
	mux.HandleFunc("PUT /credits/{id}", s.wrap(s.handleUpdateCredit))
	mux.HandleFunc("DELETE /credits/{id}", s.wrap(s.handleDeleteCredit))

	mux.HandleFunc("GET /households/{id}/subscriptions", s.wrap(s.handleListSubscriptions))
	mux.HandleFunc("POST /households/{id}/subscriptions", s.wrap(s.handleCreateSubscription))
	mux.HandleFunc("GET /subscriptions/{id}", s.wrap(s.handleGetSubscription))
	mux.HandleFunc("PUT /subscriptions/{id}", s.wrap(s.handleUpdateSubscription))
	mux.HandleFunc("DELETE /subscriptions/{id}", s.wrap(s.handleDeleteSubscription))

	mux.HandleFunc("GET /households/{id}/stocks", s.wrap(s.handleListStocks))
	mux.HandleFunc("POST /households/{id}/stocks", s.wrap(s.handleCreateStock))
	mux.HandleFunc("GET /stocks/{id}", s.wrap(s.handleGetStock))
	mux.HandleFunc("PUT /stocks/{id}", s.wrap(s.handleUpdateStock))
	mux.HandleFunc("DELETE /stocks/{id}", s.wrap(s.handleDeleteStock))

	mux.HandleFunc("GET /households/{id}/passive-income", s.wrap(s.handleListPassiveIncome))
	mux.HandleFunc("POST /households/{id}/passive-income", s.wrap(s.handleCreatePassiveIncome))
	mux.HandleFunc("GET /passive-income/{id}", s.wrap(s.handleGetPassiveIncome))
	mux.HandleFunc("PUT /passive-income/{id}", s.wrap(s.handleUpdatePassiveIncome))
	mux.HandleFunc("DELETE /passive-income/{id}", s.wrap(s.handleDeletePassiveIncome))

	mux.HandleFunc("GET /households/{id}/investments", s.wrap(s.handleListInvestments))
	mux.HandleFunc("POST /households/{id}/investments", s.wrap(s.handleCreateInvestment))
	mux.HandleFunc("GET /investments/{id}", s.wrap(s.handleGetInvestment))
	mux.HandleFunc("PUT /investments/{id}", s.wrap(s.handleUpdateInvestment))
	mux.HandleFunc("DELETE /investments/{id}", s.wrap(s.handleDeleteInvestment))
}

// recordMutated queues a snapshot refresh after any record write.
func (s *Server) recordMutated(ctx context.Context, householdID int64, reason string) {
	s.summaries.NotifyRecordChange(ctx, householdID, reason)
}

// respondRecordError distinguishes validation problems from storage failures.
func respondRecordError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, core.ErrEmptyName) || errors.Is(err, core.ErrNegativeAmount) || errors.Is(err, core.ErrInvalidCurrency) {
		respondBadRequest(w, err)
		return
	}
	respondError(w, r, err)
}

// Property

type propertyRequest struct {
	Name              string  `json:"name"`
	Address           string  `json:"address"`
	Price             float64 `json:"price"`
	Currency          string  `json:"currency"`
	MaintenanceAmount float64 `json:"maintenance_amount"`
	YearlyTax         float64 `json:"yearly_tax"`
	CreatedBy         int64   `json:"created_by"`
}

type propertyResponse struct {
	ID                int64     `json:"id"`
	HouseholdID       int64     `json:"household_id"`
	Name              string    `json:"name"`
	Address           string    `json:"address"`
	Price             float64   `json:"price"`
	Currency          string    `json:"currency"`
	MaintenanceAmount float64   `json:"maintenance_amount"`
	YearlyTax         float64   `json:"yearly_tax"`
	MonthlyExpense    float64   `json:"monthly_expense"`
	CreatedBy         int64     `json:"created_by"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func toPropertyResponse(p core.Property) propertyResponse {
	return propertyResponse{
		ID:                p.ID,
		HouseholdID:       p.HouseholdID,
		Name:              p.Name,
		Address:           p.Address,
		Price:             p.Price,
		Currency:          string(p.Currency),
		MaintenanceAmount: p.MaintenanceAmount,
		YearlyTax:         p.YearlyTax,
		MonthlyExpense:    p.MonthlyExpense(),
		CreatedBy:         p.CreatedBy,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (req propertyRequest) toCore(householdID int64) core.Property {
	return core.Property{
		HouseholdID:       householdID,
		Name:              req.Name,
		Address:           req.Address,
		Price:             req.Price,
		Currency:          core.Currency(req.Currency).OrDefault(),
		MaintenanceAmount: req.MaintenanceAmount,
		YearlyTax:         req.YearlyTax,
		CreatedBy:         req.CreatedBy,
	}
}

func (s *Server) handleListProperties(w http.ResponseWriter, r *http.Request) {
	hid, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	items, err := s.repo.ListProperties(r.Context(), hid)
	if err != nil {
		respondError(w, r, err)
		return
	}
	out := make([]propertyResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toPropertyResponse(p))
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateProperty(w http.ResponseWriter, r *http.Request) {
	hid, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	var req propertyRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err)
		return
	}
	p := req.toCore(hid)
	if err := p.Validate(); err != nil {
		respondBadRequest(w, err)
		return
	}

	created, err := s.repo.CreateProperty(r.Context(), p)
	if err != nil {
		respondRecordError(w, r, err)
		return
	}
	s.recordMutated(r.Context(), hid, "property_created")
	respondJSON(w, http.StatusCreated, toPropertyResponse(created))
}

func (s *Server) handleGetProperty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	p, err := s.repo.GetProperty(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toPropertyResponse(p))
}

func (s *Server) handleUpdateProperty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	existing, err := s.repo.GetProperty(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var req propertyRequest
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

	updated, err := s.repo.UpdateProperty(r.Context(), p)
	if err != nil {
		respondRecordError(w, r, err)
		return
	}
	s.recordMutated(r.Context(), existing.HouseholdID, "property_updated")
	respondJSON(w, http.StatusOK, toPropertyResponse(updated))
}

func (s *Server) handleDeleteProperty(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	existing, err := s.repo.GetProperty(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := s.repo.DeleteProperty(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	s.recordMutated(r.Context(), existing.HouseholdID, "property_deleted")
	respondJSON(w, http.StatusNoContent, nil)
}

// BankAccount

type bankAccountRequest struct {
	Name         string  `json:"name"`
	BankName     string  `json:"bank_name"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	InterestRate float64 `json:"interest_rate"`
	CreatedBy    int64   `json:"created_by"`
}

type bankAccountResponse struct {
	ID                    int64     `json:"id"`
	HouseholdID           int64     `json:"household_id"`
	Name                  string    `json:"name"`
	BankName              string    `json:"bank_name"`
	Amount                float64   `json:"amount"`
	Currency              string    `json:"currency"`
	InterestRate          float64   `json:"interest_rate"`
	MonthlyInterestIncome float64   `json:"monthly_interest_income"`
	CreatedBy             int64     `json:"created_by"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func toBankAccountResponse(b core.BankAccount) bankAccountResponse {
	return bankAccountResponse{
		ID:                    b.ID,
		HouseholdID:           b.HouseholdID,
		Name:                  b.Name,
		BankName:              b.BankName,
		Amount:                b.Amount,
		Currency:              string(b.Currency),
		InterestRate:          b.InterestRate,
		MonthlyInterestIncome: core.MonthlyInterestIncome(b.Amount, b.InterestRate),
		CreatedBy:             b.CreatedBy,
		CreatedAt:             b.CreatedAt,
		UpdatedAt:             b.UpdatedAt,
	}
}

func (req bankAccountRequest) toCore(householdID int64) core.BankAccount {
	return core.BankAccount{
		HouseholdID:  householdID,
		Name:         req.Name,
		BankName:     req.BankName,
		Amount:       req.Amount,
		Currency:     core.Currency(req.Currency).OrDefault(),
		InterestRate: req.InterestRate,
		CreatedBy:    req.CreatedBy,
	}
}

func (s *Server) handleListBankAccounts(w http.ResponseWriter, r *http.Request) {
	hid, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	items, err := s.repo.ListBankAccounts(r.Context(), hid)
	if err != nil {
		respondError(w, r, err)
		return
	}
	out := make([]bankAccountResponse, 0, len(items))
	for _, b := range items {
		out = append(out, toBankAccountResponse(b))
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateBankAccount(w http.ResponseWriter, r *http.Request) {
	hid, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	var req bankAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err)
		return
	}
	b := req.toCore(hid)
	if err := b.Validate(); err != nil {
		respondBadRequest(w, err)
		return
	}

	created, err := s.repo.CreateBankAccount(r.Context(), b)
	if err != nil {
		respondRecordError(w, r, err)
		return
	}
	s.recordMutated(r.Context(), hid, "bank_account_created")
	respondJSON(w, http.StatusCreated, toBankAccountResponse(created))
}

func (s *Server) handleGetBankAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	b, err := s.repo.GetBankAccount(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toBankAccountResponse(b))
}

func (s *Server) handleUpdateBankAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	existing, err := s.repo.GetBankAccount(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var req bankAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err)
		return
	}
	b := req.toCore(existing.HouseholdID)
	b.ID = id
	if err := b.Validate(); err != nil {
		respondBadRequest(w, err)
		return
	}

	updated, err := s.repo.UpdateBankAccount(r.Context(), b)
	if err != nil {
		respondRecordError(w, r, err)
		return
	}
	s.recordMutated(r.Context(), existing.HouseholdID, "bank_account_updated")
	respondJSON(w, http.StatusOK, toBankAccountResponse(updated))
}

func (s *Server) handleDeleteBankAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	existing, err := s.repo.GetBankAccount(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := s.repo.DeleteBankAccount(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	s.recordMutated(r.Context(), existing.HouseholdID, "bank_account_deleted")
	respondJSON(w, http.StatusNoContent, nil)
}

// Vehicle

type vehicleRequest struct {
	Model            string  `json:"model"`
	Year             int     `json:"year"`
	SalePrice        float64 `json:"sale_price"`
	MaintenanceCosts float64 `json:"maintenance_costs"`
	Currency         string  `json:"currency"`
	CreatedBy        int64   `json:"created_by"`
}

type vehicleResponse struct {
	ID                 int64     `json:"id"`
	HouseholdID        int64     `json:"household_id"`
	Model              string    `json:"model"`
	Year               int       `json:"year"`
	SalePrice          float64   `json:"sale_price"`
	MaintenanceCosts   float64   `json:"maintenance_costs"`
	MonthlyMaintenance float64   `json:"monthly_maintenance"`
	Currency           string    `json:"currency"`
	CreatedBy          int64     `json:"created_by"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func toVehicleResponse(v core.Vehicle) vehicleResponse {
	return vehicleResponse{
		ID:                 v.ID,
		HouseholdID:        v.HouseholdID,
		Model:              v.Model,
		Year:               v.Year,
		SalePrice:          v.SalePrice,
		MaintenanceCosts:   v.MaintenanceCosts,
		MonthlyMaintenance: v.MonthlyMaintenance(),
		Currency:           string(v.Currency),
		CreatedBy:          v.CreatedBy,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

func (req vehicleRequest) toCore(householdID int64) core.Vehicle {
	return core.Vehicle{
		HouseholdID:      householdID,
		Model:            req.Model,
		Year:             req.Year,
		SalePrice:        req.SalePrice,
		MaintenanceCosts: req.MaintenanceCosts,
		Currency:         core.Currency(req.Currency).OrDefault(),
		CreatedBy:        req.CreatedBy,
	}
}

func (s *Server) handleListVehicles(w http.ResponseWriter, r *http.Request) {
	hid, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	items, err := s.repo.ListVehicles(r.Context(), hid)
	if err != nil {
		respondError(w, r, err)
		return
	}
	out := make([]vehicleResponse, 0, len(items))
	for _, v := range items {
		out = append(out, toVehicleResponse(v))
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateVehicle(w http.ResponseWriter, r *http.Request) {
	hid, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	var req vehicleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err)
		return
	}
	v := req.toCore(hid)
	if err := v.Validate(); err != nil {
		respondBadRequest(w, err)
		return
	}

	created, err := s.repo.CreateVehicle(r.Context(), v)
	if err != nil {
		respondRecordError(w, r, err)
		return
	}
	s.recordMutated(r.Context(), hid, "vehicle_created")
	respondJSON(w, http.StatusCreated, toVehicleResponse(created))
}

func (s *Server) handleGetVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	v, err := s.repo.GetVehicle(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toVehicleResponse(v))
}

func (s *Server) handleUpdateVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	existing, err := s.repo.GetVehicle(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var req vehicleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err)
		return
	}
	v := req.toCore(existing.HouseholdID)
	v.ID = id
	if err := v.Validate(); err != nil {
		respondBadRequest(w, err)
		return
	}

	updated, err := s.repo.UpdateVehicle(r.Context(), v)
	if err != nil {
		respondRecordError(w, r, err)
		return
	}
	s.recordMutated(r.Context(), existing.HouseholdID, "vehicle_updated")
	respondJSON(w, http.StatusOK, toVehicleResponse(updated))
}

func (s *Server) handleDeleteVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	existing, err := s.repo.GetVehicle(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := s.repo.DeleteVehicle(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	s.recordMutated(r.Context(), existing.HouseholdID, "vehicle_deleted")
	respondJSON(w, http.StatusNoContent, nil)
}

// Credit

type creditRequest struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	TotalAmount     float64 `json:"total_amount"`
	RemainingAmount float64 `json:"remaining_amount"`
	MonthlyPayment  float64 `json:"monthly_payment"`
	Currency        string  `json:"currency"`
	CreatedBy       int64   `json:"created_by"`
}

type creditResponse struct {
	ID              int64     `json:"id"`
	HouseholdID     int64     `json:"household_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	TotalAmount     float64   `json:"total_amount"`
	RemainingAmount float64   `json:"remaining_amount"`
	MonthlyPayment  float64   `json:"monthly_payment"`
	Paid            float64   `json:"paid"`
	Progress        float64   `json:"progress"`
	Currency        string    `json:"currency"`
	CreatedBy       int64     `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toCreditResponse(c core.Credit) creditResponse {
	return creditResponse{
		ID:              c.ID,
		HouseholdID:     c.HouseholdID,
		Name:            c.Name,
		Description:     c.Description,
		TotalAmount:     c.TotalAmount,
		RemainingAmount: c.RemainingAmount,
		MonthlyPayment:  c.MonthlyPayment,
		Paid:            c.Paid(),
		Progress:        c.Progress(),
		Currency:        string(c.Currency),
		CreatedBy:       c.CreatedBy,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func (req creditRequest) toCore(householdID int64) core.Credit {
	return core.Credit{
		HouseholdID:     householdID,
		Name:            req.Name,
		Description:     req.Description,
		TotalAmount:     req.TotalAmount,
		RemainingAmount: req.RemainingAmount,
		MonthlyPayment:  req.MonthlyPayment,
		Currency:        core.Currency(req.Currency).OrDefault(),
		CreatedBy:       req.CreatedBy,
	}
}

func (s *Server) handleListCredits(w http.ResponseWriter, r *http.Request) {
	hid, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	items, err := s.repo.ListCredits(r.Context(), hid)
	if err != nil {
		respondError(w, r, err)
		return
	}
	out := make([]creditResponse, 0, len(items))
	for _, c := range items {
		out = append(out, toCreditResponse(c))
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateCredit(w http.ResponseWriter, r *http.Request) {
	hid, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	var req creditRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err)
		return
	}
	c := req.toCore(hid)
	if err := c.Validate(); err != nil {
		respondBadRequest(w, err)
		return
	}

	created, err := s.repo.CreateCredit(r.Context(), c)
	if err != nil {
		respondRecordError(w, r, err)
		return
	}
	s.recordMutated(r.Context(), hid, "credit_created")
	respondJSON(w, http.StatusCreated, toCreditResponse(created))
}

func (s *Server) handleGetCredit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	c, err := s.repo.GetCredit(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toCreditResponse(c))
}

func (s *Server) handleUpdateCredit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	existing, err := s.repo.GetCredit(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	var req creditRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err)
		return
	}
	c := req.toCore(existing.HouseholdID)
	c.ID = id
	if err := c.Validate(); err != nil {
		respondBadRequest(w, err)
		return
	}

	updated, err := s.repo.UpdateCredit(r.Context(), c)
	if err != nil {
		respondRecordError(w, r, err)
		return
	}
	s.recordMutated(r.Context(), existing.HouseholdID, "credit_updated")
	respondJSON(w, http.StatusOK, toCreditResponse(updated))
}

func (s *Server) handleDeleteCredit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	existing, err := s.repo.GetCredit(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := s.repo.DeleteCredit(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	s.recordMutated(r.Context(), existing.HouseholdID, "credit_deleted")
	respondJSON(w, http.StatusNoContent, nil)
}
