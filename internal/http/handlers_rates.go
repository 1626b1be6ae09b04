package http

import (
	"net/http"
	"strings"
	"time"

	"hearth/internal/core"
)

type rateResponse struct {
	From      core.Currency `json:"from"`
	To        core.Currency `json:"to"`
	Rate      float64       `json:"rate"`
	UpdatedAt time.Time     `json:"updated_at"`
}

const ratesCacheKey = "rates"

func (s *Server) handleListRates(w http.ResponseWriter, r *http.Request) {
	if cached, ok := s.rateCache.Get(ratesCacheKey); ok {
		w.Header().Set("X-Cache", "HIT")
		respondJSON(w, http.StatusOK, cached)
		return
	}

	rates, err := s.repo.ListRates(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	out := make([]rateResponse, 0, len(rates))
	for _, rate := range rates {
		out = append(out, rateResponse{From: rate.From, To: rate.To, Rate: rate.Rate, UpdatedAt: rate.UpdatedAt})
	}
	s.rateCache.Set(ratesCacheKey, out)

	w.Header().Set("X-Cache", "MISS")
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleUpsertRate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		From string  `json:"from"`
		To   string  `json:"to"`
		Rate float64 `json:"rate"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err)
		return
	}

	rate := core.CurrencyRate{
		From: core.Currency(strings.ToUpper(strings.TrimSpace(req.From))),
		To:   core.Currency(strings.ToUpper(strings.TrimSpace(req.To))),
		Rate: req.Rate,
	}
	if err := rate.Validate(); err != nil {
		respondBadRequest(w, err)
		return
	}
	if err := s.repo.UpsertRate(r.Context(), rate); err != nil {
		respondError(w, r, err)
		return
	}

	s.rateCache.DeleteFunc(func(string) bool { return true })
	respondJSON(w, http.StatusOK, rateResponse{From: rate.From, To: rate.To, Rate: rate.Rate, UpdatedAt: time.Now()})
}

func (s *Server) handleDeleteRate(w http.ResponseWriter, r *http.Request) {
	from := core.Currency(strings.ToUpper(r.PathValue("from")))
	to := core.Currency(strings.ToUpper(r.PathValue("to")))

	if err := s.repo.DeleteRate(r.Context(), from, to); err != nil {
		respondError(w, r, err)
		return
	}
	s.rateCache.DeleteFunc(func(string) bool { return true })
	respondJSON(w, http.StatusNoContent, nil)
}
