package http

import (
	"log/slog"
	"net/http"
	"time"

	"hearth/internal/core"
)

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	cur, err := currencyParam(r, s.defaultCur)
	if err != nil {
		respondBadRequest(w, err)
		return
	}

	// Summaries are recomputed from a fresh record and rate snapshot on
	// every read; only the rate table itself is cached.
	summary, err := s.summaries.BuildSummary(r.Context(), id, cur)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

type snapshotResponse struct {
	ID         int64                 `json:"id"`
	Currency   core.Currency         `json:"currency"`
	Summary    core.FinancialSummary `json:"summary"`
	CapturedAt time.Time             `json:"captured_at"`
}

func (s *Server) handleListSnapshots(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	snaps, err := s.repo.ListSnapshots(r.Context(), id, limitParam(r, 50))
	if err != nil {
		respondError(w, r, err)
		return
	}
	out := make([]snapshotResponse, 0, len(snaps))
	for _, snap := range snaps {
		out = append(out, snapshotResponse{
			ID:         snap.ID,
			Currency:   snap.Currency,
			Summary:    snap.Summary,
			CapturedAt: snap.CapturedAt,
		})
	}
	respondJSON(w, http.StatusOK, out)
}

// handleRefresh queues an asynchronous snapshot of the household.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	if _, err := s.households.GetHousehold(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	s.summaries.NotifyRecordChange(r.Context(), id, "manual_refresh")
	slog.InfoContext(r.Context(), "Queued summary refresh", "household_id", id)
	respondJSON(w, http.StatusAccepted, map[string]string{"status": "queued"})
}
