package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"hearth/internal/core"
	"hearth/internal/services"
)

type householdResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedBy int64     `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

func toHouseholdResponse(h core.Household) householdResponse {
	return householdResponse{ID: h.ID, Name: h.Name, CreatedBy: h.CreatedBy, CreatedAt: h.CreatedAt}
}

func (s *Server) handleCreateHousehold(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string `json:"name"`
		CreatedBy int64  `json:"created_by"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err)
		return
	}

	hh, err := s.households.CreateHousehold(r.Context(), req.Name, req.CreatedBy)
	if err != nil {
		if errors.Is(err, services.ErrEmptyHouseholdName) {
			respondBadRequest(w, err)
			return
		}
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, toHouseholdResponse(hh))
}

func (s *Server) handleListHouseholds(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		respondBadRequest(w, errors.New("user_id query parameter required"))
		return
	}

	hhs, err := s.households.ListHouseholds(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	out := make([]householdResponse, 0, len(hhs))
	for _, h := range hhs {
		out = append(out, toHouseholdResponse(h))
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetHousehold(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	hh, err := s.households.GetHousehold(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toHouseholdResponse(hh))
}

type memberResponse struct {
	HouseholdID int64     `json:"household_id"`
	UserID      int64     `json:"user_id"`
	Role        core.Role `json:"role"`
	JoinedAt    time.Time `json:"joined_at"`
}

func (s *Server) handleListMembers(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	members, err := s.households.ListMembers(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	out := make([]memberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, memberResponse{
			HouseholdID: m.HouseholdID,
			UserID:      m.UserID,
			Role:        m.Role,
			JoinedAt:    m.JoinedAt,
		})
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	userID, err := pathID(r, "userID")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	if err := s.households.RemoveMember(r.Context(), id, userID); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

type invitationResponse struct {
	ID          int64                 `json:"id"`
	Email       string                `json:"email"`
	HouseholdID int64                 `json:"household_id"`
	Token       string                `json:"token"`
	Status      core.InvitationStatus `json:"status"`
	ExpiresAt   time.Time             `json:"expires_at"`
}

func toInvitationResponse(inv core.Invitation) invitationResponse {
	return invitationResponse{
		ID:          inv.ID,
		Email:       inv.Email,
		HouseholdID: inv.HouseholdID,
		Token:       inv.Token,
		Status:      inv.Status,
		ExpiresAt:   inv.ExpiresAt,
	}
}

func (s *Server) handleInvite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondBadRequest(w, err)
		return
	}
	var req struct {
		Email     string `json:"email"`
		InvitedBy int64  `json:"invited_by"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err)
		return
	}

	inv, err := s.households.Invite(r.Context(), id, req.InvitedBy, req.Email)
	if err != nil {
		if errors.Is(err, services.ErrInvalidEmail) {
			respondBadRequest(w, err)
			return
		}
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, toInvitationResponse(inv))
}

func (s *Server) handleListInvitations(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		respondBadRequest(w, errors.New("email query parameter required"))
		return
	}
	invs, err := s.households.PendingInvitations(r.Context(), email)
	if err != nil {
		respondError(w, r, err)
		return
	}
	out := make([]invitationResponse, 0, len(invs))
	for _, inv := range invs {
		out = append(out, toInvitationResponse(inv))
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleAcceptInvitation(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	var req struct {
		UserID int64 `json:"user_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err)
		return
	}
	if req.UserID <= 0 {
		respondBadRequest(w, errors.New("user_id required"))
		return
	}

	hh, err := s.households.Accept(r.Context(), token, req.UserID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toHouseholdResponse(hh))
}

func (s *Server) handleRejectInvitation(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if err := s.households.Reject(r.Context(), token); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
