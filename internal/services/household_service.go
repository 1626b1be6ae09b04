package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"hearth/internal/core"
)

var (
	ErrEmptyHouseholdName = errors.New("household name required")
	ErrInvalidEmail       = errors.New("valid email required")
)

// HouseholdStore is the membership slice of the repository.
// *storage.SQLiteRepository satisfies it.
type HouseholdStore interface {
	CreateHousehold(ctx context.Context, name string, createdBy int64) (core.Household, error)
	GetHousehold(ctx context.Context, id int64) (core.Household, error)
	ListHouseholdsByUser(ctx context.Context, userID int64) ([]core.Household, error)
	ListMembers(ctx context.Context, householdID int64) ([]core.Member, error)
	AddMember(ctx context.Context, householdID, userID int64, role core.Role) error
	RemoveMember(ctx context.Context, householdID, userID int64) error
	CreateInvitation(ctx context.Context, inv core.Invitation) (core.Invitation, error)
	GetInvitationByToken(ctx context.Context, token string, now time.Time) (core.Invitation, error)
	ListInvitationsByEmail(ctx context.Context, email string, now time.Time) ([]core.Invitation, error)
	UpdateInvitationStatus(ctx context.Context, id int64, status core.InvitationStatus) error
}

// HouseholdService handles household membership and invitation flows.
type HouseholdService struct {
	store HouseholdStore
	now   func() time.Time
}

func NewHouseholdService(store HouseholdStore) *HouseholdService {
	return &HouseholdService{store: store, now: time.Now}
}

func (s *HouseholdService) CreateHousehold(ctx context.Context, name string, createdBy int64) (core.Household, error) {
	if strings.TrimSpace(name) == "" {
		return core.Household{}, ErrEmptyHouseholdName
	}
	return s.store.CreateHousehold(ctx, strings.TrimSpace(name), createdBy)
}

func (s *HouseholdService) GetHousehold(ctx context.Context, id int64) (core.Household, error) {
	return s.store.GetHousehold(ctx, id)
}

func (s *HouseholdService) ListHouseholds(ctx context.Context, userID int64) ([]core.Household, error) {
	return s.store.ListHouseholdsByUser(ctx, userID)
}

func (s *HouseholdService) ListMembers(ctx context.Context, householdID int64) ([]core.Member, error) {
	return s.store.ListMembers(ctx, householdID)
}

func (s *HouseholdService) RemoveMember(ctx context.Context, householdID, userID int64) error {
	return s.store.RemoveMember(ctx, householdID, userID)
}

// Invite creates a pending invitation with a fresh token. Tokens expire
// after core.InvitationTTL.
func (s *HouseholdService) Invite(ctx context.Context, householdID, invitedBy int64, email string) (core.Invitation, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return core.Invitation{}, ErrInvalidEmail
	}
	if _, err := s.store.GetHousehold(ctx, householdID); err != nil {
		return core.Invitation{}, fmt.Errorf("invite to household %d: %w", householdID, err)
	}

	now := s.now()
	return s.store.CreateInvitation(ctx, core.Invitation{
		Email:       email,
		HouseholdID: householdID,
		InvitedBy:   invitedBy,
		Token:       uuid.NewString(),
		Status:      core.InvitationPending,
		ExpiresAt:   now.Add(core.InvitationTTL),
	})
}

// Accept resolves a pending token, adds the user as a member and settles
// the invitation. Expired or already-settled tokens report ErrNotFound
// from the store.
func (s *HouseholdService) Accept(ctx context.Context, token string, userID int64) (core.Household, error) {
	inv, err := s.store.GetInvitationByToken(ctx, token, s.now())
	if err != nil {
		return core.Household{}, fmt.Errorf("resolve invitation: %w", err)
	}
	if err := s.store.AddMember(ctx, inv.HouseholdID, userID, core.RoleMember); err != nil {
		return core.Household{}, fmt.Errorf("add member: %w", err)
	}
	if err := s.store.UpdateInvitationStatus(ctx, inv.ID, core.InvitationAccepted); err != nil {
		return core.Household{}, fmt.Errorf("settle invitation: %w", err)
	}
	return s.store.GetHousehold(ctx, inv.HouseholdID)
}

// Reject settles a pending token without adding a member.
func (s *HouseholdService) Reject(ctx context.Context, token string) error {
	inv, err := s.store.GetInvitationByToken(ctx, token, s.now())
	if err != nil {
		return fmt.Errorf("resolve invitation: %w", err)
	}
	return s.store.UpdateInvitationStatus(ctx, inv.ID, core.InvitationRejected)
}

// PendingInvitations lists the open invitations addressed to an email.
func (s *HouseholdService) PendingInvitations(ctx context.Context, email string) ([]core.Invitation, error) {
	return s.store.ListInvitationsByEmail(ctx, strings.ToLower(strings.TrimSpace(email)), s.now())
}
