package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"hearth/internal/core"
)

type fakeHouseholdStore struct {
	households  map[int64]core.Household
	members     map[int64][]core.Member
	invitations map[string]core.Invitation
	nextID      int64
}

func newFakeHouseholdStore() *fakeHouseholdStore {
	return &fakeHouseholdStore{
		households:  make(map[int64]core.Household),
		members:     make(map[int64][]core.Member),
		invitations: make(map[string]core.Invitation),
	}
}

func (f *fakeHouseholdStore) CreateHousehold(ctx context.Context, name string, createdBy int64) (core.Household, error) {
	f.nextID++
	hh := core.Household{ID: f.nextID, Name: name, CreatedBy: createdBy}
	f.households[hh.ID] = hh
	f.members[hh.ID] = []core.Member{{HouseholdID: hh.ID, UserID: createdBy, Role: core.RoleOwner}}
	return hh, nil
}

func (f *fakeHouseholdStore) GetHousehold(ctx context.Context, id int64) (core.Household, error) {
	hh, ok := f.households[id]
	if !ok {
		return core.Household{}, errors.New("not found")
	}
	return hh, nil
}

func (f *fakeHouseholdStore) ListHouseholdsByUser(ctx context.Context, userID int64) ([]core.Household, error) {
	var out []core.Household
	for id, members := range f.members {
		for _, m := range members {
			if m.UserID == userID {
				out = append(out, f.households[id])
			}
		}
	}
	return out, nil
}

func (f *fakeHouseholdStore) ListMembers(ctx context.Context, householdID int64) ([]core.Member, error) {
	return f.members[householdID], nil
}

func (f *fakeHouseholdStore) AddMember(ctx context.Context, householdID, userID int64, role core.Role) error {
	for _, m := range f.members[householdID] {
		if m.UserID == userID {
			return nil
		}
	}
	f.members[householdID] = append(f.members[householdID], core.Member{HouseholdID: householdID, UserID: userID, Role: role})
	return nil
}

func (f *fakeHouseholdStore) RemoveMember(ctx context.Context, householdID, userID int64) error {
	members := f.members[householdID]
	for i, m := range members {
		if m.UserID == userID {
			f.members[householdID] = append(members[:i], members[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeHouseholdStore) CreateInvitation(ctx context.Context, inv core.Invitation) (core.Invitation, error) {
	f.nextID++
	inv.ID = f.nextID
	f.invitations[inv.Token] = inv
	return inv, nil
}

func (f *fakeHouseholdStore) GetInvitationByToken(ctx context.Context, token string, now time.Time) (core.Invitation, error) {
	inv, ok := f.invitations[token]
	if !ok || inv.Status != core.InvitationPending || inv.Expired(now) {
		return core.Invitation{}, errors.New("not found")
	}
	return inv, nil
}

func (f *fakeHouseholdStore) ListInvitationsByEmail(ctx context.Context, email string, now time.Time) ([]core.Invitation, error) {
	var out []core.Invitation
	for _, inv := range f.invitations {
		if inv.Email == email && inv.Status == core.InvitationPending && !inv.Expired(now) {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (f *fakeHouseholdStore) UpdateInvitationStatus(ctx context.Context, id int64, status core.InvitationStatus) error {
	for token, inv := range f.invitations {
		if inv.ID == id {
			inv.Status = status
			f.invitations[token] = inv
			return nil
		}
	}
	return errors.New("not found")
}

func TestCreateHouseholdValidation(t *testing.T) {
	svc := NewHouseholdService(newFakeHouseholdStore())

	if _, err := svc.CreateHousehold(context.Background(), "   ", 1); !errors.Is(err, ErrEmptyHouseholdName) {
		t.Errorf("expected ErrEmptyHouseholdName, got %v", err)
	}

	hh, err := svc.CreateHousehold(context.Background(), "  Smiths  ", 1)
	if err != nil {
		t.Fatalf("create household: %v", err)
	}
	if hh.Name != "Smiths" {
		t.Errorf("name = %q, want trimmed %q", hh.Name, "Smiths")
	}
}

func TestInvitationFlow(t *testing.T) {
	store := newFakeHouseholdStore()
	svc := NewHouseholdService(store)
	ctx := context.Background()

	hh, err := svc.CreateHousehold(ctx, "Smiths", 1)
	if err != nil {
		t.Fatalf("create household: %v", err)
	}

	inv, err := svc.Invite(ctx, hh.ID, 1, "  Partner@Example.com ")
	if err != nil {
		t.Fatalf("invite: %v", err)
	}
	if inv.Email != "partner@example.com" {
		t.Errorf("email = %q, want normalized lowercase", inv.Email)
	}
	if inv.Token == "" {
		t.Fatal("expected a token")
	}
	if got := time.Until(inv.ExpiresAt); got > core.InvitationTTL || got < core.InvitationTTL-time.Minute {
		t.Errorf("expiry window = %v, want about %v", got, core.InvitationTTL)
	}

	pending, err := svc.PendingInvitations(ctx, "partner@example.com")
	if err != nil {
		t.Fatalf("pending invitations: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending invitation, got %d", len(pending))
	}

	joined, err := svc.Accept(ctx, inv.Token, 2)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if joined.ID != hh.ID {
		t.Errorf("joined household %d, want %d", joined.ID, hh.ID)
	}
	members, _ := store.ListMembers(ctx, hh.ID)
	if len(members) != 2 {
		t.Fatalf("expected 2 members after accept, got %d", len(members))
	}

	// Token is single-use.
	if _, err := svc.Accept(ctx, inv.Token, 3); err == nil {
		t.Error("expected error accepting a settled token")
	}
}

func TestInviteValidation(t *testing.T) {
	store := newFakeHouseholdStore()
	svc := NewHouseholdService(store)
	ctx := context.Background()

	hh, _ := svc.CreateHousehold(ctx, "Smiths", 1)

	if _, err := svc.Invite(ctx, hh.ID, 1, "not-an-email"); !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("expected ErrInvalidEmail, got %v", err)
	}
	if _, err := svc.Invite(ctx, 999, 1, "a@b.com"); err == nil {
		t.Error("expected error inviting to unknown household")
	}
}

func TestRejectInvitation(t *testing.T) {
	store := newFakeHouseholdStore()
	svc := NewHouseholdService(store)
	ctx := context.Background()

	hh, _ := svc.CreateHousehold(ctx, "Smiths", 1)
	inv, err := svc.Invite(ctx, hh.ID, 1, "a@b.com")
	if err != nil {
		t.Fatalf("invite: %v", err)
	}

	if err := svc.Reject(ctx, inv.Token); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if _, err := svc.Accept(ctx, inv.Token, 2); err == nil {
		t.Error("expected error accepting a rejected token")
	}
	members, _ := store.ListMembers(ctx, hh.ID)
	if len(members) != 1 {
		t.Errorf("expected membership unchanged, got %d members", len(members))
	}
}

func TestExpiredInvitation(t *testing.T) {
	store := newFakeHouseholdStore()
	svc := NewHouseholdService(store)
	ctx := context.Background()

	hh, _ := svc.CreateHousehold(ctx, "Smiths", 1)
	inv, err := svc.Invite(ctx, hh.ID, 1, "a@b.com")
	if err != nil {
		t.Fatalf("invite: %v", err)
	}

	// Jump past the TTL.
	svc.now = func() time.Time { return time.Now().Add(core.InvitationTTL + time.Hour) }
	if _, err := svc.Accept(ctx, inv.Token, 2); err == nil {
		t.Error("expected error accepting an expired token")
	}
}
