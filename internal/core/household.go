package core

import "time"

// InvitationTTL is how long a pending invitation stays valid.
const InvitationTTL = 7 * 24 * time.Hour

type (
	// Household groups users sharing one set of financial records.
	Household struct {
		ID        int64
		Name      string
		CreatedBy int64
		CreatedAt time.Time
	}

	// Member is a user's membership in a household.
	Member struct {
		HouseholdID int64
		UserID      int64
		Role        Role
		JoinedAt    time.Time
	}

	// Invitation asks an email address to join a household. Tokens expire
	// after InvitationTTL.
	Invitation struct {
		ID          int64
		Email       string
		HouseholdID int64
		InvitedBy   int64
		Token       string
		Status      InvitationStatus
		ExpiresAt   time.Time
		CreatedAt   time.Time
	}
)

// Role is a member's role within a household.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleMember Role = "member"
)

// InvitationStatus tracks an invitation through its lifecycle.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationRejected InvitationStatus = "rejected"
)

// Expired reports whether the invitation can no longer be accepted.
func (i Invitation) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

func (h Household) Validate() error {
	return validName(h.Name)
}
