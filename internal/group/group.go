package group

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrTreasurerExists = errors.New("group already has an active treasurer")
	ErrNoTreasurer     = errors.New("no acting treasurer available")
)

// Type distinguishes the two tiers of the hierarchy: RT (subordinate) groups
// report to exactly one RW (root) group.
type Type string

const (
	TypeSubordinate Type = "SUBORDINATE"
	TypeRoot        Type = "ROOT"
)

// Group is one RT or RW. A root group never has a parent; a subordinate group
// always has exactly one, set at creation and immutable afterwards.
type Group struct {
	ID        uuid.UUID
	Type      Type
	Name      string
	ParentID  *uuid.UUID
	CreatedAt time.Time
}

// Role represents a user's position within their group.
type Role string

const (
	RoleRootLeader       Role = "ROOT_LEADER"
	RoleSubordinateAdmin Role = "SUBORDINATE_ADMIN"
	RoleTreasurer        Role = "TREASURER"
	RoleResident         Role = "RESIDENT"
)

// IsOfficer reports whether the role may manage group events and settings.
func (r Role) IsOfficer() bool {
	return r == RoleRootLeader || r == RoleSubordinateAdmin || r == RoleTreasurer
}

// User belongs to exactly one group. LastPaidPeriod marks the end of the month
// range already covered by dues payments; nil means never paid.
type User struct {
	ID             uuid.UUID
	GroupID        uuid.UUID
	Name           string
	Email          string
	PasswordHash   string
	Role           Role
	LastPaidPeriod *time.Time
	CreatedAt      time.Time
}

// Actor identifies the authenticated caller of a guarded operation.
type Actor struct {
	ID      uuid.UUID
	GroupID uuid.UUID
	Role    Role
}

// DuesRule sets the monthly dues rate for one group. DueDay is informational
// only.
type DuesRule struct {
	ID        uuid.UUID
	GroupID   uuid.UUID
	Amount    int64
	DueDay    int
	IsActive  bool
	UpdatedAt time.Time
}

// TreasurerSource tags where the acting treasurer for a group was found.
type TreasurerSource string

const (
	TreasurerOwnGroup    TreasurerSource = "own_group"
	TreasurerParentGroup TreasurerSource = "parent_group"
	TreasurerNone        TreasurerSource = "none"
)

// TreasurerLookup is the result of resolving the acting treasurer for a group:
// found in the group itself, found in its parent, or none available.
type TreasurerLookup struct {
	Source    TreasurerSource
	Treasurer *User
}
