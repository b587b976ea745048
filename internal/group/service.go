package group

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=group
type Repository interface {
	Begin(ctx context.Context) (Tx, error)

	Group(ctx context.Context, id uuid.UUID) (*Group, error)
	Children(ctx context.Context, id uuid.UUID) ([]*Group, error)
	ListGroups(ctx context.Context) ([]*Group, error)

	User(ctx context.Context, id uuid.UUID) (*User, error)
	UserByEmail(ctx context.Context, email string) (*User, error)
	ActiveTreasurer(ctx context.Context, groupID uuid.UUID) (*User, error)
	ActiveDuesRule(ctx context.Context, groupID uuid.UUID) (*DuesRule, error)
}

type Tx interface {
	InsertGroup(ctx context.Context, g *Group) error
	InsertWallet(ctx context.Context, groupID uuid.UUID) error
	InsertUser(ctx context.Context, u *User) error
	ActiveTreasurer(ctx context.Context, groupID uuid.UUID) (*User, error)
	UpdateUserRole(ctx context.Context, userID uuid.UUID, role Role) error
	UpsertDuesRule(ctx context.Context, rule *DuesRule) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateGroupParams struct {
	Type     Type
	Name     string
	ParentID *uuid.UUID
}

// CreateGroup creates a group together with its wallet in one unit of work.
// Subordinate groups must name a root parent; root groups must not name one.
func (s *Service) CreateGroup(ctx context.Context, params CreateGroupParams) (*Group, error) {
	switch params.Type {
	case TypeRoot:
		if params.ParentID != nil {
			return nil, fmt.Errorf("root group cannot have a parent")
		}
	case TypeSubordinate:
		if params.ParentID == nil {
			return nil, fmt.Errorf("subordinate group requires a parent")
		}

		parent, err := s.repo.Group(ctx, *params.ParentID)
		if err != nil {
			return nil, fmt.Errorf("looking up parent: %w", err)
		}

		if parent.Type != TypeRoot {
			return nil, fmt.Errorf("parent of a subordinate group must be a root group")
		}
	default:
		return nil, fmt.Errorf("unknown group type %q", params.Type)
	}

	g := &Group{
		ID:       uuid.New(),
		Type:     params.Type,
		Name:     params.Name,
		ParentID: params.ParentID,
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if err := tx.InsertGroup(ctx, g); err != nil {
		return nil, fmt.Errorf("creating group: %w", err)
	}

	if err := tx.InsertWallet(ctx, g.ID); err != nil {
		return nil, fmt.Errorf("creating wallet: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return g, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Group, error) {
	return s.repo.Group(ctx, id)
}

func (s *Service) Children(ctx context.Context, id uuid.UUID) ([]*Group, error) {
	return s.repo.Children(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Group, error) {
	return s.repo.ListGroups(ctx)
}

func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.User(ctx, id)
}

func (s *Service) UserByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.UserByEmail(ctx, email)
}

type RegisterUserParams struct {
	GroupID      uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         Role
}

// RegisterUser creates a user in a group. At most one active treasurer may
// exist per group; the check runs inside the same unit of work as the insert.
func (s *Service) RegisterUser(ctx context.Context, params RegisterUserParams) (*User, error) {
	if _, err := s.repo.Group(ctx, params.GroupID); err != nil {
		return nil, fmt.Errorf("looking up group: %w", err)
	}

	u := &User{
		ID:           uuid.New(),
		GroupID:      params.GroupID,
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		Role:         params.Role,
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if params.Role == RoleTreasurer {
		if err := ensureNoTreasurer(ctx, tx, params.GroupID); err != nil {
			return nil, err
		}
	}

	if err := tx.InsertUser(ctx, u); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return u, nil
}

// ChangeUserRole assigns a new role, re-checking treasurer uniqueness when the
// new role is treasurer.
func (s *Service) ChangeUserRole(ctx context.Context, userID uuid.UUID, role Role) error {
	u, err := s.repo.User(ctx, userID)
	if err != nil {
		return fmt.Errorf("looking up user: %w", err)
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if role == RoleTreasurer && u.Role != RoleTreasurer {
		if err := ensureNoTreasurer(ctx, tx, u.GroupID); err != nil {
			return err
		}
	}

	if err := tx.UpdateUserRole(ctx, userID, role); err != nil {
		return fmt.Errorf("updating role: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

func ensureNoTreasurer(ctx context.Context, tx Tx, groupID uuid.UUID) error {
	_, err := tx.ActiveTreasurer(ctx, groupID)
	if err == nil {
		return ErrTreasurerExists
	}

	if !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("checking treasurer: %w", err)
	}

	return nil
}

type SetDuesRuleParams struct {
	GroupID  uuid.UUID
	Amount   int64
	DueDay   int
	IsActive bool
}

// SetDuesRule creates or replaces the group's dues rule. Only an officer of
// the group itself may change it.
func (s *Service) SetDuesRule(ctx context.Context, actor Actor, params SetDuesRuleParams) (*DuesRule, error) {
	if !actor.Role.IsOfficer() || actor.GroupID != params.GroupID {
		return nil, fmt.Errorf("only a group officer may set dues: %w", ErrForbidden)
	}

	if params.Amount < 0 {
		return nil, fmt.Errorf("dues amount must not be negative")
	}

	if params.DueDay < 1 || params.DueDay > 31 {
		return nil, fmt.Errorf("due day must be between 1 and 31")
	}

	rule := &DuesRule{
		ID:       uuid.New(),
		GroupID:  params.GroupID,
		Amount:   params.Amount,
		DueDay:   params.DueDay,
		IsActive: params.IsActive,
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if err := tx.UpsertDuesRule(ctx, rule); err != nil {
		return nil, fmt.Errorf("saving dues rule: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return rule, nil
}

// FindActingTreasurer resolves the treasurer responsible for a group: first
// the group's own active treasurer, then the parent group's as a fallback.
func (s *Service) FindActingTreasurer(ctx context.Context, groupID uuid.UUID) (TreasurerLookup, error) {
	t, err := s.repo.ActiveTreasurer(ctx, groupID)
	if err == nil {
		return TreasurerLookup{Source: TreasurerOwnGroup, Treasurer: t}, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return TreasurerLookup{}, fmt.Errorf("own-group treasurer: %w", err)
	}

	g, err := s.repo.Group(ctx, groupID)
	if err != nil {
		return TreasurerLookup{}, fmt.Errorf("looking up group: %w", err)
	}

	if g.ParentID == nil {
		return TreasurerLookup{Source: TreasurerNone}, nil
	}

	t, err = s.repo.ActiveTreasurer(ctx, *g.ParentID)
	if err == nil {
		return TreasurerLookup{Source: TreasurerParentGroup, Treasurer: t}, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return TreasurerLookup{}, fmt.Errorf("parent-group treasurer: %w", err)
	}

	return TreasurerLookup{Source: TreasurerNone}, nil
}
