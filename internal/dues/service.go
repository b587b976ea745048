package dues

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/prasetyo/kasrt/internal/group"
	"github.com/prasetyo/kasrt/internal/ledger"
)

var ErrNonPositiveAmount = errors.New("payment amount must be positive")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=dues
type Repository interface {
	Begin(ctx context.Context) (Tx, error)
	User(ctx context.Context, id uuid.UUID) (*group.User, error)
	Group(ctx context.Context, id uuid.UUID) (*group.Group, error)
	ActiveRule(ctx context.Context, groupID uuid.UUID) (*group.DuesRule, error)
}

// Tx is the dues engine's unit of work: wallet credits and the member's paid
// period advance happen together or not at all.
type Tx interface {
	CreditWallet(ctx context.Context, groupID uuid.UUID, e *ledger.Entry) error
	SetLastPaidPeriod(ctx context.Context, userID uuid.UUID, until time.Time) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// BillLine is one tier's contribution to a member's monthly bill.
type BillLine struct {
	Tier      group.Type
	GroupID   uuid.UUID
	GroupName string
	Amount    int64
}

type Bill struct {
	Total   int64
	Lines   []BillLine
	DueNote string
}

// ComputeBill walks the member's group and, when present, its parent, summing
// each tier's active dues rate. Tiers without an active rule contribute no
// line.
func (s *Service) ComputeBill(ctx context.Context, userID uuid.UUID) (*Bill, error) {
	u, err := s.repo.User(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	own, err := s.repo.Group(ctx, u.GroupID)
	if err != nil {
		return nil, fmt.Errorf("looking up group: %w", err)
	}

	bill := &Bill{}

	dueDay := 0

	if rule, err := s.activeRule(ctx, own.ID); err != nil {
		return nil, err
	} else if rule != nil {
		bill.Lines = append(bill.Lines, BillLine{Tier: own.Type, GroupID: own.ID, GroupName: own.Name, Amount: rule.Amount})
		bill.Total += rule.Amount
		dueDay = rule.DueDay
	}

	if own.ParentID != nil {
		parent, err := s.repo.Group(ctx, *own.ParentID)
		if err != nil {
			return nil, fmt.Errorf("looking up parent group: %w", err)
		}

		if rule, err := s.activeRule(ctx, parent.ID); err != nil {
			return nil, err
		} else if rule != nil {
			bill.Lines = append(bill.Lines, BillLine{Tier: parent.Type, GroupID: parent.ID, GroupName: parent.Name, Amount: rule.Amount})
			bill.Total += rule.Amount

			if dueDay == 0 {
				dueDay = rule.DueDay
			}
		}
	}

	if dueDay > 0 {
		bill.DueNote = fmt.Sprintf("due on day %d of every month", dueDay)
	} else {
		bill.DueNote = "no active dues rule"
	}

	return bill, nil
}

func (s *Service) activeRule(ctx context.Context, groupID uuid.UUID) (*group.DuesRule, error) {
	rule, err := s.repo.ActiveRule(ctx, groupID)
	if err != nil {
		if errors.Is(err, group.ErrNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("looking up dues rule: %w", err)
	}

	return rule, nil
}

type DistributeParams struct {
	UserID          uuid.UUID
	AmountPaid      int64
	ContributionRef string
}

// Distribution reports how a payment was divided and how far the member's
// paid period moved.
type Distribution struct {
	Split
	PaidUntil *time.Time
}

// DistributeContribution splits a lump payment across the member's group and
// its parent by whole-month units, posts each non-zero share as a wallet
// credit, and advances the member's last paid period. The caller is
// responsible for invoking this at most once per paid order.
func (s *Service) DistributeContribution(ctx context.Context, params DistributeParams) (*Distribution, error) {
	if params.AmountPaid <= 0 {
		return nil, ErrNonPositiveAmount
	}

	u, err := s.repo.User(ctx, params.UserID)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	own, err := s.repo.Group(ctx, u.GroupID)
	if err != nil {
		return nil, fmt.Errorf("looking up group: %w", err)
	}

	var subordinateRate, parentRate int64

	if rule, err := s.activeRule(ctx, own.ID); err != nil {
		return nil, err
	} else if rule != nil {
		subordinateRate = rule.Amount
	}

	if own.ParentID != nil {
		if rule, err := s.activeRule(ctx, *own.ParentID); err != nil {
			return nil, err
		} else if rule != nil {
			parentRate = rule.Amount
		}
	}

	split := ComputeSplit(subordinateRate, parentRate, params.AmountPaid)

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	ref := &params.ContributionRef
	if params.ContributionRef == "" {
		ref = nil
	}

	if total := split.SubordinateTotal(); total > 0 {
		e := &ledger.Entry{
			ID:              uuid.New(),
			Amount:          total,
			Type:            ledger.TypeCredit,
			Description:     fmt.Sprintf("dues payment from %s", u.Name),
			ContributionRef: ref,
			CreatedBy:       &u.ID,
		}
		if err := tx.CreditWallet(ctx, own.ID, e); err != nil {
			return nil, fmt.Errorf("crediting subordinate wallet: %w", err)
		}
	}

	if split.ParentShare > 0 {
		e := &ledger.Entry{
			ID:              uuid.New(),
			Amount:          split.ParentShare,
			Type:            ledger.TypeCredit,
			Description:     fmt.Sprintf("dues payment from %s", u.Name),
			ContributionRef: ref,
			CreatedBy:       &u.ID,
		}
		if err := tx.CreditWallet(ctx, *own.ParentID, e); err != nil {
			return nil, fmt.Errorf("crediting parent wallet: %w", err)
		}
	}

	dist := &Distribution{Split: split}

	if split.MonthsPaid > 0 {
		base := u.CreatedAt
		if u.LastPaidPeriod != nil {
			base = *u.LastPaidPeriod
		}

		until := base.AddDate(0, split.MonthsPaid, 0)
		if err := tx.SetLastPaidPeriod(ctx, u.ID, until); err != nil {
			return nil, fmt.Errorf("advancing paid period: %w", err)
		}

		dist.PaidUntil = &until
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return dist, nil
}
