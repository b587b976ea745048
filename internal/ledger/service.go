package ledger

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	Begin(ctx context.Context) (Tx, error)
	WalletByGroup(ctx context.Context, groupID uuid.UUID) (*Wallet, error)
	ListEntries(ctx context.Context, walletID uuid.UUID, filter ListFilter) ([]*Entry, error)
}

// Tx is the ledger's unit of work. WalletForUpdate locks the wallet row so
// the balance check and the mutation happen under the same lock; Apply writes
// the balance change and the log entry together.
type Tx interface {
	WalletForUpdate(ctx context.Context, groupID uuid.UUID) (*Wallet, error)
	Apply(ctx context.Context, walletID uuid.UUID, e *Entry) error
	Commit() error
	Rollback() error
}

type ListFilter struct {
	Type      *EntryType
	StartDate *time.Time
	EndDate   *time.Time
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// EntryParams describes a single credit or debit against a group's wallet.
type EntryParams struct {
	GroupID         uuid.UUID
	Amount          int64
	Description     string
	EventID         *uuid.UUID
	ContributionRef *string
	CreatedBy       *uuid.UUID
}

func (s *Service) Credit(ctx context.Context, params EntryParams) (*Entry, error) {
	return s.post(ctx, TypeCredit, params)
}

func (s *Service) Debit(ctx context.Context, params EntryParams) (*Entry, error) {
	return s.post(ctx, TypeDebit, params)
}

func (s *Service) post(ctx context.Context, typ EntryType, params EntryParams) (*Entry, error) {
	if params.Amount <= 0 {
		return nil, ErrNonPositiveAmount
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	w, err := tx.WalletForUpdate(ctx, params.GroupID)
	if err != nil {
		return nil, fmt.Errorf("locking wallet: %w", err)
	}

	if typ == TypeDebit && w.Balance < params.Amount {
		return nil, ErrInsufficientFunds
	}

	e := entryFromParams(typ, w.ID, params)
	if err := tx.Apply(ctx, w.ID, e); err != nil {
		return nil, fmt.Errorf("applying entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return e, nil
}

// TransferParams moves money between two group wallets as one atomic unit.
type TransferParams struct {
	SourceGroupID uuid.UUID
	TargetGroupID uuid.UUID
	Amount        int64
	Description   string
	EventID       *uuid.UUID
	CreatedBy     *uuid.UUID
}

// Transfer debits the source wallet and credits the target wallet in a single
// unit of work. If the source cannot cover the amount, nothing is posted.
func (s *Service) Transfer(ctx context.Context, params TransferParams) error {
	if params.Amount <= 0 {
		return ErrNonPositiveAmount
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if err := TransferLegs(ctx, tx, params); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

// TransferLegs posts the debit and credit legs of an inter-group transfer on
// an already-open unit of work, so callers can bundle the transfer with their
// own mutations. The two wallets are locked in group-ID order so concurrent
// opposite-direction transfers cannot deadlock.
func TransferLegs(ctx context.Context, tx Tx, params TransferParams) error {
	var source, target *Wallet

	var err error

	if bytes.Compare(params.SourceGroupID[:], params.TargetGroupID[:]) <= 0 {
		source, err = tx.WalletForUpdate(ctx, params.SourceGroupID)
		if err != nil {
			return fmt.Errorf("locking source wallet: %w", err)
		}

		target, err = tx.WalletForUpdate(ctx, params.TargetGroupID)
		if err != nil {
			return fmt.Errorf("locking target wallet: %w", err)
		}
	} else {
		target, err = tx.WalletForUpdate(ctx, params.TargetGroupID)
		if err != nil {
			return fmt.Errorf("locking target wallet: %w", err)
		}

		source, err = tx.WalletForUpdate(ctx, params.SourceGroupID)
		if err != nil {
			return fmt.Errorf("locking source wallet: %w", err)
		}
	}

	if source.Balance < params.Amount {
		return ErrInsufficientFunds
	}

	debit := entryFromParams(TypeDebit, source.ID, EntryParams{
		GroupID:     params.SourceGroupID,
		Amount:      params.Amount,
		Description: params.Description,
		EventID:     params.EventID,
		CreatedBy:   params.CreatedBy,
	})
	if err := tx.Apply(ctx, source.ID, debit); err != nil {
		return fmt.Errorf("applying debit leg: %w", err)
	}

	credit := entryFromParams(TypeCredit, target.ID, EntryParams{
		GroupID:     params.TargetGroupID,
		Amount:      params.Amount,
		Description: params.Description,
		EventID:     params.EventID,
		CreatedBy:   params.CreatedBy,
	})
	if err := tx.Apply(ctx, target.ID, credit); err != nil {
		return fmt.Errorf("applying credit leg: %w", err)
	}

	return nil
}

func entryFromParams(typ EntryType, walletID uuid.UUID, params EntryParams) *Entry {
	return &Entry{
		ID:              uuid.New(),
		WalletID:        walletID,
		Amount:          params.Amount,
		Type:            typ,
		Description:     params.Description,
		EventID:         params.EventID,
		ContributionRef: params.ContributionRef,
		CreatedBy:       params.CreatedBy,
	}
}

func (s *Service) Wallet(ctx context.Context, groupID uuid.UUID) (*Wallet, error) {
	return s.repo.WalletByGroup(ctx, groupID)
}

func (s *Service) Entries(ctx context.Context, groupID uuid.UUID, filter ListFilter) ([]*Entry, error) {
	w, err := s.repo.WalletByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("looking up wallet: %w", err)
	}

	return s.repo.ListEntries(ctx, w.ID, filter)
}
