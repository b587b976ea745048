package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("wallet not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNonPositiveAmount = errors.New("amount must be positive")
)

// EntryType tells whether an entry adds to or removes from the wallet balance.
// Amounts are always stored positive; the sign is implied by the type.
type EntryType string

const (
	TypeCredit EntryType = "CREDIT"
	TypeDebit  EntryType = "DEBIT"
)

// Wallet is the single money-holding account of a group. The balance is only
// ever written through Apply, which pairs every mutation with an Entry row.
type Wallet struct {
	ID        uuid.UUID
	GroupID   uuid.UUID
	Balance   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Entry is one appended row of the transaction log. Entries are never updated
// or deleted; the wallet balance always equals credits minus debits.
type Entry struct {
	ID              uuid.UUID
	WalletID        uuid.UUID
	Amount          int64
	Type            EntryType
	Description     string
	EventID         *uuid.UUID
	ContributionRef *string
	CreatedBy       *uuid.UUID
	CreatedAt       time.Time
}
