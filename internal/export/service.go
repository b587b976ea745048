package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/prasetyo/kasrt/internal/group"
	"github.com/prasetyo/kasrt/internal/ledger"
)

// Statement is a snapshot of a group's ledger over a period, ready to be
// rendered as CSV or as an announcement text.
type Statement struct {
	Group       *group.Group
	Start       *time.Time
	End         *time.Time
	Entries     []*ledger.Entry
	TotalCredit int64
	TotalDebit  int64
	Balance     int64
	GeneratedAt time.Time
}

// Service builds ledger statements for treasurers to share with residents.
type Service struct {
	groups  *group.Service
	wallets *ledger.Service
}

func NewService(groups *group.Service, wallets *ledger.Service) *Service {
	return &Service{groups: groups, wallets: wallets}
}

// Statement assembles the entries and totals for one group. Only members of
// the group may request it.
func (s *Service) Statement(ctx context.Context, actor group.Actor, groupID uuid.UUID, filter ledger.ListFilter) (*Statement, error) {
	if actor.GroupID != groupID {
		return nil, fmt.Errorf("may only export own group's ledger: %w", group.ErrForbidden)
	}

	g, err := s.groups.Get(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("looking up group: %w", err)
	}

	w, err := s.wallets.Wallet(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("looking up wallet: %w", err)
	}

	entries, err := s.wallets.Entries(ctx, groupID, filter)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}

	st := &Statement{
		Group:       g,
		Start:       filter.StartDate,
		End:         filter.EndDate,
		Entries:     entries,
		Balance:     w.Balance,
		GeneratedAt: time.Now(),
	}

	for _, e := range entries {
		switch e.Type {
		case ledger.TypeCredit:
			st.TotalCredit += e.Amount
		case ledger.TypeDebit:
			st.TotalDebit += e.Amount
		}
	}

	return st, nil
}

// WriteCSV renders the statement as CSV, one row per ledger entry.
func (s *Service) WriteCSV(w io.Writer, st *Statement) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"date", "type", "amount", "description", "contribution_ref"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, e := range st.Entries {
		ref := ""
		if e.ContributionRef != nil {
			ref = *e.ContributionRef
		}

		row := []string{
			e.CreatedAt.Format(time.DateOnly),
			string(e.Type),
			strconv.FormatInt(e.Amount, 10),
			e.Description,
			ref,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// Summary renders the statement as a plain-text announcement for the group's
// notice board or chat.
func (s *Service) Summary(st *Statement) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Laporan kas %s\n\n", st.Group.Name))

	for _, e := range st.Entries {
		sign := "-"
		if e.Type == ledger.TypeCredit {
			sign = "+"
		}

		sb.WriteString(fmt.Sprintf("* %s | %s | %s%d\n",
			e.CreatedAt.Format(time.DateOnly), e.Description, sign, e.Amount))
	}

	sb.WriteString(fmt.Sprintf("\nMasuk: %d | Keluar: %d | Saldo: %d\n",
		st.TotalCredit, st.TotalDebit, st.Balance))

	return sb.String()
}
