package event_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/prasetyo/kasrt/internal/event"
	"github.com/prasetyo/kasrt/internal/group"
	"github.com/prasetyo/kasrt/internal/ledger"
)

func TestService_Create(t *testing.T) {
	groupID := uuid.New()
	officer := group.Actor{ID: uuid.New(), GroupID: groupID, Role: group.RoleSubordinateAdmin}

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := event.NewMockRepository(ctrl)
		tx := event.NewMockTx(ctrl)
		resolver := event.NewMockTreasurerResolver(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().InsertEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *event.Event) error {
				assert.Equal(t, event.StatusDraft, e.Status)
				assert.Equal(t, groupID, e.GroupID)
				return nil
			})
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		svc := event.NewService(repo, resolver)
		e, err := svc.Create(context.Background(), officer, event.CreateParams{
			Title:           "Kerja Bakti",
			BudgetEstimated: 500000,
		})

		require.NoError(t, err)
		assert.Equal(t, event.StatusDraft, e.Status)
	})

	t.Run("ResidentForbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := event.NewMockRepository(ctrl)
		resolver := event.NewMockTreasurerResolver(ctrl)

		svc := event.NewService(repo, resolver)
		resident := group.Actor{ID: uuid.New(), GroupID: groupID, Role: group.RoleResident}

		_, err := svc.Create(context.Background(), resident, event.CreateParams{Title: "x"})

		assert.ErrorIs(t, err, event.ErrForbidden)
	})
}

func TestService_Submit_NoTreasurer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	groupID := uuid.New()
	officer := group.Actor{ID: uuid.New(), GroupID: groupID, Role: group.RoleSubordinateAdmin}
	eventID := uuid.New()

	repo := event.NewMockRepository(ctrl)
	tx := event.NewMockTx(ctrl)
	resolver := event.NewMockTreasurerResolver(ctrl)

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	// The treasurer is resolved after the row lock, not on a pre-read.
	gomock.InOrder(
		tx.EXPECT().EventForUpdate(gomock.Any(), eventID).
			Return(&event.Event{ID: eventID, GroupID: groupID, CreatedBy: officer.ID, Status: event.StatusDraft}, nil),
		resolver.EXPECT().FindActingTreasurer(gomock.Any(), groupID).
			Return(group.TreasurerLookup{Source: group.TreasurerNone}, nil),
	)
	tx.EXPECT().Rollback().Return(nil).AnyTimes()

	svc := event.NewService(repo, resolver)
	_, err := svc.Submit(context.Background(), officer, eventID)

	assert.ErrorIs(t, err, group.ErrNoTreasurer)
}

func TestService_Submit_OutsiderForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eventID := uuid.New()
	outsider := group.Actor{ID: uuid.New(), GroupID: uuid.New(), Role: group.RoleSubordinateAdmin}

	repo := event.NewMockRepository(ctrl)
	tx := event.NewMockTx(ctrl)
	resolver := event.NewMockTreasurerResolver(ctrl)

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().EventForUpdate(gomock.Any(), eventID).
		Return(&event.Event{ID: eventID, GroupID: uuid.New(), CreatedBy: uuid.New(), Status: event.StatusDraft}, nil)
	tx.EXPECT().Rollback().Return(nil).AnyTimes()

	svc := event.NewService(repo, resolver)
	_, err := svc.Submit(context.Background(), outsider, eventID)

	assert.ErrorIs(t, err, group.ErrForbidden)
}

func TestService_Submit_RegeneratesApproval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	groupID := uuid.New()
	officer := group.Actor{ID: uuid.New(), GroupID: groupID, Role: group.RoleSubordinateAdmin}
	eventID := uuid.New()
	treasurer := &group.User{ID: uuid.New(), Role: group.RoleTreasurer}

	repo := event.NewMockRepository(ctrl)
	tx := event.NewMockTx(ctrl)
	resolver := event.NewMockTreasurerResolver(ctrl)

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().EventForUpdate(gomock.Any(), eventID).
		Return(&event.Event{ID: eventID, GroupID: groupID, CreatedBy: officer.ID, Status: event.StatusRejected}, nil)
	resolver.EXPECT().FindActingTreasurer(gomock.Any(), groupID).
		Return(group.TreasurerLookup{Source: group.TreasurerParentGroup, Treasurer: treasurer}, nil)
	tx.EXPECT().DeleteApprovals(gomock.Any(), eventID).Return(nil)
	tx.EXPECT().InsertApproval(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *event.Approval) error {
			assert.Equal(t, treasurer.ID, a.ApproverID)
			assert.Equal(t, 1, a.StepOrder)
			assert.Equal(t, event.ApprovalPending, a.Status)
			return nil
		})
	tx.EXPECT().SetStatus(gomock.Any(), eventID, event.StatusSubmitted).Return(nil)
	tx.EXPECT().InsertHistory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, h *event.StatusHistory) error {
			assert.Equal(t, event.StatusRejected, h.PreviousStatus)
			assert.Equal(t, event.StatusSubmitted, h.NewStatus)
			return nil
		})
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil).AnyTimes()

	svc := event.NewService(repo, resolver)
	e, err := svc.Submit(context.Background(), officer, eventID)

	require.NoError(t, err)
	assert.Equal(t, event.StatusSubmitted, e.Status)
}

func TestService_ResolveApproval(t *testing.T) {
	groupID := uuid.New()
	eventID := uuid.New()
	treasurerID := uuid.New()
	treasurer := group.Actor{ID: treasurerID, GroupID: groupID, Role: group.RoleTreasurer}

	submitted := func() *event.Event {
		return &event.Event{
			ID:              eventID,
			GroupID:         groupID,
			Title:           "Agustusan",
			BudgetEstimated: 1500000,
			Status:          event.StatusSubmitted,
		}
	}

	pending := &event.Approval{ID: uuid.New(), EventID: eventID, ApproverID: treasurerID, Status: event.ApprovalPending}

	t.Run("ApproveFundsEvent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := event.NewMockRepository(ctrl)
		tx := event.NewMockTx(ctrl)
		resolver := event.NewMockTreasurerResolver(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().EventForUpdate(gomock.Any(), eventID).Return(submitted(), nil)
		tx.EXPECT().PendingApproval(gomock.Any(), eventID).Return(pending, nil)
		tx.EXPECT().DebitWallet(gomock.Any(), groupID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, e *ledger.Entry) error {
				assert.Equal(t, int64(1500000), e.Amount)
				assert.Equal(t, ledger.TypeDebit, e.Type)
				require.NotNil(t, e.EventID)
				assert.Equal(t, eventID, *e.EventID)
				return nil
			})
		tx.EXPECT().ResolveApproval(gomock.Any(), pending.ID, event.ApprovalApproved, "").Return(nil)
		tx.EXPECT().SetStatus(gomock.Any(), eventID, event.StatusFunded).Return(nil)
		tx.EXPECT().InsertHistory(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		svc := event.NewService(repo, resolver)
		e, err := svc.ResolveApproval(context.Background(), treasurer, eventID, event.ApprovalDecision{Approve: true})

		require.NoError(t, err)
		assert.Equal(t, event.StatusFunded, e.Status)
	})

	t.Run("InsufficientFundsLeavesSubmitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := event.NewMockRepository(ctrl)
		tx := event.NewMockTx(ctrl)
		resolver := event.NewMockTreasurerResolver(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().EventForUpdate(gomock.Any(), eventID).Return(submitted(), nil)
		tx.EXPECT().PendingApproval(gomock.Any(), eventID).Return(pending, nil)
		tx.EXPECT().DebitWallet(gomock.Any(), groupID, gomock.Any()).
			Return(ledger.ErrInsufficientFunds)
		tx.EXPECT().Rollback().Return(nil)

		svc := event.NewService(repo, resolver)
		_, err := svc.ResolveApproval(context.Background(), treasurer, eventID, event.ApprovalDecision{Approve: true})

		assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)
	})

	t.Run("RejectWithoutNotes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := event.NewMockRepository(ctrl)
		tx := event.NewMockTx(ctrl)
		resolver := event.NewMockTreasurerResolver(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().EventForUpdate(gomock.Any(), eventID).Return(submitted(), nil)
		tx.EXPECT().PendingApproval(gomock.Any(), eventID).Return(pending, nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := event.NewService(repo, resolver)
		_, err := svc.ResolveApproval(context.Background(), treasurer, eventID, event.ApprovalDecision{Approve: false})

		assert.ErrorIs(t, err, event.ErrNoticeRequired)
	})

	t.Run("WrongApprover", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := event.NewMockRepository(ctrl)
		tx := event.NewMockTx(ctrl)
		resolver := event.NewMockTreasurerResolver(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().EventForUpdate(gomock.Any(), eventID).Return(submitted(), nil)
		tx.EXPECT().PendingApproval(gomock.Any(), eventID).Return(pending, nil)
		tx.EXPECT().Rollback().Return(nil)

		other := group.Actor{ID: uuid.New(), GroupID: groupID, Role: group.RoleTreasurer}

		svc := event.NewService(repo, resolver)
		_, err := svc.ResolveApproval(context.Background(), other, eventID, event.ApprovalDecision{Approve: true})

		assert.ErrorIs(t, err, event.ErrForbidden)
	})
}

func TestService_SubmitExpenseReport(t *testing.T) {
	groupID := uuid.New()
	eventID := uuid.New()
	treasurerID := uuid.New()
	treasurer := group.Actor{ID: treasurerID, GroupID: groupID, Role: group.RoleTreasurer}

	funded := func() *event.Event {
		return &event.Event{
			ID:              eventID,
			GroupID:         groupID,
			Title:           "Posyandu",
			BudgetEstimated: 100000,
			Status:          event.StatusFunded,
		}
	}

	lookup := group.TreasurerLookup{
		Source:    group.TreasurerOwnGroup,
		Treasurer: &group.User{ID: treasurerID, Role: group.RoleTreasurer},
	}

	t.Run("ReconcilesAndRefundsLeftover", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := event.NewMockRepository(ctrl)
		tx := event.NewMockTx(ctrl)
		resolver := event.NewMockTreasurerResolver(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().EventForUpdate(gomock.Any(), eventID).Return(funded(), nil)
		resolver.EXPECT().FindActingTreasurer(gomock.Any(), groupID).Return(lookup, nil)
		tx.EXPECT().InsertExpense(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *event.Expense) error {
				assert.True(t, e.IsValid)
				require.NotNil(t, e.VerifiedBy)
				assert.Equal(t, treasurerID, *e.VerifiedBy)
				return nil
			}).Times(2)
		tx.EXPECT().InsertAttachment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *event.Attachment) error {
				assert.Equal(t, event.AttachmentReceipt, a.Kind)
				return nil
			})
		tx.EXPECT().CreditWallet(gomock.Any(), groupID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, e *ledger.Entry) error {
				assert.Equal(t, int64(15000), e.Amount)
				return nil
			})
		tx.EXPECT().SetStatus(gomock.Any(), eventID, event.StatusOngoing).Return(nil)
		tx.EXPECT().InsertHistory(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		svc := event.NewService(repo, resolver)
		e, err := svc.SubmitExpenseReport(context.Background(), treasurer, eventID, event.ExpenseReportParams{
			Items: []event.ExpenseItem{
				{Title: "Konsumsi", Amount: 60000},
				{Title: "Spanduk", Amount: 25000},
			},
			Leftover:    15000,
			ReceiptURLs: []string{"https://files.example.com/receipt.jpg"},
		})

		require.NoError(t, err)
		assert.Equal(t, event.StatusOngoing, e.Status)
	})

	t.Run("BudgetMismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := event.NewMockRepository(ctrl)
		tx := event.NewMockTx(ctrl)
		resolver := event.NewMockTreasurerResolver(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().EventForUpdate(gomock.Any(), eventID).Return(funded(), nil)
		resolver.EXPECT().FindActingTreasurer(gomock.Any(), groupID).Return(lookup, nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := event.NewService(repo, resolver)
		_, err := svc.SubmitExpenseReport(context.Background(), treasurer, eventID, event.ExpenseReportParams{
			Items:    []event.ExpenseItem{{Title: "Konsumsi", Amount: 60000}},
			Leftover: 20000,
		})

		assert.ErrorIs(t, err, event.ErrBudgetMismatch)
	})

	t.Run("WithinToleranceAccepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := event.NewMockRepository(ctrl)
		tx := event.NewMockTx(ctrl)
		resolver := event.NewMockTreasurerResolver(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().EventForUpdate(gomock.Any(), eventID).Return(funded(), nil)
		resolver.EXPECT().FindActingTreasurer(gomock.Any(), groupID).Return(lookup, nil)
		tx.EXPECT().InsertExpense(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().SetStatus(gomock.Any(), eventID, event.StatusOngoing).Return(nil)
		tx.EXPECT().InsertHistory(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		svc := event.NewService(repo, resolver)
		_, err := svc.SubmitExpenseReport(context.Background(), treasurer, eventID, event.ExpenseReportParams{
			Items: []event.ExpenseItem{{Title: "Konsumsi", Amount: 99999}},
		})

		assert.NoError(t, err)
	})

	t.Run("NotActingTreasurer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := event.NewMockRepository(ctrl)
		tx := event.NewMockTx(ctrl)
		resolver := event.NewMockTreasurerResolver(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().EventForUpdate(gomock.Any(), eventID).Return(funded(), nil)
		resolver.EXPECT().FindActingTreasurer(gomock.Any(), groupID).Return(lookup, nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		other := group.Actor{ID: uuid.New(), GroupID: groupID, Role: group.RoleSubordinateAdmin}

		svc := event.NewService(repo, resolver)
		_, err := svc.SubmitExpenseReport(context.Background(), other, eventID, event.ExpenseReportParams{
			Items: []event.ExpenseItem{{Title: "Konsumsi", Amount: 100000}},
		})

		assert.ErrorIs(t, err, event.ErrForbidden)
	})
}

func TestService_Cancel_RefundsHeldBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	groupID := uuid.New()
	eventID := uuid.New()
	officer := group.Actor{ID: uuid.New(), GroupID: groupID, Role: group.RoleSubordinateAdmin}

	repo := event.NewMockRepository(ctrl)
	tx := event.NewMockTx(ctrl)
	resolver := event.NewMockTreasurerResolver(ctrl)

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().EventForUpdate(gomock.Any(), eventID).
		Return(&event.Event{
			ID:              eventID,
			GroupID:         groupID,
			CreatedBy:       officer.ID,
			Title:           "Pengajian",
			BudgetEstimated: 750000,
			Status:          event.StatusFunded,
		}, nil)
	tx.EXPECT().CreditWallet(gomock.Any(), groupID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, e *ledger.Entry) error {
			assert.Equal(t, int64(750000), e.Amount)
			assert.Equal(t, ledger.TypeCredit, e.Type)
			return nil
		})
	tx.EXPECT().SetStatus(gomock.Any(), eventID, event.StatusCancelled).Return(nil)
	tx.EXPECT().InsertHistory(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil).AnyTimes()

	svc := event.NewService(repo, resolver)
	e, err := svc.Cancel(context.Background(), officer, eventID, "rained out")

	require.NoError(t, err)
	assert.Equal(t, event.StatusCancelled, e.Status)
}

func TestService_RunExpirySweep(t *testing.T) {
	groupID := uuid.New()
	parentID := uuid.New()

	t.Run("OngoingAutoCompletes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		eventID := uuid.New()
		past := time.Now().Add(-24 * time.Hour)

		repo := event.NewMockRepository(ctrl)
		tx := event.NewMockTx(ctrl)
		resolver := event.NewMockTreasurerResolver(ctrl)

		repo.EXPECT().DueForSweep(gomock.Any(), gomock.Any()).Return([]uuid.UUID{eventID}, nil)
		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().EventForUpdate(gomock.Any(), eventID).
			Return(&event.Event{ID: eventID, GroupID: groupID, Status: event.StatusOngoing, EndDate: &past}, nil)
		tx.EXPECT().SetStatus(gomock.Any(), eventID, event.StatusCompleted).Return(nil)
		tx.EXPECT().InsertHistory(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, h *event.StatusHistory) error {
				assert.Nil(t, h.ChangedBy)
				return nil
			})
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		svc := event.NewService(repo, resolver)
		result, err := svc.RunExpirySweep(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 1, result.Completed)
		assert.Zero(t, result.Cancelled)
	})

	t.Run("FundedCancelsWithSplitRefund", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		eventID := uuid.New()
		past := time.Now().Add(-24 * time.Hour)

		repo := event.NewMockRepository(ctrl)
		tx := event.NewMockTx(ctrl)
		resolver := event.NewMockTreasurerResolver(ctrl)

		repo.EXPECT().DueForSweep(gomock.Any(), gomock.Any()).Return([]uuid.UUID{eventID}, nil)
		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().EventForUpdate(gomock.Any(), eventID).
			Return(&event.Event{
				ID:              eventID,
				GroupID:         groupID,
				Title:           "Agustusan",
				BudgetEstimated: 1500000,
				Status:          event.StatusFunded,
				EndDate:         &past,
			}, nil)

		// 500000 of the held budget came from an approved escalation, so it
		// goes back to the parent; the rest returns to the group itself.
		tx.EXPECT().ApprovedExtraTotal(gomock.Any(), eventID).Return(int64(500000), nil)
		repo.EXPECT().ParentGroupID(gomock.Any(), groupID).Return(&parentID, nil)
		tx.EXPECT().CreditWallet(gomock.Any(), parentID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, e *ledger.Entry) error {
				assert.Equal(t, int64(500000), e.Amount)
				return nil
			})
		tx.EXPECT().CreditWallet(gomock.Any(), groupID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, e *ledger.Entry) error {
				assert.Equal(t, int64(1000000), e.Amount)
				return nil
			})
		tx.EXPECT().SetStatus(gomock.Any(), eventID, event.StatusCancelled).Return(nil)
		tx.EXPECT().InsertHistory(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		svc := event.NewService(repo, resolver)
		result, err := svc.RunExpirySweep(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 1, result.Cancelled)
	})

	t.Run("OneFailureDoesNotStopOthers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		badID := uuid.New()
		goodID := uuid.New()
		past := time.Now().Add(-24 * time.Hour)

		repo := event.NewMockRepository(ctrl)
		badTx := event.NewMockTx(ctrl)
		goodTx := event.NewMockTx(ctrl)
		resolver := event.NewMockTreasurerResolver(ctrl)

		repo.EXPECT().DueForSweep(gomock.Any(), gomock.Any()).Return([]uuid.UUID{badID, goodID}, nil)

		repo.EXPECT().Begin(gomock.Any()).Return(badTx, nil)
		badTx.EXPECT().EventForUpdate(gomock.Any(), badID).Return(nil, event.ErrNotFound)
		badTx.EXPECT().Rollback().Return(nil)

		repo.EXPECT().Begin(gomock.Any()).Return(goodTx, nil)
		goodTx.EXPECT().EventForUpdate(gomock.Any(), goodID).
			Return(&event.Event{ID: goodID, GroupID: groupID, Status: event.StatusOngoing, EndDate: &past}, nil)
		goodTx.EXPECT().SetStatus(gomock.Any(), goodID, event.StatusCompleted).Return(nil)
		goodTx.EXPECT().InsertHistory(gomock.Any(), gomock.Any()).Return(nil)
		goodTx.EXPECT().Commit().Return(nil)
		goodTx.EXPECT().Rollback().Return(nil).AnyTimes()

		svc := event.NewService(repo, resolver)
		result, err := svc.RunExpirySweep(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 1, result.Completed)
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("StatusChangedSinceListing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		eventID := uuid.New()
		past := time.Now().Add(-24 * time.Hour)

		repo := event.NewMockRepository(ctrl)
		tx := event.NewMockTx(ctrl)
		resolver := event.NewMockTreasurerResolver(ctrl)

		repo.EXPECT().DueForSweep(gomock.Any(), gomock.Any()).Return([]uuid.UUID{eventID}, nil)
		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().EventForUpdate(gomock.Any(), eventID).
			Return(&event.Event{ID: eventID, GroupID: groupID, Status: event.StatusSettled, EndDate: &past}, nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := event.NewService(repo, resolver)
		result, err := svc.RunExpirySweep(context.Background())

		require.NoError(t, err)
		assert.Zero(t, result.Completed)
		assert.Zero(t, result.Cancelled)
		assert.Zero(t, result.Failed)
	})
}

func TestService_List_ResidentVisibility(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	groupID := uuid.New()
	resident := group.Actor{ID: uuid.New(), GroupID: groupID, Role: group.RoleResident}

	repo := event.NewMockRepository(ctrl)
	resolver := event.NewMockTreasurerResolver(ctrl)

	repo.EXPECT().List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter event.ListFilter) ([]*event.Event, error) {
			assert.ElementsMatch(t, []event.Status{
				event.StatusFunded,
				event.StatusOngoing,
				event.StatusCompleted,
				event.StatusSettled,
				event.StatusCancelled,
			}, filter.Statuses)
			return nil, nil
		})

	svc := event.NewService(repo, resolver)
	_, err := svc.List(context.Background(), resident, event.ListFilter{})

	assert.NoError(t, err)
}

func TestService_Get_HidesDraftFromResident(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	groupID := uuid.New()
	eventID := uuid.New()
	resident := group.Actor{ID: uuid.New(), GroupID: groupID, Role: group.RoleResident}

	repo := event.NewMockRepository(ctrl)
	resolver := event.NewMockTreasurerResolver(ctrl)

	repo.EXPECT().Event(gomock.Any(), eventID).
		Return(&event.Event{ID: eventID, GroupID: groupID, Status: event.StatusDraft}, nil)

	svc := event.NewService(repo, resolver)
	_, err := svc.Get(context.Background(), resident, eventID)

	assert.ErrorIs(t, err, event.ErrNotFound)
}
