package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasetyo/kasrt/internal/event"
)

func TestNext(t *testing.T) {
	type testCase struct {
		name   string
		status event.Status
		action event.Action
		want   event.Status
	}

	allowed := []testCase{
		{"SubmitDraft", event.StatusDraft, event.ActionSubmit, event.StatusSubmitted},
		{"ResubmitRejected", event.StatusRejected, event.ActionSubmit, event.StatusSubmitted},
		{"ApproveSubmitted", event.StatusSubmitted, event.ActionApprove, event.StatusFunded},
		{"RejectSubmitted", event.StatusSubmitted, event.ActionReject, event.StatusRejected},
		{"ReportExpensesFunded", event.StatusFunded, event.ActionReportExpenses, event.StatusOngoing},
		{"RequestFundsFunded", event.StatusFunded, event.ActionRequestFunds, event.StatusUnderReview},
		{"ResolveFundsUnderReview", event.StatusUnderReview, event.ActionResolveFunds, event.StatusFunded},
		{"CompleteOngoing", event.StatusOngoing, event.ActionComplete, event.StatusCompleted},
		{"AutoCompleteOngoing", event.StatusOngoing, event.ActionAutoComplete, event.StatusCompleted},
		{"SettleCompleted", event.StatusCompleted, event.ActionSettle, event.StatusSettled},
		{"CancelDraft", event.StatusDraft, event.ActionCancel, event.StatusCancelled},
		{"CancelSubmitted", event.StatusSubmitted, event.ActionCancel, event.StatusCancelled},
		{"CancelFunded", event.StatusFunded, event.ActionCancel, event.StatusCancelled},
		{"CancelOngoing", event.StatusOngoing, event.ActionCancel, event.StatusCancelled},
		{"AutoCancelUnderReview", event.StatusUnderReview, event.ActionAutoCancel, event.StatusCancelled},
		{"AutoCancelFunded", event.StatusFunded, event.ActionAutoCancel, event.StatusCancelled},
	}

	for _, tt := range allowed {
		t.Run(tt.name, func(t *testing.T) {
			got, err := event.Next(tt.status, tt.action)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	denied := []testCase{
		{"SubmitFunded", event.StatusFunded, event.ActionSubmit, ""},
		{"ApproveDraft", event.StatusDraft, event.ActionApprove, ""},
		{"ApproveFunded", event.StatusFunded, event.ActionApprove, ""},
		{"RejectFunded", event.StatusFunded, event.ActionReject, ""},
		{"ReportExpensesDraft", event.StatusDraft, event.ActionReportExpenses, ""},
		{"ReportExpensesUnderReview", event.StatusUnderReview, event.ActionReportExpenses, ""},
		{"RequestFundsOngoing", event.StatusOngoing, event.ActionRequestFunds, ""},
		{"RequestFundsUnderReview", event.StatusUnderReview, event.ActionRequestFunds, ""},
		{"CompleteFunded", event.StatusFunded, event.ActionComplete, ""},
		{"SettleOngoing", event.StatusOngoing, event.ActionSettle, ""},
		{"SettleCancelled", event.StatusCancelled, event.ActionSettle, ""},
		{"CancelUnderReview", event.StatusUnderReview, event.ActionCancel, ""},
		{"CancelCompleted", event.StatusCompleted, event.ActionCancel, ""},
		{"CancelSettled", event.StatusSettled, event.ActionCancel, ""},
		{"CancelCancelled", event.StatusCancelled, event.ActionCancel, ""},
		{"AutoCancelOngoing", event.StatusOngoing, event.ActionAutoCancel, ""},
		{"AutoCancelCompleted", event.StatusCompleted, event.ActionAutoCancel, ""},
	}

	for _, tt := range denied {
		t.Run(tt.name, func(t *testing.T) {
			_, err := event.Next(tt.status, tt.action)

			require.Error(t, err)
			assert.ErrorIs(t, err, event.ErrInvalidTransition)
		})
	}
}

func TestAutoCancellable(t *testing.T) {
	assert.True(t, event.AutoCancellable(event.StatusDraft))
	assert.True(t, event.AutoCancellable(event.StatusSubmitted))
	assert.True(t, event.AutoCancellable(event.StatusUnderReview))
	assert.True(t, event.AutoCancellable(event.StatusFunded))

	assert.False(t, event.AutoCancellable(event.StatusOngoing))
	assert.False(t, event.AutoCancellable(event.StatusCompleted))
	assert.False(t, event.AutoCancellable(event.StatusSettled))
	assert.False(t, event.AutoCancellable(event.StatusCancelled))
}
