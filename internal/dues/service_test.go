package dues_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/prasetyo/kasrt/internal/dues"
	"github.com/prasetyo/kasrt/internal/group"
	"github.com/prasetyo/kasrt/internal/ledger"
)

func TestService_ComputeBill(t *testing.T) {
	userID := uuid.New()
	subID := uuid.New()
	parentID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := dues.NewMockRepository(ctrl)

	repo.EXPECT().User(gomock.Any(), userID).
		Return(&group.User{ID: userID, GroupID: subID}, nil)
	repo.EXPECT().Group(gomock.Any(), subID).
		Return(&group.Group{ID: subID, Type: group.TypeSubordinate, Name: "RT 03", ParentID: &parentID}, nil)
	repo.EXPECT().ActiveRule(gomock.Any(), subID).
		Return(&group.DuesRule{GroupID: subID, Amount: 20000, DueDay: 10, IsActive: true}, nil)
	repo.EXPECT().Group(gomock.Any(), parentID).
		Return(&group.Group{ID: parentID, Type: group.TypeRoot, Name: "RW 05"}, nil)
	repo.EXPECT().ActiveRule(gomock.Any(), parentID).
		Return(&group.DuesRule{GroupID: parentID, Amount: 10000, DueDay: 5, IsActive: true}, nil)

	svc := dues.NewService(repo)
	bill, err := svc.ComputeBill(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, int64(30000), bill.Total)
	require.Len(t, bill.Lines, 2)
	assert.Equal(t, group.TypeSubordinate, bill.Lines[0].Tier)
	assert.Equal(t, int64(20000), bill.Lines[0].Amount)
	assert.Equal(t, group.TypeRoot, bill.Lines[1].Tier)
	assert.Equal(t, int64(10000), bill.Lines[1].Amount)
	assert.Equal(t, "due on day 10 of every month", bill.DueNote)
}

func TestService_ComputeBill_NoActiveRules(t *testing.T) {
	userID := uuid.New()
	subID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := dues.NewMockRepository(ctrl)

	repo.EXPECT().User(gomock.Any(), userID).
		Return(&group.User{ID: userID, GroupID: subID}, nil)
	repo.EXPECT().Group(gomock.Any(), subID).
		Return(&group.Group{ID: subID, Type: group.TypeRoot, Name: "RW 05"}, nil)
	repo.EXPECT().ActiveRule(gomock.Any(), subID).Return(nil, group.ErrNotFound)

	svc := dues.NewService(repo)
	bill, err := svc.ComputeBill(context.Background(), userID)

	require.NoError(t, err)
	assert.Zero(t, bill.Total)
	assert.Empty(t, bill.Lines)
	assert.Equal(t, "no active dues rule", bill.DueNote)
}

func TestService_DistributeContribution(t *testing.T) {
	userID := uuid.New()
	subID := uuid.New()
	parentID := uuid.New()
	joined := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	setupReads := func(repo *dues.MockRepository, lastPaid *time.Time) {
		repo.EXPECT().User(gomock.Any(), userID).
			Return(&group.User{
				ID:             userID,
				GroupID:        subID,
				Name:           "Siti",
				LastPaidPeriod: lastPaid,
				CreatedAt:      joined,
			}, nil)
		repo.EXPECT().Group(gomock.Any(), subID).
			Return(&group.Group{ID: subID, Type: group.TypeSubordinate, ParentID: &parentID}, nil)
		repo.EXPECT().ActiveRule(gomock.Any(), subID).
			Return(&group.DuesRule{GroupID: subID, Amount: 20000, IsActive: true}, nil)
		repo.EXPECT().ActiveRule(gomock.Any(), parentID).
			Return(&group.DuesRule{GroupID: parentID, Amount: 10000, IsActive: true}, nil)
	}

	t.Run("SplitsAndAdvancesPeriod", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := dues.NewMockRepository(ctrl)
		tx := dues.NewMockTx(ctrl)

		setupReads(repo, nil)
		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)

		// 100000 at a 30000 monthly total: 3 months plus a 10000 donation.
		tx.EXPECT().CreditWallet(gomock.Any(), subID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, e *ledger.Entry) error {
				assert.Equal(t, int64(70000), e.Amount)
				assert.Equal(t, ledger.TypeCredit, e.Type)
				require.NotNil(t, e.ContributionRef)
				assert.Equal(t, "ORD-123", *e.ContributionRef)
				return nil
			})
		tx.EXPECT().CreditWallet(gomock.Any(), parentID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, e *ledger.Entry) error {
				assert.Equal(t, int64(30000), e.Amount)
				return nil
			})
		tx.EXPECT().SetLastPaidPeriod(gomock.Any(), userID, joined.AddDate(0, 3, 0)).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		svc := dues.NewService(repo)
		dist, err := svc.DistributeContribution(context.Background(), dues.DistributeParams{
			UserID:          userID,
			AmountPaid:      100000,
			ContributionRef: "ORD-123",
		})

		require.NoError(t, err)
		assert.Equal(t, 3, dist.MonthsPaid)
		assert.Equal(t, int64(60000), dist.SubordinateShare)
		assert.Equal(t, int64(30000), dist.ParentShare)
		assert.Equal(t, int64(10000), dist.Donation)
		require.NotNil(t, dist.PaidUntil)
		assert.Equal(t, joined.AddDate(0, 3, 0), *dist.PaidUntil)
	})

	t.Run("AdvancesFromLastPaidPeriod", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := dues.NewMockRepository(ctrl)
		tx := dues.NewMockTx(ctrl)

		lastPaid := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

		setupReads(repo, &lastPaid)
		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)

		tx.EXPECT().CreditWallet(gomock.Any(), subID, gomock.Any()).Return(nil)
		tx.EXPECT().CreditWallet(gomock.Any(), parentID, gomock.Any()).Return(nil)
		tx.EXPECT().SetLastPaidPeriod(gomock.Any(), userID, lastPaid.AddDate(0, 1, 0)).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		svc := dues.NewService(repo)
		dist, err := svc.DistributeContribution(context.Background(), dues.DistributeParams{
			UserID:     userID,
			AmountPaid: 30000,
		})

		require.NoError(t, err)
		assert.Equal(t, 1, dist.MonthsPaid)
	})

	t.Run("SubMonthPaymentIsDonationOnly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := dues.NewMockRepository(ctrl)
		tx := dues.NewMockTx(ctrl)

		setupReads(repo, nil)
		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)

		// Whole payment lands in the subordinate wallet; no period advance.
		tx.EXPECT().CreditWallet(gomock.Any(), subID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, e *ledger.Entry) error {
				assert.Equal(t, int64(15000), e.Amount)
				return nil
			})
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		svc := dues.NewService(repo)
		dist, err := svc.DistributeContribution(context.Background(), dues.DistributeParams{
			UserID:     userID,
			AmountPaid: 15000,
		})

		require.NoError(t, err)
		assert.Zero(t, dist.MonthsPaid)
		assert.Equal(t, int64(15000), dist.Donation)
		assert.Nil(t, dist.PaidUntil)
	})

	t.Run("NonPositiveAmount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := dues.NewMockRepository(ctrl)

		svc := dues.NewService(repo)
		_, err := svc.DistributeContribution(context.Background(), dues.DistributeParams{
			UserID:     userID,
			AmountPaid: 0,
		})

		assert.ErrorIs(t, err, dues.ErrNonPositiveAmount)
	})
}
