package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/prasetyo/kasrt/internal/ledger"
)

func TestService_Credit(t *testing.T) {
	groupID := uuid.New()
	walletID := uuid.New()

	type testCase struct {
		name      string
		amount    int64
		setupMock func(repo *ledger.MockRepository, tx *ledger.MockTx)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "Success",
			amount: 5000,
			setupMock: func(repo *ledger.MockRepository, tx *ledger.MockTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().WalletForUpdate(gomock.Any(), groupID).
					Return(&ledger.Wallet{ID: walletID, GroupID: groupID, Balance: 1000}, nil)
				tx.EXPECT().Apply(gomock.Any(), walletID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uuid.UUID, e *ledger.Entry) error {
						assert.Equal(t, ledger.TypeCredit, e.Type)
						assert.Equal(t, int64(5000), e.Amount)
						return nil
					})
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil).AnyTimes()
			},
		},
		{
			name:    "NonPositiveAmount",
			amount:  0,
			wantErr: ledger.ErrNonPositiveAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			tx := ledger.NewMockTx(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo, tx)
			}

			svc := ledger.NewService(repo)
			entry, err := svc.Credit(context.Background(), ledger.EntryParams{
				GroupID:     groupID,
				Amount:      tt.amount,
				Description: "manual credit",
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, entry)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, walletID, entry.WalletID)
		})
	}
}

func TestService_Debit_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	groupID := uuid.New()

	repo := ledger.NewMockRepository(ctrl)
	tx := ledger.NewMockTx(ctrl)

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().WalletForUpdate(gomock.Any(), groupID).
		Return(&ledger.Wallet{ID: uuid.New(), GroupID: groupID, Balance: 100}, nil)
	tx.EXPECT().Rollback().Return(nil)

	svc := ledger.NewService(repo)
	entry, err := svc.Debit(context.Background(), ledger.EntryParams{
		GroupID: groupID,
		Amount:  500,
	})

	assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)
	assert.Nil(t, entry)
}

func TestService_Transfer(t *testing.T) {
	// Fixed IDs keep the wallet lock order deterministic: sourceID sorts
	// before targetID.
	sourceID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	targetID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	sourceWallet := uuid.New()
	targetWallet := uuid.New()

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		tx := ledger.NewMockTx(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().WalletForUpdate(gomock.Any(), sourceID).
			Return(&ledger.Wallet{ID: sourceWallet, GroupID: sourceID, Balance: 10000}, nil)
		tx.EXPECT().WalletForUpdate(gomock.Any(), targetID).
			Return(&ledger.Wallet{ID: targetWallet, GroupID: targetID, Balance: 0}, nil)
		tx.EXPECT().Apply(gomock.Any(), sourceWallet, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, e *ledger.Entry) error {
				assert.Equal(t, ledger.TypeDebit, e.Type)
				assert.Equal(t, int64(4000), e.Amount)
				return nil
			})
		tx.EXPECT().Apply(gomock.Any(), targetWallet, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, e *ledger.Entry) error {
				assert.Equal(t, ledger.TypeCredit, e.Type)
				assert.Equal(t, int64(4000), e.Amount)
				return nil
			})
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		svc := ledger.NewService(repo)
		err := svc.Transfer(context.Background(), ledger.TransferParams{
			SourceGroupID: sourceID,
			TargetGroupID: targetID,
			Amount:        4000,
			Description:   "escalation",
		})

		assert.NoError(t, err)
	})

	t.Run("SourceCannotCover", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		tx := ledger.NewMockTx(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().WalletForUpdate(gomock.Any(), sourceID).
			Return(&ledger.Wallet{ID: sourceWallet, GroupID: sourceID, Balance: 1000}, nil)
		tx.EXPECT().WalletForUpdate(gomock.Any(), targetID).
			Return(&ledger.Wallet{ID: targetWallet, GroupID: targetID, Balance: 0}, nil)
		tx.EXPECT().Rollback().Return(nil)

		svc := ledger.NewService(repo)
		err := svc.Transfer(context.Background(), ledger.TransferParams{
			SourceGroupID: sourceID,
			TargetGroupID: targetID,
			Amount:        4000,
		})

		assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)
	})

	t.Run("OppositeDirectionLocksInSameOrder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		tx := ledger.NewMockTx(ctrl)

		// Transferring from the higher group ID still locks the lower one
		// first, so two opposite-direction transfers cannot deadlock.
		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		gomock.InOrder(
			tx.EXPECT().WalletForUpdate(gomock.Any(), sourceID).
				Return(&ledger.Wallet{ID: sourceWallet, GroupID: sourceID, Balance: 0}, nil),
			tx.EXPECT().WalletForUpdate(gomock.Any(), targetID).
				Return(&ledger.Wallet{ID: targetWallet, GroupID: targetID, Balance: 10000}, nil),
		)
		tx.EXPECT().Apply(gomock.Any(), targetWallet, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, e *ledger.Entry) error {
				assert.Equal(t, ledger.TypeDebit, e.Type)
				return nil
			})
		tx.EXPECT().Apply(gomock.Any(), sourceWallet, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, e *ledger.Entry) error {
				assert.Equal(t, ledger.TypeCredit, e.Type)
				return nil
			})
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		svc := ledger.NewService(repo)
		err := svc.Transfer(context.Background(), ledger.TransferParams{
			SourceGroupID: targetID,
			TargetGroupID: sourceID,
			Amount:        4000,
		})

		assert.NoError(t, err)
	})

	t.Run("DebitLegFailureAborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		tx := ledger.NewMockTx(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().WalletForUpdate(gomock.Any(), sourceID).
			Return(&ledger.Wallet{ID: sourceWallet, GroupID: sourceID, Balance: 10000}, nil)
		tx.EXPECT().WalletForUpdate(gomock.Any(), targetID).
			Return(&ledger.Wallet{ID: targetWallet, GroupID: targetID, Balance: 0}, nil)
		tx.EXPECT().Apply(gomock.Any(), sourceWallet, gomock.Any()).
			Return(errors.New("db error"))
		tx.EXPECT().Rollback().Return(nil)

		svc := ledger.NewService(repo)
		err := svc.Transfer(context.Background(), ledger.TransferParams{
			SourceGroupID: sourceID,
			TargetGroupID: targetID,
			Amount:        4000,
		})

		assert.Error(t, err)
	})
}
