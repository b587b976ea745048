package group_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/prasetyo/kasrt/internal/group"
)

func TestService_CreateGroup(t *testing.T) {
	rootID := uuid.New()

	type testCase struct {
		name      string
		params    group.CreateGroupParams
		setupMock func(repo *group.MockRepository, tx *group.MockTx)
		wantErr   bool
	}

	tests := []testCase{
		{
			name:   "RootGroup",
			params: group.CreateGroupParams{Type: group.TypeRoot, Name: "RW 05"},
			setupMock: func(repo *group.MockRepository, tx *group.MockTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().InsertGroup(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().InsertWallet(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil).AnyTimes()
			},
		},
		{
			name: "SubordinateUnderRoot",
			params: group.CreateGroupParams{
				Type:     group.TypeSubordinate,
				Name:     "RT 03",
				ParentID: &rootID,
			},
			setupMock: func(repo *group.MockRepository, tx *group.MockTx) {
				repo.EXPECT().Group(gomock.Any(), rootID).
					Return(&group.Group{ID: rootID, Type: group.TypeRoot}, nil)
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().InsertGroup(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().InsertWallet(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil).AnyTimes()
			},
		},
		{
			name:    "RootWithParentRejected",
			params:  group.CreateGroupParams{Type: group.TypeRoot, Name: "RW 06", ParentID: &rootID},
			wantErr: true,
		},
		{
			name:    "SubordinateWithoutParentRejected",
			params:  group.CreateGroupParams{Type: group.TypeSubordinate, Name: "RT 01"},
			wantErr: true,
		},
		{
			name: "SubordinateUnderSubordinateRejected",
			params: group.CreateGroupParams{
				Type:     group.TypeSubordinate,
				Name:     "RT 02",
				ParentID: &rootID,
			},
			setupMock: func(repo *group.MockRepository, tx *group.MockTx) {
				repo.EXPECT().Group(gomock.Any(), rootID).
					Return(&group.Group{ID: rootID, Type: group.TypeSubordinate}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := group.NewMockRepository(ctrl)
			tx := group.NewMockTx(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo, tx)
			}

			svc := group.NewService(repo)
			g, err := svc.CreateGroup(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, g)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.params.Name, g.Name)
			assert.NotEqual(t, uuid.Nil, g.ID)
		})
	}
}

func TestService_RegisterUser_TreasurerUniqueness(t *testing.T) {
	groupID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := group.NewMockRepository(ctrl)
	tx := group.NewMockTx(ctrl)

	repo.EXPECT().Group(gomock.Any(), groupID).Return(&group.Group{ID: groupID}, nil)
	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().ActiveTreasurer(gomock.Any(), groupID).
		Return(&group.User{ID: uuid.New(), Role: group.RoleTreasurer}, nil)
	tx.EXPECT().Rollback().Return(nil)

	svc := group.NewService(repo)
	u, err := svc.RegisterUser(context.Background(), group.RegisterUserParams{
		GroupID: groupID,
		Name:    "Budi",
		Email:   "budi@example.com",
		Role:    group.RoleTreasurer,
	})

	assert.ErrorIs(t, err, group.ErrTreasurerExists)
	assert.Nil(t, u)
}

func TestService_FindActingTreasurer(t *testing.T) {
	groupID := uuid.New()
	parentID := uuid.New()
	treasurer := &group.User{ID: uuid.New(), Role: group.RoleTreasurer}

	type testCase struct {
		name       string
		setupMock  func(repo *group.MockRepository)
		wantSource group.TreasurerSource
	}

	tests := []testCase{
		{
			name: "OwnGroup",
			setupMock: func(repo *group.MockRepository) {
				repo.EXPECT().ActiveTreasurer(gomock.Any(), groupID).Return(treasurer, nil)
			},
			wantSource: group.TreasurerOwnGroup,
		},
		{
			name: "ParentFallback",
			setupMock: func(repo *group.MockRepository) {
				repo.EXPECT().ActiveTreasurer(gomock.Any(), groupID).Return(nil, group.ErrNotFound)
				repo.EXPECT().Group(gomock.Any(), groupID).
					Return(&group.Group{ID: groupID, ParentID: &parentID}, nil)
				repo.EXPECT().ActiveTreasurer(gomock.Any(), parentID).Return(treasurer, nil)
			},
			wantSource: group.TreasurerParentGroup,
		},
		{
			name: "NoneAvailable",
			setupMock: func(repo *group.MockRepository) {
				repo.EXPECT().ActiveTreasurer(gomock.Any(), groupID).Return(nil, group.ErrNotFound)
				repo.EXPECT().Group(gomock.Any(), groupID).
					Return(&group.Group{ID: groupID, ParentID: &parentID}, nil)
				repo.EXPECT().ActiveTreasurer(gomock.Any(), parentID).Return(nil, group.ErrNotFound)
			},
			wantSource: group.TreasurerNone,
		},
		{
			name: "RootWithoutTreasurer",
			setupMock: func(repo *group.MockRepository) {
				repo.EXPECT().ActiveTreasurer(gomock.Any(), groupID).Return(nil, group.ErrNotFound)
				repo.EXPECT().Group(gomock.Any(), groupID).
					Return(&group.Group{ID: groupID, Type: group.TypeRoot}, nil)
			},
			wantSource: group.TreasurerNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := group.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := group.NewService(repo)
			lookup, err := svc.FindActingTreasurer(context.Background(), groupID)

			require.NoError(t, err)
			assert.Equal(t, tt.wantSource, lookup.Source)

			if tt.wantSource != group.TreasurerNone {
				assert.Equal(t, treasurer.ID, lookup.Treasurer.ID)
			}
		})
	}
}

func TestService_SetDuesRule(t *testing.T) {
	groupID := uuid.New()
	officer := group.Actor{ID: uuid.New(), GroupID: groupID, Role: group.RoleSubordinateAdmin}

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := group.NewMockRepository(ctrl)
		tx := group.NewMockTx(ctrl)

		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().UpsertDuesRule(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		svc := group.NewService(repo)
		rule, err := svc.SetDuesRule(context.Background(), officer, group.SetDuesRuleParams{
			GroupID:  groupID,
			Amount:   20000,
			DueDay:   10,
			IsActive: true,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(20000), rule.Amount)
	})

	t.Run("ResidentForbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := group.NewMockRepository(ctrl)

		svc := group.NewService(repo)
		resident := group.Actor{ID: uuid.New(), GroupID: groupID, Role: group.RoleResident}

		_, err := svc.SetDuesRule(context.Background(), resident, group.SetDuesRuleParams{
			GroupID: groupID,
			Amount:  20000,
			DueDay:  10,
		})

		assert.ErrorIs(t, err, group.ErrForbidden)
	})

	t.Run("OtherGroupForbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := group.NewMockRepository(ctrl)

		svc := group.NewService(repo)

		_, err := svc.SetDuesRule(context.Background(), officer, group.SetDuesRuleParams{
			GroupID: uuid.New(),
			Amount:  20000,
			DueDay:  10,
		})

		assert.ErrorIs(t, err, group.ErrForbidden)
	})

	t.Run("DueDayOutOfRange", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := group.NewMockRepository(ctrl)

		svc := group.NewService(repo)

		_, err := svc.SetDuesRule(context.Background(), officer, group.SetDuesRuleParams{
			GroupID: groupID,
			Amount:  20000,
			DueDay:  32,
		})

		assert.Error(t, err)
	})
}
