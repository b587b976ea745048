package finance_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/prasetyo/kasrt/internal/dues"
	"github.com/prasetyo/kasrt/internal/group"
	"github.com/prasetyo/kasrt/internal/http/finance"
	"github.com/prasetyo/kasrt/internal/http/session"
	"github.com/prasetyo/kasrt/internal/ledger"
)

func newRouter(t *testing.T, ledgerRepo ledger.Repository) http.Handler {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	h := finance.NewHandler(ledger.NewService(ledgerRepo), dues.NewService(dues.NewMockRepository(ctrl)))

	r := chi.NewRouter()
	h.Routes(r)

	return r
}

func do(router http.Handler, actor group.Actor, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req = req.WithContext(session.WithActor(req.Context(), actor))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestHandler_WalletReadRequiresMembership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	groupID := uuid.New()
	repo := ledger.NewMockRepository(ctrl)

	t.Run("MemberSeesOwnWallet", func(t *testing.T) {
		repo.EXPECT().WalletByGroup(gomock.Any(), groupID).
			Return(&ledger.Wallet{ID: uuid.New(), GroupID: groupID, Balance: 50000}, nil)

		member := group.Actor{ID: uuid.New(), GroupID: groupID, Role: group.RoleResident}
		rec := do(newRouter(t, repo), member, http.MethodGet, "/groups/"+groupID.String()+"/wallet", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("OutsiderForbidden", func(t *testing.T) {
		outsider := group.Actor{ID: uuid.New(), GroupID: uuid.New(), Role: group.RoleTreasurer}
		rec := do(newRouter(t, repo), outsider, http.MethodGet, "/groups/"+groupID.String()+"/wallet", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("OutsiderCannotListEntries", func(t *testing.T) {
		outsider := group.Actor{ID: uuid.New(), GroupID: uuid.New(), Role: group.RoleRootLeader}
		rec := do(newRouter(t, repo), outsider, http.MethodGet, "/groups/"+groupID.String()+"/entries", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestHandler_ManualPostingsRequireTreasurer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	groupID := uuid.New()
	walletID := uuid.New()
	repo := ledger.NewMockRepository(ctrl)

	t.Run("TreasurerCredits", func(t *testing.T) {
		tx := ledger.NewMockTx(ctrl)
		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		tx.EXPECT().WalletForUpdate(gomock.Any(), groupID).
			Return(&ledger.Wallet{ID: walletID, GroupID: groupID, Balance: 0}, nil)
		tx.EXPECT().Apply(gomock.Any(), walletID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, e *ledger.Entry) error {
				require.Equal(t, ledger.TypeCredit, e.Type)
				return nil
			})
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		treasurer := group.Actor{ID: uuid.New(), GroupID: groupID, Role: group.RoleTreasurer}
		rec := do(newRouter(t, repo), treasurer, http.MethodPost, "/groups/"+groupID.String()+"/credit",
			`{"amount":25000,"description":"donation"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("AdminCannotCredit", func(t *testing.T) {
		admin := group.Actor{ID: uuid.New(), GroupID: groupID, Role: group.RoleSubordinateAdmin}
		rec := do(newRouter(t, repo), admin, http.MethodPost, "/groups/"+groupID.String()+"/credit",
			`{"amount":25000,"description":"donation"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("OtherGroupTreasurerCannotDebit", func(t *testing.T) {
		other := group.Actor{ID: uuid.New(), GroupID: uuid.New(), Role: group.RoleTreasurer}
		rec := do(newRouter(t, repo), other, http.MethodPost, "/groups/"+groupID.String()+"/debit",
			`{"amount":25000,"description":"supplies"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("AdminCannotTransfer", func(t *testing.T) {
		admin := group.Actor{ID: uuid.New(), GroupID: groupID, Role: group.RoleSubordinateAdmin}
		rec := do(newRouter(t, repo), admin, http.MethodPost, "/transfers",
			`{"source_group_id":"`+groupID.String()+`","target_group_id":"`+uuid.NewString()+`","amount":1000}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
