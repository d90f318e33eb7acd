package dao_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/nikolayk812/cartsave-demo/internal/dao"
	"github.com/nikolayk812/cartsave-demo/internal/domain"
	"github.com/nikolayk812/cartsave-demo/internal/repository"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	goleak.VerifyTestMain(m)
}

type repositoryMock struct {
	mock.Mock
}

func (m *repositoryMock) Save(ctx context.Context, cart *domain.Cart, items ...*domain.Item) error {
	args := m.Called(ctx, cart, items)
	return args.Error(0)
}

func (m *repositoryMock) GetCart(ctx context.Context, id uuid.UUID) (*domain.Cart, error) {
	args := m.Called(ctx, id)
	cart, _ := args.Get(0).(*domain.Cart)
	return cart, args.Error(1)
}

func (m *repositoryMock) CountCarts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *repositoryMock) Close() error {
	return m.Called().Error(0)
}

func exampleCart() (*domain.Cart, *domain.Item, *domain.Item) {
	cart := domain.NewCart("cart")
	item1 := domain.NewItem("I10", decimal.NewFromInt(10), 1, cart)
	item2 := domain.NewItem("I20", decimal.NewFromInt(20), 2, cart)
	cart.AddItem(item1)
	cart.AddItem(item2)
	cart.Total = decimal.NewFromInt(10*1 + 20*2)
	return cart, item1, item2
}

func TestGateway_SaveData(t *testing.T) {
	tests := []struct {
		name      string
		saveErr   error
		wantOK    bool
		wantInLog []string
	}{
		{
			name:      "save succeeds",
			wantOK:    true,
			wantInLog: []string{"saving cart", "transaction committed"},
		},
		{
			name:      "store rejects: logged and swallowed",
			saveErr:   errors.New("q.InsertItem[I20]: constraint violation"),
			wantOK:    false,
			wantInLog: []string{"saving cart", "save abandoned", "constraint violation", "stack"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf)

			cart, item1, item2 := exampleCart()
			assignedID := uuid.New()

			repo := new(repositoryMock)
			repo.On("Save", mock.Anything, cart, []*domain.Item{item1, item2}).
				Run(func(args mock.Arguments) {
					if tt.saveErr == nil {
						args.Get(1).(*domain.Cart).ID = assignedID
					}
				}).
				Return(tt.saveErr).
				Once()

			gw := dao.New(repo, logger)

			var result dao.Result
			require.NotPanics(t, func() {
				result = gw.SaveData(t.Context(), cart, item1, item2)
			})

			repo.AssertExpectations(t)
			assert.Equal(t, tt.wantOK, result.OK())
			if tt.wantOK {
				assert.Equal(t, assignedID, result.CartID)
			} else {
				require.ErrorIs(t, result.Err, tt.saveErr)
				assert.Equal(t, uuid.Nil, result.CartID)
			}

			for _, s := range tt.wantInLog {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestGateway_SaveData_PassesLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	cart, item1, item2 := exampleCart()

	repo := new(repositoryMock)
	repo.On("Save", mock.Anything, cart, []*domain.Item{item1, item2}).
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			zerolog.Ctx(ctx).Info().Msg("from repository")
		}).
		Return(nil).
		Once()

	dao.New(repo, logger).SaveData(t.Context(), cart, item1, item2)

	assert.Contains(t, buf.String(), "from repository")
	assert.Contains(t, buf.String(), `"cart":"cart"`)
}

func TestGateway_SaveData_SQLite(t *testing.T) {
	ctx := t.Context()

	repo, err := repository.NewSQLite(ctx, filepath.Join(t.TempDir(), "cart.db"))
	require.NoError(t, err)
	defer func() {
		require.NoError(t, repo.Close())
	}()

	var logs bytes.Buffer
	gw := dao.New(repo, zerolog.New(&logs))

	t.Run("example cart: total 50 persisted", func(t *testing.T) {
		cart, item1, item2 := exampleCart()

		result := gw.SaveData(ctx, cart, item1, item2)
		require.True(t, result.OK(), "%v", result.Err)

		got, err := repo.GetCart(ctx, result.CartID)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(50).Equal(got.Total))
		assert.Equal(t, 2, got.Items.Len())
	})

	t.Run("zero items: ok", func(t *testing.T) {
		result := gw.SaveData(ctx, domain.NewCart("empty"))
		require.True(t, result.OK(), "%v", result.Err)
	})

	t.Run("rejected batch: nothing committed", func(t *testing.T) {
		before, err := repo.CountCarts(ctx)
		require.NoError(t, err)

		cart, item1, item2 := exampleCart()
		item2.Cart = nil

		logs.Reset()
		result := gw.SaveData(ctx, cart, item1, item2)
		require.False(t, result.OK())
		assert.Contains(t, logs.String(), "save abandoned")
		assert.Contains(t, logs.String(), "stack")

		after, err := repo.CountCarts(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}
