package orders

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/qastore/pkg/apperr"
	"github.com/qastore/pkg/constant"
	"github.com/qastore/pkg/database"
	"github.com/qastore/pkg/entities"
)

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return NewService(NewRepo(db), zap.NewNop()), db
}

func createOrders(t *testing.T, db *gorm.DB, userID uint, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		order := entities.Order{
			UserID:      userID,
			OrderNumber: fmt.Sprintf("ORD%06d", i),
			Status:      "Entregue",
			Total:       10.0,
			Items: []entities.OrderItem{
				{ProductID: uint(i + 1), ProductName: "Widget", Quantity: 1, Price: 10.0},
			},
		}
		require.NoError(t, db.Create(&order).Error)
	}
}

func TestListByUserEmptyHistory(t *testing.T) {
	s, _ := newTestService(t)

	result, err := s.ListByUser(context.Background(), 42, 0)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestListByUserLoadsItems(t *testing.T) {
	s, db := newTestService(t)
	createOrders(t, db, 1, 3)
	createOrders(t, db, 2, 1)

	result, err := s.ListByUser(context.Background(), 1, 0)
	require.NoError(t, err)
	require.Len(t, result, 3)
	for _, order := range result {
		assert.Len(t, order.Items, 1)
		assert.Equal(t, "Widget", order.Items[0].Name)
	}
}

func TestListByUserPaged(t *testing.T) {
	s, db := newTestService(t)
	createOrders(t, db, 1, 12)

	first, err := s.ListByUser(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Len(t, first, 10)

	second, err := s.ListByUser(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Len(t, second, 2)
	for _, order := range second {
		assert.NotEmpty(t, order.Items)
	}
}

func TestListByUserPageOutOfRange(t *testing.T) {
	s, db := newTestService(t)
	createOrders(t, db, 1, 2)

	_, err := s.ListByUser(context.Background(), 1, 5)
	require.Error(t, err)
	ae, ok := apperr.From(err)
	require.True(t, ok)
	assert.Equal(t, 400, ae.Status)
	assert.Equal(t, constant.PAGE_NUMBER_OUT_OF_RANGE, ae.Message)
}
