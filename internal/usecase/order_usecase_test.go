package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/frag-avenue/internal/domain"
	"github.com/DRSN-tech/frag-avenue/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReorder(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	sess := env.sessions.Get(ctx, "s1")
	sess.Orders.Add(ctx, *domain.NewOrder("FRV-00000001", time.Now(), []domain.OrderItem{
		{ProductID: "p2", Name: "Oud Silk Mood", Brand: "MFK", Size: domain.Size100ml, Quantity: 3, UnitPrice: 36000},
		{ProductID: "retired", Name: "Retired Scent", Brand: "Gone", Size: domain.Size10ml, Quantity: 1, UnitPrice: 9000},
		{ProductID: "p4", Name: "Rose Prick", Brand: "Tom Ford", Size: domain.Size5ml, Quantity: 2, UnitPrice: 39000},
	}, domain.Delivery{}))

	res, err := env.orders.Reorder(ctx, "s1", "FRV-00000001")
	require.NoError(t, err)

	require.Len(t, res.Snapshot.Cart, 2)
	for _, item := range res.Snapshot.Cart {
		assert.Equal(t, domain.DefaultSize, item.Size)
		assert.Equal(t, 1, item.Quantity)
	}
	assert.Equal(t, "p2", res.Snapshot.Cart[0].ProductID)
	assert.Equal(t, "p4", res.Snapshot.Cart[1].ProductID)
	assert.True(t, res.Snapshot.CartPanelOpen)

	// повторный заказ увеличивает количество существующих позиций
	res, err = env.orders.Reorder(ctx, "s1", "FRV-00000001")
	require.NoError(t, err)
	require.Len(t, res.Snapshot.Cart, 2)
	assert.Equal(t, 2, res.Snapshot.Cart[0].Quantity)
}

func TestReorderUnknownOrder(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.orders.Reorder(context.Background(), "s1", "FRV-MISSING0")
	assert.ErrorIs(t, err, e.ErrOrderNotFound)
}

func TestOrdersNewestFirst(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	sess := env.sessions.Get(ctx, "s1")
	sess.Orders.Add(ctx, *domain.NewOrder("FRV-00000001", time.Now(), nil, domain.Delivery{}))
	sess.Orders.Add(ctx, *domain.NewOrder("FRV-00000002", time.Now(), nil, domain.Delivery{}))

	orders := env.orders.Orders(ctx, "s1")
	require.Len(t, orders, 2)
	assert.Equal(t, "FRV-00000002", orders[0].ID)
	assert.Empty(t, env.orders.Orders(ctx, "s2"))
}
