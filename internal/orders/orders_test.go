package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dukani_back_end/internal/models"
)

type fakeStore struct {
	orders  map[string]models.Order
	indexed map[string]bool // orderID -> présent dans orders_by_user
	items   map[string][]models.OrderItem

	failUserIndex bool
	failItemAfter int // échoue à l'insertion de la n-ième ligne (base 1), 0 = jamais

	calls []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		orders:  map[string]models.Order{},
		indexed: map[string]bool{},
		items:   map[string][]models.OrderItem{},
	}
}

func (f *fakeStore) InsertOrder(_ context.Context, order models.Order) error {
	f.calls = append(f.calls, "InsertOrder")
	f.orders[order.ID] = order
	return nil
}

func (f *fakeStore) InsertUserIndex(_ context.Context, order models.Order) error {
	f.calls = append(f.calls, "InsertUserIndex")
	if f.failUserIndex {
		return errors.New("scylla down")
	}
	f.indexed[order.ID] = true
	return nil
}

func (f *fakeStore) InsertItem(_ context.Context, item models.OrderItem) error {
	f.calls = append(f.calls, "InsertItem")
	if f.failItemAfter > 0 && len(f.items[item.OrderID])+1 == f.failItemAfter {
		return errors.New("scylla down")
	}
	f.items[item.OrderID] = append(f.items[item.OrderID], item)
	return nil
}

func (f *fakeStore) DeleteOrder(_ context.Context, orderID string) error {
	f.calls = append(f.calls, "DeleteOrder")
	delete(f.orders, orderID)
	return nil
}

func (f *fakeStore) DeleteUserIndex(_ context.Context, order models.Order) error {
	f.calls = append(f.calls, "DeleteUserIndex")
	delete(f.indexed, order.ID)
	return nil
}

func (f *fakeStore) DeleteItems(_ context.Context, orderID string) error {
	f.calls = append(f.calls, "DeleteItems")
	delete(f.items, orderID)
	return nil
}

// orderFromCart construit une commande comme le fait le handler de soumission
func orderFromCart(cartItems []models.CartItem) models.Order {
	order := models.Order{
		ID:        "order-1",
		UserID:    "u1",
		Status:    models.OrderStatusPending,
		CreatedAt: time.Now(),
	}
	for _, it := range cartItems {
		order.TotalAmount += it.Price * float64(it.Quantity)
		order.Items = append(order.Items, models.OrderItem{
			OrderID:         order.ID,
			ProductID:       it.ProductID,
			ProductName:     it.Name,
			Quantity:        it.Quantity,
			PriceAtPurchase: it.Price,
		})
	}
	return order
}

func TestWritePersistsOneOrderPerCart(t *testing.T) {
	cartItems := []models.CartItem{
		{ProductID: "1", Name: "p1", Price: 1000, Quantity: 2},
		{ProductID: "2", Name: "p2", Price: 500, Quantity: 1},
		{ProductID: "3", Name: "p3", Price: 250, Quantity: 4},
	}
	store := newFakeStore()

	err := Write(context.Background(), store, orderFromCart(cartItems))

	require.NoError(t, err)
	assert.Len(t, store.orders, 1)
	assert.True(t, store.indexed["order-1"])
	assert.Len(t, store.items["order-1"], len(cartItems), "une ligne par article du panier")
	assert.Equal(t, 3500.0, store.orders["order-1"].TotalAmount)
}

func TestWriteCompensatesWhenItemFails(t *testing.T) {
	cartItems := []models.CartItem{
		{ProductID: "1", Name: "p1", Price: 1000, Quantity: 1},
		{ProductID: "2", Name: "p2", Price: 500, Quantity: 1},
	}
	store := newFakeStore()
	store.failItemAfter = 2

	err := Write(context.Background(), store, orderFromCart(cartItems))

	require.Error(t, err)
	assert.Empty(t, store.orders, "la commande doit être effacée après un échec de ligne")
	assert.Empty(t, store.indexed)
	assert.Empty(t, store.items)
}

func TestWriteCompensatesWhenIndexFails(t *testing.T) {
	store := newFakeStore()
	store.failUserIndex = true

	err := Write(context.Background(), store, orderFromCart([]models.CartItem{
		{ProductID: "1", Name: "p1", Price: 100, Quantity: 1},
	}))

	require.Error(t, err)
	assert.Empty(t, store.orders)
	assert.Empty(t, store.indexed)
	assert.NotContains(t, store.calls, "DeleteUserIndex", "l'index jamais écrit n'a pas à être effacé")
	assert.NotContains(t, store.calls, "InsertItem", "aucune ligne ne doit être écrite après l'échec de l'index")
}
