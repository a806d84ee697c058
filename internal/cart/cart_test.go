package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dukani_back_end/internal/models"
)

func item(id string, price float64) models.CartItem {
	return models.CartItem{ProductID: id, Name: "p" + id, Price: price}
}

func TestAddIncrementsExisting(t *testing.T) {
	items := Add(nil, item("1", 1000), 1)
	items = Add(items, item("2", 500), 2)
	items = Add(items, item("1", 1000), 1)

	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, items[1].Quantity)
	assert.Equal(t, 4, TotalItems(items))
	assert.Equal(t, 3000.0, TotalPrice(items))
}

func TestAddDefaultsToOne(t *testing.T) {
	items := Add(nil, item("1", 100), 0)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestUpdateQuantitySets(t *testing.T) {
	items := Add(nil, item("1", 100), 1)
	items = UpdateQuantity(items, "1", 5)

	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 500.0, TotalPrice(items))
}

func TestUpdateQuantityZeroEqualsRemove(t *testing.T) {
	base := Add(Add(nil, item("1", 100), 2), item("2", 200), 1)

	viaUpdate := UpdateQuantity(base, "1", 0)
	viaRemove := Remove(base, "1")

	assert.Equal(t, viaRemove, viaUpdate)
	require.Len(t, viaUpdate, 1)
	assert.Equal(t, "2", viaUpdate[0].ProductID)
}

func TestRemoveUnknownIsNoop(t *testing.T) {
	base := Add(nil, item("1", 100), 1)
	assert.Equal(t, base, Remove(base, "missing"))
}

func TestTotalsInvariantOverRandomSequence(t *testing.T) {
	// toute séquence add/update/remove laisse totalItems = somme des quantités, jamais négatif
	var items []models.CartItem
	items = Add(items, item("1", 1000), 3)
	items = Add(items, item("2", 250), 1)
	items = UpdateQuantity(items, "1", 1)
	items = Add(items, item("3", 99), 4)
	items = Remove(items, "2")
	items = UpdateQuantity(items, "3", 0)

	sum := 0
	for _, it := range items {
		require.GreaterOrEqual(t, it.Quantity, 1, "une quantité nulle ne doit jamais être stockée")
		sum += it.Quantity
	}
	assert.Equal(t, sum, TotalItems(items))
	assert.GreaterOrEqual(t, TotalItems(items), 0)
}

func TestReducersDoNotMutateInput(t *testing.T) {
	base := Add(nil, item("1", 100), 2)
	_ = UpdateQuantity(base, "1", 9)
	_ = Add(base, item("1", 100), 1)

	assert.Equal(t, 2, base[0].Quantity)
}
