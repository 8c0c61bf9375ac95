package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sbkgestion/stock-api/internal/domain/entity"
	"github.com/sbkgestion/stock-api/internal/domain/ledger"
)

func TestAggregate_CombinesRepeatedProducts(t *testing.T) {
	totals := ledger.Aggregate([]entity.DocumentLine{
		{ProductID: "a", Quantity: 60},
		{ProductID: "b", Quantity: 5},
		{ProductID: "a", Quantity: 60},
	})

	assert.Equal(t, int64(120), totals["a"], "lines for the same product must sum before validation")
	assert.Equal(t, int64(5), totals["b"])
	assert.Len(t, totals, 2)
}

func TestAggregate_Empty(t *testing.T) {
	assert.Empty(t, ledger.Aggregate(nil))
}

func TestNetDeltas_Create(t *testing.T) {
	deltas := ledger.NetDeltas(-1, nil, []entity.DocumentLine{
		{ProductID: "a", Quantity: 50},
	})

	assert.Equal(t, map[string]int64{"a": -50}, deltas)
}

func TestNetDeltas_Delete(t *testing.T) {
	deltas := ledger.NetDeltas(-1, []entity.DocumentLine{
		{ProductID: "a", Quantity: 50},
	}, nil)

	assert.Equal(t, map[string]int64{"a": 50}, deltas, "deleting a sale must give the stock back")
}

func TestNetDeltas_UpdateIsOneNetMovement(t *testing.T) {
	old := []entity.DocumentLine{{ProductID: "a", Quantity: 30}, {ProductID: "b", Quantity: 10}}
	updated := []entity.DocumentLine{{ProductID: "a", Quantity: 50}, {ProductID: "c", Quantity: 5}}

	deltas := ledger.NetDeltas(-1, old, updated)

	assert.Equal(t, map[string]int64{
		"a": -20, // 30 -> 50 sold
		"b": 10,  // dropped from the document
		"c": -5,  // newly added
	}, deltas)
}

func TestNetDeltas_NoOpUpdateDropsZeroes(t *testing.T) {
	lines := []entity.DocumentLine{{ProductID: "a", Quantity: 50}}
	reordered := []entity.DocumentLine{
		{ProductID: "a", Quantity: 20},
		{ProductID: "a", Quantity: 30},
	}

	deltas := ledger.NetDeltas(-1, lines, reordered)

	assert.Empty(t, deltas, "identical aggregated line sets must produce no movement")
}

func TestNetDeltas_PurchaseDirection(t *testing.T) {
	deltas := ledger.NetDeltas(1, nil, []entity.DocumentLine{{ProductID: "a", Quantity: 20}})
	assert.Equal(t, map[string]int64{"a": 20}, deltas)
}

func TestProductIDs_SortedOrder(t *testing.T) {
	ids := ledger.ProductIDs(map[string]int64{"c": 1, "a": 2, "b": 3})
	assert.Equal(t, []string{"a", "b", "c"}, ids, "lock order must be stable across concurrent documents")
}

func TestTotalQuantity(t *testing.T) {
	total := ledger.TotalQuantity([]entity.DocumentLine{
		{ProductID: "a", Quantity: 7},
		{ProductID: "b", Quantity: 3},
	})
	assert.Equal(t, int64(10), total)
}
