// Package ledger holds the pure arithmetic of stock movements: aggregating
// document lines per product and diffing an old line set against a new one
// into a single net delta per product. It has no persistence concerns.
package ledger

import (
	"sort"

	"github.com/sbkgestion/stock-api/internal/domain/entity"
)

// Aggregate sums line quantities per product. Two lines referencing the same
// product combine before any validation, so a document cannot over-commit
// stock by splitting one product across lines.
func Aggregate(lines []entity.DocumentLine) map[string]int64 {
	totals := make(map[string]int64, len(lines))
	for _, l := range lines {
		totals[l.ProductID] += l.Quantity
	}
	return totals
}

// NetDeltas computes the signed stock delta per product when the old line set
// is replaced by the new one: direction × (newQty − oldQty). Products whose
// net delta is zero are dropped, so a no-op update touches nothing.
//
// Create passes old=nil, delete passes new=nil; both are just special cases
// of the same diff.
func NetDeltas(direction int64, oldLines, newLines []entity.DocumentLine) map[string]int64 {
	oldTotals := Aggregate(oldLines)
	newTotals := Aggregate(newLines)

	deltas := make(map[string]int64, len(oldTotals)+len(newTotals))
	for id, qty := range newTotals {
		deltas[id] += direction * qty
	}
	for id, qty := range oldTotals {
		deltas[id] -= direction * qty
	}
	for id, d := range deltas {
		if d == 0 {
			delete(deltas, id)
		}
	}
	return deltas
}

// ProductIDs returns the delta keys in a stable order. Touched product rows
// are locked in this order to avoid deadlocks between concurrent documents.
func ProductIDs(deltas map[string]int64) []string {
	ids := make([]string, 0, len(deltas))
	for id := range deltas {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// TotalQuantity sums the quantities of a line set (used for the exit-note
// stockAvantSortie field).
func TotalQuantity(lines []entity.DocumentLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.Quantity
	}
	return total
}
