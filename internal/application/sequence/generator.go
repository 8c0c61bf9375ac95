// Package sequence issues the human-readable document codes (F00001,
// FA00001, BS00001, P00001, C00001, FOU00001...).
package sequence

import (
	"fmt"

	"github.com/sbkgestion/stock-api/internal/domain/repository"
)

// Width of the numeric part of every code.
const Width = 5

// Known prefixes.
const (
	PrefixProduct         = "P"
	PrefixClient          = "C"
	PrefixSupplier        = "FOU"
	PrefixSalesInvoice    = "F"
	PrefixPurchaseInvoice = "FA"
	PrefixExitNote        = "BS"
)

// Generator issues the next code for a prefix through an atomic per-prefix
// counter. The old find-max-then-insert scan is gone: increment and fetch are
// one store operation, so concurrent issuance cannot collide.
type Generator struct {
	sequences repository.SequenceRepository
}

// NewGenerator builds the generator.
func NewGenerator(sequences repository.SequenceRepository) *Generator {
	return &Generator{sequences: sequences}
}

// Next issues the next code for prefix using the generator's own repository.
func (g *Generator) Next(prefix string) (string, error) {
	return NextWith(g.sequences, prefix)
}

// NextWith issues the next code through the given repository. Document use
// cases pass their transaction-bound repository here so the counter advance
// commits or aborts together with the document write.
func NextWith(sequences repository.SequenceRepository, prefix string) (string, error) {
	n, err := sequences.Next(prefix)
	if err != nil {
		return "", fmt.Errorf("next sequence %q: %w", prefix, err)
	}
	return Format(prefix, n), nil
}

// Format renders a counter value as a fixed-width zero-padded code.
func Format(prefix string, n int64) string {
	return fmt.Sprintf("%s%0*d", prefix, Width, n)
}
