package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sbkgestion/stock-api/internal/application/sequence"
)

// counterStub counts per prefix in memory.
type counterStub struct {
	counters map[string]int64
}

func (s *counterStub) Next(prefix string) (int64, error) {
	if s.counters == nil {
		s.counters = make(map[string]int64)
	}
	s.counters[prefix]++
	return s.counters[prefix], nil
}

func TestFormat_FixedWidth(t *testing.T) {
	assert.Equal(t, "F00001", sequence.Format(sequence.PrefixSalesInvoice, 1))
	assert.Equal(t, "FA00042", sequence.Format(sequence.PrefixPurchaseInvoice, 42))
	assert.Equal(t, "BS99999", sequence.Format(sequence.PrefixExitNote, 99999))
	assert.Equal(t, "FOU00007", sequence.Format(sequence.PrefixSupplier, 7))
}

func TestFormat_WidthGrowsPastCapacity(t *testing.T) {
	assert.Equal(t, "P123456", sequence.Format(sequence.PrefixProduct, 123456),
		"codes beyond the padded width keep all digits")
}

func TestGenerator_MonotonicPerPrefix(t *testing.T) {
	g := sequence.NewGenerator(&counterStub{})

	first, err := g.Next(sequence.PrefixSalesInvoice)
	require.NoError(t, err)
	second, err := g.Next(sequence.PrefixSalesInvoice)
	require.NoError(t, err)

	assert.Equal(t, "F00001", first)
	assert.Equal(t, "F00002", second)
}

func TestGenerator_PrefixesAreIndependent(t *testing.T) {
	g := sequence.NewGenerator(&counterStub{})

	f, err := g.Next(sequence.PrefixSalesInvoice)
	require.NoError(t, err)
	fa, err := g.Next(sequence.PrefixPurchaseInvoice)
	require.NoError(t, err)
	bs, err := g.Next(sequence.PrefixExitNote)
	require.NoError(t, err)

	assert.Equal(t, "F00001", f)
	assert.Equal(t, "FA00001", fa)
	assert.Equal(t, "BS00001", bs, "each document kind numbers from its own counter")
}
