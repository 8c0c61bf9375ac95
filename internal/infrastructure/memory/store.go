// Package memory provides an in-memory implementation of every persistence
// port, with transactional snapshot/rollback. It backs the use case tests and
// doubles as a storage mode for local development without PostgreSQL.
package memory

import (
	"sync"

	"github.com/sbkgestion/stock-api/internal/domain/entity"
)

// state is the mutable dataset. All access goes through a view so the tx
// runner can swap a snapshot back in on rollback.
type state struct {
	products  map[string]*entity.Product
	clients   map[string]*entity.Client
	suppliers map[string]*entity.Supplier
	sales     map[string]*entity.SalesInvoice
	purchases map[string]*entity.PurchaseInvoice
	exits     map[string]*entity.ExitNote
	summaries map[string]*entity.FinancialSummary
	sequences map[string]int64
}

func newState() *state {
	return &state{
		products:  make(map[string]*entity.Product),
		clients:   make(map[string]*entity.Client),
		suppliers: make(map[string]*entity.Supplier),
		sales:     make(map[string]*entity.SalesInvoice),
		purchases: make(map[string]*entity.PurchaseInvoice),
		exits:     make(map[string]*entity.ExitNote),
		summaries: make(map[string]*entity.FinancialSummary),
		sequences: make(map[string]int64),
	}
}

func cloneLines(lines []entity.DocumentLine) []entity.DocumentLine {
	if lines == nil {
		return nil
	}
	out := make([]entity.DocumentLine, len(lines))
	copy(out, lines)
	return out
}

func cloneProduct(p *entity.Product) *entity.Product {
	c := *p
	return &c
}

func cloneClient(c *entity.Client) *entity.Client {
	cc := *c
	return &cc
}

func cloneSupplier(s *entity.Supplier) *entity.Supplier {
	c := *s
	return &c
}

func cloneSalesInvoice(inv *entity.SalesInvoice) *entity.SalesInvoice {
	c := *inv
	c.Lines = cloneLines(inv.Lines)
	return &c
}

func clonePurchaseInvoice(inv *entity.PurchaseInvoice) *entity.PurchaseInvoice {
	c := *inv
	c.Lines = cloneLines(inv.Lines)
	return &c
}

func cloneExitNote(n *entity.ExitNote) *entity.ExitNote {
	c := *n
	c.Lines = cloneLines(n.Lines)
	return &c
}

func cloneSummary(s *entity.FinancialSummary) *entity.FinancialSummary {
	c := *s
	return &c
}

// clone deep-copies the whole dataset. The tx runner snapshots before the
// callback and restores the snapshot on error.
func (s *state) clone() *state {
	c := newState()
	for id, p := range s.products {
		c.products[id] = cloneProduct(p)
	}
	for id, cl := range s.clients {
		c.clients[id] = cloneClient(cl)
	}
	for id, sp := range s.suppliers {
		c.suppliers[id] = cloneSupplier(sp)
	}
	for id, inv := range s.sales {
		c.sales[id] = cloneSalesInvoice(inv)
	}
	for id, inv := range s.purchases {
		c.purchases[id] = clonePurchaseInvoice(inv)
	}
	for id, n := range s.exits {
		c.exits[id] = cloneExitNote(n)
	}
	for id, sum := range s.summaries {
		c.summaries[id] = cloneSummary(sum)
	}
	for prefix, n := range s.sequences {
		c.sequences[prefix] = n
	}
	return c
}

// view runs a function against the dataset with whatever synchronization the
// context requires: the store locks per call, a transaction holds the lock
// for its whole span and passes through.
type view interface {
	do(fn func(*state) error) error
}

// Store owns the dataset and the lock. Standalone repositories bound to the
// store synchronize per operation.
type Store struct {
	mu sync.Mutex
	s  *state
}

// NewStore builds an empty store.
func NewStore() *Store {
	return &Store{s: newState()}
}

func (st *Store) do(fn func(*state) error) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	return fn(st.s)
}

// txView accesses the dataset directly; the tx runner already holds the lock.
type txView struct {
	s *state
}

func (v txView) do(fn func(*state) error) error {
	return fn(v.s)
}

// Products returns a product repository bound to the store.
func (st *Store) Products() *ProductRepo { return &ProductRepo{v: st} }

// Clients returns a client repository bound to the store.
func (st *Store) Clients() *ClientRepo { return &ClientRepo{v: st} }

// Suppliers returns a supplier repository bound to the store.
func (st *Store) Suppliers() *SupplierRepo { return &SupplierRepo{v: st} }

// SalesInvoices returns a sales invoice repository bound to the store.
func (st *Store) SalesInvoices() *SalesInvoiceRepo { return &SalesInvoiceRepo{v: st} }

// PurchaseInvoices returns a purchase invoice repository bound to the store.
func (st *Store) PurchaseInvoices() *PurchaseInvoiceRepo { return &PurchaseInvoiceRepo{v: st} }

// ExitNotes returns an exit note repository bound to the store.
func (st *Store) ExitNotes() *ExitNoteRepo { return &ExitNoteRepo{v: st} }

// Summaries returns a summary repository bound to the store.
func (st *Store) Summaries() *SummaryRepo { return &SummaryRepo{v: st} }

// Sequences returns a sequence repository bound to the store.
func (st *Store) Sequences() *SequenceRepo { return &SequenceRepo{v: st} }
