package memory

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sbkgestion/stock-api/internal/domain"
	"github.com/sbkgestion/stock-api/internal/domain/entity"
	"github.com/sbkgestion/stock-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository         = (*ProductRepo)(nil)
	_ repository.ClientRepository          = (*ClientRepo)(nil)
	_ repository.SupplierRepository        = (*SupplierRepo)(nil)
	_ repository.SalesInvoiceRepository    = (*SalesInvoiceRepo)(nil)
	_ repository.PurchaseInvoiceRepository = (*PurchaseInvoiceRepo)(nil)
	_ repository.ExitNoteRepository        = (*ExitNoteRepo)(nil)
	_ repository.SummaryRepository         = (*SummaryRepo)(nil)
	_ repository.SequenceRepository        = (*SequenceRepo)(nil)
)

// ProductRepo is the in-memory product repository.
type ProductRepo struct {
	v view
}

func (r *ProductRepo) Create(p *entity.Product) error {
	return r.v.do(func(s *state) error {
		if _, ok := s.products[p.ID]; ok {
			return domain.ErrDuplicate
		}
		s.products[p.ID] = cloneProduct(p)
		return nil
	})
}

func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	var out *entity.Product
	err := r.v.do(func(s *state) error {
		if p, ok := s.products[id]; ok {
			out = cloneProduct(p)
		}
		return nil
	})
	return out, err
}

// GetForUpdate is GetByID here; the store lock already serializes writers.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *ProductRepo) Update(p *entity.Product) error {
	return r.v.do(func(s *state) error {
		cur, ok := s.products[p.ID]
		if !ok {
			return domain.ErrNotFound
		}
		next := cloneProduct(p)
		next.Reference = cur.Reference
		next.StockActuel = cur.StockActuel
		next.StockAvantMouvement = cur.StockAvantMouvement
		next.StockApresMouvement = cur.StockApresMouvement
		next.UpdatedAt = time.Now()
		s.products[p.ID] = next
		return nil
	})
}

func (r *ProductRepo) ApplyMovement(id string, newStock, before, after int64) error {
	return r.v.do(func(s *state) error {
		p, ok := s.products[id]
		if !ok {
			return domain.ErrNotFound
		}
		p.StockActuel = newStock
		p.StockAvantMouvement = before
		p.StockApresMouvement = after
		p.UpdatedAt = time.Now()
		return nil
	})
}

func (r *ProductRepo) List() ([]*entity.Product, error) {
	var out []*entity.Product
	err := r.v.do(func(s *state) error {
		for _, p := range s.products {
			out = append(out, cloneProduct(p))
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, err
}

func (r *ProductRepo) Delete(id string) error {
	return r.v.do(func(s *state) error {
		if _, ok := s.products[id]; !ok {
			return domain.ErrNotFound
		}
		delete(s.products, id)
		return nil
	})
}

// ClientRepo is the in-memory client repository.
type ClientRepo struct {
	v view
}

func (r *ClientRepo) Create(c *entity.Client) error {
	return r.v.do(func(s *state) error {
		if _, ok := s.clients[c.ID]; ok {
			return domain.ErrDuplicate
		}
		s.clients[c.ID] = cloneClient(c)
		return nil
	})
}

func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	var out *entity.Client
	err := r.v.do(func(s *state) error {
		if c, ok := s.clients[id]; ok {
			out = cloneClient(c)
		}
		return nil
	})
	return out, err
}

func (r *ClientRepo) Update(c *entity.Client) error {
	return r.v.do(func(s *state) error {
		cur, ok := s.clients[c.ID]
		if !ok {
			return domain.ErrNotFound
		}
		next := cloneClient(c)
		next.Numero = cur.Numero
		next.UpdatedAt = time.Now()
		s.clients[c.ID] = next
		return nil
	})
}

func (r *ClientRepo) List() ([]*entity.Client, error) {
	var out []*entity.Client
	err := r.v.do(func(s *state) error {
		for _, c := range s.clients {
			out = append(out, cloneClient(c))
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, err
}

func (r *ClientRepo) Delete(id string) error {
	return r.v.do(func(s *state) error {
		if _, ok := s.clients[id]; !ok {
			return domain.ErrNotFound
		}
		delete(s.clients, id)
		return nil
	})
}

// SupplierRepo is the in-memory supplier repository.
type SupplierRepo struct {
	v view
}

func (r *SupplierRepo) Create(sp *entity.Supplier) error {
	return r.v.do(func(s *state) error {
		if _, ok := s.suppliers[sp.ID]; ok {
			return domain.ErrDuplicate
		}
		s.suppliers[sp.ID] = cloneSupplier(sp)
		return nil
	})
}

func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	var out *entity.Supplier
	err := r.v.do(func(s *state) error {
		if sp, ok := s.suppliers[id]; ok {
			out = cloneSupplier(sp)
		}
		return nil
	})
	return out, err
}

func (r *SupplierRepo) Update(sp *entity.Supplier) error {
	return r.v.do(func(s *state) error {
		cur, ok := s.suppliers[sp.ID]
		if !ok {
			return domain.ErrNotFound
		}
		next := cloneSupplier(sp)
		next.Numero = cur.Numero
		next.UpdatedAt = time.Now()
		s.suppliers[sp.ID] = next
		return nil
	})
}

func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	err := r.v.do(func(s *state) error {
		for _, sp := range s.suppliers {
			out = append(out, cloneSupplier(sp))
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, err
}

func (r *SupplierRepo) Delete(id string) error {
	return r.v.do(func(s *state) error {
		if _, ok := s.suppliers[id]; !ok {
			return domain.ErrNotFound
		}
		delete(s.suppliers, id)
		return nil
	})
}

// SalesInvoiceRepo is the in-memory sales invoice repository.
type SalesInvoiceRepo struct {
	v view
}

func (r *SalesInvoiceRepo) Create(inv *entity.SalesInvoice) error {
	return r.v.do(func(s *state) error {
		if _, ok := s.sales[inv.ID]; ok {
			return domain.ErrDuplicate
		}
		s.sales[inv.ID] = cloneSalesInvoice(inv)
		return nil
	})
}

func (r *SalesInvoiceRepo) GetByID(id string) (*entity.SalesInvoice, error) {
	var out *entity.SalesInvoice
	err := r.v.do(func(s *state) error {
		if inv, ok := s.sales[id]; ok {
			out = cloneSalesInvoice(inv)
		}
		return nil
	})
	return out, err
}

func (r *SalesInvoiceRepo) Update(inv *entity.SalesInvoice) error {
	return r.v.do(func(s *state) error {
		cur, ok := s.sales[inv.ID]
		if !ok {
			return domain.ErrNotFound
		}
		next := cloneSalesInvoice(inv)
		next.Numero = cur.Numero
		next.UpdatedAt = time.Now()
		s.sales[inv.ID] = next
		return nil
	})
}

func (r *SalesInvoiceRepo) List() ([]*entity.SalesInvoice, error) {
	var out []*entity.SalesInvoice
	err := r.v.do(func(s *state) error {
		for _, inv := range s.sales {
			out = append(out, cloneSalesInvoice(inv))
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, err
}

func (r *SalesInvoiceRepo) Delete(id string) error {
	return r.v.do(func(s *state) error {
		if _, ok := s.sales[id]; !ok {
			return domain.ErrNotFound
		}
		delete(s.sales, id)
		return nil
	})
}

func (r *SalesInvoiceRepo) SumAmountHTBetween(from, to time.Time) (decimal.Decimal, error) {
	sum := decimal.Zero
	err := r.v.do(func(s *state) error {
		for _, inv := range s.sales {
			if !inv.Date.Before(from) && !inv.Date.After(to) {
				sum = sum.Add(inv.AmountHT)
			}
		}
		return nil
	})
	return sum, err
}

// PurchaseInvoiceRepo is the in-memory purchase invoice repository.
type PurchaseInvoiceRepo struct {
	v view
}

func (r *PurchaseInvoiceRepo) Create(inv *entity.PurchaseInvoice) error {
	return r.v.do(func(s *state) error {
		if _, ok := s.purchases[inv.ID]; ok {
			return domain.ErrDuplicate
		}
		s.purchases[inv.ID] = clonePurchaseInvoice(inv)
		return nil
	})
}

func (r *PurchaseInvoiceRepo) GetByID(id string) (*entity.PurchaseInvoice, error) {
	var out *entity.PurchaseInvoice
	err := r.v.do(func(s *state) error {
		if inv, ok := s.purchases[id]; ok {
			out = clonePurchaseInvoice(inv)
		}
		return nil
	})
	return out, err
}

func (r *PurchaseInvoiceRepo) Update(inv *entity.PurchaseInvoice) error {
	return r.v.do(func(s *state) error {
		cur, ok := s.purchases[inv.ID]
		if !ok {
			return domain.ErrNotFound
		}
		next := clonePurchaseInvoice(inv)
		next.Numero = cur.Numero
		next.UpdatedAt = time.Now()
		s.purchases[inv.ID] = next
		return nil
	})
}

func (r *PurchaseInvoiceRepo) List() ([]*entity.PurchaseInvoice, error) {
	var out []*entity.PurchaseInvoice
	err := r.v.do(func(s *state) error {
		for _, inv := range s.purchases {
			out = append(out, clonePurchaseInvoice(inv))
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, err
}

func (r *PurchaseInvoiceRepo) Delete(id string) error {
	return r.v.do(func(s *state) error {
		if _, ok := s.purchases[id]; !ok {
			return domain.ErrNotFound
		}
		delete(s.purchases, id)
		return nil
	})
}

func (r *PurchaseInvoiceRepo) SumAmountHTBetween(from, to time.Time) (decimal.Decimal, error) {
	sum := decimal.Zero
	err := r.v.do(func(s *state) error {
		for _, inv := range s.purchases {
			if !inv.Date.Before(from) && !inv.Date.After(to) {
				sum = sum.Add(inv.AmountHT)
			}
		}
		return nil
	})
	return sum, err
}

// ExitNoteRepo is the in-memory exit note repository.
type ExitNoteRepo struct {
	v view
}

func (r *ExitNoteRepo) Create(n *entity.ExitNote) error {
	return r.v.do(func(s *state) error {
		if _, ok := s.exits[n.ID]; ok {
			return domain.ErrDuplicate
		}
		s.exits[n.ID] = cloneExitNote(n)
		return nil
	})
}

func (r *ExitNoteRepo) GetByID(id string) (*entity.ExitNote, error) {
	var out *entity.ExitNote
	err := r.v.do(func(s *state) error {
		if n, ok := s.exits[id]; ok {
			out = cloneExitNote(n)
		}
		return nil
	})
	return out, err
}

func (r *ExitNoteRepo) Update(n *entity.ExitNote) error {
	return r.v.do(func(s *state) error {
		cur, ok := s.exits[n.ID]
		if !ok {
			return domain.ErrNotFound
		}
		next := cloneExitNote(n)
		next.Numero = cur.Numero
		next.UpdatedAt = time.Now()
		s.exits[n.ID] = next
		return nil
	})
}

func (r *ExitNoteRepo) List() ([]*entity.ExitNote, error) {
	var out []*entity.ExitNote
	err := r.v.do(func(s *state) error {
		for _, n := range s.exits {
			out = append(out, cloneExitNote(n))
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, err
}

func (r *ExitNoteRepo) Delete(id string) error {
	return r.v.do(func(s *state) error {
		if _, ok := s.exits[id]; !ok {
			return domain.ErrNotFound
		}
		delete(s.exits, id)
		return nil
	})
}

// SummaryRepo is the in-memory financial summary repository.
type SummaryRepo struct {
	v view
}

func (r *SummaryRepo) Insert(sum *entity.FinancialSummary) error {
	return r.v.do(func(s *state) error {
		for _, existing := range s.summaries {
			if existing.PeriodType == sum.PeriodType && existing.Period.Equal(sum.Period) {
				return domain.ErrDuplicate
			}
		}
		s.summaries[sum.ID] = cloneSummary(sum)
		return nil
	})
}

func (r *SummaryRepo) GetByID(id string) (*entity.FinancialSummary, error) {
	var out *entity.FinancialSummary
	err := r.v.do(func(s *state) error {
		if sum, ok := s.summaries[id]; ok {
			out = cloneSummary(sum)
		}
		return nil
	})
	return out, err
}

func (r *SummaryRepo) GetByPeriod(period time.Time, periodType string) (*entity.FinancialSummary, error) {
	var out *entity.FinancialSummary
	err := r.v.do(func(s *state) error {
		for _, sum := range s.summaries {
			if sum.PeriodType == periodType && sum.Period.Equal(period) {
				out = cloneSummary(sum)
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *SummaryRepo) List(filter repository.SummaryFilter) ([]*entity.FinancialSummary, error) {
	var out []*entity.FinancialSummary
	err := r.v.do(func(s *state) error {
		for _, sum := range s.summaries {
			if !filter.From.IsZero() && sum.Period.Before(filter.From) {
				continue
			}
			if !filter.To.IsZero() && sum.Period.After(filter.To) {
				continue
			}
			if filter.PeriodType != "" && sum.PeriodType != filter.PeriodType {
				continue
			}
			out = append(out, cloneSummary(sum))
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Period.Equal(out[j].Period) {
			return out[i].Period.Before(out[j].Period)
		}
		return out[i].PeriodType < out[j].PeriodType
	})
	return out, err
}

func (r *SummaryRepo) UpdateOverhead(id string, overhead, netResult decimal.Decimal) error {
	return r.v.do(func(s *state) error {
		sum, ok := s.summaries[id]
		if !ok {
			return domain.ErrNotFound
		}
		sum.Overhead = overhead
		sum.NetResult = netResult
		sum.UpdatedAt = time.Now()
		return nil
	})
}

func (r *SummaryRepo) Delete(id string) error {
	return r.v.do(func(s *state) error {
		if _, ok := s.summaries[id]; !ok {
			return domain.ErrNotFound
		}
		delete(s.summaries, id)
		return nil
	})
}

// SequenceRepo is the in-memory per-prefix counter.
type SequenceRepo struct {
	v view
}

func (r *SequenceRepo) Next(prefix string) (int64, error) {
	var n int64
	err := r.v.do(func(s *state) error {
		s.sequences[prefix]++
		n = s.sequences[prefix]
		return nil
	})
	return n, err
}
