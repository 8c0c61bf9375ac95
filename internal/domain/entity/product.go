package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. StockActuel is mutated exclusively by the stock
// ledger engine; catalog updates touch every other field but never the stock.
// StockAvantMouvement/StockApresMouvement snapshot the last applied movement.
type Product struct {
	ID                 string
	Reference          string // P##### code, generated, unique
	Name               string
	Category           string
	Description        string
	PrixAchat          decimal.Decimal // cost price, > 0
	PrixUnitaireHT     decimal.Decimal // unit price excl. tax, >= PrixAchat
	Marge              decimal.Decimal
	TVARate            decimal.Decimal // applicable VAT rate (e.g. 0.19 or 19)
	StockActuel        int64           // never negative after a committed movement
	StockMinimal       int64
	SeuilReappro       int64 // reorder threshold
	StockAvantMouvement int64
	StockApresMouvement int64
	SupplierID         string // main supplier, optional
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
