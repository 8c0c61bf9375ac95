package entity

// DocumentKind identifies one of the three commercial document variants.
// The kind carries the ledger behaviour (movement direction, code prefix,
// counterparty role) so the reverse/validate/apply logic exists only once.
type DocumentKind string

const (
	KindPurchaseInvoice DocumentKind = "facture_achat"
	KindSalesInvoice    DocumentKind = "facture"
	KindExitNote        DocumentKind = "bon_de_sortie"
)

// Counterparty roles per kind.
const (
	CounterpartyNone     = ""
	CounterpartyClient   = "client"
	CounterpartySupplier = "fournisseur"
)

// Direction returns the sign a line quantity applies to product stock:
// +1 for purchases (stock in), -1 for sales and exit notes (stock out).
func (k DocumentKind) Direction() int64 {
	if k == KindPurchaseInvoice {
		return 1
	}
	return -1
}

// Prefix returns the sequence code prefix of the kind.
func (k DocumentKind) Prefix() string {
	switch k {
	case KindPurchaseInvoice:
		return "FA"
	case KindSalesInvoice:
		return "F"
	case KindExitNote:
		return "BS"
	}
	return ""
}

// CounterpartyRole returns which registry the document's counterparty lives in.
func (k DocumentKind) CounterpartyRole() string {
	switch k {
	case KindPurchaseInvoice:
		return CounterpartySupplier
	case KindSalesInvoice:
		return CounterpartyClient
	}
	return CounterpartyNone
}

// DocumentLine is one line of a commercial document: a product reference and
// a quantity of at least 1. The same product may appear on several lines; the
// ledger aggregates them before validating.
type DocumentLine struct {
	ProductID string
	Quantity  int64
}
