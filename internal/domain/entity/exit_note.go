package entity

import "time"

// Exit reasons (motifSortie).
const (
	ExitReasonVente     = "Vente"
	ExitReasonDon       = "Don"
	ExitReasonTransfert = "Transfert"
	ExitReasonInterne   = "Usage interne"
)

// ExitNote decreases product stock without a counterparty; it carries
// destination and transport metadata instead.
// StockBefore holds the summed requested quantity and StockAfter zero,
// mirroring what the paper form records.
type ExitNote struct {
	ID          string
	Numero      string // BS##### code, generated, unique
	Date        time.Time
	Lines       []DocumentLine
	Reason      string // Vente, Don, Transfert, Usage interne
	Destination string
	VehicleReg  string // matriculeVehicule
	DriverName  string
	IssuedBy    string // responsableSortie
	StockBefore int64
	StockAfter  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
