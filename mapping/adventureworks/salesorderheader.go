package adventureworks

import "time"

// SalesOrderHeader is the element type every benchmark strategy fetches.
// Pointer fields correspond to nullable columns; computed columns are left to
// the database and not part of the fetch column list.
type SalesOrderHeader struct {
	SalesOrderID        int
	RevisionNumber      uint8
	OrderDate           time.Time
	DueDate             time.Time
	ShipDate            *time.Time
	Status              uint8
	OnlineOrderFlag     bool
	PurchaseOrderNumber *string
	AccountNumber       *string
	CustomerID          int
	SalesPersonID       *int
	TerritoryID         *int
	SubTotal            float64
	TaxAmt              float64
	Freight             float64
	Comment             *string
	ModifiedDate        time.Time
}

// OrderKey extracts the verification key of a fetched order.
func OrderKey(h *SalesOrderHeader) int {
	return h.SalesOrderID
}
