package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"time"
)

// ManifestEntry counts shipped units of one product.
type ManifestEntry struct {
	Name  string
	Count int
}

// Manifest lists shipped products in first-seen order.
type Manifest struct {
	Entries     []ManifestEntry
	TotalWeight decimal.Decimal
}

type ReceiptLine struct {
	Quantity int
	Name     string
	Total    Money
}

type Receipt struct {
	ID               uuid.UUID
	OwnerID          string
	CheckedOutAt     time.Time
	Lines            []ReceiptLine
	Manifest         *Manifest // nil when nothing ships
	Subtotal         Money
	Shipping         Money
	Total            Money
	RemainingBalance Money
}
