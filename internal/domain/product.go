package domain

import (
	"fmt"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"time"
)

// ExpiryPolicy is either "never expires" (zero value) or "expires on a calendar day".
type ExpiryPolicy struct {
	expires bool
	date    time.Time
}

func NeverExpires() ExpiryPolicy {
	return ExpiryPolicy{}
}

func ExpiresOn(date time.Time) ExpiryPolicy {
	return ExpiryPolicy{expires: true, date: truncateDay(date)}
}

// ExpiryDate reports the expiry day and whether the policy has one.
func (e ExpiryPolicy) ExpiryDate() (time.Time, bool) {
	return e.date, e.expires
}

// IsExpired is true from the expiry day onwards, comparing UTC calendar days.
func (e ExpiryPolicy) IsExpired(today time.Time) bool {
	if !e.expires {
		return false
	}
	return !truncateDay(today).Before(e.date)
}

// Shipping marks a product as physically shippable.
type Shipping struct {
	WeightKg decimal.Decimal
}

// Shippable is the logistics view of a product: one handle per shipped unit.
type Shippable interface {
	Name() string
	Weight() decimal.Decimal
}

type Product struct {
	ID       uuid.UUID
	name     string
	Price    Money
	quantity int
	Expiry   ExpiryPolicy
	Shipping *Shipping
}

func NewProduct(name string, price Money, quantity int, expiry ExpiryPolicy, shipping *Shipping) (*Product, error) {
	if name == "" {
		return nil, fmt.Errorf("name is empty")
	}
	if price.Amount.IsNegative() {
		return nil, fmt.Errorf("price[%s] is negative", price.Amount)
	}
	if quantity < 0 {
		return nil, fmt.Errorf("quantity[%d] is negative", quantity)
	}
	if shipping != nil && !shipping.WeightKg.IsPositive() {
		return nil, fmt.Errorf("weight[%s] must be positive", shipping.WeightKg)
	}

	return &Product{
		ID:       uuid.New(),
		name:     name,
		Price:    price,
		quantity: quantity,
		Expiry:   expiry,
		Shipping: shipping,
	}, nil
}

func (p *Product) Name() string {
	return p.name
}

// Quantity is the stock on hand; only ReduceQuantity changes it.
func (p *Product) Quantity() int {
	return p.quantity
}

// Weight is zero for products without the shipping capability.
func (p *Product) Weight() decimal.Decimal {
	if p.Shipping == nil {
		return decimal.Zero
	}
	return p.Shipping.WeightKg
}

func (p *Product) IsShippable() bool {
	return p.Shipping != nil
}

func (p *Product) IsExpired(today time.Time) bool {
	return p.Expiry.IsExpired(today)
}

func (p *Product) IsAvailable(qty int, today time.Time) bool {
	return qty <= p.quantity && !p.IsExpired(today)
}

// ReduceQuantity trusts the caller to have checked IsAvailable first.
func (p *Product) ReduceQuantity(qty int) {
	p.quantity -= qty
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
