package domain

import (
	"fmt"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"time"
)

type Cart struct {
	OwnerID  string
	Currency currency.Unit
	Items    []CartItem
}

// CartItem references the catalog product; stock is not held until checkout commits.
type CartItem struct {
	Product  *Product
	Quantity int
}

func NewCart(ownerID string, cur currency.Unit) *Cart {
	return &Cart{
		OwnerID:  ownerID,
		Currency: cur,
	}
}

func (i CartItem) Total() Money {
	return i.Product.Price.Times(i.Quantity)
}

// Add appends a line after a point-in-time availability check. The cart is unchanged on error.
func (c *Cart) Add(p *Product, qty int, today time.Time) error {
	if p == nil {
		return fmt.Errorf("product is nil")
	}
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if p.Price.Currency.String() != c.Currency.String() {
		return fmt.Errorf("%w: %s priced in %s, cart in %s", ErrCurrencyMismatch, p.Name(), p.Price.Currency, c.Currency)
	}
	if !p.IsAvailable(qty, today) {
		return fmt.Errorf("%w: %s", ErrItemUnavailable, p.Name())
	}

	c.Items = append(c.Items, CartItem{Product: p, Quantity: qty})
	return nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c *Cart) Subtotal() Money {
	total := Zero(c.Currency)
	for _, item := range c.Items {
		total = total.Add(item.Total())
	}
	return total
}

// ShippingFee is flat: one shippable line or many cost the same.
func (c *Cart) ShippingFee() Money {
	for _, item := range c.Items {
		if item.Product.IsShippable() {
			return NewMoney(decimal.NewFromInt(flatShippingFee), c.Currency)
		}
	}
	return Zero(c.Currency)
}

// ShippableUnits expands every shippable line into one handle per unit.
func (c *Cart) ShippableUnits() []Shippable {
	var units []Shippable
	for _, item := range c.Items {
		if !item.Product.IsShippable() {
			continue
		}
		for range item.Quantity {
			units = append(units, item.Product)
		}
	}
	return units
}
