package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// flatShippingFee is charged once per cart that has at least one shippable line.
const flatShippingFee = 30

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal, cur currency.Unit) Money {
	return Money{Amount: amount, Currency: cur}
}

func Zero(cur currency.Unit) Money {
	return Money{Amount: decimal.Zero, Currency: cur}
}

// Add assumes both values share a currency; carts and accounts enforce that on entry.
func (m Money) Add(o Money) Money {
	return Money{Amount: m.Amount.Add(o.Amount), Currency: m.Currency}
}

func (m Money) Sub(o Money) Money {
	return Money{Amount: m.Amount.Sub(o.Amount), Currency: m.Currency}
}

func (m Money) Times(n int) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(int64(n))), Currency: m.Currency}
}

func (m Money) SameCurrency(o Money) bool {
	return m.Currency.String() == o.Currency.String()
}
