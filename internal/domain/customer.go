package domain

import "github.com/google/uuid"

type Customer struct {
	ID      uuid.UUID
	Name    string
	Balance Money
}

func NewCustomer(name string, balance Money) *Customer {
	return &Customer{
		ID:      uuid.New(),
		Name:    name,
		Balance: balance,
	}
}

func (c *Customer) HasEnough(amount Money) bool {
	return c.Balance.Amount.GreaterThanOrEqual(amount.Amount)
}

// Deduct trusts the caller to have checked HasEnough first.
func (c *Customer) Deduct(amount Money) {
	c.Balance = c.Balance.Sub(amount)
}
