package domain_test

import (
	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCustomer(t *testing.T) {
	customer := domain.NewCustomer("Ahmed", money("1000"))

	assert.True(t, customer.HasEnough(money("1000")))
	assert.True(t, customer.HasEnough(money("999.99")))
	assert.False(t, customer.HasEnough(money("1000.01")))

	customer.Deduct(money("430"))
	assert.Equal(t, "570", customer.Balance.Amount.String())
	assert.False(t, customer.HasEnough(money("571")))
}
