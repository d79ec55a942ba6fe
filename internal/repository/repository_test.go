package repository_test

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

func randomProduct() *domain.Product {
	var shipping *domain.Shipping
	if gofakeit.Bool() {
		shipping = &domain.Shipping{WeightKg: decimal.NewFromFloat(gofakeit.Float64Range(0.1, 10)).Round(1)}
	}

	expiry := domain.NeverExpires()
	if gofakeit.Bool() {
		expiry = domain.ExpiresOn(gofakeit.FutureDate())
	}

	product, err := domain.NewProduct(
		gofakeit.ProductName()+" "+gofakeit.UUID(),
		randomMoney(),
		gofakeit.IntRange(0, 100),
		expiry,
		shipping,
	)
	if err != nil {
		panic(err)
	}

	return product
}

func randomMoney() domain.Money {
	return domain.Money{
		Amount:   decimal.NewFromFloat(gofakeit.Price(1, 100)),
		Currency: currency.USD,
	}
}
