package main

import (
	"github.com/nikolayk812/checkout-demo/internal/config"
	"github.com/nikolayk812/checkout-demo/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
	"testing"
	"time"
)

func TestSeedCatalog(t *testing.T) {
	ctx := t.Context()
	catalog := repository.NewCatalog()

	err := seedCatalog(ctx, catalog, currency.MustParseISO("EGP"), time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	products, err := catalog.ListProducts(ctx)
	require.NoError(t, err)

	var names []string
	for _, p := range products {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{"Cheese 200g", "Biscuits 700g", "TV", "Mobile scratch card"}, names)

	scratchCard, err := catalog.GetProduct(ctx, "Mobile scratch card")
	require.NoError(t, err)
	assert.False(t, scratchCard.IsShippable())

	err = seedCatalog(ctx, catalog, currency.MustParseISO("EGP"), time.Now())
	require.Error(t, err, "seeding twice must hit duplicate names")
}

func TestNewTracerProvider(t *testing.T) {
	for _, enabled := range []bool{false, true} {
		tp, err := newTracerProvider(config.Config{Trace: enabled})
		require.NoError(t, err)

		_, span := tp.Tracer("test").Start(t.Context(), "span")
		assert.True(t, span.SpanContext().IsValid(), "sdk provider issues real span contexts")
		span.End()

		require.NoError(t, tp.Shutdown(t.Context()))
	}
}
