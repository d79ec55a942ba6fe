package receipt_test

import (
	"bytes"
	"errors"
	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/receipt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		receipt domain.Receipt
		want    string
	}{
		{
			name: "with shipment: ok",
			receipt: domain.Receipt{
				Lines: []domain.ReceiptLine{
					{Quantity: 2, Name: "Cheese 200g", Total: money("200")},
					{Quantity: 1, Name: "Biscuits 700g", Total: money("150")},
					{Quantity: 1, Name: "Mobile scratch card", Total: money("50")},
				},
				Manifest: &domain.Manifest{
					Entries: []domain.ManifestEntry{
						{Name: "Cheese 200g", Count: 2},
						{Name: "Biscuits 700g", Count: 1},
					},
					TotalWeight: decimal.RequireFromString("1.1"),
				},
				Subtotal:         money("400"),
				Shipping:         money("30"),
				Total:            money("430"),
				RemainingBalance: money("570"),
			},
			want: `** Shipment notice **
2x Cheese 200g
1x Biscuits 700g
Total package weight 1.1kg
** Checkout receipt **
2x Cheese 200g 200.0
1x Biscuits 700g 150.0
1x Mobile scratch card 50.0
----------------------
Subtotal 400.0
Shipping 30.0
Amount 430.0
Remaining Balance 570.0
`,
		},
		{
			name: "nothing ships: ok",
			receipt: domain.Receipt{
				Lines: []domain.ReceiptLine{
					{Quantity: 3, Name: "Mobile scratch card", Total: money("37.5")},
				},
				Subtotal:         money("37.5"),
				Shipping:         money("0"),
				Total:            money("37.5"),
				RemainingBalance: money("62.25"),
			},
			want: `** Checkout receipt **
3x Mobile scratch card 37.5
----------------------
Subtotal 37.5
Shipping 0.0
Amount 37.5
Remaining Balance 62.25
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			err := receipt.Render(&buf, tt.receipt)
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRenderWriteError(t *testing.T) {
	err := receipt.Render(failingWriter{}, domain.Receipt{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errWrite)
}

func TestFormatAmount(t *testing.T) {
	tests := map[string]string{
		"0":      "0.0",
		"400":    "400.0",
		"5.5":    "5.5",
		"12.25":  "12.25",
		"1.1000": "1.1",
	}

	for in, want := range tests {
		assert.Equal(t, want, receipt.FormatAmount(decimal.RequireFromString(in)), in)
	}
}

var errWrite = errors.New("write failed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func money(amount string) domain.Money {
	return domain.NewMoney(decimal.RequireFromString(amount), currency.MustParseISO("EGP"))
}
