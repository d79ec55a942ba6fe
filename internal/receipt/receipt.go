package receipt

import (
	"bufio"
	"fmt"
	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/shopspring/decimal"
	"io"
)

const (
	shipmentHeader = "** Shipment notice **"
	receiptHeader  = "** Checkout receipt **"
	separator      = "----------------------"
)

// Render writes the shipment notice (when something ships) followed by the receipt.
func Render(w io.Writer, r domain.Receipt) error {
	bw := bufio.NewWriter(w)

	if r.Manifest != nil {
		fmt.Fprintln(bw, shipmentHeader)
		for _, entry := range r.Manifest.Entries {
			fmt.Fprintf(bw, "%dx %s\n", entry.Count, entry.Name)
		}
		fmt.Fprintf(bw, "Total package weight %skg\n", r.Manifest.TotalWeight.StringFixed(1))
	}

	fmt.Fprintln(bw, receiptHeader)
	for _, line := range r.Lines {
		fmt.Fprintf(bw, "%dx %s %s\n", line.Quantity, line.Name, FormatAmount(line.Total.Amount))
	}
	fmt.Fprintln(bw, separator)
	fmt.Fprintf(bw, "Subtotal %s\n", FormatAmount(r.Subtotal.Amount))
	fmt.Fprintf(bw, "Shipping %s\n", FormatAmount(r.Shipping.Amount))
	fmt.Fprintf(bw, "Amount %s\n", FormatAmount(r.Total.Amount))
	fmt.Fprintf(bw, "Remaining Balance %s\n", FormatAmount(r.RemainingBalance.Amount))

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("bw.Flush: %w", err)
	}

	return nil
}

// FormatAmount keeps at least one fractional digit: 400 -> "400.0", 12.25 -> "12.25".
func FormatAmount(d decimal.Decimal) string {
	if d.Equal(d.Truncate(1)) {
		return d.StringFixed(1)
	}
	return d.String()
}
