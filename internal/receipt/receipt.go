// Package receipt renders a committed transaction as a fixed-layout text
// receipt. It is a read-only consumer of transaction data; nothing here
// touches the store.
package receipt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/model"
)

const (
	storeName = "Warkop Orca"
	width     = 38
)

// Line is a single priced row on a receipt.
type Line struct {
	Name         string
	Quantity     int
	PricePerUnit float64
	Subtotal     float64
}

// Receipt is a value object composed from transaction data at print time.
type Receipt struct {
	TransactionID int64
	Date          string
	Cashier       string
	PaymentMethod string
	Lines         []Line
	Total         float64
	CashReceived  float64
	Change        float64
}

// Build composes a receipt from a transaction and its line items.
func Build(trx *model.Transaction, items []model.TransactionItem, cashier string) *Receipt {
	r := &Receipt{
		TransactionID: trx.ID,
		Date:          trx.TransactionDate.Format("2006-01-02 15:04:05"),
		Cashier:       cashier,
		PaymentMethod: trx.PaymentMethod,
		Total:         trx.TotalAmount,
	}

	if trx.PaymentMethod == model.PaymentCash && trx.CashReceived > 0 {
		r.CashReceived = trx.CashReceived
		r.Change = trx.CashReceived - trx.TotalAmount
	}

	for _, item := range items {
		r.Lines = append(r.Lines, Line{
			Name:         item.ProductName,
			Quantity:     item.Quantity,
			PricePerUnit: item.PricePerUnit,
			Subtotal:     float64(item.Quantity) * item.PricePerUnit,
		})
	}

	return r
}

// Render produces the printable receipt text.
func (r *Receipt) Render() string {
	var b strings.Builder
	divider := strings.Repeat("=", width) + "\n"

	b.WriteString(divider)
	b.WriteString(center(storeName) + "\n")
	b.WriteString(divider)
	fmt.Fprintf(&b, "No      : #%d\n", r.TransactionID)
	fmt.Fprintf(&b, "Date    : %s\n", r.Date)
	if r.Cashier != "" {
		fmt.Fprintf(&b, "Cashier : %s\n", r.Cashier)
	}
	b.WriteString(strings.Repeat("-", width) + "\n")

	for _, line := range r.Lines {
		b.WriteString(line.Name + "\n")
		left := fmt.Sprintf("  %d x %s", line.Quantity, FormatRupiah(line.PricePerUnit))
		right := FormatRupiah(line.Subtotal)
		b.WriteString(padBetween(left, right) + "\n")
	}

	b.WriteString(strings.Repeat("-", width) + "\n")
	b.WriteString(padBetween("TOTAL", FormatRupiah(r.Total)) + "\n")
	b.WriteString(padBetween("Payment", r.PaymentMethod) + "\n")
	if r.PaymentMethod == model.PaymentCash && r.CashReceived > 0 {
		b.WriteString(padBetween("Cash", FormatRupiah(r.CashReceived)) + "\n")
		b.WriteString(padBetween("Change", FormatRupiah(r.Change)) + "\n")
	}
	b.WriteString(divider)
	b.WriteString(center("Thank you!") + "\n")

	return b.String()
}

// FormatRupiah formats an amount as "Rp 48,000": thousands separated, no
// decimals. Fractions are rounded to the nearest rupiah.
func FormatRupiah(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(int64(amount+0.5), 10)

	var grouped strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(d)
	}

	if negative {
		return "-Rp " + grouped.String()
	}
	return "Rp " + grouped.String()
}

func center(s string) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

func padBetween(left, right string) string {
	gap := width - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
