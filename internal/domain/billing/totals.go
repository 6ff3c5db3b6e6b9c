// Package billing holds the pure derived-total arithmetic shared by the
// estimate, invoice and payment flows. Everything here is side-effect free
// and operates on exact decimal values.
package billing

import (
	"github.com/shopspring/decimal"

	"arborgold/internal/domain/entities"
)

// LineItemTotal returns the explicit item total when one was supplied,
// otherwise qty * unit_price.
func LineItemTotal(item entities.EstimateLineItem, explicit *decimal.Decimal) decimal.Decimal {
	if explicit != nil {
		return *explicit
	}
	return item.Qty.Mul(item.UnitPrice)
}

// EstimateTotals sums line-item totals into (subtotal, total) where
// total = max(subtotal + tax - discount, 0). Callers only invoke this when
// line items are being set or replaced; an estimate without line items keeps
// its caller-supplied total.
func EstimateTotals(items []entities.EstimateLineItem, tax, discount decimal.Decimal) (subtotal, total decimal.Decimal) {
	subtotal = decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Total)
	}
	total = subtotal.Add(tax).Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}
	return subtotal, total
}

// InvoiceTotal returns max(subtotal + tax, 0).
func InvoiceTotal(subtotal, tax decimal.Decimal) decimal.Decimal {
	total := subtotal.Add(tax)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// PaymentStatus derives the invoice status from the cumulative payment sum.
// The comparison is clamped: overshooting the total still yields paid. A sum
// of zero leaves the current status untouched, so an administratively set
// status never regresses through this path.
func PaymentStatus(current entities.InvoiceStatus, totalPaid, invoiceTotal decimal.Decimal) entities.InvoiceStatus {
	if totalPaid.GreaterThanOrEqual(invoiceTotal) {
		return entities.InvoiceStatusPaid
	}
	if totalPaid.IsPositive() {
		return entities.InvoiceStatusPartial
	}
	return current
}
