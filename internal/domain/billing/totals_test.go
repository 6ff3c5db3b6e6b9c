package billing

import (
	"testing"

	"github.com/shopspring/decimal"

	"arborgold/internal/domain/entities"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestLineItemTotal(t *testing.T) {
	item := entities.EstimateLineItem{Qty: dec("2"), UnitPrice: dec("50")}

	if got := LineItemTotal(item, nil); !got.Equal(dec("100")) {
		t.Fatalf("expected 100, got %s", got)
	}

	explicit := dec("75")
	if got := LineItemTotal(item, &explicit); !got.Equal(dec("75")) {
		t.Fatalf("expected explicit 75, got %s", got)
	}
}

func TestEstimateTotals(t *testing.T) {
	items := []entities.EstimateLineItem{
		{Total: dec("100")},
		{Total: dec("100")},
	}

	subtotal, total := EstimateTotals(items, dec("10"), dec("5"))
	if !subtotal.Equal(dec("200")) {
		t.Fatalf("expected subtotal 200, got %s", subtotal)
	}
	if !total.Equal(dec("205")) {
		t.Fatalf("expected total 205, got %s", total)
	}
}

func TestEstimateTotalsNeverNegative(t *testing.T) {
	items := []entities.EstimateLineItem{{Total: dec("10")}}

	_, total := EstimateTotals(items, dec("0"), dec("50"))
	if !total.Equal(decimal.Zero) {
		t.Fatalf("expected clamped total 0, got %s", total)
	}
}

func TestEstimateTotalsEmpty(t *testing.T) {
	subtotal, total := EstimateTotals(nil, dec("10"), dec("0"))
	if !subtotal.Equal(decimal.Zero) {
		t.Fatalf("expected subtotal 0, got %s", subtotal)
	}
	if !total.Equal(dec("10")) {
		t.Fatalf("expected total 10, got %s", total)
	}
}

func TestInvoiceTotal(t *testing.T) {
	if got := InvoiceTotal(dec("205"), dec("20")); !got.Equal(dec("225")) {
		t.Fatalf("expected 225, got %s", got)
	}
	if got := InvoiceTotal(dec("10"), dec("-50")); !got.Equal(decimal.Zero) {
		t.Fatalf("expected clamped 0, got %s", got)
	}
}

func TestPaymentStatus(t *testing.T) {
	cases := []struct {
		name    string
		current entities.InvoiceStatus
		paid    string
		total   string
		want    entities.InvoiceStatus
	}{
		{"fully covered", entities.InvoiceStatusUnpaid, "225", "225", entities.InvoiceStatusPaid},
		{"overshoot still paid", entities.InvoiceStatusUnpaid, "300", "225", entities.InvoiceStatusPaid},
		{"partial", entities.InvoiceStatusUnpaid, "100", "225", entities.InvoiceStatusPartial},
		{"zero leaves status", entities.InvoiceStatusUnpaid, "0", "225", entities.InvoiceStatusUnpaid},
		{"zero keeps manual paid", entities.InvoiceStatusPaid, "0", "225", entities.InvoiceStatusPaid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PaymentStatus(tc.current, dec(tc.paid), dec(tc.total))
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
