package gncbook

import "testing"

func TestReconcileFullyPaid(t *testing.T) {
	b := testBook(t)
	r := b.Reconcile(mustInvoice(t, b, "inv-1"))

	if !r.Posted {
		t.Error("Posted = false, want true")
	}
	if !r.Total.Equal(M(200, "EUR")) {
		t.Errorf("Total = %s, want 200 EUR", r.Total)
	}
	if !r.Paid.Equal(M(200, "EUR")) {
		t.Errorf("Paid = %s, want 200 EUR", r.Paid)
	}
	if !r.Outstanding.IsZero() {
		t.Errorf("Outstanding = %s, want zero", r.Outstanding)
	}
	if !r.FullyPaid {
		t.Error("FullyPaid = false, want true")
	}
}

func TestReconcilePartiallyPaid(t *testing.T) {
	b := testBook(t)
	r := b.Reconcile(mustInvoice(t, b, "inv-2"))

	if !r.Paid.Equal(M(20, "EUR")) {
		t.Errorf("Paid = %s, want 20 EUR", r.Paid)
	}
	if !r.Outstanding.Equal(M(30, "EUR")) {
		t.Errorf("Outstanding = %s, want 30 EUR", r.Outstanding)
	}
	if r.FullyPaid {
		t.Error("FullyPaid = true for a partially paid invoice")
	}
}

// Payable lots reconcile the same way as receivable ones: payment values are
// summed by magnitude, so the sign convention of the lot does not matter.
func TestReconcileUnpaidBill(t *testing.T) {
	b := testBook(t)
	r := b.Reconcile(mustInvoice(t, b, "bill-1"))

	if !r.Posted {
		t.Error("Posted = false, want true")
	}
	if !r.Paid.IsZero() {
		t.Errorf("Paid = %s, want zero", r.Paid)
	}
	if got := r.Outstanding.Amount().String(); got != "35.7" {
		t.Errorf("Outstanding = %s, want 35.7", got)
	}
	if r.FullyPaid {
		t.Error("FullyPaid = true for an unpaid bill")
	}
}

// An unposted invoice has no lot: it reconciles as unpaid with the full
// computed total outstanding.
func TestReconcileUnposted(t *testing.T) {
	b := testBook(t)
	r := b.Reconcile(mustInvoice(t, b, "vouch-1"))

	if r.Posted {
		t.Error("Posted = true for an unposted voucher")
	}
	if !r.Paid.IsZero() {
		t.Errorf("Paid = %s, want zero", r.Paid)
	}
	if !r.Outstanding.Equal(M(25, "EUR")) {
		t.Errorf("Outstanding = %s, want 25 EUR", r.Outstanding)
	}
	if r.FullyPaid {
		t.Error("FullyPaid = true for an unposted voucher")
	}
}

func TestReconcileIdempotent(t *testing.T) {
	b := testBook(t)
	inv := mustInvoice(t, b, "inv-2")

	first := b.Reconcile(inv)
	second := b.Reconcile(inv)
	if !first.Paid.Equal(second.Paid) || !first.Outstanding.Equal(second.Outstanding) ||
		first.FullyPaid != second.FullyPaid || first.Posted != second.Posted {
		t.Errorf("Reconcile not idempotent: first %+v, second %+v", first, second)
	}
}

func TestInvoiceReconcileHelpers(t *testing.T) {
	b := testBook(t)

	if !mustInvoice(t, b, "inv-1").IsFullyPaid() {
		t.Error("inv-1: IsFullyPaid() = false, want true")
	}
	if mustInvoice(t, b, "inv-2").IsFullyPaid() {
		t.Error("inv-2: IsFullyPaid() = true, want false")
	}
	if got := mustInvoice(t, b, "inv-2").Outstanding(); !got.Equal(M(30, "EUR")) {
		t.Errorf("inv-2: Outstanding() = %s, want 30 EUR", got)
	}
	if got := len(mustInvoice(t, b, "inv-1").LotSplits()); got != 2 {
		t.Errorf("inv-1: len(LotSplits()) = %d, want 2", got)
	}
	if got := mustInvoice(t, b, "vouch-1").LotSplits(); got != nil {
		t.Errorf("vouch-1: LotSplits() = %v, want nil", got)
	}
}
