package gncbook

import (
	"errors"
	"testing"
)

func TestInvoiceTotals(t *testing.T) {
	b := testBook(t)
	tests := []struct {
		guid string
		want string
	}{
		{"inv-1", "200"},   // 2 hours at 100, untaxed
		{"inv-2", "50"},    // 1 hour at 50, untaxed
		{"bill-1", "35.7"}, // 3 units at 10, plus 19% VAT
		{"vouch-1", "25"},  // 1 ticket at 25, untaxed
	}
	for _, tc := range tests {
		inv := mustInvoice(t, b, tc.guid)
		if got := inv.Total(); got.Amount().String() != tc.want {
			t.Errorf("invoice %s: Total() = %s, want %s EUR", tc.guid, got.Amount(), tc.want)
		}
	}
}

func TestInvoiceEntryTax(t *testing.T) {
	b := testBook(t)

	e := mustInvoice(t, b, "bill-1").Entries()[0]
	if got := e.Subtotal(); !got.Equal(M(30, "EUR")) {
		t.Errorf("Subtotal() = %s, want 30 EUR", got)
	}
	if got := e.Tax(); got.Amount().String() != "5.7" {
		t.Errorf("Tax() = %s, want 5.7 EUR", got.Amount())
	}
	if e.TaxTable() == nil || e.TaxTable().Name() != "VAT 19%" {
		t.Errorf("TaxTable() = %v, want VAT 19%%", e.TaxTable())
	}

	// untaxed entry
	e = mustInvoice(t, b, "inv-1").Entries()[0]
	if got := e.Tax(); !got.IsZero() {
		t.Errorf("untaxed entry: Tax() = %s, want zero", got)
	}
	if e.TaxTable() != nil {
		t.Errorf("untaxed entry: TaxTable() = %v, want nil", e.TaxTable())
	}
}

func TestTaxTableTaxOn(t *testing.T) {
	b := testBook(t)

	vat := b.TaxTableByID("tt-vat19")
	if vat == nil {
		t.Fatal("tax table tt-vat19 not found")
	}
	if got := vat.TaxOn(M(100, "EUR")); !got.Equal(M(19, "EUR")) {
		t.Errorf("percent table: TaxOn(100) = %s, want 19 EUR", got)
	}

	fee := b.TaxTableByID("tt-fee")
	if fee == nil {
		t.Fatal("tax table tt-fee not found")
	}
	// a VALUE entry levies its flat amount regardless of the subtotal
	if got := fee.TaxOn(M(100, "EUR")); !got.Equal(M(5, "EUR")) {
		t.Errorf("value table: TaxOn(100) = %s, want 5 EUR", got)
	}
	if got := fee.TaxOn(M(1, "EUR")); !got.Equal(M(5, "EUR")) {
		t.Errorf("value table: TaxOn(1) = %s, want 5 EUR", got)
	}
}

// Flavor views never coerce: asking for the wrong flavor fails with a
// *WrongInvoiceTypeError carrying both type tags, and no partial view.
func TestInvoiceFlavorMismatch(t *testing.T) {
	b := testBook(t)
	bill := mustInvoice(t, b, "bill-1")

	_, err := bill.AsCustomerInvoice()
	var wrong *WrongInvoiceTypeError
	if !errors.As(err, &wrong) {
		t.Fatalf("AsCustomerInvoice on a bill: got %v, want *WrongInvoiceTypeError", err)
	}
	if wrong.Want != OwnerCustomer || wrong.Got != OwnerVendor {
		t.Errorf("error tags = want %s got %s, expected customer/vendor", wrong.Want, wrong.Got)
	}

	if _, err := mustInvoice(t, b, "inv-1").AsVendorBill(); !errors.As(err, &wrong) {
		t.Errorf("AsVendorBill on a customer invoice: got %v, want *WrongInvoiceTypeError", err)
	}
	if _, err := mustInvoice(t, b, "inv-1").AsJobInvoice(); !errors.As(err, &wrong) {
		t.Errorf("AsJobInvoice on a customer invoice: got %v, want *WrongInvoiceTypeError", err)
	}
	if _, err := bill.AsEmployeeVoucher(); !errors.As(err, &wrong) {
		t.Errorf("AsEmployeeVoucher on a bill: got %v, want *WrongInvoiceTypeError", err)
	}
}

func TestInvoiceFlavorViews(t *testing.T) {
	b := testBook(t)

	ci, err := mustInvoice(t, b, "inv-1").AsCustomerInvoice()
	if err != nil {
		t.Fatalf("AsCustomerInvoice: %v", err)
	}
	c, err := ci.Customer()
	if err != nil {
		t.Fatalf("Customer: %v", err)
	}
	if c.Name() != "Acme GmbH" {
		t.Errorf("Customer().Name() = %q, want Acme GmbH", c.Name())
	}

	vb, err := mustInvoice(t, b, "bill-1").AsVendorBill()
	if err != nil {
		t.Fatalf("AsVendorBill: %v", err)
	}
	if v, err := vb.Vendor(); err != nil || v.Name() != "Bolt Supplies" {
		t.Errorf("Vendor() = %v, %v, want Bolt Supplies", v, err)
	}

	ev, err := mustInvoice(t, b, "vouch-1").AsEmployeeVoucher()
	if err != nil {
		t.Fatalf("AsEmployeeVoucher: %v", err)
	}
	if e, err := ev.Employee(); err != nil || e.Username() != "jdoe" {
		t.Errorf("Employee() = %v, %v, want jdoe", e, err)
	}

	ji, err := mustInvoice(t, b, "inv-2").AsJobInvoice()
	if err != nil {
		t.Fatalf("AsJobInvoice: %v", err)
	}
	j, err := ji.Job()
	if err != nil {
		t.Fatalf("Job: %v", err)
	}
	if j.Name() != "Website Relaunch" {
		t.Errorf("Job().Name() = %q, want Website Relaunch", j.Name())
	}
}

func TestJobInvoiceOwnerResolution(t *testing.T) {
	b := testBook(t)
	ji, err := mustInvoice(t, b, "inv-2").AsJobInvoice()
	if err != nil {
		t.Fatalf("AsJobInvoice: %v", err)
	}

	c, err := ji.Customer()
	if err != nil {
		t.Fatalf("Customer: %v", err)
	}
	if c.Name() != "Acme GmbH" {
		t.Errorf("Customer().Name() = %q, want Acme GmbH", c.Name())
	}

	// the owning job belongs to a customer, so the vendor side must refuse
	_, err = ji.Vendor()
	var wrong *WrongOwnerTypeError
	if !errors.As(err, &wrong) {
		t.Fatalf("Vendor on a customer job invoice: got %v, want *WrongOwnerTypeError", err)
	}
	if wrong.Want != OwnerVendor || wrong.Got != OwnerCustomer {
		t.Errorf("error tags = want %s got %s, expected vendor/customer", wrong.Want, wrong.Got)
	}
}

func TestCustomerInvoiceDiscountedTotal(t *testing.T) {
	b := testBook(t)
	ci, err := mustInvoice(t, b, "inv-1").AsCustomerInvoice()
	if err != nil {
		t.Fatalf("AsCustomerInvoice: %v", err)
	}
	// Acme GmbH carries a standing 10% discount
	got, err := ci.DiscountedTotal()
	if err != nil {
		t.Fatalf("DiscountedTotal: %v", err)
	}
	if !got.Equal(M(180, "EUR")) {
		t.Errorf("DiscountedTotal() = %s, want 180 EUR", got)
	}
}

func TestInvoicePosting(t *testing.T) {
	b := testBook(t)

	inv := mustInvoice(t, b, "inv-1")
	if !inv.IsPosted() {
		t.Error("inv-1: IsPosted() = false, want true")
	}
	if txn := inv.PostTransaction(); txn == nil || txn.ID() != "txn-post1" {
		t.Errorf("PostTransaction() = %v, want txn-post1", txn)
	}
	if acc := inv.PostAccount(); acc == nil || acc.ID() != "ar" {
		t.Errorf("PostAccount() = %v, want the receivable account", acc)
	}
	paying := inv.PayingTransactions()
	if len(paying) != 1 || paying[0].ID() != "txn-pay1" {
		t.Errorf("PayingTransactions() = %v, want [txn-pay1]", paying)
	}

	vouch := mustInvoice(t, b, "vouch-1")
	if vouch.IsPosted() {
		t.Error("vouch-1: IsPosted() = true, want false")
	}
	if got := vouch.PayingTransactions(); got != nil {
		t.Errorf("unposted voucher: PayingTransactions() = %v, want nil", got)
	}
}
