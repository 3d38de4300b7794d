package gncbook

import (
	"fmt"
	"strings"

	"github.com/gncbook/gncbook/date"
)

// EntryAction tags what an invoice entry charges for.
type EntryAction int

const (
	EntryActionNone EntryAction = iota
	EntryActionJob
	EntryActionMaterial
	EntryActionHours
	EntryActionOther
)

func (a EntryAction) String() string {
	switch a {
	case EntryActionJob:
		return "Job"
	case EntryActionMaterial:
		return "Material"
	case EntryActionHours:
		return "Hours"
	case EntryActionNone:
		return ""
	default:
		return "Other"
	}
}

// ParseEntryAction maps the on-file, locale-dependent entry action string.
func ParseEntryAction(tag string) EntryAction {
	switch strings.ToLower(tag) {
	case "":
		return EntryActionNone
	case "job", "auftrag":
		return EntryActionJob
	case "material":
		return EntryActionMaterial
	case "hours", "stunden":
		return EntryActionHours
	default:
		return EntryActionOther
	}
}

// InvoiceEntry is one line of an invoice: a quantity at a unit price, plus an
// optional tax table. The price and tax side (customer i-* vs vendor b-*
// fields on file) is resolved once at index build time from the invoice's
// owner flavor.
type InvoiceEntry struct {
	book        *Book
	id          string
	invoiceID   string
	date        date.Date
	description string
	action      EntryAction
	qty         Quantity
	price       Money
	taxTableID  string
	taxIncluded bool
	taxable     bool
}

func (e *InvoiceEntry) ID() string          { return e.id }
func (e *InvoiceEntry) Date() date.Date     { return e.date }
func (e *InvoiceEntry) Description() string { return e.description }
func (e *InvoiceEntry) Action() EntryAction { return e.action }
func (e *InvoiceEntry) Quantity() Quantity  { return e.qty }
func (e *InvoiceEntry) UnitPrice() Money    { return e.price }
func (e *InvoiceEntry) TaxIncluded() bool   { return e.taxIncluded }

// Invoice returns the invoice this entry belongs to.
func (e *InvoiceEntry) Invoice() *GenericInvoice { return e.book.invoices[e.invoiceID] }

// TaxTable returns the entry's tax table, or nil if the entry is untaxed.
func (e *InvoiceEntry) TaxTable() *TaxTable {
	if !e.taxable || e.taxTableID == "" {
		return nil
	}
	return e.book.taxTables[e.taxTableID]
}

// Subtotal is quantity times unit price, before tax.
func (e *InvoiceEntry) Subtotal() Money { return e.price.Mul(e.qty) }

// Tax is the tax levied on this entry, zero when untaxed or when the unit
// price already includes it.
func (e *InvoiceEntry) Tax() Money {
	t := e.TaxTable()
	if t == nil || e.taxIncluded {
		return M(0, e.price.Currency())
	}
	return t.TaxOn(e.Subtotal())
}

// Total is the entry's contribution to the invoice total.
func (e *InvoiceEntry) Total() Money { return e.Subtotal().Add(e.Tax()) }

// GenericInvoice is the owner-type-agnostic record behind customer invoices,
// vendor bills, employee vouchers and job invoices. The owner type tag is
// immutable; flavor-specific operations live on the typed views returned by
// AsCustomerInvoice and friends, which fail fast on a tag mismatch.
type GenericInvoice struct {
	book      *Book
	id        string // GUID
	number    string // human-readable document number
	ownerType OwnerType
	ownerID   string
	currency  string
	opened    date.Date
	posted    date.Date
	billingID string
	notes     string
	active    bool
	termsID   string
	postTxnID string
	postAccID string
	lotID     string
	entries   []*InvoiceEntry
}

func (inv *GenericInvoice) ID() string            { return inv.id }
func (inv *GenericInvoice) Number() string        { return inv.number }
func (inv *GenericInvoice) OwnerType() OwnerType  { return inv.ownerType }
func (inv *GenericInvoice) OwnerID() string       { return inv.ownerID }
func (inv *GenericInvoice) Currency() string      { return inv.currency }
func (inv *GenericInvoice) DateOpened() date.Date { return inv.opened }
func (inv *GenericInvoice) DatePosted() date.Date { return inv.posted }
func (inv *GenericInvoice) BillingID() string     { return inv.billingID }
func (inv *GenericInvoice) Notes() string         { return inv.notes }
func (inv *GenericInvoice) Active() bool          { return inv.active }

// LotID returns the lot linking this invoice's posting transaction to its
// payments, or "" for an unposted invoice.
func (inv *GenericInvoice) LotID() string { return inv.lotID }

// IsPosted reports whether the invoice has been posted to the ledger.
func (inv *GenericInvoice) IsPosted() bool { return inv.postTxnID != "" }

// Entries returns the invoice lines in file order.
func (inv *GenericInvoice) Entries() []*InvoiceEntry { return inv.entries }

// Terms returns the invoice's bill terms, or nil if none are set.
func (inv *GenericInvoice) Terms() *BillTerms { return inv.book.billTerms[inv.termsID] }

// PostTransaction returns the transaction the invoice was posted with, or nil
// for an unposted invoice.
func (inv *GenericInvoice) PostTransaction() *Transaction {
	return inv.book.transactions[inv.postTxnID]
}

// PostAccount returns the receivable/payable account the invoice was posted
// to, or nil for an unposted invoice.
func (inv *GenericInvoice) PostAccount() *Account { return inv.book.accounts[inv.postAccID] }

// Total sums entry totals (quantity × unit price, plus tax) in the invoice
// currency.
func (inv *GenericInvoice) Total() Money {
	total := M(0, inv.currency)
	for _, e := range inv.entries {
		total = total.Add(e.Total())
	}
	return total
}

// PayingTransactions returns the transactions that paid against this
// invoice's lot, in file order. Empty for an unposted invoice.
func (inv *GenericInvoice) PayingTransactions() []*Transaction {
	if inv.lotID == "" {
		return nil
	}
	var txns []*Transaction
	seen := make(map[string]bool)
	for _, s := range inv.book.splitsByLot[inv.lotID] {
		if s.action != ActionPayment || seen[s.txn.id] {
			continue
		}
		seen[s.txn.id] = true
		txns = append(txns, s.txn)
	}
	return txns
}

// resolveOwner follows the owner reference to its ultimate customer, vendor
// or employee, hopping through the owning job for job invoices.
func (inv *GenericInvoice) resolveOwner() (OwnerType, string, error) {
	if inv.ownerType != OwnerJob {
		return inv.ownerType, inv.ownerID, nil
	}
	job, ok := inv.book.jobs[inv.ownerID]
	if !ok {
		return OwnerNone, "", fmt.Errorf("invoice %s: owning job %s: %w", inv.number, inv.ownerID, ErrNoEntryFound)
	}
	return job.ownerType, job.ownerID, nil
}

// CustomerInvoice is the customer-flavored view of a generic invoice.
type CustomerInvoice struct {
	*GenericInvoice
}

// AsCustomerInvoice wraps the invoice as a customer invoice. It fails with
// *WrongInvoiceTypeError when the invoice is tagged with another owner type;
// no partial view is ever returned.
func (inv *GenericInvoice) AsCustomerInvoice() (CustomerInvoice, error) {
	if inv.ownerType != OwnerCustomer {
		return CustomerInvoice{}, &WrongInvoiceTypeError{Want: OwnerCustomer, Got: inv.ownerType}
	}
	return CustomerInvoice{inv}, nil
}

// Customer resolves the invoice's owner against the book.
func (ci CustomerInvoice) Customer() (*Customer, error) {
	c, ok := ci.book.customers[ci.ownerID]
	if !ok {
		return nil, fmt.Errorf("invoice %s: customer %s: %w", ci.number, ci.ownerID, ErrNoEntryFound)
	}
	return c, nil
}

// DiscountedTotal applies the customer's standing discount to the invoice
// total.
func (ci CustomerInvoice) DiscountedTotal() (Money, error) {
	c, err := ci.Customer()
	if err != nil {
		return Money{}, err
	}
	total := ci.Total()
	discount := total.Mul(c.discount).Div(Q(100))
	return total.Sub(discount), nil
}

// VendorBill is the vendor-flavored view of a generic invoice.
type VendorBill struct {
	*GenericInvoice
}

// AsVendorBill wraps the invoice as a vendor bill, failing fast on a flavor
// mismatch.
func (inv *GenericInvoice) AsVendorBill() (VendorBill, error) {
	if inv.ownerType != OwnerVendor {
		return VendorBill{}, &WrongInvoiceTypeError{Want: OwnerVendor, Got: inv.ownerType}
	}
	return VendorBill{inv}, nil
}

// Vendor resolves the bill's owner against the book.
func (vb VendorBill) Vendor() (*Vendor, error) {
	v, ok := vb.book.vendors[vb.ownerID]
	if !ok {
		return nil, fmt.Errorf("bill %s: vendor %s: %w", vb.number, vb.ownerID, ErrNoEntryFound)
	}
	return v, nil
}

// EmployeeVoucher is the employee-flavored view of a generic invoice.
type EmployeeVoucher struct {
	*GenericInvoice
}

// AsEmployeeVoucher wraps the invoice as an employee expense voucher, failing
// fast on a flavor mismatch.
func (inv *GenericInvoice) AsEmployeeVoucher() (EmployeeVoucher, error) {
	if inv.ownerType != OwnerEmployee {
		return EmployeeVoucher{}, &WrongInvoiceTypeError{Want: OwnerEmployee, Got: inv.ownerType}
	}
	return EmployeeVoucher{inv}, nil
}

// Employee resolves the voucher's owner against the book.
func (ev EmployeeVoucher) Employee() (*Employee, error) {
	e, ok := ev.book.employees[ev.ownerID]
	if !ok {
		return nil, fmt.Errorf("voucher %s: employee %s: %w", ev.number, ev.ownerID, ErrNoEntryFound)
	}
	return e, nil
}

// JobInvoice is the job-flavored view of a generic invoice. Its owner
// resolution takes one extra hop: invoice → job → the job's customer or
// vendor.
type JobInvoice struct {
	*GenericInvoice
}

// AsJobInvoice wraps the invoice as a job invoice, failing fast on a flavor
// mismatch.
func (inv *GenericInvoice) AsJobInvoice() (JobInvoice, error) {
	if inv.ownerType != OwnerJob {
		return JobInvoice{}, &WrongInvoiceTypeError{Want: OwnerJob, Got: inv.ownerType}
	}
	return JobInvoice{inv}, nil
}

// Job resolves the invoice's owning job.
func (ji JobInvoice) Job() (*GenericJob, error) {
	j, ok := ji.book.jobs[ji.ownerID]
	if !ok {
		return nil, fmt.Errorf("invoice %s: job %s: %w", ji.number, ji.ownerID, ErrNoEntryFound)
	}
	return j, nil
}

// Customer resolves the invoice's ultimate owner through its job, failing
// with a WrongOwnerTypeError when the job belongs to a vendor.
func (ji JobInvoice) Customer() (*Customer, error) {
	j, err := ji.Job()
	if err != nil {
		return nil, err
	}
	if j.ownerType != OwnerCustomer {
		return nil, &WrongOwnerTypeError{Want: OwnerCustomer, Got: j.ownerType}
	}
	c, ok := ji.book.customers[j.ownerID]
	if !ok {
		return nil, fmt.Errorf("invoice %s: customer %s: %w", ji.number, j.ownerID, ErrNoEntryFound)
	}
	return c, nil
}

// Vendor resolves the invoice's ultimate owner through its job, failing
// with a WrongOwnerTypeError when the job belongs to a customer.
func (ji JobInvoice) Vendor() (*Vendor, error) {
	j, err := ji.Job()
	if err != nil {
		return nil, err
	}
	if j.ownerType != OwnerVendor {
		return nil, &WrongOwnerTypeError{Want: OwnerVendor, Got: j.ownerType}
	}
	v, ok := ji.book.vendors[j.ownerID]
	if !ok {
		return nil, fmt.Errorf("invoice %s: vendor %s: %w", ji.number, j.ownerID, ErrNoEntryFound)
	}
	return v, nil
}
