package gncbook

import "log"

// This file is the aggregation layer: owner-level and job-level rollups
// composed from the reconciliation and price resolvers. Direct and via-job
// figures are always computed separately and never pre-summed, so callers can
// choose direct-only, job-only, or combine them.

// InvoicesFor returns the invoices of an owner GUID for the chosen read
// variant: the invoices the owner holds directly, or the union of its jobs'
// invoices. The two sets are disjoint by construction (a generic invoice has
// exactly one owner reference).
func (b *Book) InvoicesFor(ownerID string, v ReadVariant) []*GenericInvoice {
	if v == Direct {
		return b.invoicesByOwner[ownerID]
	}
	var out []*GenericInvoice
	for _, job := range b.jobsByOwner[ownerID] {
		out = append(out, b.invoicesByOwner[job.id]...)
	}
	return out
}

// UnpaidInvoicesFor returns the owner's invoices that are not fully paid,
// each independently reconciled.
func (b *Book) UnpaidInvoicesFor(ownerID string, v ReadVariant) []*GenericInvoice {
	var out []*GenericInvoice
	for _, inv := range b.InvoicesFor(ownerID, v) {
		if !b.Reconcile(inv).FullyPaid {
			out = append(out, inv)
		}
	}
	return out
}

// PaidInvoicesFor returns the owner's fully paid invoices.
func (b *Book) PaidInvoicesFor(ownerID string, v ReadVariant) []*GenericInvoice {
	var out []*GenericInvoice
	for _, inv := range b.InvoicesFor(ownerID, v) {
		if b.Reconcile(inv).FullyPaid {
			out = append(out, inv)
		}
	}
	return out
}

// OutstandingValue sums the outstanding amounts of an owner's invoices for
// one read variant, expressed in the book's default currency. Invoices in
// another currency are converted at their latest rate; an invoice with no
// usable rate is logged and skipped rather than aborting the rollup.
func (b *Book) OutstandingValue(ownerID string, v ReadVariant) Money {
	total := M(0, b.defaultCurrency)
	for _, inv := range b.InvoicesFor(ownerID, v) {
		amount, ok := b.inDefaultCurrency(b.Reconcile(inv).Outstanding)
		if !ok {
			log.Printf("invoice %s: no rate for %s, excluded from outstanding value", inv.number, inv.currency)
			continue
		}
		total = total.Add(amount)
	}
	return total
}

// IncomeExpense sums the posting-transaction values of an owner's invoices
// for one read variant: the income (customers) or expense (vendors,
// employees) the owner generated, in the book's default currency.
func (b *Book) IncomeExpense(ownerID string, v ReadVariant) Money {
	total := M(0, b.defaultCurrency)
	for _, inv := range b.InvoicesFor(ownerID, v) {
		amount, ok := b.inDefaultCurrency(inv.PostAmount())
		if !ok {
			log.Printf("invoice %s: no rate for %s, excluded from income/expense", inv.number, inv.currency)
			continue
		}
		total = total.Add(amount)
	}
	return total
}

// PostAmount is the value the invoice was posted with: the magnitude of its
// posting split. Zero for an unposted invoice.
func (inv *GenericInvoice) PostAmount() Money {
	txn := inv.PostTransaction()
	if txn == nil {
		return M(0, inv.currency)
	}
	for _, s := range txn.splits {
		if s.lotID != "" && s.lotID == inv.lotID {
			return s.value.Abs()
		}
	}
	// posting transaction exists but carries no lot split; fall back to the
	// computed invoice total
	return inv.Total().Abs()
}

// inDefaultCurrency converts an amount into the book's default currency at
// the latest rate. The factor is 1 when the amount already is in it.
func (b *Book) inDefaultCurrency(m Money) (Money, bool) {
	if m.Currency() == b.defaultCurrency || m.Currency() == "" {
		return M(m.Amount(), b.defaultCurrency), true
	}
	rate, ok := b.LatestPrice(Currency(m.Currency()))
	if !ok {
		return Money{}, false
	}
	return rate.Mul(Q(m.Amount())), true
}

// Typed owner-level conveniences. Direct and via-job lists stay separately
// typed because their entry and tax semantics differ slightly.

// Invoices returns the customer's direct invoices, in file order.
func (c *Customer) Invoices() []CustomerInvoice {
	var out []CustomerInvoice
	for _, inv := range c.book.invoicesByOwner[c.id] {
		if ci, err := inv.AsCustomerInvoice(); err == nil {
			out = append(out, ci)
		}
	}
	return out
}

// Jobs returns the customer's jobs, in file order.
func (c *Customer) Jobs() []CustomerJob {
	var out []CustomerJob
	for _, j := range c.book.jobsByOwner[c.id] {
		if cj, err := j.AsCustomerJob(); err == nil {
			out = append(out, cj)
		}
	}
	return out
}

// JobInvoices returns the invoices of all the customer's jobs.
func (c *Customer) JobInvoices() []JobInvoice {
	var out []JobInvoice
	for _, cj := range c.Jobs() {
		out = append(out, cj.Invoices()...)
	}
	return out
}

// Invoices returns the vendor's direct bills, in file order.
func (v *Vendor) Invoices() []VendorBill {
	var out []VendorBill
	for _, inv := range v.book.invoicesByOwner[v.id] {
		if vb, err := inv.AsVendorBill(); err == nil {
			out = append(out, vb)
		}
	}
	return out
}

// Jobs returns the vendor's jobs, in file order.
func (v *Vendor) Jobs() []VendorJob {
	var out []VendorJob
	for _, j := range v.book.jobsByOwner[v.id] {
		if vj, err := j.AsVendorJob(); err == nil {
			out = append(out, vj)
		}
	}
	return out
}

// JobInvoices returns the invoices of all the vendor's jobs.
func (v *Vendor) JobInvoices() []JobInvoice {
	var out []JobInvoice
	for _, vj := range v.Jobs() {
		out = append(out, vj.Invoices()...)
	}
	return out
}

// Invoices returns the employee's expense vouchers, in file order. Employees
// have no jobs, so there is no via-job variant.
func (e *Employee) Invoices() []EmployeeVoucher {
	var out []EmployeeVoucher
	for _, inv := range e.book.invoicesByOwner[e.id] {
		if ev, err := inv.AsEmployeeVoucher(); err == nil {
			out = append(out, ev)
		}
	}
	return out
}
