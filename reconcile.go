package gncbook

// Reconciliation is the result of matching an invoice's lot against the
// transaction graph: how much was billed, how much has been paid, and what
// remains outstanding, all in the invoice currency.
type Reconciliation struct {
	Invoice     *GenericInvoice
	Posted      bool  // false for an invoice that never reached the ledger
	Total       Money // invoice total: Σ entries qty × price, plus tax
	Paid        Money // Σ payment-split values on the invoice's lot
	Outstanding Money // Total − Paid
	FullyPaid   bool  // Outstanding is exactly zero; no epsilon tolerance
}

// Reconcile determines the payment state of an invoice by following its lot
// through the transaction graph.
//
// The invoice's posting split and its payment splits share one lot id; the
// lot index partitions them by action tag. Payment-split values are summed by
// magnitude so the computation is the same for receivable lots (payments
// credit the lot) and payable lots (payments debit it).
//
// An unposted invoice has no lot: reconciliation is undefined and reported as
// unpaid with the full total outstanding. Reconciling the same invoice twice
// on one snapshot yields identical results.
func (b *Book) Reconcile(inv *GenericInvoice) Reconciliation {
	total := inv.Total().Abs()
	r := Reconciliation{
		Invoice:     inv,
		Total:       total,
		Paid:        M(0, inv.currency),
		Outstanding: total,
	}
	if inv.lotID == "" {
		return r
	}
	r.Posted = true
	for _, s := range b.splitsByLot[inv.lotID] {
		if s.action != ActionPayment {
			continue // the posting split, or lot noise from other actions
		}
		r.Paid = r.Paid.Add(s.value.Abs())
	}
	r.Outstanding = r.Total.Sub(r.Paid)
	r.FullyPaid = r.Outstanding.IsZero()
	return r
}

// IsFullyPaid reports whether the invoice's outstanding amount is exactly
// zero.
func (inv *GenericInvoice) IsFullyPaid() bool {
	return inv.book.Reconcile(inv).FullyPaid
}

// Outstanding returns the invoice's unpaid remainder in the invoice currency.
func (inv *GenericInvoice) Outstanding() Money {
	return inv.book.Reconcile(inv).Outstanding
}

// LotSplits returns the lot-associated splits backing the invoice's
// reconciliation, in file order. Empty for an unposted invoice.
func (inv *GenericInvoice) LotSplits() []*Split {
	if inv.lotID == "" {
		return nil
	}
	return inv.book.splitsByLot[inv.lotID]
}
