package gncbook

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/gncbook/gncbook/date"
	"github.com/gncbook/gncbook/gnc"
	"github.com/shopspring/decimal"
)

// Book is the entity index over one decoded file: every lookup map is built
// once, eagerly, before any query is served. After the build the book is
// read-only, so no locking is needed.
//
// Each entity kind lives in a single map keyed by GUID holding the tagged
// variant; flavor-filtered views (Customers, VendorJobs, ...) are computed
// from it, never stored, so derived indexes cannot drift out of sync with the
// primary ones.
type Book struct {
	defaultCurrency string

	root               *Account
	accounts           map[string]*Account
	accountList        []*Account
	accountsByFullName map[string]*Account

	transactions    map[string]*Transaction
	transactionList []*Transaction
	splits          map[string]*Split
	splitsByLot     map[string][]*Split

	invoices        map[string]*GenericInvoice
	invoiceList     []*GenericInvoice
	invoicesByOwner map[string][]*GenericInvoice

	jobs        map[string]*GenericJob
	jobList     []*GenericJob
	jobsByOwner map[string][]*GenericJob

	customers    map[string]*Customer
	customerList []*Customer
	vendors      map[string]*Vendor
	vendorList   []*Vendor
	employees    map[string]*Employee
	employeeList []*Employee

	commodities   map[CmdtyID]*Commodity
	commodityList []*Commodity
	prices        []*Price

	taxTables map[string]*TaxTable
	billTerms map[string]*BillTerms
}

// NewBook builds the entity index from a decoded file. The build is
// all-or-nothing: structural problems (no root account, several root
// accounts) fail it, while individually malformed records are logged and
// skipped without aborting the load.
func NewBook(f *gnc.File) (*Book, error) {
	b := &Book{
		defaultCurrency:    f.DefaultCurrency,
		accounts:           make(map[string]*Account),
		accountsByFullName: make(map[string]*Account),
		transactions:       make(map[string]*Transaction),
		splits:             make(map[string]*Split),
		splitsByLot:        make(map[string][]*Split),
		invoices:           make(map[string]*GenericInvoice),
		invoicesByOwner:    make(map[string][]*GenericInvoice),
		jobs:               make(map[string]*GenericJob),
		jobsByOwner:        make(map[string][]*GenericJob),
		customers:          make(map[string]*Customer),
		vendors:            make(map[string]*Vendor),
		employees:          make(map[string]*Employee),
		commodities:        make(map[CmdtyID]*Commodity),
		taxTables:          make(map[string]*TaxTable),
		billTerms:          make(map[string]*BillTerms),
	}

	b.indexCommodities(f)
	b.indexBillTerms(f)
	b.indexTaxTables(f)
	if err := b.indexAccounts(f); err != nil {
		return nil, err
	}
	b.indexTransactions(f)
	b.indexOwners(f)
	b.indexJobs(f)
	b.indexInvoices(f)
	b.indexPrices(f)
	return b, nil
}

// DefaultCurrency is the book's base currency code; price resolution
// ultimately converts into it.
func (b *Book) DefaultCurrency() string { return b.defaultCurrency }

// RootAccount returns the single root of the account tree.
func (b *Book) RootAccount() *Account { return b.root }

func (b *Book) indexCommodities(f *gnc.File) {
	for _, rec := range f.Commodities {
		if rec.Space == "" || rec.ID == "" {
			log.Printf("skipping commodity with empty namespace or code: %+v", rec)
			continue
		}
		if rec.Space == "template" {
			continue // scheduled-transaction scaffolding, not a real commodity
		}
		fraction := 100
		if rec.Fraction != "" {
			n, err := strconv.Atoi(rec.Fraction)
			if err != nil {
				log.Printf("commodity %s:%s: bad fraction %q, assuming 100", rec.Space, rec.ID, rec.Fraction)
			} else {
				fraction = n
			}
		}
		c := &Commodity{
			id:       CmdtyID{Space: rec.Space, Code: rec.ID},
			name:     rec.Name,
			fraction: fraction,
		}
		b.commodities[c.id] = c
		b.commodityList = append(b.commodityList, c)
	}
}

func (b *Book) indexBillTerms(f *gnc.File) {
	for _, rec := range f.BillTerms {
		if rec.GUID == "" {
			log.Printf("skipping bill terms without GUID: %q", rec.Name)
			continue
		}
		days := 0
		if rec.DueDays != "" {
			n, err := strconv.Atoi(rec.DueDays)
			if err != nil {
				log.Printf("bill terms %q: bad due-days %q", rec.Name, rec.DueDays)
			} else {
				days = n
			}
		}
		b.billTerms[rec.GUID] = &BillTerms{
			id:          rec.GUID,
			name:        rec.Name,
			description: rec.Description,
			dueDays:     days,
		}
	}
}

func (b *Book) indexTaxTables(f *gnc.File) {
	for _, rec := range f.TaxTables {
		if rec.GUID == "" {
			log.Printf("skipping tax table without GUID: %q", rec.Name)
			continue
		}
		t := &TaxTable{id: rec.GUID, name: rec.Name}
		for _, e := range rec.Entries {
			typ, err := ParseTaxType(e.Type)
			if err != nil {
				log.Printf("tax table %q: %v, entry skipped", rec.Name, err)
				continue
			}
			amount, err := parseNumeric(e.Amount)
			if err != nil {
				log.Printf("tax table %q: bad amount %q, entry skipped", rec.Name, e.Amount)
				continue
			}
			t.entries = append(t.entries, TaxTableEntry{
				accountID: e.Acct,
				typ:       typ,
				amount:    Q(amount),
			})
		}
		b.taxTables[rec.GUID] = t
	}
}

func (b *Book) indexAccounts(f *gnc.File) error {
	// first pass: create nodes
	for _, rec := range f.Accounts {
		if rec.ID == "" {
			log.Printf("skipping account without GUID: %q", rec.Name)
			continue
		}
		typ, err := ParseAccountType(rec.Type)
		if err != nil {
			log.Printf("account %q: %v, skipped", rec.Name, err)
			continue
		}
		b.accounts[rec.ID] = &Account{
			book:        b,
			id:          rec.ID,
			name:        rec.Name,
			description: rec.Description,
			typ:         typ,
			commodity:   cmdtyID(rec.Commodity),
		}
	}
	// second pass: link the tree, preserving file order
	var roots []*Account
	for _, rec := range f.Accounts {
		a, ok := b.accounts[rec.ID]
		if !ok {
			continue
		}
		if rec.Parent == "" {
			roots = append(roots, a)
			b.accountList = append(b.accountList, a)
			continue
		}
		parent, ok := b.accounts[rec.Parent]
		if !ok {
			log.Printf("account %q: parent %s not found, skipped", rec.Name, rec.Parent)
			delete(b.accounts, rec.ID)
			continue
		}
		a.parent = parent
		parent.children = append(parent.children, a)
		b.accountList = append(b.accountList, a)
	}
	switch len(roots) {
	case 0:
		return fmt.Errorf("book has no root account")
	case 1:
		b.root = roots[0]
	default:
		return fmt.Errorf("book has %d root accounts, want exactly one", len(roots))
	}
	// third pass: drop accounts that do not reach the root. This removal is
	// transitive, it covers parent cycles as well as subtrees orphaned by a
	// parent skipped in the second pass.
	limit := len(b.accounts)
	var kept []*Account
	for _, a := range b.accountList {
		hops := 0
		p := a
		for p.parent != nil && hops <= limit {
			p = p.parent
			hops++
		}
		if p != b.root {
			if hops > limit {
				log.Printf("account %q: parent cycle detected, skipped", a.name)
			} else {
				log.Printf("account %q: unreachable from the root account, skipped", a.name)
			}
			delete(b.accounts, a.id)
			if a.parent != nil {
				a.parent.children = dropChild(a.parent.children, a)
			}
			continue
		}
		kept = append(kept, a)
	}
	b.accountList = kept
	for _, a := range b.accountList {
		if a.parent != nil {
			b.accountsByFullName[a.FullName()] = a
		}
	}
	return nil
}

func dropChild(children []*Account, a *Account) []*Account {
	for i, c := range children {
		if c == a {
			return append(children[:i], children[i+1:]...)
		}
	}
	return children
}

func (b *Book) indexTransactions(f *gnc.File) {
	for _, rec := range f.Transactions {
		if rec.ID == "" {
			log.Printf("skipping transaction without GUID: %q", rec.Description)
			continue
		}
		posted, err := date.ParseTimestamp(rec.DatePosted.Date)
		if err != nil {
			log.Printf("transaction %q: bad posted date: %v, skipped", rec.Description, err)
			continue
		}
		entered, err := date.ParseTimestamp(rec.DateEntered.Date)
		if err != nil {
			entered = posted
		}
		t := &Transaction{
			id:          rec.ID,
			currency:    rec.Currency.ID,
			num:         rec.Num,
			datePosted:  posted,
			dateEntered: entered,
			description: rec.Description,
		}
		for _, srec := range rec.Splits {
			value, err := parseNumeric(srec.Value)
			if err != nil {
				log.Printf("transaction %q: split %s: bad value %q, split skipped", rec.Description, srec.ID, srec.Value)
				continue
			}
			quantity, err := parseNumeric(srec.Quantity)
			if err != nil {
				log.Printf("transaction %q: split %s: bad quantity %q, split skipped", rec.Description, srec.ID, srec.Quantity)
				continue
			}
			account, ok := b.accounts[srec.Account]
			if !ok {
				log.Printf("transaction %q: split %s: account %s not found, split skipped", rec.Description, srec.ID, srec.Account)
				continue
			}
			s := &Split{
				id:        srec.ID,
				txn:       t,
				account:   account,
				memo:      srec.Memo,
				action:    ParseSplitAction(srec.Action),
				rawAction: srec.Action,
				value:     M(value, t.currency),
				quantity:  Q(quantity),
				lotID:     srec.Lot,
			}
			t.splits = append(t.splits, s)
			account.splits = append(account.splits, s)
			b.splits[s.id] = s
			if s.lotID != "" {
				b.splitsByLot[s.lotID] = append(b.splitsByLot[s.lotID], s)
			}
		}
		if len(t.splits) < 2 {
			log.Printf("transaction %q: only %d usable split(s), expected at least 2", rec.Description, len(t.splits))
		}
		b.transactions[t.id] = t
		b.transactionList = append(b.transactionList, t)
	}
}

func (b *Book) indexOwners(f *gnc.File) {
	for _, rec := range f.Customers {
		if rec.GUID == "" {
			log.Printf("skipping customer without GUID: %q", rec.Name)
			continue
		}
		discount, err := parseNumeric(rec.Discount)
		if err != nil && rec.Discount != "" {
			log.Printf("customer %q: bad discount %q, assuming none", rec.Name, rec.Discount)
		}
		credit, err := parseNumeric(rec.Credit)
		if err != nil && rec.Credit != "" {
			log.Printf("customer %q: bad credit %q, assuming none", rec.Name, rec.Credit)
		}
		c := &Customer{
			book:     b,
			id:       rec.GUID,
			number:   rec.ID,
			name:     rec.Name,
			notes:    rec.Notes,
			currency: rec.Currency.ID,
			discount: Q(discount),
			credit:   Q(credit),
			termsID:  rec.Terms,
			active:   parseBool(rec.Active),
		}
		b.customers[c.id] = c
		b.customerList = append(b.customerList, c)
	}
	for _, rec := range f.Vendors {
		if rec.GUID == "" {
			log.Printf("skipping vendor without GUID: %q", rec.Name)
			continue
		}
		v := &Vendor{
			book:     b,
			id:       rec.GUID,
			number:   rec.ID,
			name:     rec.Name,
			notes:    rec.Notes,
			currency: rec.Currency.ID,
			termsID:  rec.Terms,
			active:   parseBool(rec.Active),
		}
		b.vendors[v.id] = v
		b.vendorList = append(b.vendorList, v)
	}
	for _, rec := range f.Employees {
		if rec.GUID == "" {
			log.Printf("skipping employee without GUID: %q", rec.Username)
			continue
		}
		e := &Employee{
			book:     b,
			id:       rec.GUID,
			number:   rec.ID,
			username: rec.Username,
			language: rec.Language,
			currency: rec.Currency.ID,
			active:   parseBool(rec.Active),
		}
		b.employees[e.id] = e
		b.employeeList = append(b.employeeList, e)
	}
}

func (b *Book) indexJobs(f *gnc.File) {
	for _, rec := range f.Jobs {
		if rec.GUID == "" {
			log.Printf("skipping job without GUID: %q", rec.Name)
			continue
		}
		ot, err := ParseOwnerType(rec.Owner.Type)
		if err != nil {
			log.Printf("job %q: %v, skipped", rec.Name, err)
			continue
		}
		if ot != OwnerCustomer && ot != OwnerVendor {
			log.Printf("job %q: jobs cannot belong to a %s, skipped", rec.Name, ot)
			continue
		}
		j := &GenericJob{
			book:      b,
			id:        rec.GUID,
			number:    rec.ID,
			name:      rec.Name,
			ownerType: ot,
			ownerID:   rec.Owner.ID,
			active:    parseBool(rec.Active),
		}
		b.jobs[j.id] = j
		b.jobList = append(b.jobList, j)
		b.jobsByOwner[j.ownerID] = append(b.jobsByOwner[j.ownerID], j)
	}
}

func (b *Book) indexInvoices(f *gnc.File) {
	for _, rec := range f.Invoices {
		if rec.GUID == "" {
			log.Printf("skipping invoice without GUID: %q", rec.ID)
			continue
		}
		ot, err := ParseOwnerType(rec.Owner.Type)
		if err != nil {
			log.Printf("invoice %s: %v, skipped", rec.ID, err)
			continue
		}
		opened, err := date.ParseTimestamp(rec.Opened.Date)
		if err != nil && rec.Opened.Date != "" {
			log.Printf("invoice %s: bad opened date %q", rec.ID, rec.Opened.Date)
		}
		var posted date.Date
		if rec.Posted.Date != "" {
			posted, err = date.ParseTimestamp(rec.Posted.Date)
			if err != nil {
				log.Printf("invoice %s: bad posted date %q", rec.ID, rec.Posted.Date)
			}
		}
		inv := &GenericInvoice{
			book:      b,
			id:        rec.GUID,
			number:    rec.ID,
			ownerType: ot,
			ownerID:   rec.Owner.ID,
			currency:  rec.Currency.ID,
			opened:    opened,
			posted:    posted,
			billingID: rec.BillingID,
			notes:     rec.Notes,
			active:    parseBool(rec.Active),
			termsID:   rec.Terms,
			postTxnID: rec.PostTxn,
			postAccID: rec.PostAcc,
			lotID:     rec.PostLot,
		}
		b.invoices[inv.id] = inv
		b.invoiceList = append(b.invoiceList, inv)
		b.invoicesByOwner[inv.ownerID] = append(b.invoicesByOwner[inv.ownerID], inv)
	}
	b.indexEntries(f)
}

func (b *Book) indexEntries(f *gnc.File) {
	for _, rec := range f.Entries {
		if rec.GUID == "" {
			log.Printf("skipping invoice entry without GUID: %q", rec.Description)
			continue
		}
		invoiceID := rec.Invoice
		if invoiceID == "" {
			invoiceID = rec.Bill
		}
		inv, ok := b.invoices[invoiceID]
		if !ok {
			log.Printf("entry %q: invoice %s not found, skipped", rec.Description, invoiceID)
			continue
		}
		qty, err := parseNumeric(rec.Qty)
		if err != nil {
			log.Printf("entry %q: bad quantity %q, skipped", rec.Description, rec.Qty)
			continue
		}
		// resolve the document side: customer-flavored documents use the i-*
		// fields, vendor bills and employee vouchers the b-* ones. A job
		// invoice follows its job's owner flavor.
		side, _, err := inv.resolveOwner()
		if err != nil {
			log.Printf("entry %q: %v, skipped", rec.Description, err)
			continue
		}
		rawPrice, taxTable, taxIncluded, taxable := rec.IPrice, rec.ITaxTable, rec.ITaxIncluded, rec.ITaxable
		if side == OwnerVendor || side == OwnerEmployee {
			rawPrice, taxTable, taxIncluded, taxable = rec.BPrice, rec.BTaxTable, rec.BTaxIncluded, rec.BTaxable
		}
		price, err := parseNumeric(rawPrice)
		if err != nil {
			log.Printf("entry %q: bad unit price %q, skipped", rec.Description, rawPrice)
			continue
		}
		when, err := date.ParseTimestamp(rec.Date.Date)
		if err != nil && rec.Date.Date != "" {
			log.Printf("entry %q: bad date %q", rec.Description, rec.Date.Date)
		}
		e := &InvoiceEntry{
			book:        b,
			id:          rec.GUID,
			invoiceID:   inv.id,
			date:        when,
			description: rec.Description,
			action:      ParseEntryAction(rec.Action),
			qty:         Q(qty),
			price:       M(price, inv.currency),
			taxTableID:  taxTable,
			taxIncluded: parseBool(taxIncluded),
			taxable:     parseBool(taxable),
		}
		inv.entries = append(inv.entries, e)
	}
}

func (b *Book) indexPrices(f *gnc.File) {
	for _, rec := range f.Prices {
		p, err := newPrice(rec)
		if err != nil {
			log.Printf("skipping malformed price quote: %v", err)
			continue
		}
		b.prices = append(b.prices, p)
	}
}

// parseNumeric parses GnuCash's fractional notation ("12345/100") as well as
// plain decimal strings, exactly.
func parseNumeric(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty numeric value")
	}
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return decimal.NewFromString(s)
	}
	n, err := decimal.NewFromString(num)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid numerator in %q: %w", s, err)
	}
	d, err := decimal.NewFromString(den)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid denominator in %q: %w", s, err)
	}
	if d.IsZero() {
		return decimal.Zero, fmt.Errorf("zero denominator in %q", s)
	}
	return n.Div(d), nil
}

func parseBool(s string) bool { return s == "1" || strings.EqualFold(s, "true") }
