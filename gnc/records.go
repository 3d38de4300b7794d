// Package gnc decodes a GnuCash v2 XML file into raw, tagged records.
//
// Records carry the file's native identifiers (string GUIDs) and field values
// as structured but not yet business-typed data: dates are timestamp strings,
// amounts are fractional strings like "12345/100". Interpreting them is the
// job of the gncbook package, which builds its entity index from a *File.
package gnc

import "encoding/xml"

// Cmdty is a namespaced commodity-or-currency reference (e.g. CURRENCY:EUR,
// NASDAQ:AAPL). Qualified identity is Space:ID.
type Cmdty struct {
	Space string `xml:"space"`
	ID    string `xml:"id"`
}

// TS is a GnuCash timestamp wrapper, e.g. <ts:date>2024-07-01 00:00:00 +0200</ts:date>.
type TS struct {
	Date string `xml:"date"`
}

// Owner is the polymorphic owner reference used by jobs and invoices.
// Type is one of "gncCustomer", "gncVendor", "gncEmployee", "gncJob".
type Owner struct {
	Type string `xml:"type"`
	ID   string `xml:"id"`
}

// Commodity declares a tradable or monetary unit.
type Commodity struct {
	Space    string `xml:"space"`
	ID       string `xml:"id"`
	Name     string `xml:"name"`
	Fraction string `xml:"fraction"`
}

// Account is one node of the account tree.
type Account struct {
	Name        string `xml:"name"`
	ID          string `xml:"id"`
	Type        string `xml:"type"`
	Commodity   Cmdty  `xml:"commodity"`
	Description string `xml:"description"`
	Parent      string `xml:"parent"` // empty for the root account
}

// Split is one leg of a transaction.
type Split struct {
	ID       string `xml:"id"`
	Memo     string `xml:"memo"`
	Action   string `xml:"action"`
	Value    string `xml:"value"`    // amount in the transaction currency, fractional
	Quantity string `xml:"quantity"` // amount in the account commodity, fractional
	Account  string `xml:"account"`
	Lot      string `xml:"lot"` // non-empty splits participate in invoice payment tracking
}

// Transaction groups two or more splits posted on a date.
type Transaction struct {
	ID          string  `xml:"id"`
	Currency    Cmdty   `xml:"currency"`
	Num         string  `xml:"num"`
	DatePosted  TS      `xml:"date-posted"`
	DateEntered TS      `xml:"date-entered"`
	Description string  `xml:"description"`
	Splits      []Split `xml:"splits>split"`
}

// Price is one quote of the price database.
type Price struct {
	ID        string `xml:"id"`
	Commodity Cmdty  `xml:"commodity"` // the "from" side
	Currency  Cmdty  `xml:"currency"`  // the "to" side
	Time      TS     `xml:"time"`
	Source    string `xml:"source"`
	Type      string `xml:"type"`
	Value     string `xml:"value"`
}

// Customer is a client the book issues invoices to.
type Customer struct {
	GUID     string `xml:"guid"`
	Name     string `xml:"name"`
	ID       string `xml:"id"`
	Notes    string `xml:"notes"`
	Currency Cmdty  `xml:"currency"`
	Discount string `xml:"discount"`
	Credit   string `xml:"credit"`
	Terms    string `xml:"terms"`
	Active   string `xml:"active"`
}

// Vendor is a supplier the book receives bills from.
type Vendor struct {
	GUID     string `xml:"guid"`
	Name     string `xml:"name"`
	ID       string `xml:"id"`
	Notes    string `xml:"notes"`
	Currency Cmdty  `xml:"currency"`
	Terms    string `xml:"terms"`
	Active   string `xml:"active"`
}

// Employee files expense vouchers against the book.
type Employee struct {
	GUID     string `xml:"guid"`
	Username string `xml:"username"`
	ID       string `xml:"id"`
	Language string `xml:"language"`
	Currency Cmdty  `xml:"currency"`
	Active   string `xml:"active"`
}

// Job groups invoices under a customer or vendor.
type Job struct {
	GUID   string `xml:"guid"`
	ID     string `xml:"id"`
	Name   string `xml:"name"`
	Owner  Owner  `xml:"owner"`
	Active string `xml:"active"`
}

// Invoice is the generic record behind customer invoices, vendor bills,
// employee vouchers and job invoices; Owner.Type tells them apart.
type Invoice struct {
	GUID      string `xml:"guid"`
	ID        string `xml:"id"`
	Owner     Owner  `xml:"owner"`
	Opened    TS     `xml:"opened"`
	Posted    TS     `xml:"posted"`
	Terms     string `xml:"terms"`
	BillingID string `xml:"billing_id"`
	Notes     string `xml:"notes"`
	Active    string `xml:"active"`
	Currency  Cmdty  `xml:"currency"`
	PostTxn   string `xml:"posttxn"`
	PostLot   string `xml:"postlot"`
	PostAcc   string `xml:"postacc"`
}

// Entry is one line of an invoice. The i-* fields apply to customer-side
// documents, the b-* fields to vendor bills and employee vouchers.
type Entry struct {
	GUID         string `xml:"guid"`
	Date         TS     `xml:"date"`
	Entered      TS     `xml:"entered"`
	Description  string `xml:"description"`
	Action       string `xml:"action"` // Job, Material or Hours
	Qty          string `xml:"qty"`
	Invoice      string `xml:"invoice"`
	IAcct        string `xml:"i-acct"`
	IPrice       string `xml:"i-price"`
	IDiscount    string `xml:"i-discount"`
	IDiscType    string `xml:"i-disc-type"`
	ITaxable     string `xml:"i-taxable"`
	ITaxIncluded string `xml:"i-taxincluded"`
	ITaxTable    string `xml:"i-taxtable"`
	Bill         string `xml:"bill"`
	BAcct        string `xml:"b-acct"`
	BPrice       string `xml:"b-price"`
	BTaxable     string `xml:"b-taxable"`
	BTaxIncluded string `xml:"b-taxincluded"`
	BTaxTable    string `xml:"b-taxtable"`
	Billable     string `xml:"billable"`
}

// TaxTableEntry is one component of a tax table: a percentage or a fixed
// value booked to an account.
type TaxTableEntry struct {
	Acct   string `xml:"acct"`
	Type   string `xml:"type"` // PERCENT or VALUE
	Amount string `xml:"amount"`
}

// TaxTable is a named set of tax components referenced by invoice entries.
type TaxTable struct {
	GUID      string          `xml:"guid"`
	Name      string          `xml:"name"`
	Invisible string          `xml:"invisible"`
	Entries   []TaxTableEntry `xml:"entries>GncTaxTableEntry"`
}

// BillTerm describes payment terms referenced by invoices and owners.
type BillTerm struct {
	GUID         string `xml:"guid"`
	Name         string `xml:"name"`
	Description  string `xml:"desc"`
	DueDays      string `xml:"due-days"`
	DiscountDays string `xml:"disc-days"`
}

// book is the on-file container; only used during decoding.
type book struct {
	XMLName      xml.Name      `xml:"book"`
	ID           string        `xml:"id"`
	Commodities  []Commodity   `xml:"commodity"`
	Prices       []Price       `xml:"pricedb>price"`
	Accounts     []Account     `xml:"account"`
	Transactions []Transaction `xml:"transaction"`
	Customers    []Customer    `xml:"GncCustomer"`
	Vendors      []Vendor      `xml:"GncVendor"`
	Employees    []Employee    `xml:"GncEmployee"`
	Jobs         []Job         `xml:"GncJob"`
	Invoices     []Invoice     `xml:"GncInvoice"`
	Entries      []Entry       `xml:"GncEntry"`
	TaxTables    []TaxTable    `xml:"GncTaxTable"`
	BillTerms    []BillTerm    `xml:"GncBillTerm"`
}

// File is the decoded record stream of one book, in file order.
type File struct {
	BookID       string
	Commodities  []Commodity
	Prices       []Price
	Accounts     []Account
	Transactions []Transaction
	Customers    []Customer
	Vendors      []Vendor
	Employees    []Employee
	Jobs         []Job
	Invoices     []Invoice
	Entries      []Entry
	TaxTables    []TaxTable
	BillTerms    []BillTerm

	// DefaultCurrency is the book's heuristically determined base currency
	// code (see guessDefaultCurrency).
	DefaultCurrency string
}
