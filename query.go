package gncbook

import (
	"fmt"
	"strings"
)

// Lookup surface of the Book. Single-entity getters return nil on a miss;
// the ...ByNameUniq variants instead fail with ErrNoEntryFound or
// ErrTooManyEntriesFound, for callers that need exactly one match.

// uniq reduces a name-pattern match list to its single element.
func uniq[T any](what, pattern string, matches []T) (T, error) {
	var zero T
	switch len(matches) {
	case 0:
		return zero, fmt.Errorf("%s matching %q: %w", what, pattern, ErrNoEntryFound)
	case 1:
		return matches[0], nil
	default:
		return zero, fmt.Errorf("%d %ss matching %q: %w", len(matches), what, pattern, ErrTooManyEntriesFound)
	}
}

// matchName is the name-pattern predicate: a case-insensitive substring
// match.
func matchName(name, pattern string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(pattern))
}

// AccountByID returns the account with the given GUID, or nil.
func (b *Book) AccountByID(id string) *Account { return b.accounts[id] }

// AccountByFullName returns the account with the given colon-separated full
// name (e.g. "Assets:Bank:Checking"), or nil.
func (b *Book) AccountByFullName(name string) *Account { return b.accountsByFullName[name] }

// Accounts returns all accounts in file order, the root included.
func (b *Book) Accounts() []*Account { return b.accountList }

// AccountsByName returns the accounts whose simple name matches the pattern.
func (b *Book) AccountsByName(pattern string) []*Account {
	var out []*Account
	for _, a := range b.accountList {
		if matchName(a.name, pattern) {
			out = append(out, a)
		}
	}
	return out
}

// AccountByNameUniq returns the single account matching the pattern.
func (b *Book) AccountByNameUniq(pattern string) (*Account, error) {
	return uniq("account", pattern, b.AccountsByName(pattern))
}

// TransactionByID returns the transaction with the given GUID, or nil.
func (b *Book) TransactionByID(id string) *Transaction { return b.transactions[id] }

// Transactions returns all transactions in file order.
func (b *Book) Transactions() []*Transaction { return b.transactionList }

// SplitByID returns the split with the given GUID, or nil.
func (b *Book) SplitByID(id string) *Split { return b.splits[id] }

// SplitsByLot returns the lot-associated splits of a lot, in file order.
func (b *Book) SplitsByLot(lotID string) []*Split { return b.splitsByLot[lotID] }

// InvoiceByID returns the generic invoice with the given GUID, or nil.
func (b *Book) InvoiceByID(id string) *GenericInvoice { return b.invoices[id] }

// InvoiceByNumber returns the invoice with the given human-readable document
// number, or nil.
func (b *Book) InvoiceByNumber(number string) *GenericInvoice {
	for _, inv := range b.invoiceList {
		if inv.number == number {
			return inv
		}
	}
	return nil
}

// Invoices returns all generic invoices in file order, all flavors mixed.
func (b *Book) Invoices() []*GenericInvoice { return b.invoiceList }

// JobByID returns the job with the given GUID, or nil.
func (b *Book) JobByID(id string) *GenericJob { return b.jobs[id] }

// Jobs returns all jobs in file order, both flavors mixed.
func (b *Book) Jobs() []*GenericJob { return b.jobList }

// ActiveJobs returns the jobs flagged active, in file order.
func (b *Book) ActiveJobs() []*GenericJob {
	var out []*GenericJob
	for _, j := range b.jobList {
		if j.active {
			out = append(out, j)
		}
	}
	return out
}

// JobsByName returns the jobs whose name matches the pattern.
func (b *Book) JobsByName(pattern string) []*GenericJob {
	var out []*GenericJob
	for _, j := range b.jobList {
		if matchName(j.name, pattern) {
			out = append(out, j)
		}
	}
	return out
}

// JobByNameUniq returns the single job matching the pattern.
func (b *Book) JobByNameUniq(pattern string) (*GenericJob, error) {
	return uniq("job", pattern, b.JobsByName(pattern))
}

// CustomerByID returns the customer with the given GUID, or nil.
func (b *Book) CustomerByID(id string) *Customer { return b.customers[id] }

// Customers returns all customers in file order.
func (b *Book) Customers() []*Customer { return b.customerList }

// CustomersByName returns the customers whose name matches the pattern.
func (b *Book) CustomersByName(pattern string) []*Customer {
	var out []*Customer
	for _, c := range b.customerList {
		if matchName(c.name, pattern) {
			out = append(out, c)
		}
	}
	return out
}

// CustomerByNameUniq returns the single customer matching the pattern.
func (b *Book) CustomerByNameUniq(pattern string) (*Customer, error) {
	return uniq("customer", pattern, b.CustomersByName(pattern))
}

// VendorByID returns the vendor with the given GUID, or nil.
func (b *Book) VendorByID(id string) *Vendor { return b.vendors[id] }

// Vendors returns all vendors in file order.
func (b *Book) Vendors() []*Vendor { return b.vendorList }

// VendorsByName returns the vendors whose name matches the pattern.
func (b *Book) VendorsByName(pattern string) []*Vendor {
	var out []*Vendor
	for _, v := range b.vendorList {
		if matchName(v.name, pattern) {
			out = append(out, v)
		}
	}
	return out
}

// VendorByNameUniq returns the single vendor matching the pattern.
func (b *Book) VendorByNameUniq(pattern string) (*Vendor, error) {
	return uniq("vendor", pattern, b.VendorsByName(pattern))
}

// EmployeeByID returns the employee with the given GUID, or nil.
func (b *Book) EmployeeByID(id string) *Employee { return b.employees[id] }

// Employees returns all employees in file order.
func (b *Book) Employees() []*Employee { return b.employeeList }

// EmployeesByName returns the employees whose username matches the pattern.
func (b *Book) EmployeesByName(pattern string) []*Employee {
	var out []*Employee
	for _, e := range b.employeeList {
		if matchName(e.username, pattern) {
			out = append(out, e)
		}
	}
	return out
}

// EmployeeByNameUniq returns the single employee matching the pattern.
func (b *Book) EmployeeByNameUniq(pattern string) (*Employee, error) {
	return uniq("employee", pattern, b.EmployeesByName(pattern))
}

// CommodityByID returns the declared commodity with the given qualified id,
// or nil.
func (b *Book) CommodityByID(id CmdtyID) *Commodity { return b.commodities[id] }

// Commodities returns all declared commodities in file order.
func (b *Book) Commodities() []*Commodity { return b.commodityList }

// TaxTableByID returns the tax table with the given GUID, or nil.
func (b *Book) TaxTableByID(id string) *TaxTable { return b.taxTables[id] }

// BillTermsByID returns the bill terms with the given GUID, or nil.
func (b *Book) BillTermsByID(id string) *BillTerms { return b.billTerms[id] }
