package gncbook

import "fmt"

// OwnerType tags who an invoice or job belongs to.
type OwnerType int

const (
	OwnerNone OwnerType = iota
	OwnerCustomer
	OwnerVendor
	OwnerEmployee
	OwnerJob
)

func (t OwnerType) String() string {
	switch t {
	case OwnerCustomer:
		return "customer"
	case OwnerVendor:
		return "vendor"
	case OwnerEmployee:
		return "employee"
	case OwnerJob:
		return "job"
	default:
		return "none"
	}
}

// ParseOwnerType parses the on-file owner type tag ("gncCustomer", ...).
func ParseOwnerType(tag string) (OwnerType, error) {
	switch tag {
	case "gncCustomer":
		return OwnerCustomer, nil
	case "gncVendor":
		return OwnerVendor, nil
	case "gncEmployee":
		return OwnerEmployee, nil
	case "gncJob":
		return OwnerJob, nil
	default:
		return OwnerNone, fmt.Errorf("unknown owner type %q", tag)
	}
}

// ReadVariant selects whether owner-scoped queries resolve invoices and jobs
// owned directly, or owned through one of the owner's jobs. The two sets are
// always reported separately, never merged.
type ReadVariant int

const (
	Direct ReadVariant = iota
	ViaJob
)

func (v ReadVariant) String() string {
	if v == ViaJob {
		return "via-job"
	}
	return "direct"
}

// Customer is a client the book issues invoices to.
type Customer struct {
	book     *Book
	id       string // GUID
	number   string // human-readable id
	name     string
	notes    string
	currency string
	discount Quantity
	credit   Quantity
	termsID  string
	active   bool
}

func (c *Customer) ID() string       { return c.id }
func (c *Customer) Number() string   { return c.number }
func (c *Customer) Name() string     { return c.name }
func (c *Customer) Notes() string    { return c.notes }
func (c *Customer) Currency() string { return c.currency }
func (c *Customer) Active() bool     { return c.active }

// Discount is the customer's standing discount percentage.
func (c *Customer) Discount() Quantity { return c.discount }

// CreditLimit is the customer's credit limit in its currency.
func (c *Customer) CreditLimit() Money { return M(c.credit.Decimal(), c.currency) }

// Terms returns the customer's default bill terms, or nil if none are set.
func (c *Customer) Terms() *BillTerms { return c.book.billTerms[c.termsID] }

// Vendor is a supplier the book receives bills from.
type Vendor struct {
	book     *Book
	id       string
	number   string
	name     string
	notes    string
	currency string
	termsID  string
	active   bool
}

func (v *Vendor) ID() string       { return v.id }
func (v *Vendor) Number() string   { return v.number }
func (v *Vendor) Name() string     { return v.name }
func (v *Vendor) Notes() string    { return v.notes }
func (v *Vendor) Currency() string { return v.currency }
func (v *Vendor) Active() bool     { return v.active }

// Terms returns the vendor's default bill terms, or nil if none are set.
func (v *Vendor) Terms() *BillTerms { return v.book.billTerms[v.termsID] }

// Employee files expense vouchers against the book.
type Employee struct {
	book     *Book
	id       string
	number   string
	username string
	language string
	currency string
	active   bool
}

func (e *Employee) ID() string       { return e.id }
func (e *Employee) Number() string   { return e.number }
func (e *Employee) Username() string { return e.username }
func (e *Employee) Language() string { return e.language }
func (e *Employee) Currency() string { return e.currency }
func (e *Employee) Active() bool     { return e.active }
