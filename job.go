package gncbook

import "fmt"

// GenericJob groups invoices under a customer or vendor. Like invoices, jobs
// carry an immutable owner type tag; the typed views fail fast on mismatch.
type GenericJob struct {
	book      *Book
	id        string // GUID
	number    string // human-readable id
	name      string
	ownerType OwnerType
	ownerID   string
	active    bool
}

func (j *GenericJob) ID() string           { return j.id }
func (j *GenericJob) Number() string       { return j.number }
func (j *GenericJob) Name() string         { return j.name }
func (j *GenericJob) OwnerType() OwnerType { return j.ownerType }
func (j *GenericJob) OwnerID() string      { return j.ownerID }
func (j *GenericJob) Active() bool         { return j.active }

// Invoices returns the job invoices owned by this job, in file order.
func (j *GenericJob) Invoices() []JobInvoice {
	var out []JobInvoice
	for _, inv := range j.book.invoicesByOwner[j.id] {
		// invoices keyed under a job GUID are job invoices by construction
		ji, err := inv.AsJobInvoice()
		if err != nil {
			continue
		}
		out = append(out, ji)
	}
	return out
}

// UnpaidInvoices returns the job's invoices that are not fully paid, each
// independently reconciled.
func (j *GenericJob) UnpaidInvoices() []JobInvoice {
	var out []JobInvoice
	for _, ji := range j.Invoices() {
		if !j.book.Reconcile(ji.GenericInvoice).FullyPaid {
			out = append(out, ji)
		}
	}
	return out
}

// PaidInvoices returns the job's fully paid invoices.
func (j *GenericJob) PaidInvoices() []JobInvoice {
	var out []JobInvoice
	for _, ji := range j.Invoices() {
		if j.book.Reconcile(ji.GenericInvoice).FullyPaid {
			out = append(out, ji)
		}
	}
	return out
}

// CustomerJob is the customer-flavored view of a generic job.
type CustomerJob struct {
	*GenericJob
}

// AsCustomerJob wraps the job as a customer job. It fails with
// *WrongJobTypeError when the job belongs to a vendor.
func (j *GenericJob) AsCustomerJob() (CustomerJob, error) {
	if j.ownerType != OwnerCustomer {
		return CustomerJob{}, &WrongJobTypeError{Want: OwnerCustomer, Got: j.ownerType}
	}
	return CustomerJob{j}, nil
}

// Customer resolves the job's owner against the book.
func (cj CustomerJob) Customer() (*Customer, error) {
	c, ok := cj.book.customers[cj.ownerID]
	if !ok {
		return nil, fmt.Errorf("job %s: customer %s: %w", cj.number, cj.ownerID, ErrNoEntryFound)
	}
	return c, nil
}

// VendorJob is the vendor-flavored view of a generic job.
type VendorJob struct {
	*GenericJob
}

// AsVendorJob wraps the job as a vendor job, failing fast on a flavor
// mismatch.
func (j *GenericJob) AsVendorJob() (VendorJob, error) {
	if j.ownerType != OwnerVendor {
		return VendorJob{}, &WrongJobTypeError{Want: OwnerVendor, Got: j.ownerType}
	}
	return VendorJob{j}, nil
}

// Vendor resolves the job's owner against the book.
func (vj VendorJob) Vendor() (*Vendor, error) {
	v, ok := vj.book.vendors[vj.ownerID]
	if !ok {
		return nil, fmt.Errorf("job %s: vendor %s: %w", vj.number, vj.ownerID, ErrNoEntryFound)
	}
	return v, nil
}
