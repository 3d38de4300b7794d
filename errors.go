package gncbook

import (
	"errors"
	"fmt"
)

// ErrNoEntryFound indicates that a uniqueness-seeking lookup matched nothing.
var ErrNoEntryFound = errors.New("no entry found")

// ErrTooManyEntriesFound indicates that a uniqueness-seeking lookup matched
// more than one entity.
var ErrTooManyEntriesFound = errors.New("too many entries found")

// WrongOwnerTypeError reports a flavor-specific owner operation invoked on an
// entity tagged with a different owner type. It is always fatal to that call;
// flavors are never silently coerced.
type WrongOwnerTypeError struct {
	Want, Got OwnerType
}

func (e *WrongOwnerTypeError) Error() string {
	return fmt.Sprintf("wrong owner type: want %s, got %s", e.Want, e.Got)
}

// WrongInvoiceTypeError reports an invoice wrapped or queried as the wrong
// flavor (e.g. a vendor bill read as a customer invoice).
type WrongInvoiceTypeError struct {
	Want, Got OwnerType
}

func (e *WrongInvoiceTypeError) Error() string {
	return fmt.Sprintf("wrong invoice type: want %s invoice, got %s invoice", e.Want, e.Got)
}

// WrongJobTypeError reports a job wrapped as the wrong flavor.
type WrongJobTypeError struct {
	Want, Got OwnerType
}

func (e *WrongJobTypeError) Error() string {
	return fmt.Sprintf("wrong job type: want %s job, got %s job", e.Want, e.Got)
}

// UnknownAccountTypeError reports an account type tag that matches no
// recognized value. It is surfaced to the caller, never defaulted.
type UnknownAccountTypeError struct {
	Tag string
}

func (e *UnknownAccountTypeError) Error() string {
	return fmt.Sprintf("unknown account type %q", e.Tag)
}
