package gncbook

import (
	"fmt"
	"strings"

	"github.com/gncbook/gncbook/gnc"
)

// currencySpaces are the commodity namespaces that denote ISO currencies.
const (
	SpaceCurrency = "CURRENCY"
	SpaceISO4217  = "ISO4217" // older books use the ISO namespace name
)

// CmdtyID identifies a commodity or currency by namespace and code.
// Qualified identity is "namespace:code".
type CmdtyID struct {
	Space string
	Code  string
}

// Currency returns the CmdtyID of an ISO currency code.
func Currency(code string) CmdtyID { return CmdtyID{Space: SpaceCurrency, Code: code} }

// IsCurrency reports whether the id lives in a currency namespace.
func (id CmdtyID) IsCurrency() bool {
	return id.Space == SpaceCurrency || id.Space == SpaceISO4217
}

// IsZero reports whether the id is empty.
func (id CmdtyID) IsZero() bool { return id.Space == "" && id.Code == "" }

// Equal compares two ids; currency namespaces are interchangeable, so
// CURRENCY:EUR and ISO4217:EUR identify the same unit.
func (id CmdtyID) Equal(other CmdtyID) bool {
	if id.IsCurrency() && other.IsCurrency() {
		return id.Code == other.Code
	}
	return id == other
}

func (id CmdtyID) String() string { return id.Space + ":" + id.Code }

// ParseCmdtyID parses a "namespace:code" qualified id.
func ParseCmdtyID(s string) (CmdtyID, error) {
	space, code, ok := strings.Cut(s, ":")
	if !ok || space == "" || code == "" {
		return CmdtyID{}, fmt.Errorf("invalid commodity id %q: want namespace:code", s)
	}
	return CmdtyID{Space: space, Code: code}, nil
}

func cmdtyID(c gnc.Cmdty) CmdtyID { return CmdtyID{Space: c.Space, Code: c.ID} }

// Commodity is a declared tradable or monetary unit.
type Commodity struct {
	id       CmdtyID
	name     string
	fraction int // smallest representable unit, e.g. 100 for cents
}

// ID returns the qualified identity of the commodity.
func (c *Commodity) ID() CmdtyID { return c.id }

// Name returns the user-visible name of the commodity.
func (c *Commodity) Name() string { return c.name }

// Fraction returns the commodity's smallest unit denominator.
func (c *Commodity) Fraction() int { return c.fraction }

// IsCurrency reports whether the commodity is an ISO currency.
func (c *Commodity) IsCurrency() bool { return c.id.IsCurrency() }
