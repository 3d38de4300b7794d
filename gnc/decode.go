package gnc

import (
	"bufio"
	"compress/gzip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// Decode reads a GnuCash v2 XML document, gzip'd or plain, and returns its
// raw record stream. It decodes structure only; interpreting field values is
// left to the caller.
func Decode(r io.Reader) (*File, error) {
	br := bufio.NewReader(r)

	// GnuCash saves gzip'd by default, detect the magic bytes.
	magic, err := br.Peek(2)
	if err != nil {
		return nil, fmt.Errorf("cannot read book: %w", err)
	}
	var src io.Reader = br
	if magic[0] == 0x1f && magic[1] == 0x8b {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("cannot open gzip'd book: %w", err)
		}
		defer zr.Close()
		src = zr
	}

	var doc struct {
		XMLName xml.Name `xml:"gnc-v2"`
		Book    book     `xml:"book"`
	}
	dec := xml.NewDecoder(src)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot parse book XML: %w", err)
	}

	f := &File{
		BookID:       doc.Book.ID,
		Commodities:  doc.Book.Commodities,
		Prices:       doc.Book.Prices,
		Accounts:     doc.Book.Accounts,
		Transactions: doc.Book.Transactions,
		Customers:    doc.Book.Customers,
		Vendors:      doc.Book.Vendors,
		Employees:    doc.Book.Employees,
		Jobs:         doc.Book.Jobs,
		Invoices:     doc.Book.Invoices,
		Entries:      doc.Book.Entries,
		TaxTables:    doc.Book.TaxTables,
		BillTerms:    doc.Book.BillTerms,
	}
	f.DefaultCurrency = guessDefaultCurrency(f)
	return f, nil
}

// DecodeFile opens and decodes the book at path.
func DecodeFile(path string) (*File, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open book %q: %w", path, err)
	}
	defer fd.Close()
	return Decode(fd)
}

// guessDefaultCurrency determines the book's base currency: the currency the
// plurality of accounts are denominated in, falling back to the plurality of
// transaction currencies. The file format itself does not record one.
func guessDefaultCurrency(f *File) string {
	counts := make(map[string]int)
	for _, a := range f.Accounts {
		if a.Commodity.Space == "CURRENCY" || a.Commodity.Space == "ISO4217" {
			counts[a.Commodity.ID]++
		}
	}
	if len(counts) == 0 {
		for _, t := range f.Transactions {
			if t.Currency.ID != "" {
				counts[t.Currency.ID]++
			}
		}
	}
	best, bestN := "", 0
	for code, n := range counts {
		if n > bestN || (n == bestN && code < best) {
			best, bestN = code, n
		}
	}
	return best
}
