// Package gncbook provides read access to a double-entry accounting book
// persisted in a GnuCash-style XML file. It exposes the book's entity graph
// (accounts, transactions, invoices, jobs, owners, commodities, prices) and
// derives financial facts from it.
//
// The core functionalities include:
//   - Entity Index: a Book built once, eagerly, from the raw record stream
//     decoded by the gnc subpackage. All lookups (by GUID, by name, by owner,
//     by lot) are answered from in-memory maps.
//   - Owner/Invoice Model: one generic invoice record wrapped as a customer
//     invoice, vendor bill, employee voucher or job invoice. Wrapping an
//     invoice as the wrong flavor fails, it never returns a partial view.
//   - Payment Reconciliation: paid/unpaid status and outstanding amount of an
//     invoice, determined by following its lot through the transaction graph.
//   - Price Resolution: the latest quoted price of any commodity or currency,
//     converted into the book's default currency through intermediate quotes
//     with bounded recursion.
//   - Aggregation: owner-level and job-level rollups (outstanding value,
//     income/expense generated), computed separately for direct and via-job
//     ownership.
//
// The book is a static snapshot: it is loaded in one blocking pass and then
// only queried. This package serves as the foundational logic for the `gncq`
// command-line tool.
package gncbook
