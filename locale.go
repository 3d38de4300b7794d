package gncbook

// Static per-locale display strings for enumerated values. A statically
// checked map per locale replaces runtime catalog lookups; unknown locales
// fall back to English.

var accountTypeNames = map[string]map[AccountType]string{
	"en": {
		AccountRoot:       "Root",
		AccountAsset:      "Asset",
		AccountBank:       "Bank",
		AccountCash:       "Cash",
		AccountCredit:     "Credit Card",
		AccountLiability:  "Liability",
		AccountIncome:     "Income",
		AccountExpense:    "Expense",
		AccountEquity:     "Equity",
		AccountReceivable: "Accounts Receivable",
		AccountPayable:    "Accounts Payable",
		AccountStock:      "Stock",
		AccountMutual:     "Mutual Fund",
		AccountTrading:    "Trading",
	},
	"de": {
		AccountRoot:       "Wurzel",
		AccountAsset:      "Aktiva",
		AccountBank:       "Bank",
		AccountCash:       "Bargeld",
		AccountCredit:     "Kreditkarte",
		AccountLiability:  "Verbindlichkeit",
		AccountIncome:     "Ertrag",
		AccountExpense:    "Aufwand",
		AccountEquity:     "Eigenkapital",
		AccountReceivable: "Forderungen",
		AccountPayable:    "Verbindlichkeiten aus L+L",
		AccountStock:      "Aktie",
		AccountMutual:     "Investmentfonds",
		AccountTrading:    "Devisenhandel",
	},
}

// DisplayName returns the account type's display string for a locale
// ("en", "de"); unknown locales fall back to English.
func (t AccountType) DisplayName(locale string) string {
	names, ok := accountTypeNames[locale]
	if !ok {
		names = accountTypeNames["en"]
	}
	if name, ok := names[t]; ok {
		return name
	}
	return t.String()
}

var ownerTypeNames = map[string]map[OwnerType]string{
	"en": {
		OwnerCustomer: "Customer",
		OwnerVendor:   "Vendor",
		OwnerEmployee: "Employee",
		OwnerJob:      "Job",
	},
	"de": {
		OwnerCustomer: "Kunde",
		OwnerVendor:   "Lieferant",
		OwnerEmployee: "Mitarbeiter",
		OwnerJob:      "Auftrag",
	},
}

// DisplayName returns the owner type's display string for a locale; unknown
// locales fall back to English.
func (t OwnerType) DisplayName(locale string) string {
	names, ok := ownerTypeNames[locale]
	if !ok {
		names = ownerTypeNames["en"]
	}
	if name, ok := names[t]; ok {
		return name
	}
	return t.String()
}
