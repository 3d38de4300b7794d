package gncbook

import "testing"

func TestDisplayName(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"en", "Accounts Receivable"},
		{"de", "Forderungen"},
		{"fr", "Accounts Receivable"}, // unknown locale falls back to English
		{"", "Accounts Receivable"},
	}
	for _, tc := range tests {
		if got := AccountReceivable.DisplayName(tc.locale); got != tc.want {
			t.Errorf("AccountReceivable.DisplayName(%q) = %q, want %q", tc.locale, got, tc.want)
		}
	}

	if got := OwnerVendor.DisplayName("de"); got != "Lieferant" {
		t.Errorf("OwnerVendor.DisplayName(de) = %q, want Lieferant", got)
	}
	if got := OwnerJob.DisplayName("nl"); got != "Job" {
		t.Errorf("OwnerJob.DisplayName(nl) = %q, want Job", got)
	}
}
