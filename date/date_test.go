package date

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-07-01", want: New(2024, time.July, 1)},
		{in: "2024-7-1", want: New(2024, time.July, 1)},
		{in: "not-a-date", wantErr: true},
		{in: "2024-13-40", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Parse(%q): want error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseTimestamp(t *testing.T) {
	got, err := ParseTimestamp("2024-07-01 00:00:00 +0200")
	if err != nil {
		t.Fatalf("ParseTimestamp: %v", err)
	}
	if want := New(2024, time.July, 1); got != want {
		t.Errorf("ParseTimestamp = %v, want %v", got, want)
	}
	// bare dates are accepted too
	got, err = ParseTimestamp("2024-07-01")
	if err != nil {
		t.Fatalf("ParseTimestamp bare date: %v", err)
	}
	if want := New(2024, time.July, 1); got != want {
		t.Errorf("ParseTimestamp bare date = %v, want %v", got, want)
	}
}

func TestOrdering(t *testing.T) {
	a := New(2024, time.January, 31)
	b := New(2024, time.February, 1)
	if !a.Before(b) || b.Before(a) {
		t.Errorf("expected %v before %v", a, b)
	}
	if !b.After(a) {
		t.Errorf("expected %v after %v", b, a)
	}
	if a.Add(1) != b {
		t.Errorf("Add(1) = %v, want %v", a.Add(1), b)
	}
	if (Date{}).IsZero() != true {
		t.Error("zero date should report IsZero")
	}
}
