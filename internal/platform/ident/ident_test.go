package ident

import "testing"

func TestFormat_Padding(t *testing.T) {
	cases := []struct {
		prefix string
		n      int64
		want   string
	}{
		{"P", 1, "P001"},
		{"P", 8, "P008"},
		{"DOC", 3, "DOC003"},
		{"APT", 42, "APT042"},
		{"BILL", 100, "BILL100"},
		{"X", 999, "X999"},
	}
	for _, c := range cases {
		if got := Format(c.prefix, c.n); got != c.want {
			t.Errorf("Format(%q, %d) = %q, want %q", c.prefix, c.n, got, c.want)
		}
	}
}

func TestFormat_NoTruncation(t *testing.T) {
	// Width is a minimum, not a cap.
	if got := Format("X", 1235); got != "X1235" {
		t.Errorf("Format(X, 1235) = %q, want X1235", got)
	}
	if got := Format("BILL", 100000); got != "BILL100000" {
		t.Errorf("Format(BILL, 100000) = %q, want BILL100000", got)
	}
}
