package lead_test

import (
	"testing"

	app "github.com/miestilo/leadcrm/internal/application/lead"
)

func TestCleanPhone(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"plain number untouched", "9876543210", "9876543210"},
		{"trimmed", "  9876543210  ", "9876543210"},
		{"leading apostrophe stripped", "'9876543210", "9876543210"},
		{"only one apostrophe stripped", "''9876543210", "'9876543210"},
		{"scientific notation expanded", "9.87E+09", "9870000000"},
		{"lowercase scientific notation", "9.87e+09", "9870000000"},
		{"float artifact stripped", "9876543210.0", "9876543210"},
		{"double artifact strips one layer", "9876543210.0.0", "9876543210.0"},
		{"apostrophe then scientific", "'9.87E+09", "9870000000"},
		{"unparseable left alone", "+91 98765-43210", "+91 98765-43210"},
		{"not scientific without plus", "987E09", "987E09"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := app.CleanPhone(tc.in); got != tc.want {
				t.Fatalf("CleanPhone(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCleanPhoneIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"9.87E+09", "'9876543210", "9876543210.0", "abc", "1.5E+03"}
	for _, in := range inputs {
		once := app.CleanPhone(in)
		twice := app.CleanPhone(once)
		if once != twice {
			t.Fatalf("CleanPhone(%q): once=%q twice=%q, want idempotent", in, once, twice)
		}
	}
}
