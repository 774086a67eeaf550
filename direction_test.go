package rtltext

import (
	"errors"
	"testing"
)

func TestDirection_String(t *testing.T) {
	if LTR.String() != "ltr" {
		t.Errorf("LTR.String() = %q, want ltr", LTR.String())
	}
	if RTL.String() != "rtl" {
		t.Errorf("RTL.String() = %q, want rtl", RTL.String())
	}
	if Direction(7).String() != "unknown" {
		t.Errorf("Direction(7).String() = %q, want unknown", Direction(7).String())
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"ltr", LTR, false},
		{"rtl", RTL, false},
		{"RTL", RTL, false},
		{" Ltr ", LTR, false},
		{"", LTR, true},
		{"auto", LTR, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDirection) {
					t.Errorf("ParseDirection(%q) error = %v, want ErrInvalidDirection", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDirection(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseDirection(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestRule_String(t *testing.T) {
	rules := map[Rule]string{
		RuleEmpty:     "empty",
		RuleNoRTL:     "no-rtl",
		RuleNoContent: "no-content",
		RuleRatio:     "ratio",
		Rule(42):      "unknown",
	}
	for r, want := range rules {
		if r.String() != want {
			t.Errorf("Rule(%d).String() = %q, want %q", int(r), r.String(), want)
		}
	}
}
