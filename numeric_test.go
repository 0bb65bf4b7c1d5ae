package abnf

import (
	"math"
	"strings"
	"testing"
)

func spanOf(s string) Span {
	src := NewSource("test", []byte(s))
	return Span{src.Begin(), src.End()}
}

func TestToDecimal(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		want   int
		wantOK bool
	}{
		{"empty", "", 0, true},
		{"single digit", "1", 1, true},
		{"non-digit", "a", 0, false},
		{"digit then non-digit", "0b", 0, false},
		{"leading zero", "009", 9, true},
		{"typical", "909", 909, true},
		{"two digits", "12", 12, true},
		{"eighteen nines", strings.Repeat("9", 18), 999999999999999999, true},
		{"twenty nines overflow", strings.Repeat("9", 20), math.MaxInt64, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := ToDecimal(spanOf(c.in))
			if got != c.want || ok != c.wantOK {
				t.Errorf("ToDecimal(%q) = (%d, %v), want (%d, %v)", c.in, got, ok, c.want, c.wantOK)
			}
		})
	}
}
