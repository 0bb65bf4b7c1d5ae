package abnf

import "testing"

func TestCharClassPredicates(t *testing.T) {
	cases := []struct {
		name string
		pred func(byte) bool
		yes  []byte
		no   []byte
	}{
		{"IsAlpha", IsAlpha, []byte("AZaz"), []byte("09 -")},
		{"IsDigit", IsDigit, []byte("0159"), []byte("ABab ")},
		{"IsHexDig", IsHexDig, []byte("09AFaf"), []byte("Gg "), },
		{"IsBit", IsBit, []byte("01"), []byte("29ab")},
		{"IsSP", IsSP, []byte(" "), []byte("\t\r\nA")},
		{"IsHTab", IsHTab, []byte("\t"), []byte(" \r\nA")},
		{"IsWSP", IsWSP, []byte(" \t"), []byte("\r\nA")},
		{"IsCR", IsCR, []byte("\r"), []byte("\n A")},
		{"IsLF", IsLF, []byte("\n"), []byte("\r A")},
		{"IsDQuote", IsDQuote, []byte("\""), []byte("'A ")},
		{"IsVChar", IsVChar, []byte("!~A0"), []byte(" \t\r\n")},
		{"IsCtl", IsCtl, []byte("\x00\x1f\x7f"), []byte("A 09")},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for _, b := range c.yes {
				if !c.pred(b) {
					t.Errorf("%s(%q) = false, want true", c.name, b)
				}
			}
			for _, b := range c.no {
				if c.pred(b) {
					t.Errorf("%s(%q) = true, want false", c.name, b)
				}
			}
		})
	}
}

func TestProseAndQuotedStringCharPredicates(t *testing.T) {
	for b := 0; b < 256; b++ {
		byt := byte(b)
		wantProse := (byt >= 0x20 && byt <= 0x3D) || (byt >= 0x3F && byt <= 0x7E)
		if got := isProseValueChar(byt); got != wantProse {
			t.Errorf("isProseValueChar(0x%02x) = %v, want %v", byt, got, wantProse)
		}

		wantQuoted := (byt >= 0x20 && byt <= 0x21) || (byt >= 0x23 && byt <= 0x7E)
		if got := isQuotedStringChar(byt); got != wantQuoted {
			t.Errorf("isQuotedStringChar(0x%02x) = %v, want %v", byt, got, wantQuoted)
		}
	}
}
