package abnf

// Character-class predicates for the RFC 5234 core rules. Each is a pure
// total function over a single byte; the parser treats input as an 8-bit
// byte sequence, so no multi-byte decoding happens here.

// IsAlpha reports whether b is in [A-Z, a-z] (ALPHA).
func IsAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// IsDigit reports whether b is in [0-9] (DIGIT).
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsHexDig reports whether b is a hexadecimal digit (HEXDIG).
func IsHexDig(b byte) bool {
	return IsDigit(b) || (b >= 'A' && b <= 'F') || (b >= 'a' && b <= 'f')
}

// IsBit reports whether b is '0' or '1' (BIT).
func IsBit(b byte) bool {
	return b == '0' || b == '1'
}

// IsSP reports whether b is the space character (SP, 0x20).
func IsSP(b byte) bool {
	return b == 0x20
}

// IsHTab reports whether b is the horizontal tab character (HTAB, 0x09).
func IsHTab(b byte) bool {
	return b == 0x09
}

// IsWSP reports whether b is SP or HTAB.
func IsWSP(b byte) bool {
	return IsSP(b) || IsHTab(b)
}

// IsCR reports whether b is carriage return (CR, 0x0D).
func IsCR(b byte) bool {
	return b == 0x0D
}

// IsLF reports whether b is line feed (LF, 0x0A).
func IsLF(b byte) bool {
	return b == 0x0A
}

// IsDQuote reports whether b is the double-quote character (DQUOTE, 0x22).
func IsDQuote(b byte) bool {
	return b == 0x22
}

// IsVChar reports whether b is a visible (printing) character, %x21-7E.
func IsVChar(b byte) bool {
	return b >= 0x21 && b <= 0x7E
}

// IsCtl reports whether b is a control character: %x00-1F or %x7F (CTL).
func IsCtl(b byte) bool {
	return b <= 0x1F || b == 0x7F
}

// isProseValueChar reports whether b may appear inside a prose-val
// bracket: %x20-3D / %x3F-7E (visible ASCII and space, minus '>').
func isProseValueChar(b byte) bool {
	return (b >= 0x20 && b <= 0x3D) || (b >= 0x3F && b <= 0x7E)
}

// isQuotedStringChar reports whether b may appear inside a quoted string:
// %x20-21 / %x23-7E (SP and VCHAR, minus DQUOTE).
func isQuotedStringChar(b byte) bool {
	return (b >= 0x20 && b <= 0x21) || (b >= 0x23 && b <= 0x7E)
}
