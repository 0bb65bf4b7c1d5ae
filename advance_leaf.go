package abnf

// advanceProse recognizes prose-val = "<" *(%x20-3D / %x3F-7E) ">".
// Prose is a last-resort production: an unterminated bracket fails
// silently, with no error reported, per §4.4.
func (s *parseState) advanceProse(pos *Cursor) bool {
	p := *pos
	b, ok := p.Byte()
	if !ok || b != '<' {
		return false
	}
	p = p.Advance()

	textStart := p
	advanceRun(&p, isProseValueChar)
	textEnd := p

	b, ok = p.Byte()
	if !ok || b != '>' {
		return false
	}
	p = p.Advance()

	if !s.obs.Prose(Span{textStart, textEnd}) {
		return false
	}

	*pos = p
	return true
}

// numValRadix bundles the run-advancer and digit predicate selected by
// the "b"/"d"/"x" selector byte of a num-val.
type numValRadix struct {
	flag    NumberFlag
	advance func(*Cursor) bool
	isDigit func(byte) bool
}

func selectRadix(b byte) (numValRadix, bool) {
	switch b {
	case 'x':
		return numValRadix{NumberHexadecimal, advanceHexDigits, IsHexDig}, true
	case 'd':
		return numValRadix{NumberDecimal, advanceDigits, IsDigit}, true
	case 'b':
		return numValRadix{NumberBinary, advanceBits, IsBit}, true
	default:
		return numValRadix{}, false
	}
}

// advanceNumber recognizes num-val = "%" ("b"|"d"|"x") value-sequence, per
// §4.4. It emits FirstNumber unconditionally on a successful first run,
// then either NextNumber/LastNumber for a "."-separated sequence,
// LastNumber for a "-"-separated range, or an empty-span LastNumber for a
// lone run.
func (s *parseState) advanceNumber(pos *Cursor) bool {
	p := *pos
	b, ok := p.Byte()
	if !ok || b != '%' {
		return false
	}
	p = p.Advance()

	b, ok = p.Byte()
	if !ok {
		return false
	}
	radix, ok := selectRadix(b)
	if !ok {
		return false
	}
	p = p.Advance()

	firstStart := p
	if !radix.advance(&p) {
		return false
	}
	success := s.obs.FirstNumber(radix.flag, Span{firstStart, p})

	b, ok = p.Byte()
	switch {
	case ok && b == '-':
		p = p.Advance()
		nb, ok := p.Byte()
		if !ok || !radix.isDigit(nb) {
			return false
		}
		rangeStart := p
		if !radix.advance(&p) {
			return false
		}
		success = success && s.obs.LastNumber(radix.flag, Span{rangeStart, p})

	case ok && b == '.':
		for {
			b, ok = p.Byte()
			if !ok || b != '.' {
				break
			}
			p = p.Advance()
			nb, ok := p.Byte()
			if !ok || !radix.isDigit(nb) {
				return false
			}
			runStart := p
			if !radix.advance(&p) {
				return false
			}
			success = success && s.obs.NextNumber(radix.flag, Span{runStart, p})
		}
		success = success && s.obs.LastNumber(radix.flag, emptyAt(p))

	default:
		success = success && s.obs.LastNumber(radix.flag, emptyAt(p))
	}

	if !success {
		return false
	}
	*pos = p
	return true
}

// advanceQuotedString recognizes char-val = DQUOTE *(%x20-21 / %x23-7E)
// DQUOTE, per §4.4. Errors are reported through the observer and the
// advancer fails without partially consuming the cursor.
func (s *parseState) advanceQuotedString(pos *Cursor) bool {
	p := *pos
	b, ok := p.Byte()
	if !ok || !IsDQuote(b) {
		return false
	}
	p = p.Advance()

	textStart := p
	maxLen := s.obs.MaxQuotedStringLength()
	if maxLen <= 0 {
		maxLen = int(^uint(0) >> 1)
	}

	length := 0
	for {
		b, ok = p.Byte()
		if !ok || IsCR(b) || IsLF(b) {
			// End of input, or a bare line terminator: a quoted string
			// cannot span lines, so either way the quote was never
			// closed on this line.
			s.reportError(ErrUnbalancedQuote, textStart)
			return false
		}
		if IsDQuote(b) {
			break
		}
		if !isQuotedStringChar(b) {
			s.reportError(ErrBadQuotedChar, p)
			return false
		}
		if length == maxLen {
			s.reportError(ErrMaxLengthExceeded, textStart)
			return false
		}
		length++
		p = p.Advance()
	}

	textEnd := p
	p = p.Advance() // closing DQUOTE

	if !s.obs.QuotedString(Span{textStart, textEnd}) {
		return false
	}

	*pos = p
	return true
}

// advanceRulenameSpan recognizes rulename = ALPHA *(ALPHA / DIGIT / "-")
// and reports the matched span without invoking the observer, for reuse
// by both advanceRulename (element position) and advanceRule (which
// needs the name before deciding whether to fire BeginRule).
func advanceRulenameSpan(pos *Cursor) (Span, bool) {
	p := *pos
	b, ok := p.Byte()
	if !ok || !IsAlpha(b) {
		return Span{}, false
	}
	start := p
	p = p.Advance()

	for {
		b, ok = p.Byte()
		if !ok || !(IsAlpha(b) || IsDigit(b) || b == '-') {
			break
		}
		p = p.Advance()
	}

	*pos = p
	return Span{start, p}, true
}

// advanceRulename recognizes rulename in element position and reports it
// through Observer.Rulename.
func (s *parseState) advanceRulename(pos *Cursor) bool {
	p := *pos
	name, ok := advanceRulenameSpan(&p)
	if !ok {
		return false
	}
	if !s.obs.Rulename(name) {
		return false
	}
	*pos = p
	return true
}
