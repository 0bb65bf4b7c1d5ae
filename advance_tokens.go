package abnf

// Low-level token advancers: runs of a single character class, newline,
// linear whitespace, and comments. None of these consult the observer
// except through the parseState-threading advancers further up the call
// chain (comment is the one exception, since it emits a leaf event
// directly).

// advanceRun advances pos past a maximal run of bytes matching pred,
// returning the number of bytes consumed. It never fails on its own; the
// call sites that require at least one match (1*DIGIT, 1*HEXDIG, 1*BIT)
// check the count themselves.
func advanceRun(pos *Cursor, pred func(byte) bool) int {
	n := 0
	for {
		b, ok := pos.Byte()
		if !ok || !pred(b) {
			break
		}
		*pos = pos.Advance()
		n++
	}
	return n
}

// advanceDigits advances past 1*DIGIT.
func advanceDigits(pos *Cursor) bool {
	start := *pos
	if advanceRun(pos, IsDigit) == 0 {
		*pos = start
		return false
	}
	return true
}

// advanceHexDigits advances past 1*HEXDIG.
func advanceHexDigits(pos *Cursor) bool {
	start := *pos
	if advanceRun(pos, IsHexDig) == 0 {
		*pos = start
		return false
	}
	return true
}

// advanceBits advances past 1*BIT.
func advanceBits(pos *Cursor) bool {
	start := *pos
	if advanceRun(pos, IsBit) == 0 {
		*pos = start
		return false
	}
	return true
}

// advanceNewline advances past a line terminator. Under the default
// lenient policy it accepts CRLF, a bare CR, or a bare LF. Under
// ParsePolicy.StrictNewlines it accepts only CRLF, per RFC 5234's literal
// grammar.
func (s *parseState) advanceNewline(pos *Cursor) bool {
	p := *pos
	b, ok := p.Byte()
	if !ok {
		return false
	}

	if b == '\r' {
		p = p.Advance()
		if b2, ok2 := p.Byte(); ok2 && b2 == '\n' {
			p = p.Advance()
			*pos = p
			return true
		}
		if s.policy.StrictNewlines {
			return false
		}
		*pos = p
		return true
	}

	if b == '\n' {
		if s.policy.StrictNewlines {
			return false
		}
		*pos = p.Advance()
		return true
	}

	return false
}

// advanceComment advances past ";" *(not CR nor LF) newline. The comment
// body — the bytes between ";" and the terminator — is reported via
// Observer.Comment. This relaxes RFC 5234's stricter
// ";" *(WSP / VCHAR) CRLF to accept arbitrary non-newline bytes in the
// body and the same lenient set of terminators as advanceNewline.
func (s *parseState) advanceComment(pos *Cursor) bool {
	p := *pos
	b, ok := p.Byte()
	if !ok || b != ';' {
		return false
	}
	p = p.Advance()

	bodyStart := p
	for {
		b, ok := p.Byte()
		if !ok || IsCR(b) || IsLF(b) {
			break
		}
		p = p.Advance()
	}
	body := Span{bodyStart, p}

	if !s.advanceNewline(&p) {
		return false
	}

	s.obs.Comment(body)
	*pos = p
	return true
}

// advanceCommentNewline advances past c-nl: a comment or a bare newline.
func (s *parseState) advanceCommentNewline(pos *Cursor) bool {
	return s.advanceComment(pos) || s.advanceNewline(pos)
}

// advanceCommentWhitespace advances past c-wsp: one WSP, or a c-nl
// followed by one WSP.
func (s *parseState) advanceCommentWhitespace(pos *Cursor) bool {
	p := *pos
	if b, ok := p.Byte(); ok && IsWSP(b) {
		*pos = p.Advance()
		return true
	}

	p = *pos
	if !s.advanceCommentNewline(&p) {
		return false
	}
	if b, ok := p.Byte(); !ok || !IsWSP(b) {
		return false
	}
	*pos = p.Advance()
	return true
}

// skipCommentWhitespace advances past *c-wsp, always succeeding.
func (s *parseState) skipCommentWhitespace(pos *Cursor) {
	for s.advanceCommentWhitespace(pos) {
	}
}

// advanceLinearWhitespace advances past a single WSP. Unlike RFC 5234's
// LWSP it does not consume a c-nl followed by WSP; blank and comment
// lines after a rule are left to advanceRulelist.
func (s *parseState) advanceLinearWhitespace(pos *Cursor) bool {
	p := *pos
	if b, ok := p.Byte(); ok && IsWSP(b) {
		*pos = p.Advance()
		return true
	}
	return false
}
