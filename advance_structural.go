package abnf

// This file holds the mutually-recursive core of the grammar: element,
// repetition, concatenation, alternation, group, option, defined-as,
// elements, rule, and rulelist. Each advancer follows the same protocol
// described in §4.4: attempt to recognize; on success, commit the cursor
// and emit events; on failure, roll the cursor back to its value on
// entry and emit no events beyond an already-opened begin/end pair
// (whose end must then report success=false) or a reported error.

// advanceElement recognizes
// element = rulename / group / option / num-val / char-val / prose-val,
// trying each alternative in order and committing to the first match.
func (s *parseState) advanceElement(pos *Cursor) bool {
	if pos.AtEnd() {
		return false
	}

	return s.advanceRulename(pos) ||
		s.advanceGroup(pos) ||
		s.advanceOption(pos) ||
		s.advanceNumber(pos) ||
		s.advanceQuotedString(pos) ||
		s.advanceProse(pos)
}

// advanceRepetition recognizes repetition = [repeat] element.
func (s *parseState) advanceRepetition(pos *Cursor) bool {
	if pos.AtEnd() {
		return false
	}

	success := s.obs.BeginRepetition()
	p := *pos
	s.advanceRepeat(&p) // optional; failure here just means no repeat
	success = success && s.advanceElement(&p)
	success = s.obs.EndRepetition(success) && success

	if !success {
		return false
	}
	*pos = p
	return true
}

// advanceConcatenation recognizes
// concatenation = repetition *(1*c-wsp repetition).
func (s *parseState) advanceConcatenation(pos *Cursor) bool {
	if pos.AtEnd() {
		return false
	}

	success := s.obs.BeginConcatenation()
	p := *pos
	success = success && s.advanceRepetition(&p)

	success = success && applyRange(&p, Range{0, Unbounded}, func(cur *Cursor) bool {
		q := *cur
		if !applyRange(&q, Range{1, Unbounded}, func(c *Cursor) bool {
			return s.advanceCommentWhitespace(c)
		}) {
			return false
		}
		if !s.advanceRepetition(&q) {
			return false
		}
		*cur = q
		return true
	})

	success = s.obs.EndConcatenation(success) && success
	if !success {
		return false
	}
	*pos = p
	return true
}

// advanceAlternation recognizes
// alternation = concatenation *(*c-wsp "/" *c-wsp concatenation).
func (s *parseState) advanceAlternation(pos *Cursor) bool {
	if pos.AtEnd() {
		return false
	}

	success := s.obs.BeginAlternation()
	p := *pos
	success = success && s.advanceConcatenation(&p)

	success = success && applyRange(&p, Range{0, Unbounded}, func(cur *Cursor) bool {
		q := *cur
		s.skipCommentWhitespace(&q)

		b, ok := q.Byte()
		if !ok || b != '/' {
			return false
		}
		q = q.Advance()

		s.skipCommentWhitespace(&q)

		if !s.advanceConcatenation(&q) {
			return false
		}
		*cur = q
		return true
	})

	success = s.obs.EndAlternation(success) && success
	if !success {
		return false
	}
	*pos = p
	return true
}

// advanceGroupOrOption implements the shared shape of group and option:
// an opening bracket, *c-wsp, an alternation, *c-wsp, and a matching
// closing bracket.
func (s *parseState) advanceGroupOrOption(pos *Cursor, open, close byte) bool {
	p := *pos
	b, ok := p.Byte()
	if !ok || b != open {
		return false
	}
	p = p.Advance()

	s.skipCommentWhitespace(&p)

	if !s.advanceAlternation(&p) {
		return false
	}

	s.skipCommentWhitespace(&p)

	b, ok = p.Byte()
	if !ok || b != close {
		return false
	}
	p = p.Advance()

	*pos = p
	return true
}

// advanceGroup recognizes group = "(" *c-wsp alternation *c-wsp ")".
func (s *parseState) advanceGroup(pos *Cursor) bool {
	if b, ok := pos.Byte(); !ok || b != '(' {
		return false
	}

	success := s.obs.BeginGroup()
	p := *pos
	success = success && s.advanceGroupOrOption(&p, '(', ')')
	success = s.obs.EndGroup(success) && success

	if !success {
		return false
	}
	*pos = p
	return true
}

// advanceOption recognizes option = "[" *c-wsp alternation *c-wsp "]".
func (s *parseState) advanceOption(pos *Cursor) bool {
	if b, ok := pos.Byte(); !ok || b != '[' {
		return false
	}

	success := s.obs.BeginOption()
	p := *pos
	success = success && s.advanceGroupOrOption(&p, '[', ']')
	success = s.obs.EndOption(success) && success

	if !success {
		return false
	}
	*pos = p
	return true
}

// advanceDefinedAs recognizes defined-as = *c-wsp ("=" / "=/") *c-wsp and
// reports whether it saw the incremental-alternatives form.
func (s *parseState) advanceDefinedAs(pos *Cursor) (incremental bool, ok bool) {
	p := *pos
	s.skipCommentWhitespace(&p)

	b, has := p.Byte()
	if !has || b != '=' {
		return false, false
	}
	p = p.Advance()

	if b, has = p.Byte(); has && b == '/' {
		p = p.Advance()
		incremental = true
	}

	s.skipCommentWhitespace(&p)

	*pos = p
	return incremental, true
}

// advanceElements recognizes elements = alternation *c-wsp.
func (s *parseState) advanceElements(pos *Cursor) bool {
	p := *pos
	if !s.advanceAlternation(&p) {
		return false
	}
	s.skipCommentWhitespace(&p)
	*pos = p
	return true
}

// advanceRule recognizes rule = rulename defined-as elements c-nl *LWSP.
// See §4.5 for the begin/end/accept state machine this implements.
func (s *parseState) advanceRule(pos *Cursor) bool {
	p := *pos
	name, ok := advanceRulenameSpan(&p)
	if !ok {
		return false
	}

	incremental, ok := s.advanceDefinedAs(&p)
	if !ok {
		return false
	}

	success := s.obs.BeginRule(name, incremental)
	success = success && s.advanceElements(&p)

	if success && !p.AtEnd() {
		success = s.advanceCommentNewline(&p)
	}

	for success && s.advanceLinearWhitespace(&p) {
	}

	if success {
		if incremental {
			s.obs.AcceptIncrementalAlternatives()
		} else {
			s.obs.AcceptBasicRuleDefinition()
		}
	}

	success = s.obs.EndRule(name, incremental, success) && success

	if !success {
		return false
	}
	*pos = p
	return true
}

// advanceRulelist recognizes rulelist = 1*(rule / (*c-wsp c-nl)).
func (s *parseState) advanceRulelist(pos *Cursor) bool {
	success := s.obs.BeginDocument()

	success = success && applyRange(pos, Range{1, Unbounded}, func(cur *Cursor) bool {
		p := *cur
		if s.advanceRule(&p) {
			*cur = p
			return true
		}

		s.skipCommentWhitespace(&p)
		if !p.AtEnd() {
			if !s.advanceCommentNewline(&p) {
				return false
			}
		}
		*cur = p
		return true
	})

	success = s.obs.EndDocument(success) && success
	return success
}
