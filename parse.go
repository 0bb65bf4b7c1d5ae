package abnf

// ParseRulelist is the main entry point: it recognizes
// rulelist = 1*(rule / (*c-wsp c-nl)) starting at begin and bounded by
// end, reporting every event to obs. It returns whether the document was
// accepted and the cursor after the last rule or blank line consumed. The
// rulelist stops at the first line that is neither, so an accepted
// document may stop short of end; a rejected one leaves the cursor at
// begin, unless obs vetoed EndDocument after a rulelist had matched.
// When end lies before the end of begin's Source, the parse runs over a
// view of that Source cut off at end, and the returned cursor refers to
// that view.
func ParseRulelist(begin, end Cursor, obs Observer, policy ParsePolicy) (bool, Cursor) {
	s := &parseState{obs: obs, policy: policy}
	p := begin
	if p.src != nil && end.src == p.src && end.pos < p.src.Len() {
		p.src = NewSource(p.src.name, p.src.content[:end.pos])
	}
	ok := s.advanceRulelist(&p)
	return ok, p
}

// Parse is a convenience wrapper around ParseRulelist that parses the
// whole of src under the default ParsePolicy.
func Parse(src *Source, obs Observer) (bool, Cursor) {
	return ParseRulelist(src.Begin(), src.End(), obs, ParsePolicy{})
}

// The Parse* fragment entry points below let a caller recognize a single
// production directly, for tooling that only needs part of the grammar
// (for example, validating a single rule body pasted from documentation).
// Each follows the same contract as ParseRulelist: it returns whether the
// production was recognized and the cursor reached.

func ParseRule(begin Cursor, obs Observer, policy ParsePolicy) (bool, Cursor) {
	s := &parseState{obs: obs, policy: policy}
	p := begin
	ok := s.advanceRule(&p)
	return ok, p
}

func ParseElements(begin Cursor, obs Observer, policy ParsePolicy) (bool, Cursor) {
	s := &parseState{obs: obs, policy: policy}
	p := begin
	ok := s.advanceElements(&p)
	return ok, p
}

func ParseAlternation(begin Cursor, obs Observer, policy ParsePolicy) (bool, Cursor) {
	s := &parseState{obs: obs, policy: policy}
	p := begin
	ok := s.advanceAlternation(&p)
	return ok, p
}

func ParseConcatenation(begin Cursor, obs Observer, policy ParsePolicy) (bool, Cursor) {
	s := &parseState{obs: obs, policy: policy}
	p := begin
	ok := s.advanceConcatenation(&p)
	return ok, p
}

func ParseRepetition(begin Cursor, obs Observer, policy ParsePolicy) (bool, Cursor) {
	s := &parseState{obs: obs, policy: policy}
	p := begin
	ok := s.advanceRepetition(&p)
	return ok, p
}

func ParseElement(begin Cursor, obs Observer, policy ParsePolicy) (bool, Cursor) {
	s := &parseState{obs: obs, policy: policy}
	p := begin
	ok := s.advanceElement(&p)
	return ok, p
}

func ParseGroup(begin Cursor, obs Observer, policy ParsePolicy) (bool, Cursor) {
	s := &parseState{obs: obs, policy: policy}
	p := begin
	ok := s.advanceGroup(&p)
	return ok, p
}

func ParseOption(begin Cursor, obs Observer, policy ParsePolicy) (bool, Cursor) {
	s := &parseState{obs: obs, policy: policy}
	p := begin
	ok := s.advanceOption(&p)
	return ok, p
}

func ParseRulename(begin Cursor, obs Observer, policy ParsePolicy) (bool, Cursor) {
	s := &parseState{obs: obs, policy: policy}
	p := begin
	ok := s.advanceRulename(&p)
	return ok, p
}

func ParseQuotedString(begin Cursor, obs Observer, policy ParsePolicy) (bool, Cursor) {
	s := &parseState{obs: obs, policy: policy}
	p := begin
	ok := s.advanceQuotedString(&p)
	return ok, p
}

func ParseProse(begin Cursor, obs Observer, policy ParsePolicy) (bool, Cursor) {
	s := &parseState{obs: obs, policy: policy}
	p := begin
	ok := s.advanceProse(&p)
	return ok, p
}

func ParseNumber(begin Cursor, obs Observer, policy ParsePolicy) (bool, Cursor) {
	s := &parseState{obs: obs, policy: policy}
	p := begin
	ok := s.advanceNumber(&p)
	return ok, p
}

func ParseRepeat(begin Cursor, obs Observer, policy ParsePolicy) (bool, Cursor) {
	s := &parseState{obs: obs, policy: policy}
	p := begin
	ok := s.advanceRepeat(&p)
	return ok, p
}

func ParseComment(begin Cursor, obs Observer, policy ParsePolicy) (bool, Cursor) {
	s := &parseState{obs: obs, policy: policy}
	p := begin
	ok := s.advanceComment(&p)
	return ok, p
}

// ParseDefinedAs recognizes defined-as and additionally reports whether
// it was the incremental-alternatives ("=/") form.
func ParseDefinedAs(begin Cursor, obs Observer, policy ParsePolicy) (incremental, ok bool, at Cursor) {
	s := &parseState{obs: obs, policy: policy}
	p := begin
	incremental, ok = s.advanceDefinedAs(&p)
	return incremental, ok, p
}
