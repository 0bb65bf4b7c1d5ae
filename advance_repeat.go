package abnf

// advanceRepeat recognizes repeat = 1*DIGIT / (*DIGIT "*" *DIGIT), the
// three shapes described in §4.4:
//
//	"N"    -> exact bound (N, N)
//	"N*M"  -> (N, M)
//	"N*"   -> (N, Unbounded); "*M" -> (0, M); "*" -> (0, Unbounded)
//
// A repeat is optional wherever it appears, so failing to recognize any
// of the three shapes (no leading digit and no "*") is not an error: it
// just means repetition has no explicit repeat. A malformed range —
// overflow in either bound, or low > high — is reported as
// ErrBadRepeatRange and fails the advancer.
func (s *parseState) advanceRepeat(pos *Cursor) bool {
	p := *pos

	var lowSpan, highSpan Span
	haveStar := false

	digitsStart := p
	advanceRun(&p, IsDigit)
	lowSpan = Span{digitsStart, p}

	if b, ok := p.Byte(); ok && b == '*' {
		haveStar = true
		p = p.Advance()
		highStart := p
		advanceRun(&p, IsDigit)
		highSpan = Span{highStart, p}
	} else {
		highSpan = lowSpan
	}

	if lowSpan.Empty() && !haveStar {
		// Neither a digit run nor "*" was seen at all: no repeat here.
		return false
	}

	low, lowOK := ToDecimal(lowSpan)
	if !lowOK {
		s.reportError(ErrBadRepeatRange, lowSpan.Begin)
		return false
	}

	var high int
	if haveStar && highSpan.Empty() {
		high = Unbounded
	} else {
		var highOK bool
		high, highOK = ToDecimal(highSpan)
		if !highOK {
			s.reportError(ErrBadRepeatRange, highSpan.Begin)
			return false
		}
	}

	if low > high {
		s.reportError(ErrBadRepeatRange, lowSpan.Begin)
		return false
	}

	if !s.obs.Repeat(low, high) {
		return false
	}

	*pos = p
	return true
}
