package abnf

// parseState threads the observer and the active parse policy through the
// mutually-recursive advancers. It carries no cursor: every advancer gets
// its own by value or by pointer argument, so a parseState is safe to
// reuse (or even share) across concurrent parses of disjoint input.
type parseState struct {
	obs    Observer
	policy ParsePolicy
}

func (s *parseState) reportError(code ErrorCode, near Cursor) {
	s.obs.Error(code, near)
}
