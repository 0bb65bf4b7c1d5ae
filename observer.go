package abnf

// The Observer capability set is split into one interface per concern so
// that a caller who only needs, say, error reporting can implement a
// single small interface and leave the rest to a no-op adapter such as
// Handlers. ParseRulelist and its fragment siblings accept the full
// Observer, which embeds every concern.

// DocumentObserver brackets an entire rulelist.
type DocumentObserver interface {
	BeginDocument() bool
	EndDocument(success bool) bool
}

// RuleObserver brackets a single rule and signals which kind of
// definition was accepted.
type RuleObserver interface {
	BeginRule(name Span, incremental bool) bool
	EndRule(name Span, incremental bool, success bool) bool
	AcceptBasicRuleDefinition()
	AcceptIncrementalAlternatives()
}

// AlternationObserver brackets an alternation ("/"-separated list of
// concatenations).
type AlternationObserver interface {
	BeginAlternation() bool
	EndAlternation(success bool) bool
}

// ConcatenationObserver brackets a concatenation (space-separated list of
// repetitions).
type ConcatenationObserver interface {
	BeginConcatenation() bool
	EndConcatenation(success bool) bool
}

// RepetitionObserver brackets a single repetition and reports its repeat
// count, if any was given explicitly.
type RepetitionObserver interface {
	BeginRepetition() bool
	EndRepetition(success bool) bool
	Repeat(low, high int) bool
}

// GroupObserver brackets a parenthesized group.
type GroupObserver interface {
	BeginGroup() bool
	EndGroup(success bool) bool
}

// OptionObserver brackets a bracketed option.
type OptionObserver interface {
	BeginOption() bool
	EndOption(success bool) bool
}

// LeafObserver receives the terminal productions: rule references,
// quoted strings, prose escapes, and the runs making up a num-val.
type LeafObserver interface {
	Rulename(name Span) bool
	QuotedString(text Span) bool
	Prose(text Span) bool
	FirstNumber(flag NumberFlag, value Span) bool
	NextNumber(flag NumberFlag, value Span) bool
	LastNumber(flag NumberFlag, value Span) bool
}

// CommentObserver receives comment bodies. It cannot veto: a comment is
// never a structural failure.
type CommentObserver interface {
	Comment(body Span)
}

// ConfigObserver lets an observer bound resource usage. Returning 0 from
// MaxQuotedStringLength disables the limit.
type ConfigObserver interface {
	MaxQuotedStringLength() int
}

// ErrorObserver receives a report for every error in the closed
// ErrorCode enumeration, tied to the cursor nearest the failure.
type ErrorObserver interface {
	Error(code ErrorCode, near Cursor)
}

// Observer is the complete capability set the parser core calls into.
// Boolean-returning callbacks may veto: returning false fails the current
// production as if it hadn't matched, and the failure propagates upward
// through the recursion exactly like an ordinary parse failure. An
// end-callback's reported success is ANDed with its own return value, so
// an observer can force a production to fail even after every sub-part
// succeeded.
type Observer interface {
	DocumentObserver
	RuleObserver
	AlternationObserver
	ConcatenationObserver
	RepetitionObserver
	GroupObserver
	OptionObserver
	LeafObserver
	CommentObserver
	ConfigObserver
	ErrorObserver
}
