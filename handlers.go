package abnf

// Handlers is a nil-safe, struct-of-callbacks adapter satisfying
// Observer. A caller fills in only the fields it cares about; every
// unset boolean callback behaves as if it had returned true (no veto),
// and every unset void callback is a no-op. This mirrors the Hooks
// pattern callers of this parser will recognize from other recursive
// descent tooling: set the handful of fields you need, construct the
// rest as zero values.
type Handlers struct {
	OnBeginDocument func() bool
	OnEndDocument   func(success bool) bool

	OnBeginRule                    func(name Span, incremental bool) bool
	OnEndRule                      func(name Span, incremental bool, success bool) bool
	OnAcceptBasicRuleDefinition    func()
	OnAcceptIncrementalAlternatives func()

	OnBeginAlternation func() bool
	OnEndAlternation   func(success bool) bool

	OnBeginConcatenation func() bool
	OnEndConcatenation   func(success bool) bool

	OnBeginRepetition func() bool
	OnEndRepetition   func(success bool) bool
	OnRepeat          func(low, high int) bool

	OnBeginGroup func() bool
	OnEndGroup   func(success bool) bool

	OnBeginOption func() bool
	OnEndOption   func(success bool) bool

	OnRulename     func(name Span) bool
	OnQuotedString func(text Span) bool
	OnProse        func(text Span) bool
	OnFirstNumber  func(flag NumberFlag, value Span) bool
	OnNextNumber   func(flag NumberFlag, value Span) bool
	OnLastNumber   func(flag NumberFlag, value Span) bool

	OnComment func(body Span)

	// MaxStringLength bounds char-val length; 0 means unlimited.
	MaxStringLength int

	OnError func(code ErrorCode, near Cursor)
}

// NewHandlers returns an empty Handlers ready to have its fields set or
// to be passed to the With* option functions.
func NewHandlers() *Handlers {
	return &Handlers{}
}

// HandlersOption configures a Handlers in place, for callers who prefer
// functional options to struct-literal field assignment.
type HandlersOption func(*Handlers)

// WithMaxStringLength sets the char-val length limit.
func WithMaxStringLength(n int) HandlersOption {
	return func(h *Handlers) { h.MaxStringLength = n }
}

// WithErrorHandler sets the error callback.
func WithErrorHandler(fn func(code ErrorCode, near Cursor)) HandlersOption {
	return func(h *Handlers) { h.OnError = fn }
}

// WithCommentHandler sets the comment callback.
func WithCommentHandler(fn func(body Span)) HandlersOption {
	return func(h *Handlers) { h.OnComment = fn }
}

// WithRuleHandlers sets the begin/end rule callbacks together, since they
// virtually always need to be implemented as a pair.
func WithRuleHandlers(begin func(Span, bool) bool, end func(Span, bool, bool) bool) HandlersOption {
	return func(h *Handlers) {
		h.OnBeginRule = begin
		h.OnEndRule = end
	}
}

// Apply runs every option against h and returns h, for chaining.
func (h *Handlers) Apply(opts ...HandlersOption) *Handlers {
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handlers) BeginDocument() bool {
	if h.OnBeginDocument == nil {
		return true
	}
	return h.OnBeginDocument()
}

func (h *Handlers) EndDocument(success bool) bool {
	if h.OnEndDocument == nil {
		return true
	}
	return h.OnEndDocument(success)
}

func (h *Handlers) BeginRule(name Span, incremental bool) bool {
	if h.OnBeginRule == nil {
		return true
	}
	return h.OnBeginRule(name, incremental)
}

func (h *Handlers) EndRule(name Span, incremental bool, success bool) bool {
	if h.OnEndRule == nil {
		return true
	}
	return h.OnEndRule(name, incremental, success)
}

func (h *Handlers) AcceptBasicRuleDefinition() {
	if h.OnAcceptBasicRuleDefinition != nil {
		h.OnAcceptBasicRuleDefinition()
	}
}

func (h *Handlers) AcceptIncrementalAlternatives() {
	if h.OnAcceptIncrementalAlternatives != nil {
		h.OnAcceptIncrementalAlternatives()
	}
}

func (h *Handlers) BeginAlternation() bool {
	if h.OnBeginAlternation == nil {
		return true
	}
	return h.OnBeginAlternation()
}

func (h *Handlers) EndAlternation(success bool) bool {
	if h.OnEndAlternation == nil {
		return true
	}
	return h.OnEndAlternation(success)
}

func (h *Handlers) BeginConcatenation() bool {
	if h.OnBeginConcatenation == nil {
		return true
	}
	return h.OnBeginConcatenation()
}

func (h *Handlers) EndConcatenation(success bool) bool {
	if h.OnEndConcatenation == nil {
		return true
	}
	return h.OnEndConcatenation(success)
}

func (h *Handlers) BeginRepetition() bool {
	if h.OnBeginRepetition == nil {
		return true
	}
	return h.OnBeginRepetition()
}

func (h *Handlers) EndRepetition(success bool) bool {
	if h.OnEndRepetition == nil {
		return true
	}
	return h.OnEndRepetition(success)
}

func (h *Handlers) Repeat(low, high int) bool {
	if h.OnRepeat == nil {
		return true
	}
	return h.OnRepeat(low, high)
}

func (h *Handlers) BeginGroup() bool {
	if h.OnBeginGroup == nil {
		return true
	}
	return h.OnBeginGroup()
}

func (h *Handlers) EndGroup(success bool) bool {
	if h.OnEndGroup == nil {
		return true
	}
	return h.OnEndGroup(success)
}

func (h *Handlers) BeginOption() bool {
	if h.OnBeginOption == nil {
		return true
	}
	return h.OnBeginOption()
}

func (h *Handlers) EndOption(success bool) bool {
	if h.OnEndOption == nil {
		return true
	}
	return h.OnEndOption(success)
}

func (h *Handlers) Rulename(name Span) bool {
	if h.OnRulename == nil {
		return true
	}
	return h.OnRulename(name)
}

func (h *Handlers) QuotedString(text Span) bool {
	if h.OnQuotedString == nil {
		return true
	}
	return h.OnQuotedString(text)
}

func (h *Handlers) Prose(text Span) bool {
	if h.OnProse == nil {
		return true
	}
	return h.OnProse(text)
}

func (h *Handlers) FirstNumber(flag NumberFlag, value Span) bool {
	if h.OnFirstNumber == nil {
		return true
	}
	return h.OnFirstNumber(flag, value)
}

func (h *Handlers) NextNumber(flag NumberFlag, value Span) bool {
	if h.OnNextNumber == nil {
		return true
	}
	return h.OnNextNumber(flag, value)
}

func (h *Handlers) LastNumber(flag NumberFlag, value Span) bool {
	if h.OnLastNumber == nil {
		return true
	}
	return h.OnLastNumber(flag, value)
}

func (h *Handlers) Comment(body Span) {
	if h.OnComment != nil {
		h.OnComment(body)
	}
}

func (h *Handlers) MaxQuotedStringLength() int {
	return h.MaxStringLength
}

func (h *Handlers) Error(code ErrorCode, near Cursor) {
	if h.OnError != nil {
		h.OnError(code, near)
	}
}

var _ Observer = (*Handlers)(nil)
