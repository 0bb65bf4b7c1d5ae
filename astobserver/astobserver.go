// Package astobserver is a reference abnf.Observer implementation that
// builds a parse tree instead of reacting to events inline. It exists
// because the parser core itself never builds one (see the core's
// Non-goals): a caller that wants a tree gets Builder for free instead
// of writing its own.
//
// The tree shape is stylistically grounded in the sibling-list Node
// design from the teacher's tree package, adapted from doubly-linked
// siblings over lexer tokens to a plain child slice over abnf.Span
// events, since nothing here needs in-place tree surgery (Detach,
// Replace, ...) the way a language workbench's AST does.
package astobserver

import (
	"fmt"

	"github.com/ava12/abnf"
)

// Kind identifies which production a Node came from.
type Kind string

const (
	KindDocument      Kind = "document"
	KindRule          Kind = "rule"
	KindAlternation   Kind = "alternation"
	KindConcatenation Kind = "concatenation"
	KindRepetition    Kind = "repetition"
	KindGroup         Kind = "group"
	KindOption        Kind = "option"
	KindRulename      Kind = "rulename"
	KindQuotedString  Kind = "quoted_string"
	KindProse         Kind = "prose"
	KindNumber        Kind = "number"
	KindComment       Kind = "comment"
)

// Node is one tree node. Leaf kinds (Rulename, QuotedString, Prose,
// Number, Comment) never have Children; the rest accumulate children as
// the builder descends and ascends through begin/end events.
type Node struct {
	Kind     Kind
	Span     abnf.Span
	Success  bool
	Children []*Node

	// Rule-specific.
	Name        string
	Incremental bool
	Accepted    bool

	// Rulename/QuotedString/Prose/Comment text.
	Text string

	// Repetition-specific; nil if the repetition had no explicit repeat.
	Repeat *abnf.Range

	// Number-specific.
	NumberFlag abnf.NumberFlag
	Runs       []string
}

// Builder implements abnf.Observer, accumulating a Node tree as the
// parser descends. The zero value is not usable; construct with
// NewBuilder.
type Builder struct {
	stack       []*Node
	curNumber   *Node
	maxStrLen   int
	caseSensRul bool

	// Document is the root node once a parse completes, whether accepted
	// or not — check Document.Success.
	Document *Node

	// Rules indexes every accepted rule definition by name, keyed
	// case-insensitively unless CaseSensitiveRulenames was set, per RFC
	// 5234's default rulename equality. A name defined with "=/" appends
	// to the same slice as its base definition.
	Rules map[string][]*Node

	// Errors collects every error the core reported, converted to a Go
	// error via abnf.ErrorFromCursor in source order.
	Errors []error
}

// Option configures a Builder at construction time.
type Option func(*Builder)

// WithMaxQuotedStringLength bounds char-val length; 0 (the default)
// leaves it unlimited.
func WithMaxQuotedStringLength(n int) Option {
	return func(b *Builder) { b.maxStrLen = n }
}

// WithCaseSensitiveRulenames makes Rules key rule names verbatim instead
// of case-folded, matching ParsePolicy.CaseSensitiveRulenames.
func WithCaseSensitiveRulenames() Option {
	return func(b *Builder) { b.caseSensRul = true }
}

// NewBuilder returns a Builder ready to be passed to abnf.ParseRulelist.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{Rules: make(map[string][]*Node)}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Builder) push(n *Node) {
	b.stack = append(b.stack, n)
}

func (b *Builder) pop() *Node {
	n := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return n
}

func (b *Builder) top() *Node {
	return b.stack[len(b.stack)-1]
}

func (b *Builder) appendChild(n *Node) {
	if len(b.stack) == 0 {
		return
	}
	top := b.top()
	top.Children = append(top.Children, n)
}

func (b *Builder) ruleKey(name string) string {
	if b.caseSensRul {
		return name
	}
	return lowerASCII(name)
}

func lowerASCII(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}

func (b *Builder) BeginDocument() bool {
	b.push(&Node{Kind: KindDocument})
	return true
}

func (b *Builder) EndDocument(success bool) bool {
	n := b.pop()
	n.Success = success
	b.Document = n
	return true
}

func (b *Builder) BeginRule(name abnf.Span, incremental bool) bool {
	b.push(&Node{Kind: KindRule, Span: name, Name: name.String(), Incremental: incremental})
	return true
}

func (b *Builder) EndRule(name abnf.Span, incremental bool, success bool) bool {
	n := b.pop()
	n.Success = success
	b.appendChild(n)
	if success {
		key := b.ruleKey(n.Name)
		b.Rules[key] = append(b.Rules[key], n)
	}
	return true
}

func (b *Builder) AcceptBasicRuleDefinition() {
	if len(b.stack) > 0 {
		b.top().Accepted = true
	}
}

func (b *Builder) AcceptIncrementalAlternatives() {
	if len(b.stack) > 0 {
		b.top().Accepted = true
	}
}

func (b *Builder) BeginAlternation() bool {
	b.push(&Node{Kind: KindAlternation})
	return true
}

func (b *Builder) EndAlternation(success bool) bool {
	n := b.pop()
	n.Success = success
	b.appendChild(n)
	return true
}

func (b *Builder) BeginConcatenation() bool {
	b.push(&Node{Kind: KindConcatenation})
	return true
}

func (b *Builder) EndConcatenation(success bool) bool {
	n := b.pop()
	n.Success = success
	b.appendChild(n)
	return true
}

func (b *Builder) BeginRepetition() bool {
	b.push(&Node{Kind: KindRepetition})
	return true
}

func (b *Builder) EndRepetition(success bool) bool {
	n := b.pop()
	n.Success = success
	b.appendChild(n)
	return true
}

func (b *Builder) Repeat(low, high int) bool {
	if len(b.stack) > 0 {
		b.top().Repeat = &abnf.Range{Low: low, High: high}
	}
	return true
}

func (b *Builder) BeginGroup() bool {
	b.push(&Node{Kind: KindGroup})
	return true
}

func (b *Builder) EndGroup(success bool) bool {
	n := b.pop()
	n.Success = success
	b.appendChild(n)
	return true
}

func (b *Builder) BeginOption() bool {
	b.push(&Node{Kind: KindOption})
	return true
}

func (b *Builder) EndOption(success bool) bool {
	n := b.pop()
	n.Success = success
	b.appendChild(n)
	return true
}

func (b *Builder) Rulename(name abnf.Span) bool {
	b.appendChild(&Node{Kind: KindRulename, Span: name, Text: name.String(), Success: true})
	return true
}

func (b *Builder) QuotedString(text abnf.Span) bool {
	b.appendChild(&Node{Kind: KindQuotedString, Span: text, Text: text.String(), Success: true})
	return true
}

func (b *Builder) Prose(text abnf.Span) bool {
	b.appendChild(&Node{Kind: KindProse, Span: text, Text: text.String(), Success: true})
	return true
}

func (b *Builder) FirstNumber(flag abnf.NumberFlag, value abnf.Span) bool {
	b.curNumber = &Node{Kind: KindNumber, Span: value, NumberFlag: flag, Success: true}
	b.curNumber.Runs = append(b.curNumber.Runs, value.String())
	return true
}

func (b *Builder) NextNumber(flag abnf.NumberFlag, value abnf.Span) bool {
	if b.curNumber == nil {
		return true
	}
	b.curNumber.Runs = append(b.curNumber.Runs, value.String())
	return true
}

func (b *Builder) LastNumber(flag abnf.NumberFlag, value abnf.Span) bool {
	if b.curNumber == nil {
		return true
	}
	if !value.Empty() {
		b.curNumber.Runs = append(b.curNumber.Runs, value.String())
	}
	b.appendChild(b.curNumber)
	b.curNumber = nil
	return true
}

func (b *Builder) Comment(body abnf.Span) {
	b.appendChild(&Node{Kind: KindComment, Span: body, Text: body.String(), Success: true})
}

func (b *Builder) MaxQuotedStringLength() int {
	return b.maxStrLen
}

func (b *Builder) Error(code abnf.ErrorCode, near abnf.Cursor) {
	b.Errors = append(b.Errors, abnf.ErrorFromCursor(code, near))
}

var _ abnf.Observer = (*Builder)(nil)

// String renders n for debugging, indenting children by depth.
func (n *Node) String() string {
	var buf []byte
	n.write(&buf, 0)
	return string(buf)
}

func (n *Node) write(buf *[]byte, depth int) {
	for i := 0; i < depth; i++ {
		*buf = append(*buf, ' ', ' ')
	}
	line := string(n.Kind)
	switch n.Kind {
	case KindRule:
		line = fmt.Sprintf("rule %q incremental=%v accepted=%v", n.Name, n.Incremental, n.Accepted)
	case KindRulename:
		line = fmt.Sprintf("rulename %q", n.Text)
	case KindQuotedString:
		line = fmt.Sprintf("quoted_string %q", n.Text)
	case KindProse:
		line = fmt.Sprintf("prose %q", n.Text)
	case KindComment:
		line = fmt.Sprintf("comment %q", n.Text)
	case KindNumber:
		line = fmt.Sprintf("number %s %v", n.NumberFlag, n.Runs)
	case KindRepetition:
		if n.Repeat != nil {
			line = fmt.Sprintf("repetition repeat=(%d,%d)", n.Repeat.Low, n.Repeat.High)
		}
	}
	*buf = append(*buf, line...)
	*buf = append(*buf, '\n')
	for _, c := range n.Children {
		c.write(buf, depth+1)
	}
}
