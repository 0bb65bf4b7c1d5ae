package abnf

// Source holds the input content shared by every Cursor derived from it.
// It is borrowed for the duration of a parse; the parser never copies it.
type Source struct {
	name    string
	content []byte
}

// NewSource wraps content under name. name is used only for error
// reporting and may be empty.
func NewSource(name string, content []byte) *Source {
	return &Source{name: name, content: content}
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Content() []byte {
	return s.content
}

func (s *Source) Len() int {
	return len(s.content)
}

// Begin returns a Cursor positioned at the start of the source.
func (s *Source) Begin() Cursor {
	return Cursor{src: s, pos: 0, line: 1, col: 1}
}

// End returns a Cursor positioned one past the last byte of the source.
// It is not advanced to; it only serves as the "last" bound of a parse.
func (s *Source) End() Cursor {
	c := s.Begin()
	c.pos = len(s.content)
	return c
}

// Cursor is a forward position into a Source augmented with 1-based line
// and column counters. It is a small value type: advancers copy it freely
// and only write it back to a caller's variable once a production is
// fully recognized (commit-on-success).
type Cursor struct {
	src  *Source
	pos  int
	line int
	col  int
}

// SourceName returns the name of the underlying source, or "" if the
// cursor was not built from a Source.
func (c Cursor) SourceName() string {
	if c.src == nil {
		return ""
	}
	return c.src.Name()
}

// Pos returns the 0-based byte offset into the source.
func (c Cursor) Pos() int {
	return c.pos
}

// Line returns the 1-based line number.
func (c Cursor) Line() int {
	return c.line
}

// Col returns the 1-based column number.
func (c Cursor) Col() int {
	return c.col
}

// Source returns the underlying Source.
func (c Cursor) Source() *Source {
	return c.src
}

// AtEnd reports whether the cursor has consumed every byte of the source.
func (c Cursor) AtEnd() bool {
	return c.src == nil || c.pos >= len(c.src.content)
}

// Byte returns the byte at the cursor and true, or (0, false) at end of
// input.
func (c Cursor) Byte() (byte, bool) {
	if c.AtEnd() {
		return 0, false
	}
	return c.src.content[c.pos], true
}

// Advance moves the cursor past the byte it currently points to. Advancing
// past a line feed increments the line and resets the column to 1; a bare
// carriage return followed immediately by a line feed is treated as one
// terminator, so advancing past the CR of a CRLF pair leaves the line
// unchanged and advancing past the LF performs the increment. Advancing
// past any other byte increments the column. Advance is a no-op at end of
// input.
func (c Cursor) Advance() Cursor {
	b, ok := c.Byte()
	if !ok {
		return c
	}

	n := c
	n.pos++

	switch b {
	case '\n':
		n.line++
		n.col = 1
	case '\r':
		if n.pos < len(c.src.content) && c.src.content[n.pos] == '\n' {
			// Part of a CRLF pair: let the LF perform the line increment.
			n.col++
		} else {
			n.line++
			n.col = 1
		}
	default:
		n.col++
	}

	return n
}

// Span is a contiguous slice of input identified by its begin and end
// cursors. All text-bearing observer events pass a Span rather than a
// copied string.
type Span struct {
	Begin, End Cursor
}

// Text returns the bytes covered by the span. It borrows the underlying
// source's buffer and must not be retained past the parse if the caller
// cannot guarantee the source outlives it.
func (s Span) Text() []byte {
	if s.Begin.src == nil {
		return nil
	}
	return s.Begin.src.content[s.Begin.pos:s.End.pos]
}

// String returns the span's text converted to a string.
func (s Span) String() string {
	return string(s.Text())
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool {
	return s.Begin.pos == s.End.pos
}

// emptyAt returns a zero-length span positioned at c, used for the
// "no more elements" terminator events num-val emits after a sequence or
// lone run.
func emptyAt(c Cursor) Span {
	return Span{c, c}
}
