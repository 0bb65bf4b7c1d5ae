// Package rfc3986 parses RFC 3986's own collected ABNF grammar (Appendix
// A) through the parser core, the way the original library's demo
// consumer counts the rules its grammar defines. It exists to exercise
// the full structural core end to end against a real, nontrivial
// document instead of a synthetic one.
package rfc3986

import (
	_ "embed"
	"fmt"

	"github.com/ava12/abnf"
	"github.com/ava12/abnf/astobserver"
	"golang.org/x/text/unicode/norm"
)

//go:embed grammar.abnf
var grammarText []byte

// Grammar parses the embedded RFC 3986 Appendix A grammar and returns the
// resulting rule tree. The embedded text is normalized to NFC first: a
// caller-supplied grammar file may arrive as NFD (composed differently,
// e.g. from a filesystem that decomposes accented rule-name comments),
// and normalizing up front means such a file parses identically to its
// NFC form rather than failing on a byte-for-byte difference that isn't
// visible to a human reader.
func Grammar() (*astobserver.Builder, error) {
	return Parse(grammarText)
}

// Parse normalizes src to NFC and parses it as an ABNF rulelist, in the
// style of Grammar. It is exported so a caller can run the same pipeline
// against its own grammar document.
func Parse(src []byte) (*astobserver.Builder, error) {
	normalized := norm.NFC.Bytes(src)

	source := abnf.NewSource("rfc3986", normalized)
	b := astobserver.NewBuilder()

	ok, at := abnf.ParseRulelist(source.Begin(), source.End(), b, abnf.ParsePolicy{})
	if !ok {
		if len(b.Errors) > 0 {
			return b, b.Errors[0]
		}
		return b, fmt.Errorf("rfc3986: parse failed at line %d col %d", at.Line(), at.Col())
	}
	return b, nil
}

// RuleNames returns the accepted rule names from a parsed grammar, in no
// particular order.
func RuleNames(b *astobserver.Builder) []string {
	names := make([]string, 0, len(b.Rules))
	for name := range b.Rules {
		names = append(names, name)
	}
	return names
}
