package rfc3986

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrammarParsesCleanly(t *testing.T) {
	b, err := Grammar()
	require.NoError(t, err)
	require.NotNil(t, b.Document)
	assert.True(t, b.Document.Success)
	assert.Empty(t, b.Errors)
}

func TestGrammarDefinesExpectedRules(t *testing.T) {
	b, err := Grammar()
	require.NoError(t, err)

	for _, name := range []string{
		"uri", "hier-part", "authority", "host", "ipv4address",
		"dec-octet", "segment", "pchar", "pct-encoded", "unreserved",
	} {
		assert.NotEmpty(t, b.Rules[name], "expected rule %q to be defined", name)
	}
}

func TestGrammarRuleCountMatchesDemoExpectation(t *testing.T) {
	b, err := Grammar()
	require.NoError(t, err)

	names := RuleNames(b)
	assert.GreaterOrEqual(t, len(names), 25)
}

func TestParseRejectsMalformedGrammar(t *testing.T) {
	_, err := Parse([]byte("broken = \"unterminated\r\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unbalanced")
}
