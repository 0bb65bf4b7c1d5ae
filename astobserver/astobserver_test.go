package astobserver

import (
	"testing"

	"github.com/ava12/abnf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderBasicRule(t *testing.T) {
	src := abnf.NewSource("test", []byte("rule = \"x\"\r\n"))
	b := NewBuilder()

	ok, _ := abnf.ParseRulelist(src.Begin(), src.End(), b, abnf.ParsePolicy{})
	require.True(t, ok)
	require.NotNil(t, b.Document)
	assert.True(t, b.Document.Success)
	assert.Empty(t, b.Errors)

	defs := b.Rules["rule"]
	require.Len(t, defs, 1)
	rule := defs[0]
	assert.Equal(t, "rule", rule.Name)
	assert.False(t, rule.Incremental)
	assert.True(t, rule.Accepted)

	require.Len(t, rule.Children, 1)
	alt := rule.Children[0]
	assert.Equal(t, KindAlternation, alt.Kind)
	require.Len(t, alt.Children, 1)
	concat := alt.Children[0]
	require.Len(t, concat.Children, 1)
	rep := concat.Children[0]
	assert.Equal(t, KindRepetition, rep.Kind)
	assert.Nil(t, rep.Repeat)
	require.Len(t, rep.Children, 1)
	assert.Equal(t, KindQuotedString, rep.Children[0].Kind)
	assert.Equal(t, "x", rep.Children[0].Text)
}

func TestBuilderIncrementalAlternativesShareRuleKey(t *testing.T) {
	src := abnf.NewSource("test", []byte("r = \"a\"\r\nr =/ \"b\"\r\n"))
	b := NewBuilder()

	ok, _ := abnf.ParseRulelist(src.Begin(), src.End(), b, abnf.ParsePolicy{})
	require.True(t, ok)

	defs := b.Rules["r"]
	require.Len(t, defs, 2)
	assert.False(t, defs[0].Incremental)
	assert.True(t, defs[1].Incremental)
}

func TestBuilderRuleKeyIsCaseFoldedByDefault(t *testing.T) {
	src := abnf.NewSource("test", []byte("Rule = \"x\"\r\n"))
	b := NewBuilder()

	ok, _ := abnf.ParseRulelist(src.Begin(), src.End(), b, abnf.ParsePolicy{})
	require.True(t, ok)
	assert.Len(t, b.Rules["rule"], 1)
	assert.Nil(t, b.Rules["Rule"])
}

func TestBuilderCaseSensitiveRulenamesOption(t *testing.T) {
	src := abnf.NewSource("test", []byte("Rule = \"x\"\r\n"))
	b := NewBuilder(WithCaseSensitiveRulenames())

	ok, _ := abnf.ParseRulelist(src.Begin(), src.End(), b, abnf.ParsePolicy{})
	require.True(t, ok)
	assert.Len(t, b.Rules["Rule"], 1)
	assert.Nil(t, b.Rules["rule"])
}

func TestBuilderRepeatAndNumberNodes(t *testing.T) {
	src := abnf.NewSource("test", []byte("r = 1*3%x41-5A\r\n"))
	b := NewBuilder()

	ok, _ := abnf.ParseRulelist(src.Begin(), src.End(), b, abnf.ParsePolicy{})
	require.True(t, ok)

	rule := b.Rules["r"][0]
	rep := rule.Children[0].Children[0].Children[0]
	require.Equal(t, KindRepetition, rep.Kind)
	require.NotNil(t, rep.Repeat)
	assert.Equal(t, 1, rep.Repeat.Low)
	assert.Equal(t, 3, rep.Repeat.High)

	require.Len(t, rep.Children, 1)
	num := rep.Children[0]
	assert.Equal(t, KindNumber, num.Kind)
	assert.Equal(t, abnf.NumberHexadecimal, num.NumberFlag)
	assert.Equal(t, []string{"41", "5A"}, num.Runs)
}

func TestBuilderRecordsErrorsOnFailure(t *testing.T) {
	src := abnf.NewSource("test", []byte("r = \"unterminated\r\n"))
	b := NewBuilder()

	ok, _ := abnf.ParseRulelist(src.Begin(), src.End(), b, abnf.ParsePolicy{})
	require.False(t, ok)
	require.NotNil(t, b.Document)
	assert.False(t, b.Document.Success)
	require.Len(t, b.Errors, 1)
	assert.Contains(t, b.Errors[0].Error(), "unbalanced")
}
