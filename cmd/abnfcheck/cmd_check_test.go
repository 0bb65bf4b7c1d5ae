package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCheck(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := &cobra.Command{Use: "abnfcheck"}
	root.PersistentFlags().CountP("verbose", "v", "")
	root.PersistentFlags().String("log-path", "", "")
	root.AddCommand(newCheckCmd())

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"check"}, args...))

	err := root.Execute()
	return out.String(), err
}

func writeGrammar(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "grammar.abnf")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestCheckAcceptsValidGrammar(t *testing.T) {
	path := writeGrammar(t, "rule = \"x\"\r\n")

	out, err := runCheck(t, path)
	require.NoError(t, err)
	assert.Contains(t, out, "1 rule(s) defined")
	assert.Contains(t, out, "rule (1 definition(s))")
}

func TestCheckReportsFirstErrorOnFailure(t *testing.T) {
	path := writeGrammar(t, "r = \"unterminated\r\n")

	_, err := runCheck(t, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unbalanced")
}

func TestCheckReportsBadRepeatRange(t *testing.T) {
	path := writeGrammar(t, "r = 5*3DIGIT\r\n")

	_, err := runCheck(t, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "repeat range")
}

func TestCheckFailsOnMissingFile(t *testing.T) {
	_, err := runCheck(t, "/nonexistent/grammar.abnf")
	require.Error(t, err)
}

func TestCheckHonorsMaxStringLength(t *testing.T) {
	path := writeGrammar(t, "rule = \"toolong\"\r\n")

	_, err := runCheck(t, "--max-string-length=3", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maximum length")
}

func TestCheckCaseSensitiveRulenamesKeepsDistinctKeys(t *testing.T) {
	path := writeGrammar(t, "Rule = \"a\"\r\nrule = \"b\"\r\n")

	out, err := runCheck(t, "--case-sensitive-rulenames", path)
	require.NoError(t, err)
	assert.Contains(t, out, "2 rule(s) defined")
}
