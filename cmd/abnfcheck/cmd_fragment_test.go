package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runFragment(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := &cobra.Command{Use: "abnfcheck"}
	root.PersistentFlags().CountP("verbose", "v", "")
	root.PersistentFlags().String("log-path", "", "")
	root.AddCommand(newFragmentCmd())

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"fragment"}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestFragmentParsesRepetitionInIsolation(t *testing.T) {
	path := writeGrammar(t, "1*3DIGIT")

	out, err := runFragment(t, "--production=repetition", path)
	require.NoError(t, err)
	assert.Contains(t, out, "repetition matched")
}

func TestFragmentRejectsUnknownProduction(t *testing.T) {
	path := writeGrammar(t, "1*3DIGIT")

	_, err := runFragment(t, "--production=nonsense", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown production")
}

func TestFragmentReportsNoMatch(t *testing.T) {
	path := writeGrammar(t, "")

	_, err := runFragment(t, "--production=group", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not match")
}
