package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ava12/abnf"
	"github.com/ava12/abnf/astobserver"
)

func newCheckCmd() *cobra.Command {
	var maxStringLength int
	var strictNewlines bool
	var caseSensitive bool

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Parse an ABNF grammar file and report its rules or first error",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := configureLogging(cmd)
			if err != nil {
				return err
			}

			filename := args[0]
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read %s: %w", filename, err)
			}

			logger.Infof("parsing %s (%d bytes)", filename, len(data))

			policy := abnf.ParsePolicy{
				StrictNewlines:         strictNewlines,
				CaseSensitiveRulenames: caseSensitive,
			}
			opts := []astobserver.Option{astobserver.WithMaxQuotedStringLength(maxStringLength)}
			if caseSensitive {
				opts = append(opts, astobserver.WithCaseSensitiveRulenames())
			}
			builder := astobserver.NewBuilder(opts...)

			src := abnf.NewSource(filename, data)
			ok, at := abnf.ParseRulelist(src.Begin(), src.End(), builder, policy)

			if !ok {
				if len(builder.Errors) > 0 {
					logger.Errorf("parse failed: %s", builder.Errors[0])
					return builder.Errors[0]
				}
				return fmt.Errorf("%s: parse failed at line %d col %d", filename, at.Line(), at.Col())
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rule(s) defined\n", filename, len(builder.Rules))
			for name, defs := range builder.Rules {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s (%d definition(s))\n", name, len(defs))
			}
			logger.Infof("accepted %d rules", len(builder.Rules))

			return nil
		},
	}

	cmd.Flags().IntVar(&maxStringLength, "max-string-length", 0, "reject char-val literals longer than this (0 = unlimited)")
	cmd.Flags().BoolVar(&strictNewlines, "strict-newlines", false, "require CRLF line terminators per RFC 5234")
	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive-rulenames", false, "key rule names case-sensitively instead of folding per RFC 5234 defaults")

	return cmd
}
