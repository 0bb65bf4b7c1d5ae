package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ava12/abnf"
	"github.com/ava12/abnf/astobserver"
)

// newFragmentCmd exercises the fragment entry points (ParseElements,
// ParseAlternation, ...) rather than ParseRulelist: useful for checking
// a single rule body in isolation, e.g. while drafting a grammar one rule
// at a time.
func newFragmentCmd() *cobra.Command {
	var production string

	cmd := &cobra.Command{
		Use:   "fragment <file>",
		Short: "Parse a single ABNF production (elements, alternation, ...) from a file",
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

			parse, err := fragmentParser(production)
			if err != nil {
				return err
			}

			builder := astobserver.NewBuilder()
			src := abnf.NewSource(filename, data)
			ok, at := parse(src.Begin(), builder, abnf.ParsePolicy{})
			if !ok {
				if len(builder.Errors) > 0 {
					logger.Errorf("parse failed: %s", builder.Errors[0])
					return builder.Errors[0]
				}
				return fmt.Errorf("%s: %s did not match at line %d col %d", filename, production, at.Line(), at.Col())
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s matched, consumed to line %d col %d\n", filename, production, at.Line(), at.Col())
			return nil
		},
	}

	cmd.Flags().StringVar(&production, "production", "elements", "which fragment production to parse: elements, alternation, concatenation, repetition, group, option")

	return cmd
}

type fragmentParseFunc func(begin abnf.Cursor, obs abnf.Observer, policy abnf.ParsePolicy) (bool, abnf.Cursor)

func fragmentParser(production string) (fragmentParseFunc, error) {
	switch production {
	case "elements":
		return abnf.ParseElements, nil
	case "alternation":
		return abnf.ParseAlternation, nil
	case "concatenation":
		return abnf.ParseConcatenation, nil
	case "repetition":
		return abnf.ParseRepetition, nil
	case "group":
		return abnf.ParseGroup, nil
	case "option":
		return abnf.ParseOption, nil
	default:
		return nil, fmt.Errorf("unknown production %q", production)
	}
}
