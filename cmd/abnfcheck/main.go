// Command abnfcheck is a thin console wrapper around the abnf module:
// the parser core stays a dependency-free library, and this is where
// flags, file I/O, and logging live instead.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "abnfcheck",
		Short: "Check ABNF grammar documents against RFC 5234",
	}

	rootCmd.PersistentFlags().CountP("verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().String("log-path", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newFragmentCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
