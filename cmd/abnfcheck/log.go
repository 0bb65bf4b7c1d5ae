package main

import (
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

// configureLogging wires cobra's -v/--log-path flags into commonlog the
// way the glsp ecosystem expects a host process to: Configure once, up
// front, then pull scoped loggers by name everywhere else. Verbosity is
// cumulative (-vvv is louder than -v); an empty log path leaves
// commonlog's simple backend on its default of stderr.
func configureLogging(cmd *cobra.Command) (commonlog.Logger, error) {
	verbosity, err := cmd.Flags().GetCount("verbose")
	if err != nil {
		return nil, err
	}
	logPath, err := cmd.Flags().GetString("log-path")
	if err != nil {
		return nil, err
	}

	var path *string
	if logPath != "" {
		path = &logPath
	}

	commonlog.Configure(verbosity, path)

	return commonlog.GetLogger("abnfcheck"), nil
}
