package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/dialpad/internal/cli"
)

// Persistent flag values shared by every command
var (
	outputFormat string
	quietFlag    bool
	noColorFlag  bool
	yesFlag      bool
	logFile      string
	debugFlag    bool
	regionFlag   string
)

// AddGlobalFlags registers the persistent flags on root and pushes them into
// the cli package before any command runs.
func AddGlobalFlags(root *cobra.Command) {
	flags := root.PersistentFlags()
	flags.StringVarP(&outputFormat, "output", "o", "text", "Output format (text, json, yaml)")
	flags.BoolVarP(&quietFlag, "quiet", "q", false, "Suppress informational output")
	flags.BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
	flags.BoolVarP(&yesFlag, "yes", "y", false, "Answer yes to confirmations")
	flags.StringVar(&logFile, "log-file", "", "Write diagnostic logs to this file")
	flags.BoolVar(&debugFlag, "debug", false, "Log at debug level (needs --log-file)")
	flags.StringVarP(&regionFlag, "region", "r", "", "Region to format for (defaults to settings)")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := cli.ValidateOutputFormat(outputFormat); err != nil {
			return err
		}
		cli.SetGlobalFlags(quietFlag, noColorFlag, yesFlag)
		return nil
	}
}

// NewContext builds the command context from the persistent flags
func NewContext() (*cli.CommandContext, error) {
	return cli.NewCommandContext(cli.ContextOptions{
		Region:  regionFlag,
		LogFile: logFile,
		Debug:   debugFlag,
	})
}

