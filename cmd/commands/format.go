package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/dialpad/internal/cli"
	"github.com/pluqqy/dialpad/pkg/files"
)

var formatOutFile string

// FormatResult is one formatted number
type FormatResult struct {
	Input     string `json:"input" yaml:"input"`
	Formatted string `json:"formatted" yaml:"formatted"`
	Region    string `json:"region" yaml:"region"`
	Valid     bool   `json:"valid" yaml:"valid"`
	E164      string `json:"e164,omitempty" yaml:"e164,omitempty"`
	National  string `json:"national,omitempty" yaml:"national,omitempty"`
}

// NewFormatCommand creates the format command
func NewFormatCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format <number>...",
		Short: "Print the canonical form of phone numbers",
		Long: `Format each number the way the phone field would display it.

Numbers starting with a plus are formatted internationally and may switch
region when their country code belongs elsewhere; other numbers are
formatted nationally for --region.

Examples:
  dialpad format +16502530000
  dialpad format --region GB 02079460000
  dialpad format -o json +442079460000 +77012345678`,
		Args: cobra.MinimumNArgs(1),
		RunE: runFormat,
	}

	cmd.Flags().StringVar(&formatOutFile, "out", "", "Also write the formatted numbers to this file")

	return cmd
}

func runFormat(cmd *cobra.Command, args []string) error {
	ctx, err := NewContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	results := make([]FormatResult, 0, len(args))
	for _, input := range args {
		f := ctx.NewField()
		if err := f.SetText(input); err != nil {
			return fmt.Errorf("failed to format %q: %w", input, err)
		}

		result := FormatResult{
			Input:     input,
			Formatted: f.Text(),
			Region:    f.Region(),
			Valid:     f.Valid(),
		}
		if result.Valid {
			result.E164, _ = f.E164()
			result.National = f.NationalNumber()
		}
		results = append(results, result)
	}

	out := cmd.OutOrStdout()
	if cli.OutputFormat(outputFormat) != cli.FormatText {
		if err := cli.OutputResults(out, outputFormat, results); err != nil {
			return err
		}
	} else {
		table := cli.NewTableFormatter(out)
		table.Header("INPUT", "FORMATTED", "REGION", "VALID")
		for _, r := range results {
			table.Row(r.Input, r.Formatted, r.Region, validMark(r.Valid))
		}
		table.Flush()
	}

	if formatOutFile != "" {
		lines := make([]string, 0, len(results))
		for _, r := range results {
			lines = append(lines, r.Formatted)
		}
		if err := files.WriteFile(formatOutFile, strings.Join(lines, "\n")+"\n"); err != nil {
			return err
		}
		cli.PrintSuccess("Wrote %d number(s) to %s", len(results), formatOutFile)
	}

	return nil
}

func validMark(valid bool) string {
	if valid {
		return "yes"
	}
	return "no"
}
