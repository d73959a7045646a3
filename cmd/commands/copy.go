package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/pluqqy/dialpad/internal/cli"
)

// writeClipboard is swapped out in tests
var writeClipboard = clipboard.WriteAll

// NewCopyCommand creates the copy command
func NewCopyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy <number>",
		Short: "Copy a phone number to the clipboard in E.164 form",
		Long: `Parse a phone number for --region and copy its E.164 form
(for example +16502530000) to the system clipboard.

Examples:
  dialpad copy "(650) 253-0000"
  dialpad copy --region GB "020 7946 0000"`,
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"clip"},
		RunE:    runCopy,
	}

	return cmd
}

func runCopy(cmd *cobra.Command, args []string) error {
	ctx, err := NewContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	f := ctx.NewField()
	if err := f.SetText(args[0]); err != nil {
		return fmt.Errorf("failed to format %q: %w", args[0], err)
	}
	if !f.Valid() {
		return fmt.Errorf("%q is not a valid number for region %s", args[0], f.Region())
	}

	e164, err := f.E164()
	if err != nil {
		return err
	}

	if err := writeClipboard(e164); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	cli.PrintSuccess("%s copied to clipboard", e164)
	cli.PrintInfo("Displayed as %s", f.Text())
	return nil
}
