package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/dialpad/internal/cli"
	"github.com/pluqqy/dialpad/pkg/files"
)

// NewSettingsCommand creates the settings command and its subcommands
func NewSettingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or edit the dialpad settings",
		Long: `Settings live in .dialpad/settings.yaml in the current directory.
Missing keys fall back to their defaults.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := NewContext()
			if err != nil {
				return err
			}
			defer ctx.Close()

			format := outputFormat
			if cli.OutputFormat(format) == cli.FormatText {
				format = string(cli.FormatYAML)
			}
			return cli.OutputResults(cmd.OutOrStdout(), format, ctx.Settings)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the settings file path",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), files.SettingsPath())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "edit",
		Short: "Open the settings file in your editor ($VISUAL or $EDITOR)",
		Args:  cobra.NoArgs,
		RunE:  runSettingsEdit,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "region <code>",
		Short: "Set the default region",
		Long: `Stores the default region in the settings file.

Examples:
  dialpad settings region GB
  dialpad settings region de`,
		Args: cobra.ExactArgs(1),
		RunE: runSettingsRegion,
	})

	return cmd
}

func runSettingsRegion(cmd *cobra.Command, args []string) error {
	ctx, err := NewContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	region, err := cli.ValidateRegion(args[0], ctx.Numbers)
	if err != nil {
		return err
	}

	// Re-read so a --region override is not written back
	settings, err := files.ReadSettings()
	if err != nil {
		return err
	}
	settings.Field.DefaultRegion = region
	if err := files.WriteSettings(settings); err != nil {
		return err
	}

	cli.PrintSuccess("Default region set to %s (+%d)", region, ctx.Numbers.CountryCode(region))
	return nil
}

func runSettingsEdit(cmd *cobra.Command, args []string) error {
	if _, err := files.InitConfig(); err != nil {
		return err
	}

	launcher := cli.NewEditorLauncher()
	cli.PrintInfo("Opening %s in editor...", files.SettingsPath())
	if err := launcher.OpenFile(files.SettingsPath()); err != nil {
		return err
	}

	if _, err := files.ReadSettings(); err != nil {
		return fmt.Errorf("settings saved but invalid: %w", err)
	}
	cli.PrintSuccess("Settings updated")
	return nil
}
