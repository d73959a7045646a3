package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pluqqy/dialpad/cmd/commands"
	"github.com/pluqqy/dialpad/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "dialpad",
	Short: "Terminal phone number field with as-you-type formatting",
	Long: `Dialpad is a phone number input for the terminal. It formats numbers as you
type, keeps the caret next to the digit you edited, switches region from the
country code and offers a searchable region picker.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := commands.NewContext()
		if err != nil {
			return err
		}
		defer ctx.Close()

		settings := ctx.Settings
		app := tui.NewApp(ctx.NewField(), tui.Options{
			Theme:             tui.NewTheme(settings.UI),
			ShowFlag:          settings.UI.ShowFlag,
			SearchPlaceholder: settings.Picker.SearchPlaceholder,
			Directory:         ctx.NewDirectory,
			Logger:            ctx.Logger,
		})

		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to start the terminal user interface: %w", err)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of dialpad",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "dialpad version %s\n", version)
	},
}

func init() {
	tui.Version = version
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	commands.AddGlobalFlags(rootCmd)
	rootCmd.AddCommand(commands.NewInitCommand())
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewFormatCommand())
	rootCmd.AddCommand(commands.NewTypeCommand())
	rootCmd.AddCommand(commands.NewRegionsCommand())
	rootCmd.AddCommand(commands.NewCopyCommand())
	rootCmd.AddCommand(commands.NewSettingsCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
