package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pluqqy/dialpad/internal/cli"
	"github.com/pluqqy/dialpad/pkg/files"
	"github.com/pluqqy/dialpad/pkg/models"
)

var initForce bool

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default settings file",
		Long: `Creates .dialpad/settings.yaml in the current directory with the default
settings. An existing file is kept unless --force is given and confirmed.`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing settings file")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine current directory: %w", err)
	}
	cli.PrintInfo("Initializing dialpad settings in %s", cwd)

	written, err := files.InitConfig()
	if err != nil {
		return err
	}
	if written {
		cli.PrintSuccess("Created %s", files.SettingsPath())
		return nil
	}

	if !initForce {
		cli.PrintWarning("%s already exists; use --force to reset it", files.SettingsPath())
		return nil
	}

	ok, err := cli.Confirm(fmt.Sprintf("Reset %s to the defaults?", files.SettingsPath()), false)
	if err != nil {
		return err
	}
	if !ok {
		cli.PrintInfo("Cancelled")
		return nil
	}

	if err := files.WriteSettings(models.DefaultSettings()); err != nil {
		return err
	}
	cli.PrintSuccess("Reset %s", files.SettingsPath())
	return nil
}
