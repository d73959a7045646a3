package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/dialpad/internal/cli"
	"github.com/pluqqy/dialpad/pkg/directory"
)

var (
	regionsPinned string
	regionsCommon []string
	regionsFlat   bool
)

// RegionSection is one section of region output
type RegionSection struct {
	Kind    string            `json:"kind" yaml:"kind"`
	Title   string            `json:"title,omitempty" yaml:"title,omitempty"`
	Index   string            `json:"index,omitempty" yaml:"index,omitempty"`
	Entries []directory.Entry `json:"entries" yaml:"entries"`
}

// NewRegionsCommand creates the regions command
func NewRegionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regions [query]",
		Short: "List regions grouped the way the picker shows them",
		Long: `List every region with its dial prefix.

Without a query the list is grouped: the current region first, then the
common regions, then one section per initial letter. With a query the
matching regions are listed in one flat section; the query matches the
region name, its code or its dial prefix, ignoring case.

Examples:
  dialpad regions
  dialpad regions king
  dialpad regions +7 -o json
  dialpad regions --pinned KZ --common US,RU`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRegions,
	}

	cmd.Flags().StringVar(&regionsPinned, "pinned", "", "Region shown first (defaults to the current region)")
	cmd.Flags().StringSliceVar(&regionsCommon, "common", nil, "Common regions, overriding settings")
	cmd.Flags().BoolVar(&regionsFlat, "flat", false, "Print entries without section headings")

	return cmd
}

func runRegions(cmd *cobra.Command, args []string) error {
	ctx, err := NewContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	pinned := regionsPinned
	if pinned == "" {
		pinned, err = ctx.RequireRegion()
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("common") {
		ctx.Settings.Picker.CommonRegions = regionsCommon
		ctx.Settings.Picker.ShowCommon = len(regionsCommon) > 0
	}

	view := directory.NewView(ctx.NewDirectory(pinned))
	if len(args) == 1 {
		view.SetQuery(strings.TrimSpace(args[0]))
	}

	if view.Empty() {
		if cli.OutputFormat(outputFormat) != cli.FormatText {
			return cli.OutputResults(cmd.OutOrStdout(), outputFormat, []RegionSection{})
		}
		cli.PrintWarning("No regions match %q", view.Query())
		return nil
	}

	sections := make([]RegionSection, 0)
	for _, s := range view.Sections() {
		sections = append(sections, RegionSection{
			Kind:    s.Kind.String(),
			Title:   s.Title,
			Index:   s.IndexTitle,
			Entries: s.Entries,
		})
	}

	out := cmd.OutOrStdout()
	if cli.OutputFormat(outputFormat) != cli.FormatText {
		return cli.OutputResults(out, outputFormat, sections)
	}

	table := cli.NewTableFormatter(out)
	for i, s := range view.Sections() {
		if !regionsFlat && s.HasTitle {
			if i > 0 {
				table.Row("")
			}
			table.Row(sectionHeading(s))
		}
		for _, e := range s.Entries {
			table.Row(flagOrBlank(e.Key), e.Key, cli.TruncateString(e.Primary, 40), e.Secondary)
		}
	}
	table.Flush()
	return nil
}

func sectionHeading(s directory.Section) string {
	switch {
	case s.Title != "":
		return fmt.Sprintf("%s %s", s.IndexTitle, s.Title)
	case s.Kind == directory.SectionPinned:
		return s.IndexTitle + " Current"
	default:
		return s.IndexTitle
	}
}

func flagOrBlank(code string) string {
	if noColorFlag {
		return ""
	}
	return directory.Flag(code)
}
