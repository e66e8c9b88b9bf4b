package cli

import (
	"strings"

	"github.com/LeJamon/xrplmodel/internal/flags"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [entity]",
	Short: "List flag catalogs or the flags of one entity",
	Long: `Without arguments, list every entity that has a flag catalog. With an entity,
list its flags and group masks.

Examples:
    xrplflags list
    xrplflags list TrustSet`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

type catalogSummary struct {
	Entity string `json:"entity" yaml:"entity"`
	Flags  int    `json:"flags" yaml:"flags"`
}

type flagEntry struct {
	Name  string `json:"name" yaml:"name"`
	Value uint64 `json:"value" yaml:"value"`
	Hex   string `json:"hex" yaml:"hex"`
	Mask  bool   `json:"mask,omitempty" yaml:"mask,omitempty"`
}

type catalogListing struct {
	Entity string      `json:"entity" yaml:"entity"`
	Flags  []flagEntry `json:"flags" yaml:"flags"`
}

func runList(cmd *cobra.Command, args []string) error {
	p := newPrinter(cmd.OutOrStdout(), cfg.Output)

	if len(args) == 0 {
		var all []catalogSummary
		for _, c := range flags.Catalogs() {
			all = append(all, catalogSummary{Entity: c.Name(), Flags: len(c.Flags())})
		}
		return p.print(all, func() {
			for _, s := range all {
				p.printf("%-24s %d\n", s.Entity, s.Flags)
			}
		})
	}

	name, catalogs, err := catalogsFor(args[0])
	if err != nil {
		return err
	}
	listing := catalogListing{Entity: name}
	for _, c := range catalogs {
		for _, f := range c.Flags() {
			listing.Flags = append(listing.Flags, flagEntry{Name: f.Name, Value: f.Value.Value(), Hex: f.Value.Hex()})
		}
		for _, m := range c.Masks() {
			listing.Flags = append(listing.Flags, flagEntry{Name: m.Name, Value: m.Value.Value(), Hex: m.Value.Hex(), Mask: true})
		}
	}

	return p.print(listing, func() {
		p.printf("%s\n", p.title.Sprint(listing.Entity))
		width := 0
		for _, f := range listing.Flags {
			if len(f.Name) > width {
				width = len(f.Name)
			}
		}
		for _, f := range listing.Flags {
			line := "  " + f.Name + strings.Repeat(" ", width-len(f.Name)) + "  " + f.Hex
			if f.Mask {
				line += "  " + p.off.Sprint("mask")
			}
			p.printf("%s\n", line)
		}
	})
}
