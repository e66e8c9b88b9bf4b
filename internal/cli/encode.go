package cli

import (
	"fmt"

	"github.com/LeJamon/xrplmodel/internal/flags"
	"github.com/LeJamon/xrplmodel/internal/log"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <entity> [flag-name...]",
	Short: "Encode named flags into a Flags value",
	Long: `Encode a list of flag names into the numeric Flags value of an entity.

Names are the catalog names shown by 'xrplflags list <entity>'. Transaction
entities also accept the universal flags. With no names the result is 0.

Examples:
    xrplflags encode Payment tfPartialPayment tfFullyCanonicalSig
    xrplflags encode RippleState lsfLowReserve lsfHighAuth`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEncode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}

type encodeResult struct {
	Entity string   `json:"entity" yaml:"entity"`
	Names  []string `json:"names" yaml:"names"`
	Value  uint64   `json:"value" yaml:"value"`
	Hex    string   `json:"hex" yaml:"hex"`
}

// encodeNames ORs the named flags. Every name must belong to one of the
// catalogs.
func encodeNames(catalogs []*flags.Catalog, names []string) (flags.Flags, error) {
	sets := make([]flags.Set, len(catalogs))
	for i := range sets {
		sets[i] = flags.Set{}
	}

next:
	for _, name := range names {
		for i, c := range catalogs {
			for _, f := range c.Flags() {
				if f.Name == name {
					sets[i][name] = true
					continue next
				}
			}
		}
		return flags.Unset, fmt.Errorf("%s has no flag named %q", catalogs[len(catalogs)-1].Name(), name)
	}

	out := flags.Unset
	for i, c := range catalogs {
		out = out.Or(c.Encode(sets[i]))
	}
	return out, nil
}

func runEncode(cmd *cobra.Command, args []string) error {
	name, catalogs, err := catalogsFor(args[0])
	if err != nil {
		return err
	}
	names := args[1:]

	v, err := encodeNames(catalogs, names)
	if err != nil {
		return err
	}
	log.Debug("encoded flags", "entity", name, "names", len(names), "value", v.Value())

	res := encodeResult{Entity: name, Names: names, Value: v.Value(), Hex: v.Hex()}
	if res.Names == nil {
		res.Names = []string{}
	}
	p := newPrinter(cmd.OutOrStdout(), cfg.Output)
	return p.print(res, func() {
		p.printf("%d\n", res.Value)
	})
}
