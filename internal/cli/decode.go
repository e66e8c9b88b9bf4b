package cli

import (
	"fmt"
	"strings"

	"github.com/LeJamon/xrplmodel/internal/flags"
	"github.com/LeJamon/xrplmodel/internal/log"
	"github.com/LeJamon/xrplmodel/internal/model/transactions"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [entity] <flags>",
	Short: "Decode a Flags value into named booleans",
	Long: `Decode a numeric Flags value using the flag catalog of an entity.

The value may be decimal, 0x-prefixed hex, or negative, in which case its
64-bit two's complement pattern is decoded. Put negative values after "--".
Transaction entities also decode the universal flags. When the entity is
omitted, default_entity from the configuration is used.

Examples:
    xrplflags decode RippleState 393216
    xrplflags decode Payment 0x80020000
    xrplflags decode account_root 8388608 --format json`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

// namedFlag is one catalog entry and whether it is set.
type namedFlag struct {
	Name  string `json:"name" yaml:"name"`
	Bit   string `json:"bit" yaml:"bit"`
	IsSet bool   `json:"set" yaml:"set"`
}

type decodeResult struct {
	Entity  string      `json:"entity" yaml:"entity"`
	Value   uint64      `json:"value" yaml:"value"`
	Hex     string      `json:"hex" yaml:"hex"`
	Flags   []namedFlag `json:"flags" yaml:"flags"`
	Unknown string      `json:"unknown,omitempty" yaml:"unknown,omitempty"`
}

// catalogsFor returns the catalogs that apply to an entity. Transaction types
// get the universal catalog first.
func catalogsFor(entity string) (string, []*flags.Catalog, error) {
	c, ok := flags.Lookup(entity)
	if !ok {
		return "", nil, fmt.Errorf("unknown entity %q (see 'xrplflags list')", entity)
	}
	if _, isTx := transactions.CatalogFor(c.Name()); isTx {
		return c.Name(), []*flags.Catalog{flags.Universal, c}, nil
	}
	return c.Name(), []*flags.Catalog{c}, nil
}

func decodeWith(entity string, catalogs []*flags.Catalog, v flags.Flags) decodeResult {
	res := decodeResult{
		Entity: entity,
		Value:  v.Value(),
		Hex:    v.Hex(),
	}
	known := flags.Unset
	for _, c := range catalogs {
		set := c.Decode(v)
		for _, f := range c.Flags() {
			res.Flags = append(res.Flags, namedFlag{Name: f.Name, Bit: f.Value.Hex(), IsSet: set[f.Name]})
		}
		known = known.Or(c.Known())
	}
	if unknown := v &^ known; !unknown.IsUnset() {
		res.Unknown = unknown.Hex()
	}
	return res
}

func runDecode(cmd *cobra.Command, args []string) error {
	entity := cfg.DefaultEntity
	raw := args[0]
	if len(args) == 2 {
		entity, raw = args[0], args[1]
	}
	if entity == "" {
		return fmt.Errorf("no entity given and no default_entity configured")
	}

	name, catalogs, err := catalogsFor(entity)
	if err != nil {
		return err
	}
	v, err := flags.Parse(raw)
	if err != nil {
		return err
	}
	log.Debug("decoding flags", "entity", name, "value", v.Value())

	res := decodeWith(name, catalogs, v)
	p := newPrinter(cmd.OutOrStdout(), cfg.Output)
	return p.print(res, func() { printDecode(p, res) })
}

func printDecode(p *printer, res decodeResult) {
	p.printf("%s %d (%s)\n", p.title.Sprint(res.Entity), res.Value, res.Hex)
	width := 0
	for _, f := range res.Flags {
		if len(f.Name) > width {
			width = len(f.Name)
		}
	}
	for _, f := range res.Flags {
		p.printf("  %s  %s  %s\n", f.Name+strings.Repeat(" ", width-len(f.Name)), f.Bit, p.onOff(f.IsSet))
	}
	if res.Unknown != "" {
		p.printf("%s %s\n", p.warn.Sprint("unknown bits:"), res.Unknown)
	}
}
