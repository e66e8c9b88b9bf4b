package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/LeJamon/xrplmodel/internal/flags"
	"github.com/LeJamon/xrplmodel/internal/log"
	"github.com/LeJamon/xrplmodel/internal/model/ledger"
	"github.com/LeJamon/xrplmodel/internal/model/transactions"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Decode the Flags field of a transaction or ledger entry JSON",
	Long: `Read a transaction or ledger entry in its JSON form and decode its Flags
field. The kind is chosen from TransactionType or LedgerEntryType. Reads from
stdin when the file is omitted or "-".

Examples:
    xrplflags inspect tx.json
    cat ripple_state.json | xrplflags inspect`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[0])
}

// inspectJSON decodes the Flags field of a transaction or ledger entry.
func inspectJSON(data []byte) (decodeResult, error) {
	var head struct {
		TransactionType string `json:"TransactionType"`
		LedgerEntryType string `json:"LedgerEntryType"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return decodeResult{}, fmt.Errorf("input is not a JSON object: %w", err)
	}

	switch {
	case head.TransactionType != "":
		tx, err := transactions.Unmarshal(data)
		if err != nil {
			return decodeResult{}, err
		}
		catalogs := []*flags.Catalog{flags.Universal}
		if c, ok := transactions.CatalogFor(tx.TxType()); ok {
			catalogs = append(catalogs, c)
		}
		return decodeWith(tx.TxType(), catalogs, tx.TxFlags()), nil

	case head.LedgerEntryType != "":
		entry, err := ledger.Unmarshal(data)
		if err != nil {
			return decodeResult{}, err
		}
		var catalogs []*flags.Catalog
		if c, ok := entry.Type().Catalog(); ok {
			catalogs = append(catalogs, c)
		}
		return decodeWith(entry.Type().String(), catalogs, entry.EntryFlags()), nil

	default:
		return decodeResult{}, fmt.Errorf("input has neither TransactionType nor LedgerEntryType")
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	data, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	res, err := inspectJSON(data)
	if err != nil {
		return err
	}
	log.Debug("inspected object", "entity", res.Entity, "value", res.Value)

	p := newPrinter(cmd.OutOrStdout(), cfg.Output)
	return p.print(res, func() { printDecode(p, res) })
}
