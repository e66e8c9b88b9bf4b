package cli

import (
	"github.com/LeJamon/xrplmodel/internal/config"
	"github.com/LeJamon/xrplmodel/internal/rpc/rpc_types"
	"github.com/spf13/cobra"
)

var (
	paramsLedgerIndex string
	paramsLedgerHash  string
	paramsQueue       bool

	ledgerFull         bool
	ledgerAccounts     bool
	ledgerTransactions bool
	ledgerOwnerFunds   bool

	accountSignerLists bool
)

// paramsCmd groups the request parameter builders
var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "Build validated request parameters for rippled methods",
}

var paramsLedgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Build the parameters of a ledger request",
	Long: `Build the parameters of a ledger request. The request always asks for
expanded, non-binary results.

Examples:
    xrplflags params ledger --ledger-index validated --transactions`,
	Args: cobra.NoArgs,
	RunE: runParamsLedger,
}

var paramsAccountInfoCmd = &cobra.Command{
	Use:   "account_info <account>",
	Short: "Build the parameters of an account_info request",
	Long: `Build the parameters of an account_info request. Strict address checking
is always requested and signer lists are included unless disabled.

Examples:
    xrplflags params account_info rf1BiGeXwwQoi8Z2ueFYTEXSwuJYfV2Jpn --queue`,
	Aliases: []string{"account-info"},
	Args:    cobra.ExactArgs(1),
	RunE:    runParamsAccountInfo,
}

func init() {
	rootCmd.AddCommand(paramsCmd)
	paramsCmd.AddCommand(paramsLedgerCmd, paramsAccountInfoCmd)

	paramsCmd.PersistentFlags().StringVar(&paramsLedgerIndex, "ledger-index", string(rpc_types.LedgerCurrent), "ledger sequence or one of current, validated, closed")
	paramsCmd.PersistentFlags().StringVar(&paramsLedgerHash, "ledger-hash", "", "ledger hash, instead of --ledger-index")
	paramsCmd.PersistentFlags().BoolVar(&paramsQueue, "queue", false, "include queued transactions")

	paramsLedgerCmd.Flags().BoolVar(&ledgerFull, "full", false, "return the full ledger (admin)")
	paramsLedgerCmd.Flags().BoolVar(&ledgerAccounts, "accounts", false, "return the ledger's state (admin)")
	paramsLedgerCmd.Flags().BoolVar(&ledgerTransactions, "transactions", false, "return the ledger's transactions")
	paramsLedgerCmd.Flags().BoolVar(&ledgerOwnerFunds, "owner-funds", false, "include owner_funds for OfferCreate transactions")

	paramsAccountInfoCmd.Flags().BoolVar(&accountSignerLists, "signer-lists", true, "include the account's signer lists")
}

func specifier() rpc_types.LedgerSpecifier {
	if paramsLedgerHash != "" {
		return rpc_types.LedgerSpecifier{LedgerHash: paramsLedgerHash}
	}
	return rpc_types.LedgerSpecifier{LedgerIndex: rpc_types.LedgerIndex(paramsLedgerIndex)}
}

func runParamsLedger(cmd *cobra.Command, args []string) error {
	req := rpc_types.NewLedgerRequest()
	req.LedgerSpecifier = specifier()
	req.Full = ledgerFull
	req.Accounts = ledgerAccounts
	req.Transactions = ledgerTransactions
	req.OwnerFunds = ledgerOwnerFunds
	req.Queue = paramsQueue

	if rpcErr := req.Validate(); rpcErr != nil {
		return rpcErr
	}
	return printParams(cmd, req)
}

func runParamsAccountInfo(cmd *cobra.Command, args []string) error {
	req := rpc_types.NewAccountInfoRequest(args[0])
	req.LedgerSpecifier = specifier()
	req.Queue = paramsQueue
	req.SignerLists = accountSignerLists

	if rpcErr := req.Validate(); rpcErr != nil {
		return rpcErr
	}
	return printParams(cmd, req)
}

// printParams writes the request as it goes on the wire, always as JSON.
func printParams(cmd *cobra.Command, req interface{}) error {
	out := cfg.Output
	out.Format = config.FormatJSON
	return newPrinter(cmd.OutOrStdout(), out).print(req, nil)
}
