package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/LeJamon/xrplmodel/internal/config"
	"github.com/LeJamon/xrplmodel/internal/flags"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// run executes the root command with a clean flag and config state.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	resetFlags(rootCmd)
	cfg = config.Default()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func decodeJSON(t *testing.T, out string) decodeResult {
	t.Helper()
	var res decodeResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	return res
}

func setOf(res decodeResult) flags.Set {
	s := flags.Set{}
	for _, f := range res.Flags {
		s[f.Name] = f.IsSet
	}
	return s
}

func TestDecode(t *testing.T) {
	t.Run("ledger entry", func(t *testing.T) {
		out, err := run(t, "", "decode", "RippleState", "393216", "--format", "json")
		require.NoError(t, err)

		res := decodeJSON(t, out)
		assert.Equal(t, "RippleState", res.Entity)
		assert.Equal(t, uint64(393216), res.Value)
		assert.Equal(t, "0x00060000", res.Hex)
		assert.Empty(t, res.Unknown)
		assert.Len(t, res.Flags, 11)
		assert.Equal(t, []string{"lsfHighReserve", "lsfLowAuth"}, setOf(res).Enabled())
	})

	t.Run("transaction includes universal flags", func(t *testing.T) {
		out, err := run(t, "", "decode", "payment", "0x80020000", "--format", "json")
		require.NoError(t, err)

		res := decodeJSON(t, out)
		assert.Equal(t, "Payment", res.Entity)
		require.Len(t, res.Flags, 5)
		assert.Equal(t, "tfFullyCanonicalSig", res.Flags[0].Name)
		assert.Equal(t, []string{"tfFullyCanonicalSig", "tfPartialPayment"}, setOf(res).Enabled())
	})

	t.Run("negative value", func(t *testing.T) {
		out, err := run(t, "", "decode", "--format", "json", "--", "Payment", "-2147483648")
		require.NoError(t, err)

		res := decodeJSON(t, out)
		assert.Equal(t, []string{"tfFullyCanonicalSig"}, setOf(res).Enabled())
		assert.Equal(t, "0xFFFFFFFF00000000", res.Unknown)
	})

	t.Run("unknown bits are reported", func(t *testing.T) {
		out, err := run(t, "", "decode", "AccountRoot", "8388609", "--format", "json")
		require.NoError(t, err)

		res := decodeJSON(t, out)
		assert.Equal(t, "0x00000001", res.Unknown)
		assert.Equal(t, []string{"lsfDefaultRipple"}, setOf(res).Enabled())
	})

	t.Run("text", func(t *testing.T) {
		out, err := run(t, "", "decode", "Offer", "131072")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, "Offer 131072 (0x00020000)", lines[0])
		assert.Contains(t, lines[1], "lsfPassive")
		assert.Contains(t, lines[1], "false")
		assert.Contains(t, lines[2], "lsfSell")
		assert.Contains(t, lines[2], "true")
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := run(t, "", "decode", "TrustSet", "131072", "--format", "yaml")
		require.NoError(t, err)

		var res decodeResult
		require.NoError(t, yaml.Unmarshal([]byte(out), &res))
		assert.Equal(t, "TrustSet", res.Entity)
		assert.Equal(t, uint64(131072), res.Value)
		assert.Equal(t, []string{"tfSetNoRipple"}, setOf(res).Enabled())
	})

	t.Run("default entity from config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "xrplflags.toml")
		require.NoError(t, os.WriteFile(path, []byte("default_entity = \"AccountRoot\"\n[output]\nformat = \"json\"\n"), 0644))

		out, err := run(t, "", "decode", "8388608", "--conf", path)
		require.NoError(t, err)

		res := decodeJSON(t, out)
		assert.Equal(t, "AccountRoot", res.Entity)
		assert.Equal(t, []string{"lsfDefaultRipple"}, setOf(res).Enabled())
	})
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		errMsg string
	}{
		{"unknown entity", []string{"decode", "Escrow", "1"}, "unknown entity"},
		{"bad value", []string{"decode", "Payment", "lots"}, "invalid flags"},
		{"no entity", []string{"decode", "1"}, "no entity given"},
		{"bad format", []string{"decode", "Payment", "1", "--format", "xml"}, "invalid format"},
		{"too many args", []string{"decode", "Payment", "1", "2"}, "accepts between 1 and 2 arg(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestEncode(t *testing.T) {
	out, err := run(t, "", "encode", "Payment", "tfPartialPayment", "tfFullyCanonicalSig")
	require.NoError(t, err)
	assert.Equal(t, "2147614720\n", out)

	out, err = run(t, "", "encode", "RippleState")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	out, err = run(t, "", "encode", "OfferCreate", "tfSell", "tfPassive", "--format", "json")
	require.NoError(t, err)
	var res encodeResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "OfferCreate", res.Entity)
	assert.Equal(t, uint64(flags.TfSell|flags.TfPassive), res.Value)
	assert.Equal(t, "0x00090000", res.Hex)
	assert.Equal(t, []string{"tfSell", "tfPassive"}, res.Names)

	_, err = run(t, "", "encode", "Payment", "tfSell")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Payment has no flag named "tfSell"`)

	_, err = run(t, "", "encode", "Payment", "tfPaymentBitmask")
	assert.Error(t, err)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for _, entity := range []string{"RippleState", "AccountRoot", "TrustSet", "AMMWithdraw"} {
		t.Run(entity, func(t *testing.T) {
			name, catalogs, err := catalogsFor(entity)
			require.NoError(t, err)
			c := catalogs[len(catalogs)-1]
			names := c.Names()

			out, err := run(t, "", append([]string{"encode", entity}, names...)...)
			require.NoError(t, err)
			value := strings.TrimSpace(out)
			assert.Equal(t, c.Known().String(), value)

			out, err = run(t, "", "decode", entity, value, "--format", "json")
			require.NoError(t, err)
			res := decodeJSON(t, out)
			assert.Equal(t, name, res.Entity)
			for _, n := range names {
				assert.True(t, setOf(res)[n], n)
			}
		})
	}
}

func TestList(t *testing.T) {
	out, err := run(t, "", "list", "--format", "json")
	require.NoError(t, err)
	var all []catalogSummary
	require.NoError(t, json.Unmarshal([]byte(out), &all))
	assert.Len(t, all, len(flags.Catalogs()))

	out, err = run(t, "", "list", "trust_set")
	require.NoError(t, err)
	assert.Contains(t, out, "TrustSet\n")
	assert.Contains(t, out, "tfSetNoRipple")
	assert.Contains(t, out, "0x00020000")
	assert.Regexp(t, `tfUniversalBitmask\s+0xFF000000\s+mask`, out)

	_, err = run(t, "", "list", "nope")
	assert.Error(t, err)
}

func TestInspect(t *testing.T) {
	t.Run("transaction from stdin", func(t *testing.T) {
		tx := `{"TransactionType":"TrustSet","Account":"rf1BiGeXwwQoi8Z2ueFYTEXSwuJYfV2Jpn","Flags":2147614720,
			"LimitAmount":{"currency":"USD","value":"100","issuer":"rsA2LpzuawewSBQXkiju3YQTMzW13pAAdW"}}`
		out, err := run(t, tx, "inspect", "--format", "json")
		require.NoError(t, err)

		res := decodeJSON(t, out)
		assert.Equal(t, "TrustSet", res.Entity)
		assert.Equal(t, []string{"tfFullyCanonicalSig", "tfSetNoRipple"}, setOf(res).Enabled())
	})

	t.Run("ledger entry from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "entry.json")
		entry := `{"LedgerEntryType":"RippleState","Flags":393216,"Balance":{"currency":"USD","issuer":"rrrrrrrrrrrrrrrrrrrrBZbvji","value":"-10"}}`
		require.NoError(t, os.WriteFile(path, []byte(entry), 0644))

		out, err := run(t, "", "inspect", path, "--format", "json")
		require.NoError(t, err)

		res := decodeJSON(t, out)
		assert.Equal(t, "RippleState", res.Entity)
		assert.Equal(t, []string{"lsfHighReserve", "lsfLowAuth"}, setOf(res).Enabled())
	})

	t.Run("entry without catalog", func(t *testing.T) {
		out, err := run(t, `{"LedgerEntryType":"Escrow","Flags":1}`, "inspect", "-", "--format", "json")
		require.NoError(t, err)

		res := decodeJSON(t, out)
		assert.Equal(t, "Escrow", res.Entity)
		assert.Empty(t, res.Flags)
		assert.Equal(t, "0x00000001", res.Unknown)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := run(t, `{"Flags":0}`, "inspect")
		assert.ErrorContains(t, err, "neither TransactionType nor LedgerEntryType")

		_, err = run(t, `not json`, "inspect")
		assert.ErrorContains(t, err, "not a JSON object")
	})
}

func TestParams(t *testing.T) {
	out, err := run(t, "", "params", "ledger", "--ledger-index", "validated", "--transactions")
	require.NoError(t, err)
	assert.JSONEq(t, `{"ledger_index":"validated","transactions":true,"expand":true,"binary":false}`, out)

	out, err = run(t, "", "params", "account_info", "rf1BiGeXwwQoi8Z2ueFYTEXSwuJYfV2Jpn", "--queue", "--format", "yaml")
	require.NoError(t, err)
	assert.JSONEq(t, `{"account":"rf1BiGeXwwQoi8Z2ueFYTEXSwuJYfV2Jpn","ledger_index":"current","queue":true,"signer_lists":true,"strict":true}`, out)

	out, err = run(t, "", "params", "account-info", "rf1BiGeXwwQoi8Z2ueFYTEXSwuJYfV2Jpn", "--signer-lists=false", "--ledger-index", "12")
	require.NoError(t, err)
	assert.JSONEq(t, `{"account":"rf1BiGeXwwQoi8Z2ueFYTEXSwuJYfV2Jpn","ledger_index":12,"signer_lists":false,"strict":true}`, out)

	_, err = run(t, "", "params", "account_info", "not-an-address")
	assert.ErrorContains(t, err, "Account malformed.")

	_, err = run(t, "", "params", "ledger", "--ledger-index", "latest")
	assert.ErrorContains(t, err, "Invalid field 'ledger_index'.")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "xrplflags version 0.1.0-dev")
}
