package ledger

import (
	"encoding/json"
	"testing"

	"github.com/LeJamon/xrplmodel/internal/flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRippleStateFlags_DeriveIndividualFlags walks every combination of the
// trust line options and checks the raw value and each accessor.
func TestRippleStateFlags_DeriveIndividualFlags(t *testing.T) {
	const n = 11
	for i := 0; i < 1<<n; i++ {
		on := func(bit int) bool { return i&(1<<bit) != 0 }
		opts := RippleStateFlagOptions{
			LowReserve:     on(0),
			HighReserve:    on(1),
			LowAuth:        on(2),
			HighAuth:       on(3),
			LowNoRipple:    on(4),
			HighNoRipple:   on(5),
			LowFreeze:      on(6),
			HighFreeze:     on(7),
			AMMNode:        on(8),
			LowDeepFreeze:  on(9),
			HighDeepFreeze: on(10),
		}

		var expected uint64
		for bit, c := range []flags.Flags{
			flags.LsfLowReserve, flags.LsfHighReserve, flags.LsfLowAuth, flags.LsfHighAuth,
			flags.LsfLowNoRipple, flags.LsfHighNoRipple, flags.LsfLowFreeze, flags.LsfHighFreeze,
			flags.LsfAMMNode, flags.LsfLowDeepFreeze, flags.LsfHighDeepFreeze,
		} {
			if on(bit) {
				expected |= c.Value()
			}
		}

		f := RippleStateFlagsOf(expected)
		require.Equal(t, f, opts.Flags())
		require.Equal(t, expected, f.Value())

		assert.Equal(t, opts.LowReserve, f.LowReserve())
		assert.Equal(t, opts.HighReserve, f.HighReserve())
		assert.Equal(t, opts.LowAuth, f.LowAuth())
		assert.Equal(t, opts.HighAuth, f.HighAuth())
		assert.Equal(t, opts.LowNoRipple, f.LowNoRipple())
		assert.Equal(t, opts.HighNoRipple, f.HighNoRipple())
		assert.Equal(t, opts.LowFreeze, f.LowFreeze())
		assert.Equal(t, opts.HighFreeze, f.HighFreeze())
		assert.Equal(t, opts.AMMNode, f.AMMNode())
		assert.Equal(t, opts.LowDeepFreeze, f.LowDeepFreeze())
		assert.Equal(t, opts.HighDeepFreeze, f.HighDeepFreeze())
		assert.Equal(t, opts.LowReserve, f.Named()["lsfLowReserve"])
		assert.Equal(t, opts.HighDeepFreeze, f.Named()["lsfHighDeepFreeze"])
	}
}

func TestRippleState_JSON(t *testing.T) {
	// Example trust line from the XRPL documentation.
	data := []byte(`{
		"Balance": {"currency": "USD", "issuer": "rrrrrrrrrrrrrrrrrrrrBZbvji", "value": "-10"},
		"Flags": 393216,
		"HighLimit": {"currency": "USD", "issuer": "rf1BiGeXwwQoi8Z2ueFYTEXSwuJYfV2Jpn", "value": "110"},
		"HighNode": "0000000000000000",
		"LedgerEntryType": "RippleState",
		"LowLimit": {"currency": "USD", "issuer": "rsA2LpzuawewSBQXkiju3YQTMzW13pAAdW", "value": "0"},
		"LowNode": "0000000000000000",
		"PreviousTxnID": "E3FE6EA3D48F0C2B639448020EA4F03D4F4F8FFDB243A852A0F59177921B4879",
		"PreviousTxnLgrSeq": 14090896,
		"index": "9CA88CDEDFF9252B3DE183CE35B038F57282BC9503CDFA1923EF9A95DF0D6F7B"
	}`)

	e, err := Unmarshal(data)
	require.NoError(t, err)
	rs, ok := e.(*RippleState)
	require.True(t, ok)

	assert.Equal(t, uint64(393216), rs.Flags.Value())
	assert.True(t, rs.Flags.HighReserve())
	assert.True(t, rs.Flags.LowAuth())
	assert.False(t, rs.Flags.LowReserve())
	assert.False(t, rs.Flags.HighFreeze())
	assert.Equal(t, "-10", rs.Balance.Value)
	assert.Equal(t, uint32(14090896), rs.PreviousTxnLgrSeq)

	named, ok := DecodeFlags(rs)
	require.True(t, ok)
	assert.Equal(t, []string{"lsfHighReserve", "lsfLowAuth"}, named.Enabled())

	out, err := json.Marshal(rs)
	require.NoError(t, err)
	var back map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, float64(393216), back["Flags"])
	assert.Equal(t, "RippleState", back["LedgerEntryType"])
}

func TestAccountRoot_JSON(t *testing.T) {
	data := []byte(`{
		"Account": "rf1BiGeXwwQoi8Z2ueFYTEXSwuJYfV2Jpn",
		"Balance": "148446663",
		"Domain": "6D64756F31332E636F6D",
		"EmailHash": "98B4375E1D753E5B91627516F6D70977",
		"Flags": 8388608,
		"LedgerEntryType": "AccountRoot",
		"OwnerCount": 3,
		"PreviousTxnID": "0D5FB50FA65C9FE1538FD7E398FFFE9D1908DFA4576D8D7A020040686F93C77D",
		"PreviousTxnLgrSeq": 14091160,
		"Sequence": 336,
		"TransferRate": 1004999999,
		"index": "13F1A95D7AAB7108D5CE7EEAF504B2894B8C674E6D68499076441C4837282BF8"
	}`)

	e, err := Unmarshal(data)
	require.NoError(t, err)
	acct, ok := e.(*AccountRoot)
	require.True(t, ok)

	assert.True(t, acct.Flags.DefaultRipple())
	assert.False(t, acct.Flags.RequireAuth())
	assert.False(t, acct.Flags.GlobalFreeze())
	assert.Equal(t, uint32(336), acct.Sequence)

	named, ok := DecodeFlags(acct)
	require.True(t, ok)
	assert.Equal(t, []string{"lsfDefaultRipple"}, named.Enabled())
	assert.Len(t, named, 15)
}

func TestAccountRootFlags(t *testing.T) {
	f := AccountRootFlagsOf(0x80000000 | 0x01000000 | 0x00020000)
	assert.True(t, f.AllowTrustLineClawback())
	assert.True(t, f.DepositAuth())
	assert.True(t, f.RequireDestTag())
	assert.False(t, f.PasswordSpent())
	assert.False(t, f.DisallowIncomingCheck())
	assert.False(t, f.DisallowIncomingNFTokenOffer())
	assert.False(t, f.DisallowIncomingPayChan())
	assert.False(t, f.DisallowIncomingTrustline())
	assert.False(t, f.AMM())
	assert.False(t, f.NoFreeze())
	assert.False(t, f.DisableMaster())
	assert.False(t, f.DisallowXRP())
	assert.Equal(t, []string{"lsfAllowTrustLineClawback", "lsfDepositAuth", "lsfRequireDestTag"}, f.Named().Enabled())
}

func TestOfferAndSignerList(t *testing.T) {
	e, err := Unmarshal([]byte(`{"LedgerEntryType":"Offer","Flags":131072,"Account":"rBqb89MRQJnMPq8wTwEbtz4kvxrEDfcYvt","Sequence":866,"TakerGets":"3000000"}`))
	require.NoError(t, err)
	offer := e.(*Offer)
	assert.True(t, offer.Flags.Sell())
	assert.False(t, offer.Flags.Passive())
	assert.False(t, offer.Flags.Hybrid())
	assert.JSONEq(t, `"3000000"`, string(offer.TakerGets))

	e, err = Unmarshal([]byte(`{"LedgerEntryType":"SignerList","Flags":65536,"SignerQuorum":3,"SignerListID":0,
		"SignerEntries":[{"SignerEntry":{"Account":"rsA2LpzuawewSBQXkiju3YQTMzW13pAAdW","SignerWeight":2}}]}`))
	require.NoError(t, err)
	list := e.(*SignerList)
	assert.True(t, list.Flags.OneOwnerCount())
	require.Len(t, list.SignerEntries, 1)
	assert.Equal(t, uint16(2), list.SignerEntries[0].SignerEntry.SignerWeight)
}

func TestUnmarshal_Generic(t *testing.T) {
	e, err := Unmarshal([]byte(`{"LedgerEntryType":"MPToken","Flags":3}`))
	require.NoError(t, err)
	assert.Equal(t, TypeMPToken, e.Type())

	named, ok := DecodeFlags(e)
	require.True(t, ok)
	assert.Equal(t, flags.Set{"lsfMPTLocked": true, "lsfMPTAuthorized": true}, named)

	e, err = Unmarshal([]byte(`{"LedgerEntryType":"Escrow"}`))
	require.NoError(t, err)
	assert.True(t, e.EntryFlags().IsUnset())
	_, ok = DecodeFlags(e)
	assert.False(t, ok)
}

func TestUnmarshal_Errors(t *testing.T) {
	_, err := Unmarshal([]byte(`{"Flags":0}`))
	assert.ErrorIs(t, err, ErrMissingType)

	_, err = Unmarshal([]byte(`{"LedgerEntryType":"Nope"}`))
	assert.ErrorIs(t, err, ErrUnknownType)
	assert.ErrorIs(t, err, ErrInvalidEntry)

	_, err = Unmarshal([]byte(`{"LedgerEntryType":"RippleState","Flags":"abc"}`))
	assert.ErrorIs(t, err, ErrInvalidEntry)
	assert.ErrorIs(t, err, flags.ErrInvalidFlags)

	_, err = Unmarshal([]byte(`not json`))
	assert.ErrorIs(t, err, ErrInvalidEntry)
}

func TestType(t *testing.T) {
	assert.Equal(t, "RippleState", TypeRippleState.String())
	assert.Equal(t, "Unknown(0x1)", Type(1).String())

	typ, ok := TypeFromName("SignerList")
	require.True(t, ok)
	assert.Equal(t, TypeSignerList, typ)

	c, ok := TypeAccountRoot.Catalog()
	require.True(t, ok)
	assert.Same(t, flags.AccountRoot, c)

	_, err := json.Marshal(Type(1))
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestMarshal_ZeroValueWritesType(t *testing.T) {
	out, err := json.Marshal(AccountRoot{})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"LedgerEntryType":"AccountRoot"`)
	assert.Contains(t, string(out), `"Flags":0`)
}
