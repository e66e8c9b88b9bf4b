package transactions

import (
	"github.com/LeJamon/xrplmodel/internal/flags"
)

// AccountSet SetFlag/ClearFlag values. These are indexes, not bits, and are
// unrelated to the Flags field.
const (
	AsfRequireDest                  = 1
	AsfRequireAuth                  = 2
	AsfDisallowXRP                  = 3
	AsfDisableMaster                = 4
	AsfAccountTxnID                 = 5
	AsfNoFreeze                     = 6
	AsfGlobalFreeze                 = 7
	AsfDefaultRipple                = 8
	AsfDepositAuth                  = 9
	AsfAuthorizedNFTokenMinter      = 10
	AsfDisallowIncomingNFTokenOffer = 12
	AsfDisallowIncomingCheck        = 13
	AsfDisallowIncomingPayChan      = 14
	AsfDisallowIncomingTrustline    = 15
	AsfAllowTrustLineClawback       = 16
)

// AccountSet modifies the properties of an account.
type AccountSet struct {
	Common
	ClearFlag     uint32 `json:"ClearFlag,omitempty"`
	SetFlag       uint32 `json:"SetFlag,omitempty"`
	Domain        string `json:"Domain,omitempty"`
	EmailHash     string `json:"EmailHash,omitempty"`
	MessageKey    string `json:"MessageKey,omitempty"`
	NFTokenMinter string `json:"NFTokenMinter,omitempty"`
	TransferRate  uint32 `json:"TransferRate,omitempty"`
	TickSize      uint8  `json:"TickSize,omitempty"`
}

// NewAccountSet creates an AccountSet with no flags set.
func NewAccountSet(account string) *AccountSet {
	return &AccountSet{
		Common: Common{
			Account:         account,
			TransactionType: "AccountSet",
		},
	}
}

// AccountSetFlags returns the typed view of the Flags field.
func (as *AccountSet) AccountSetFlags() AccountSetFlags {
	return AccountSetFlags{as.Flags}
}

// SetFlags replaces the Flags field with the encoded options.
func (as *AccountSet) SetFlags(o AccountSetFlagOptions) {
	as.Flags = o.Flags().Flags
}

// AccountSetFlags is the Flags field of an AccountSet.
type AccountSetFlags struct {
	flags.Flags
}

func (f AccountSetFlags) FullyCanonicalSig() bool { return f.IsSet(flags.TfFullyCanonicalSig) }
func (f AccountSetFlags) RequireDestTag() bool    { return f.IsSet(flags.TfRequireDestTag) }
func (f AccountSetFlags) OptionalDestTag() bool   { return f.IsSet(flags.TfOptionalDestTag) }
func (f AccountSetFlags) RequireAuth() bool       { return f.IsSet(flags.TfRequireAuth) }
func (f AccountSetFlags) OptionalAuth() bool      { return f.IsSet(flags.TfOptionalAuth) }
func (f AccountSetFlags) DisallowXRP() bool       { return f.IsSet(flags.TfDisallowXRP) }
func (f AccountSetFlags) AllowXRP() bool          { return f.IsSet(flags.TfAllowXRP) }

// AccountSetFlagOptions selects AccountSet flags by name.
type AccountSetFlagOptions struct {
	FullyCanonicalSig bool
	RequireDestTag    bool
	OptionalDestTag   bool
	RequireAuth       bool
	OptionalAuth      bool
	DisallowXRP       bool
	AllowXRP          bool
}

// Flags encodes the selected options.
func (o AccountSetFlagOptions) Flags() AccountSetFlags {
	universal := flags.Universal.Encode(flags.Set{"tfFullyCanonicalSig": o.FullyCanonicalSig})
	return AccountSetFlags{universal.Or(flags.AccountSet.Encode(flags.Set{
		"tfRequireDestTag":  o.RequireDestTag,
		"tfOptionalDestTag": o.OptionalDestTag,
		"tfRequireAuth":     o.RequireAuth,
		"tfOptionalAuth":    o.OptionalAuth,
		"tfDisallowXRP":     o.DisallowXRP,
		"tfAllowXRP":        o.AllowXRP,
	}))}
}
