package ledger

import (
	"encoding/json"

	"github.com/LeJamon/xrplmodel/internal/flags"
)

// AccountRoot is the ledger entry describing a single account.
type AccountRoot struct {
	LedgerEntryType   Type             `json:"LedgerEntryType"`
	Flags             AccountRootFlags `json:"Flags"`
	Account           string           `json:"Account"`
	Balance           string           `json:"Balance"`
	OwnerCount        uint32           `json:"OwnerCount"`
	Sequence          uint32           `json:"Sequence"`
	Domain            string           `json:"Domain,omitempty"`
	EmailHash         string           `json:"EmailHash,omitempty"`
	RegularKey        string           `json:"RegularKey,omitempty"`
	TransferRate      uint32           `json:"TransferRate,omitempty"`
	TickSize          uint8            `json:"TickSize,omitempty"`
	PreviousTxnID     string           `json:"PreviousTxnID,omitempty"`
	PreviousTxnLgrSeq uint32           `json:"PreviousTxnLgrSeq,omitempty"`
	Index             string           `json:"index,omitempty"`
}

func (a *AccountRoot) Type() Type              { return TypeAccountRoot }
func (a *AccountRoot) EntryFlags() flags.Flags { return a.Flags.Flags }

// MarshalJSON always writes LedgerEntryType as AccountRoot.
func (a AccountRoot) MarshalJSON() ([]byte, error) {
	type plain AccountRoot
	p := plain(a)
	p.LedgerEntryType = TypeAccountRoot
	return json.Marshal(p)
}

// AccountRootFlags is the Flags field of an account.
type AccountRootFlags struct {
	flags.Flags
}

// AccountRootFlagsOf wraps a raw flags value.
func AccountRootFlagsOf(raw uint64) AccountRootFlags {
	return AccountRootFlags{flags.Of(raw)}
}

func (f AccountRootFlags) PasswordSpent() bool   { return f.IsSet(flags.LsfPasswordSpent) }
func (f AccountRootFlags) RequireDestTag() bool  { return f.IsSet(flags.LsfRequireDestTag) }
func (f AccountRootFlags) RequireAuth() bool     { return f.IsSet(flags.LsfRequireAuth) }
func (f AccountRootFlags) DisallowXRP() bool     { return f.IsSet(flags.LsfDisallowXRP) }
func (f AccountRootFlags) DisableMaster() bool   { return f.IsSet(flags.LsfDisableMaster) }
func (f AccountRootFlags) NoFreeze() bool        { return f.IsSet(flags.LsfNoFreeze) }
func (f AccountRootFlags) GlobalFreeze() bool    { return f.IsSet(flags.LsfGlobalFreeze) }
func (f AccountRootFlags) DefaultRipple() bool   { return f.IsSet(flags.LsfDefaultRipple) }
func (f AccountRootFlags) DepositAuth() bool     { return f.IsSet(flags.LsfDepositAuth) }
func (f AccountRootFlags) AMM() bool             { return f.IsSet(flags.LsfAMM) }
func (f AccountRootFlags) AllowTrustLineClawback() bool {
	return f.IsSet(flags.LsfAllowTrustLineClawback)
}
func (f AccountRootFlags) DisallowIncomingNFTokenOffer() bool {
	return f.IsSet(flags.LsfDisallowIncomingNFTokenOffer)
}
func (f AccountRootFlags) DisallowIncomingCheck() bool {
	return f.IsSet(flags.LsfDisallowIncomingCheck)
}
func (f AccountRootFlags) DisallowIncomingPayChan() bool {
	return f.IsSet(flags.LsfDisallowIncomingPayChan)
}
func (f AccountRootFlags) DisallowIncomingTrustline() bool {
	return f.IsSet(flags.LsfDisallowIncomingTrustline)
}

// Named returns every account flag by name.
func (f AccountRootFlags) Named() flags.Set {
	return flags.AccountRoot.Decode(f.Flags)
}
