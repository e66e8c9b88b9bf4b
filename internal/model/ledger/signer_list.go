package ledger

import (
	"encoding/json"

	"github.com/LeJamon/xrplmodel/internal/flags"
)

// SignerList is the multi-signing list of an account.
type SignerList struct {
	LedgerEntryType   Type            `json:"LedgerEntryType"`
	Flags             SignerListFlags `json:"Flags"`
	SignerQuorum      uint32          `json:"SignerQuorum"`
	SignerEntries     []SignerEntry   `json:"SignerEntries"`
	SignerListID      uint32          `json:"SignerListID"`
	OwnerNode         string          `json:"OwnerNode,omitempty"`
	PreviousTxnID     string          `json:"PreviousTxnID,omitempty"`
	PreviousTxnLgrSeq uint32          `json:"PreviousTxnLgrSeq,omitempty"`
	Index             string          `json:"index,omitempty"`
}

// SignerEntry wraps one signer as it appears in the JSON API.
type SignerEntry struct {
	SignerEntry struct {
		Account       string `json:"Account"`
		SignerWeight  uint16 `json:"SignerWeight"`
		WalletLocator string `json:"WalletLocator,omitempty"`
	} `json:"SignerEntry"`
}

func (s *SignerList) Type() Type              { return TypeSignerList }
func (s *SignerList) EntryFlags() flags.Flags { return s.Flags.Flags }

// MarshalJSON always writes LedgerEntryType as SignerList.
func (s SignerList) MarshalJSON() ([]byte, error) {
	type plain SignerList
	p := plain(s)
	p.LedgerEntryType = TypeSignerList
	return json.Marshal(p)
}

// SignerListFlags is the Flags field of a signer list.
type SignerListFlags struct {
	flags.Flags
}

// OneOwnerCount reports whether the list counts as a single owned object.
func (f SignerListFlags) OneOwnerCount() bool { return f.IsSet(flags.LsfOneOwnerCount) }
