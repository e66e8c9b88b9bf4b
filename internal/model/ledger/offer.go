package ledger

import (
	"encoding/json"

	"github.com/LeJamon/xrplmodel/internal/flags"
)

// Offer is an order on the decentralized exchange. TakerGets and TakerPays are
// kept raw because they may be either a drops string or an IssuedAmount.
type Offer struct {
	LedgerEntryType   Type            `json:"LedgerEntryType"`
	Flags             OfferFlags      `json:"Flags"`
	Account           string          `json:"Account"`
	Sequence          uint32          `json:"Sequence"`
	TakerGets         json.RawMessage `json:"TakerGets,omitempty"`
	TakerPays         json.RawMessage `json:"TakerPays,omitempty"`
	BookDirectory     string          `json:"BookDirectory,omitempty"`
	BookNode          string          `json:"BookNode,omitempty"`
	OwnerNode         string          `json:"OwnerNode,omitempty"`
	Expiration        uint32          `json:"Expiration,omitempty"`
	PreviousTxnID     string          `json:"PreviousTxnID,omitempty"`
	PreviousTxnLgrSeq uint32          `json:"PreviousTxnLgrSeq,omitempty"`
	Index             string          `json:"index,omitempty"`
}

func (o *Offer) Type() Type              { return TypeOffer }
func (o *Offer) EntryFlags() flags.Flags { return o.Flags.Flags }

// MarshalJSON always writes LedgerEntryType as Offer.
func (o Offer) MarshalJSON() ([]byte, error) {
	type plain Offer
	p := plain(o)
	p.LedgerEntryType = TypeOffer
	return json.Marshal(p)
}

// OfferFlags is the Flags field of an offer.
type OfferFlags struct {
	flags.Flags
}

func (f OfferFlags) Passive() bool { return f.IsSet(flags.LsfPassive) }
func (f OfferFlags) Sell() bool    { return f.IsSet(flags.LsfSell) }
func (f OfferFlags) Hybrid() bool  { return f.IsSet(flags.LsfHybrid) }
