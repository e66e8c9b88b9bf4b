package transactions

import (
	"github.com/LeJamon/xrplmodel/internal/flags"
)

// OfferCreate places an order on the decentralized exchange.
type OfferCreate struct {
	Common
	TakerGets     Amount `json:"TakerGets"`
	TakerPays     Amount `json:"TakerPays"`
	Expiration    uint32 `json:"Expiration,omitempty"`
	OfferSequence uint32 `json:"OfferSequence,omitempty"`
	DomainID      string `json:"DomainID,omitempty"`
}

// NewOfferCreate creates an OfferCreate with no flags set.
func NewOfferCreate(account string, takerGets, takerPays Amount) *OfferCreate {
	return &OfferCreate{
		Common: Common{
			Account:         account,
			TransactionType: "OfferCreate",
		},
		TakerGets: takerGets,
		TakerPays: takerPays,
	}
}

// OfferCreateFlags returns the typed view of the Flags field.
func (oc *OfferCreate) OfferCreateFlags() OfferCreateFlags {
	return OfferCreateFlags{oc.Flags}
}

// SetFlags replaces the Flags field with the encoded options.
func (oc *OfferCreate) SetFlags(o OfferCreateFlagOptions) {
	oc.Flags = o.Flags().Flags
}

// OfferCreateFlags is the Flags field of an OfferCreate.
type OfferCreateFlags struct {
	flags.Flags
}

func (f OfferCreateFlags) FullyCanonicalSig() bool { return f.IsSet(flags.TfFullyCanonicalSig) }
func (f OfferCreateFlags) Passive() bool           { return f.IsSet(flags.TfPassive) }
func (f OfferCreateFlags) ImmediateOrCancel() bool { return f.IsSet(flags.TfImmediateOrCancel) }
func (f OfferCreateFlags) FillOrKill() bool        { return f.IsSet(flags.TfFillOrKill) }
func (f OfferCreateFlags) Sell() bool              { return f.IsSet(flags.TfSell) }
func (f OfferCreateFlags) Hybrid() bool            { return f.IsSet(flags.TfHybrid) }

// OfferCreateFlagOptions selects OfferCreate flags by name.
type OfferCreateFlagOptions struct {
	FullyCanonicalSig bool
	Passive           bool
	ImmediateOrCancel bool
	FillOrKill        bool
	Sell              bool
	Hybrid            bool
}

// Flags encodes the selected options.
func (o OfferCreateFlagOptions) Flags() OfferCreateFlags {
	universal := flags.Universal.Encode(flags.Set{"tfFullyCanonicalSig": o.FullyCanonicalSig})
	return OfferCreateFlags{universal.Or(flags.OfferCreate.Encode(flags.Set{
		"tfPassive":           o.Passive,
		"tfImmediateOrCancel": o.ImmediateOrCancel,
		"tfFillOrKill":        o.FillOrKill,
		"tfSell":              o.Sell,
		"tfHybrid":            o.Hybrid,
	}))}
}
