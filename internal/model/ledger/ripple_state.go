package ledger

import (
	"encoding/json"

	"github.com/LeJamon/xrplmodel/internal/flags"
)

// IssuedAmount is a non-XRP amount.
type IssuedAmount struct {
	Currency string `json:"currency"`
	Issuer   string `json:"issuer"`
	Value    string `json:"value"`
}

// RippleState is a trust line between two accounts.
type RippleState struct {
	LedgerEntryType   Type             `json:"LedgerEntryType"`
	Flags             RippleStateFlags `json:"Flags"`
	Balance           IssuedAmount     `json:"Balance"`
	LowLimit          IssuedAmount     `json:"LowLimit"`
	HighLimit         IssuedAmount     `json:"HighLimit"`
	LowNode           string           `json:"LowNode,omitempty"`
	HighNode          string           `json:"HighNode,omitempty"`
	LowQualityIn      uint32           `json:"LowQualityIn,omitempty"`
	LowQualityOut     uint32           `json:"LowQualityOut,omitempty"`
	HighQualityIn     uint32           `json:"HighQualityIn,omitempty"`
	HighQualityOut    uint32           `json:"HighQualityOut,omitempty"`
	PreviousTxnID     string           `json:"PreviousTxnID,omitempty"`
	PreviousTxnLgrSeq uint32           `json:"PreviousTxnLgrSeq,omitempty"`
	Index             string           `json:"index,omitempty"`
}

func (rs *RippleState) Type() Type              { return TypeRippleState }
func (rs *RippleState) EntryFlags() flags.Flags { return rs.Flags.Flags }

// MarshalJSON always writes LedgerEntryType as RippleState.
func (rs RippleState) MarshalJSON() ([]byte, error) {
	type plain RippleState
	p := plain(rs)
	p.LedgerEntryType = TypeRippleState
	return json.Marshal(p)
}

// RippleStateFlags is the Flags field of a trust line.
type RippleStateFlags struct {
	flags.Flags
}

// RippleStateFlagsOf wraps a raw flags value.
func RippleStateFlagsOf(raw uint64) RippleStateFlags {
	return RippleStateFlags{flags.Of(raw)}
}

func (f RippleStateFlags) LowReserve() bool     { return f.IsSet(flags.LsfLowReserve) }
func (f RippleStateFlags) HighReserve() bool    { return f.IsSet(flags.LsfHighReserve) }
func (f RippleStateFlags) LowAuth() bool        { return f.IsSet(flags.LsfLowAuth) }
func (f RippleStateFlags) HighAuth() bool       { return f.IsSet(flags.LsfHighAuth) }
func (f RippleStateFlags) LowNoRipple() bool    { return f.IsSet(flags.LsfLowNoRipple) }
func (f RippleStateFlags) HighNoRipple() bool   { return f.IsSet(flags.LsfHighNoRipple) }
func (f RippleStateFlags) LowFreeze() bool      { return f.IsSet(flags.LsfLowFreeze) }
func (f RippleStateFlags) HighFreeze() bool     { return f.IsSet(flags.LsfHighFreeze) }
func (f RippleStateFlags) AMMNode() bool        { return f.IsSet(flags.LsfAMMNode) }
func (f RippleStateFlags) LowDeepFreeze() bool  { return f.IsSet(flags.LsfLowDeepFreeze) }
func (f RippleStateFlags) HighDeepFreeze() bool { return f.IsSet(flags.LsfHighDeepFreeze) }

// Named returns every trust line flag by name.
func (f RippleStateFlags) Named() flags.Set {
	return flags.RippleState.Decode(f.Flags)
}

// RippleStateFlagOptions selects trust line flags by name.
type RippleStateFlagOptions struct {
	LowReserve     bool
	HighReserve    bool
	LowAuth        bool
	HighAuth       bool
	LowNoRipple    bool
	HighNoRipple   bool
	LowFreeze      bool
	HighFreeze     bool
	AMMNode        bool
	LowDeepFreeze  bool
	HighDeepFreeze bool
}

// Flags encodes the selected options.
func (o RippleStateFlagOptions) Flags() RippleStateFlags {
	return RippleStateFlags{flags.RippleState.Encode(flags.Set{
		"lsfLowReserve":     o.LowReserve,
		"lsfHighReserve":    o.HighReserve,
		"lsfLowAuth":        o.LowAuth,
		"lsfHighAuth":       o.HighAuth,
		"lsfLowNoRipple":    o.LowNoRipple,
		"lsfHighNoRipple":   o.HighNoRipple,
		"lsfLowFreeze":      o.LowFreeze,
		"lsfHighFreeze":     o.HighFreeze,
		"lsfAMMNode":        o.AMMNode,
		"lsfLowDeepFreeze":  o.LowDeepFreeze,
		"lsfHighDeepFreeze": o.HighDeepFreeze,
	})}
}
