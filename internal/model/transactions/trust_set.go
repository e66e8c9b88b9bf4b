package transactions

import (
	"github.com/LeJamon/xrplmodel/internal/flags"
)

// TrustSet creates or modifies a trust line.
type TrustSet struct {
	Common
	LimitAmount CurrencyAmount `json:"LimitAmount"`
	QualityIn   uint32         `json:"QualityIn,omitempty"`
	QualityOut  uint32         `json:"QualityOut,omitempty"`
}

// NewTrustSet creates a TrustSet with no flags set.
func NewTrustSet(account string, limit CurrencyAmount) *TrustSet {
	return &TrustSet{
		Common: Common{
			Account:         account,
			TransactionType: "TrustSet",
		},
		LimitAmount: limit,
	}
}

// TrustSetFlags returns the typed view of the Flags field.
func (ts *TrustSet) TrustSetFlags() TrustSetFlags {
	return TrustSetFlags{ts.Flags}
}

// SetFlags replaces the Flags field with the encoded options.
func (ts *TrustSet) SetFlags(o TrustSetFlagOptions) {
	ts.Flags = o.Flags().Flags
}

// TrustSetFlags is the Flags field of a TrustSet.
type TrustSetFlags struct {
	flags.Flags
}

func (f TrustSetFlags) FullyCanonicalSig() bool { return f.IsSet(flags.TfFullyCanonicalSig) }
func (f TrustSetFlags) SetfAuth() bool          { return f.IsSet(flags.TfSetfAuth) }
func (f TrustSetFlags) SetNoRipple() bool       { return f.IsSet(flags.TfSetNoRipple) }
func (f TrustSetFlags) ClearNoRipple() bool     { return f.IsSet(flags.TfClearNoRipple) }
func (f TrustSetFlags) SetFreeze() bool         { return f.IsSet(flags.TfSetFreeze) }
func (f TrustSetFlags) ClearFreeze() bool       { return f.IsSet(flags.TfClearFreeze) }
func (f TrustSetFlags) SetDeepFreeze() bool     { return f.IsSet(flags.TfSetDeepFreeze) }
func (f TrustSetFlags) ClearDeepFreeze() bool   { return f.IsSet(flags.TfClearDeepFreeze) }

// TrustSetFlagOptions selects TrustSet flags by name.
type TrustSetFlagOptions struct {
	FullyCanonicalSig bool
	SetfAuth          bool
	SetNoRipple       bool
	ClearNoRipple     bool
	SetFreeze         bool
	ClearFreeze       bool
	SetDeepFreeze     bool
	ClearDeepFreeze   bool
}

// Flags encodes the selected options.
func (o TrustSetFlagOptions) Flags() TrustSetFlags {
	universal := flags.Universal.Encode(flags.Set{"tfFullyCanonicalSig": o.FullyCanonicalSig})
	return TrustSetFlags{universal.Or(flags.TrustSet.Encode(flags.Set{
		"tfSetfAuth":        o.SetfAuth,
		"tfSetNoRipple":     o.SetNoRipple,
		"tfClearNoRipple":   o.ClearNoRipple,
		"tfSetFreeze":       o.SetFreeze,
		"tfClearFreeze":     o.ClearFreeze,
		"tfSetDeepFreeze":   o.SetDeepFreeze,
		"tfClearDeepFreeze": o.ClearDeepFreeze,
	}))}
}
