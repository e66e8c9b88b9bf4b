package transactions

import (
	"github.com/LeJamon/xrplmodel/internal/flags"
)

// Payment represents a Payment transaction.
type Payment struct {
	Common
	Amount         Amount            `json:"Amount"`
	DeliverMax     *Amount           `json:"DeliverMax,omitempty"`
	DeliverMin     *Amount           `json:"DeliverMin,omitempty"`
	Destination    string            `json:"Destination"`
	DestinationTag *uint32           `json:"DestinationTag,omitempty"`
	InvoiceID      string            `json:"InvoiceID,omitempty"`
	Paths          [][][]PathElement `json:"Paths,omitempty"`
	SendMax        *Amount           `json:"SendMax,omitempty"`
}

// PathElement represents a single element in a payment path.
type PathElement struct {
	Account  string `json:"account,omitempty"`
	Currency string `json:"currency,omitempty"`
	Issuer   string `json:"issuer,omitempty"`
}

// NewPayment creates a Payment with no flags set.
func NewPayment(account, destination string, amount Amount) *Payment {
	return &Payment{
		Common: Common{
			Account:         account,
			TransactionType: "Payment",
		},
		Amount:      amount,
		Destination: destination,
	}
}

// PaymentFlags returns the typed view of the Flags field.
func (p *Payment) PaymentFlags() PaymentFlags {
	return PaymentFlags{p.Flags}
}

// SetFlags replaces the Flags field with the encoded options.
func (p *Payment) SetFlags(o PaymentFlagOptions) {
	p.Flags = o.Flags().Flags
}

// PaymentFlags is the Flags field of a Payment.
type PaymentFlags struct {
	flags.Flags
}

func (f PaymentFlags) FullyCanonicalSig() bool { return f.IsSet(flags.TfFullyCanonicalSig) }
func (f PaymentFlags) NoRippleDirect() bool    { return f.IsSet(flags.TfNoRippleDirect) }
func (f PaymentFlags) PartialPayment() bool    { return f.IsSet(flags.TfPartialPayment) }
func (f PaymentFlags) LimitQuality() bool      { return f.IsSet(flags.TfLimitQuality) }

// PaymentFlagOptions selects Payment flags by name.
type PaymentFlagOptions struct {
	FullyCanonicalSig bool
	NoRippleDirect    bool
	PartialPayment    bool
	LimitQuality      bool
}

// Flags encodes the selected options.
func (o PaymentFlagOptions) Flags() PaymentFlags {
	universal := flags.Universal.Encode(flags.Set{"tfFullyCanonicalSig": o.FullyCanonicalSig})
	return PaymentFlags{universal.Or(flags.Payment.Encode(flags.Set{
		"tfNoRippleDirect": o.NoRippleDirect,
		"tfPartialPayment": o.PartialPayment,
		"tfLimitQuality":   o.LimitQuality,
	}))}
}
