// Package transactions models outgoing and decoded XRPL transactions in their
// JSON form. Flags are composed from named options and can be derived back
// into named booleans.
package transactions

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/LeJamon/xrplmodel/internal/flags"
)

// Errors returned when reading transactions
var (
	ErrMissingType = errors.New("missing TransactionType")
	ErrInvalidTx   = errors.New("invalid transaction")
)

// catalogs maps transaction types with type-specific flags to their catalog.
var catalogs = map[string]*flags.Catalog{
	"Payment":               flags.Payment,
	"TrustSet":              flags.TrustSet,
	"OfferCreate":           flags.OfferCreate,
	"AccountSet":            flags.AccountSet,
	"PaymentChannelClaim":   flags.PaymentChannelClaim,
	"NFTokenMint":           flags.NFTokenMint,
	"NFTokenCreateOffer":    flags.NFTokenCreateOffer,
	"EnableAmendment":       flags.EnableAmendment,
	"AMMDeposit":            flags.AMMDeposit,
	"AMMWithdraw":           flags.AMMWithdraw,
	"AMMClawback":           flags.AMMClawback,
	"XChainModifyBridge":    flags.XChainModifyBridge,
	"MPTokenIssuanceCreate": flags.MPTokenIssuanceCreate,
	"MPTokenAuthorize":      flags.MPTokenAuthorize,
	"MPTokenIssuanceSet":    flags.MPTokenIssuanceSet,
}

// CatalogFor returns the type-specific flag catalog of a transaction type.
// Universal flags are not part of it.
func CatalogFor(txType string) (*flags.Catalog, bool) {
	c, ok := catalogs[txType]
	return c, ok
}

// Transaction is implemented by every transaction model.
type Transaction interface {
	TxType() string
	TxFlags() flags.Flags
}

// DecodeFlags derives the universal flags plus the type-specific flags of a
// transaction. Universal and type-specific names never collide.
func DecodeFlags(tx Transaction) flags.Set {
	out := flags.Universal.Decode(tx.TxFlags())
	if c, ok := CatalogFor(tx.TxType()); ok {
		for name, on := range c.Decode(tx.TxFlags()) {
			out[name] = on
		}
	}
	return out
}

// Common holds the fields shared by all transactions.
type Common struct {
	Account            string      `json:"Account"`
	TransactionType    string      `json:"TransactionType"`
	Fee                string      `json:"Fee,omitempty"`
	Sequence           uint32      `json:"Sequence,omitempty"`
	AccountTxnID       string      `json:"AccountTxnID,omitempty"`
	Flags              flags.Flags `json:"Flags,omitempty"`
	LastLedgerSequence uint32      `json:"LastLedgerSequence,omitempty"`
	Memos              []Memo      `json:"Memos,omitempty"`
	NetworkID          uint32      `json:"NetworkID,omitempty"`
	Signers            []Signer    `json:"Signers,omitempty"`
	SourceTag          uint32      `json:"SourceTag,omitempty"`
	SigningPubKey      string      `json:"SigningPubKey,omitempty"`
	TicketSequence     uint32      `json:"TicketSequence,omitempty"`
	TxnSignature       string      `json:"TxnSignature,omitempty"`
}

func (c *Common) TxType() string       { return c.TransactionType }
func (c *Common) TxFlags() flags.Flags { return c.Flags }

// Memo is an arbitrary annotation attached to a transaction.
type Memo struct {
	Memo struct {
		MemoType   string `json:"MemoType,omitempty"`
		MemoData   string `json:"MemoData,omitempty"`
		MemoFormat string `json:"MemoFormat,omitempty"`
	} `json:"Memo"`
}

// Signer is one signature of a multi-signed transaction.
type Signer struct {
	Signer struct {
		Account       string `json:"Account"`
		SigningPubKey string `json:"SigningPubKey"`
		TxnSignature  string `json:"TxnSignature"`
	} `json:"Signer"`
}

// Unmarshal reads a transaction from its JSON form, choosing the model from
// the TransactionType field. Types without a dedicated model are read into a
// *Common.
func Unmarshal(data []byte) (Transaction, error) {
	var head struct {
		TransactionType string `json:"TransactionType"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTx, err)
	}
	if head.TransactionType == "" {
		return nil, ErrMissingType
	}

	var tx Transaction
	switch head.TransactionType {
	case "Payment":
		tx = &Payment{}
	case "TrustSet":
		tx = &TrustSet{}
	case "OfferCreate":
		tx = &OfferCreate{}
	case "AccountSet":
		tx = &AccountSet{}
	default:
		tx = &Common{}
	}

	if err := json.Unmarshal(data, tx); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidTx, head.TransactionType, err)
	}
	return tx, nil
}
