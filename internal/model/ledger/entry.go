// Package ledger models XRPL ledger entries as returned by the JSON API, with
// typed accessors over each entry's Flags field.
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/LeJamon/xrplmodel/internal/flags"
)

// Type represents a ledger entry type
type Type uint16

// All known ledger entry types
// Reference: rippled/include/xrpl/protocol/detail/ledger_entries.macro
const (
	TypeNFTokenOffer                    Type = 0x0037
	TypeCheck                           Type = 0x0043
	TypeDID                             Type = 0x0049
	TypeNegativeUNL                     Type = 0x004e
	TypeNFTokenPage                     Type = 0x0050
	TypeSignerList                      Type = 0x0053
	TypeTicket                          Type = 0x0054
	TypeAccountRoot                     Type = 0x0061
	TypeDirectoryNode                   Type = 0x0064
	TypeAmendments                      Type = 0x0066
	TypeLedgerHashes                    Type = 0x0068
	TypeBridge                          Type = 0x0069
	TypeOffer                           Type = 0x006f
	TypeDepositPreauth                  Type = 0x0070
	TypeXChainOwnedClaimID              Type = 0x0071
	TypeRippleState                     Type = 0x0072
	TypeFeeSettings                     Type = 0x0073
	TypeXChainOwnedCreateAccountClaimID Type = 0x0074
	TypeEscrow                          Type = 0x0075
	TypePayChannel                      Type = 0x0078
	TypeAMM                             Type = 0x0079
	TypeMPTokenIssuance                 Type = 0x007e
	TypeMPToken                         Type = 0x007f
	TypeOracle                          Type = 0x0080
	TypeCredential                      Type = 0x0081
	TypePermissionedDomain              Type = 0x0082
	TypeDelegate                        Type = 0x0083
	TypeVault                           Type = 0x0084
)

var typeNames = map[Type]string{
	TypeNFTokenOffer:                    "NFTokenOffer",
	TypeCheck:                           "Check",
	TypeDID:                             "DID",
	TypeNegativeUNL:                     "NegativeUNL",
	TypeNFTokenPage:                     "NFTokenPage",
	TypeSignerList:                      "SignerList",
	TypeTicket:                          "Ticket",
	TypeAccountRoot:                     "AccountRoot",
	TypeDirectoryNode:                   "DirectoryNode",
	TypeAmendments:                      "Amendments",
	TypeLedgerHashes:                    "LedgerHashes",
	TypeBridge:                          "Bridge",
	TypeOffer:                           "Offer",
	TypeDepositPreauth:                  "DepositPreauth",
	TypeXChainOwnedClaimID:              "XChainOwnedClaimID",
	TypeRippleState:                     "RippleState",
	TypeFeeSettings:                     "FeeSettings",
	TypeXChainOwnedCreateAccountClaimID: "XChainOwnedCreateAccountClaimID",
	TypeEscrow:                          "Escrow",
	TypePayChannel:                      "PayChannel",
	TypeAMM:                             "AMM",
	TypeMPTokenIssuance:                 "MPTokenIssuance",
	TypeMPToken:                         "MPToken",
	TypeOracle:                          "Oracle",
	TypeCredential:                      "Credential",
	TypePermissionedDomain:              "PermissionedDomain",
	TypeDelegate:                        "Delegate",
	TypeVault:                           "Vault",
}

var typeByName = func() map[string]Type {
	m := make(map[string]Type, len(typeNames))
	for t, name := range typeNames {
		m[name] = t
	}
	return m
}()

// catalogs maps the entry types that define flags to their catalog.
var catalogs = map[Type]*flags.Catalog{
	TypeAccountRoot:     flags.AccountRoot,
	TypeRippleState:     flags.RippleState,
	TypeOffer:           flags.Offer,
	TypeSignerList:      flags.SignerList,
	TypeNFTokenOffer:    flags.NFTokenOffer,
	TypeMPTokenIssuance: flags.MPTokenIssuance,
	TypeMPToken:         flags.MPToken,
}

// Errors returned when reading ledger entries
var (
	ErrUnknownType  = errors.New("unknown ledger entry type")
	ErrMissingType  = errors.New("missing LedgerEntryType")
	ErrInvalidEntry = errors.New("invalid entry")
)

// String returns the string representation of the Type
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%#x)", uint16(t))
}

// TypeFromName returns the entry type for its JSON name.
func TypeFromName(name string) (Type, bool) {
	t, ok := typeByName[name]
	return t, ok
}

// Catalog returns the flag catalog for the entry type, if it defines flags.
func (t Type) Catalog() (*flags.Catalog, bool) {
	c, ok := catalogs[t]
	return c, ok
}

// MarshalJSON writes the type as its name.
func (t Type) MarshalJSON() ([]byte, error) {
	name, ok := typeNames[t]
	if !ok {
		return nil, fmt.Errorf("%w: %#x", ErrUnknownType, uint16(t))
	}
	return json.Marshal(name)
}

// UnmarshalJSON reads the type from its name.
func (t *Type) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("LedgerEntryType must be a string: %w", err)
	}
	v, ok := TypeFromName(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	*t = v
	return nil
}

// Entry is implemented by every ledger entry model.
type Entry interface {
	Type() Type
	EntryFlags() flags.Flags
}

// DecodeFlags derives the named flags of an entry. It returns false when the
// entry type defines no flags.
func DecodeFlags(e Entry) (flags.Set, bool) {
	c, ok := e.Type().Catalog()
	if !ok {
		return nil, false
	}
	return c.Decode(e.EntryFlags()), true
}

// Unmarshal reads a ledger entry from its JSON form, choosing the model from
// the LedgerEntryType field. Entry types without a dedicated model are read
// into a Generic.
func Unmarshal(data []byte) (Entry, error) {
	var head struct {
		LedgerEntryType *Type `json:"LedgerEntryType"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}
	if head.LedgerEntryType == nil {
		return nil, ErrMissingType
	}

	var e Entry
	switch *head.LedgerEntryType {
	case TypeRippleState:
		e = &RippleState{}
	case TypeAccountRoot:
		e = &AccountRoot{}
	case TypeOffer:
		e = &Offer{}
	case TypeSignerList:
		e = &SignerList{}
	default:
		e = &Generic{}
	}

	if err := json.Unmarshal(data, e); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidEntry, *head.LedgerEntryType, err)
	}
	return e, nil
}

// Generic holds the common fields of any ledger entry.
type Generic struct {
	LedgerEntryType Type        `json:"LedgerEntryType"`
	Flags           flags.Flags `json:"Flags"`
	Index           string      `json:"index,omitempty"`
}

func (g *Generic) Type() Type              { return g.LedgerEntryType }
func (g *Generic) EntryFlags() flags.Flags { return g.Flags }
