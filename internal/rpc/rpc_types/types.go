// Package rpc_types holds the request parameter models for the ledger and
// account_info methods, shaped like rippled expects them on the wire.
package rpc_types

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// LedgerIndex is either a ledger sequence number or one of the shortcuts
// "current", "validated" and "closed". It unmarshals from a JSON number or
// string.
type LedgerIndex string

const (
	LedgerCurrent   LedgerIndex = "current"
	LedgerValidated LedgerIndex = "validated"
	LedgerClosed    LedgerIndex = "closed"
)

// LedgerIndexOf returns the LedgerIndex of a ledger sequence number.
func LedgerIndexOf(seq uint32) LedgerIndex {
	return LedgerIndex(strconv.FormatUint(uint64(seq), 10))
}

// UnmarshalJSON implements custom unmarshaling for LedgerIndex
func (li *LedgerIndex) UnmarshalJSON(data []byte) error {
	var strVal string
	if err := json.Unmarshal(data, &strVal); err == nil {
		*li = LedgerIndex(strVal)
		return nil
	}

	var numVal uint32
	if err := json.Unmarshal(data, &numVal); err == nil {
		*li = LedgerIndexOf(numVal)
		return nil
	}

	return fmt.Errorf("ledger_index must be a number or string, got: %s", string(data))
}

// MarshalJSON writes sequence numbers as JSON numbers and shortcuts as strings.
func (li LedgerIndex) MarshalJSON() ([]byte, error) {
	if seq, ok := li.Uint32(); ok {
		return []byte(strconv.FormatUint(uint64(seq), 10)), nil
	}
	return json.Marshal(string(li))
}

func (li LedgerIndex) String() string {
	return string(li)
}

// IsShortcut reports whether the index is one of the named shortcuts.
func (li LedgerIndex) IsShortcut() bool {
	switch li {
	case LedgerCurrent, LedgerValidated, LedgerClosed:
		return true
	}
	return false
}

// Uint32 returns the ledger sequence number if the index is numeric.
func (li LedgerIndex) Uint32() (uint32, bool) {
	seq, err := strconv.ParseUint(string(li), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(seq), true
}

// Valid reports whether the index is a shortcut or a sequence number.
func (li LedgerIndex) Valid() bool {
	if li.IsShortcut() {
		return true
	}
	_, ok := li.Uint32()
	return ok
}

// LedgerSpecifier selects which ledger a request runs against.
type LedgerSpecifier struct {
	LedgerHash  string      `json:"ledger_hash,omitempty"`
	LedgerIndex LedgerIndex `json:"ledger_index,omitempty"`
}

func (s LedgerSpecifier) validate() *RpcError {
	if s.LedgerHash != "" {
		if b, err := hex.DecodeString(s.LedgerHash); err != nil || len(b) != 32 {
			return RpcErrorInvalidField("ledger_hash")
		}
	}
	if s.LedgerIndex != "" && !s.LedgerIndex.Valid() {
		return RpcErrorInvalidField("ledger_index")
	}
	return nil
}

// LedgerRequest is the parameter object of the ledger method. The request is
// always expanded and never binary.
type LedgerRequest struct {
	LedgerSpecifier
	Full         bool `json:"full,omitempty"`
	Accounts     bool `json:"accounts,omitempty"`
	Transactions bool `json:"transactions,omitempty"`
	OwnerFunds   bool `json:"owner_funds,omitempty"`
	Queue        bool `json:"queue,omitempty"`
}

// NewLedgerRequest returns a request for the current ledger.
func NewLedgerRequest() *LedgerRequest {
	return &LedgerRequest{LedgerSpecifier: LedgerSpecifier{LedgerIndex: LedgerCurrent}}
}

// Expand is always true.
func (r LedgerRequest) Expand() bool { return true }

// Binary is always false.
func (r LedgerRequest) Binary() bool { return false }

func (r LedgerRequest) MarshalJSON() ([]byte, error) {
	type plain LedgerRequest
	return json.Marshal(struct {
		plain
		Expand bool `json:"expand"`
		Binary bool `json:"binary"`
	}{plain(r), r.Expand(), r.Binary()})
}

// UnmarshalJSON fills in the current ledger when no ledger is named.
func (r *LedgerRequest) UnmarshalJSON(data []byte) error {
	type plain LedgerRequest
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.LedgerHash == "" && p.LedgerIndex == "" {
		p.LedgerIndex = LedgerCurrent
	}
	*r = LedgerRequest(p)
	return nil
}

// Validate checks the ledger selector.
func (r *LedgerRequest) Validate() *RpcError {
	return r.validate()
}

// AccountInfoRequest is the parameter object of the account_info method.
// Strict address checking is always requested.
type AccountInfoRequest struct {
	Account string `json:"account"`
	LedgerSpecifier
	Queue       bool `json:"queue,omitempty"`
	SignerLists bool `json:"signer_lists"`
}

// NewAccountInfoRequest returns a request for the current ledger that
// includes signer lists.
func NewAccountInfoRequest(account string) *AccountInfoRequest {
	return &AccountInfoRequest{
		Account:         account,
		LedgerSpecifier: LedgerSpecifier{LedgerIndex: LedgerCurrent},
		SignerLists:     true,
	}
}

// Strict is always true.
func (r AccountInfoRequest) Strict() bool { return true }

func (r AccountInfoRequest) MarshalJSON() ([]byte, error) {
	type plain AccountInfoRequest
	return json.Marshal(struct {
		plain
		Strict bool `json:"strict"`
	}{plain(r), r.Strict()})
}

// UnmarshalJSON applies the same defaults as NewAccountInfoRequest to fields
// the input leaves out.
func (r *AccountInfoRequest) UnmarshalJSON(data []byte) error {
	type plain AccountInfoRequest
	p := plain{SignerLists: true}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.LedgerHash == "" && p.LedgerIndex == "" {
		p.LedgerIndex = LedgerCurrent
	}
	*r = AccountInfoRequest(p)
	return nil
}

// Validate checks the account and ledger selector.
func (r *AccountInfoRequest) Validate() *RpcError {
	if r.Account == "" {
		return RpcErrorMissingField("account")
	}
	if !isClassicAddress(r.Account) {
		return RpcErrorActMalformed("Account malformed.")
	}
	return r.validate()
}

const alphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

// isClassicAddress checks the shape of a classic address: the leading 'r',
// the length and the XRPL base58 alphabet. The checksum is not verified.
func isClassicAddress(s string) bool {
	if len(s) < 25 || len(s) > 35 || s[0] != 'r' {
		return false
	}
	for _, c := range s {
		if !strings.ContainsRune(alphabet, c) {
			return false
		}
	}
	return true
}
