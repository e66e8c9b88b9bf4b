// Package flags provides the typed bitmask used by XRPL transaction and ledger
// entry Flags fields, plus the per-entity catalogs of named flag bits.
// Reference: rippled/include/xrpl/protocol/TxFlags.h and LedgerFormats.h
package flags

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Flags is the raw value of a Flags field. Values are immutable; every
// operation returns a new Flags.
type Flags uint64

// Unset is the value with no flags set.
const Unset Flags = 0

// ErrInvalidFlags is returned when a wire value cannot be read as a flags integer.
var ErrInvalidFlags = errors.New("invalid flags")

// Of wraps a raw integer unchanged.
func Of(raw uint64) Flags {
	return Flags(raw)
}

// OfSigned reinterprets a signed integer as its unsigned bit pattern.
func OfSigned(raw int64) Flags {
	return Flags(uint64(raw))
}

// Value returns the raw integer.
func (f Flags) Value() uint64 {
	return uint64(f)
}

// Or returns the union of the bits of f and other.
func (f Flags) Or(other Flags) Flags {
	return f | other
}

// And returns the intersection of the bits of f and other.
func (f Flags) And(other Flags) Flags {
	return f & other
}

// IsSet reports whether every bit of flag is present in f. For a group mask this
// is an "all bits" test, not "any bit".
func (f Flags) IsSet(flag Flags) bool {
	return f&flag == flag
}

// IsUnset reports whether no bits are set.
func (f Flags) IsUnset() bool {
	return f == Unset
}

// String returns the decimal form used on the wire.
func (f Flags) String() string {
	return strconv.FormatUint(uint64(f), 10)
}

// Hex returns the value as a zero-padded hexadecimal string.
func (f Flags) Hex() string {
	return fmt.Sprintf("0x%08X", uint64(f))
}

// BitwiseOr returns a | b.
func BitwiseOr(a, b Flags) Flags {
	return a.Or(b)
}

// BitwiseAnd returns a & b.
func BitwiseAnd(a, b Flags) Flags {
	return a.And(b)
}

// IsSet reports whether every bit of flag is present in value.
func IsSet(value, flag Flags) bool {
	return value.IsSet(flag)
}

// Combine ORs all values together, starting from Unset.
func Combine(values ...Flags) Flags {
	out := Unset
	for _, v := range values {
		out = out.Or(v)
	}
	return out
}

// Parse reads a flags value from its wire text. Decimal and 0x-prefixed
// hexadecimal are accepted. A leading minus sign is read as a signed 64-bit
// integer and reinterpreted as its bit pattern.
func Parse(s string) (Flags, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unset, fmt.Errorf("empty value: %w", ErrInvalidFlags)
	}

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return Unset, fmt.Errorf("hex value %q: %w", s, ErrInvalidFlags)
		}
		return Of(v), nil
	}

	if strings.HasPrefix(s, "-") {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Unset, fmt.Errorf("signed value %q: %w", s, ErrInvalidFlags)
		}
		return OfSigned(v), nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return Unset, fmt.Errorf("decimal value %q: %w", s, ErrInvalidFlags)
	}
	return Of(v), nil
}

// MarshalJSON writes the value as a bare decimal number.
func (f Flags) MarshalJSON() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalJSON accepts a JSON number or a string holding a decimal or hex value.
// A JSON null leaves the value unchanged.
func (f *Flags) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		v, err := Parse(str)
		if err != nil {
			return err
		}
		*f = v
		return nil
	}

	// Parse the literal directly so large values do not pass through float64.
	v, err := Parse(string(data))
	if err != nil {
		return fmt.Errorf("flags must be a number or string, got %s: %w", string(data), ErrInvalidFlags)
	}
	*f = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (f Flags) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Flags) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
