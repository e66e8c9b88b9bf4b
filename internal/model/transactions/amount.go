package transactions

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CurrencyAmount is an issued (non-XRP) amount.
type CurrencyAmount struct {
	Currency string `json:"currency"`
	Value    string `json:"value"`
	Issuer   string `json:"issuer,omitempty"`
}

// Amount is either an XRP amount in drops or an issued amount.
type Amount struct {
	Drops  string
	Issued *CurrencyAmount
}

// XRP returns an amount of XRP drops.
func XRP(drops string) Amount {
	return Amount{Drops: drops}
}

// Issued returns an issued currency amount.
func Issued(currency, issuer, value string) Amount {
	return Amount{Issued: &CurrencyAmount{Currency: currency, Issuer: issuer, Value: value}}
}

// IsXRP reports whether the amount is denominated in drops.
func (a Amount) IsXRP() bool {
	return a.Issued == nil
}

// MarshalJSON writes drops as a string and issued amounts as an object.
func (a Amount) MarshalJSON() ([]byte, error) {
	if a.Issued != nil {
		return json.Marshal(a.Issued)
	}
	return json.Marshal(a.Drops)
}

// UnmarshalJSON accepts either form.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var drops string
		if err := json.Unmarshal(data, &drops); err != nil {
			return err
		}
		*a = XRP(drops)
		return nil
	}

	var issued CurrencyAmount
	if err := json.Unmarshal(data, &issued); err != nil {
		return fmt.Errorf("amount must be a drops string or currency object: %w", err)
	}
	*a = Amount{Issued: &issued}
	return nil
}
