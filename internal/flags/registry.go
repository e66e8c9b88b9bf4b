package flags

import (
	"sort"
	"strings"
)

// registry indexes every catalog by normalized name. It is filled during
// package initialization and only read afterwards.
var registry = buildRegistry(
	Universal,
	Payment,
	TrustSet,
	OfferCreate,
	AccountSet,
	PaymentChannelClaim,
	NFTokenMint,
	NFTokenCreateOffer,
	EnableAmendment,
	AMMDeposit,
	AMMWithdraw,
	AMMClawback,
	XChainModifyBridge,
	MPTokenIssuanceCreate,
	MPTokenAuthorize,
	MPTokenIssuanceSet,
	AccountRoot,
	RippleState,
	Offer,
	SignerList,
	NFTokenOffer,
	MPTokenIssuance,
	MPToken,
)

func buildRegistry(catalogs ...*Catalog) map[string]*Catalog {
	m := make(map[string]*Catalog, len(catalogs))
	for _, c := range catalogs {
		m[normalizeName(c.Name())] = c
	}
	return m
}

// normalizeName folds case and drops '-' and '_' so that "ripple-state",
// "ripple_state" and "RippleState" resolve to the same catalog.
func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("-", "", "_", "").Replace(name)
}

// Lookup returns the catalog for an entity type name.
func Lookup(entity string) (*Catalog, bool) {
	c, ok := registry[normalizeName(entity)]
	return c, ok
}

// Catalogs returns every registered catalog sorted by name.
func Catalogs() []*Catalog {
	out := make([]*Catalog, 0, len(registry))
	for _, c := range registry {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name() < out[j].Name()
	})
	return out
}
