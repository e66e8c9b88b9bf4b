package flags

// AccountRoot ledger entry flags (lsf = Ledger State Flag)
const (
	LsfPasswordSpent                Flags = 0x00010000
	LsfRequireDestTag               Flags = 0x00020000
	LsfRequireAuth                  Flags = 0x00040000
	LsfDisallowXRP                  Flags = 0x00080000
	LsfDisableMaster                Flags = 0x00100000
	LsfNoFreeze                     Flags = 0x00200000
	LsfGlobalFreeze                 Flags = 0x00400000
	LsfDefaultRipple                Flags = 0x00800000
	LsfDepositAuth                  Flags = 0x01000000
	LsfAMM                          Flags = 0x02000000
	LsfDisallowIncomingNFTokenOffer Flags = 0x04000000
	LsfDisallowIncomingCheck        Flags = 0x08000000
	LsfDisallowIncomingPayChan      Flags = 0x10000000
	LsfDisallowIncomingTrustline    Flags = 0x20000000
	LsfAllowTrustLineClawback       Flags = 0x80000000
)

// RippleState (trust line) flags
const (
	LsfLowReserve     Flags = 0x00010000
	LsfHighReserve    Flags = 0x00020000
	LsfLowAuth        Flags = 0x00040000
	LsfHighAuth       Flags = 0x00080000
	LsfLowNoRipple    Flags = 0x00100000
	LsfHighNoRipple   Flags = 0x00200000
	LsfLowFreeze      Flags = 0x00400000
	LsfHighFreeze     Flags = 0x00800000
	LsfAMMNode        Flags = 0x01000000
	LsfLowDeepFreeze  Flags = 0x02000000
	LsfHighDeepFreeze Flags = 0x04000000
)

// Offer flags
const (
	LsfPassive Flags = 0x00010000
	LsfSell    Flags = 0x00020000
	LsfHybrid  Flags = 0x00040000
)

// SignerList flags
const (
	// LsfOneOwnerCount marks a signer list that counts as a single owned object.
	LsfOneOwnerCount Flags = 0x00010000
)

// NFTokenOffer flags
const (
	LsfSellNFToken Flags = 0x00000001
)

// MPTokenIssuance and MPToken flags
const (
	LsfMPTLocked      Flags = 0x00000001 // also used in MPToken
	LsfMPTCanLock     Flags = 0x00000002
	LsfMPTRequireAuth Flags = 0x00000004
	LsfMPTCanEscrow   Flags = 0x00000008
	LsfMPTCanTrade    Flags = 0x00000010
	LsfMPTCanTransfer Flags = 0x00000020
	LsfMPTCanClawback Flags = 0x00000040

	// LsfMPTAuthorized is set on the holder's MPToken entry.
	LsfMPTAuthorized Flags = 0x00000002
)

// Ledger entry catalogs.
var (
	AccountRoot = NewCatalog("AccountRoot", []Flag{
		{"lsfPasswordSpent", LsfPasswordSpent},
		{"lsfRequireDestTag", LsfRequireDestTag},
		{"lsfRequireAuth", LsfRequireAuth},
		{"lsfDisallowXRP", LsfDisallowXRP},
		{"lsfDisableMaster", LsfDisableMaster},
		{"lsfNoFreeze", LsfNoFreeze},
		{"lsfGlobalFreeze", LsfGlobalFreeze},
		{"lsfDefaultRipple", LsfDefaultRipple},
		{"lsfDepositAuth", LsfDepositAuth},
		{"lsfAMM", LsfAMM},
		{"lsfDisallowIncomingNFTokenOffer", LsfDisallowIncomingNFTokenOffer},
		{"lsfDisallowIncomingCheck", LsfDisallowIncomingCheck},
		{"lsfDisallowIncomingPayChan", LsfDisallowIncomingPayChan},
		{"lsfDisallowIncomingTrustline", LsfDisallowIncomingTrustline},
		{"lsfAllowTrustLineClawback", LsfAllowTrustLineClawback},
	})

	RippleState = NewCatalog("RippleState", []Flag{
		{"lsfLowReserve", LsfLowReserve},
		{"lsfHighReserve", LsfHighReserve},
		{"lsfLowAuth", LsfLowAuth},
		{"lsfHighAuth", LsfHighAuth},
		{"lsfLowNoRipple", LsfLowNoRipple},
		{"lsfHighNoRipple", LsfHighNoRipple},
		{"lsfLowFreeze", LsfLowFreeze},
		{"lsfHighFreeze", LsfHighFreeze},
		{"lsfAMMNode", LsfAMMNode},
		{"lsfLowDeepFreeze", LsfLowDeepFreeze},
		{"lsfHighDeepFreeze", LsfHighDeepFreeze},
	})

	Offer = NewCatalog("Offer", []Flag{
		{"lsfPassive", LsfPassive},
		{"lsfSell", LsfSell},
		{"lsfHybrid", LsfHybrid},
	})

	SignerList = NewCatalog("SignerList", []Flag{
		{"lsfOneOwnerCount", LsfOneOwnerCount},
	})

	NFTokenOffer = NewCatalog("NFTokenOffer", []Flag{
		{"lsfSellNFToken", LsfSellNFToken},
	})

	MPTokenIssuance = NewCatalog("MPTokenIssuance", []Flag{
		{"lsfMPTLocked", LsfMPTLocked},
		{"lsfMPTCanLock", LsfMPTCanLock},
		{"lsfMPTRequireAuth", LsfMPTRequireAuth},
		{"lsfMPTCanEscrow", LsfMPTCanEscrow},
		{"lsfMPTCanTrade", LsfMPTCanTrade},
		{"lsfMPTCanTransfer", LsfMPTCanTransfer},
		{"lsfMPTCanClawback", LsfMPTCanClawback},
	})

	MPToken = NewCatalog("MPToken", []Flag{
		{"lsfMPTLocked", LsfMPTLocked},
		{"lsfMPTAuthorized", LsfMPTAuthorized},
	})
)
