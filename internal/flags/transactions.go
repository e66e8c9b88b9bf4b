package flags

// Universal transaction flags. These are allowed on every transaction type.
const (
	TfFullyCanonicalSig Flags = 0x80000000
	TfInnerBatchTxn     Flags = 0x40000000

	// TfUniversalBitmask covers the high byte reserved for universal flags.
	TfUniversalBitmask Flags = 0xff000000
)

// Payment flags:
const (
	TfNoRippleDirect Flags = 0x00010000
	TfPartialPayment Flags = 0x00020000
	TfLimitQuality   Flags = 0x00040000

	// TfPaymentBitmask covers the byte reserved for Payment-specific flags.
	TfPaymentBitmask Flags = 0x00ff0000
)

// TrustSet flags:
const (
	TfSetfAuth        Flags = 0x00010000
	TfSetNoRipple     Flags = 0x00020000
	TfClearNoRipple   Flags = 0x00040000
	TfSetFreeze       Flags = 0x00100000
	TfClearFreeze     Flags = 0x00200000
	TfSetDeepFreeze   Flags = 0x00400000
	TfClearDeepFreeze Flags = 0x00800000
)

// OfferCreate flags:
const (
	TfPassive           Flags = 0x00010000
	TfImmediateOrCancel Flags = 0x00020000
	TfFillOrKill        Flags = 0x00040000
	TfSell              Flags = 0x00080000
	TfHybrid            Flags = 0x00100000
)

// AccountSet flags:
const (
	TfRequireDestTag  Flags = 0x00010000
	TfOptionalDestTag Flags = 0x00020000
	TfRequireAuth     Flags = 0x00040000
	TfOptionalAuth    Flags = 0x00080000
	TfDisallowXRP     Flags = 0x00100000
	TfAllowXRP        Flags = 0x00200000
)

// PaymentChannelClaim flags:
const (
	TfRenew Flags = 0x00010000
	TfClose Flags = 0x00020000
)

// NFTokenMint flags:
const (
	TfBurnable     Flags = 0x00000001
	TfOnlyXRP      Flags = 0x00000002
	TfTrustLine    Flags = 0x00000004
	TfTransferable Flags = 0x00000008
)

// NFTokenCreateOffer flags:
const (
	TfSellNFToken Flags = 0x00000001
)

// EnableAmendment flags:
const (
	TfGotMajority  Flags = 0x00010000
	TfLostMajority Flags = 0x00020000
)

// AMMDeposit and AMMWithdraw flags:
const (
	TfLPToken             Flags = 0x00010000
	TfWithdrawAll         Flags = 0x00020000
	TfOneAssetWithdrawAll Flags = 0x00040000
	TfSingleAsset         Flags = 0x00080000
	TfTwoAsset            Flags = 0x00100000
	TfOneAssetLPToken     Flags = 0x00200000
	TfLimitLPToken        Flags = 0x00400000
	TfTwoAssetIfEmpty     Flags = 0x00800000
)

// AMMClawback flags:
const (
	TfClawTwoAssets Flags = 0x00000001
)

// XChainModifyBridge flags:
const (
	TfClearAccountCreateAmount Flags = 0x00010000
)

// MPTokenIssuanceCreate flags. These map directly to the issuance ledger flags.
const (
	TfMPTCanLock     Flags = 0x00000002
	TfMPTRequireAuth Flags = 0x00000004
	TfMPTCanEscrow   Flags = 0x00000008
	TfMPTCanTrade    Flags = 0x00000010
	TfMPTCanTransfer Flags = 0x00000020
	TfMPTCanClawback Flags = 0x00000040
)

// MPTokenAuthorize flags:
const (
	TfMPTUnauthorize Flags = 0x00000001
)

// MPTokenIssuanceSet flags:
const (
	TfMPTLock   Flags = 0x00000001
	TfMPTUnlock Flags = 0x00000002
)

// Transaction catalogs. Per-type catalogs do not repeat the universal flags.
var (
	Universal = NewCatalog("Universal", []Flag{
		{"tfFullyCanonicalSig", TfFullyCanonicalSig},
		{"tfInnerBatchTxn", TfInnerBatchTxn},
	}, Flag{"tfUniversalBitmask", TfUniversalBitmask})

	Payment = NewCatalog("Payment", []Flag{
		{"tfNoRippleDirect", TfNoRippleDirect},
		{"tfPartialPayment", TfPartialPayment},
		{"tfLimitQuality", TfLimitQuality},
	}, Flag{"tfPaymentBitmask", TfPaymentBitmask})

	TrustSet = NewCatalog("TrustSet", []Flag{
		{"tfSetfAuth", TfSetfAuth},
		{"tfSetNoRipple", TfSetNoRipple},
		{"tfClearNoRipple", TfClearNoRipple},
		{"tfSetFreeze", TfSetFreeze},
		{"tfClearFreeze", TfClearFreeze},
		{"tfSetDeepFreeze", TfSetDeepFreeze},
		{"tfClearDeepFreeze", TfClearDeepFreeze},
	})

	OfferCreate = NewCatalog("OfferCreate", []Flag{
		{"tfPassive", TfPassive},
		{"tfImmediateOrCancel", TfImmediateOrCancel},
		{"tfFillOrKill", TfFillOrKill},
		{"tfSell", TfSell},
		{"tfHybrid", TfHybrid},
	})

	AccountSet = NewCatalog("AccountSet", []Flag{
		{"tfRequireDestTag", TfRequireDestTag},
		{"tfOptionalDestTag", TfOptionalDestTag},
		{"tfRequireAuth", TfRequireAuth},
		{"tfOptionalAuth", TfOptionalAuth},
		{"tfDisallowXRP", TfDisallowXRP},
		{"tfAllowXRP", TfAllowXRP},
	})

	PaymentChannelClaim = NewCatalog("PaymentChannelClaim", []Flag{
		{"tfRenew", TfRenew},
		{"tfClose", TfClose},
	})

	NFTokenMint = NewCatalog("NFTokenMint", []Flag{
		{"tfBurnable", TfBurnable},
		{"tfOnlyXRP", TfOnlyXRP},
		{"tfTrustLine", TfTrustLine},
		{"tfTransferable", TfTransferable},
	})

	NFTokenCreateOffer = NewCatalog("NFTokenCreateOffer", []Flag{
		{"tfSellNFToken", TfSellNFToken},
	})

	EnableAmendment = NewCatalog("EnableAmendment", []Flag{
		{"tfGotMajority", TfGotMajority},
		{"tfLostMajority", TfLostMajority},
	})

	AMMDeposit = NewCatalog("AMMDeposit", []Flag{
		{"tfLPToken", TfLPToken},
		{"tfSingleAsset", TfSingleAsset},
		{"tfTwoAsset", TfTwoAsset},
		{"tfOneAssetLPToken", TfOneAssetLPToken},
		{"tfLimitLPToken", TfLimitLPToken},
		{"tfTwoAssetIfEmpty", TfTwoAssetIfEmpty},
	})

	AMMWithdraw = NewCatalog("AMMWithdraw", []Flag{
		{"tfLPToken", TfLPToken},
		{"tfWithdrawAll", TfWithdrawAll},
		{"tfOneAssetWithdrawAll", TfOneAssetWithdrawAll},
		{"tfSingleAsset", TfSingleAsset},
		{"tfTwoAsset", TfTwoAsset},
		{"tfOneAssetLPToken", TfOneAssetLPToken},
		{"tfLimitLPToken", TfLimitLPToken},
	})

	AMMClawback = NewCatalog("AMMClawback", []Flag{
		{"tfClawTwoAssets", TfClawTwoAssets},
	})

	XChainModifyBridge = NewCatalog("XChainModifyBridge", []Flag{
		{"tfClearAccountCreateAmount", TfClearAccountCreateAmount},
	})

	MPTokenIssuanceCreate = NewCatalog("MPTokenIssuanceCreate", []Flag{
		{"tfMPTCanLock", TfMPTCanLock},
		{"tfMPTRequireAuth", TfMPTRequireAuth},
		{"tfMPTCanEscrow", TfMPTCanEscrow},
		{"tfMPTCanTrade", TfMPTCanTrade},
		{"tfMPTCanTransfer", TfMPTCanTransfer},
		{"tfMPTCanClawback", TfMPTCanClawback},
	})

	MPTokenAuthorize = NewCatalog("MPTokenAuthorize", []Flag{
		{"tfMPTUnauthorize", TfMPTUnauthorize},
	})

	MPTokenIssuanceSet = NewCatalog("MPTokenIssuanceSet", []Flag{
		{"tfMPTLock", TfMPTLock},
		{"tfMPTUnlock", TfMPTUnlock},
	})
)
