package models

// Categories
const (
	CategoryUncategorized = "Uncategorized"
	CategoryMeals         = "Meals & Entertainment"
	CategoryAuto          = "Auto & Vehicle"
	CategorySoftware      = "Software & Subscriptions"
	CategoryOffice        = "Office Supplies"
	CategoryTravel        = "Travel"
	CategoryUtilities     = "Utilities"
	CategoryServices      = "Professional Services"
	CategoryIncome        = "Income"
	CategoryBankFees      = "Bank Fees"
	CategoryInsurance     = "Insurance"
	CategoryRent          = "Rent & Lease"
	CategoryShipping      = "Shipping & Postage"
	CategoryMarketing     = "Marketing & Advertising"
)

// Confidence constants
const (
	// BuiltinRuleConfidence is the fixed confidence every built-in rule
	// match carries.
	BuiltinRuleConfidence = 0.95
	// UserRuleConfidence is the confidence assigned to rules derived from a
	// user's manual correction.
	UserRuleConfidence = 0.95
	// ReviewThreshold is the default confidence floor below which an
	// embedding match is flagged for review.
	ReviewThreshold = 0.55
	// EmbeddingFloor is the default minimum similarity an embedding match
	// must clear to be accepted at all.
	EmbeddingFloor = 0.50
	// FallbackConfidence is assigned when no classifier produced a result.
	FallbackConfidence = 0.30
)

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)
