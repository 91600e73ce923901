package engine

import "quillbooks/bookpipe/internal/models"

// builtinRules is the fixed vendor-pattern table. It is process-wide,
// read-only state: concurrent readers need no synchronization. Every
// built-in carries the same priority and confidence; ordering within the
// table is the tie-break, so more specific patterns go first.
var builtinRules = []models.Rule{
	{ID: "r-coffee", Category: models.CategoryMeals, Priority: models.PriorityBuiltin, Confidence: models.BuiltinRuleConfidence, Kind: models.MatchRegex, Pattern: `(?i)(starbucks|dunkin|peet'?s|philz|caribou coffee|blue bottle)`},
	{ID: "r-restaurant", Category: models.CategoryMeals, Priority: models.PriorityBuiltin, Confidence: models.BuiltinRuleConfidence, Kind: models.MatchRegex, Pattern: `(?i)(mcdonald|chipotle|panera|doordash|grubhub|restaurant)`},
	{ID: "r-fuel", Category: models.CategoryAuto, Priority: models.PriorityBuiltin, Confidence: models.BuiltinRuleConfidence, Kind: models.MatchRegex, Pattern: `(?i)(shell|chevron|exxon|mobil|sunoco|texaco|valero)`},
	{ID: "r-parking", Category: models.CategoryAuto, Priority: models.PriorityBuiltin, Confidence: models.BuiltinRuleConfidence, Kind: models.MatchRegex, Pattern: `(?i)(parking|parkmobile|toll)`},
	{ID: "r-saas", Category: models.CategorySoftware, Priority: models.PriorityBuiltin, Confidence: models.BuiltinRuleConfidence, Kind: models.MatchRegex, Pattern: `(?i)(github|atlassian|slack|notion|dropbox|zoom\.us|figma|adobe)`},
	{ID: "r-cloud", Category: models.CategorySoftware, Priority: models.PriorityBuiltin, Confidence: models.BuiltinRuleConfidence, Kind: models.MatchRegex, Pattern: `(?i)(amazon web services|aws\.amazon|google cloud|digitalocean|heroku|netlify)`},
	{ID: "r-office", Category: models.CategoryOffice, Priority: models.PriorityBuiltin, Confidence: models.BuiltinRuleConfidence, Kind: models.MatchRegex, Pattern: `(?i)(staples|office depot|officemax)`},
	{ID: "r-amazon", Category: models.CategoryOffice, Priority: models.PriorityBuiltin, Confidence: models.BuiltinRuleConfidence, Kind: models.MatchSubstring, Pattern: "amazon"},
	{ID: "r-shipping", Category: models.CategoryShipping, Priority: models.PriorityBuiltin, Confidence: models.BuiltinRuleConfidence, Kind: models.MatchRegex, Pattern: `(?i)(usps|fedex|ups store|dhl)`},
	{ID: "r-airline", Category: models.CategoryTravel, Priority: models.PriorityBuiltin, Confidence: models.BuiltinRuleConfidence, Kind: models.MatchRegex, Pattern: `(?i)(delta air|united airlines|american airlines|southwest|jetblue|alaska air)`},
	{ID: "r-lodging", Category: models.CategoryTravel, Priority: models.PriorityBuiltin, Confidence: models.BuiltinRuleConfidence, Kind: models.MatchRegex, Pattern: `(?i)(marriott|hilton|hyatt|airbnb)`},
	{ID: "r-rideshare", Category: models.CategoryTravel, Priority: models.PriorityBuiltin, Confidence: models.BuiltinRuleConfidence, Kind: models.MatchRegex, Pattern: `(?i)(uber|lyft)`},
	{ID: "r-telecom", Category: models.CategoryUtilities, Priority: models.PriorityBuiltin, Confidence: models.BuiltinRuleConfidence, Kind: models.MatchRegex, Pattern: `(?i)(comcast|verizon|at&t|t-mobile|spectrum)`},
	{ID: "r-utilities", Category: models.CategoryUtilities, Priority: models.PriorityBuiltin, Confidence: models.BuiltinRuleConfidence, Kind: models.MatchRegex, Pattern: `(?i)(electric co|power & light|water dept|gas & electric)`},
	{ID: "r-insurance", Category: models.CategoryInsurance, Priority: models.PriorityBuiltin, Confidence: models.BuiltinRuleConfidence, Kind: models.MatchRegex, Pattern: `(?i)(geico|state farm|allstate|progressive ins)`},
	{ID: "r-bankfee", Category: models.CategoryBankFees, Priority: models.PriorityBuiltin, Confidence: models.BuiltinRuleConfidence, Kind: models.MatchRegex, Pattern: `(?i)(overdraft|monthly service fee|wire fee|nsf fee)`},
	{ID: "r-payroll", Category: models.CategoryServices, Priority: models.PriorityBuiltin, Confidence: models.BuiltinRuleConfidence, Kind: models.MatchRegex, Pattern: `(?i)(gusto|paychex|adp payroll)`},
	{ID: "r-ads", Category: models.CategoryMarketing, Priority: models.PriorityBuiltin, Confidence: models.BuiltinRuleConfidence, Kind: models.MatchRegex, Pattern: `(?i)(google ads|facebook ads|meta platforms|linkedin)`},
	{ID: "r-rent", Category: models.CategoryRent, Priority: models.PriorityBuiltin, Confidence: models.BuiltinRuleConfidence, Kind: models.MatchRegex, Pattern: `(?i)\b(rent|lease payment)\b`},
	{ID: "r-income", Category: models.CategoryIncome, Priority: models.PriorityBuiltin, Confidence: models.BuiltinRuleConfidence, Kind: models.MatchRegex, Pattern: `(?i)(direct deposit|stripe payout|square inc|payment received)`},
}

// BuiltinRules returns a copy of the built-in rule table so callers cannot
// mutate the shared state.
func BuiltinRules() []models.Rule {
	out := make([]models.Rule, len(builtinRules))
	copy(out, builtinRules)
	return out
}
