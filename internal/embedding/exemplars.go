package embedding

import "quillbooks/bookpipe/internal/models"

// builtinExemplars holds representative description phrases per category.
// They are vectorized once at matcher construction and never mutated, so
// concurrent matching needs no locking. Phrases lean on vendor names and
// statement phrasing that the rule table does not already cover verbatim.
var builtinExemplars = map[string][]string{
	models.CategoryMeals: {
		"coffee shop espresso latte",
		"restaurant dinner lunch catering",
		"pizza burger taqueria bistro cafe",
	},
	models.CategoryAuto: {
		"gas station fuel pump",
		"auto repair oil change tires",
		"car wash vehicle service",
	},
	models.CategorySoftware: {
		"software subscription monthly plan",
		"cloud hosting compute storage",
		"developer tools api license",
	},
	models.CategoryOffice: {
		"office supplies paper toner ink",
		"printer cartridges folders labels",
	},
	models.CategoryTravel: {
		"airline flight ticket baggage",
		"hotel lodging night stay",
		"taxi rideshare train fare",
	},
	models.CategoryUtilities: {
		"electric utility monthly bill",
		"internet phone wireless service",
		"water sewer trash service",
	},
	models.CategoryServices: {
		"consulting legal accounting services",
		"bookkeeping payroll processing",
	},
	models.CategoryIncome: {
		"client invoice payment received",
		"deposit transfer credit",
	},
	models.CategoryBankFees: {
		"bank service charge fee",
		"atm withdrawal fee interest charge",
	},
	models.CategoryInsurance: {
		"insurance premium policy payment",
	},
	models.CategoryRent: {
		"rent lease office space monthly",
	},
	models.CategoryShipping: {
		"postage shipping label courier",
	},
	models.CategoryMarketing: {
		"advertising campaign promotion sponsored",
	},
}

// BuiltinExemplars returns the category exemplar phrases.
func BuiltinExemplars() map[string][]string {
	out := make(map[string][]string, len(builtinExemplars))
	for k, v := range builtinExemplars {
		out[k] = append([]string(nil), v...)
	}
	return out
}
