package knowledge

import "tritech-assistant/internal/models"

// DefaultTopics returns the compiled-in knowledge units covering the TriTech
// Premium Pro Enterprise product suite. Topic order matters: it is the
// tie-break order within the static provider.
func DefaultTopics() []models.StaticTopic {
	return []models.StaticTopic{
		{
			Key:          "premium-tax",
			Keywords:     []string{"premium tax", "annual return", "estimate return", "retaliatory"},
			Synonyms:     []string{"premium filing", "insurance tax", "tax return"},
			ContextTerms: []string{"premium", "annual", "estimate", "return", "filing", "retaliatory", "credits"},
			Phrases:      []string{"list all premium tax features", "how do premium tax returns work"},
			Overview:     "Premium Tax handles annual and estimate returns, retaliatory calculations, GFA credits, and electronic filing across all licensed states.",
			Sections: []models.TopicSection{
				{Title: "Returns", Body: "Prepare annual and estimate premium tax returns with state-specific forms and calculations for every licensed jurisdiction."},
				{Title: "Retaliatory calculations", Body: "Retaliatory tax is computed automatically by comparing home-state and filing-state burdens, with supporting worksheets."},
				{Title: "Credits and filing", Body: "GFA credits apply directly to returns, and completed filings submit electronically through TriTech and OPTins."},
			},
		},
		{
			Key:          "municipal-tax",
			Keywords:     []string{"municipal", "rollover", "jurisdiction", "municipal tax"},
			Synonyms:     []string{"local tax", "city tax", "county tax"},
			ContextTerms: []string{"municipal", "rollover", "jurisdiction", "local", "address", "allocation"},
			Phrases:      []string{"how does municipal rollover work", "municipal tax features"},
			Overview:     "Municipal Tax manages local jurisdiction filings with address-based allocation and the Municipal Tax Rollover Process that carries data between tax years.",
			Sections: []models.TopicSection{
				{Title: "Jurisdiction management", Body: "Track municipal filing requirements per jurisdiction, with address-based allocation assigning premiums to the correct locality."},
				{Title: "Rollover", Body: "The Municipal Tax Rollover Process carries prior-year jurisdictions, rates, and allocations forward into the new tax year so returns start pre-populated."},
			},
		},
		{
			Key:          "formsplus",
			Keywords:     []string{"formsplus", "supplemental schedule", "state form"},
			Synonyms:     []string{"additional forms", "extra forms"},
			ContextTerms: []string{"formsplus", "forms", "schedules", "supplemental", "state"},
			Phrases:      []string{"list all formsplus capabilities", "what forms does formsplus support"},
			Overview:     "FormsPlus provides additional state-specific forms and supplemental schedules, integrated with the core tax modules.",
			Sections: []models.TopicSection{
				{Title: "Form library", Body: "State-specific forms beyond the standard returns, kept current with state requirements each filing season."},
				{Title: "Integration", Body: "Data entered in Premium Tax and Municipal Tax flows into FormsPlus schedules without re-keying."},
			},
		},
		{
			Key:          "allocator",
			Keywords:     []string{"allocator", "allocation formula", "apportionment"},
			Synonyms:     []string{"multi-state allocation", "premium allocation"},
			ContextTerms: []string{"allocator", "allocation", "apportionment", "formula", "multi", "state"},
			Phrases:      []string{"how does the allocator work", "allocator functions"},
			Overview:     "Allocator applies multi-state allocation formulas and apportionment calculations, with support for custom rules.",
			Sections: []models.TopicSection{
				{Title: "Formulas", Body: "Standard multi-state apportionment formulas plus custom allocation rules defined per company or line of business."},
			},
		},
		{
			Key:          "gfa-tracking",
			Keywords:     []string{"gfa", "guaranty fund", "assessment credit"},
			Synonyms:     []string{"guaranty fund assessment", "gfa credit"},
			ContextTerms: []string{"gfa", "guaranty", "fund", "assessment", "credit", "tracking"},
			Phrases:      []string{"how do gfa credits work", "gfa tracking system"},
			Overview:     "The GFA Tracking System records Guaranty Fund Assessment credits and applies them to premium tax returns.",
			Sections: []models.TopicSection{
				{Title: "Tracking", Body: "Assessments are recorded per state and year, with credit balances carried until used."},
				{Title: "Application", Body: "Available credits apply to annual returns automatically, with an audit trail of what was used where."},
			},
		},
		{
			Key:          "calendar",
			Keywords:     []string{"calendar", "due date", "deadline"},
			Synonyms:     []string{"filing calendar", "tax calendar"},
			ContextTerms: []string{"calendar", "due", "date", "deadline", "schedule", "jurisdiction"},
			Phrases:      []string{"how does the calendar work", "calendar management"},
			Overview:     "Calendar manages due dates across jurisdictions with multi-jurisdiction tracking and integration with the tax modules.",
			Sections: []models.TopicSection{
				{Title: "Due dates", Body: "Filing and payment deadlines for every jurisdiction, updated as returns are completed in the tax modules."},
			},
		},
		{
			Key:          "electronic-filing",
			Keywords:     []string{"electronic filing", "optins", "e-file"},
			Synonyms:     []string{"efiling", "online filing"},
			ContextTerms: []string{"electronic", "filing", "optins", "submit", "platform"},
			Phrases:      []string{"what are the electronic filing options"},
			Overview:     "Electronic filing submits returns through the TriTech and OPTins platforms, with confirmation tracking.",
			Sections: []models.TopicSection{
				{Title: "Platforms", Body: "States accepting OPTins are filed directly; remaining states use TriTech's electronic filing where supported."},
			},
		},
	}
}
