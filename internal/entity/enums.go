package entity

// Status values. Ordered pipeline progression towards "signed";
// "closed" is a terminal exit reachable from any stage.
const (
	StatusClosed      = "closed"
	StatusPotential   = "potential"
	StatusContacted   = "contacted"
	StatusLead        = "lead"
	StatusNegotiation = "negotiation"
	StatusSigned      = "signed"
)

const (
	OpportunityBigTicket  = "Big Ticket"
	OpportunityEveryday   = "Everyday"
	OpportunityLowHanging = "Low Hanging"
)

const (
	PartnershipDirect    = "Direct"
	PartnershipAffiliate = "Affiliate"
)

const (
	TierPreferred = "Preferred"
	TierStandard  = "Standard"
	TierTest      = "Test"
)

const (
	StageNew     = "New"
	StageGrowing = "Growing"
	StageMature  = "Mature"
	StageAtRisk  = "At Risk"
)

var Statuses = []string{
	StatusClosed,
	StatusPotential,
	StatusContacted,
	StatusLead,
	StatusNegotiation,
	StatusSigned,
}

var OpportunityTypes = []string{
	OpportunityBigTicket,
	OpportunityEveryday,
	OpportunityLowHanging,
}

var PartnershipTypes = []string{
	PartnershipDirect,
	PartnershipAffiliate,
}

var PartnerTiers = []string{
	TierPreferred,
	TierStandard,
	TierTest,
}

var LifecycleStages = []string{
	StageNew,
	StageGrowing,
	StageMature,
	StageAtRisk,
}

var UseForTags = []string{
	"newsletter",
	"social",
	"blog",
	"podcast",
	"event",
	"paid_ads",
}

var LifestyleCategories = []string{
	"Fitness",
	"Nutrition",
	"Wellness",
	"Mindfulness",
	"Beauty",
	"Fashion",
	"Travel",
	"Outdoors",
	"Home & Living",
	"Food & Drink",
	"Coffee",
	"Tech",
	"Gaming",
	"Finance",
	"Education",
	"Parenting",
	"Pets",
	"Sports",
	"Music",
	"Arts",
	"Books",
	"Photography",
	"Automotive",
	"Sustainability",
	"Health",
	"Productivity",
	"Entertainment",
	"Lifestyle",
}

func isMember(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}
