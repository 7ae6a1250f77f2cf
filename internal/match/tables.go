package match

// Static lookup tables backing the feature extractor and market insights.
// Plain immutable maps, keyed lowercase. The numbers are deterministic
// heuristics, not live market data.

// skillWeights holds the relative importance of well-known skills when
// computing the weighted skill overlap. Unlisted skills fall back to
// defaultSkillWeight.
var skillWeights = map[string]float64{
	"react":            0.9,
	"typescript":       0.85,
	"javascript":       0.8,
	"python":           0.9,
	"go":               0.85,
	"golang":           0.85,
	"java":             0.8,
	"node.js":          0.8,
	"sql":              0.75,
	"postgresql":       0.75,
	"aws":              0.85,
	"gcp":              0.8,
	"docker":           0.8,
	"kubernetes":       0.85,
	"terraform":        0.75,
	"rust":             0.8,
	"c++":              0.75,
	"graphql":          0.7,
	"html":             0.6,
	"css":              0.6,
	"machine learning": 0.9,
	"data analysis":    0.8,
	"communication":    0.5,
	"leadership":       0.6,
	"project management": 0.65,
}

const defaultSkillWeight = 0.5

// candidateOnlyWeight discounts candidate skills the job does not require
// when computing the overlap denominator
const candidateOnlyWeight = 0.3

// locationMultipliers scores job locations that are not on the candidate's
// preference list. Major tech hubs score higher than elsewhere.
var locationMultipliers = map[string]float64{
	"san francisco": 0.95,
	"new york":      0.9,
	"seattle":       0.9,
	"austin":        0.85,
	"boston":        0.85,
	"london":        0.85,
	"berlin":        0.8,
	"amsterdam":     0.8,
	"toronto":       0.8,
	"remote":        0.9,
}

const defaultLocationMultiplier = 0.6

// industryDemand is the static per-industry demand score used for both the
// industry-fit fallback and the market-insight demand signal
var industryDemand = map[string]float64{
	"technology":    0.9,
	"software":      0.9,
	"it":            0.85,
	"healthcare":    0.85,
	"finance":       0.8,
	"fintech":       0.85,
	"energy":        0.7,
	"education":     0.7,
	"media":         0.65,
	"manufacturing": 0.65,
	"retail":        0.6,
	"government":    0.6,
}

const defaultIndustryDemand = 0.6

// locationCompetition is the static per-location applicant-competition score
var locationCompetition = map[string]float64{
	"san francisco": 0.9,
	"new york":      0.85,
	"seattle":       0.8,
	"london":        0.8,
	"berlin":        0.75,
	"austin":        0.7,
	"boston":        0.7,
	"remote":        0.95,
}

const defaultLocationCompetition = 0.6

// Keyword lists for the text-derived sub-scores. Each hit in the job's
// title+description nudges the bounded score upward.
var (
	cultureKeywords = []string{
		"collaborative", "team", "inclusive", "diverse", "culture",
		"values", "mentorship", "supportive", "transparent",
	}

	growthKeywords = []string{
		"growth", "career", "learning", "development", "training",
		"promotion", "advancement", "mentorship", "leadership",
	}

	workLifeKeywords = []string{
		"work-life", "work life", "flexible", "balance", "pto",
		"unlimited vacation", "wellness", "4-day", "async",
	}
)
