package model

// Rating is a coarse band over a 0-100 score, used to colour reports and
// to group pages in the domain rollup.
type Rating int

const (
	// RatingPoor covers scores below 40. The page is unlikely to be cited.
	RatingPoor Rating = iota

	// RatingFair covers scores from 40 to 59.
	RatingFair

	// RatingGood covers scores from 60 to 79.
	RatingGood

	// RatingExcellent covers scores of 80 and above.
	RatingExcellent
)

// Lower bounds of each band.
const (
	fairThreshold      = 40
	goodThreshold      = 60
	excellentThreshold = 80
)

// Rate returns the band a score falls into.
func Rate(score int) Rating {
	switch {
	case score >= excellentThreshold:
		return RatingExcellent
	case score >= goodThreshold:
		return RatingGood
	case score >= fairThreshold:
		return RatingFair
	default:
		return RatingPoor
	}
}

// Ratings returns all bands from best to worst.
func Ratings() []Rating {
	return []Rating{RatingExcellent, RatingGood, RatingFair, RatingPoor}
}

// String returns a human-readable representation of the rating.
func (r Rating) String() string {
	switch r {
	case RatingPoor:
		return "POOR"
	case RatingFair:
		return "FAIR"
	case RatingGood:
		return "GOOD"
	case RatingExcellent:
		return "EXCELLENT"
	default:
		return "UNKNOWN"
	}
}

// MarshalText encodes the rating by name so it can key JSON objects.
func (r Rating) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Advice is the fixed remediation text shown for a weak category.
type Advice struct {
	Impact         string
	Recommendation string
}

// categoryAdvice is shown in reports for categories rated below Good.
var categoryAdvice = map[Category]Advice{
	CategoryCrawlIndex: {
		Impact:         "Answer engines may skip, mis-title or de-duplicate the page away.",
		Recommendation: "Add a descriptive <title> and meta description, remove noindex, and declare a canonical URL.",
	},
	CategoryAnswerability: {
		Impact:         "There is no self-contained passage an answer engine can quote.",
		Recommendation: "Use one H1 and several H2 sections, add a summary, short definitions, lists and an FAQ or HowTo section.",
	},
	CategoryTrust: {
		Impact:         "Nothing on the page tells a reader or a model who stands behind it.",
		Recommendation: "Show the author, operator, contact details and update date, and cite external sources.",
	},
	CategoryStructuredData: {
		Impact:         "Machines must guess the page type from markup alone.",
		Recommendation: "Add schema.org JSON-LD such as FAQPage, HowTo, Article or BreadcrumbList.",
	},
	CategoryConsistency: {
		Impact:         "The page is too thin or too loosely structured to cover its topic.",
		Recommendation: "Expand the body text, keep a clear H1/H2 outline, and mix paragraphs with lists and images.",
	},
}

// GetAdvice returns the remediation advice for a category.
// Unknown categories get a generic entry.
func GetAdvice(c Category) Advice {
	if a, ok := categoryAdvice[c]; ok {
		return a
	}
	return Advice{
		Impact:         "Unknown category.",
		Recommendation: "Review the page manually.",
	}
}
