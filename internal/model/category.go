package model

// Category identifies one of the five AIO readiness categories.
// The string value is the canonical key used in JSON output and in
// judgments returned by the external judge.
type Category string

const (
	// CategoryCrawlIndex measures whether search and answer engines can
	// fetch, index and canonicalize the page (title, description, robots, canonical).
	CategoryCrawlIndex Category = "crawl_index"

	// CategoryAnswerability measures how easily an answer engine can lift a
	// self-contained answer out of the page (headings, summaries, definitions,
	// lists, FAQ and HowTo sections).
	CategoryAnswerability Category = "answerability"

	// CategoryTrust is a proxy for E-E-A-T: author, operator, contact and
	// company information, update dates and outbound references.
	CategoryTrust Category = "trust"

	// CategoryStructuredData measures schema.org markup (JSON-LD and microdata).
	CategoryStructuredData Category = "structured_data"

	// CategoryConsistency measures content depth and structural coherence.
	CategoryConsistency Category = "consistency"
)

// categoryOrder is the fixed evaluation and reporting order.
var categoryOrder = []Category{
	CategoryCrawlIndex,
	CategoryAnswerability,
	CategoryTrust,
	CategoryStructuredData,
	CategoryConsistency,
}

// categoryWeights are the composite weights. They sum to 1.0.
var categoryWeights = map[Category]float64{
	CategoryCrawlIndex:     0.20,
	CategoryAnswerability:  0.30,
	CategoryTrust:          0.20,
	CategoryStructuredData: 0.15,
	CategoryConsistency:    0.15,
}

// categoryLabels are human-readable names used in reports.
var categoryLabels = map[Category]string{
	CategoryCrawlIndex:     "Crawl/Index Health",
	CategoryAnswerability:  "Answerability",
	CategoryTrust:          "Trust (E-E-A-T proxy)",
	CategoryStructuredData: "Structured Data",
	CategoryConsistency:    "Content Consistency",
}

// categoryAliases maps alternative judge keys to categories.
// Both "E-E-A-T" and "reliability" name the trust category.
var categoryAliases = map[string]Category{
	"crawl_index":         CategoryCrawlIndex,
	"crawl/index":         CategoryCrawlIndex,
	"crawl/index健全性":      CategoryCrawlIndex,
	"answerability":       CategoryAnswerability,
	"回答性":                 CategoryAnswerability,
	"trust":               CategoryTrust,
	"reliability":         CategoryTrust,
	"e-e-a-t":             CategoryTrust,
	"信頼性":                 CategoryTrust,
	"structured_data":     CategoryStructuredData,
	"structured data":     CategoryStructuredData,
	"構造化データ":              CategoryStructuredData,
	"consistency":         CategoryConsistency,
	"content_consistency": CategoryConsistency,
	"コンテンツ一貫性":            CategoryConsistency,
}

// Categories returns all categories in their fixed order.
// The returned slice is a copy and may be modified by the caller.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// String returns the canonical key.
func (c Category) String() string {
	return string(c)
}

// Label returns the human-readable category name.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Weight returns the category's share of the composite score.
// Unknown categories weigh nothing.
func (c Category) Weight() float64 {
	return categoryWeights[c]
}

// Valid reports whether c is one of the five known categories.
func (c Category) Valid() bool {
	_, ok := categoryWeights[c]
	return ok
}

// ParseCategory resolves a judge key to a category. Matching is
// case-insensitive and accepts the aliases listed in categoryAliases.
func ParseCategory(key string) (Category, bool) {
	c, ok := categoryAliases[lowerASCII(key)]
	return c, ok
}

// lowerASCII lowercases ASCII letters only, leaving other runes untouched
// so that Japanese aliases are matched byte for byte.
func lowerASCII(s string) string {
	b := []byte(s)
	for i, ch := range b {
		if ch >= 'A' && ch <= 'Z' {
			b[i] = ch + ('a' - 'A')
		}
	}
	return string(b)
}
