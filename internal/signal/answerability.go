package signal

import (
	"regexp"
	"unicode/utf8"

	"github.com/nao1215/aioready/internal/model"
)

// Answerability points.
const (
	singleH1Points       = 20
	multipleH1Points     = 10
	manyH2Points         = 20
	fewH2Points          = 10
	summaryPoints        = 15
	manyDefinitionPoints = 15
	fewDefinitionPoints  = 10
	manyListPoints       = 20
	someListPoints       = 15
	fewListPoints        = 10
	longTextPoints       = 10
	mediumTextPoints     = 5
	shortTextPenalty     = -10
	sectionPoints        = 15
	keywordPoints        = 10
)

// Answerability thresholds.
const (
	manyH2         = 3
	manyDefinition = 3
	manyListItems  = 10
	someListItems  = 5

	longText   = 8000
	mediumText = 4000
	shortText  = 1000
)

// AnswerabilityDetector measures how easily an answer engine can lift a
// self-contained answer out of the page.
type AnswerabilityDetector struct{}

// NewAnswerabilityDetector creates a new answerability detector.
func NewAnswerabilityDetector() *AnswerabilityDetector {
	return &AnswerabilityDetector{}
}

// Category returns model.CategoryAnswerability.
func (d *AnswerabilityDetector) Category() model.Category {
	return model.CategoryAnswerability
}

// Detect scores heading structure, summaries, definitions, lists, text
// volume and FAQ/HowTo sections.
func (d *AnswerabilityDetector) Detect(in *Input) model.Signal {
	acc := newAccumulator(0)
	page, text, kw := in.Page, in.FullText, in.Keywords

	switch h1 := page.Count("h1"); {
	case h1 == 1:
		acc.add(singleH1Points, "one H1")
	case h1 > 1:
		acc.add(multipleH1Points, "%d H1 headings (multiple)", h1)
	default:
		acc.note("no H1")
	}

	switch h2 := page.Count("h2"); {
	case h2 >= manyH2:
		acc.add(manyH2Points, "%d H2 headings", h2)
	case h2 > 0:
		acc.add(fewH2Points, "%d H2 headings (few)", h2)
	default:
		acc.note("no H2")
	}

	if containsAny(text, kw.set.Summary) || hasSummaryBlock(in) {
		acc.add(summaryPoints, "summary section present")
	}

	switch n := countMatches(text, kw.definitions); {
	case n >= manyDefinition:
		acc.add(manyDefinitionPoints, "%d definition sentences", n)
	case n > 0:
		acc.add(fewDefinitionPoints, "%d definition sentences (few)", n)
	}

	switch li := page.Count("li"); {
	case li >= manyListItems:
		acc.add(manyListPoints, "%d list items", li)
	case li >= someListItems:
		acc.add(someListPoints, "%d list items", li)
	case li > 0:
		acc.add(fewListPoints, "%d list items (few)", li)
	}

	switch n := utf8.RuneCountInString(text); {
	case n > longText:
		acc.add(longTextPoints, "text length over %d characters", longText)
	case n > mediumText:
		acc.add(mediumTextPoints, "text length over %d characters", mediumText)
	case n < shortText:
		acc.add(shortTextPenalty, "text too short (under %d characters)", shortText)
	}

	switch {
	case headingMatches(in, kw.faqHeading):
		acc.add(sectionPoints, "FAQ section detected")
	case containsAnyFold(text, kw.set.FAQ):
		acc.add(keywordPoints, "FAQ keywords present")
	}

	switch {
	case headingMatches(in, kw.howtoHeading):
		acc.add(sectionPoints, "HowTo section detected")
	case containsAnyFold(text, kw.set.HowTo):
		acc.add(keywordPoints, "HowTo keywords present")
	}

	return acc.signal(d.Category())
}

func hasSummaryBlock(in *Input) bool {
	re := in.Keywords.summaryClass
	if re == nil {
		return false
	}
	for _, el := range in.Page.All("section", "div") {
		if el.ClassMatches(re) {
			return true
		}
	}
	return false
}

func headingMatches(in *Input, re *regexp.Regexp) bool {
	if re == nil {
		return false
	}
	for _, h := range in.Page.All("h1", "h2", "h3") {
		if re.MatchString(h.Text()) {
			return true
		}
	}
	return false
}
