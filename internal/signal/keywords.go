package signal

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// KeywordSet is the raw, serializable form of a locale's keyword table.
// Fields holding patterns are Go regular expressions; the others are
// plain substrings searched for in the page text.
type KeywordSet struct {
	// Summary words mark a summary or conclusion section.
	Summary []string `yaml:"summary,omitempty"`

	// SummaryClass is matched against section/div class names.
	SummaryClass string `yaml:"summary_class,omitempty"`

	// Definitions are patterns for definition sentences. Matches of all
	// patterns are counted and summed.
	Definitions []string `yaml:"definitions,omitempty"`

	// FAQ words mark question-and-answer content. Matched case-insensitively.
	FAQ []string `yaml:"faq,omitempty"`

	// FAQHeading is matched against H1-H3 text to detect an FAQ section.
	FAQHeading string `yaml:"faq_heading,omitempty"`

	// HowTo words mark step-by-step content. Matched case-insensitively.
	HowTo []string `yaml:"howto,omitempty"`

	// HowToHeading is matched against H1-H3 text to detect a HowTo section.
	HowToHeading string `yaml:"howto_heading,omitempty"`

	Author   []string `yaml:"author,omitempty"`
	Operator []string `yaml:"operator,omitempty"`
	Contact  []string `yaml:"contact,omitempty"`
	Company  []string `yaml:"company,omitempty"`

	// UpdateDates are patterns for "updated on <date>" text.
	UpdateDates []string `yaml:"update_dates,omitempty"`
}

// Merge returns a copy of s where every non-empty field of override
// replaces the corresponding field.
func (s KeywordSet) Merge(override KeywordSet) KeywordSet {
	pick := func(base, o []string) []string {
		if len(o) > 0 {
			return slices.Clone(o)
		}
		return slices.Clone(base)
	}
	pickString := func(base, o string) string {
		if o != "" {
			return o
		}
		return base
	}
	return KeywordSet{
		Summary:      pick(s.Summary, override.Summary),
		SummaryClass: pickString(s.SummaryClass, override.SummaryClass),
		Definitions:  pick(s.Definitions, override.Definitions),
		FAQ:          pick(s.FAQ, override.FAQ),
		FAQHeading:   pickString(s.FAQHeading, override.FAQHeading),
		HowTo:        pick(s.HowTo, override.HowTo),
		HowToHeading: pickString(s.HowToHeading, override.HowToHeading),
		Author:       pick(s.Author, override.Author),
		Operator:     pick(s.Operator, override.Operator),
		Contact:      pick(s.Contact, override.Contact),
		Company:      pick(s.Company, override.Company),
		UpdateDates:  pick(s.UpdateDates, override.UpdateDates),
	}
}

// Keywords is a compiled KeywordSet, ready for the detectors.
// It is immutable and safe for concurrent use.
type Keywords struct {
	set KeywordSet

	summaryClass *regexp.Regexp
	definitions  []*regexp.Regexp
	faqHeading   *regexp.Regexp
	howtoHeading *regexp.Regexp
	updateDates  []*regexp.Regexp
}

// Compile validates and compiles a KeywordSet.
func Compile(set KeywordSet) (*Keywords, error) {
	k := &Keywords{set: set}

	var err error
	if k.summaryClass, err = compileOptional("summary_class", set.SummaryClass); err != nil {
		return nil, err
	}
	if k.faqHeading, err = compileOptional("faq_heading", set.FAQHeading); err != nil {
		return nil, err
	}
	if k.howtoHeading, err = compileOptional("howto_heading", set.HowToHeading); err != nil {
		return nil, err
	}
	if k.definitions, err = compileAll("definitions", set.Definitions); err != nil {
		return nil, err
	}
	if k.updateDates, err = compileAll("update_dates", set.UpdateDates); err != nil {
		return nil, err
	}
	return k, nil
}

// MustCompile is like Compile but panics on an invalid pattern.
// It is intended for the built-in tables.
func MustCompile(set KeywordSet) *Keywords {
	k, err := Compile(set)
	if err != nil {
		panic(err)
	}
	return k
}

func compileOptional(field, pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid %s pattern %q: %w", field, pattern, err)
	}
	return re, nil
}

func compileAll(field string, patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid %s pattern %q: %w", field, p, err)
		}
		out = append(out, re)
	}
	return out, nil
}

// Set returns the raw table the keywords were compiled from.
func (k *Keywords) Set() KeywordSet {
	return KeywordSet{}.Merge(k.set)
}

// containsAny reports whether text contains any of words.
func containsAny(text string, words []string) bool {
	for _, w := range words {
		if w != "" && strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// containsAnyFold is containsAny under Unicode case folding.
// A fresh caser is used per call because casers keep internal state.
func containsAnyFold(text string, words []string) bool {
	fold := cases.Fold()
	folded := fold.String(text)
	for _, w := range words {
		if w != "" && strings.Contains(folded, fold.String(w)) {
			return true
		}
	}
	return false
}

// matchesAny reports whether any pattern matches text.
func matchesAny(text string, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// countMatches sums the non-overlapping matches of every pattern.
func countMatches(text string, patterns []*regexp.Regexp) int {
	total := 0
	for _, re := range patterns {
		total += len(re.FindAllStringIndex(text, -1))
	}
	return total
}
