package signal

import (
	"fmt"
	"sort"
	"sync"
)

// Built-in locale names.
const (
	LocaleJapanese = "ja"
	LocaleEnglish  = "en"

	// LocaleAuto selects a table per page by detecting its language.
	LocaleAuto = "auto"

	// DefaultLocale is used when nothing else is configured.
	DefaultLocale = LocaleJapanese
)

// datePattern matches yyyy-mm-dd style dates with -, / or 年月 separators.
const datePattern = `\p{Nd}{4}[-/年]\p{Nd}{1,2}[-/月]\p{Nd}{1,2}`

// JapaneseSet is the default keyword table.
func JapaneseSet() KeywordSet {
	return KeywordSet{
		Summary:      []string{"まとめ", "要約", "結論", "ポイント", "まとめて", "要点"},
		SummaryClass: `(?i)summary|conclusion`,
		Definitions: []string{
			`とは[、。]`,
			`とは、`,
			`とは\s*[^とは]{10,}`,
			`である[。]`,
		},
		FAQ:          []string{"よくある質問", "FAQ", "Q&A", "Q and A", "質問", "よくあるご質問", "よくある"},
		FAQHeading:   `(?i)FAQ|よくある|質問`,
		HowTo:        []string{"How to", "使い方", "方法", "手順", "ステップ", "やり方", "ガイド"},
		HowToHeading: `(?i)How|使い方|手順|方法`,
		Author:       []string{"著者", "作者", "執筆", "writer", "author"},
		Operator:     []string{"運営", "運営者", "会社", "企業", "組織", "運営会社"},
		Contact:      []string{"お問い合わせ", "問い合わせ", "連絡先", "contact", "メール", "電話"},
		Company:      []string{"会社概要", "企業情報", "about", "会社名", "所在地", "設立"},
		UpdateDates: []string{
			`更新日[：:]\s*(` + datePattern + `)`,
			`最終更新[：:]\s*(` + datePattern + `)`,
			`(\p{Nd}{4}年\p{Nd}{1,2}月\p{Nd}{1,2}日)\s*更新`,
		},
	}
}

// EnglishSet is a keyword table for English pages.
func EnglishSet() KeywordSet {
	return KeywordSet{
		Summary:      []string{"Summary", "summary", "In summary", "Conclusion", "conclusion", "Key takeaways", "key takeaways", "TL;DR", "In short"},
		SummaryClass: `(?i)summary|conclusion|takeaway|tldr`,
		Definitions: []string{
			`\b(?:is|are) defined as\b`,
			`\brefers to\b`,
			`\bis (?:a|an|the) [^.]{10,}\.`,
			`\bmeans that\b`,
		},
		FAQ:          []string{"Frequently asked questions", "FAQ", "Q&A", "Q and A", "Questions and answers"},
		FAQHeading:   `(?i)FAQ|frequently asked|questions`,
		HowTo:        []string{"How to", "Step-by-step", "Step 1", "Instructions", "Tutorial", "Guide"},
		HowToHeading: `(?i)how to|step|tutorial|guide`,
		Author:       []string{"Author", "author", "Written by", "written by", "Reviewed by", "Editor"},
		Operator:     []string{"Published by", "Operated by", "Company", "company", "Organization", "Inc.", "LLC", "Ltd."},
		Contact:      []string{"Contact", "contact", "Email", "email", "Phone", "phone", "Get in touch"},
		Company:      []string{"About us", "About Us", "about", "Headquarters", "Founded", "Address"},
		UpdateDates: []string{
			`(?i)(?:last )?updated(?: on)?[:\s]\s*(` + datePattern + `)`,
			`(?i)(?:last )?updated(?: on)?[:\s]\s*((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.? \p{Nd}{1,2},? \p{Nd}{4})`,
		},
	}
}

var (
	japanese     *Keywords
	english      *Keywords
	builtinsOnce sync.Once
)

func loadBuiltins() {
	builtinsOnce.Do(func() {
		japanese = MustCompile(JapaneseSet())
		english = MustCompile(EnglishSet())
	})
}

// Japanese returns the compiled default keyword table.
func Japanese() *Keywords {
	loadBuiltins()
	return japanese
}

// English returns the compiled English keyword table.
func English() *Keywords {
	loadBuiltins()
	return english
}

// Registry maps locale names to keyword tables.
type Registry struct {
	mu     sync.RWMutex
	tables map[string]*Keywords
}

// NewRegistry returns a registry holding the built-in tables.
func NewRegistry() *Registry {
	return &Registry{
		tables: map[string]*Keywords{
			LocaleJapanese: Japanese(),
			LocaleEnglish:  English(),
		},
	}
}

// Register adds or replaces the table for locale.
func (r *Registry) Register(locale string, k *Keywords) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables[locale] = k
}

// Override compiles base merged with override and registers it under
// locale. base is the currently registered table, or the Japanese table
// for a new locale.
func (r *Registry) Override(locale string, override KeywordSet) error {
	base, ok := r.Lookup(locale)
	if !ok {
		base = Japanese()
	}
	k, err := Compile(base.Set().Merge(override))
	if err != nil {
		return fmt.Errorf("locale %s: %w", locale, err)
	}
	r.Register(locale, k)
	return nil
}

// Lookup returns the table registered for locale.
func (r *Registry) Lookup(locale string) (*Keywords, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	k, ok := r.tables[locale]
	return k, ok
}

// Locales returns the registered locale names in sorted order.
func (r *Registry) Locales() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.tables))
	for name := range r.tables {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Has reports whether locale is registered or is LocaleAuto.
func (r *Registry) Has(locale string) bool {
	if locale == LocaleAuto {
		return true
	}
	_, ok := r.Lookup(locale)
	return ok
}
