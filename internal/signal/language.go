package signal

import (
	"github.com/pemistahl/lingua-go"
)

// LanguageDetector picks a keyword locale from page text.
type LanguageDetector struct {
	detector lingua.LanguageDetector
	fallback string
}

// localeLanguages maps the built-in locales to lingua languages.
var localeLanguages = map[lingua.Language]string{
	lingua.Japanese: LocaleJapanese,
	lingua.English:  LocaleEnglish,
}

// NewLanguageDetector builds a detector for the built-in locales.
// Building loads language models and should be done once per process.
func NewLanguageDetector(fallback string) *LanguageDetector {
	if fallback == "" {
		fallback = DefaultLocale
	}
	return &LanguageDetector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.Japanese, lingua.English).
			Build(),
		fallback: fallback,
	}
}

// maxDetectionSample bounds the text handed to the language model.
const maxDetectionSample = 2000

// Detect returns the locale of text, or the fallback when the language
// is not recognized.
func (l *LanguageDetector) Detect(text string) string {
	sample := []rune(text)
	if len(sample) > maxDetectionSample {
		sample = sample[:maxDetectionSample]
	}
	if len(sample) == 0 {
		return l.fallback
	}
	lang, ok := l.detector.DetectLanguageOf(string(sample))
	if !ok {
		return l.fallback
	}
	if locale, ok := localeLanguages[lang]; ok {
		return locale
	}
	return l.fallback
}
