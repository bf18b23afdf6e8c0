package signal

import (
	"github.com/nao1215/aioready/internal/model"
)

// Analyzer runs one detector per category over a page and returns their
// signals in category order.
type Analyzer struct {
	detectors map[model.Category]Detector
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithDetector registers d, replacing the built-in detector for its category.
func WithDetector(d Detector) AnalyzerOption {
	return func(a *Analyzer) {
		a.Register(d)
	}
}

// NewAnalyzer creates an analyzer with the five built-in detectors.
func NewAnalyzer(opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{detectors: make(map[model.Category]Detector)}

	a.Register(NewCrawlIndexDetector())
	a.Register(NewAnswerabilityDetector())
	a.Register(NewTrustDetector())
	a.Register(NewStructuredDataDetector())
	a.Register(NewConsistencyDetector())

	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Register adds a detector for its category.
func (a *Analyzer) Register(d Detector) {
	a.detectors[d.Category()] = d
}

// Analyze runs every registered detector. The result always holds one
// signal per category in model.Categories order; a category without a
// detector scores 0 with no evidence.
func (a *Analyzer) Analyze(in *Input) []model.Signal {
	signals := make([]model.Signal, 0, len(a.detectors))
	for _, c := range model.Categories() {
		d, ok := a.detectors[c]
		if !ok {
			signals = append(signals, model.NewSignal(c, 0, nil))
			continue
		}
		signals = append(signals, d.Detect(in))
	}
	return signals
}
