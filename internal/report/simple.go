package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/aioready/internal/model"
)

// SimpleWriter outputs human-readable text reports for terminal display.
type SimpleWriter struct {
	baseWriter

	// verbose adds the detector evidence to the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with the evidence behind each score.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// WritePage outputs one page result in human-readable format.
func (w *SimpleWriter) WritePage(result *model.PageResult) (int, error) {
	var sb strings.Builder

	w.writeBanner(&sb, "AIO READINESS REPORT")
	w.writePage(&sb, result)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// WriteDomain outputs every page followed by the domain rollup.
func (w *SimpleWriter) WriteDomain(results []model.PageResult, summary *model.DomainSummary) (int, error) {
	if summary == nil {
		summary = model.NewDomainSummary(results, 0)
	}

	var sb strings.Builder

	w.writeBanner(&sb, "AIO READINESS DOMAIN REPORT")
	w.writeDomainSummary(&sb, summary)
	for i := range results {
		w.writePage(&sb, &results[i])
	}
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeBanner writes a centered title between rules.
func (w *SimpleWriter) writeBanner(sb *strings.Builder, title string) {
	pad := max(0, (70-len(title))/2)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(" ", pad) + title + "\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")
}

// writeSection writes a section heading.
func (w *SimpleWriter) writeSection(sb *strings.Builder, title string) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString(title + "\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")
}

// writePage writes the scores of one page.
func (w *SimpleWriter) writePage(sb *strings.Builder, r *model.PageResult) {
	fmt.Fprintf(sb, "URL:      %s\n", r.URL)
	fmt.Fprintf(sb, "Status:   %s\n", r.Status)
	if !r.Evaluated() {
		sb.WriteString("\n")
		return
	}
	fmt.Fprintf(sb, "Locale:   %s\n", r.Locale)
	if r.JudgeStatus != "" {
		fmt.Fprintf(sb, "Judge:    rule-only (%s)\n", r.JudgeStatus)
	} else {
		sb.WriteString("Judge:    blended\n")
	}
	sb.WriteString("\n")

	w.writeSection(sb, "SCORES")
	for _, row := range scoreRows(r.Scores) {
		fmt.Fprintf(sb, "  %-24s %3s  [%s]\n", row[0], row[1], row[2])
	}
	sb.WriteString("\n")

	if w.verbose {
		w.writeSection(sb, "EVIDENCE")
		for _, s := range r.Signals {
			fmt.Fprintf(sb, "[%s] rule score %d\n", s.Category.Label(), s.Score)
			for _, e := range s.Evidence {
				fmt.Fprintf(sb, "  * %s\n", e)
			}
		}
		sb.WriteString("\n")
	}

	if weak := weakCategories(r.Scores); len(weak) > 0 {
		w.writeSection(sb, "RECOMMENDATIONS")
		for _, c := range weak {
			advice := model.GetAdvice(c)
			fmt.Fprintf(sb, "  * %s\n", c.Label())
			fmt.Fprintf(sb, "    Impact: %s\n", advice.Impact)
			fmt.Fprintf(sb, "    Fix:    %s\n", advice.Recommendation)
		}
		sb.WriteString("\n")
	}

	if r.Report != "" {
		w.writeSection(sb, "AI REPORT")
		sb.WriteString(r.Report)
		sb.WriteString("\n\n")
	}
}

// writeDomainSummary writes the rollup of a batch.
func (w *SimpleWriter) writeDomainSummary(sb *strings.Builder, s *model.DomainSummary) {
	w.writeSection(sb, "DOMAIN SUMMARY")
	fmt.Fprintf(sb, "  Evaluated: %d\n", s.Evaluated)
	fmt.Fprintf(sb, "  Failed:    %d\n", s.Failed)
	sb.WriteString("\n")

	if s.Evaluated == 0 {
		return
	}

	sb.WriteString("  Averages:\n")
	for _, c := range model.Categories() {
		fmt.Fprintf(sb, "    %-24s %3d\n", c.Label(), s.Averages[c.String()])
	}
	fmt.Fprintf(sb, "    %-24s %3d\n", "Total", s.Averages[model.TotalKey])
	sb.WriteString("\n")

	sb.WriteString("  Ratings:\n")
	for _, r := range model.Ratings() {
		fmt.Fprintf(sb, "    %-10s %d\n", r.String(), s.Ratings[r])
	}
	sb.WriteString("\n")

	if weakest, ok := s.Weakest(); ok {
		fmt.Fprintf(sb, "  Weakest category: %s\n\n", weakest.Label())
	}

	w.writeSection(sb, "FIX FIRST")
	for i, p := range s.FixFirst {
		fmt.Fprintf(sb, "  %2d. %3d  %s\n", i+1, p.Scores.Total, p.URL)
	}
	sb.WriteString("\n")

	if s.Report != "" {
		w.writeSection(sb, "DOMAIN STRATEGY")
		sb.WriteString(s.Report)
		sb.WriteString("\n\n")
	}
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by aioready\n")
	sb.WriteString("https://github.com/nao1215/aioready\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
