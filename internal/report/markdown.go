package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/aioready/internal/model"
	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// WritePage outputs one page result in Markdown format.
func (w *MarkdownWriter) WritePage(result *model.PageResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("AIO Readiness Report")
	md.PlainText("")
	w.writePage(md, result)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// WriteDomain outputs the domain rollup, a row per page and then every
// page's full report.
func (w *MarkdownWriter) WriteDomain(results []model.PageResult, summary *model.DomainSummary) (int, error) {
	if summary == nil {
		summary = model.NewDomainSummary(results, 0)
	}

	md := markdown.NewMarkdown(w.output)

	md.H1("AIO Readiness Domain Report")
	md.PlainText("")
	w.writeDomainSummary(md, summary)
	w.writePagesTable(md, results)
	for i := range results {
		md.H2(results[i].URL)
		md.PlainText("")
		w.writePage(md, &results[i])
	}
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writePage writes the header table, scores and advice for one page.
func (w *MarkdownWriter) writePage(md *markdown.Markdown, r *model.PageResult) {
	rows := [][]string{
		{"URL", r.URL},
		{"Status", w.getStatusText(r)},
	}
	if r.Evaluated() {
		rows = append(rows,
			[]string{"Locale", r.Locale},
			[]string{"Evaluated", r.EvaluatedAt.Format("2006-01-02 15:04:05 MST")},
			[]string{"Judge", w.getJudgeText(r)},
		)
	}
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")

	if !r.Evaluated() {
		return
	}

	md.H2("Scores")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Category", "Score", "Rating"},
		Rows:   scoreRows(r.Scores),
	})
	md.PlainText("")
	w.writeAlert(md, r.Scores.Total)

	md.H2("Evidence")
	md.PlainText("")
	for _, s := range r.Signals {
		md.Details(
			fmt.Sprintf("%s (rule score %d)", s.Category.Label(), s.Score),
			"- "+strings.Join(s.Evidence, "\n- "),
		)
	}
	md.PlainText("")

	if weak := weakCategories(r.Scores); len(weak) > 0 {
		md.H2("Recommendations")
		md.PlainText("")
		rows := make([][]string, len(weak))
		for i, c := range weak {
			advice := model.GetAdvice(c)
			rows[i] = []string{c.Label(), advice.Impact, advice.Recommendation}
		}
		md.Table(markdown.TableSet{
			Header: []string{"Category", "Impact", "Recommendation"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	if r.Report != "" {
		md.H2("AI Report")
		md.PlainText("")
		md.PlainText(r.Report)
		md.PlainText("")
	}
}

// getStatusText returns the status text based on the result state.
func (w *MarkdownWriter) getStatusText(r *model.PageResult) string {
	if r.Evaluated() {
		return "✅ Evaluated"
	}
	return "❌ " + r.Status
}

// getJudgeText describes how the external judgment was used.
func (w *MarkdownWriter) getJudgeText(r *model.PageResult) string {
	if r.JudgeStatus != "" {
		return "rule-only (" + r.JudgeStatus + ")"
	}
	return "blended"
}

// writeAlert writes an alert matching the composite rating.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, total int) {
	switch model.Rate(total) {
	case model.RatingPoor:
		md.Cautionf("Composite score %d: the page is unlikely to be cited by answer engines.", total)
	case model.RatingFair:
		md.Warningf("Composite score %d: several categories need work.", total)
	case model.RatingGood:
		md.Note("Composite score " + strconv.Itoa(total) + ": the page is in good shape.")
	default:
		md.Tip("Composite score " + strconv.Itoa(total) + ": the page is ready for AI-driven search.")
	}
	md.PlainText("")
}

// writeDomainSummary writes counts, averages, the rating chart and the
// fix-first list.
func (w *MarkdownWriter) writeDomainSummary(md *markdown.Markdown, s *model.DomainSummary) {
	md.H2("Summary")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Pages Evaluated", strconv.Itoa(s.Evaluated)},
			{"Pages Failed", strconv.Itoa(s.Failed)},
		},
	})
	md.PlainText("")

	if s.Evaluated == 0 {
		md.Warningf("No page could be evaluated.")
		md.PlainText("")
		return
	}

	md.H2("Category Averages")
	md.PlainText("")
	rows := make([][]string, 0, len(model.Categories())+1)
	for _, c := range model.Categories() {
		v := s.Averages[c.String()]
		rows = append(rows, []string{c.Label(), strconv.Itoa(v), model.Rate(v).String()})
	}
	total := s.Averages[model.TotalKey]
	rows = append(rows, []string{"**Total**", "**" + strconv.Itoa(total) + "**", model.Rate(total).String()})
	md.Table(markdown.TableSet{
		Header: []string{"Category", "Average", "Rating"},
		Rows:   rows,
	})
	md.PlainText("")

	if weakest, ok := s.Weakest(); ok {
		advice := model.GetAdvice(weakest)
		md.Importantf("Weakest category across the domain: %s. %s", weakest.Label(), advice.Recommendation)
		md.PlainText("")
	}

	w.writePieChart(md, s)

	md.H2("Fix First")
	md.PlainText("")
	fix := make([][]string, len(s.FixFirst))
	for i, p := range s.FixFirst {
		fix[i] = []string{strconv.Itoa(i + 1), p.URL, strconv.Itoa(p.Scores.Total), model.Rate(p.Scores.Total).String()}
	}
	md.Table(markdown.TableSet{
		Header: []string{"#", "URL", "Total", "Rating"},
		Rows:   fix,
	})
	md.PlainText("")

	if s.Report != "" {
		md.H2("Domain Strategy")
		md.PlainText("")
		md.PlainText(s.Report)
		md.PlainText("")
	}
}

// writePieChart writes a mermaid pie chart of the rating distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, s *model.DomainSummary) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Rating Distribution"),
		piechart.WithShowData(true),
	)

	for _, r := range model.Ratings() {
		if n := s.Ratings[r]; n > 0 {
			chart.LabelAndIntValue(r.String(), uint64(n))
		}
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writePagesTable writes one row per page in input order.
func (w *MarkdownWriter) writePagesTable(md *markdown.Markdown, results []model.PageResult) {
	md.H2("Pages")
	md.PlainText("")

	header := []string{"URL", "Status"}
	for _, c := range model.Categories() {
		header = append(header, c.Label())
	}
	header = append(header, "Total")

	rows := make([][]string, len(results))
	for i, r := range results {
		row := []string{r.URL, w.getStatusText(&r)}
		for _, c := range model.Categories() {
			row = append(row, w.scoreCell(&r, c))
		}
		total := "-"
		if r.Evaluated() {
			total = strconv.Itoa(r.Scores.Total)
		}
		rows[i] = append(row, total)
	}

	md.Table(markdown.TableSet{
		Header: header,
		Rows:   rows,
	})
	md.PlainText("")
}

// scoreCell formats one category score, or "-" for unevaluated pages.
func (w *MarkdownWriter) scoreCell(r *model.PageResult, c model.Category) string {
	if !r.Evaluated() {
		return "-"
	}
	return strconv.Itoa(r.Scores.Get(c))
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [aioready](https://github.com/nao1215/aioready)*")
}
