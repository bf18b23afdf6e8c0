package report

import (
	"io"
	"strconv"

	"github.com/nao1215/aioready/internal/model"
)

// Writer defines the interface for report output.
// Implementations write evaluation results in various formats.
type Writer interface {
	// WritePage outputs the result of a single page evaluation.
	// Returns the number of bytes written and any error encountered.
	WritePage(result *model.PageResult) (int, error)

	// WriteDomain outputs a batch of results with their rollup.
	WriteDomain(results []model.PageResult, summary *model.DomainSummary) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously.
// This is useful for outputting to both terminal and file.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// WritePage outputs the page result to all configured Writers.
// Stops on first error encountered.
func (m *MultiWriter) WritePage(result *model.PageResult) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WritePage(result)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteDomain outputs the domain report to all configured Writers.
func (m *MultiWriter) WriteDomain(results []model.PageResult, summary *model.DomainSummary) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteDomain(results, summary)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// scoreRows returns one row per category plus the total, in order.
func scoreRows(s *model.ScoreSet) [][]string {
	rows := make([][]string, 0, len(model.Categories())+1)
	for _, c := range model.Categories() {
		v := s.Get(c)
		rows = append(rows, []string{c.Label(), strconv.Itoa(v), model.Rate(v).String()})
	}
	rows = append(rows, []string{"Total", strconv.Itoa(s.Total), model.Rate(s.Total).String()})
	return rows
}

// weakCategories returns the categories rated below Good, in order.
func weakCategories(s *model.ScoreSet) []model.Category {
	var weak []model.Category
	for _, c := range model.Categories() {
		if model.Rate(s.Get(c)) < model.RatingGood {
			weak = append(weak, c)
		}
	}
	return weak
}
