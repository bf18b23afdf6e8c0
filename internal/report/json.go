package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/aioready/internal/model"
)

// JSONWriter outputs reports in JSON format.
// This format is designed for tool integration and programmatic processing.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string

	// version is stamped into every document.
	version string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// WithVersion stamps the tool version into the output.
func WithVersion(version string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.version = version
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// PageDocument wraps a page result with output metadata.
type PageDocument struct {
	// Version is the aioready version that generated this document.
	Version string `json:"version,omitempty"`

	// Page is the evaluation result.
	Page *model.PageResult `json:"page"`
}

// DomainDocument wraps a batch with its rollup.
type DomainDocument struct {
	Version string               `json:"version,omitempty"`
	Summary *model.DomainSummary `json:"summary"`
	Pages   []model.PageResult   `json:"pages"`
}

// WritePage outputs the page result in JSON format.
func (w *JSONWriter) WritePage(result *model.PageResult) (int, error) {
	return w.writeJSON(PageDocument{Version: w.version, Page: result})
}

// WriteDomain outputs the batch and its rollup in JSON format.
func (w *JSONWriter) WriteDomain(results []model.PageResult, summary *model.DomainSummary) (int, error) {
	if summary == nil {
		summary = model.NewDomainSummary(results, 0)
	}
	return w.writeJSON(DomainDocument{Version: w.version, Summary: summary, Pages: results})
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Trailing newline for terminal output.
	data = append(data, '\n')

	return w.output.Write(data)
}
