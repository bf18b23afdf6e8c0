package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/aioready/internal/judge"
	"github.com/nao1215/aioready/internal/model"
)

// Rollup summarizes a batch. When withReport is set the judge writes a
// domain strategy; failures are replaced by a notice.
func Rollup(ctx context.Context, results []model.PageResult, topN int, client *judge.Client, withReport bool, logger *slog.Logger) *model.DomainSummary {
	if logger == nil {
		logger = slog.Default()
	}

	summary := model.NewDomainSummary(results, topN)
	if !withReport || summary.Evaluated == 0 {
		return summary
	}

	report, err := client.DomainReport(ctx, summary)
	if err != nil {
		logger.Warn("domain report failed", "error", err)
		summary.Report = judge.Notice(err)
		return summary
	}
	summary.Report = report
	return summary
}
