package judge

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/nao1215/aioready/internal/model"
)

// PageReport asks the judge for a Markdown advisory on one page.
// The reply is passed through NormalizeMarkdown.
func (c *Client) PageReport(ctx context.Context, pageURL, digest string, scores model.ScoreSet) (string, error) {
	reply, err := c.complete(ctx, pagePrompt(pageURL, digest, scores), pageMaxTokens)
	if err != nil {
		return "", err
	}
	return NormalizeMarkdown(reply), nil
}

// DomainReport asks the judge for a domain-wide improvement strategy.
func (c *Client) DomainReport(ctx context.Context, summary *model.DomainSummary) (string, error) {
	reply, err := c.complete(ctx, domainPrompt(summary), domainMaxTokens)
	if err != nil {
		return "", err
	}
	return NormalizeMarkdown(reply), nil
}

// Notice returns the text shown in place of a report that failed with err.
func Notice(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotConfigured):
		return "Azure OpenAI API情報が設定されていません。"
	case errors.Is(err, ErrRateLimited):
		return "#### ※API利用上限に達しました\n\n" +
			"- Azure OpenAI API のレート制限／利用上限に達している可能性があります。\n" +
			"- しばらく時間をおいて再度お試しください。\n" +
			"- 継続利用する場合は、Azureポータルの Usage / Billing からクレジット残高をご確認ください。"
	default:
		return "#### ※AI詳細診断でエラーが発生しました\n\n" +
			"- エラー内容: " + err.Error() + "\n" +
			"- プロンプトや入力内容を見直すか、時間をおいて再度お試しください。"
	}
}

var (
	leadingFence  = regexp.MustCompile("^```[a-zA-Z]*\n")
	trailingFence = regexp.MustCompile("\n```\\s*$")
)

// NormalizeMarkdown removes a code fence wrapping an LLM-authored
// Markdown document and trims surrounding whitespace.
func NormalizeMarkdown(text string) string {
	if text == "" {
		return text
	}
	text = leadingFence.ReplaceAllString(text, "")
	text = trailingFence.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
