package judge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nao1215/aioready/internal/extract"
	"github.com/nao1215/aioready/internal/model"
)

// maxJudgeDigest bounds the digest sent with a score request.
const maxJudgeDigest = 4000

// Scores asks the judge for a score per category. The returned judgment
// may be partial. Any failure returns a nil judgment and an error.
func (c *Client) Scores(ctx context.Context, pageURL, digest string) (model.Judgment, error) {
	reply, err := c.complete(ctx, scorePrompt(pageURL, extract.Truncate(digest, maxJudgeDigest)), scoreMaxTokens)
	if err != nil {
		return nil, err
	}
	return ParseJudgment(reply)
}

// ParseJudgment reads a judge reply. The reply must be a JSON object,
// optionally wrapped in a Markdown code fence, whose values are all
// integers (or integral strings). A single bad value rejects the whole
// reply. Keys that name no known category are ignored.
func ParseJudgment(reply string) (model.Judgment, error) {
	content := stripFence(strings.TrimSpace(reply))

	var raw map[string]any
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedJudgment, err)
	}

	scores := make(map[model.Category]int, len(raw))
	for key, value := range raw {
		v, err := toInt(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrMalformedJudgment, key, err)
		}
		if c, ok := model.ParseCategory(key); ok {
			scores[c] = v
		}
	}
	return model.NewJudgment(scores), nil
}

// stripFence extracts the body of the first ```json (or plain ```)
// block, or returns s unchanged when there is none.
func stripFence(s string) string {
	marker := "```json"
	if !strings.Contains(s, marker) {
		marker = "```"
		if !strings.Contains(s, marker) {
			return s
		}
	}
	_, after, _ := strings.Cut(s, marker)
	body, _, _ := strings.Cut(after, "```")
	return strings.TrimSpace(body)
}

// toInt converts a JSON value to an integer, truncating fractions.
// Numbers outside the score range are bounded before conversion.
func toInt(v any) (int, error) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, fmt.Errorf("invalid number %v", n)
		}
		return int(math.Max(model.MinScore, math.Min(model.MaxScore, n))), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if errors.Is(err, strconv.ErrRange) {
			if strings.HasPrefix(strings.TrimSpace(n), "-") {
				return model.MinScore, nil
			}
			return model.MaxScore, nil
		}
		if err != nil {
			return 0, fmt.Errorf("invalid integer %q", n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("unexpected %T value", v)
	}
}
