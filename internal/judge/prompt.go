package judge

import (
	"fmt"
	"strings"

	"github.com/nao1215/aioready/internal/extract"
	"github.com/nao1215/aioready/internal/model"
)

// maxReportDigest bounds the digest sent with a page report request.
const maxReportDigest = 3000

// maxDomainLines bounds the per-page lines in a domain report request.
const maxDomainLines = 50

func scorePrompt(pageURL, digest string) string {
	return fmt.Sprintf(`あなたはWebページのAIO（AI検索時代）適性を評価する専門家です。
以下のURLとページ内容から、各評価指標について0〜100点でスコアを付けてください。

【評価指標】
1. crawl_index: title/description有無、noindex、canonical、重複
2. answerability: 見出し構造（H1/H2）、要点サマリ、定義文、箇条書き、FAQ/HowToの充実度
3. trust: 著者/運営者情報、問い合わせ、会社情報、更新日、参照リンク（E-E-A-T）
4. structured_data: Schema.org（FAQPage/HowTo/Product/Article/Breadcrumb等）の有無
5. consistency: 同一テーマでの網羅性、コンテンツの厚み

【出力形式（厳密にJSONのみ）】
{
  "crawl_index": 0-100,
  "answerability": 0-100,
  "trust": 0-100,
  "structured_data": 0-100,
  "consistency": 0-100
}

URL: %s
ページ内容（重要部分）:
%s

JSONのみを出力してください（説明文は不要）:
`, pageURL, digest)
}

func pagePrompt(pageURL, digest string, scores model.ScoreSet) string {
	var b strings.Builder
	b.WriteString(`あなたはプロのWebマーケティングコンサルタントです。
以下のURLとページ内容、診断スコアをもとに、AIO（AI検索・エージェント時代）の観点から
構造化された改善提案を日本語で作成してください。

【診断スコア】
`)
	for _, c := range model.Categories() {
		fmt.Fprintf(&b, "- %s: %d\n", c.Label(), scores.Get(c))
	}
	fmt.Fprintf(&b, "- 総合スコア: %d\n", scores.Total)

	b.WriteString(`
【レポート構成（必ずこの順・見出しで）】
`)
	for i, c := range model.Categories() {
		fmt.Fprintf(&b, `
### %d. %s
- 現状評価（2〜3行）
- 改善すべき具体的なポイントを箇条書きで3〜5個
- 特にAIO時代に重要になる理由を1〜2行でコメント
`, i+1, c.Label())
	}
	b.WriteString(`
### 6. 問題点（最大3つ）
各問題点について「- 問題: [具体的な問題] - 理由: [1行で理由]」の形式で3つ以内

### 7. 改善TODO（最大3つ）
各TODOについて「- [TODO名]: [具体的な改善内容] - 優先度: [High/Mid/Low] - 理由: [1行で理由]」の形式で3つ
優先度はスコアが低い項目をHigh、中程度をMid、高い項目をLowとして判定

【出力フォーマットの条件】
- Markdownで出力する
- 箇条書きは - を使う
- 1つ1つの指摘は「どの部分をどう直すか」が分かるレベルまで具体的に書く
- 文体は「です・ます調」で簡潔に
`)
	fmt.Fprintf(&b, "\n--- URL ---\n%s\n\n--- Page Text（重要部分のみ） ---\n%s\n",
		pageURL, extract.Truncate(digest, maxReportDigest))
	return b.String()
}

func domainPrompt(summary *model.DomainSummary) string {
	var b strings.Builder
	b.WriteString(`あなたはプロのWebマーケティングコンサルタントです。
以下のドメイン全体の診断結果をもとに、AIO（AI検索・エージェント時代）の観点から
ドメイン全体の改善戦略を日本語で作成してください。

【診断結果サマリ】
`)
	for i, p := range summary.Ranking {
		if i == maxDomainLines {
			break
		}
		fmt.Fprintf(&b, "- %s: 総合スコア %d (", p.URL, p.Scores.Total)
		for j, c := range model.Categories() {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s:%d", c.Label(), p.Scores.Get(c))
		}
		b.WriteString(")\n")
	}

	b.WriteString("\n【優先的に改善すべきURL Top10（スコア順）】\n")
	for _, p := range summary.FixFirst {
		fmt.Fprintf(&b, "- %s\n", p.URL)
	}

	b.WriteString(`
【出力形式（必ずこの順・見出しで）】

### ドメイン全体の上位3課題
1. **[課題名]**: [詳細説明]
2. **[課題名]**: [詳細説明]
3. **[課題名]**: [詳細説明]

### 最優先の改善ロードマップ

#### 2週間で着手すべき施策
- [具体的な施策とURL/対象ページ]

#### 1ヶ月で着手すべき施策
- [具体的な施策とURL/対象ページ]

#### 3ヶ月で着手すべき施策
- [具体的な施策とURL/対象ページ]

### 最初に直すべきURL Top10
優先順位順に、各URLについて「- 1. [URL]: [改善理由と優先度]」の形式（番号は1から10まで）

【出力フォーマットの条件】
- Markdownで出力する
- 箇条書きは - を使う
- 具体的で実行可能な内容にする
- 文体は「です・ます調」で簡潔に
- 課題名は「FAQ不足」「信頼情報不足」「構造化データ不足」などの具体的な表現を使う
`)
	return b.String()
}
