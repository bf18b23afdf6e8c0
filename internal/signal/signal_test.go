package signal

import (
	"slices"
	"strings"
	"testing"

	"github.com/nao1215/aioready/internal/dom"
	"github.com/nao1215/aioready/internal/model"
)

func input(t *testing.T, html string) *Input {
	t.Helper()
	doc, err := dom.ParseString(html)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	return NewInput(doc, "https://example.com/", nil)
}

type detectorCase struct {
	name     string
	html     string
	want     int
	evidence []string
}

func runDetectorCases(t *testing.T, d Detector, cases []detectorCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := d.Detect(input(t, tc.html))
			if got.Category != d.Category() {
				t.Errorf("Category = %q, want %q", got.Category, d.Category())
			}
			if got.Score != tc.want {
				t.Errorf("Score = %d, want %d (evidence %q)", got.Score, tc.want, got.Evidence)
			}
			if tc.evidence != nil && !slices.Equal(got.Evidence, tc.evidence) {
				t.Errorf("Evidence = %q\nwant %q", got.Evidence, tc.evidence)
			}
		})
	}
}

func TestCrawlIndexDetector(t *testing.T) {
	t.Parallel()

	desc60 := strings.Repeat("d", 60)
	head := `<title>Hello World Page</title><meta name="description" content="` + desc60 + `">`

	runDetectorCases(t, NewCrawlIndexDetector(), []detectorCase{
		{
			name:     "complete head",
			html:     head + `<link rel="canonical" href="https://example.com/">`,
			want:     70,
			evidence: []string{"title present", "meta description present", "canonical link present"},
		},
		{
			name: "robots noindex",
			html: head + `<meta name="robots" content="NoIndex, follow">`,
			want: 20,
		},
		{
			name: "googlebot noindex without robots",
			html: head + `<meta name="googlebot" content="noindex">`,
			want: 20,
		},
		{
			name: "robots meta shadows googlebot",
			html: head + `<meta name="robots" content="index"><meta name="googlebot" content="noindex">`,
			want: 50,
		},
		{
			name:     "noindex floors before canonical",
			html:     `<meta name="robots" content="noindex"><link rel="canonical" href="/x">`,
			want:     20,
			evidence: []string{"title missing", "meta description missing", "noindex directive found", "canonical link present"},
		},
		{
			name: "short title and description",
			html: `<title>Hi</title><meta name="description" content="short">`,
			want: 30,
			evidence: []string{
				"title present",
				"meta description present",
				"canonical link missing",
				"title may be too short (2 characters)",
				"meta description may be too short (5 characters)",
			},
		},
		{
			name: "empty title still penalized",
			html: `<title> </title><link rel="canonical" href="/x">`,
			want: 10,
		},
		{
			name: "canonical without href",
			html: `<link rel="canonical" href="">`,
			want: 0,
		},
		{
			name:     "empty page",
			html:     ``,
			want:     0,
			evidence: []string{"title missing", "meta description missing", "canonical link missing"},
		},
	})
}

func TestAnswerabilityDetector(t *testing.T) {
	t.Parallel()

	structured := `<h1>AIOガイド</h1><h2>概要</h2><p>AIOとは、AI検索への最適化である。</p>` +
		`<h2>よくある質問</h2>%s<h2>使い方</h2><p>まとめ</p>`
	list := `<ul><li>a</li><li>b</li><li>c</li><li>d</li><li>e</li></ul>`

	runDetectorCases(t, NewAnswerabilityDetector(), []detectorCase{
		{
			name: "structured japanese page",
			html: strings.Replace(structured, "%s", "", 1),
			want: 90,
			evidence: []string{
				"one H1",
				"3 H2 headings",
				"summary section present",
				"4 definition sentences",
				"text too short (under 1000 characters)",
				"FAQ section detected",
				"HowTo section detected",
			},
		},
		{
			name: "clamped at 100",
			html: strings.Replace(structured, "%s", list, 1),
			want: 100,
		},
		{
			name: "keywords without headings",
			html: `<h1>One</h1><h1>Two</h1><h2>Intro</h2><p>see our faq and how to guide</p>`,
			want: 30,
			evidence: []string{
				"2 H1 headings (multiple)",
				"1 H2 headings (few)",
				"text too short (under 1000 characters)",
				"FAQ keywords present",
				"HowTo keywords present",
			},
		},
		{
			name: "summary class and long text",
			html: `<div class="article-summary">x</div><p>` + strings.Repeat("a", 8001) + `</p>`,
			want: 25,
		},
		{
			name: "medium text and many list items",
			html: `<p>` + strings.Repeat("a", 4500) + `</p><ol>` + strings.Repeat("<li>i</li>", 10) + `</ol>`,
			want: 25,
		},
		{
			name: "empty page",
			html: ``,
			want: 0,
		},
	})
}

func TestTrustDetector(t *testing.T) {
	t.Parallel()

	external := ""
	for i := range 5 {
		external += `<a href="https://ref` + string(rune('a'+i)) + `.example.org/">ref</a>`
	}

	runDetectorCases(t, NewTrustDetector(), []detectorCase{
		{
			name: "all signals",
			html: `<meta name="author" content="Taro">` +
				`<meta property="article:published_time" content="2024-01-01">` +
				`<p>運営会社 会社概要</p><a href="mailto:info@example.com">mail</a>` + external,
			want: 100,
			evidence: []string{
				"author information present",
				"operator information present",
				"contact information present",
				"company information present",
				"update date present",
				"5 external links",
			},
		},
		{
			name: "empty author meta shadows article author",
			html: `<meta name="author" content=""><meta property="article:author" content="Jane">` +
				`<p>更新日：2024年1月5日</p>` +
				`<a href="https://example.org/a">a</a><a href="http://example.net/b">b</a><a href="/local">c</a>`,
			want:     25,
			evidence: []string{"update date present", "2 external links (few)"},
		},
		{
			name: "article author fallback",
			html: `<meta property="article:author" content="Jane">`,
			want: 20,
		},
		{
			name: "contact link only",
			html: `<a href="/contact">x</a>`,
			want: 20,
		},
		{
			name: "empty page",
			html: ``,
			want: 0,
		},
	})
}

func TestStructuredDataDetector(t *testing.T) {
	t.Parallel()

	ld := func(body string) string {
		return `<script type="application/ld+json">` + body + `</script>`
	}

	runDetectorCases(t, NewStructuredDataDetector(), []detectorCase{
		{
			name: "json-ld and microdata",
			html: ld(`{"@type":"FAQPage"}`) +
				ld(`[{"@type":"BreadcrumbList"},{"@type":"FAQPage"},"junk"]`) +
				ld(`{not json`) +
				`<div itemtype="https://schema.org/Person"></div><span itemtype="x"></span>`,
			want:     60,
			evidence: []string{"schema: FAQPage", "schema: BreadcrumbList", "2 microdata items"},
		},
		{
			name:     "type array and substring match",
			html:     ld(`{"@type":["Article","NewsArticle"]}`),
			want:     50,
			evidence: []string{"schema: Article", "schema: NewsArticle"},
		},
		{
			name: "first table entry wins",
			html: ld(`{"@type":"WebPageElement"}`),
			want: 15,
		},
		{
			name: "unknown type scores nothing",
			html: ld(`{"@type":"Recipe"}`) + ld(`{"@type":""}`),
			want: 0,
		},
		{
			name: "clamped at 100",
			html: ld(`[{"@type":"FAQPage"},{"@type":"HowTo"},{"@type":"Product"},{"@type":"Article"}]`),
			want: 100,
		},
		{
			name: "wrong script type ignored",
			html: `<script type="application/json">{"@type":"FAQPage"}</script>`,
			want: 0,
		},
		{
			name: "empty page",
			html: ``,
			want: 0,
		},
	})
}

func TestStructuredDataDetectorCustomTable(t *testing.T) {
	t.Parallel()

	d := NewStructuredDataDetector(WithSchemaTable([]SchemaWeight{{Type: "Recipe", Points: 40}}))
	got := d.Detect(input(t, `<script type="application/ld+json">{"@type":"Recipe"}</script>`))
	if got.Score != 40 {
		t.Errorf("Score = %d, want 40", got.Score)
	}
}

func TestConsistencyDetector(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 5001)
	paragraphs := strings.Repeat("<p>para</p>", 4)

	runDetectorCases(t, NewConsistencyDetector(), []detectorCase{
		{
			name: "empty page",
			html: ``,
			want: 0,
			evidence: []string{
				"thin content (under 500 characters)",
				"heading outline is incomplete",
				"few paragraphs (0)",
			},
		},
		{
			name: "rich and well formed",
			html: `<h1>T</h1><h2>A</h2><h2>B</h2><p>` + long + `</p>` + paragraphs + `<img src="x.png">`,
			want: 100,
		},
		{
			name: "somewhat thin, neutral structure",
			html: `<h1>T</h1><h2>A</h2><p>` + strings.Repeat("b", 700) + `</p><p>x</p><p>y</p>`,
			want: 30,
		},
		{
			name:     "neutral prior",
			html:     `<h1>T</h1><h2>A</h2><p>` + strings.Repeat("c", 2000) + `</p><p>x</p><p>y</p>`,
			want:     ConsistencyPrior,
			evidence: nil,
		},
	})
}

func TestDetectorsAreBoundedAndIdempotent(t *testing.T) {
	t.Parallel()

	pages := []string{
		``,
		`<html><body></body></html>`,
		`<meta name="robots" content="noindex"><title>x</title>`,
		strings.Repeat(`<h1>a</h1><h2>FAQ</h2><li>x</li><a href="https://x.example">x</a>`, 50),
	}
	a := NewAnalyzer()
	for _, html := range pages {
		in := input(t, html)
		first := a.Analyze(in)
		second := a.Analyze(in)
		if len(first) != 5 {
			t.Fatalf("Analyze returned %d signals, want 5", len(first))
		}
		for i, s := range first {
			if s.Score < model.MinScore || s.Score > model.MaxScore {
				t.Errorf("%s score %d out of range", s.Category, s.Score)
			}
			if s.Score != second[i].Score || !slices.Equal(s.Evidence, second[i].Evidence) {
				t.Errorf("%s is not idempotent", s.Category)
			}
		}
	}
}
