package extract

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/nao1215/aioready/internal/dom"
)

func parse(t *testing.T, s string) *dom.Document {
	t.Helper()
	doc, err := dom.ParseString(s)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	return doc
}

func TestDigest(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		html string
		want string
	}{
		{
			name: "headings with adjacent paragraphs",
			html: `<h1>Title</h1><p>Lead.</p>
<h2>First</h2><p>One.</p>
<h3>Sub</h3><div>not a paragraph</div><p>skipped</p>
<h2>Second</h2>`,
			want: "[H1] Title\n- Lead.\n[H2] First\n- One.\n[H3] Sub\n[H2] Second",
		},
		{
			name: "only the first h1",
			html: `<h1>A</h1><h1>B</h1><p>after b</p>`,
			want: "[H1] A",
		},
		{
			name: "paragraph must be the next sibling",
			html: `<h2>Q</h2><section><p>nested</p></section>`,
			want: "[H2] Q",
		},
		{
			name: "falls back to full text",
			html: `<div>No   headings</div><p>here</p>`,
			want: "No headings here",
		},
		{
			name: "empty page",
			html: ``,
			want: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Digest(parse(t, tc.html)); got != tc.want {
				t.Errorf("Digest() = %q\nwant %q", got, tc.want)
			}
		})
	}
}

func TestDigestTruncation(t *testing.T) {
	t.Parallel()

	t.Run("fallback text", func(t *testing.T) {
		t.Parallel()
		body := strings.Repeat("あ", 5000)
		got := Digest(parse(t, "<div>"+body+"</div>"))
		if utf8.RuneCountInString(got) != MaxDigestLength {
			t.Errorf("digest length = %d, want %d", utf8.RuneCountInString(got), MaxDigestLength)
		}
		if got != body[:len("あ")*MaxDigestLength] {
			t.Error("fallback should be the first characters of the full text")
		}
	})

	t.Run("heading digest", func(t *testing.T) {
		t.Parallel()
		var b strings.Builder
		for range 200 {
			b.WriteString("<h2>" + strings.Repeat("x", 40) + "</h2><p>" + strings.Repeat("y", 40) + "</p>")
		}
		got := Digest(parse(t, b.String()))
		if utf8.RuneCountInString(got) > MaxDigestLength {
			t.Errorf("digest length = %d exceeds %d", utf8.RuneCountInString(got), MaxDigestLength)
		}
		if !strings.HasPrefix(got, "[H2] ") {
			t.Errorf("digest should start with a heading, got %q", got[:10])
		}
	})
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   string
		n    int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello", 2, "he"},
		{"日本語テキスト", 3, "日本語"},
		{"abc", 0, ""},
	}
	for _, tc := range testCases {
		if got := Truncate(tc.in, tc.n); got != tc.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tc.in, tc.n, got, tc.want)
		}
	}
}
