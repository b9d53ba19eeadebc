package content

import (
	"strings"
	"testing"
)

func TestBlocksToHTMLPerType(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"heading default level", `[{"type":"heading","content":"Intro"}]`, "<h2>Intro</h2>"},
		{"heading level 3", `[{"type":"heading","content":"Sub","level":3}]`, "<h3>Sub</h3>"},
		{"heading level out of range", `[{"type":"heading","content":"Big","level":1}]`, "<h2>Big</h2>"},
		{"paragraph", `[{"type":"paragraph","content":"Hello"}]`, "<p>Hello</p>"},
		{"unordered list", `[{"type":"list","items":["a","b"]}]`, "<ul><li>a</li><li>b</li></ul>"},
		{"ordered list", `[{"type":"list","ordered":true,"items":["x"]}]`, "<ol><li>x</li></ol>"},
		{"image with caption", `[{"type":"image","src":"/a.jpg","alt":"Pipe","caption":"Our pipe"}]`,
			`<figure><img src="/a.jpg" alt="Pipe" loading="lazy"><figcaption>Our pipe</figcaption></figure>`},
		{"image without caption", `[{"type":"image","src":"/a.jpg","alt":"Pipe"}]`,
			`<figure><img src="/a.jpg" alt="Pipe" loading="lazy"></figure>`},
		{"quote with author", `[{"type":"quote","content":"Great","author":"Ali"}]`,
			"<blockquote><p>Great</p><cite>Ali</cite></blockquote>"},
		{"quote without author", `[{"type":"quote","content":"Great"}]`, "<blockquote><p>Great</p></blockquote>"},
		{"faq", `[{"type":"faq","question":"MOQ?","answer":"1 ton"}]`,
			`<div class="faq-item"><h3>MOQ?</h3><p>1 ton</p></div>`},
		{"unknown type", `[{"type":"video","content":"fallback"}]`, "<p>fallback</p>"},
		{"empty array", `[]`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BlocksToHTML([]byte(tt.raw))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("BlocksToHTML(%s)\n got: %s\nwant: %s", tt.raw, got, tt.want)
			}
		})
	}
}

func TestBlocksToHTMLEscapes(t *testing.T) {
	got, err := BlocksToHTML([]byte(`[{"type":"paragraph","content":"<script>alert(1)</script> & more"},{"type":"image","src":"x\" onerror=\"y","alt":"a"}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("script tag not escaped: %s", got)
	}
	if !strings.Contains(got, "&lt;script&gt;alert(1)&lt;/script&gt; &amp; more") {
		t.Errorf("unexpected escaping: %s", got)
	}
	if strings.Contains(got, `" onerror="`) {
		t.Errorf("attribute injection not escaped: %s", got)
	}
}

func TestBlocksToHTMLJoinsLines(t *testing.T) {
	got, err := BlocksToHTML([]byte(`[{"type":"heading","content":"A"},{"type":"paragraph","content":"B"}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "<h2>A</h2>\n<p>B</p>" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestBlocksToHTMLRejectsMalformedJSON(t *testing.T) {
	for _, raw := range []string{`not json`, `{"type":"paragraph"}`, `[{"type":`} {
		if _, err := BlocksToHTML([]byte(raw)); err == nil {
			t.Errorf("expected error for %q", raw)
		}
	}
}
