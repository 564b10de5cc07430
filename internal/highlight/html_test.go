package highlight

import (
	"strings"
	"testing"
)

func TestRenderHTML(t *testing.T) {
	segments := []Segment{
		{Unchanged, "Built "},
		{Removed, "scalable"},
		{Added, "distributed"},
		{Unchanged, " systems"},
	}
	out := RenderHTML(segments)

	if !strings.HasPrefix(out, "<div") || !strings.HasSuffix(out, "</div>") {
		t.Fatalf("output not wrapped in a div: %s", out)
	}
	if !strings.Contains(out, `<span style="`+addedStyle+`">distributed</span>`) {
		t.Errorf("missing added span: %s", out)
	}
	if !strings.Contains(out, `<span style="`+removedStyle+`">scalable</span>`) {
		t.Errorf("missing removed span: %s", out)
	}
	if !strings.Contains(out, "<span>Built </span>") {
		t.Errorf("missing unchanged span: %s", out)
	}
}

func TestRenderHTMLEscapes(t *testing.T) {
	out := RenderHTML([]Segment{{Added, `<script>alert("x")</script>`}})
	if strings.Contains(out, "<script>") {
		t.Fatalf("segment text not escaped: %s", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Errorf("expected escaped markup, got: %s", out)
	}
}

func TestRenderHTMLEmpty(t *testing.T) {
	out := RenderHTML(nil)
	if !strings.Contains(out, "<div") {
		t.Fatalf("expected container even for empty diff, got: %s", out)
	}
	if strings.Contains(out, "<span") {
		t.Errorf("expected no spans for empty diff, got: %s", out)
	}
}
