package highlight

import (
	"html"
	"strings"
)

const (
	addedStyle   = "background-color: #e6ffe6; color: #008000;"
	removedStyle = "background-color: #ffe6e6; color: #ff0000;"
)

// RenderHTML renders a segment list as a pre-wrapped div of spans, additions
// in green and removals in red. Segment text is HTML-escaped.
func RenderHTML(segments []Segment) string {
	var sb strings.Builder
	sb.WriteString(`<div style="white-space: pre-wrap; font-family: 'Inter', sans-serif;">`)
	for _, seg := range segments {
		text := html.EscapeString(seg.Text)
		switch seg.Kind {
		case Added:
			sb.WriteString(`<span style="` + addedStyle + `">` + text + `</span>`)
		case Removed:
			sb.WriteString(`<span style="` + removedStyle + `">` + text + `</span>`)
		default:
			sb.WriteString(`<span>` + text + `</span>`)
		}
	}
	sb.WriteString(`</div>`)
	return sb.String()
}
