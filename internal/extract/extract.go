// Package extract pulls plain text out of uploaded resume files.
package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	mimeText = "text/plain"
	mimePDF  = "application/pdf"
	mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Text extracts the text content of an uploaded resume. The MIME type wins
// when present; otherwise the file extension decides.
func Text(filename, mime string, data []byte) (string, error) {
	switch resolveType(filename, mime) {
	case mimeText:
		return string(data), nil
	case mimePDF:
		return pdfText(data)
	case mimeDocx:
		return docxText(data)
	default:
		return "", fmt.Errorf("unsupported file type %q for %q", mime, filename)
	}
}

func resolveType(filename, mime string) string {
	switch mime {
	case mimeText, mimePDF, mimeDocx:
		return mime
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return mimeText
	case ".pdf":
		return mimePDF
	case ".docx":
		return mimeDocx
	}
	return ""
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}
	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		sb.WriteString(text)
	}
	return sb.String(), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()
	return doc.Editable().GetContent(), nil
}
