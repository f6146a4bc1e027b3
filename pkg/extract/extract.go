package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Kind identifies the declared format of an uploaded document
type Kind string

const (
	KindPDF  Kind = "pdf"
	KindDOCX Kind = "docx"
	KindText Kind = "txt"
)

// ExtractionError means the blob could not be decoded as its declared format.
// It wraps the underlying cause; callers surface it to the user without retrying.
type ExtractionError struct {
	Kind Kind
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("could not extract text from %s document: %v", e.Kind, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// KindFromFilename maps a filename extension to a Kind.
// Only .pdf, .docx, and .txt are supported.
func KindFromFilename(name string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return KindPDF, nil
	case ".docx":
		return KindDOCX, nil
	case ".txt":
		return KindText, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use PDF, DOCX, or TXT", filepath.Ext(name))
	}
}

// Text extracts the raw text from a document blob of the declared kind.
// Size limits are the caller's responsibility.
func Text(data []byte, kind Kind) (string, error) {
	switch kind {
	case KindPDF:
		return pdfText(data)
	case KindDOCX:
		return docxText(data)
	case KindText:
		return plainText(data)
	default:
		return "", &ExtractionError{Kind: kind, Err: fmt.Errorf("unknown document kind")}
	}
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Kind: KindPDF, Err: err}
	}

	var textBuilder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		// a single unreadable page should not sink the whole document
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	result := strings.TrimSpace(textBuilder.String())
	if result == "" {
		return "", &ExtractionError{Kind: KindPDF, Err: fmt.Errorf("no extractable text found")}
	}
	return result, nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Kind: KindDOCX, Err: err}
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	return strings.TrimSpace(stripDocxXML(content)), nil
}

// stripDocxXML converts the raw document.xml content to plain text.
// Paragraph closings become newlines so line-oriented parsing still works.
func stripDocxXML(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	var b strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func plainText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", &ExtractionError{Kind: KindText, Err: fmt.Errorf("invalid UTF-8 byte sequence")}
	}
	return strings.TrimSpace(string(data)), nil
}
