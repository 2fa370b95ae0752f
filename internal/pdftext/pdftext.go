// Package pdftext converts an exported resume PDF into the plain-text line
// stream the extraction engine consumes.
package pdftext

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// FromFile reads path and returns its plain text. Non-PDF files are read
// verbatim, so callers can feed pre-converted .txt documents through the
// same entry point.
func FromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume file %s: %w", path, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".pdf") || bytes.HasPrefix(data, []byte("%PDF")) {
		return FromBytes(data)
	}
	return Normalize(string(data)), nil
}

// FromBytes extracts plain text from PDF bytes.
func FromBytes(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var buf bytes.Buffer
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			// A single unreadable page should not sink the document.
			continue
		}
		for _, row := range rows {
			for _, word := range row.Content {
				buf.WriteString(word.S)
				buf.WriteByte(' ')
			}
			buf.WriteByte('\n')
		}
	}

	text := Normalize(buf.String())
	if text == "" {
		// Fall back to the stream-based extractor for PDFs without
		// row positioning data.
		plain, err := reader.GetPlainText()
		if err != nil {
			return "", fmt.Errorf("failed to extract PDF text: %w", err)
		}
		var fallback bytes.Buffer
		if _, err := io.Copy(&fallback, plain); err != nil {
			return "", fmt.Errorf("failed to extract PDF text: %w", err)
		}
		text = Normalize(fallback.String())
	}
	return text, nil
}

var (
	horizontalWS = regexp.MustCompile(`[ \t\r\f\v]+`)
	newlineRuns  = regexp.MustCompile(`\n{3,}`)
)

// Normalize collapses horizontal whitespace runs and excessive blank lines
// while preserving the line structure the extractors depend on.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = horizontalWS.ReplaceAllString(s, " ")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	s = strings.Join(lines, "\n")
	s = newlineRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
