// Package pdftext pulls plain text out of page-oriented documents.
// There is no structure awareness beyond page concatenation.
package pdftext

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// ExtractText returns the concatenated text of every page in the document,
// one page per line block.
func ExtractText(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("failed to open document: %w", err)
	}
	defer doc.Close()

	var builder strings.Builder
	for pageNum := 0; pageNum < doc.NumPage(); pageNum++ {
		text, err := doc.Text(pageNum)
		if err != nil {
			return "", fmt.Errorf("failed to read page %d: %w", pageNum+1, err)
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}

	return builder.String(), nil
}
