// Package export renders category word lists as PDF documents.
package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/elyorka22/-telegram-bot/internal/domain"
)

// decorations are interface emoji that leak into saved notes and have no
// place in the rendered document.
var decorations = []string{"📚", "📄", "🏷️", "🗑️", "❓", "✅", "❌", "ℹ️", "💡"}

func stripDecorations(s string) string {
	for _, d := range decorations {
		s = strings.ReplaceAll(s, d, "")
	}
	return s
}

// cleanEntry drops the trailing category marker and decorations from a
// saved note so only the note text itself is printed.
func cleanEntry(text, category string) string {
	text = strings.TrimSpace(strings.ReplaceAll(text, " "+category, ""))
	return strings.TrimSpace(stripDecorations(text))
}

// PDFExporter renders word lists into paginated A4 documents using the
// built-in Times faces. Text is translated to cp1251 so Cyrillic notes
// survive the single-byte encoding.
type PDFExporter struct{}

// NewPDFExporter creates a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render builds the document for one category. Every pair becomes a
// numbered entry with an optional indented translation line; entries
// whose cleaned text is empty are skipped but keep their number. The
// footer counts all input pairs, rendered or not.
func (e *PDFExporter) Render(category string, words []domain.WordPair) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	translate := pdf.UnicodeTranslatorFromDescriptor("cp1251")
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageWidth - left - right

	pdf.SetFont("Times", "B", 18)
	pdf.SetTextColor(0, 0, 255)
	pdf.CellFormat(usable, 24, translate(category+" - Word List"), "", 1, "C", false, 0, "")
	pdf.Ln(15)
	pdf.SetTextColor(0, 0, 0)

	for i, word := range words {
		text := cleanEntry(word.Text, category)
		if text == "" {
			continue
		}

		pdf.SetFont("Times", "", 12)
		pdf.SetX(left + 20)
		pdf.MultiCell(usable-20, 16, translate(fmt.Sprintf("%d. %s", i+1, text)), "", "L", false)

		if tr := strings.TrimSpace(stripDecorations(word.Translation)); tr != "" {
			pdf.SetFont("Times", "I", 10)
			pdf.SetX(left + 40)
			pdf.MultiCell(usable-40, 14, translate("-> "+tr), "", "L", false)
		}
		pdf.Ln(3)
	}

	pdf.Ln(15)
	pdf.SetFont("Times", "", 9)
	footer := fmt.Sprintf("Generated: %s | Words: %d", time.Now().Format("2006-01-02 15:04"), len(words))
	pdf.CellFormat(usable, 12, translate(footer), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
