package report

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"financial-health/internal/i18n"
	"financial-health/internal/model"

	"github.com/go-pdf/fpdf"
)

const (
	pageMargin = 19.0
	bodyWidth  = 210 - 2*pageMargin
)

// PDFRenderer draws an assessment report. The built-in PDF fonts cover Latin
// text only; set UnicodeFont to a TTF file to render other scripts.
type PDFRenderer struct {
	UnicodeFont string
	now         func() time.Time
}

// NewPDFRenderer returns a renderer; unicodeFont may be empty.
func NewPDFRenderer(unicodeFont string) *PDFRenderer {
	return &PDFRenderer{UnicodeFont: unicodeFont, now: time.Now}
}

// LabelLanguage is the language labels are actually drawn in: lang when it can
// be rendered, English otherwise.
func (r *PDFRenderer) LabelLanguage(lang string) string {
	if !i18n.Supported(lang) {
		return i18n.DefaultLanguage
	}
	if lang != i18n.DefaultLanguage && r.UnicodeFont == "" {
		return i18n.DefaultLanguage
	}
	return lang
}

// Render writes the PDF report for a to w.
func (r *PDFRenderer) Render(w io.Writer, b model.Business, a model.Assessment, lang string) error {
	lang = r.LabelLanguage(lang)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetTitle("Financial Health Assessment Report", true)
	pdf.SetCreationDate(r.now())

	font := "Helvetica"
	text := pdf.UnicodeTranslatorFromDescriptor("")
	if lang != i18n.DefaultLanguage {
		font = "unicode"
		pdf.AddUTF8Font(font, "", r.UnicodeFont)
		pdf.AddUTF8Font(font, "B", r.UnicodeFont)
		text = func(s string) string { return s }
	}
	bold := func(size float64) { pdf.SetFont(font, "B", size) }
	regular := func(size float64) { pdf.SetFont(font, "", size) }

	pdf.AddPage()

	bold(20)
	pdf.SetTextColor(24, 144, 255)
	pdf.CellFormat(bodyWidth, 12, text("Financial Health Assessment Report"), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	bold(14)
	pdf.CellFormat(bodyWidth, 9, text(b.Name), "", 1, "C", false, 0, "")
	regular(10)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(bodyWidth, 6, text(string(b.Industry)), "", 1, "C", false, 0, "")
	pdf.CellFormat(bodyWidth, 6, text("Report Generated: "+r.now().Format("January 02, 2006")), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	regular(11)
	summary := fmt.Sprintf(
		"%s achieved a financial health score of %d/100 with a creditworthiness rating of %s and a %s risk level.",
		b.Name, a.Score, a.Rating, a.RiskLevel)
	pdf.MultiCell(bodyWidth, 6, text(summary), "", "L", false)
	pdf.Ln(4)

	for _, t := range Project(a, lang) {
		drawTable(pdf, t, text, bold, regular)
	}

	if pdf.Err() {
		return fmt.Errorf("failed to generate PDF: %w", pdf.Error())
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to generate PDF output: %w", err)
	}
	return nil
}

// RenderBytes is Render into a fresh buffer.
func (r *PDFRenderer) RenderBytes(b model.Business, a model.Assessment, lang string) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, b, a, lang); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTable(pdf *fpdf.Fpdf, t Table, text func(string) string, bold, regular func(float64)) {
	bold(13)
	pdf.SetTextColor(24, 144, 255)
	pdf.CellFormat(bodyWidth, 9, text(t.Title), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	cols := len(t.Header)
	if cols == 0 && len(t.Rows) > 0 {
		cols = len(t.Rows[0])
	}
	if cols == 0 {
		return
	}
	width := bodyWidth / float64(cols)

	if len(t.Header) > 0 {
		bold(9)
		pdf.SetFillColor(230, 240, 255)
		for _, h := range t.Header {
			pdf.CellFormat(width, 7, text(h), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}
	regular(9)
	if len(t.Rows) == 0 {
		pdf.CellFormat(bodyWidth, 7, "-", "1", 1, "C", false, 0, "")
	}
	for _, row := range t.Rows {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pdf.CellFormat(width, 7, text(fitCell(pdf, cell, width)), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

// fitCell shortens s until it fits in a cell of width w.
func fitCell(pdf *fpdf.Fpdf, s string, w float64) string {
	limit := w - 2
	if pdf.GetStringWidth(s) <= limit {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"...") > limit {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
