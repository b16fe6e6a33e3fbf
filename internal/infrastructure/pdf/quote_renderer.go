package pdf

import (
	"bytes"
	"fmt"

	"github.com/Irtizzasmartlog/AIFuneral/internal/pricing"
	"github.com/Irtizzasmartlog/AIFuneral/internal/usecase/interfaces"

	"github.com/jung-kurt/gofpdf"
)

// QuoteRenderer lays out a quote PDF: header, one block per package with its
// line breakdown and assumptions, and the compliance disclaimer at the end.
type QuoteRenderer struct{}

var _ interfaces.IQuoteRenderer = (*QuoteRenderer)(nil)

func NewQuoteRenderer() *QuoteRenderer {
	return &QuoteRenderer{}
}

func (r *QuoteRenderer) RenderQuote(doc interfaces.QuoteDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetTextColor(26, 26, 26)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, doc.OrganizationName)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Quote: %s", doc.CaseNumber))
	pdf.Ln(7)
	deceased := doc.DeceasedName
	if deceased == "" {
		deceased = "N/A"
	}
	pdf.Cell(0, 7, fmt.Sprintf("Deceased: %s", deceased))
	pdf.Ln(12)

	for _, pkg := range doc.Packages {
		pdf.SetTextColor(26, 26, 26)
		pdf.SetFont("Helvetica", "B", 14)
		pdf.Cell(0, 8, fmt.Sprintf("%s (%s)", pkg.Name, pkg.Tier))
		pdf.Ln(8)

		pdf.SetFont("Helvetica", "", 12)
		pdf.Cell(0, 7, fmt.Sprintf("Total: %s AUD", pricing.FormatAUD(pkg.TotalCents)))
		pdf.Ln(7)

		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(51, 51, 51)
		for _, line := range pkg.LineItems {
			pdf.MultiCell(0, 5, fmt.Sprintf("  %s", line.Description), "", "L", false)
		}

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(102, 102, 102)
		estimated := ""
		if pkg.Assumptions.Estimated {
			estimated = ", estimated"
		}
		pdf.MultiCell(0, 5, fmt.Sprintf("  Assumptions: %d attendees%s", pkg.Assumptions.AttendeeCount, estimated), "", "L", false)
		pdf.Ln(4)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(102, 51, 0)
	pdf.MultiCell(0, 4, doc.Disclaimer, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
