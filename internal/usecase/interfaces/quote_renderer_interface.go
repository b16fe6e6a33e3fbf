package interfaces

import (
	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
)

// QuoteDocument is everything a renderer needs to lay out a quote.
type QuoteDocument struct {
	CaseNumber       string
	DeceasedName     string
	OrganizationName string
	Packages         []entities.Package
	Disclaimer       string
}

// IQuoteRenderer abstracts PDF generation for quotes.
type IQuoteRenderer interface {
	RenderQuote(doc QuoteDocument) ([]byte, error)
}
