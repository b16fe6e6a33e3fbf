package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/Irtizzasmartlog/AIFuneral/internal/agents"
	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
	"github.com/Irtizzasmartlog/AIFuneral/internal/pricing"
	"github.com/Irtizzasmartlog/AIFuneral/internal/usecase/interfaces"
)

var (
	ErrNoPackages     = errors.New("no packages generated for case")
	ErrNoRecipient    = errors.New("no recipient email for case")
	ErrEmailNotWired  = errors.New("email sender not configured")
	ErrPDFNotWired    = errors.New("quote renderer not configured")
)

// IQuoteUseCase turns a case's generated packages into client-facing
// artifacts: a quote PDF and a quote email.

type IQuoteUseCase interface {
	QuotePDF(ctx context.Context, caseID string) ([]byte, error)
	EmailQuote(ctx context.Context, caseID, to string) (externalID string, err error)
}

type QuoteUseCase struct {
	cases            interfaces.ICaseRepository
	packages         interfaces.IPackageRepository
	renderer         interfaces.IQuoteRenderer
	email            interfaces.IEmailSender
	organizationName string
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(cases interfaces.ICaseRepository, packages interfaces.IPackageRepository, renderer interfaces.IQuoteRenderer, email interfaces.IEmailSender, organizationName string) *QuoteUseCase {
	if organizationName == "" {
		organizationName = "FuneralFlow"
	}
	return &QuoteUseCase{cases: cases, packages: packages, renderer: renderer, email: email, organizationName: organizationName}
}

func (u *QuoteUseCase) QuotePDF(ctx context.Context, caseID string) ([]byte, error) {
	if u.renderer == nil {
		return nil, ErrPDFNotWired
	}
	c, pkgs, err := u.loadQuoteInputs(ctx, caseID)
	if err != nil {
		return nil, err
	}

	deceased := "N/A"
	if c.DeceasedFullName != nil {
		deceased = *c.DeceasedFullName
	}
	return u.renderer.RenderQuote(interfaces.QuoteDocument{
		CaseNumber:       c.CaseNumber,
		DeceasedName:     deceased,
		OrganizationName: u.organizationName,
		Packages:         pkgs,
		Disclaimer:       agents.ComplianceDisclaimer,
	})
}

// EmailQuote sends the package summary to the given address, defaulting to
// the case's next-of-kin email.
func (u *QuoteUseCase) EmailQuote(ctx context.Context, caseID, to string) (string, error) {
	if u.email == nil {
		return "", ErrEmailNotWired
	}
	c, pkgs, err := u.loadQuoteInputs(ctx, caseID)
	if err != nil {
		return "", err
	}

	to = strings.TrimSpace(to)
	if to == "" {
		if c.NextOfKinEmail == nil || *c.NextOfKinEmail == "" {
			return "", ErrNoRecipient
		}
		to = *c.NextOfKinEmail
	}

	subject := fmt.Sprintf("Your service quote — %s", c.CaseNumber)
	html := buildQuoteHTML(u.organizationName, c, pkgs)

	externalID, err := u.email.Send(ctx, to, subject, html)
	if err != nil {
		log.Printf("[quote][usecase] email send failed case_id=%s err=%v", caseID, err)
		return "", err
	}
	log.Printf("[quote][usecase] quote emailed case_id=%s to=%s external_id=%s", caseID, to, externalID)
	return externalID, nil
}

func (u *QuoteUseCase) loadQuoteInputs(ctx context.Context, caseID string) (entities.Case, []entities.Package, error) {
	caseID = strings.TrimSpace(caseID)
	if caseID == "" {
		return entities.Case{}, nil, ErrInvalidCaseID
	}
	c, err := u.cases.GetByID(ctx, caseID)
	if err != nil {
		return entities.Case{}, nil, err
	}
	if c.ID == "" {
		return entities.Case{}, nil, ErrCaseNotFound
	}
	pkgs, err := u.packages.ListByCaseID(ctx, caseID)
	if err != nil {
		return entities.Case{}, nil, err
	}
	if len(pkgs) == 0 {
		return entities.Case{}, nil, ErrNoPackages
	}
	sort.Slice(pkgs, func(i, j int) bool { return pkgs[i].SortOrder < pkgs[j].SortOrder })
	return c, pkgs, nil
}

func buildQuoteHTML(org string, c entities.Case, pkgs []entities.Package) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<h1>%s</h1>", org))
	b.WriteString(fmt.Sprintf("<p>Quote %s</p>", c.CaseNumber))
	for _, p := range pkgs {
		marker := ""
		if p.IsRecommended {
			marker = " (Recommended)"
		}
		b.WriteString(fmt.Sprintf("<h2>%s%s — %s</h2>", p.Name, marker, pricing.FormatAUD(p.TotalCents)))
		b.WriteString(fmt.Sprintf("<p>%s</p><ul>", p.Description))
		for _, l := range p.LineItems {
			b.WriteString(fmt.Sprintf("<li>%s</li>", l.Description))
		}
		b.WriteString("</ul>")
	}
	b.WriteString(fmt.Sprintf("<p><em>%s</em></p>", agents.ComplianceDisclaimer))
	return b.String()
}
