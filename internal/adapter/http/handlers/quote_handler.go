package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	request "github.com/Irtizzasmartlog/AIFuneral/internal/adapter/http/dto/request"
	response "github.com/Irtizzasmartlog/AIFuneral/internal/adapter/http/dto/response"
	"github.com/Irtizzasmartlog/AIFuneral/internal/usecase"
	"github.com/Irtizzasmartlog/AIFuneral/pkg"

	"github.com/gin-gonic/gin"
)

// QuoteHandler exposes quote artifacts: PDF download and email delivery.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// DownloadQuotePDF streams the case quote as a PDF attachment.
func (h *QuoteHandler) DownloadQuotePDF(c *gin.Context) {
	caseID := c.Param("case_id")

	pdfBytes, err := h.usecase.QuotePDF(c.Request.Context(), caseID)
	if err != nil {
		log.Printf("[quote][handler] pdf failed case_id=%s err=%v", caseID, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] pdf success case_id=%s bytes=%d", caseID, len(pdfBytes))

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=quote-%s.pdf", caseID))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// EmailQuote sends the quote summary to the family.
func (h *QuoteHandler) EmailQuote(c *gin.Context) {
	caseID := c.Param("case_id")

	var payload request.EmailQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	messageID, err := h.usecase.EmailQuote(c.Request.Context(), caseID, payload.ResolveTo())
	if err != nil {
		log.Printf("[quote][handler] email failed case_id=%s err=%v", caseID, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] email success case_id=%s message_id=%s", caseID, messageID)

	c.JSON(http.StatusOK, response.QuoteEmailResponse{MessageID: messageID})
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCaseID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCaseNotFound):
		return pkg.NewDomainErrorSimple("CASE_NOT_FOUND", "Case not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoPackages):
		return pkg.NewDomainErrorSimple("PACKAGES_NOT_GENERATED", "No packages generated for this case yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoRecipient):
		return pkg.NewDomainErrorSimple("NO_RECIPIENT", "No recipient email on the case", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmailNotWired), errors.Is(err, usecase.ErrPDFNotWired):
		return pkg.NewDomainErrorSimple("NOT_CONFIGURED", "Delivery channel not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
