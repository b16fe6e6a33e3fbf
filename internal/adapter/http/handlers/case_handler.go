package handlers

import (
	"errors"
	"log"
	"net/http"

	response "github.com/Irtizzasmartlog/AIFuneral/internal/adapter/http/dto/response"
	"github.com/Irtizzasmartlog/AIFuneral/internal/usecase"
	"github.com/Irtizzasmartlog/AIFuneral/pkg"

	"github.com/gin-gonic/gin"
)

// CaseHandler handles HTTP requests for funeral cases.

type CaseHandler struct {
	usecase usecase.ICaseUseCase
}

func NewCaseHandler(uc usecase.ICaseUseCase) *CaseHandler {
	return &CaseHandler{usecase: uc}
}

// CreateCase opens a new case in Intake status. The body is empty; all
// attributes arrive later through the intake conversation.
func (h *CaseHandler) CreateCase(c *gin.Context) {
	created, err := h.usecase.CreateCase(c.Request.Context())
	if err != nil {
		log.Printf("[case][handler] create failed err=%v", err)
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[case][handler] create success case_id=%s case_number=%s", created.ID, created.CaseNumber)

	c.JSON(http.StatusCreated, response.FromCase(created))
}

// GetCase returns one case by id.
func (h *CaseHandler) GetCase(c *gin.Context) {
	caseID := c.Param("case_id")

	found, err := h.usecase.GetCase(c.Request.Context(), caseID)
	if err != nil {
		log.Printf("[case][handler] get failed case_id=%s err=%v", caseID, err)
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCase(found))
}

func mapCaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCaseID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCaseNotFound):
		return pkg.NewDomainErrorSimple("CASE_NOT_FOUND", "Case not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
