package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/Irtizzasmartlog/AIFuneral/internal/adapter/http/dto/request"
	response "github.com/Irtizzasmartlog/AIFuneral/internal/adapter/http/dto/response"
	"github.com/Irtizzasmartlog/AIFuneral/internal/usecase"
	"github.com/Irtizzasmartlog/AIFuneral/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidTurnPayload = pkg.NewDomainErrorSimple("INVALID_TURN_INPUT", "Invalid conversation payload", http.StatusBadRequest)
)

// ConversationHandler handles the intake conversation endpoints.

type ConversationHandler struct {
	usecase usecase.IConversationUseCase
}

func NewConversationHandler(uc usecase.IConversationUseCase) *ConversationHandler {
	return &ConversationHandler{usecase: uc}
}

// PostTurn runs one intake conversation turn for a case.
func (h *ConversationHandler) PostTurn(c *gin.Context) {
	caseID := c.Param("case_id")

	var payload request.TurnRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTurnPayload.HTTPStatus, errInvalidTurnPayload.ToHTTPError())
		return
	}

	messages, err := payload.ToMessages()
	if err != nil {
		log.Printf("[conversation][handler] invalid messages case_id=%s err=%v", caseID, err)
		c.JSON(errInvalidTurnPayload.HTTPStatus, errInvalidTurnPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.ProcessTurn(c.Request.Context(), caseID, messages)
	if err != nil {
		log.Printf("[conversation][handler] turn failed case_id=%s err=%v", caseID, err)
		appErr := mapConversationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[conversation][handler] turn success case_id=%s mode=%s", caseID, result.Mode)

	c.JSON(http.StatusOK, response.FromTurnResult(result))
}

// ApplyToCase writes the collected intake answers onto the case record.
func (h *ConversationHandler) ApplyToCase(c *gin.Context) {
	caseID := c.Param("case_id")

	updated, err := h.usecase.ApplyToCase(c.Request.Context(), caseID)
	if err != nil {
		log.Printf("[conversation][handler] apply failed case_id=%s err=%v", caseID, err)
		appErr := mapConversationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[conversation][handler] apply success case_id=%s", caseID)

	c.JSON(http.StatusOK, response.FromCase(updated))
}

func mapConversationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCaseID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCaseNotFound):
		return pkg.NewDomainErrorSimple("CASE_NOT_FOUND", "Case not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrConversationMissing):
		return pkg.NewDomainErrorSimple("CONVERSATION_NOT_FOUND", "No intake conversation for case", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
