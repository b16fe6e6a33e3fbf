package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	request "github.com/Irtizzasmartlog/AIFuneral/internal/adapter/http/dto/request"
	response "github.com/Irtizzasmartlog/AIFuneral/internal/adapter/http/dto/response"
	"github.com/Irtizzasmartlog/AIFuneral/internal/usecase"
	"github.com/Irtizzasmartlog/AIFuneral/pkg"

	"github.com/gin-gonic/gin"
)

// PackageHandler handles package generation and listing.

type PackageHandler struct {
	orchestrator usecase.IOrchestratorUseCase
	packages     usecase.IPackageQueryUseCase
}

func NewPackageHandler(orchestrator usecase.IOrchestratorUseCase, packages usecase.IPackageQueryUseCase) *PackageHandler {
	return &PackageHandler{orchestrator: orchestrator, packages: packages}
}

// GeneratePackages runs the agent pipeline for a case and replaces its
// package and task sets. The body is optional; when present it carries
// pricing constraint overrides.
func (h *PackageHandler) GeneratePackages(c *gin.Context) {
	caseID := c.Param("case_id")
	log.Printf("[package][handler] generate start case_id=%s", caseID)

	var payload request.GenerateRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.orchestrator.Run(c.Request.Context(), caseID, payload.ToConstraints())
	if err != nil {
		log.Printf("[package][handler] generate failed case_id=%s err=%v", caseID, err)
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[package][handler] generate success case_id=%s packages=%d tasks=%d", caseID, len(result.Packages), len(result.Tasks))

	c.JSON(http.StatusOK, response.FromOrchestratorResult(result))
}

// ListPackages returns the case's current package set in tier order.
func (h *PackageHandler) ListPackages(c *gin.Context) {
	caseID := c.Param("case_id")

	packages, err := h.packages.ListPackages(c.Request.Context(), caseID)
	if err != nil {
		log.Printf("[package][handler] list failed case_id=%s err=%v", caseID, err)
		appErr := mapCaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPackages(packages))
}
