package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Irtizzasmartlog/AIFuneral/internal/adapter/http/handlers/mocks"
	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
	"github.com/Irtizzasmartlog/AIFuneral/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCaseHandler_CreateCase(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICaseUseCase(ctrl)
		h := NewCaseHandler(uc)

		r := gin.New()
		r.POST("/v1/cases", h.CreateCase)

		now := time.Now().UTC()
		uc.EXPECT().CreateCase(gomock.Any()).Return(entities.Case{
			ID:         "case-1",
			CaseNumber: "FC-AAAA1111",
			Status:     entities.CaseStatusIntake,
			CreatedAt:  now,
			UpdatedAt:  now,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/cases", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["id"] != "case-1" || body["case_number"] != "FC-AAAA1111" || body["status"] != "Intake" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("usecase error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICaseUseCase(ctrl)
		h := NewCaseHandler(uc)

		r := gin.New()
		r.POST("/v1/cases", h.CreateCase)

		uc.EXPECT().CreateCase(gomock.Any()).Return(entities.Case{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodPost, "/v1/cases", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestCaseHandler_GetCase(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICaseUseCase(ctrl)
		h := NewCaseHandler(uc)

		r := gin.New()
		r.GET("/v1/cases/:case_id", h.GetCase)

		uc.EXPECT().GetCase(gomock.Any(), "missing").Return(entities.Case{}, usecase.ErrCaseNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/cases/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["code"] != "CASE_NOT_FOUND" {
			t.Fatalf("unexpected error code: %v", body)
		}
	})

	t.Run("success hides internal notes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICaseUseCase(ctrl)
		h := NewCaseHandler(uc)

		r := gin.New()
		r.GET("/v1/cases/:case_id", h.GetCase)

		internal := "director-only remark"
		name := "John Smith"
		uc.EXPECT().GetCase(gomock.Any(), "case-1").Return(entities.Case{
			ID:               "case-1",
			CaseNumber:       "FC-AAAA1111",
			Status:           entities.CaseStatusQuoted,
			DeceasedFullName: &name,
			InternalNotes:    &internal,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/cases/case-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["deceased_full_name"] != "John Smith" {
			t.Fatalf("unexpected body: %v", body)
		}
		if _, ok := body["internal_notes"]; ok {
			t.Fatalf("internal notes must not be exposed: %v", body)
		}
	})
}
