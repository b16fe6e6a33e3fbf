package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Irtizzasmartlog/AIFuneral/internal/adapter/http/handlers/mocks"
	"github.com/Irtizzasmartlog/AIFuneral/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_DownloadQuotePDF(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success streams a pdf attachment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/cases/:case_id/quote-pdf", h.DownloadQuotePDF)

		uc.EXPECT().QuotePDF(gomock.Any(), "case-1").Return([]byte("%PDF-1.4 fake"), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/cases/case-1/quote-pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Fatalf("unexpected content type: %q", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "quote-case-1.pdf") {
			t.Fatalf("unexpected disposition: %q", cd)
		}
		if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
			t.Fatalf("expected pdf payload")
		}
	})

	t.Run("no packages yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/cases/:case_id/quote-pdf", h.DownloadQuotePDF)

		uc.EXPECT().QuotePDF(gomock.Any(), "case-1").Return(nil, usecase.ErrNoPackages)

		req := httptest.NewRequest(http.MethodGet, "/v1/cases/case-1/quote-pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("renderer not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/cases/:case_id/quote-pdf", h.DownloadQuotePDF)

		uc.EXPECT().QuotePDF(gomock.Any(), "case-1").Return(nil, usecase.ErrPDFNotWired)

		req := httptest.NewRequest(http.MethodGet, "/v1/cases/case-1/quote-pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_EmailQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body falls back to next of kin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/cases/:case_id/quote-email", h.EmailQuote)

		uc.EXPECT().EmailQuote(gomock.Any(), "case-1", "").Return("msg-1", nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/cases/case-1/quote-email", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["message_id"] != "msg-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("explicit recipient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/cases/:case_id/quote-email", h.EmailQuote)

		uc.EXPECT().EmailQuote(gomock.Any(), "case-1", "other@example.com").Return("msg-2", nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/cases/case-1/quote-email",
			bytes.NewBufferString(`{"to":" other@example.com "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("no recipient anywhere", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/cases/:case_id/quote-email", h.EmailQuote)

		uc.EXPECT().EmailQuote(gomock.Any(), "case-1", "").Return("", usecase.ErrNoRecipient)

		req := httptest.NewRequest(http.MethodPost, "/v1/cases/case-1/quote-email", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("sender not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/cases/:case_id/quote-email", h.EmailQuote)

		uc.EXPECT().EmailQuote(gomock.Any(), "case-1", "").Return("", usecase.ErrEmailNotWired)

		req := httptest.NewRequest(http.MethodPost, "/v1/cases/case-1/quote-email", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}
