package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sieeg_orders/internal/adapter/http/handlers/mocks"
	"sieeg_orders/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newDocumentRouter(h *DocumentHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/ordenes/:id/documento", h.GetOrderDocument)
	r.GET("/v1/ordenes/:id/ticket", h.GetTicketDocument)
	r.POST("/v1/ordenes/:id/documento/compartir", h.ShareOrderDocument)
	return r
}

func TestDocumentHandler_GetOrderDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("serves pdf inline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := newDocumentRouter(NewDocumentHandler(uc))

		uc.EXPECT().RenderOrderDocument(gomock.Any(), "ord-1").
			Return([]byte("%PDF-1.3 fake"), "Orden_S25090110.pdf", nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/ordenes/ord-1/documento", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Fatalf("expected application/pdf, got %q", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "Orden_S25090110.pdf") {
			t.Fatalf("filename missing from disposition: %q", cd)
		}
	})

	t.Run("missing order maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := newDocumentRouter(NewDocumentHandler(uc))

		uc.EXPECT().RenderOrderDocument(gomock.Any(), "missing").
			Return(nil, "", usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/ordenes/missing/documento", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestDocumentHandler_GetTicketDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDocumentUseCase(ctrl)
	r := newDocumentRouter(NewDocumentHandler(uc))

	uc.EXPECT().RenderTicketDocument(gomock.Any(), "ord-1").
		Return([]byte("%PDF-1.3 fake"), "Ticket_S25090110.pdf", nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/ordenes/ord-1/ticket", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestDocumentHandler_ShareOrderDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns the share url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := newDocumentRouter(NewDocumentHandler(uc))

		uc.EXPECT().ShareOrderDocument(gomock.Any(), "ord-1").
			Return("https://cdn.example.com/documentos/ord-1/Orden.pdf", nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/ordenes/ord-1/documento/compartir", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "https://cdn.example.com") {
			t.Fatalf("url missing from body: %s", w.Body.String())
		}
	})

	t.Run("unconfigured storage maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		r := newDocumentRouter(NewDocumentHandler(uc))

		uc.EXPECT().ShareOrderDocument(gomock.Any(), "ord-1").
			Return("", usecase.ErrStorageNotConfigured)

		req := httptest.NewRequest(http.MethodPost, "/v1/ordenes/ord-1/documento/compartir", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}
