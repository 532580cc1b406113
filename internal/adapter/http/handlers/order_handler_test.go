package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sieeg_orders/internal/adapter/http/handlers/mocks"
	"sieeg_orders/internal/domain/entities"
	"sieeg_orders/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newOrderRouter(h *OrderHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/ordenes", h.CreateOrder)
	r.GET("/v1/ordenes", h.ListOrders)
	r.GET("/v1/ordenes/:id", h.GetOrder)
	r.PATCH("/v1/ordenes/:id", h.UpdateOrder)
	r.PATCH("/v1/ordenes/:id/estado", h.ChangeStatus)
	r.POST("/v1/ordenes/:id/entrega", h.DeliverOrder)
	r.POST("/v1/ordenes/:id/cancelacion", h.CancelOrder)
	r.GET("/v1/publico/ordenes/:folio", h.LookupByFolio)
	return r
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/ordenes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing client name maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, usecase.ErrMissingClienteNombre)

		req := httptest.NewRequest(http.MethodPost, "/v1/ordenes",
			bytes.NewBufferString(`{"cliente":{"nombre":"  "}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created order is returned with 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.CreateOrderInput) (entities.Order, error) {
				if in.Cliente.Nombre != "Juan" {
					t.Fatalf("payload not mapped: %#v", in)
				}
				if !in.Trabajos.Maintenance || len(in.Trabajos.Rows) != 1 {
					t.Fatalf("work log not normalized on bind: %#v", in.Trabajos)
				}
				return entities.Order{ID: "ord-1", Folio: "S25090110", Estado: entities.OrderStatusPendiente}, nil
			})

		body := `{"cliente":{"nombre":"Juan"},"trabajosRealizados":{"registros":[{"area":"Oficina"}]}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/ordenes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["folio"] != "S25090110" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/ordenes/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestOrderHandler_UpdateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("actor headers reach the use case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		uc.EXPECT().UpdateContent(gomock.Any(), gomock.Any(), "ord-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, actor entities.Actor, _ string, patch usecase.ContentPatch) (entities.Order, error) {
				if actor.UID != "tec-1" || actor.Rol != entities.RoleTecnico {
					t.Fatalf("actor not mapped: %#v", actor)
				}
				if patch.Diagnostico == nil || *patch.Diagnostico != "falla de fuente" {
					t.Fatalf("patch not mapped: %#v", patch)
				}
				if patch.Comentarios != nil {
					t.Fatalf("absent fields must stay nil")
				}
				return entities.Order{ID: "ord-1"}, nil
			})

		req := httptest.NewRequest(http.MethodPatch, "/v1/ordenes/ord-1",
			bytes.NewBufferString(`{"diagnostico":"falla de fuente"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Actor-Id", "tec-1")
		req.Header.Set("X-Actor-Role", "tecnico")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("cancelled order maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		uc.EXPECT().UpdateContent(gomock.Any(), gomock.Any(), "ord-1", gomock.Any()).
			Return(entities.Order{}, usecase.ErrOrderCancelled)

		req := httptest.NewRequest(http.MethodPatch, "/v1/ordenes/ord-1",
			bytes.NewBufferString(`{"comentarios":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("forbidden maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		uc.EXPECT().UpdateContent(gomock.Any(), gomock.Any(), "ord-1", gomock.Any()).
			Return(entities.Order{}, usecase.ErrForbidden)

		req := httptest.NewRequest(http.MethodPatch, "/v1/ordenes/ord-1",
			bytes.NewBufferString(`{"comentarios":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestOrderHandler_ChangeStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid target maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		uc.EXPECT().ChangeStatus(gomock.Any(), gomock.Any(), "ord-1", entities.OrderStatus("Entregado")).
			Return(entities.Order{}, usecase.ErrInvalidStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/ordenes/ord-1/estado",
			bytes.NewBufferString(`{"estado":"Entregado"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_DeliverOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing receiver rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/ordenes/ord-1/entrega",
			bytes.NewBufferString(`{"fechaEntrega":"2025-09-01"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not ready maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		uc.EXPECT().Deliver(gomock.Any(), gomock.Any(), "ord-1", "María", "2025-09-01").
			Return(entities.Order{}, usecase.ErrNotReadyForDelivery)

		req := httptest.NewRequest(http.MethodPost, "/v1/ordenes/ord-1/entrega",
			bytes.NewBufferString(`{"quienRecibe":"María","fechaEntrega":"2025-09-01"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestOrderHandler_LookupByFolio(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns the public view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		uc.EXPECT().LookupByFolio(gomock.Any(), "S25090110").Return(usecase.PublicOrderView{
			Folio:  "S25090110",
			Estado: entities.OrderStatusListo,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/publico/ordenes/S25090110", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var view usecase.PublicOrderView
		if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if view.Folio != "S25090110" || view.Estado != entities.OrderStatusListo {
			t.Fatalf("unexpected view: %#v", view)
		}
	})

	t.Run("unknown folio maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc))

		uc.EXPECT().LookupByFolio(gomock.Any(), "S00000000").Return(usecase.PublicOrderView{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/publico/ordenes/S00000000", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
