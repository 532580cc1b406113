package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sieeg_orders/internal/domain/entities"
	mock_interfaces "sieeg_orders/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTecnicoRouter(h *TecnicoHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/tecnicos", h.ListTecnicos)
	return r
}

func TestTecnicoHandler_ListTecnicos(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("lists accounts for assignment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		directory := mock_interfaces.NewMockITecnicoDirectory(ctrl)
		r := newTecnicoRouter(NewTecnicoHandler(directory))

		directory.EXPECT().List(gomock.Any()).Return([]entities.Tecnico{
			{UID: "tec-1", Nombre: "Juan Pérez", Rol: "tecnico", Activo: true},
			{UID: "adm-1", Nombre: "Ana Torres", Rol: "admin", Activo: true},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/tecnicos", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var tecnicos []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &tecnicos); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if len(tecnicos) != 2 || tecnicos[0]["uid"] != "tec-1" || tecnicos[1]["rol"] != "admin" {
			t.Fatalf("unexpected response: %v", tecnicos)
		}
	})

	t.Run("directory error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		directory := mock_interfaces.NewMockITecnicoDirectory(ctrl)
		r := newTecnicoRouter(NewTecnicoHandler(directory))

		directory.EXPECT().List(gomock.Any()).Return(nil, errors.New("table missing"))

		req := httptest.NewRequest(http.MethodGet, "/v1/tecnicos", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
