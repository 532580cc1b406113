package handlers

import (
	"log"
	"net/http"
	response "sieeg_orders/internal/adapter/http/dto/response"
	"sieeg_orders/internal/usecase/interfaces"
	"sieeg_orders/pkg"

	"github.com/gin-gonic/gin"
)

var errTecnicoListFailed = pkg.NewDomainErrorSimple("TECNICO_DIRECTORY_ERROR", "Could not list technicians", http.StatusInternalServerError)

// TecnicoHandler exposes the shop-account directory so the frontend can
// offer technicians for order assignment. Account provisioning itself lives
// with the auth gateway.

type TecnicoHandler struct {
	directory interfaces.ITecnicoDirectory
}

func NewTecnicoHandler(directory interfaces.ITecnicoDirectory) *TecnicoHandler {
	return &TecnicoHandler{directory: directory}
}

// ListTecnicos godoc
// @Summary List technicians available for order assignment
// @Tags tecnicos
// @Produce json
// @Success 200 {array} response.TecnicoResponse
// @Failure 500 {object} pkg.HTTPError
// @Router /tecnicos [get]
func (h *TecnicoHandler) ListTecnicos(c *gin.Context) {
	tecnicos, err := h.directory.List(c.Request.Context())
	if err != nil {
		log.Printf("[tecnico][handler] list failed err=%v", err)
		c.JSON(errTecnicoListFailed.HTTPStatus, errTecnicoListFailed.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTecnicos(tecnicos))
}
