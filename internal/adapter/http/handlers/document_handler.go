package handlers

import (
	"errors"
	"net/http"
	response "sieeg_orders/internal/adapter/http/dto/response"
	"sieeg_orders/internal/usecase"
	"sieeg_orders/pkg"

	"github.com/gin-gonic/gin"
)

// DocumentHandler serves the printable artifacts of an order: the two-page
// service sheet (or its foreign-maintenance variant) and the 80mm ticket.

type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

// GetOrderDocument godoc
// @Summary Render the service-order PDF
// @Tags documents
// @Produce application/pdf
// @Param id path string true "Order ID"
// @Success 200 {file} binary
// @Failure 404 {object} pkg.HTTPError
// @Router /ordenes/{id}/documento [get]
func (h *DocumentHandler) GetOrderDocument(c *gin.Context) {
	data, filename, err := h.usecase.RenderOrderDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	servePDF(c, filename, data)
}

// GetTicketDocument godoc
// @Summary Render the compact reception ticket PDF
// @Tags documents
// @Produce application/pdf
// @Param id path string true "Order ID"
// @Success 200 {file} binary
// @Failure 404 {object} pkg.HTTPError
// @Router /ordenes/{id}/ticket [get]
func (h *DocumentHandler) GetTicketDocument(c *gin.Context) {
	data, filename, err := h.usecase.RenderTicketDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	servePDF(c, filename, data)
}

// ShareOrderDocument godoc
// @Summary Upload the service-order PDF and return a shareable link
// @Tags documents
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.ShareDocumentResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 503 {object} pkg.HTTPError
// @Router /ordenes/{id}/documento/compartir [post]
func (h *DocumentHandler) ShareOrderDocument(c *gin.Context) {
	url, err := h.usecase.ShareOrderDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ShareDocumentResponse{URL: url})
}

func servePDF(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStorageNotConfigured):
		return pkg.NewDomainErrorSimple("STORAGE_UNAVAILABLE", "Document storage is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
