package handlers

import (
	"errors"
	"net/http"
	request "sieeg_orders/internal/adapter/http/dto/request"
	response "sieeg_orders/internal/adapter/http/dto/response"
	"sieeg_orders/internal/domain/entities"
	"sieeg_orders/internal/usecase"
	"sieeg_orders/pkg"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

// OrderHandler handles HTTP requests for the service-order lifecycle.
//
// The acting user arrives in X-Actor-Id / X-Actor-Role / X-Actor-Name
// headers set by the authenticating frontend; an absent role defaults to
// admin, matching the single-shop deployment.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func actorFromHeaders(c *gin.Context) entities.Actor {
	rol := entities.Role(strings.TrimSpace(c.GetHeader("X-Actor-Role")))
	if rol != entities.RoleTecnico {
		rol = entities.RoleAdmin
	}
	return entities.Actor{
		UID:    strings.TrimSpace(c.GetHeader("X-Actor-Id")),
		Nombre: strings.TrimSpace(c.GetHeader("X-Actor-Name")),
		Rol:    rol,
	}
}

// CreateOrder godoc
// @Summary Register a new service order
// @Tags orders
// @Accept json
// @Produce json
// @Param order body request.CreateOrderRequest true "Order intake data"
// @Success 201 {object} response.OrderResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /ordenes [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// GetOrder godoc
// @Summary Get a service order by id
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.OrderResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /ordenes/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ListOrders godoc
// @Summary List active service orders
// @Tags orders
// @Produce json
// @Success 200 {array} response.OrderResponse
// @Router /ordenes [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// ListDeletedOrders godoc
// @Summary List soft-deleted service orders
// @Tags orders
// @Produce json
// @Success 200 {array} response.OrderResponse
// @Router /ordenes/eliminadas [get]
func (h *OrderHandler) ListDeletedOrders(c *gin.Context) {
	orders, err := h.usecase.ListDeleted(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// UpdateOrder godoc
// @Summary Patch editable content of an order
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param order body request.UpdateOrderRequest true "Fields to change"
// @Success 200 {object} response.OrderResponse
// @Failure 403 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /ordenes/{id} [patch]
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var payload request.UpdateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.UpdateContent(c.Request.Context(), actorFromHeaders(c), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ChangeStatus godoc
// @Summary Reassign the order among working states
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param status body request.ChangeStatusRequest true "Target state"
// @Success 200 {object} response.OrderResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /ordenes/{id}/estado [patch]
func (h *OrderHandler) ChangeStatus(c *gin.Context) {
	var payload request.ChangeStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.ChangeStatus(c.Request.Context(), actorFromHeaders(c), c.Param("id"),
		entities.OrderStatus(payload.Estado))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// DeliverOrder godoc
// @Summary Hand the equipment back to the customer
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param delivery body request.DeliverOrderRequest true "Receiver and date"
// @Success 200 {object} response.OrderResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /ordenes/{id}/entrega [post]
func (h *OrderHandler) DeliverOrder(c *gin.Context) {
	var payload request.DeliverOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Deliver(c.Request.Context(), actorFromHeaders(c), c.Param("id"),
		payload.QuienRecibe, payload.FechaEntrega)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// CancelOrder godoc
// @Summary Cancel an order with a mandatory reason
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param cancellation body request.CancelOrderRequest true "Cancellation reason"
// @Success 200 {object} response.OrderResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /ordenes/{id}/cancelacion [post]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	var payload request.CancelOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Cancel(c.Request.Context(), actorFromHeaders(c), c.Param("id"), payload.MotivoCancelacion)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// SignOrder godoc
// @Summary Record the technician signature (write-once)
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param signature body request.SignOrderRequest true "Signature image data URL"
// @Success 200 {object} response.OrderResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /ordenes/{id}/firma-tecnico [post]
func (h *OrderHandler) SignOrder(c *gin.Context) {
	var payload request.SignOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.SignAsTechnician(c.Request.Context(), actorFromHeaders(c), c.Param("id"), payload.Firma)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// DeleteOrder godoc
// @Summary Move an order to the recycle bin
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param deletion body request.DeleteOrderRequest false "Deletion reason"
// @Success 200 {object} response.OrderResponse
// @Failure 403 {object} pkg.HTTPError
// @Router /ordenes/{id} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	var payload request.DeleteOrderRequest
	_ = c.ShouldBindJSON(&payload) // body is optional

	order, err := h.usecase.SoftDelete(c.Request.Context(), actorFromHeaders(c), c.Param("id"), payload.Motivo)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// RestoreOrder godoc
// @Summary Restore a soft-deleted order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.OrderResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /ordenes/{id}/restauracion [post]
func (h *OrderHandler) RestoreOrder(c *gin.Context) {
	order, err := h.usecase.Restore(c.Request.Context(), actorFromHeaders(c), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// LookupByFolio godoc
// @Summary Public order status lookup by folio
// @Tags public
// @Produce json
// @Param folio path string true "Order folio"
// @Success 200 {object} usecase.PublicOrderView
// @Failure 404 {object} pkg.HTTPError
// @Router /publico/ordenes/{folio} [get]
func (h *OrderHandler) LookupByFolio(c *gin.Context) {
	view, err := h.usecase.LookupByFolio(c.Request.Context(), c.Param("folio"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, view)
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidFolio),
		errors.Is(err, usecase.ErrMissingClienteNombre),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrMissingReceiver),
		errors.Is(err, usecase.ErrMissingDeliveryDate),
		errors.Is(err, usecase.ErrMissingCancelReason),
		errors.Is(err, usecase.ErrMissingSignature):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Actor may not perform this action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrOrderCancelled):
		return pkg.NewDomainErrorSimple("ORDER_CANCELLED", "Cancelled orders are immutable", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderTerminal):
		return pkg.NewDomainErrorSimple("ORDER_TERMINAL", "Order is in a terminal state", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotReadyForDelivery):
		return pkg.NewDomainErrorSimple("ORDER_NOT_READY", "Order must be Listo before delivery", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadySigned):
		return pkg.NewDomainErrorSimple("ALREADY_SIGNED", "Technician signature already recorded", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotDeleted):
		return pkg.NewDomainErrorSimple("ORDER_NOT_DELETED", "Order is not in the recycle bin", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
