package routes

import (
	"sieeg_orders/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders   = "/ordenes"
	PathPublic   = "/publico"
	PathCatalog  = "/catalogo"
	PathEvents   = "/eventos"
	PathTecnicos = "/tecnicos"
)

func addOrderRoutes(
	rg *gin.RouterGroup,
	orderHandler *handlers.OrderHandler,
	documentHandler *handlers.DocumentHandler,
	catalogHandler *handlers.CatalogHandler,
	eventsHandler *handlers.EventsHandler,
	tecnicoHandler *handlers.TecnicoHandler,
) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/eliminadas", orderHandler.ListDeletedOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id", orderHandler.UpdateOrder)
		orders.DELETE("/:id", orderHandler.DeleteOrder)
		orders.PATCH("/:id/estado", orderHandler.ChangeStatus)
		orders.POST("/:id/entrega", orderHandler.DeliverOrder)
		orders.POST("/:id/cancelacion", orderHandler.CancelOrder)
		orders.POST("/:id/firma-tecnico", orderHandler.SignOrder)
		orders.POST("/:id/restauracion", orderHandler.RestoreOrder)

		orders.GET("/:id/documento", documentHandler.GetOrderDocument)
		orders.GET("/:id/ticket", documentHandler.GetTicketDocument)
		orders.POST("/:id/documento/compartir", documentHandler.ShareOrderDocument)
	}

	public := rg.Group(PathPublic)
	{
		public.GET("/ordenes/:folio", orderHandler.LookupByFolio)
	}

	store := rg.Group(PathCatalog)
	{
		store.GET("/productos", catalogHandler.SearchProducts)
	}

	live := rg.Group(PathEvents)
	{
		live.GET("/ordenes", eventsHandler.StreamChanges)
	}

	staff := rg.Group(PathTecnicos)
	{
		staff.GET("", tecnicoHandler.ListTecnicos)
	}
}
