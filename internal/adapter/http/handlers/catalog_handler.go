package handlers

import (
	"log"
	"net/http"
	response "sieeg_orders/internal/adapter/http/dto/response"
	"sieeg_orders/internal/usecase/interfaces"
	"sieeg_orders/pkg"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	errMissingSearchQuery   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing search query", http.StatusBadRequest)
	errCatalogNotConfigured = pkg.NewDomainErrorSimple("CATALOG_UNAVAILABLE", "Product catalog is not configured", http.StatusServiceUnavailable)
	errCatalogSearchFailed  = pkg.NewDomainErrorSimple("CATALOG_ERROR", "Product catalog search failed", http.StatusBadGateway)
)

// CatalogHandler proxies part searches to the store catalog for the
// parts-used autocomplete.

type CatalogHandler struct {
	catalog interfaces.IProductCatalog
}

func NewCatalogHandler(catalog interfaces.IProductCatalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// SearchProducts godoc
// @Summary Search the store catalog for parts
// @Tags catalog
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {array} response.ProductResponse
// @Failure 503 {object} pkg.HTTPError
// @Router /catalogo/productos [get]
func (h *CatalogHandler) SearchProducts(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(errMissingSearchQuery.HTTPStatus, errMissingSearchQuery.ToHTTPError())
		return
	}
	if h.catalog == nil {
		c.JSON(errCatalogNotConfigured.HTTPStatus, errCatalogNotConfigured.ToHTTPError())
		return
	}

	products, err := h.catalog.Search(c.Request.Context(), query)
	if err != nil {
		log.Printf("[catalog][handler] search failed query=%q err=%v", query, err)
		c.JSON(errCatalogSearchFailed.HTTPStatus, errCatalogSearchFailed.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(products))
}
