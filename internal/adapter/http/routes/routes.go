package routes

import (
	"context"
	"log"
	"os"
	_ "sieeg_orders/docs" // swag generated documentation
	"sieeg_orders/internal/adapter/http/handlers"
	repository2 "sieeg_orders/internal/adapter/persistence/repository"
	"sieeg_orders/internal/events"
	"sieeg_orders/internal/infrastructure/assets"
	"sieeg_orders/internal/infrastructure/catalog"
	"sieeg_orders/internal/infrastructure/database"
	"sieeg_orders/internal/infrastructure/storage"
	"sieeg_orders/internal/usecase"
	"sieeg_orders/internal/usecase/interfaces"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	tecnicoDirectory := repository2.NewTecnicoDynamoRepository(ddb)

	bus := events.NewBus()

	// Optional collaborators degrade gracefully when unconfigured: documents
	// render without a logo, sharing and catalog search report unavailable.
	var fileStorage interfaces.IFileStorage
	if s3Storage, err := storage.NewS3FileStorage(context.Background()); err != nil {
		log.Printf("Document storage not configured: %v", err)
	} else {
		fileStorage = s3Storage
	}

	var logoProvider interfaces.ILogoProvider
	if provider, err := assets.NewHTTPLogoProvider(); err != nil {
		log.Printf("Logo provider not configured: %v", err)
	} else {
		logoProvider = provider
	}

	var productCatalog interfaces.IProductCatalog
	if wooCatalog, err := catalog.NewWooCommerceCatalog(); err != nil {
		log.Printf("Product catalog not configured: %v", err)
	} else {
		productCatalog = wooCatalog
	}

	orderUseCase := usecase.NewOrderUseCase(orderRepo, bus)
	documentUseCase := usecase.NewDocumentUseCase(orderRepo, fileStorage, logoProvider, os.Getenv("PUBLIC_BASE_URL"))

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	documentHandler := handlers.NewDocumentHandler(documentUseCase)
	catalogHandler := handlers.NewCatalogHandler(productCatalog)
	eventsHandler := handlers.NewEventsHandler(bus)
	tecnicoHandler := handlers.NewTecnicoHandler(tecnicoDirectory)

	// Rutas públicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler, documentHandler, catalogHandler, eventsHandler, tecnicoHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
