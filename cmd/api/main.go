package main

import (
	_ "sieeg_orders/docs"
	"sieeg_orders/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           SIEEG Service Orders API
// @version         1.0
// @description     Repair-shop service order management (lifecycle, printable documents, public folio lookup) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
