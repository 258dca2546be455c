package main

import (
	_ "cuidandote_presupuestos/docs"
	"cuidandote_presupuestos/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Cuidándote Presupuestos API
// @version         1.0
// @description     Motor de presupuestos para servicios de asistencia domiciliaria (cuidadoras internas y externas) respaldado por DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   Cuidándote Servicios Auxiliares
// @contact.url    https://cuidandoteserviciosauxiliares.com
// @contact.email  info@cuidandoteserviciosauxiliares.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
