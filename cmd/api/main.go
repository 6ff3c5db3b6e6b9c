package main

import (
	_ "arborgold/docs"
	"arborgold/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           ArborGold API
// @version         1.0
// @description     Operations backend for a tree care business: leads, estimates, jobs, invoicing and payments.

// @contact.name   API Support
// @contact.email  support@arborgold.example

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
