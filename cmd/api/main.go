package main

import (
	_ "funeral_quote/docs"
	"funeral_quote/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Funeral Quote API
// @version         1.0
// @description     Funeral and cremation quotation configurator: plan, options and attendee tier pricing, saved estimates and print hand-off.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
