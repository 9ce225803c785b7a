package main

import (
	"github.com/RouckBlankOo/AdminDashboardImmo/config"
	"github.com/RouckBlankOo/AdminDashboardImmo/internal/app"
)

func main() {
	config := config.CreateNewConfig()

	server := app.App{
		Config: config,
	}

	server.Start()
}
