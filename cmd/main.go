package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/hradmin/employee-admin/config"
	"github.com/hradmin/employee-admin/database"
	"github.com/hradmin/employee-admin/handlers"
	"github.com/hradmin/employee-admin/routes"
	"github.com/hradmin/employee-admin/storage"
	"github.com/hradmin/employee-admin/store"
)

func main() {
	cfg := config.Load()

	// fail fast when the DB is not up
	database.Connect(cfg)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	// uploaded profile images are served relative to this mount
	e.Static("/uploads", cfg.UploadDir)

	emp := handlers.NewEmployeeHandler(
		store.NewGormEmployeeStore(database.DB),
		storage.NewDiskStore(cfg.UploadDir),
	)
	routes.Register(e, emp)

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
