package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/hradmin/employee-admin/handlers"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, emp *handlers.EmployeeHandler) {
	e.GET("/healthz", handlers.Health)

	e.POST("/employees", emp.Create)
	e.GET("/employees/:id", emp.Get)
	e.PUT("/employees/:id", emp.Update)
	// POST alias for clients that cannot issue PUT
	e.POST("/employees/:id", emp.Update)
}
