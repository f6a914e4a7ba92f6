package api

import (
	"github.com/gin-gonic/gin"

	"registry-hub/admin-api/internal/interfaces/httpserver/handlers"
)

// Routes encapsulates API route registration.
type Routes struct {
	handlers *handlers.Provider
}

func NewRoutes(provider *handlers.Provider) *Routes {
	return &Routes{handlers: provider}
}

// Register attaches all resource routes under the /api prefix.
func (r *Routes) Register(router gin.IRouter) {
	group := router.Group("/api")

	empleados := group.Group("/empleados")
	empleados.GET("", r.handlers.Employee.List)
	empleados.GET("/:id", r.handlers.Employee.Get)
	empleados.POST("", r.handlers.Employee.Create)
	empleados.PUT("/:id", r.handlers.Employee.Update)
	empleados.DELETE("/:id", r.handlers.Employee.Delete)

	media := group.Group("/media")
	media.GET("", r.handlers.Media.List)
	media.GET("/:id", r.handlers.Media.Get)
	media.POST("", r.handlers.Media.Create)
	media.PUT("/:id", r.handlers.Media.Update)
	media.DELETE("/:id", r.handlers.Media.Delete)
}
