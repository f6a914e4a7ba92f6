package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"registry-hub/admin-api/internal/domain/employee"
	"registry-hub/admin-api/internal/interfaces/httpserver/requests"
	"registry-hub/admin-api/internal/interfaces/httpserver/responses"
	"registry-hub/admin-api/internal/utils/platformerrors"
)

// EmployeeHandler exposes the employee CRUD endpoints.
type EmployeeHandler struct {
	service employee.Service
	log     zerolog.Logger
}

func NewEmployeeHandler(service employee.Service, log zerolog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		service: service,
		log:     log.With().Str("component", "employee-handler").Logger(),
	}
}

// List returns every employee as a JSON array.
func (h *EmployeeHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		responses.HandleError(c, h.log, err, "failed to list employees")
		return
	}
	c.JSON(http.StatusOK, items)
}

// Get returns a single employee by id.
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "employee-route-id-001")
	if !ok {
		return
	}

	item, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		responses.HandleError(c, h.log, err, "failed to get employee")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create inserts a new employee and returns it with the assigned id.
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req requests.EmployeeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation,
			"invalid request body", "body must be a JSON employee object", "employee-route-body-001")
		return
	}

	item, err := h.service.Create(c.Request.Context(), req.ToFields())
	if err != nil {
		responses.HandleError(c, h.log, err, "failed to create employee")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update overwrites every mutable field of an existing employee.
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "employee-route-id-002")
	if !ok {
		return
	}

	var req requests.EmployeeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation,
			"invalid request body", "body must be a JSON employee object", "employee-route-body-002")
		return
	}

	item, err := h.service.Update(c.Request.Context(), id, req.ToFields())
	if err != nil {
		responses.HandleError(c, h.log, err, "failed to update employee")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete removes an employee.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "employee-route-id-003")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		responses.HandleError(c, h.log, err, "failed to delete employee")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
