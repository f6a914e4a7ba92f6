package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"registry-hub/admin-api/internal/domain/employee"
	"registry-hub/admin-api/internal/domain/media"
	"registry-hub/admin-api/internal/interfaces/httpserver/responses"
	"registry-hub/admin-api/internal/utils/platformerrors"
)

// Provider wires HTTP handlers.
type Provider struct {
	Employee *EmployeeHandler
	Media    *MediaHandler
}

func NewProvider(employeeService employee.Service, mediaService media.Service, log zerolog.Logger) *Provider {
	return &Provider{
		Employee: NewEmployeeHandler(employeeService, log),
		Media:    NewMediaHandler(mediaService, log),
	}
}

// parseID reads the :id path parameter. A non-integer id is rejected at the
// route layer with 400; any integer, including zero and negatives, goes
// through to the store so an absent id always surfaces as 404.
func parseID(c *gin.Context, code string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation,
			"invalid id", "id must be an integer", code)
		return 0, false
	}
	return id, true
}
