package requests

import (
	"registry-hub/admin-api/internal/domain/employee"
)

// EmployeeInput is the payload for creating or updating an employee. PUT
// overwrites every mutable field, so create and update share one shape.
type EmployeeInput struct {
	Name    string  `json:"name"`
	Address *string `json:"address"`
	Age     *int    `json:"age"`
	Role    string  `json:"role"`
}

// ToFields converts the request to domain fields.
func (r *EmployeeInput) ToFields() employee.Fields {
	return employee.Fields{
		Name:    r.Name,
		Address: r.Address,
		Age:     r.Age,
		Role:    r.Role,
	}
}
