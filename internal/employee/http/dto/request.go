// Package dto provides data transfer objects for the employee HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	appValidation "github.com/allisson/employees/internal/validation"
)

// EmployeeRequest represents the API request body for creating or updating an
// employee. Department and role are optional; name and email are required.
type EmployeeRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Role       string `json:"role"`
}

// Validate validates the EmployeeRequest using the jellydator/validation library.
// Validation happens here, before the use case is invoked, so malformed input
// never reaches business logic.
func (r *EmployeeRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&r.Department,
			validation.Length(0, 255).Error("department must be at most 255 characters"),
		),
		validation.Field(&r.Role,
			validation.Length(0, 255).Error("role must be at most 255 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}
