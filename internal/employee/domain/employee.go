// Package domain defines the core employee domain entities and types.
package domain

import (
	"time"

	"github.com/allisson/employees/internal/errors"
)

// Employee represents an employee record. The ID is assigned by the store and
// immutable; DateJoined is stamped at creation and never updated afterwards.
type Employee struct {
	ID         int64
	Name       string
	Email      string
	Department string
	Role       string
	DateJoined time.Time
}

// Filter holds optional exact-match constraints applied when listing
// employees. An empty string means the field is unconstrained; when both
// fields are set, records must match both.
type Filter struct {
	Department string
	Role       string
}

// CreateEmployeeInput contains the fields for creating an employee.
type CreateEmployeeInput struct {
	Name       string
	Email      string
	Department string
	Role       string
}

// UpdateEmployeeInput contains the fields for updating an employee.
// All fields are overwritten; DateJoined is not part of the input.
type UpdateEmployeeInput struct {
	Name       string
	Email      string
	Department string
	Role       string
}

// Domain-specific errors for employee operations.
var (
	// ErrEmployeeNotFound indicates the requested employee does not exist.
	ErrEmployeeNotFound = errors.Wrap(errors.ErrNotFound, "employee not found")

	// ErrEmailExists indicates another employee already holds the email address.
	ErrEmailExists = errors.Wrap(errors.ErrConflict, "email exists")
)
