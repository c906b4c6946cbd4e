// Package usecase implements business logic orchestration for employee operations.
package usecase

import (
	"context"

	employeeDomain "github.com/allisson/employees/internal/employee/domain"
)

// EmployeeUseCase defines the interface for employee business operations.
// Every method assumes the request already passed the authentication gate;
// field-level validation happens in the HTTP layer before these are invoked.
type EmployeeUseCase interface {
	// Create stores a new employee, stamping the join date with the current
	// date. Fails with a duplicate-email error when another record already
	// holds the email.
	Create(ctx context.Context, input *employeeDomain.CreateEmployeeInput) (*employeeDomain.Employee, error)

	// Get retrieves a single employee by ID.
	Get(ctx context.Context, id int64) (*employeeDomain.Employee, error)

	// List returns the requested page of employees matching the filter, in
	// store insertion order. An out-of-range page yields an empty slice.
	List(ctx context.Context, filter employeeDomain.Filter, page int) ([]*employeeDomain.Employee, error)

	// Update overwrites an employee's fields. Fails with not-found when the
	// ID does not exist and with a duplicate-email error when the new email
	// belongs to another record.
	Update(ctx context.Context, id int64, input *employeeDomain.UpdateEmployeeInput) (*employeeDomain.Employee, error)

	// Delete removes an employee. Deleting a missing ID is a successful
	// no-op; the operation is idempotent.
	Delete(ctx context.Context, id int64) error
}

// EmployeeRepository defines employee persistence operations consumed by the
// use case. ListAll must return records in stable insertion order, and
// implementations must enforce email uniqueness as the authoritative guard.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *employeeDomain.Employee) error
	GetByID(ctx context.Context, id int64) (*employeeDomain.Employee, error)
	GetByEmail(ctx context.Context, email string) (*employeeDomain.Employee, error)
	ListAll(ctx context.Context) ([]*employeeDomain.Employee, error)
	Update(ctx context.Context, employee *employeeDomain.Employee) error
	Delete(ctx context.Context, id int64) error
}
