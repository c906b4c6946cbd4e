package usecase

import (
	"context"
	"time"

	employeeDomain "github.com/allisson/employees/internal/employee/domain"
	"github.com/allisson/employees/internal/metrics"
)

// employeeUseCaseWithMetrics decorates EmployeeUseCase with metrics instrumentation.
type employeeUseCaseWithMetrics struct {
	next    EmployeeUseCase
	metrics metrics.BusinessMetrics
}

// NewEmployeeUseCaseWithMetrics wraps an EmployeeUseCase with metrics recording.
func NewEmployeeUseCaseWithMetrics(useCase EmployeeUseCase, m metrics.BusinessMetrics) EmployeeUseCase {
	return &employeeUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// record tracks operation count and duration with a success/error status.
func (u *employeeUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "employees", operation, status)
	u.metrics.RecordDuration(ctx, "employees", operation, time.Since(start), status)
}

// Create records metrics for employee creation.
func (u *employeeUseCaseWithMetrics) Create(
	ctx context.Context,
	input *employeeDomain.CreateEmployeeInput,
) (*employeeDomain.Employee, error) {
	start := time.Now()
	employee, err := u.next.Create(ctx, input)
	u.record(ctx, "employee_create", start, err)
	return employee, err
}

// Get records metrics for single-employee retrieval.
func (u *employeeUseCaseWithMetrics) Get(ctx context.Context, id int64) (*employeeDomain.Employee, error) {
	start := time.Now()
	employee, err := u.next.Get(ctx, id)
	u.record(ctx, "employee_get", start, err)
	return employee, err
}

// List records metrics for employee listing.
func (u *employeeUseCaseWithMetrics) List(
	ctx context.Context,
	filter employeeDomain.Filter,
	page int,
) ([]*employeeDomain.Employee, error) {
	start := time.Now()
	employees, err := u.next.List(ctx, filter, page)
	u.record(ctx, "employee_list", start, err)
	return employees, err
}

// Update records metrics for employee updates.
func (u *employeeUseCaseWithMetrics) Update(
	ctx context.Context,
	id int64,
	input *employeeDomain.UpdateEmployeeInput,
) (*employeeDomain.Employee, error) {
	start := time.Now()
	employee, err := u.next.Update(ctx, id, input)
	u.record(ctx, "employee_update", start, err)
	return employee, err
}

// Delete records metrics for employee deletion.
func (u *employeeUseCaseWithMetrics) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	err := u.next.Delete(ctx, id)
	u.record(ctx, "employee_delete", start, err)
	return err
}
