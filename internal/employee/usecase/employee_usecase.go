package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/allisson/employees/internal/database"
	employeeDomain "github.com/allisson/employees/internal/employee/domain"
	employeeService "github.com/allisson/employees/internal/employee/service"
)

// employeeUseCase implements EmployeeUseCase.
type employeeUseCase struct {
	txManager     database.TxManager
	employeeRepo  EmployeeRepository
	queryResolver employeeService.QueryResolver
}

// NewEmployeeUseCase creates a new EmployeeUseCase with the provided dependencies.
func NewEmployeeUseCase(
	txManager database.TxManager,
	employeeRepo EmployeeRepository,
	queryResolver employeeService.QueryResolver,
) EmployeeUseCase {
	return &employeeUseCase{
		txManager:     txManager,
		employeeRepo:  employeeRepo,
		queryResolver: queryResolver,
	}
}

// Create stores a new employee record.
//
// The duplicate-email pre-check narrows the window for concurrent creates but
// is not the final word: the repository's unique constraint is the
// authoritative guarantee, and its violation surfaces as the same
// duplicate-email error.
func (u *employeeUseCase) Create(
	ctx context.Context,
	input *employeeDomain.CreateEmployeeInput,
) (*employeeDomain.Employee, error) {
	employee := &employeeDomain.Employee{
		Name:       input.Name,
		Email:      input.Email,
		Department: input.Department,
		Role:       input.Role,
		DateJoined: time.Now().UTC().Truncate(24 * time.Hour),
	}

	err := u.txManager.WithTx(ctx, func(ctx context.Context) error {
		_, err := u.employeeRepo.GetByEmail(ctx, input.Email)
		if err == nil {
			return employeeDomain.ErrEmailExists
		}
		if !errors.Is(err, employeeDomain.ErrEmployeeNotFound) {
			return err
		}

		return u.employeeRepo.Create(ctx, employee)
	})
	if err != nil {
		return nil, err
	}

	return employee, nil
}

// Get retrieves an employee by ID.
func (u *employeeUseCase) Get(ctx context.Context, id int64) (*employeeDomain.Employee, error) {
	return u.employeeRepo.GetByID(ctx, id)
}

// List loads the full collection and resolves the filter and page over it.
func (u *employeeUseCase) List(
	ctx context.Context,
	filter employeeDomain.Filter,
	page int,
) ([]*employeeDomain.Employee, error) {
	employees, err := u.employeeRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return u.queryResolver.Resolve(employees, filter, page), nil
}

// Update overwrites the employee's fields, keeping ID and DateJoined.
func (u *employeeUseCase) Update(
	ctx context.Context,
	id int64,
	input *employeeDomain.UpdateEmployeeInput,
) (*employeeDomain.Employee, error) {
	var updated *employeeDomain.Employee

	err := u.txManager.WithTx(ctx, func(ctx context.Context) error {
		current, err := u.employeeRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		// Only check for conflicts when the email actually changes.
		if input.Email != current.Email {
			_, err := u.employeeRepo.GetByEmail(ctx, input.Email)
			if err == nil {
				return employeeDomain.ErrEmailExists
			}
			if !errors.Is(err, employeeDomain.ErrEmployeeNotFound) {
				return err
			}
		}

		current.Name = input.Name
		current.Email = input.Email
		current.Department = input.Department
		current.Role = input.Role

		if err := u.employeeRepo.Update(ctx, current); err != nil {
			return err
		}

		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes an employee. A missing ID is reported by the repository but
// swallowed here: deleting twice succeeds both times.
func (u *employeeUseCase) Delete(ctx context.Context, id int64) error {
	err := u.employeeRepo.Delete(ctx, id)
	if err != nil && !errors.Is(err, employeeDomain.ErrEmployeeNotFound) {
		return err
	}
	return nil
}
