// Package repository provides data persistence implementations for employee records.
//
// PostgreSQL and MySQL implementations share transaction support via
// database.GetTx(). Both enforce email uniqueness through a database-level
// unique constraint, which is the authoritative guard against concurrent
// duplicate writes; the use case's pre-check is only an optimization.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/allisson/employees/internal/database"
	employeeDomain "github.com/allisson/employees/internal/employee/domain"
	apperrors "github.com/allisson/employees/internal/errors"
)

// PostgreSQLEmployeeRepository handles employee persistence for PostgreSQL.
type PostgreSQLEmployeeRepository struct {
	db *sql.DB
}

// NewPostgreSQLEmployeeRepository creates a new PostgreSQLEmployeeRepository.
func NewPostgreSQLEmployeeRepository(db *sql.DB) *PostgreSQLEmployeeRepository {
	return &PostgreSQLEmployeeRepository{db: db}
}

// Create inserts a new employee and assigns the store-generated ID.
func (r *PostgreSQLEmployeeRepository) Create(ctx context.Context, employee *employeeDomain.Employee) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO employees (name, email, department, role, date_joined)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`

	err := querier.QueryRowContext(
		ctx,
		query,
		employee.Name,
		employee.Email,
		employee.Department,
		employee.Role,
		employee.DateJoined,
	).Scan(&employee.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return employeeDomain.ErrEmailExists
		}
		return apperrors.Wrap(err, "failed to create employee")
	}
	return nil
}

// GetByID retrieves an employee by ID.
func (r *PostgreSQLEmployeeRepository) GetByID(ctx context.Context, id int64) (*employeeDomain.Employee, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, email, department, role, date_joined
			  FROM employees WHERE id = $1`

	var employee employeeDomain.Employee
	err := querier.QueryRowContext(ctx, query, id).Scan(
		&employee.ID,
		&employee.Name,
		&employee.Email,
		&employee.Department,
		&employee.Role,
		&employee.DateJoined,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, employeeDomain.ErrEmployeeNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get employee by id")
	}

	return &employee, nil
}

// GetByEmail retrieves an employee by email.
func (r *PostgreSQLEmployeeRepository) GetByEmail(ctx context.Context, email string) (*employeeDomain.Employee, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, email, department, role, date_joined
			  FROM employees WHERE email = $1`

	var employee employeeDomain.Employee
	err := querier.QueryRowContext(ctx, query, email).Scan(
		&employee.ID,
		&employee.Name,
		&employee.Email,
		&employee.Department,
		&employee.Role,
		&employee.DateJoined,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, employeeDomain.ErrEmployeeNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get employee by email")
	}

	return &employee, nil
}

// ListAll retrieves every employee in stable insertion order.
func (r *PostgreSQLEmployeeRepository) ListAll(ctx context.Context) ([]*employeeDomain.Employee, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, email, department, role, date_joined
			  FROM employees ORDER BY id ASC`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list employees")
	}
	defer rows.Close()

	employees := []*employeeDomain.Employee{}
	for rows.Next() {
		var employee employeeDomain.Employee
		if err := rows.Scan(
			&employee.ID,
			&employee.Name,
			&employee.Email,
			&employee.Department,
			&employee.Role,
			&employee.DateJoined,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan employee")
		}
		employees = append(employees, &employee)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate employees")
	}

	return employees, nil
}

// Update overwrites an existing employee's mutable fields.
// DateJoined is immutable and never touched.
func (r *PostgreSQLEmployeeRepository) Update(ctx context.Context, employee *employeeDomain.Employee) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE employees
			  SET name = $1,
			      email = $2,
			      department = $3,
			      role = $4
			  WHERE id = $5`

	result, err := querier.ExecContext(
		ctx,
		query,
		employee.Name,
		employee.Email,
		employee.Department,
		employee.Role,
		employee.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return employeeDomain.ErrEmailExists
		}
		return apperrors.Wrap(err, "failed to update employee")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check updated rows")
	}
	if affected == 0 {
		return employeeDomain.ErrEmployeeNotFound
	}

	return nil
}

// Delete removes an employee by ID.
// Returns ErrEmployeeNotFound when no row matches; the use case decides
// whether that counts as a failure.
func (r *PostgreSQLEmployeeRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM employees WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete employee")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check deleted rows")
	}
	if affected == 0 {
		return employeeDomain.ErrEmployeeNotFound
	}

	return nil
}

// isUniqueViolation checks if the error is a unique constraint violation.
// Works for both PostgreSQL ("duplicate key value violates unique constraint")
// and MySQL ("Error 1062: Duplicate entry").
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "duplicate entry")
}
