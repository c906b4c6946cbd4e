package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/employees/internal/database"
	employeeDomain "github.com/allisson/employees/internal/employee/domain"
	apperrors "github.com/allisson/employees/internal/errors"
)

// MySQLEmployeeRepository handles employee persistence for MySQL.
type MySQLEmployeeRepository struct {
	db *sql.DB
}

// NewMySQLEmployeeRepository creates a new MySQLEmployeeRepository.
func NewMySQLEmployeeRepository(db *sql.DB) *MySQLEmployeeRepository {
	return &MySQLEmployeeRepository{db: db}
}

// Create inserts a new employee and assigns the store-generated ID.
func (r *MySQLEmployeeRepository) Create(ctx context.Context, employee *employeeDomain.Employee) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO employees (name, email, department, role, date_joined)
			  VALUES (?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(
		ctx,
		query,
		employee.Name,
		employee.Email,
		employee.Department,
		employee.Role,
		employee.DateJoined,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return employeeDomain.ErrEmailExists
		}
		return apperrors.Wrap(err, "failed to create employee")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get employee id")
	}
	employee.ID = id

	return nil
}

// GetByID retrieves an employee by ID.
func (r *MySQLEmployeeRepository) GetByID(ctx context.Context, id int64) (*employeeDomain.Employee, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, email, department, role, date_joined
			  FROM employees WHERE id = ?`

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
func (r *MySQLEmployeeRepository) GetByEmail(ctx context.Context, email string) (*employeeDomain.Employee, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, email, department, role, date_joined
			  FROM employees WHERE email = ?`

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
func (r *MySQLEmployeeRepository) ListAll(ctx context.Context) ([]*employeeDomain.Employee, error) {
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
// Requires clientFoundRows=true in the DSN so RowsAffected reports matched
// rows; otherwise an update with unchanged values reads as a missing row.
func (r *MySQLEmployeeRepository) Update(ctx context.Context, employee *employeeDomain.Employee) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE employees
			  SET name = ?,
			      email = ?,
			      department = ?,
			      role = ?
			  WHERE id = ?`

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
func (r *MySQLEmployeeRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM employees WHERE id = ?`

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
