package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	employeeDomain "github.com/allisson/employees/internal/employee/domain"
)

func newMySQLMockDB(t *testing.T) (*MySQLEmployeeRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewMySQLEmployeeRepository(db), mock
}

func TestMySQLEmployeeRepository_Create(t *testing.T) {
	repo, mock := newMySQLMockDB(t)
	ctx := context.Background()

	employee := newTestEmployee("john@example.com")

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO employees")).
		WithArgs(employee.Name, employee.Email, employee.Department, employee.Role, employee.DateJoined).
		WillReturnResult(sqlmock.NewResult(7, 1))

	err := repo.Create(ctx, employee)

	require.NoError(t, err)
	assert.Equal(t, int64(7), employee.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLEmployeeRepository_Create_DuplicateEmail(t *testing.T) {
	repo, mock := newMySQLMockDB(t)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO employees")).
		WillReturnError(errors.New("Error 1062: Duplicate entry 'john@example.com' for key 'employees_email_key'"))

	err := repo.Create(ctx, newTestEmployee("john@example.com"))

	assert.ErrorIs(t, err, employeeDomain.ErrEmailExists)
}

func TestMySQLEmployeeRepository_GetByID(t *testing.T) {
	repo, mock := newMySQLMockDB(t)
	ctx := context.Background()

	joined := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, department, role, date_joined")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(employeeColumns()).
			AddRow(int64(1), "John Doe", "john@example.com", "Engineering", "Developer", joined))

	employee, err := repo.GetByID(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, "John Doe", employee.Name)
}

func TestMySQLEmployeeRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMySQLMockDB(t)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, department, role, date_joined")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(employeeColumns()))

	employee, err := repo.GetByID(ctx, 42)

	assert.ErrorIs(t, err, employeeDomain.ErrEmployeeNotFound)
	assert.Nil(t, employee)
}

func TestMySQLEmployeeRepository_ListAll(t *testing.T) {
	repo, mock := newMySQLMockDB(t)
	ctx := context.Background()

	joined := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY id ASC")).
		WillReturnRows(sqlmock.NewRows(employeeColumns()).
			AddRow(int64(1), "John Doe", "john@example.com", "Engineering", "Developer", joined))

	employees, err := repo.ListAll(ctx)

	require.NoError(t, err)
	require.Len(t, employees, 1)
}

func TestMySQLEmployeeRepository_Update_NotFound(t *testing.T) {
	repo, mock := newMySQLMockDB(t)
	ctx := context.Background()

	employee := newTestEmployee("john@example.com")
	employee.ID = 42

	mock.ExpectExec(regexp.QuoteMeta("UPDATE employees")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(ctx, employee)

	assert.ErrorIs(t, err, employeeDomain.ErrEmployeeNotFound)
}

func TestMySQLEmployeeRepository_Delete(t *testing.T) {
	repo, mock := newMySQLMockDB(t)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM employees")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(ctx, 1))
}

func TestMySQLEmployeeRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newMySQLMockDB(t)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM employees")).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(ctx, 42), employeeDomain.ErrEmployeeNotFound)
}
