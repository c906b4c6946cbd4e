package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	employeeDomain "github.com/allisson/employees/internal/employee/domain"
)

// makeEmployees builds n employees with sequential IDs and round-robin
// departments and roles.
func makeEmployees(n int) []*employeeDomain.Employee {
	departments := []string{"Engineering", "Sales", "HR"}
	roles := []string{"Manager", "Analyst"}

	employees := make([]*employeeDomain.Employee, 0, n)
	for i := 0; i < n; i++ {
		employees = append(employees, &employeeDomain.Employee{
			ID:         int64(i + 1),
			Name:       fmt.Sprintf("Employee %d", i+1),
			Email:      fmt.Sprintf("employee%d@example.com", i+1),
			Department: departments[i%len(departments)],
			Role:       roles[i%len(roles)],
		})
	}
	return employees
}

func TestQueryResolver_FirstPage(t *testing.T) {
	resolver := NewQueryResolver()
	employees := makeEmployees(25)

	result := resolver.Resolve(employees, employeeDomain.Filter{}, 1)

	require.Len(t, result, PageSize)
	assert.Equal(t, int64(1), result[0].ID)
	assert.Equal(t, int64(10), result[9].ID)
}

func TestQueryResolver_MiddlePage(t *testing.T) {
	resolver := NewQueryResolver()
	employees := makeEmployees(25)

	result := resolver.Resolve(employees, employeeDomain.Filter{}, 2)

	require.Len(t, result, PageSize)
	assert.Equal(t, int64(11), result[0].ID)
	assert.Equal(t, int64(20), result[9].ID)
}

func TestQueryResolver_PartialLastPage(t *testing.T) {
	resolver := NewQueryResolver()
	employees := makeEmployees(25)

	result := resolver.Resolve(employees, employeeDomain.Filter{}, 3)

	require.Len(t, result, 5)
	assert.Equal(t, int64(21), result[0].ID)
	assert.Equal(t, int64(25), result[4].ID)
}

func TestQueryResolver_PageBeyondEnd(t *testing.T) {
	resolver := NewQueryResolver()
	employees := makeEmployees(25)

	result := resolver.Resolve(employees, employeeDomain.Filter{}, 4)

	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestQueryResolver_ExactPageBoundary(t *testing.T) {
	resolver := NewQueryResolver()
	employees := makeEmployees(20)

	result := resolver.Resolve(employees, employeeDomain.Filter{}, 2)
	require.Len(t, result, PageSize)

	result = resolver.Resolve(employees, employeeDomain.Filter{}, 3)
	assert.Empty(t, result)
}

func TestQueryResolver_NonPositivePageFallsBackToFirst(t *testing.T) {
	resolver := NewQueryResolver()
	employees := makeEmployees(15)

	for _, page := range []int{0, -1, -100} {
		result := resolver.Resolve(employees, employeeDomain.Filter{}, page)
		require.Len(t, result, PageSize)
		assert.Equal(t, int64(1), result[0].ID)
	}
}

func TestQueryResolver_EmptyInput(t *testing.T) {
	resolver := NewQueryResolver()

	result := resolver.Resolve(nil, employeeDomain.Filter{}, 1)

	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestQueryResolver_FilterByDepartment(t *testing.T) {
	resolver := NewQueryResolver()
	employees := makeEmployees(9)

	result := resolver.Resolve(employees, employeeDomain.Filter{Department: "Sales"}, 1)

	require.Len(t, result, 3)
	for _, employee := range result {
		assert.Equal(t, "Sales", employee.Department)
	}
}

func TestQueryResolver_FilterByRole(t *testing.T) {
	resolver := NewQueryResolver()
	employees := makeEmployees(10)

	result := resolver.Resolve(employees, employeeDomain.Filter{Role: "Analyst"}, 1)

	require.Len(t, result, 5)
	for _, employee := range result {
		assert.Equal(t, "Analyst", employee.Role)
	}
}

func TestQueryResolver_FilterByDepartmentAndRole(t *testing.T) {
	resolver := NewQueryResolver()
	employees := makeEmployees(12)

	result := resolver.Resolve(
		employees,
		employeeDomain.Filter{Department: "Engineering", Role: "Manager"},
		1,
	)

	require.NotEmpty(t, result)
	for _, employee := range result {
		assert.Equal(t, "Engineering", employee.Department)
		assert.Equal(t, "Manager", employee.Role)
	}
}

func TestQueryResolver_FilterIsCaseSensitive(t *testing.T) {
	resolver := NewQueryResolver()
	employees := makeEmployees(9)

	result := resolver.Resolve(employees, employeeDomain.Filter{Department: "sales"}, 1)

	assert.Empty(t, result)
}

func TestQueryResolver_FilterDoesNotTrim(t *testing.T) {
	resolver := NewQueryResolver()
	employees := makeEmployees(9)

	result := resolver.Resolve(employees, employeeDomain.Filter{Department: " Sales"}, 1)

	assert.Empty(t, result)
}

func TestQueryResolver_FilterNoMatches(t *testing.T) {
	resolver := NewQueryResolver()
	employees := makeEmployees(9)

	result := resolver.Resolve(employees, employeeDomain.Filter{Department: "Legal"}, 1)

	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestQueryResolver_PreservesInputOrder(t *testing.T) {
	resolver := NewQueryResolver()
	employees := makeEmployees(9)

	result := resolver.Resolve(employees, employeeDomain.Filter{Department: "Engineering"}, 1)

	require.Len(t, result, 3)
	assert.Equal(t, int64(1), result[0].ID)
	assert.Equal(t, int64(4), result[1].ID)
	assert.Equal(t, int64(7), result[2].ID)
}

func TestQueryResolver_PaginationAppliesAfterFilter(t *testing.T) {
	resolver := NewQueryResolver()
	employees := makeEmployees(36)

	// Department repeats every 3 records: 12 matches, so page 2 holds 2 of them
	result := resolver.Resolve(employees, employeeDomain.Filter{Department: "Engineering"}, 2)

	require.Len(t, result, 2)
	assert.Equal(t, int64(31), result[0].ID)
	assert.Equal(t, int64(34), result[1].ID)
}
