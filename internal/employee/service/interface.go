// Package service provides technical services for employee query resolution.
package service

import (
	employeeDomain "github.com/allisson/employees/internal/employee/domain"
)

// PageSize is the fixed number of records per page.
const PageSize = 10

// QueryResolver translates filter and pagination parameters into a bounded,
// deterministic view over the employee collection.
type QueryResolver interface {
	// Resolve filters the records and returns the requested page.
	// Filtering is exact-match and case-sensitive; the input order is
	// preserved. Page numbers below 1 resolve to page 1 and a window past
	// the end of the filtered sequence yields an empty slice, not an error.
	Resolve(records []*employeeDomain.Employee, filter employeeDomain.Filter, page int) []*employeeDomain.Employee
}
