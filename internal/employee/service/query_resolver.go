package service

import (
	employeeDomain "github.com/allisson/employees/internal/employee/domain"
)

// queryResolver implements QueryResolver with in-memory filtering and windowing.
type queryResolver struct{}

// NewQueryResolver creates a new QueryResolver instance.
func NewQueryResolver() QueryResolver {
	return &queryResolver{}
}

// Resolve applies the filter and returns the half-open window
// [(page-1)*PageSize, (page-1)*PageSize+PageSize) over the filtered sequence.
func (q *queryResolver) Resolve(
	records []*employeeDomain.Employee,
	filter employeeDomain.Filter,
	page int,
) []*employeeDomain.Employee {
	filtered := make([]*employeeDomain.Employee, 0, len(records))
	for _, record := range records {
		if !matches(record, filter) {
			continue
		}
		filtered = append(filtered, record)
	}

	if page < 1 {
		page = 1
	}

	start := (page - 1) * PageSize
	if start >= len(filtered) {
		return []*employeeDomain.Employee{}
	}

	end := start + PageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	return filtered[start:end]
}

// matches reports whether the record satisfies every present filter field.
// Values are compared verbatim: no trimming, no case folding.
func matches(record *employeeDomain.Employee, filter employeeDomain.Filter) bool {
	if filter.Department != "" && record.Department != filter.Department {
		return false
	}
	if filter.Role != "" && record.Role != filter.Role {
		return false
	}
	return true
}
