// Package dto provides data transfer objects for the employee HTTP layer.
package dto

// EmployeeResponse represents the API response for an employee.
// DateJoined is rendered as an ISO 8601 date (YYYY-MM-DD).
type EmployeeResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Role       string `json:"role"`
	DateJoined string `json:"date_joined"`
}
