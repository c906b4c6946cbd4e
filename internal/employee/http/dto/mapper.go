// Package dto provides data transfer objects for the employee HTTP layer.
package dto

import (
	"time"

	employeeDomain "github.com/allisson/employees/internal/employee/domain"
)

// ToCreateEmployeeInput converts an EmployeeRequest to a use case create input.
func ToCreateEmployeeInput(req EmployeeRequest) *employeeDomain.CreateEmployeeInput {
	return &employeeDomain.CreateEmployeeInput{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		Role:       req.Role,
	}
}

// ToUpdateEmployeeInput converts an EmployeeRequest to a use case update input.
func ToUpdateEmployeeInput(req EmployeeRequest) *employeeDomain.UpdateEmployeeInput {
	return &employeeDomain.UpdateEmployeeInput{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		Role:       req.Role,
	}
}

// ToEmployeeResponse converts a domain Employee to an EmployeeResponse DTO.
// This enforces the boundary between internal domain models and external API contracts.
func ToEmployeeResponse(employee *employeeDomain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         employee.ID,
		Name:       employee.Name,
		Email:      employee.Email,
		Department: employee.Department,
		Role:       employee.Role,
		DateJoined: employee.DateJoined.Format(time.DateOnly),
	}
}

// ToEmployeeListResponse converts a slice of domain Employees to response DTOs.
func ToEmployeeListResponse(employees []*employeeDomain.Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, 0, len(employees))
	for _, employee := range employees {
		responses = append(responses, ToEmployeeResponse(employee))
	}
	return responses
}
