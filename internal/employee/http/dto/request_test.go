package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/employees/internal/errors"
)

func validRequest() EmployeeRequest {
	return EmployeeRequest{
		Name:       "John Doe",
		Email:      "john@example.com",
		Department: "Engineering",
		Role:       "Developer",
	}
}

func TestEmployeeRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *EmployeeRequest)
		wantErr bool
	}{
		{
			name:    "valid request",
			mutate:  func(r *EmployeeRequest) {},
			wantErr: false,
		},
		{
			name: "empty department and role are allowed",
			mutate: func(r *EmployeeRequest) {
				r.Department = ""
				r.Role = ""
			},
			wantErr: false,
		},
		{
			name:    "missing name",
			mutate:  func(r *EmployeeRequest) { r.Name = "" },
			wantErr: true,
		},
		{
			name:    "blank name",
			mutate:  func(r *EmployeeRequest) { r.Name = "   " },
			wantErr: true,
		},
		{
			name:    "name too long",
			mutate:  func(r *EmployeeRequest) { r.Name = strings.Repeat("a", 256) },
			wantErr: true,
		},
		{
			name:    "missing email",
			mutate:  func(r *EmployeeRequest) { r.Email = "" },
			wantErr: true,
		},
		{
			name:    "malformed email",
			mutate:  func(r *EmployeeRequest) { r.Email = "not-an-email" },
			wantErr: true,
		},
		{
			name:    "email without domain",
			mutate:  func(r *EmployeeRequest) { r.Email = "john@" },
			wantErr: true,
		},
		{
			name:    "department too long",
			mutate:  func(r *EmployeeRequest) { r.Department = strings.Repeat("a", 256) },
			wantErr: true,
		},
		{
			name:    "role too long",
			mutate:  func(r *EmployeeRequest) { r.Role = strings.Repeat("a", 256) },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
