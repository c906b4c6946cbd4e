// Package http provides HTTP handlers for employee operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	employeeDomain "github.com/allisson/employees/internal/employee/domain"
	"github.com/allisson/employees/internal/employee/http/dto"
	employeeUseCase "github.com/allisson/employees/internal/employee/usecase"
	"github.com/allisson/employees/internal/httputil"
)

// EmployeeHandler handles HTTP requests for employee operations.
type EmployeeHandler struct {
	employeeUseCase employeeUseCase.EmployeeUseCase
	logger          *slog.Logger
}

// NewEmployeeHandler creates a new employee handler with required dependencies.
func NewEmployeeHandler(
	useCase employeeUseCase.EmployeeUseCase,
	logger *slog.Logger,
) *EmployeeHandler {
	return &EmployeeHandler{
		employeeUseCase: useCase,
		logger:          logger,
	}
}

// parseEmployeeID parses the :id route parameter.
func parseEmployeeID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid employee ID: must be an integer")
	}
	return id, nil
}

// CreateHandler creates a new employee.
// POST /employees/ - Returns 201 Created with the stored record.
func (h *EmployeeHandler) CreateHandler(c *gin.Context) {
	var req dto.EmployeeRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Call use case
	employee, err := h.employeeUseCase.Create(c.Request.Context(), dto.ToCreateEmployeeInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// ListHandler lists employees with optional filtering and pagination.
// GET /employees/?page=&department=&role= - Returns 200 OK with a possibly
// empty list; an out-of-range page is not an error.
func (h *EmployeeHandler) ListHandler(c *gin.Context) {
	filter := employeeDomain.Filter{
		Department: c.Query("department"),
		Role:       c.Query("role"),
	}
	page := httputil.ParsePage(c)

	employees, err := h.employeeUseCase.List(c.Request.Context(), filter, page)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeListResponse(employees))
}

// GetHandler retrieves an employee by ID.
// GET /employees/:id - Returns 200 OK or 404.
func (h *EmployeeHandler) GetHandler(c *gin.Context) {
	id, err := parseEmployeeID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	employee, err := h.employeeUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// UpdateHandler overwrites an employee's fields.
// PUT /employees/:id - Returns 200 OK with the updated record.
func (h *EmployeeHandler) UpdateHandler(c *gin.Context) {
	id, err := parseEmployeeID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.EmployeeRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Call use case
	employee, err := h.employeeUseCase.Update(c.Request.Context(), id, dto.ToUpdateEmployeeInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// DeleteHandler removes an employee.
// DELETE /employees/:id - Returns 204 No Content, also when the ID does not
// exist; deletion is idempotent.
func (h *EmployeeHandler) DeleteHandler(c *gin.Context) {
	id, err := parseEmployeeID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := h.employeeUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}
