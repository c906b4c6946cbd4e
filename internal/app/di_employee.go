package app

import (
	"fmt"

	employeeRepository "github.com/allisson/employees/internal/employee/repository"
	employeeUseCase "github.com/allisson/employees/internal/employee/usecase"
)

// initEmployeeRepository creates the employee repository instance.
func (c *Container) initEmployeeRepository() (employeeUseCase.EmployeeRepository, error) {
	// The in-memory store needs no database connection
	if c.config.DBDriver == "memory" {
		return employeeRepository.NewMemoryEmployeeRepository(), nil
	}

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for employee repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return employeeRepository.NewMySQLEmployeeRepository(db), nil
	case "postgres":
		return employeeRepository.NewPostgreSQLEmployeeRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initEmployeeUseCase creates the employee use case with all its dependencies.
func (c *Container) initEmployeeUseCase() (employeeUseCase.EmployeeUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for employee use case: %w", err)
	}

	employeeRepo, err := c.EmployeeRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get employee repository for employee use case: %w", err)
	}

	useCase := employeeUseCase.NewEmployeeUseCase(txManager, employeeRepo, c.QueryResolver())

	// Wrap with metrics instrumentation when enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for employee use case: %w", err)
		}
		useCase = employeeUseCase.NewEmployeeUseCaseWithMetrics(useCase, businessMetrics)
	}

	return useCase, nil
}
