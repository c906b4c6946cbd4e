package repository

import (
	"context"
	"sync"

	employeeDomain "github.com/allisson/employees/internal/employee/domain"
)

// MemoryEmployeeRepository is an in-memory employee store guarded by a mutex.
// It preserves insertion order and enforces email uniqueness under
// concurrency, mirroring the guarantees of the SQL-backed repositories.
// Selected with DB_DRIVER=memory; intended for tests and local runs.
type MemoryEmployeeRepository struct {
	mu        sync.Mutex
	employees []*employeeDomain.Employee
	byID      map[int64]*employeeDomain.Employee
	byEmail   map[string]*employeeDomain.Employee
	nextID    int64
}

// NewMemoryEmployeeRepository creates an empty in-memory employee store.
func NewMemoryEmployeeRepository() *MemoryEmployeeRepository {
	return &MemoryEmployeeRepository{
		byID:    make(map[int64]*employeeDomain.Employee),
		byEmail: make(map[string]*employeeDomain.Employee),
		nextID:  1,
	}
}

// Create inserts a new employee and assigns the next sequential ID.
func (r *MemoryEmployeeRepository) Create(ctx context.Context, employee *employeeDomain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[employee.Email]; exists {
		return employeeDomain.ErrEmailExists
	}

	employee.ID = r.nextID
	r.nextID++

	stored := *employee
	r.employees = append(r.employees, &stored)
	r.byID[stored.ID] = &stored
	r.byEmail[stored.Email] = &stored

	return nil
}

// GetByID retrieves an employee by ID.
func (r *MemoryEmployeeRepository) GetByID(ctx context.Context, id int64) (*employeeDomain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	employee, ok := r.byID[id]
	if !ok {
		return nil, employeeDomain.ErrEmployeeNotFound
	}

	copied := *employee
	return &copied, nil
}

// GetByEmail retrieves an employee by email.
func (r *MemoryEmployeeRepository) GetByEmail(ctx context.Context, email string) (*employeeDomain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	employee, ok := r.byEmail[email]
	if !ok {
		return nil, employeeDomain.ErrEmployeeNotFound
	}

	copied := *employee
	return &copied, nil
}

// ListAll retrieves every employee in insertion order.
func (r *MemoryEmployeeRepository) ListAll(ctx context.Context) ([]*employeeDomain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	employees := make([]*employeeDomain.Employee, 0, len(r.employees))
	for _, employee := range r.employees {
		copied := *employee
		employees = append(employees, &copied)
	}

	return employees, nil
}

// Update overwrites an existing employee's mutable fields.
func (r *MemoryEmployeeRepository) Update(ctx context.Context, employee *employeeDomain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[employee.ID]
	if !ok {
		return employeeDomain.ErrEmployeeNotFound
	}

	if other, exists := r.byEmail[employee.Email]; exists && other.ID != employee.ID {
		return employeeDomain.ErrEmailExists
	}

	delete(r.byEmail, stored.Email)
	stored.Name = employee.Name
	stored.Email = employee.Email
	stored.Department = employee.Department
	stored.Role = employee.Role
	r.byEmail[stored.Email] = stored

	return nil
}

// Delete removes an employee by ID.
func (r *MemoryEmployeeRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[id]
	if !ok {
		return employeeDomain.ErrEmployeeNotFound
	}

	delete(r.byID, id)
	delete(r.byEmail, stored.Email)

	for i, employee := range r.employees {
		if employee.ID == id {
			r.employees = append(r.employees[:i], r.employees[i+1:]...)
			break
		}
	}

	return nil
}
