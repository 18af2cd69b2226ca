package employee

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/vignesh-goutham/solid/pkg/capability"
)

// Repository loads and saves employees.
type Repository interface {
	// Get fails with capability.ErrNotFound when id is unknown.
	Get(ctx context.Context, id string) (*Employee, error)
	Update(ctx context.Context, employee *Employee) (bool, error)
}

// MemoryRepository keeps employees in memory. It is safe for concurrent use.
type MemoryRepository struct {
	mu        sync.RWMutex
	employees map[string]Employee
}

// NewMemoryRepository creates a repository seeded with employees.
func NewMemoryRepository(employees ...Employee) *MemoryRepository {
	r := &MemoryRepository{employees: make(map[string]Employee, len(employees))}
	for _, e := range employees {
		r.Add(e)
	}
	return r
}

// Add stores e, assigning a new ID when it has none, and returns the stored ID.
func (r *MemoryRepository) Add(e Employee) string {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.employees[e.ID] = e
	return e.ID
}

// Get returns a copy of the stored employee.
func (r *MemoryRepository) Get(ctx context.Context, id string) (*Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.employees[id]
	if !ok {
		return nil, errors.Wrapf(capability.ErrNotFound, "employee %s", id)
	}
	return &e, nil
}

// Update replaces the stored employee. It reports false when the employee is unknown.
func (r *MemoryRepository) Update(ctx context.Context, employee *Employee) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if employee == nil {
		return false, errors.New("update: nil employee")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[employee.ID]; !ok {
		return false, nil
	}
	r.employees[employee.ID] = *employee
	return true, nil
}

// UnimplementedRepository stands in for a repository with no backend yet.
// Every operation fails with capability.ErrNotImplemented.
type UnimplementedRepository struct{}

func (UnimplementedRepository) Get(context.Context, string) (*Employee, error) {
	return nil, capability.NotImplemented("employee.get")
}

func (UnimplementedRepository) Update(context.Context, *Employee) (bool, error) {
	return false, capability.NotImplemented("employee.update")
}
