package demos

import (
	"context"

	"github.com/vignesh-goutham/solid/pkg/employee"
)

// Terminate seeds one employee in memory and tries to terminate them.
type Terminate struct {
	onMedicalLeave bool
	isRetired      bool
}

func NewTerminate(onMedicalLeave, isRetired bool) *Terminate {
	return &Terminate{onMedicalLeave: onMedicalLeave, isRetired: isRetired}
}

func (d *Terminate) Name() string { return NameTerminate }

func (d *Terminate) Run(ctx context.Context) (Result, error) {
	repo := employee.NewMemoryRepository()
	id := repo.Add(employee.Employee{
		OnMedicalLeave: d.onMedicalLeave,
		IsRetired:      d.isRetired,
	})

	out, err := employee.NewTerminateHandler(repo).Execute(ctx, id)
	if err != nil {
		return Result{}, err
	}
	return Result{Demo: d.Name(), Output: out}, nil
}
