package employee

import (
	"context"
	"fmt"
)

// StatusOnMedicalLeave is returned when an employee on medical leave is left untouched.
const StatusOnMedicalLeave = "done"

// TerminateHandler terminates employees loaded through its repository.
type TerminateHandler struct {
	employeeRepository Repository
}

// NewTerminateHandler creates a handler backed by employeeRepository.
func NewTerminateHandler(employeeRepository Repository) *TerminateHandler {
	return &TerminateHandler{
		employeeRepository: employeeRepository,
	}
}

// Execute terminates employee id unless they are on medical leave or retired.
// Repository and termination errors are returned unchanged; the boolean
// result of the update is not checked.
func (h *TerminateHandler) Execute(ctx context.Context, id string) (string, error) {
	employee, err := h.employeeRepository.Get(ctx, id)
	if err != nil {
		return "", err
	}

	if employee.OnMedicalLeave {
		return StatusOnMedicalLeave, nil
	}
	if employee.IsRetired {
		return fmt.Sprintf("Employee %s is retired and cannot be terminated!", id), nil
	}

	if err := employee.Terminate(id); err != nil {
		return "", err
	}
	if _, err := h.employeeRepository.Update(ctx, employee); err != nil {
		return "", err
	}

	return fmt.Sprintf("Employee %s terminated successfully!", id), nil
}
