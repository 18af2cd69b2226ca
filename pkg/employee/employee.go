// Package employee implements the employee termination workflow on top of
// an interchangeable repository.
package employee

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
)

// Employee is the record the termination workflow reads and updates.
type Employee struct {
	ID             string
	OnMedicalLeave bool
	IsRetired      bool
	Terminated     bool
	TerminatedOn   civil.Date
}

// now is swapped in tests.
var now = time.Now

// Terminate marks the employee terminated as of today.
// id must be the employee's own ID.
func (e *Employee) Terminate(id string) error {
	if id != e.ID {
		return errors.Errorf("terminate: id %q does not match employee %q", id, e.ID)
	}
	e.Terminated = true
	e.TerminatedOn = civil.DateOf(now())
	return nil
}
