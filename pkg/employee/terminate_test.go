package employee

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vignesh-goutham/solid/pkg/capability"
)

type fakeRepository struct {
	employee  *Employee
	getErr    error
	updateErr error
	calls     []string
	updated   *Employee
}

func (f *fakeRepository) Get(_ context.Context, id string) (*Employee, error) {
	f.calls = append(f.calls, "get:"+id)
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.employee, nil
}

func (f *fakeRepository) Update(_ context.Context, e *Employee) (bool, error) {
	f.calls = append(f.calls, "update:"+e.ID)
	f.updated = e
	return false, f.updateErr
}

func withFixedNow(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func TestTerminateHandler_MedicalLeaveReturnsDone(t *testing.T) {
	for _, retired := range []bool{false, true} {
		repo := &fakeRepository{employee: &Employee{ID: "7", OnMedicalLeave: true, IsRetired: retired}}

		got, err := NewTerminateHandler(repo).Execute(context.Background(), "7")

		require.NoError(t, err)
		assert.Equal(t, "done", got)
		assert.Equal(t, []string{"get:7"}, repo.calls)
		assert.False(t, repo.employee.Terminated)
	}
}

func TestTerminateHandler_RetiredCannotBeTerminated(t *testing.T) {
	repo := &fakeRepository{employee: &Employee{ID: "7", IsRetired: true}}

	got, err := NewTerminateHandler(repo).Execute(context.Background(), "7")

	require.NoError(t, err)
	assert.Equal(t, "Employee 7 is retired and cannot be terminated!", got)
	assert.Equal(t, []string{"get:7"}, repo.calls)
}

func TestTerminateHandler_TerminatesThenUpdates(t *testing.T) {
	withFixedNow(t, time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
	repo := &fakeRepository{employee: &Employee{ID: "7"}}

	got, err := NewTerminateHandler(repo).Execute(context.Background(), "7")

	require.NoError(t, err)
	assert.Equal(t, "Employee 7 terminated successfully!", got)
	assert.Equal(t, []string{"get:7", "update:7"}, repo.calls)
	require.NotNil(t, repo.updated)
	assert.True(t, repo.updated.Terminated)
	assert.Equal(t, civil.Date{Year: 2026, Month: time.March, Day: 14}, repo.updated.TerminatedOn)
}

func TestTerminateHandler_PropagatesGetError(t *testing.T) {
	boom := errors.New("boom")
	repo := &fakeRepository{getErr: boom}

	_, err := NewTerminateHandler(repo).Execute(context.Background(), "7")

	assert.Same(t, boom, err)
}

func TestTerminateHandler_PropagatesUpdateError(t *testing.T) {
	boom := errors.New("boom")
	repo := &fakeRepository{employee: &Employee{ID: "7"}, updateErr: boom}

	_, err := NewTerminateHandler(repo).Execute(context.Background(), "7")

	assert.Same(t, boom, err)
}

func TestTerminateHandler_UnimplementedRepository(t *testing.T) {
	_, err := NewTerminateHandler(UnimplementedRepository{}).Execute(context.Background(), "7")

	assert.ErrorIs(t, err, capability.ErrNotImplemented)
}

func TestTerminateHandler_WithMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(Employee{ID: "a"})

	got, err := NewTerminateHandler(repo).Execute(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Employee a terminated successfully!", got)

	stored, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, stored.Terminated)

	_, err = NewTerminateHandler(repo).Execute(ctx, "missing")
	assert.ErrorIs(t, err, capability.ErrNotFound)
}
