package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vignesh-goutham/solid/pkg/demos"
)

type fakeDemo struct {
	name string
	err  error
	ran  *[]string
}

func (f fakeDemo) Name() string { return f.name }

func (f fakeDemo) Run(context.Context) (demos.Result, error) {
	*f.ran = append(*f.ran, f.name)
	if f.err != nil {
		return demos.Result{}, f.err
	}
	return demos.Result{Demo: f.name, Output: "out-" + f.name}, nil
}

type recordingReporter struct {
	results []demos.Result
	err     error
}

func (r *recordingReporter) Report(result demos.Result) error {
	r.results = append(r.results, result)
	return r.err
}

func TestEngine_RunsInOrderAndReports(t *testing.T) {
	var ran []string
	rep := &recordingReporter{}
	eng := NewEngine([]demos.Demo{
		fakeDemo{name: "a", ran: &ran},
		fakeDemo{name: "b", ran: &ran},
	}, rep)

	results, err := eng.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ran)
	assert.Equal(t, results, rep.results)
	assert.Equal(t, "out-b", results[1].Output)
}

func TestEngine_StopsAtFirstFailure(t *testing.T) {
	var ran []string
	boom := errors.New("boom")
	eng := NewEngine([]demos.Demo{
		fakeDemo{name: "a", ran: &ran},
		fakeDemo{name: "b", err: boom, ran: &ran},
		fakeDemo{name: "c", ran: &ran},
	}, nil)

	results, err := eng.Run(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"a", "b"}, ran)
	assert.Len(t, results, 1)
}

func TestEngine_ReporterError(t *testing.T) {
	var ran []string
	boom := errors.New("write failed")
	eng := NewEngine([]demos.Demo{fakeDemo{name: "a", ran: &ran}}, &recordingReporter{err: boom})

	_, err := eng.Run(context.Background())

	assert.ErrorIs(t, err, boom)
}
