package engine

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vignesh-goutham/solid/pkg/demos"
)

// Reporter receives each demo result as soon as it is produced.
type Reporter interface {
	Report(result demos.Result) error
}

type Engine struct {
	demos    []demos.Demo
	reporter Reporter
	log      logrus.FieldLogger
}

func NewEngine(demos []demos.Demo, reporter Reporter) *Engine {
	return &Engine{
		demos:    demos,
		reporter: reporter,
		log:      logrus.WithField("component", "engine"),
	}
}

// Run runs the demos in order and stops at the first failure.
func (e *Engine) Run(ctx context.Context) ([]demos.Result, error) {
	results := make([]demos.Result, 0, len(e.demos))
	for _, demo := range e.demos {
		log := e.log.WithField("demo", demo.Name())
		log.Debug("running demo")

		result, err := demo.Run(ctx)
		if err != nil {
			log.WithError(err).Error("demo failed")
			return results, fmt.Errorf("demo %s: %w", demo.Name(), err)
		}
		results = append(results, result)

		if e.reporter != nil {
			if err := e.reporter.Report(result); err != nil {
				return results, fmt.Errorf("report %s: %w", demo.Name(), err)
			}
		}
	}
	return results, nil
}
