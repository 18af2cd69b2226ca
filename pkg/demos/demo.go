package demos

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Demo runs one illustration and reports what it produced.
type Demo interface {
	Name() string
	Run(ctx context.Context) (Result, error)
}

// Result is the observable outcome of a demo.
type Result struct {
	Demo   string `json:"demo" yaml:"demo"`
	Output string `json:"output" yaml:"output"`
}

const (
	NameGreeting  = "greeting"
	NameCheckout  = "checkout"
	NameTerminate = "terminate"
	NameArea      = "area"
)

// Names lists every demo ByName can build.
var Names = []string{NameGreeting, NameCheckout, NameTerminate, NameArea}

// Options carries the inputs of every demo; each demo reads only its own.
type Options struct {
	Locale       string
	Method       string
	Amount       decimal.Decimal
	StoreAmount  decimal.Decimal
	MedicalLeave bool
	Retired      bool
	Log          logrus.FieldLogger
}

// ByName builds the demo called name.
func ByName(name string, opts Options) (Demo, error) {
	switch name {
	case NameGreeting:
		return NewGreeting(opts.Locale), nil
	case NameCheckout:
		return NewCheckout(opts.Method, opts.Amount, opts.StoreAmount, opts.Log), nil
	case NameTerminate:
		return NewTerminate(opts.MedicalLeave, opts.Retired), nil
	case NameArea:
		return NewArea(), nil
	default:
		return nil, fmt.Errorf("unknown demo: %s", name)
	}
}
