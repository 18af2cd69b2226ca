package demos

import (
	"context"

	"github.com/vignesh-goutham/solid/pkg/greeting"
)

// Greeting greets in the configured locale.
type Greeting struct {
	locale string
}

func NewGreeting(locale string) *Greeting {
	return &Greeting{locale: locale}
}

func (d *Greeting) Name() string { return NameGreeting }

func (d *Greeting) Run(_ context.Context) (Result, error) {
	provider, err := greeting.ForLocale(d.locale)
	if err != nil {
		return Result{}, err
	}
	return Result{Demo: d.Name(), Output: greeting.NewService(provider).Execute()}, nil
}
