package demos

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/vignesh-goutham/solid/pkg/payment"
)

// Checkout checks out a store through the configured payment method.
type Checkout struct {
	method      string
	amount      decimal.Decimal
	storeAmount decimal.Decimal
	log         logrus.FieldLogger
}

func NewCheckout(method string, amount, storeAmount decimal.Decimal, log logrus.FieldLogger) *Checkout {
	return &Checkout{
		method:      method,
		amount:      amount,
		storeAmount: storeAmount,
		log:         log,
	}
}

func (d *Checkout) Name() string { return NameCheckout }

func (d *Checkout) Run(_ context.Context) (Result, error) {
	action, err := payment.ForMethod(d.method, d.amount)
	if err != nil {
		return Result{}, err
	}
	store := payment.NewStore(d.storeAmount, action, d.log)
	return Result{Demo: d.Name(), Output: store.Checkout().String()}, nil
}
