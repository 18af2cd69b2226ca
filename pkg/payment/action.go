package payment

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/vignesh-goutham/solid/pkg/capability"
)

// Action is a way of paying for a checkout.
type Action interface {
	// Amount is the value the action was created with.
	Amount() decimal.Decimal
	Pay() (decimal.Decimal, error)
	Deduct() (decimal.Decimal, error)
}

// PayPal pays through PayPal. Charging is not wired to a backend yet.
type PayPal struct {
	amount decimal.Decimal
}

// NewPayPal creates a PayPal action for amount.
func NewPayPal(amount decimal.Decimal) (*PayPal, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	return &PayPal{amount: amount}, nil
}

func (p *PayPal) Amount() decimal.Decimal { return p.amount }

func (p *PayPal) Pay() (decimal.Decimal, error) {
	return decimal.Zero, capability.NotImplemented("paypal.pay")
}

func (p *PayPal) Deduct() (decimal.Decimal, error) {
	return decimal.Zero, capability.NotImplemented("paypal.deduct")
}

// GooglePay pays through Google Pay. Charging is not wired to a backend yet.
type GooglePay struct {
	amount decimal.Decimal
}

// NewGooglePay creates a Google Pay action for amount.
func NewGooglePay(amount decimal.Decimal) (*GooglePay, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	return &GooglePay{amount: amount}, nil
}

func (g *GooglePay) Amount() decimal.Decimal { return g.amount }

func (g *GooglePay) Pay() (decimal.Decimal, error) {
	return decimal.Zero, capability.NotImplemented("googlepay.pay")
}

func (g *GooglePay) Deduct() (decimal.Decimal, error) {
	return decimal.Zero, capability.NotImplemented("googlepay.deduct")
}

// ForMethod builds the action for a payment method name ("paypal" or "googlepay").
func ForMethod(method string, amount decimal.Decimal) (Action, error) {
	var (
		action Action
		err    error
	)
	switch strings.ToLower(method) {
	case "paypal":
		action, err = NewPayPal(amount)
	case "googlepay", "google-pay":
		action, err = NewGooglePay(amount)
	default:
		return nil, capability.NotImplemented("payment method " + method)
	}
	if err != nil {
		return nil, err
	}
	return action, nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errors.Wrapf(capability.ErrInvalidAmount, "amount %s is negative", amount)
	}
	return nil
}
