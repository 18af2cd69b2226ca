// Package payment implements a store that checks out through an
// interchangeable payment action.
package payment

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Store checks out through the payment action it was built with.
type Store struct {
	amount  decimal.Decimal
	actions Action
	log     logrus.FieldLogger
}

// NewStore creates a store. A nil log falls back to the standard logrus logger.
func NewStore(amount decimal.Decimal, actions Action, log logrus.FieldLogger) *Store {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Store{
		amount:  amount,
		actions: actions,
		log:     log.WithField("component", "store"),
	}
}

// Amount returns the amount the store was created with. Checkout does not use it.
func (s *Store) Amount() decimal.Decimal {
	return s.amount
}

// Checkout logs and returns the amount held by the payment action.
// No payment is executed.
func (s *Store) Checkout() decimal.Decimal {
	amount := s.actions.Amount()
	s.log.WithField("amount", amount.String()).Info("checkout")
	return amount
}
