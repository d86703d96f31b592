package kernel

import (
	"fmt"

	"foodcourt/internal/pkg/errs"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created through NewMoney.
// This error is returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney")

// Money is a value object representing a non-negative monetary amount.
// The amount is stored in cents to avoid floating point rounding in
// price arithmetic. Money is immutable and safe for concurrent use.
//
// The zero value of Money is invalid and must be constructed via NewMoney.
//
// Example usage:
//
//	price, err := kernel.NewMoney(1050) // 10.50
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(price.String()) // "10.50"
type Money struct {
	cents         int64
	isConstructed bool
}

// NewMoney creates a Money value from an amount in cents.
// Returns an error if the amount is negative.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money amount",
			fmt.Errorf("%d is negative", cents),
		)
	}
	return Money{cents: cents, isConstructed: true}, nil
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Multiply returns a Money value scaled by a non-negative integer factor.
// Used to derive line subtotals from a unit price and quantity.
func (m Money) Multiply(factor int) (Money, error) {
	if factor < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money factor",
			fmt.Errorf("%d is negative", factor),
		)
	}
	return NewMoney(m.cents * int64(factor))
}

// IsEqual compares two Money values by amount.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String renders the amount with two decimal places, e.g. "10.50".
// This method implements the fmt.Stringer interface.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

// Validate checks that the Money value was constructed via NewMoney.
// Returns ErrMoneyIsNotConstructed for zero values.
func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}
