// Package dining provides the Table entity: a physical dining table inside
// the venue, identified externally by a human-readable table number and
// internally by a UUID.
package dining

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

// ErrTableIsNotConstructed is returned when a Table instance was not created
// through the NewTable or RestoreTable factory methods.
var ErrTableIsNotConstructed = errors.New("Table must be created via NewTable constructor")

// Table is the resolution target for order creation: clients present the
// human-readable table number, and the core resolves it to the internal id.
// Inactive tables are invisible to that resolution.
type Table struct {
	id     kernel.UUID
	number string
	active bool

	isConstructed bool
}

// NewTable creates an active table with the given number.
func NewTable(id kernel.UUID, number string) (*Table, error) {
	return RestoreTable(id, number, true)
}

// RestoreTable reconstructs a Table from persistence.
func RestoreTable(id kernel.UUID, number string, active bool) (*Table, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("table number")
	}

	return &Table{
		id:            id,
		number:        number,
		active:        active,
		isConstructed: true,
	}, nil
}

// Validate ensures the Table was properly constructed through a factory method.
func (t *Table) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTableIsNotConstructed
	}
	return nil
}

// ID returns the internal table identifier.
func (t *Table) ID() kernel.UUID {
	return t.id
}

// Number returns the human-readable table number shown to guests.
func (t *Table) Number() string {
	return t.number
}

// IsActive reports whether the table is available for new orders.
func (t *Table) IsActive() bool {
	return t.active
}
