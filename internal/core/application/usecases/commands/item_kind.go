package commands

import (
	"fmt"

	"foodcourt/internal/pkg/errs"
)

// ItemKind distinguishes the two line item kinds sharing one status domain:
// standard items that belong to an order aggregate, and custom items created
// directly against a stall/table pair.
type ItemKind int

const (
	// KindUnknown represents an invalid or undefined item kind.
	KindUnknown ItemKind = iota

	// KindStandard is a line item of a standard order. Status changes on
	// standard items trigger a rollup of the parent order's aggregate status.
	KindStandard

	// KindCustom is a standalone staff-entered item with no parent order.
	KindCustom
)

// ItemKindFromString parses the wire representation of an item kind.
func ItemKindFromString(s string) (ItemKind, error) {
	switch s {
	case "standard":
		return KindStandard, nil
	case "custom":
		return KindCustom, nil
	default:
		return KindUnknown, errs.NewValueIsInvalidErrorWithCause(
			"item kind is invalid",
			fmt.Errorf("%q is not a valid item kind", s),
		)
	}
}

// String returns the wire representation of the item kind.
func (k ItemKind) String() string {
	switch k {
	case KindStandard:
		return "standard"
	case KindCustom:
		return "custom"
	case KindUnknown:
		fallthrough
	default:
		return "unknown"
	}
}

// Validate checks if the ItemKind value is valid.
func (k ItemKind) Validate() error {
	switch k {
	case KindStandard, KindCustom:
		return nil
	case KindUnknown:
		fallthrough
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"item kind is invalid",
			fmt.Errorf("%d is not a valid item kind", k),
		)
	}
}
