package game

import "errors"

// ErrUnitNotFound is returned when an index does not address an existing roster slot.
var ErrUnitNotFound = errors.New("unit not found")

// ErrInsufficientFunds is returned when an operation costs more gold than the army holds.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrNotTransformable is returned when a unit's type has no successor in the promotion chain.
var ErrNotTransformable = errors.New("unit type has no promotion")
