package opsheet

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTaxAdvantagedAccount is returned when the user has no tax-advantaged account.
	ErrNoTaxAdvantagedAccount = errors.New("no tax-advantaged account")
	// ErrUnknownTicker is returned when a ticker matches no instrument.
	ErrUnknownTicker = errors.New("unknown ticker")
)

// MissingReferenceError reports a cross-reference that a report requires but
// the broker data does not contain.
type MissingReferenceError struct {
	What string // human description of the missing reference
	Err  error  // sentinel identifying the kind of reference
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("missing reference: %s: %v", e.What, e.Err)
}

func (e *MissingReferenceError) Unwrap() error { return e.Err }
