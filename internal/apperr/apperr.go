package apperr

import "errors"

// Failure taxonomy shared by every service. Call sites wrap these with
// fmt.Errorf("...: %w", Err...) so callers can branch with errors.Is.
var (
	// ErrValidation marks a missing or malformed input field, caught
	// before anything is sent to the store.
	ErrValidation = errors.New("validation")

	// ErrNotFound marks a referenced document that no longer exists.
	ErrNotFound = errors.New("not found")

	// ErrStore marks a transport or permission failure reported by the
	// document store.
	ErrStore = errors.New("store")

	// ErrPrecondition marks an operation invoked on state that does not
	// support it, e.g. decrementing a product that is not in the cart.
	ErrPrecondition = errors.New("precondition")
)

func IsValidation(err error) bool   { return errors.Is(err, ErrValidation) }
func IsNotFound(err error) bool     { return errors.Is(err, ErrNotFound) }
func IsStore(err error) bool        { return errors.Is(err, ErrStore) }
func IsPrecondition(err error) bool { return errors.Is(err, ErrPrecondition) }
