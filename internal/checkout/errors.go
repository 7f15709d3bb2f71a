package checkout

import "errors"

var (
	// ErrNoSession means no checkout has been started (or it was dismissed).
	ErrNoSession = errors.New("no active checkout session")

	// ErrInvalidTransition rejects an operation outside its step.
	ErrInvalidTransition = errors.New("transition not allowed from current step")

	// ErrMissingShippingField blocks ShippingInfo→Review while full name,
	// phone or address is empty.
	ErrMissingShippingField = errors.New("full name, phone and address are required")

	// ErrInvalidPaymentMethod rejects a method outside the fixed set.
	ErrInvalidPaymentMethod = errors.New("unknown payment method")
)
