package cart

import "errors"

var (
	// ErrStockExceeded rejects a quantity change that would pass the
	// stock captured on the line.
	ErrStockExceeded = errors.New("quantity exceeds available stock")

	// ErrLineNotFound means the cart has no line with the given ID.
	ErrLineNotFound = errors.New("cart line not found")

	// ErrIncompleteSelection blocks confirmation while any declared
	// option axis is missing a value.
	ErrIncompleteSelection = errors.New("every option must be selected")

	// ErrOptionUnavailable rejects a value flagged as sold out.
	ErrOptionUnavailable = errors.New("option value unavailable")

	// ErrUnknownOption rejects an axis or value the product does not declare.
	ErrUnknownOption = errors.New("unknown option for product")

	// ErrNoOptions means the product has no axes to configure.
	ErrNoOptions = errors.New("product declares no options")
)
