package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a domain error for the HTTP boundary. Handlers map kinds to
// status codes and never leak storage error text to clients.
type Kind string

const (
	KindNotFound    Kind = "not_found"
	KindValidation  Kind = "validation"
	KindState       Kind = "state"
	KindConflict    Kind = "conflict"
	KindUnavailable Kind = "unavailable"
	KindInternal    Kind = "internal"
)

// Error is a domain error with a stable machine-readable code.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrCustomerNotFound   = &Error{Kind: KindNotFound, Code: "CUSTOMER_NOT_FOUND", Message: "customer not found"}
	ErrRestaurantNotFound = &Error{Kind: KindNotFound, Code: "RESTAURANT_NOT_FOUND", Message: "restaurant not found"}
	ErrAddressNotFound    = &Error{Kind: KindNotFound, Code: "ADDRESS_NOT_FOUND", Message: "address not found"}
	ErrItemNotFound       = &Error{Kind: KindNotFound, Code: "ITEM_NOT_FOUND", Message: "menu item not found"}
	ErrOrderNotFound      = &Error{Kind: KindNotFound, Code: "ORDER_NOT_FOUND", Message: "order not found"}
	ErrDriverNotFound     = &Error{Kind: KindNotFound, Code: "DRIVER_NOT_FOUND", Message: "driver not found"}

	ErrRestaurantClosed  = &Error{Kind: KindValidation, Code: "RESTAURANT_CLOSED", Message: "restaurant is currently closed"}
	ErrAddressRequired   = &Error{Kind: KindValidation, Code: "ADDRESS_REQUIRED", Message: "address is required for delivery orders"}
	ErrItemUnavailable   = &Error{Kind: KindValidation, Code: "ITEM_UNAVAILABLE", Message: "menu item is not available"}
	ErrInvalidQuantity   = &Error{Kind: KindValidation, Code: "INVALID_QUANTITY", Message: "item quantity must be greater than 0"}
	ErrEmptyOrder        = &Error{Kind: KindValidation, Code: "EMPTY_ORDER", Message: "order must contain at least one item"}
	ErrBelowMinimumOrder = &Error{Kind: KindValidation, Code: "BELOW_MINIMUM_ORDER", Message: "order subtotal is below the restaurant minimum"}

	ErrInvalidTransition = &Error{Kind: KindState, Code: "INVALID_TRANSITION", Message: "status transition is not allowed"}
	ErrOrderAlreadyFinal = &Error{Kind: KindState, Code: "ORDER_ALREADY_FINAL", Message: "order is in a terminal status"}
	ErrDriverRequired    = &Error{Kind: KindState, Code: "DRIVER_REQUIRED", Message: "a driver is required for this transition"}
	ErrDriverUnavailable = &Error{Kind: KindState, Code: "DRIVER_UNAVAILABLE", Message: "driver is not available"}

	ErrOrderIDCollision   = &Error{Kind: KindConflict, Code: "ORDER_ID_COLLISION", Message: "order identifier already exists"}
	ErrCustomerExists     = &Error{Kind: KindConflict, Code: "CUSTOMER_EXISTS", Message: "customer with this phone number or email already exists"}
	ErrRestaurantExists   = &Error{Kind: KindConflict, Code: "RESTAURANT_EXISTS", Message: "restaurant identifier already exists"}
	ErrItemExists         = &Error{Kind: KindConflict, Code: "ITEM_EXISTS", Message: "menu item identifier already exists"}
	ErrDriverExists       = &Error{Kind: KindConflict, Code: "DRIVER_EXISTS", Message: "driver with this license plate already exists"}
	ErrTransitionConflict = &Error{Kind: KindConflict, Code: "TRANSITION_CONFLICT", Message: "order was modified by a concurrent request"}

	ErrStorageUnavailable = &Error{Kind: KindUnavailable, Code: "STORAGE_UNAVAILABLE", Message: "storage is temporarily unavailable"}
)

// KindOf returns the kind of err, or KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// CodeOf returns the stable code of err, or INTERNAL_ERROR.
func CodeOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return "INTERNAL_ERROR"
}

// WrapError attaches context to a domain error while keeping it matchable
// with errors.Is.
func WrapError(err error, format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, err)...)
}
