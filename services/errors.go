package services

import "errors"

// Business-rule errors surfaced to handlers, which map them onto HTTP
// status codes: not-found → 404, invalid-state → 400, forbidden → 403,
// conflict → 409.
var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrRestaurantClosed   = errors.New("restaurant is not active")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrItemUnavailable    = errors.New("menu item is not available")
	ErrWrongRestaurant    = errors.New("menu item does not belong to this restaurant")
	ErrOrderNotFound      = errors.New("order not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotYourOrder       = errors.New("order does not belong to you")
	ErrReviewNotAllowed   = errors.New("you can only review restaurants you've ordered from")
	ErrAlreadyAssigned    = errors.New("order already assigned to another agent")
	ErrOrderNotReady      = errors.New("order is not awaiting pickup")
)
