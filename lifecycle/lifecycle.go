// Package lifecycle holds the order status vocabulary and the rules for
// who may move an order between statuses.
package lifecycle

import (
	"errors"

	"github.com/eatupnow/eatupnow-api/models"
)

// Statuses is the authoritative ordering of the order lifecycle.
var Statuses = []models.OrderStatus{
	models.StatusPending,
	models.StatusConfirmed,
	models.StatusPreparing,
	models.StatusOutForDelivery,
	models.StatusDelivered,
	models.StatusCancelled,
}

var known = func() map[models.OrderStatus]bool {
	m := make(map[models.OrderStatus]bool, len(Statuses))
	for _, s := range Statuses {
		m[s] = true
	}
	return m
}()

var (
	ErrUnknownStatus = errors.New("unknown order status")
	ErrNotPermitted  = errors.New("role may not change order status")
	ErrNotPending    = errors.New("order can only be cancelled while pending")
)

// IsKnown reports whether s is a recognized status value.
func IsKnown(s models.OrderStatus) bool {
	return known[s]
}

// CheckStatusChange validates a direct status update. Admins, owners and
// delivery agents may set any known status; there is no enforced
// transition table beyond the cancellation rules.
func CheckStatusChange(role models.Role, to models.OrderStatus) error {
	if !IsKnown(to) {
		return ErrUnknownStatus
	}
	if !role.CanUpdateOrderStatus() {
		return ErrNotPermitted
	}
	return nil
}

// CheckCancel validates a cancellation. The order's own customer may
// cancel only while the order is pending; admin and owner roles may
// cancel from any state.
func CheckCancel(role models.Role, current models.OrderStatus) error {
	if role.CanCancelAnyOrder() {
		return nil
	}
	if current != models.StatusPending {
		return ErrNotPending
	}
	return nil
}
