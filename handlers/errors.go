package handlers

import (
	"errors"
	"net/http"

	"github.com/eatupnow/eatupnow-api/lifecycle"
	"github.com/eatupnow/eatupnow-api/services"

	"github.com/gin-gonic/gin"
)

// respondError maps business-rule errors onto HTTP status codes and
// writes the usual {"error": ...} body.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrRestaurantNotFound),
		errors.Is(err, services.ErrMenuItemNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrItemUnavailable),
		errors.Is(err, services.ErrWrongRestaurant),
		errors.Is(err, services.ErrRestaurantClosed),
		errors.Is(err, services.ErrReviewNotAllowed),
		errors.Is(err, services.ErrOrderNotReady),
		errors.Is(err, lifecycle.ErrUnknownStatus),
		errors.Is(err, lifecycle.ErrNotPending):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrNotYourOrder),
		errors.Is(err, lifecycle.ErrNotPermitted):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrAlreadyAssigned):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
