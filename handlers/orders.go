package handlers

import (
	"net/http"

	"github.com/eatupnow/eatupnow-api/lifecycle"
	"github.com/eatupnow/eatupnow-api/middleware"
	"github.com/eatupnow/eatupnow-api/models"
	"github.com/eatupnow/eatupnow-api/services"
	"github.com/eatupnow/eatupnow-api/store"

	"github.com/gin-gonic/gin"
)

// OrderHandler serves the customer-facing order surface.
type OrderHandler struct {
	Store  *store.Store
	Orders *services.OrderService
}

type PlaceOrderRequest struct {
	RestaurantID    uint   `json:"restaurant_id" binding:"required"`
	DeliveryAddress string `json:"delivery_address" binding:"required"`
	PaymentMethod   string `json:"payment_method"`
	Items           []struct {
		MenuItemID uint `json:"menu_item_id" binding:"required"`
		Quantity   int  `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1"`
}

// Create places a new order for the authenticated user.
func (h *OrderHandler) Create(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment := req.PaymentMethod
	if payment == "" {
		payment = "cash"
	}

	lines := make([]services.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, services.OrderLine{MenuItemID: item.MenuItemID, Quantity: item.Quantity})
	}

	order, err := h.Orders.Place(middleware.GetSubjectID(c), req.RestaurantID, req.DeliveryAddress, payment, lines)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
}

// ListMine returns all orders for the authenticated user.
func (h *OrderHandler) ListMine(c *gin.Context) {
	orders, err := h.Store.OrdersByUser(middleware.GetSubjectID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// Get returns a single order. Customers may only see their own; admins
// may see any.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	order, err := h.Store.OrderByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.UserID != middleware.GetSubjectID(c) && !middleware.GetRole(c).CanManagePlatform() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to view this order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// Cancel cancels the caller's pending order.
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	order, err := h.Orders.Cancel(id, middleware.GetSubjectID(c), middleware.GetRole(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully", "order": order})
}

// ReviewHandler serves review creation and the caller's review history.
type ReviewHandler struct {
	Store   *store.Store
	Reviews *services.ReviewService
}

type CreateReviewRequest struct {
	RestaurantID uint   `json:"restaurant_id" binding:"required"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Comment      string `json:"comment"`
}

// Create inserts a review; requires a prior delivered order from the
// restaurant.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	review, err := h.Reviews.Create(middleware.GetSubjectID(c), req.RestaurantID, req.Rating, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Review added", "review": review})
}

// ListMine returns all reviews written by the authenticated user.
func (h *ReviewHandler) ListMine(c *gin.Context) {
	reviews, err := h.Store.ReviewsByUser(middleware.GetSubjectID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reviews"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(reviews), "reviews": reviews})
}

// statusFromQuery validates an optional ?status= filter value,
// responding 400 itself when the value is unknown.
func statusFromQuery(c *gin.Context) (models.OrderStatus, bool) {
	v := c.Query("status")
	if v == "" {
		return "", true
	}
	s := models.OrderStatus(v)
	if !lifecycle.IsKnown(s) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order status"})
		return "", false
	}
	return s, true
}
