package handlers

import (
	"net/http"

	"github.com/eatupnow/eatupnow-api/middleware"
	"github.com/eatupnow/eatupnow-api/models"
	"github.com/eatupnow/eatupnow-api/services"
	"github.com/eatupnow/eatupnow-api/store"

	"github.com/gin-gonic/gin"
)

// OwnerHandler serves the restaurant-owner dashboard: the owner's
// restaurant, menu, orders and stats.
type OwnerHandler struct {
	Store  *store.Store
	Orders *services.OrderService
}

// restaurant loads the restaurant assigned to the calling owner,
// responding 404 itself when none is.
func (h *OwnerHandler) restaurant(c *gin.Context) (*models.Restaurant, bool) {
	user, err := h.Store.UserByID(middleware.GetSubjectID(c))
	if err != nil || user.RestaurantID == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No restaurant assigned to this owner"})
		return nil, false
	}
	restaurant, err := h.Store.RestaurantByID(*user.RestaurantID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return nil, false
	}
	return restaurant, true
}

// GetRestaurant returns the owner's restaurant.
func (h *OwnerHandler) GetRestaurant(c *gin.Context) {
	restaurant, ok := h.restaurant(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// UpdateRestaurant applies a partial update to the owner's restaurant.
func (h *OwnerHandler) UpdateRestaurant(c *gin.Context) {
	restaurant, ok := h.restaurant(c)
	if !ok {
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Rating and ownership are derived; owners cannot set them directly.
	allowed := map[string]bool{
		"name": true, "city": true, "address": true, "cuisine": true,
		"thumbnail": true, "delivery_time": true, "is_active": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if err := h.Store.UpdateRestaurantFields(restaurant, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update restaurant"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant updated", "restaurant": restaurant})
}

// ListMenu returns every item on the owner's menu, available or not.
func (h *OwnerHandler) ListMenu(c *gin.Context) {
	restaurant, ok := h.restaurant(c)
	if !ok {
		return
	}
	items, err := h.Store.MenuItems(restaurant.ID, store.MenuFilter{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list menu"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu": items})
}

type CreateMenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	IsVeg       bool    `json:"is_veg"`
}

// AddMenuItem adds a new item to the owner's menu.
func (h *OwnerHandler) AddMenuItem(c *gin.Context) {
	restaurant, ok := h.restaurant(c)
	if !ok {
		return
	}

	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.MenuItem{
		RestaurantID: restaurant.ID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		Image:        req.Image,
		IsVeg:        req.IsVeg,
		IsAvailable:  true,
	}
	if err := h.Store.CreateMenuItem(&item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "item": item})
}

// menuItem loads a menu item and verifies it belongs to the owner's
// restaurant.
func (h *OwnerHandler) menuItem(c *gin.Context) (*models.MenuItem, bool) {
	restaurant, ok := h.restaurant(c)
	if !ok {
		return nil, false
	}
	id, ok := parseID(c, "itemId")
	if !ok {
		return nil, false
	}
	item, err := h.Store.MenuItemByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return nil, false
	}
	if item.RestaurantID != restaurant.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only manage your own restaurant's menu items"})
		return nil, false
	}
	return item, true
}

// UpdateMenuItem applies a partial update to one of the owner's items.
func (h *OwnerHandler) UpdateMenuItem(c *gin.Context) {
	item, ok := h.menuItem(c)
	if !ok {
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	allowed := map[string]bool{
		"name": true, "description": true, "price": true, "category": true,
		"image": true, "is_veg": true, "is_available": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if err := h.Store.UpdateMenuItemFields(item, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

// DeleteMenuItem removes one of the owner's items.
func (h *OwnerHandler) DeleteMenuItem(c *gin.Context) {
	item, ok := h.menuItem(c)
	if !ok {
		return
	}
	if err := h.Store.DeleteMenuItem(item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}

// ListOrders returns the owner's restaurant orders, optionally filtered
// by status.
func (h *OwnerHandler) ListOrders(c *gin.Context) {
	restaurant, ok := h.restaurant(c)
	if !ok {
		return
	}
	status, ok := statusFromQuery(c)
	if !ok {
		return
	}
	orders, err := h.Store.OrdersByRestaurant(restaurant.ID, status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus sets a status on one of the restaurant's orders.
func (h *OwnerHandler) UpdateOrderStatus(c *gin.Context) {
	restaurant, ok := h.restaurant(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	order, err := h.Store.OrderByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.RestaurantID != restaurant.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only update your own restaurant's orders"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Orders.UpdateStatus(order.ID, middleware.GetRole(c), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "order": updated})
}

// Stats summarizes the owner's restaurant: order counts, menu size and
// total revenue.
func (h *OwnerHandler) Stats(c *gin.Context) {
	restaurant, ok := h.restaurant(c)
	if !ok {
		return
	}
	orders, err := h.Store.OrdersByRestaurant(restaurant.ID, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}
	menuCount, err := h.Store.CountMenuItems(restaurant.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count menu items"})
		return
	}

	var pending int
	var revenue float64
	for _, o := range orders {
		if o.Status == models.StatusPending {
			pending++
		}
		revenue += o.TotalAmount
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant_id":    restaurant.ID,
		"total_orders":     len(orders),
		"pending_orders":   pending,
		"total_menu_items": menuCount,
		"total_revenue":    revenue,
	})
}
