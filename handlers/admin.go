package handlers

import (
	"net/http"

	"github.com/eatupnow/eatupnow-api/models"
	"github.com/eatupnow/eatupnow-api/services"
	"github.com/eatupnow/eatupnow-api/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AdminHandler serves platform management: users, role assignment,
// restaurants (including cascade deletion), orders and agents.
type AdminHandler struct {
	Store       *store.Store
	Users       *services.UserService
	Restaurants *services.RestaurantService
	Orders      *services.OrderService
	Log         *logrus.Logger
}

// ListUsers returns all accounts, optionally filtered by role.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	role := models.Role(c.Query("role"))
	if role != "" && !role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
		return
	}
	users, err := h.Store.Users(role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// DeleteUser removes an account.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.Users.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

type UpdateUserRoleRequest struct {
	Role         models.Role `json:"role" binding:"required"`
	RestaurantID *uint       `json:"restaurant_id"`
}

// UpdateUserRole changes a user's role and restaurant assignment. When a
// restaurant is supplied the role is forced to owner and the previous
// owner, if any, is demoted.
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
		return
	}

	user, err := h.Users.AssignRole(id, req.Role, req.RestaurantID)
	if err != nil {
		respondError(c, err)
		return
	}
	h.Log.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("role updated")
	c.JSON(http.StatusOK, gin.H{"message": "Role updated", "user": user})
}

// ListOrders returns all orders on the platform.
func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, err := h.Store.AllOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// UpdateOrderStatus sets a status on any order on the platform.
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.Orders.UpdateStatus(id, models.RoleAdmin, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "order": order})
}

// ListOrdersByUser returns one user's orders.
func (h *AdminHandler) ListOrdersByUser(c *gin.Context) {
	id, ok := parseID(c, "userId")
	if !ok {
		return
	}
	orders, err := h.Store.OrdersByUser(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// ListRestaurants returns every restaurant, active or not.
func (h *AdminHandler) ListRestaurants(c *gin.Context) {
	restaurants, err := h.Store.AllRestaurants()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list restaurants"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": restaurants})
}

type CreateRestaurantRequest struct {
	Name         string `json:"name" binding:"required"`
	City         string `json:"city" binding:"required"`
	Address      string `json:"address" binding:"required"`
	Cuisine      string `json:"cuisine"`
	Thumbnail    string `json:"thumbnail"`
	DeliveryTime int    `json:"delivery_time"`
}

// CreateRestaurant registers a new restaurant.
func (h *AdminHandler) CreateRestaurant(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deliveryTime := req.DeliveryTime
	if deliveryTime == 0 {
		deliveryTime = 30
	}
	restaurant := models.Restaurant{
		Name:         req.Name,
		City:         req.City,
		Address:      req.Address,
		Cuisine:      req.Cuisine,
		Thumbnail:    req.Thumbnail,
		DeliveryTime: deliveryTime,
		IsActive:     true,
	}
	if err := h.Store.CreateRestaurant(&restaurant); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Restaurant created", "restaurant": restaurant})
}

// UpdateRestaurant applies a partial update to any restaurant.
func (h *AdminHandler) UpdateRestaurant(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	restaurant, err := h.Store.RestaurantByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
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

// DeleteRestaurant removes a restaurant and cascades to its menu items,
// orders, reviews and owner link.
func (h *AdminHandler) DeleteRestaurant(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.Restaurants.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	h.Log.WithField("restaurant_id", id).Info("restaurant deleted with cascade")
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant deleted"})
}

// ListAgents returns all delivery agents.
func (h *AdminHandler) ListAgents(c *gin.Context) {
	agents, err := h.Store.Agents()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list agents"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(agents), "agents": agents})
}
