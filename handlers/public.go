package handlers

import (
	"net/http"
	"strconv"

	"github.com/eatupnow/eatupnow-api/store"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the unauthenticated catalog surface: restaurant
// discovery, menus and reviews.
type PublicHandler struct {
	Store *store.Store
}

const maxPageSize = 100

// ListRestaurants returns active restaurants with optional filters and
// pagination (skip/limit, limit capped at 100).
func (h *PublicHandler) ListRestaurants(c *gin.Context) {
	filter := store.RestaurantFilter{
		City:    c.Query("city"),
		Cuisine: c.Query("cuisine"),
		Search:  c.Query("search"),
		Limit:   50,
	}
	if v := c.Query("min_rating"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || r < 0 || r > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "min_rating must be between 0 and 5"})
			return
		}
		filter.MinRating = r
	}
	if v := c.Query("skip"); v != "" {
		if skip, err := strconv.Atoi(v); err == nil && skip > 0 {
			filter.Skip = skip
		}
	}
	if v := c.Query("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}

	restaurants, err := h.Store.Restaurants(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list restaurants"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": restaurants})
}

// GetRestaurant returns a single restaurant
func (h *PublicHandler) GetRestaurant(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	restaurant, err := h.Store.RestaurantByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// ListMenu returns a restaurant's menu with optional category/veg
// filters. Unavailable items are hidden unless is_available=false.
func (h *PublicHandler) ListMenu(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if _, err := h.Store.RestaurantByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	filter := store.MenuFilter{
		Category:      c.Query("category"),
		OnlyAvailable: c.DefaultQuery("is_available", "true") == "true",
	}
	if v := c.Query("is_veg"); v != "" {
		isVeg := v == "true"
		filter.IsVeg = &isVeg
	}

	items, err := h.Store.MenuItems(id, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list menu"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu": items})
}

// GetMenuItem returns a single menu item
func (h *PublicHandler) GetMenuItem(c *gin.Context) {
	id, ok := parseID(c, "itemId")
	if !ok {
		return
	}
	item, err := h.Store.MenuItemByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// ListRestaurantReviews returns all reviews for a restaurant.
func (h *PublicHandler) ListRestaurantReviews(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	reviews, err := h.Store.ReviewsByRestaurant(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reviews"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(reviews), "reviews": reviews})
}

// parseID reads a positive numeric path parameter, responding 400 itself
// when the value is malformed.
func parseID(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(v), true
}
