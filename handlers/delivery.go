package handlers

import (
	"net/http"

	"github.com/eatupnow/eatupnow-api/middleware"
	"github.com/eatupnow/eatupnow-api/models"
	"github.com/eatupnow/eatupnow-api/services"
	"github.com/eatupnow/eatupnow-api/store"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// DeliveryHandler serves the delivery-agent surface: registration,
// login, claiming orders and availability.
type DeliveryHandler struct {
	Store  *store.Store
	Auth   *middleware.Authenticator
	Orders *services.OrderService
}

type AgentRegisterRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required"`
	Password      string `json:"password" binding:"required,min=6"`
	VehicleType   string `json:"vehicle_type" binding:"required"`
	VehicleNumber string `json:"vehicle_number" binding:"required"`
}

// Register creates a new delivery agent account.
func (h *DeliveryHandler) Register(c *gin.Context) {
	var req AgentRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	taken, err := h.Store.AgentEmailOrPhoneTaken(req.Email, req.Phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check registration"})
		return
	}
	if taken {
		c.JSON(http.StatusConflict, gin.H{"error": "Email or phone already registered"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	agent := models.DeliveryAgent{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		PasswordHash:  string(hash),
		VehicleType:   req.VehicleType,
		VehicleNumber: req.VehicleNumber,
		IsActive:      true,
		IsAvailable:   true,
	}
	if err := h.Store.CreateAgent(&agent); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create agent"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Agent account created successfully", "agent": agent})
}

// Login authenticates a delivery agent and returns a token pair.
func (h *DeliveryHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	agent, err := h.Store.AgentByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(agent.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password"})
		return
	}
	if !agent.IsActive {
		c.JSON(http.StatusForbidden, gin.H{"error": "Agent account is inactive"})
		return
	}

	pair, err := h.Auth.IssuePair(agent.ID, agent.Email, models.RoleDelivery, middleware.SubjectAgent)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate tokens"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "tokens": pair, "agent": agent})
}

// ListPending returns unassigned orders in preparing state, ready to be
// claimed.
func (h *DeliveryHandler) ListPending(c *gin.Context) {
	orders, err := h.Store.UnassignedPreparingOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// Accept claims an order for the calling agent and moves it to
// out_for_delivery.
func (h *DeliveryHandler) Accept(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	order, err := h.Orders.Accept(id, middleware.GetSubjectID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order accepted successfully", "order": order})
}

// UpdateOrderStatus lets the agent progress an order they carry.
func (h *DeliveryHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	order, err := h.Store.OrderByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	agentID := middleware.GetSubjectID(c)
	if order.DeliveryAgentID == nil || *order.DeliveryAgentID != agentID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not the assigned agent for this order"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Orders.UpdateStatus(order.ID, models.RoleDelivery, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "order": updated})
}

type AvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

// SetAvailability toggles whether the agent is open to new orders.
func (h *DeliveryHandler) SetAvailability(c *gin.Context) {
	agent, err := h.Store.AgentByID(middleware.GetSubjectID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Agent not found"})
		return
	}

	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	agent.IsAvailable = *req.IsAvailable
	if err := h.Store.SaveAgent(agent); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update availability"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability updated", "agent": agent})
}
