package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/eatupnow/eatupnow-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentRegister(t *testing.T) {
	app := newTestApp(t)

	payload := map[string]interface{}{
		"name":           "Ravi",
		"email":          "ravi@example.com",
		"phone":          "555-0200",
		"password":       "secret123",
		"vehicle_type":   "Bike",
		"vehicle_number": "MH-12-3456",
	}

	w := app.do(t, http.MethodPost, "/api/delivery/register", "", payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	agent := decode(t, w)["agent"].(map[string]interface{})
	assert.Equal(t, "ravi@example.com", agent["email"])
	assert.Equal(t, true, agent["is_available"])

	// Duplicate email conflicts even under a different phone.
	payload["phone"] = "555-0201"
	w = app.do(t, http.MethodPost, "/api/delivery/register", "", payload)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAgentLogin(t *testing.T) {
	app := newTestApp(t)
	app.createAgent(t, "agent@example.com")

	w := app.do(t, http.MethodPost, "/api/delivery/login", "", map[string]interface{}{
		"email":    "agent@example.com",
		"password": "password",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	tokens := decode(t, w)["tokens"].(map[string]interface{})
	assert.NotEmpty(t, tokens["access_token"])

	w = app.do(t, http.MethodPost, "/api/delivery/login", "", map[string]interface{}{
		"email":    "agent@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAgentRoutesRejectUserTokens(t *testing.T) {
	app := newTestApp(t)
	u := app.createUser(t, "customer@example.com", "password1", models.RoleCustomer)

	w := app.do(t, http.MethodGet, "/api/delivery/orders/pending", app.userToken(t, u), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUserRoutesRejectAgentTokens(t *testing.T) {
	app := newTestApp(t)
	agent := app.createAgent(t, "agent@example.com")
	token := app.agentToken(t, agent)

	// Agent IDs are a separate identity space; an agent token must not
	// reach routes that resolve the subject as a user.
	w := app.do(t, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = app.do(t, http.MethodPost, "/api/orders", token, map[string]interface{}{
		"restaurant_id":    1,
		"delivery_address": "42 Main St",
		"items":            []map[string]interface{}{{"menu_item_id": 1, "quantity": 1}},
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAgentAcceptFlow(t *testing.T) {
	app := newTestApp(t)
	agent := app.createAgent(t, "agent@example.com")
	rival := app.createAgent(t, "rival@example.com")
	u := app.createUser(t, "customer@example.com", "password1", models.RoleCustomer)
	r := app.createRestaurant(t, "Spice Villa", "Mumbai", "Indian")

	order := &models.Order{
		UserID:          u.ID,
		RestaurantID:    r.ID,
		TotalAmount:     10,
		DeliveryAddress: "42 Main St",
		PaymentMethod:   "cash",
		Status:          models.StatusPreparing,
	}
	require.NoError(t, app.store.CreateOrder(order))

	token := app.agentToken(t, agent)

	// The order shows up in the pending list before it is claimed.
	w := app.do(t, http.MethodGet, "/api/delivery/orders/pending", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["count"])

	w = app.do(t, http.MethodPost, fmt.Sprintf("/api/delivery/orders/%d/accept", order.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	got, err := app.store.OrderByID(order.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DeliveryAgentID)
	assert.Equal(t, agent.ID, *got.DeliveryAgentID)
	assert.Equal(t, models.StatusOutForDelivery, got.Status)

	// A second agent cannot claim the same order.
	w = app.do(t, http.MethodPost, fmt.Sprintf("/api/delivery/orders/%d/accept", order.ID), app.agentToken(t, rival), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// And it is gone from the pending list.
	w = app.do(t, http.MethodGet, "/api/delivery/orders/pending", token, nil)
	assert.EqualValues(t, 0, decode(t, w)["count"])
}

func TestAgentUpdateOrderStatus(t *testing.T) {
	app := newTestApp(t)
	agent := app.createAgent(t, "agent@example.com")
	rival := app.createAgent(t, "rival@example.com")
	u := app.createUser(t, "customer@example.com", "password1", models.RoleCustomer)
	r := app.createRestaurant(t, "Spice Villa", "Mumbai", "Indian")

	order := &models.Order{
		UserID:          u.ID,
		RestaurantID:    r.ID,
		DeliveryAgentID: &agent.ID,
		TotalAmount:     10,
		DeliveryAddress: "42 Main St",
		PaymentMethod:   "cash",
		Status:          models.StatusOutForDelivery,
	}
	require.NoError(t, app.store.CreateOrder(order))
	path := fmt.Sprintf("/api/delivery/orders/%d/status", order.ID)

	// Only the assigned agent may touch the order.
	w := app.do(t, http.MethodPut, path, app.agentToken(t, rival), map[string]interface{}{
		"status": "delivered",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = app.do(t, http.MethodPut, path, app.agentToken(t, agent), map[string]interface{}{
		"status": "delivered",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	got, err := app.store.OrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, got.Status)
}

func TestSetAvailability(t *testing.T) {
	app := newTestApp(t)
	agent := app.createAgent(t, "agent@example.com")
	token := app.agentToken(t, agent)

	w := app.do(t, http.MethodPut, "/api/delivery/availability", token, map[string]interface{}{
		"is_available": false,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	got, err := app.store.AgentByID(agent.ID)
	require.NoError(t, err)
	assert.False(t, got.IsAvailable)

	// Missing field fails binding.
	w = app.do(t, http.MethodPut, "/api/delivery/availability", token, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
