package services

import (
	"testing"

	"github.com/eatupnow/eatupnow-api/models"
	"github.com/eatupnow/eatupnow-api/store"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")

	st := store.New(db)
	require.NoError(t, st.AutoMigrate(), "failed to migrate test database")
	return st
}

func createUser(t *testing.T, st *store.Store, email string, role models.Role) *models.User {
	t.Helper()
	u := &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "x",
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, st.CreateUser(u))
	return u
}

func createRestaurant(t *testing.T, st *store.Store, name string) *models.Restaurant {
	t.Helper()
	r := &models.Restaurant{
		Name:     name,
		City:     "New York",
		Address:  "123 Test St",
		Cuisine:  "Indian",
		IsActive: true,
	}
	require.NoError(t, st.CreateRestaurant(r))
	return r
}

func createMenuItem(t *testing.T, st *store.Store, restaurantID uint, name string, price float64, available bool) *models.MenuItem {
	t.Helper()
	m := &models.MenuItem{
		RestaurantID: restaurantID,
		Name:         name,
		Price:        price,
		Category:     "Main Course",
		IsAvailable:  available,
	}
	require.NoError(t, st.CreateMenuItem(m))
	return m
}

func createOrder(t *testing.T, st *store.Store, userID, restaurantID uint, status models.OrderStatus) *models.Order {
	t.Helper()
	o := &models.Order{
		UserID:          userID,
		RestaurantID:    restaurantID,
		TotalAmount:     10,
		DeliveryAddress: "456 User Ave",
		PaymentMethod:   "cash",
		Status:          status,
	}
	require.NoError(t, st.CreateOrder(o))
	return o
}
