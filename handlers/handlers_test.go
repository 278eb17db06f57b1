package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eatupnow/eatupnow-api/handlers"
	"github.com/eatupnow/eatupnow-api/middleware"
	"github.com/eatupnow/eatupnow-api/models"
	"github.com/eatupnow/eatupnow-api/routes"
	"github.com/eatupnow/eatupnow-api/services"
	"github.com/eatupnow/eatupnow-api/store"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type testApp struct {
	router *gin.Engine
	store  *store.Store
	auth   *middleware.Authenticator
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")

	st := store.New(db)
	require.NoError(t, st.AutoMigrate(), "failed to migrate test database")

	auth := middleware.NewAuthenticator("test-secret", 30*time.Minute, 24*time.Hour)
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	orderSvc := services.NewOrderService(st)
	userSvc := services.NewUserService(st)
	reviewSvc := services.NewReviewService(st)
	restaurantSvc := services.NewRestaurantService(st)

	r := gin.New()
	routes.SetupRoutes(r, routes.Deps{
		Auth:     auth,
		AuthH:    &handlers.AuthHandler{Store: st, Auth: auth, Log: log},
		Public:   &handlers.PublicHandler{Store: st},
		Orders:   &handlers.OrderHandler{Store: st, Orders: orderSvc},
		Reviews:  &handlers.ReviewHandler{Store: st, Reviews: reviewSvc},
		Owner:    &handlers.OwnerHandler{Store: st, Orders: orderSvc},
		Delivery: &handlers.DeliveryHandler{Store: st, Auth: auth, Orders: orderSvc},
		Admin:    &handlers.AdminHandler{Store: st, Users: userSvc, Restaurants: restaurantSvc, Orders: orderSvc, Log: log},
		Upload:   &handlers.UploadHandler{UploadDir: t.TempDir()},
	})

	return &testApp{router: r, store: st, auth: auth}
}

// do performs a request with an optional bearer token and JSON body.
func (a *testApp) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (a *testApp) createUser(t *testing.T, email, password string, role models.Role) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, a.store.CreateUser(u))
	return u
}

func (a *testApp) userToken(t *testing.T, u *models.User) string {
	t.Helper()
	pair, err := a.auth.IssuePair(u.ID, u.Email, u.Role, middleware.SubjectUser)
	require.NoError(t, err)
	return pair.AccessToken
}

func (a *testApp) createAgent(t *testing.T, email string) *models.DeliveryAgent {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)
	agent := &models.DeliveryAgent{
		Name:          "Test Agent",
		Email:         email,
		Phone:         email, // unique per test agent
		PasswordHash:  string(hash),
		VehicleType:   "Bike",
		VehicleNumber: "AB-123",
		IsActive:      true,
		IsAvailable:   true,
	}
	require.NoError(t, a.store.CreateAgent(agent))
	return agent
}

func (a *testApp) agentToken(t *testing.T, agent *models.DeliveryAgent) string {
	t.Helper()
	pair, err := a.auth.IssuePair(agent.ID, agent.Email, models.RoleDelivery, middleware.SubjectAgent)
	require.NoError(t, err)
	return pair.AccessToken
}

func (a *testApp) createRestaurant(t *testing.T, name, city, cuisine string) *models.Restaurant {
	t.Helper()
	r := &models.Restaurant{
		Name:     name,
		City:     city,
		Address:  "123 Test St",
		Cuisine:  cuisine,
		IsActive: true,
	}
	require.NoError(t, a.store.CreateRestaurant(r))
	return r
}

func (a *testApp) createMenuItem(t *testing.T, restaurantID uint, name string, price float64, available bool) *models.MenuItem {
	t.Helper()
	m := &models.MenuItem{
		RestaurantID: restaurantID,
		Name:         name,
		Price:        price,
		Category:     "Main Course",
		IsAvailable:  available,
	}
	require.NoError(t, a.store.CreateMenuItem(m))
	return m
}
