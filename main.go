package main

import (
	"errors"
	"net/http"

	"github.com/eatupnow/eatupnow-api/config"
	"github.com/eatupnow/eatupnow-api/handlers"
	"github.com/eatupnow/eatupnow-api/middleware"
	"github.com/eatupnow/eatupnow-api/models"
	"github.com/eatupnow/eatupnow-api/routes"
	"github.com/eatupnow/eatupnow-api/services"
	"github.com/eatupnow/eatupnow-api/store"
	"github.com/eatupnow/eatupnow-api/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load configuration: %v", err)
	}

	log := utils.NewLogger(cfg.LogLevel)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.OpenDatabase(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	st := store.New(db)
	if err := st.AutoMigrate(); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	log.WithField("engine", cfg.DBEngine).Info("database connected and migrated")

	if cfg.Seed {
		if err := seedAdmin(st, log); err != nil {
			log.Fatalf("failed to seed database: %v", err)
		}
	}

	auth := middleware.NewAuthenticator(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	orderSvc := services.NewOrderService(st)
	userSvc := services.NewUserService(st)
	reviewSvc := services.NewReviewService(st)
	restaurantSvc := services.NewRestaurantService(st)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "EatUpNow API",
		})
	})
	r.Static("/uploads", cfg.UploadDir)

	routes.SetupRoutes(r, routes.Deps{
		Auth:     auth,
		AuthH:    &handlers.AuthHandler{Store: st, Auth: auth, Log: log},
		Public:   &handlers.PublicHandler{Store: st},
		Orders:   &handlers.OrderHandler{Store: st, Orders: orderSvc},
		Reviews:  &handlers.ReviewHandler{Store: st, Reviews: reviewSvc},
		Owner:    &handlers.OwnerHandler{Store: st, Orders: orderSvc},
		Delivery: &handlers.DeliveryHandler{Store: st, Auth: auth, Orders: orderSvc},
		Admin:    &handlers.AdminHandler{Store: st, Users: userSvc, Restaurants: restaurantSvc, Orders: orderSvc, Log: log},
		Upload:   &handlers.UploadHandler{UploadDir: cfg.UploadDir},
	})

	log.Infof("server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// seedAdmin creates the initial admin account when none exists yet.
func seedAdmin(st *store.Store, log *logrus.Logger) error {
	const adminEmail = "admin@eatupnow.com"

	_, err := st.UserByEmail(adminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Name:         "Admin User",
		Email:        adminEmail,
		Phone:        "1234567890",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	if err := st.CreateUser(&admin); err != nil {
		return err
	}
	log.WithField("email", adminEmail).Info("seeded admin account")
	return nil
}
