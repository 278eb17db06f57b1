package routes

import (
	"github.com/eatupnow/eatupnow-api/handlers"
	"github.com/eatupnow/eatupnow-api/middleware"
	"github.com/eatupnow/eatupnow-api/models"

	"github.com/gin-gonic/gin"
)

// Deps collects everything the route table needs.
type Deps struct {
	Auth     *middleware.Authenticator
	AuthH    *handlers.AuthHandler
	Public   *handlers.PublicHandler
	Orders   *handlers.OrderHandler
	Reviews  *handlers.ReviewHandler
	Owner    *handlers.OwnerHandler
	Delivery *handlers.DeliveryHandler
	Admin    *handlers.AdminHandler
	Upload   *handlers.UploadHandler
}

func SetupRoutes(r *gin.Engine, d Deps) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", d.AuthH.Register)
		public.POST("/auth/login", d.AuthH.Login)
		public.POST("/auth/refresh", d.AuthH.Refresh)

		public.GET("/restaurants", d.Public.ListRestaurants)
		public.GET("/restaurants/:id", d.Public.GetRestaurant)
		public.GET("/restaurants/:id/reviews", d.Public.ListRestaurantReviews)

		public.GET("/menu/restaurant/:id", d.Public.ListMenu)
		public.GET("/menu/:itemId", d.Public.GetMenuItem)

		public.POST("/delivery/register", d.Delivery.Register)
		public.POST("/delivery/login", d.Delivery.Login)
	}

	// ── Authenticated user routes ──────────────────────────────────
	auth := r.Group("/api")
	auth.Use(d.Auth.AuthRequired(), middleware.UserRequired())
	{
		auth.GET("/auth/me", d.AuthH.Me)
		auth.PUT("/auth/me", d.AuthH.UpdateMe)
		auth.PUT("/auth/me/password", d.AuthH.ChangePassword)

		auth.POST("/orders", d.Orders.Create)
		auth.GET("/orders", d.Orders.ListMine)
		auth.GET("/orders/:id", d.Orders.Get)
		auth.PUT("/orders/:id/cancel", d.Orders.Cancel)

		auth.POST("/reviews", d.Reviews.Create)
		auth.GET("/reviews/me", d.Reviews.ListMine)
	}

	// ── Owner routes ───────────────────────────────────────────────
	owner := r.Group("/api/owner")
	owner.Use(d.Auth.AuthRequired(), middleware.RoleRequired(models.RoleOwner))
	{
		owner.GET("/restaurant", d.Owner.GetRestaurant)
		owner.PUT("/restaurant", d.Owner.UpdateRestaurant)

		owner.GET("/menu", d.Owner.ListMenu)
		owner.POST("/menu", d.Owner.AddMenuItem)
		owner.PUT("/menu/:itemId", d.Owner.UpdateMenuItem)
		owner.DELETE("/menu/:itemId", d.Owner.DeleteMenuItem)

		owner.GET("/orders", d.Owner.ListOrders)
		owner.PUT("/orders/:id/status", d.Owner.UpdateOrderStatus)
		owner.GET("/stats", d.Owner.Stats)
	}

	// ── Delivery agent routes ──────────────────────────────────────
	delivery := r.Group("/api/delivery")
	delivery.Use(d.Auth.AuthRequired(), middleware.AgentRequired())
	{
		delivery.GET("/orders/pending", d.Delivery.ListPending)
		delivery.POST("/orders/:id/accept", d.Delivery.Accept)
		delivery.PUT("/orders/:id/status", d.Delivery.UpdateOrderStatus)
		delivery.PUT("/availability", d.Delivery.SetAvailability)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(d.Auth.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/users", d.Admin.ListUsers)
		admin.DELETE("/users/:id", d.Admin.DeleteUser)
		admin.PUT("/users/:id/role", d.Admin.UpdateUserRole)

		admin.GET("/orders", d.Admin.ListOrders)
		admin.PUT("/orders/:id/status", d.Admin.UpdateOrderStatus)
		admin.GET("/orders/user/:userId", d.Admin.ListOrdersByUser)

		admin.GET("/restaurants", d.Admin.ListRestaurants)
		admin.POST("/restaurants", d.Admin.CreateRestaurant)
		admin.PATCH("/restaurants/:id", d.Admin.UpdateRestaurant)
		admin.DELETE("/restaurants/:id", d.Admin.DeleteRestaurant)

		admin.GET("/agents", d.Admin.ListAgents)

		admin.POST("/upload/image", d.Upload.UploadImage)
		admin.DELETE("/upload/image/:type/:filename", d.Upload.DeleteImage)
	}
}
