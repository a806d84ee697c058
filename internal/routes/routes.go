package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"dukani_back_end/internal/handlers/admin"
	"dukani_back_end/internal/handlers/product"
	"dukani_back_end/internal/handlers/user"
	"dukani_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-RateLimit-Limit", "X-RateLimit-Remaining"},
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	api.Use(middleware.APIRateLimit())

	// --- Catalogue (public) ---
	api.GET("/products", product.ListProducts)
	api.GET("/products/search", product.SearchProducts)
	api.GET("/products/:id", product.GetProduct)
	api.GET("/categories", product.ListCategories)

	// --- Auth ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", middleware.RegisterRateLimit(), user.Register)
		auth.POST("/login", middleware.LoginRateLimit(), user.Login)
		auth.GET("/oauth/:provider", user.BeginAuth)
		auth.GET("/oauth/:provider/callback", user.CallbackAuth)

		me := auth.Group("")
		me.Use(middleware.AuthRequired())
		{
			me.GET("/me", user.Me)
			me.PUT("/profile", user.UpdateProfile)
			me.PUT("/password", user.ChangePassword)
		}
	}

	// --- Panier (authentifié) ---
	cartGroup := api.Group("/cart")
	cartGroup.Use(middleware.AuthRequired())
	{
		cartGroup.GET("", user.GetCart)
		cartGroup.GET("/ws", user.CartWebSocket)
		cartGroup.POST("/add", middleware.CartRateLimit(), user.AddToCart)
		cartGroup.PUT("/:productId", middleware.CartRateLimit(), user.UpdateCartItem)
		cartGroup.DELETE("/:productId", middleware.CartRateLimit(), user.RemoveFromCart)
		cartGroup.DELETE("", user.ClearCart)
	}

	// --- Tunnel de commande (authentifié) ---
	checkoutGroup := api.Group("/checkout")
	checkoutGroup.Use(middleware.AuthRequired())
	{
		checkoutGroup.GET("", user.GetCheckout)
		checkoutGroup.POST("/continue", user.ContinueCheckout)
		checkoutGroup.POST("/back", user.BackCheckout)
		checkoutGroup.POST("/retry", user.RetryCheckout)
		checkoutGroup.POST("/submit", user.SubmitCheckout)
	}

	// --- Commandes (authentifié) ---
	orders := api.Group("/orders")
	orders.Use(middleware.AuthRequired())
	{
		orders.GET("", user.MyOrders)
		orders.GET("/:id", user.GetOrder)
	}

	// --- Back-office (admin) ---
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.AuthRequired(), middleware.RequireAdmin)
	{
		adminGroup.POST("/manage", admin.ManageAdmins)

		adminGroup.POST("/products", product.CreateProduct)
		adminGroup.PUT("/products/:id", product.UpdateProduct)
		adminGroup.DELETE("/products/:id", product.DeleteProduct)
		adminGroup.POST("/products/:id/image", product.UploadImage)
		adminGroup.GET("/products/:id/image/signed-url", product.SignedImageURL)

		adminGroup.GET("/orders", admin.ListAllOrders)
		adminGroup.PUT("/orders/:id/status", admin.UpdateOrderStatus)

		adminGroup.GET("/audit-logs", admin.GetAuditLogs)
	}
}
