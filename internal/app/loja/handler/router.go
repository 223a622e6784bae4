package handler

import (
	"net/http"
	"time"

	"lojamoz/pkg/logger"
	"lojamoz/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes wires the full HTTP surface: public catalog and
// checkout, shopper routes behind the user token and the console
// behind the admin token.
func SetupRoutes(
	catalogHandler *CatalogHandler,
	userHandler *UserHandler,
	favoriteHandler *FavoriteHandler,
	orderHandler *OrderHandler,
	adminHandler *AdminHandler,
	authMiddleware *AuthMiddleware,
	allowedOrigins []string,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.GinLoggerMiddleware())
	router.Use(metrics.GinPrometheusMiddleware("loja"))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "loja",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/status", catalogHandler.Status)

	// Public catalog and checkout.
	router.GET("/categories", catalogHandler.GetCategories)
	router.GET("/products", catalogHandler.GetProducts)
	router.GET("/products/:id", catalogHandler.GetProduct)
	router.POST("/orders", authMiddleware.OptionalUser(), orderHandler.CreateOrder)
	router.GET("/orders/:id", orderHandler.GetOrder)

	// Shopper accounts.
	users := router.Group("/users")
	{
		users.POST("/signup", userHandler.Signup)
		users.POST("/login", userHandler.Login)

		users.GET("/profile", authMiddleware.RequireUser(), userHandler.GetProfile)
		users.PUT("/profile", authMiddleware.RequireUser(), userHandler.UpdateProfile)
		users.GET("/orders", authMiddleware.RequireUser(), orderHandler.ListUserOrders)
	}

	// Wishlist, user token only.
	favorites := router.Group("/favorites")
	favorites.Use(authMiddleware.RequireUser())
	{
		favorites.GET("", favoriteHandler.ListFavorites)
		favorites.POST("", favoriteHandler.AddFavorite)
		favorites.DELETE("/:produto_id", favoriteHandler.RemoveFavorite)
		favorites.GET("/:produto_id/status", favoriteHandler.CheckFavorite)
	}

	// Console.
	admin := router.Group("/admin")
	{
		admin.POST("/login", adminHandler.Login)

		protected := admin.Group("")
		protected.Use(authMiddleware.RequireAdmin())
		{
			protected.GET("/verify", adminHandler.Verify)

			protected.POST("/products", catalogHandler.CreateProduct)
			protected.PUT("/products/:id", catalogHandler.UpdateProduct)
			protected.DELETE("/products/:id", catalogHandler.DeleteProduct)
			protected.POST("/categories", catalogHandler.CreateCategory)
			protected.POST("/sync", catalogHandler.SyncExternal)
			protected.POST("/sync-portugues", catalogHandler.SyncPortuguese)

			protected.GET("/orders", orderHandler.ListOrders)
			protected.PUT("/orders/:id/status", orderHandler.UpdateOrderStatus)
			protected.GET("/orders/statistics", orderHandler.GetStatistics)

			protected.GET("/users", userHandler.ListUsers)
			protected.PUT("/users/:id/active", userHandler.SetUserActive)
		}
	}

	return router
}
