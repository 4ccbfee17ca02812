package router

import (
	"shop-service/internal/service"
	"shop-service/internal/transport/http/handlers"
	"shop-service/internal/transport/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Deps struct {
	Auth    service.AuthService
	Catalog service.CatalogService
	Cart    service.CartService
	Orders  service.OrderService
	Log     *zap.Logger
}

func Router(d Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	authHandler := handlers.NewAuthHandler(d.Auth, d.Log)
	catalogHandler := handlers.NewCatalogHandler(d.Catalog, d.Log)
	cartHandler := handlers.NewCartHandler(d.Cart, d.Log)
	orderHandler := handlers.NewOrderHandler(d.Orders, d.Cart, d.Log)
	adminOrders := handlers.NewAdminOrderHandler(d.Orders, d.Log)
	adminCatalog := handlers.NewAdminCatalogHandler(d.Catalog, d.Log)
	adminUsers := handlers.NewAdminUserHandler(d.Auth, d.Log)

	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	// Публичная витрина
	api := r.Group("/api")
	{
		api.GET("/products", catalogHandler.ListProducts)
		api.GET("/products/:slug", catalogHandler.GetProduct)
		api.GET("/categories", catalogHandler.ListCategories)
		api.GET("/categories/:id", catalogHandler.GetCategory)
		api.GET("/brands", catalogHandler.ListBrands)
		api.GET("/brands/:id", catalogHandler.GetBrand)
	}

	// Корзина доступна и гостям (cookie), и авторизованным
	cart := api.Group("/cart", middleware.OptionalAuth(d.Auth))
	{
		cart.GET("", cartHandler.Get)
		cart.POST("/items", cartHandler.AddItem)
		cart.POST("/items/:productID/increment", cartHandler.IncrementItem)
		cart.POST("/items/:productID/decrement", cartHandler.DecrementItem)
		cart.PUT("/items/:productID", cartHandler.SetQuantity)
		cart.DELETE("/items/:productID", cartHandler.RemoveItem)
		cart.DELETE("", cartHandler.Clear)
	}

	// Личный кабинет
	authed := api.Group("", middleware.Auth(d.Auth, d.Log))
	{
		authed.POST("/checkout", orderHandler.Checkout)
		authed.GET("/my-orders", orderHandler.MyOrders)
		authed.GET("/my-orders/:id", orderHandler.MyOrder)
		authed.POST("/my-orders/:id/cancel", orderHandler.Cancel)
	}

	// Админка
	admin := r.Group("/admin", middleware.Auth(d.Auth, d.Log), middleware.RequireAdmin())
	{
		admin.GET("/orders", adminOrders.List)
		admin.GET("/orders/:id", adminOrders.Get)
		admin.DELETE("/orders/:id", adminOrders.Delete)
		admin.POST("/orders/:id/items", adminOrders.AddItem)
		admin.PATCH("/orders/:id/items/:itemID", adminOrders.UpdateItem)
		admin.DELETE("/orders/:id/items/:itemID", adminOrders.RemoveItem)
		admin.PATCH("/orders/:id/status", adminOrders.UpdateStatus)
		admin.PATCH("/orders/:id/payment-status", adminOrders.UpdatePaymentStatus)
		admin.GET("/stats", adminOrders.Stats)
		admin.GET("/badges", adminOrders.Badges)

		admin.POST("/products", adminCatalog.CreateProduct)
		admin.GET("/products", adminCatalog.ListProducts)
		admin.GET("/products/:id", adminCatalog.GetProduct)
		admin.PATCH("/products/:id", adminCatalog.UpdateProduct)
		admin.DELETE("/products/:id", adminCatalog.DeleteProduct)
		admin.POST("/products/bulk-delete", adminCatalog.BulkDeleteProducts)

		admin.POST("/categories", adminCatalog.CreateCategory)
		admin.GET("/categories", adminCatalog.ListCategories)
		admin.GET("/categories/:id", adminCatalog.GetCategory)
		admin.PATCH("/categories/:id", adminCatalog.UpdateCategory)
		admin.DELETE("/categories/:id", adminCatalog.DeleteCategory)
		admin.POST("/categories/bulk-delete", adminCatalog.BulkDeleteCategories)

		admin.POST("/brands", adminCatalog.CreateBrand)
		admin.GET("/brands", adminCatalog.ListBrands)
		admin.GET("/brands/:id", adminCatalog.GetBrand)
		admin.PATCH("/brands/:id", adminCatalog.UpdateBrand)
		admin.DELETE("/brands/:id", adminCatalog.DeleteBrand)
		admin.POST("/brands/bulk-delete", adminCatalog.BulkDeleteBrands)

		admin.GET("/users", adminUsers.List)
		admin.GET("/users/:id", adminUsers.Get)
		admin.PATCH("/users/:id", adminUsers.Update)
		admin.DELETE("/users/:id", adminUsers.Delete)
		admin.POST("/users/bulk-delete", adminUsers.BulkDelete)
	}

	return r
}
