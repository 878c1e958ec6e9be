package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ledgerline-dev/ledgerline/internal/handlers"
	"github.com/ledgerline-dev/ledgerline/internal/middleware"
	"github.com/ledgerline-dev/ledgerline/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/ws", middleware.AuthMiddleware(), handlers.WebSocket)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
			auth.POST("/demo", handlers.DemoSignIn)
			auth.POST("/logout", handlers.Logout)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
		}

		accounts := api.Group("/accounts", middleware.AuthMiddleware(), middleware.DemoGuard())
		{
			accounts.GET("/fetch", handlers.FetchAccounts)
			accounts.POST("/add", handlers.AddAccount)
			accounts.PUT("/update/:id", handlers.UpdateAccount)
			accounts.DELETE("/delete/:id", handlers.DeleteAccount)
			accounts.GET("/history/:id", handlers.AccountHistory)
		}

		transactions := api.Group("/transactions", middleware.AuthMiddleware(), middleware.DemoGuard())
		{
			transactions.GET("/fetch", handlers.FetchTransactions)
			transactions.POST("/add", handlers.AddTransaction)
			transactions.PUT("/update/:id", handlers.UpdateTransaction)
			transactions.DELETE("/delete/:id", handlers.DeleteTransaction)
		}

		categories := api.Group("/categories", middleware.AuthMiddleware())
		{
			categories.GET("/fetch", handlers.FetchCategories)
			categories.POST("/expenses", handlers.CategoryExpenses)
		}

		dashboard := api.Group("/dashboard", middleware.AuthMiddleware())
		{
			dashboard.GET("/fetch", handlers.FetchDashboard)
		}

		user := api.Group("/user", middleware.AuthMiddleware(), middleware.DemoGuard())
		{
			user.GET("/fetch", handlers.FetchUser)
			user.PUT("/update", handlers.UpdateUser)
			user.DELETE("/delete", handlers.DeleteUser)
		}
	}

	return r
}
