package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/mytestspam8-prog/africash/internal/domain/port/core"
	"github.com/mytestspam8-prog/africash/internal/infrastructure/adapter/api/handler"
	"github.com/mytestspam8-prog/africash/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	walletHandler *handler.WalletHandler,
	requireAuth gin.HandlerFunc,
) {
	api := router.Group("/api")
	{
		// Public routes
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)

		// Routes behind the session guard
		protected := api.Group("", requireAuth)
		{
			protected.GET("/user", authHandler.Me)
			protected.POST("/activate", walletHandler.Activate)
			protected.POST("/earn", walletHandler.Earn)
			protected.POST("/withdraw", walletHandler.Withdraw)
			protected.GET("/transactions", walletHandler.Transactions)
			protected.GET("/withdrawals", walletHandler.Withdrawals)
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
