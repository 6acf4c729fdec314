package routes

import (
	"github.com/kooooct/futoru/config"
	"github.com/kooooct/futoru/controllers"
	"github.com/kooooct/futoru/metrics"
	"github.com/kooooct/futoru/middlewares"
	"github.com/kooooct/futoru/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(env *config.Env) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger())

	metrics.Register()
	r.Use(metrics.Middleware())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	hub := services.NewRealtimeHub()
	mealCtl := controllers.NewMealController(hub, env.FallbackTargetCalories)
	dashCtl := controllers.NewDashboardController(env.FallbackTargetCalories)
	bmrCtl := controllers.NewBmrController(env.FallbackTargetCalories)
	rtCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Public simulation endpoint
	r.POST("/api/v1/simulations/calculate", bmrCtl.Calculate)

	// Protected routes
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", controllers.GetProfile)
		api.PUT("/user/profile", controllers.UpdateProfile)

		api.GET("/dashboard", dashCtl.Summary)

		api.GET("/foods", controllers.ListAvailableFoods)
		api.GET("/foods/mine", controllers.ListMyFoods)
		api.POST("/foods", controllers.CreateFood)

		api.GET("/recipes/:id/ingredients", controllers.ListIngredients)
		api.GET("/recipes/:id/calories", controllers.ExpandedCalories)

		api.POST("/meals/catalog", mealCtl.LogFromCatalog)
		api.POST("/meals/manual", mealCtl.LogManual)
		api.GET("/meals/today", mealCtl.Today)
		api.DELETE("/meals/:id", mealCtl.Delete)
		api.GET("/meals/export", controllers.ExportMealHistory)

		api.GET("/ws/dashboard", rtCtl.DashboardWS)
	}

	return r
}
