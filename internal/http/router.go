package api

import (
	"log"
	stdhttp "net/http"

	intconfig "fleetadmin/internal/config"
	h "fleetadmin/internal/http/handlers"
	"fleetadmin/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.ConfigureAuth(env)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	requireAuth := middleware.Auth(h.ParseToken)
	canWrite := middleware.RequireRoles("admin", "manager")
	adminOnly := middleware.RequireRoles("admin")

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.GET("/me", requireAuth, h.Me)

		// Vehicles
		vehicles := api.Group("/vehicles", requireAuth)
		vehicles.GET("", h.GetVehicles)
		vehicles.GET("/:id", h.GetVehicle)
		vehicles.POST("", canWrite, h.CreateVehicle)
		vehicles.POST("/import", canWrite, h.ImportVehicles)
		vehicles.PUT("/:id", canWrite, h.UpdateVehicle)
		vehicles.DELETE("/:id", canWrite, h.DeleteVehicle)

		// Maintenance history
		maintenance := api.Group("/maintenance", requireAuth)
		maintenance.GET("", h.GetMaintenanceRecords)
		maintenance.POST("", canWrite, h.CreateMaintenanceRecord)
		maintenance.PUT("/:id", canWrite, h.UpdateMaintenanceRecord)
		maintenance.DELETE("/:id", canWrite, h.DeleteMaintenanceRecord)

		// Drivers
		drivers := api.Group("/drivers", requireAuth)
		drivers.GET("", h.GetDrivers)
		drivers.GET("/:id", h.GetDriver)
		drivers.POST("", canWrite, h.CreateDriver)
		drivers.PUT("/:id", canWrite, h.UpdateDriver)
		drivers.DELETE("/:id", canWrite, h.DeleteDriver)

		// Fuel
		fuel := api.Group("/fuel", requireAuth)
		fuel.GET("", h.GetFuelRecords)
		fuel.GET("/:id", h.GetFuelRecord)
		fuel.POST("", canWrite, h.CreateFuelRecord)
		fuel.PUT("/:id", canWrite, h.UpdateFuelRecord)
		fuel.DELETE("/:id", canWrite, h.DeleteFuelRecord)

		// Users
		users := api.Group("/users", requireAuth, adminOnly)
		users.GET("", h.GetUsers)
		users.POST("", h.CreateUser)

		// Upcoming services
		upcoming := api.Group("/upcoming-services", requireAuth)
		mountUpcomingServices(upcoming)
	}

	h.SetRouter(r)
	return r
}

func mountUpcomingServices(g *gin.RouterGroup) {
	g.GET("", h.GetUpcomingServices)
	g.GET("/stats", h.GetUpcomingServiceStats)
	g.GET("/export", h.ExportUpcomingServices)
	g.GET("/columns", h.GetServiceColumns)
	g.POST("/columns/reset", h.ResetServiceColumns)
	g.POST("/columns/:name/toggle", h.ToggleServiceColumn)
}
