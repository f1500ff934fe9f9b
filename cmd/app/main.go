package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripdesk/cmd/fx/cache_fx"
	"tripdesk/cmd/fx/controllers_fx"
	"tripdesk/cmd/fx/db_fx"
	"tripdesk/cmd/fx/images_fx"
	"tripdesk/cmd/fx/llm_fx"
	"tripdesk/cmd/fx/photos_fx"
	"tripdesk/cmd/fx/providers_fx"
	"tripdesk/cmd/fx/trips_fx"
	"tripdesk/internal/api/controllers"
	"tripdesk/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		llm_fx.Module,
		cache_fx.Module,
		providers_fx.Module,
		photos_fx.Module,
		images_fx.Module,
		trips_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8000"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	tripsController *controllers.TripsController,
	photosController *controllers.PhotosController,
	authController *controllers.AuthController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, tripsController, photosController, authController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripsController *controllers.TripsController,
	photosController *controllers.PhotosController,
	authController *controllers.AuthController) {

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "DSC Seller API - Online", "status": "ok", "version": "0.1.0"})
	})
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "tripdesk online"})
	})

	r.POST("/upload", tripsController.Upload)
	r.POST("/extract/:tripId", tripsController.Extract)

	tripsGroup := r.Group("/trips")
	tripsGroup.GET("/:tripId", tripsController.GetTrip)
	tripsGroup.POST("/simulate", tripsController.Simulate)

	r.POST("/auth/token", authController.Token)

	photosGroup := r.Group("/photos")
	photosGroup.GET("", photosController.ListPhotos)
	photosGroup.GET("/lookup", photosController.LookupPhoto)

	curatorGroup := photosGroup.Group("")
	curatorGroup.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("curator"))
	curatorGroup.POST("", photosController.CreatePhoto)
	curatorGroup.POST("/analyze", photosController.AnalyzePhoto)
}
