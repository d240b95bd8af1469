package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/alfon96/askenzo-api/database"
	"github.com/alfon96/askenzo-api/handlers"
	"github.com/alfon96/askenzo-api/models"
	"github.com/alfon96/askenzo-api/services"
)

func main() {
	connStr := os.Getenv("DB_URL")
	if connStr == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found or failed to load it:", err)
		}
		connStr = os.Getenv("DB_URL")
	}

	db, err := database.Connect(connStr)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logrus.WithError(err).Error("failed to close database")
		}
	}()

	images, err := services.NewImageService(context.Background())
	if err != nil {
		log.Fatal("Failed to initialize image storage: ", err)
	}

	r := setupRouter(db, images)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func setupRouter(db *gorm.DB, images services.ImageService) *gin.Engine {
	tourists := services.NewTouristService(db)
	hosts := services.NewHostService(db)
	experiences := services.NewExperienceService(db)
	discoveries := services.NewDiscoveryService(db)
	popups := services.NewPopupService(db)
	likes := services.NewLikeService(db)

	auth := &handlers.Authorizer{Tourists: tourists, Hosts: hosts}
	th := &handlers.TouristHandler{Tourists: tourists, Experiences: experiences, Likes: likes}
	hh := &handlers.HostHandler{Hosts: hosts}
	eh := &handlers.ExperienceHandler{Experiences: experiences}
	dh := &handlers.DiscoveryHandler{Discoveries: discoveries}
	ph := &handlers.PopupHandler{Popups: popups}
	ih := &handlers.ImageHandler{Images: images}
	ah := &handlers.AdminHandler{}

	admin := auth.RequireRoles(models.RoleAdmin)
	anyRole := auth.RequireRoles(models.RoleAdmin, models.RoleHost, models.RoleTourist)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Benvenuto nelle API"})
	})

	tourist := r.Group("/tourist")
	tourist.POST("/signup", th.Signup)
	tourist.POST("/signin", th.Signin)
	touristOnly := auth.RequireRoles(models.RoleTourist)
	tourist.GET("", touristOnly, th.GetMyData)
	tourist.PATCH("", touristOnly, th.UpdateMyInfo)
	tourist.PATCH("/update_password", touristOnly, th.UpdateMyPassword)
	tourist.DELETE("", touristOnly, th.DeleteMyAccount)
	tourist.GET("/likes_list", touristOnly, th.GetMyLikes)
	tourist.POST("/toggle_like", touristOnly, th.ToggleLike)

	host := r.Group("/host")
	host.POST("/signup", hh.Signup)
	host.POST("/signin", hh.Signin)
	hostOnly := auth.RequireRoles(models.RoleHost)
	host.GET("", hostOnly, hh.GetMyData)
	host.PATCH("", hostOnly, hh.UpdateMyInfo)
	host.PATCH("/update_password", hostOnly, hh.UpdateMyPassword)
	host.DELETE("", hostOnly, hh.DeleteMyAccount)

	experience := r.Group("/experiences")
	experience.GET("", anyRole, eh.Get)
	experience.POST("/new", admin, eh.Create)
	experience.PATCH("/update", admin, eh.Update)
	experience.DELETE("", admin, eh.Delete)

	discovery := r.Group("/discoveries")
	discovery.GET("", anyRole, dh.Get)
	discovery.GET("/distance", anyRole, dh.Distance)
	discovery.POST("", admin, dh.Create)
	discovery.PATCH("", admin, dh.Update)
	discovery.DELETE("", admin, dh.Delete)

	popup := r.Group("/popup")
	popup.GET("", anyRole, ph.Get)
	popup.POST("", admin, ph.Create)
	popup.PATCH("", admin, ph.Update)
	popup.DELETE("", admin, ph.Delete)

	image := r.Group("/images")
	image.POST("", anyRole, ih.Upload)
	image.PATCH("", anyRole, ih.Replace)
	image.DELETE("", anyRole, ih.Delete)

	r.POST("/admin/signin", ah.Signin)

	return r
}
