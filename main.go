package main

import (
	"os"
	"strings"
	"time"

	"github.com/burkibooks/burki-api/controllers"
	"github.com/burkibooks/burki-api/initializers"
	"github.com/burkibooks/burki-api/middlewares"
	"github.com/burkibooks/burki-api/routes"
	"github.com/burkibooks/burki-api/stores"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func main() {
	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(initializers.GetEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	adminConfig := controllers.AdminConfig{
		Email:        os.Getenv("ADMIN_EMAIL"),
		Password:     os.Getenv("ADMIN_PASSWORD"),
		PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:    initializers.GetEnv("JWT_SECRET", "fallback-dev-secret"),
		SecureCookie: gin.Mode() == gin.ReleaseMode,
	}
	requireAdmin := middlewares.RequireAdmin(adminConfig.JWTSecret)

	db := initializers.DB
	productStore := stores.NewGormProductStore(db)
	bucket := initializers.GetEnv("S3_BUCKET", "burki-books")
	uploader := controllers.NewS3Uploader(bucket)

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server,
		controllers.NewAuthController(adminConfig),
		controllers.NewMigrateController(productStore, uploader, bucket),
		controllers.NewSeedController(productStore),
		requireAdmin)
	routes.ProductRoutes(server, controllers.NewProductController(productStore), requireAdmin)
	routes.CartRoutes(server, controllers.NewCartController(stores.NewGormCartStore(db)))
	routes.OrderRoutes(server, controllers.NewOrderController(stores.NewGormOrderStore(db)), requireAdmin)
	routes.MessageRoutes(server, controllers.NewMessageController(stores.NewGormMessageStore(db), os.Getenv("ADMIN_NOTIFY_EMAIL")), requireAdmin)
	routes.SettingsRoutes(server, controllers.NewSettingsController(stores.NewGormSettingsStore(db)), requireAdmin)
	routes.UploadRoutes(server, controllers.NewUploadController(uploader, adminConfig.JWTSecret))

	server.Run()
}
