package routes

import (
	"github.com/burkibooks/burki-api/controllers"
	"github.com/gin-gonic/gin"
)

func UploadRoutes(server *gin.Engine, upload *controllers.UploadController) {
	// Admin is checked inside the handler: receipt uploads are public,
	// product uploads are not.
	server.POST("/upload", upload.UploadImage)
}
