package main

import (
	"log"

	"fieldscore/config"
	"fieldscore/database"
	"fieldscore/docs"
	"fieldscore/middleware"
	v1 "fieldscore/routes/v1"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title FieldScore API
// @version 1.0
// @description REST API for archery club management and field round scoring
// @BasePath /api/v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	config.Init()
	database.InitDB()
	database.InitRedis()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.ClientUrl},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Start background collection of runtime metrics
	middleware.UpdateSystemMetrics()

	docs.SwaggerInfo.BasePath = "/api/v1"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1.Register(r)

	if err := r.Run(":" + config.ApiPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
