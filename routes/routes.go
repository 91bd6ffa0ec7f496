package routes

import (
	"log"

	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// AWS-backed helpers are optional; endpoints that need them report
	// "not configured" instead of taking the service down.
	mailer, err := utils.NewMailer(cfg.AWSRegion, cfg.SESEmail)
	if err != nil {
		log.Printf("mailer disabled: %v", err)
		mailer = nil
	}
	uploader, err := utils.NewUploader(cfg.AWSRegion, cfg.S3Bucket, cfg.CloudFrontURL)
	if err != nil {
		log.Printf("uploads disabled: %v", err)
		uploader = nil
	}
	vision, err := services.NewVisionService(cfg.AWSRegion)
	if err != nil {
		log.Printf("image recognition disabled: %v", err)
		vision = nil
	}

	authSvc := services.NewAuthService(db, cfg.JWTSecret)
	userSvc := services.NewUserService(db, uploader)
	habitSvc := services.NewHabitService(db)
	progressSvc := services.NewProgressService(db)
	insightSvc := services.NewInsightService(cfg.HuggingFaceToken)

	authCtrl := controllers.NewAuthController(authSvc, userSvc, mailer, db)
	userCtrl := controllers.NewUserController(userSvc)
	habitCtrl := controllers.NewHabitController(habitSvc, vision, uploader)
	progressCtrl := controllers.NewProgressController(progressSvc, habitSvc)
	insightCtrl := controllers.NewInsightController(insightSvc, progressSvc, habitSvc, userSvc)

	r := gin.Default()

	// Public routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
		auth.POST("/forgot-password", authCtrl.ForgotPassword)
		auth.POST("/reset-password", authCtrl.ResetPassword)
	}
	r.GET("/preset-habits", habitCtrl.PresetHabits)

	// Protected routes
	authed := r.Group("/")
	authed.Use(middlewares.AuthMiddleware(db, cfg.JWTSecret))
	{
		authed.GET("/auth/me", authCtrl.Me)

		authed.GET("/user/profile", userCtrl.GetProfile)
		authed.PUT("/user/profile", userCtrl.UpdateProfile)

		authed.POST("/habits", habitCtrl.CreateHabit)
		authed.GET("/habits", habitCtrl.ListHabits)
		authed.POST("/habits/suggest", habitCtrl.SuggestFromPhoto)
		authed.GET("/habits/:id", habitCtrl.GetHabit)
		authed.PUT("/habits/:id", habitCtrl.UpdateHabit)
		authed.DELETE("/habits/:id", habitCtrl.DeleteHabit)

		authed.GET("/progress", progressCtrl.GetProgress)
		authed.GET("/progress/impact", progressCtrl.GetImpact)

		authed.POST("/ai/insights", insightCtrl.GetInsights)
	}

	return r
}
