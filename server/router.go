package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"jobcast/infrastructure/configuration"
	httpHandler "jobcast/interfaces/http"
	"jobcast/interfaces/middleware"
	"jobcast/usecase"
)

func InitiateRouter(
	jobHandler httpHandler.IJobHandler,
	castHandler httpHandler.ICastHandler,
	reactionHandler httpHandler.IReactionHandler,
	feedHandler httpHandler.IFeedHandler,
	authHandler httpHandler.IAuthHandler,
	paymentHandler httpHandler.IPaymentHandler,
	webhookHandler httpHandler.IWebhookHandler,
	authUsecase usecase.IAuthUsecase,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     configuration.C.App.CORS,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("api")

	jobs := api.Group("/jobs")
	{
		jobs.GET("", jobHandler.ListJobs)
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("/:id", jobHandler.GetJob)
		jobs.POST("/:id", jobHandler.JobAction)
	}

	api.POST("/casts", castHandler.PublishCast)
	api.DELETE("/casts", castHandler.DeleteCast)

	api.POST("/reactions", reactionHandler.PublishReaction)
	api.DELETE("/reactions", reactionHandler.DeleteReaction)

	api.GET("/feed", feedHandler.GetFeed)

	api.POST("/auth/user", authHandler.AuthenticateUser)
	api.GET("/auth/session", middleware.Session(authUsecase), authHandler.GetSession)

	api.POST("/verify-payment", paymentHandler.VerifyPayment)

	api.POST("/webhooks/neynar", webhookHandler.HandleWebhook)
	api.GET("/webhooks/neynar", webhookHandler.Health)

	return router
}
