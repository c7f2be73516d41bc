package controllers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts every authenticated endpoint on v1 behind auth
func RegisterRoutes(v1 *gin.RouterGroup, auth gin.HandlerFunc) {
	users := v1.Group("/users", auth)
	{
		users.POST("", CreateUser)
		users.GET("/me", GetMyProfile)
		users.PUT("/me", UpdateMyProfile)
	}

	orders := v1.Group("/orders", auth)
	{
		orders.GET("", ListOrders)
		orders.POST("", PlaceOrder)
		orders.GET("/resume", ResumeOrder)
		orders.GET("/:id", GetOrder)
		orders.POST("/:id/step", SaveFunnelStep)
		orders.POST("/:id/payment", SavePayment)
		orders.POST("/:id/payment/confirm", ConfirmPayment)
		orders.POST("/:id/assign", AssignWriter)
		orders.POST("/:id/bids", PlaceBid)
		orders.POST("/:id/revisions", RequestRevision)
		orders.POST("/:id/rating", RateWriter)
		orders.DELETE("/:id/files/:fileId", DeleteOrderFile)
	}

	writers := v1.Group("/writers", auth)
	{
		writers.GET("/preferred", PreferredWriters)
		writers.POST("/invitations", InviteWriter)
	}

	uploads := v1.Group("/uploads", auth)
	{
		uploads.POST("", UploadDocument)
		uploads.DELETE("", DiscardDocument)
		uploads.GET("/url", DocumentURL)
	}

	reference := v1.Group("/reference")
	{
		reference.GET("/grammar-quiz", auth, GrammarQuiz)
		reference.GET("/:kind", ListReference)
	}
}
