package user

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	users.POST("", SignUp)
	users.GET("", ListUsers)
	users.GET("/login", Login)
	users.GET("/token", GetUserByToken)
	users.PUT("/logout/:sessionId", Logout)
	users.GET("/:id", GetUser)
	users.PUT("/:id", UpdateUser)
	users.DELETE("/:id", DeleteUser)
	users.GET("/:id/coupons", GetUserCoupons)
}
