package genre

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	genres := router.Group("/genres")
	genres.GET("", ListGenres)
	genres.POST("", CreateGenre)
	genres.GET("/:id", GetGenre)
	genres.PUT("/:id", UpdateGenre)
	genres.DELETE("/:id", DeleteGenre)
}
