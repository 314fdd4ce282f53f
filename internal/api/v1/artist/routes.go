package artist

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	artists := router.Group("/artists")
	artists.GET("", ListArtists)
	artists.POST("", CreateArtist)
	artists.GET("/:id", GetArtist)
	artists.PUT("/:id", UpdateArtist)
	artists.DELETE("/:id", DeleteArtist)
}
