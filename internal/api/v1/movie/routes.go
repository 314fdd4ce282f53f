package movie

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	movies := router.Group("/movies")
	movies.GET("", ListMovies)
	movies.POST("", CreateMovie)
	movies.GET("/:id", GetMovie)
	movies.GET("/:id/shows", GetMovieShows)
	movies.PUT("/:id", UpdateMovie)
	movies.DELETE("/:id", DeleteMovie)
}
