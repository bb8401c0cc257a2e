package routes

import (
	authapi "inkwell-app/internal/api/auth"
	collectionsapi "inkwell-app/internal/api/collections"
	commentsapi "inkwell-app/internal/api/comments"
	contestsapi "inkwell-app/internal/api/contests"
	likesapi "inkwell-app/internal/api/likes"
	pennamesapi "inkwell-app/internal/api/pennames"
	"inkwell-app/internal/api/users"
	worksapi "inkwell-app/internal/api/works"
	"inkwell-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/uploads/audio/:id", worksapi.GetAudio)

	// ✅ Apply input sanitization to public routes only
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(), middleware.SanitizeAndCleanInputMiddleware())
	auth.GET("/me", users.GetCurrentUser)
	auth.GET("/users", users.ListUsers)
	auth.GET("/users/:id", users.GetUserByID)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.GET("/pen-names", pennamesapi.ListPenNames)
	auth.GET("/pen-names/:id", pennamesapi.GetPenNameByID)
	auth.POST("/pen-names", pennamesapi.CreatePenName)
	auth.PUT("/pen-names/:id", pennamesapi.UpdatePenName)
	auth.DELETE("/pen-names/:id", pennamesapi.DeletePenName)
	auth.GET("/users/:id/pen-names", pennamesapi.ListPenNamesByUser)
	auth.GET("/pen-names/:id/works", worksapi.ListWorksByPenName)

	auth.GET("/works", worksapi.ListWorks)
	auth.GET("/works/mine", worksapi.ListMyWorks)
	auth.GET("/works/:id", worksapi.GetWorkByID)
	auth.POST("/works", worksapi.CreateWork)
	auth.PUT("/works/:id", worksapi.UpdateWork)
	auth.DELETE("/works/:id", worksapi.DeleteWork)
	auth.GET("/users/:id/works", worksapi.ListWorksByUser)

	auth.GET("/collections", collectionsapi.ListCollections)
	auth.POST("/collections", collectionsapi.CreateCollection)
	auth.PUT("/collections/:id", collectionsapi.UpdateCollection)
	auth.DELETE("/collections/:id", collectionsapi.DeleteCollection)
	auth.POST("/collections/:id/works", collectionsapi.AddWorkToCollection)
	auth.DELETE("/collections/:id/works", collectionsapi.RemoveWorkFromCollection)
	auth.GET("/users/:id/collections", collectionsapi.ListCollectionsByUser)
	auth.GET("/works/:id/collections", collectionsapi.ListCollectionsByWork)

	auth.GET("/contests", contestsapi.ListContests)
	auth.POST("/contests", contestsapi.CreateContest)
	auth.PUT("/contests/:id", contestsapi.UpdateContest)
	auth.DELETE("/contests/:id", contestsapi.DeleteContest)
	auth.POST("/contests/:id/submissions", contestsapi.SubmitWork)
	auth.DELETE("/contests/:id/submissions", contestsapi.WithdrawWork)
	auth.POST("/contests/:id/publicize", contestsapi.PublicizeSubmissions)
	auth.GET("/users/:id/contests", contestsapi.ListContestsByUser)
	auth.GET("/works/:id/contests", contestsapi.ListContestsByWork)

	auth.POST("/likes", likesapi.CreateLike)
	auth.DELETE("/likes", likesapi.DeleteLike)
	auth.GET("/works/:id/likes", likesapi.ListLikesByWork)
	auth.GET("/users/:id/likes", likesapi.ListLikesByUser)

	auth.POST("/comments", commentsapi.CreateComment)
	auth.PUT("/comments/:id", commentsapi.UpdateComment)
	auth.DELETE("/comments/:id", commentsapi.DeleteComment)
	auth.GET("/works/:id/comments", commentsapi.ListCommentsByWork)
	auth.GET("/users/:id/comments", commentsapi.ListCommentsByUser)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.POST("/works/:id/audio", worksapi.GenerateAudio)
}
