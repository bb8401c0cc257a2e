package users

import (
	"net/http"

	"inkwell-app/database"
	"inkwell-app/internal/api/respond"
	"inkwell-app/internal/app/http/middleware"
	"inkwell-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// GET /me
func GetCurrentUser(c *gin.Context) {
	viewer, ok := middleware.MustViewer(c)
	if !ok {
		return
	}

	var user users.User
	if err := database.DB.First(&user, "id = ?", viewer.UserID).Error; err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GET /users/:id
func GetUserByID(c *gin.Context) {
	if _, ok := middleware.MustViewer(c); !ok {
		return
	}

	var user users.User
	if err := database.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GET /users
func ListUsers(c *gin.Context) {
	if _, ok := middleware.MustViewer(c); !ok {
		return
	}

	var all []users.User
	if err := database.DB.Order("creation_date ASC").Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	c.JSON(http.StatusOK, all)
}
