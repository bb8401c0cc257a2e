package likes

import (
	"errors"
	"net/http"

	"inkwell-app/database"
	"inkwell-app/internal/api/respond"
	"inkwell-app/internal/app/http/middleware"
	"inkwell-app/internal/domain/engagement"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LikeRequest struct {
	WorkID string `json:"work_id" binding:"required"`
}

// POST /likes
func CreateLike(c *gin.Context) {
	viewer, ok := middleware.MustViewer(c)
	if !ok {
		return
	}

	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	like := engagement.Like{
		UserID: viewer.UserID,
		WorkID: req.WorkID,
	}
	if err := database.DB.Create(&like).Error; err != nil {
		// Liking twice is a no-op.
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			respond.Error(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DELETE /likes
func DeleteLike(c *gin.Context) {
	viewer, ok := middleware.MustViewer(c)
	if !ok {
		return
	}

	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := database.DB.Delete(&engagement.Like{},
		"user_id = ? AND work_id = ?", viewer.UserID, req.WorkID).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove like"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET /works/:id/likes
func ListLikesByWork(c *gin.Context) {
	if _, ok := middleware.MustViewer(c); !ok {
		return
	}

	var rows []engagement.Like
	if err := database.DB.Where("work_id = ?", c.Param("id")).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load likes"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /users/:id/likes
func ListLikesByUser(c *gin.Context) {
	if _, ok := middleware.MustViewer(c); !ok {
		return
	}

	var rows []engagement.Like
	if err := database.DB.Where("user_id = ?", c.Param("id")).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load likes"})
		return
	}
	c.JSON(http.StatusOK, rows)
}
