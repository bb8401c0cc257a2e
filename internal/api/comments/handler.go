package comments

import (
	"net/http"

	"inkwell-app/database"
	"inkwell-app/internal/api/respond"
	"inkwell-app/internal/app/http/middleware"
	"inkwell-app/internal/domain/access"
	"inkwell-app/internal/domain/engagement"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateCommentRequest struct {
	WorkID  string `json:"work_id" binding:"required"`
	Content string `json:"content" binding:"required,min=1"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1"`
}

// POST /comments
func CreateComment(c *gin.Context) {
	viewer, ok := middleware.MustViewer(c)
	if !ok {
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment := engagement.Comment{
		ID:      uuid.NewString(),
		UserID:  viewer.UserID,
		WorkID:  req.WorkID,
		Content: req.Content,
	}
	if err := database.DB.Create(&comment).Error; err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// PUT /comments/:id
func UpdateComment(c *gin.Context) {
	viewer, ok := middleware.MustViewer(c)
	if !ok {
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var updated engagement.Comment
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var comment engagement.Comment
		if err := tx.First(&comment, "id = ?", c.Param("id")).Error; err != nil {
			return err
		}
		if !viewer.Owns(comment.UserID) {
			return access.ErrForbidden
		}

		if err := tx.Model(&engagement.Comment{}).
			Where("id = ?", comment.ID).
			Update("content", req.Content).Error; err != nil {
			return err
		}
		return tx.First(&updated, "id = ?", comment.ID).Error
	})

	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DELETE /comments/:id
func DeleteComment(c *gin.Context) {
	viewer, ok := middleware.MustViewer(c)
	if !ok {
		return
	}

	var comment engagement.Comment
	if err := database.DB.First(&comment, "id = ?", c.Param("id")).Error; err != nil {
		respond.Error(c, err)
		return
	}
	if !viewer.Owns(comment.UserID) {
		respond.Error(c, access.ErrForbidden)
		return
	}

	if err := database.DB.Delete(&engagement.Comment{}, "id = ?", comment.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// GET /works/:id/comments
func ListCommentsByWork(c *gin.Context) {
	if _, ok := middleware.MustViewer(c); !ok {
		return
	}

	var rows []engagement.Comment
	err := database.DB.
		Preload("User").
		Where("work_id = ?", c.Param("id")).
		Order("creation_date DESC").
		Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load comments"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /users/:id/comments
func ListCommentsByUser(c *gin.Context) {
	if _, ok := middleware.MustViewer(c); !ok {
		return
	}

	var rows []engagement.Comment
	err := database.DB.
		Where("user_id = ?", c.Param("id")).
		Order("creation_date DESC").
		Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load comments"})
		return
	}
	c.JSON(http.StatusOK, rows)
}
