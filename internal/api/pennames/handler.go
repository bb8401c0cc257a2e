package pennames

import (
	"errors"
	"net/http"
	"time"

	"inkwell-app/database"
	"inkwell-app/internal/api/respond"
	"inkwell-app/internal/app/http/middleware"
	"inkwell-app/internal/domain/access"
	"inkwell-app/internal/domain/patch"
	"inkwell-app/internal/domain/pennames"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreatePenNameRequest struct {
	Name string `json:"name" binding:"required,min=3,max=50"`
}

type UpdatePenNameRequest struct {
	Name *string `json:"name" binding:"omitempty,min=3,max=50"`
	// Absent: keep. Null: re-hide the identity. Value: reveal.
	RevealDate patch.Field[time.Time] `json:"reveal_date"`
}

// POST /pen-names
func CreatePenName(c *gin.Context) {
	viewer, ok := middleware.MustViewer(c)
	if !ok {
		return
	}

	var req CreatePenNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := pennames.PenName{
		UserID: viewer.UserID,
		Name:   req.Name,
	}
	if err := database.DB.Create(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Pen name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create pen name"})
		return
	}

	c.JSON(http.StatusCreated, pennames.Redact(p, nil, 0, viewer))
}

// GET /pen-names/:id
func GetPenNameByID(c *gin.Context) {
	viewer, ok := middleware.MustViewer(c)
	if !ok {
		return
	}

	var p pennames.PenName
	if err := database.DB.Preload("User").First(&p, "id = ?", c.Param("id")).Error; err != nil {
		respond.Error(c, err)
		return
	}

	count, err := workCount(database.DB, p.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load pen name"})
		return
	}

	c.JSON(http.StatusOK, pennames.Redact(p, p.User, count, viewer))
}

// GET /pen-names
func ListPenNames(c *gin.Context) {
	viewer, ok := middleware.MustViewer(c)
	if !ok {
		return
	}
	listRedacted(c, viewer, database.DB.Preload("User"))
}

// GET /users/:id/pen-names
func ListPenNamesByUser(c *gin.Context) {
	viewer, ok := middleware.MustViewer(c)
	if !ok {
		return
	}
	listRedacted(c, viewer, database.DB.Preload("User").Where("user_id = ?", c.Param("id")))
}

func listRedacted(c *gin.Context, viewer access.Viewer, q *gorm.DB) {
	var rows []pennames.PenName
	if err := q.Order("creation_date ASC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load pen names"})
		return
	}

	counts, err := workCounts(database.DB, rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load pen names"})
		return
	}

	out := make([]pennames.Profile, 0, len(rows))
	for _, p := range rows {
		out = append(out, pennames.Redact(p, p.User, counts[p.ID], viewer))
	}
	c.JSON(http.StatusOK, out)
}

// PUT /pen-names/:id
func UpdatePenName(c *gin.Context) {
	viewer, ok := middleware.MustViewer(c)
	if !ok {
		return
	}

	var req UpdatePenNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var updated pennames.PenName
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var p pennames.PenName
		if err := tx.First(&p, "id = ?", c.Param("id")).Error; err != nil {
			return err
		}
		if !viewer.Owns(p.UserID) {
			return access.ErrForbidden
		}

		updates := map[string]interface{}{}
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.RevealDate.Present {
			updates["reveal_date"] = req.RevealDate.Value
		}
		if len(updates) > 0 {
			if err := tx.Model(&pennames.PenName{}).
				Where("id = ?", p.ID).
				Updates(updates).Error; err != nil {
				return err
			}
		}

		return tx.First(&updated, "id = ?", p.ID).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Pen name already exists"})
			return
		}
		respond.Error(c, err)
		return
	}

	count, err := workCount(database.DB, updated.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load pen name"})
		return
	}
	c.JSON(http.StatusOK, pennames.Redact(updated, nil, count, viewer))
}

// DELETE /pen-names/:id
func DeletePenName(c *gin.Context) {
	viewer, ok := middleware.MustViewer(c)
	if !ok {
		return
	}

	var p pennames.PenName
	if err := database.DB.First(&p, "id = ?", c.Param("id")).Error; err != nil {
		respond.Error(c, err)
		return
	}
	if !viewer.Owns(p.UserID) {
		respond.Error(c, access.ErrForbidden)
		return
	}

	if err := database.DB.Delete(&pennames.PenName{}, "id = ?", p.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete pen name"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
