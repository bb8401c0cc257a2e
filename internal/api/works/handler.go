package works

import (
	"net/http"
	"time"

	"inkwell-app/database"
	"inkwell-app/internal/api/respond"
	"inkwell-app/internal/app/http/middleware"
	"inkwell-app/internal/domain/access"
	"inkwell-app/internal/domain/patch"
	"inkwell-app/internal/domain/pennames"
	"inkwell-app/internal/domain/works"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateWorkRequest struct {
	PenNameID string  `json:"pen_name_id" binding:"required"`
	Title     *string `json:"title"`
}

type UpdateWorkRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Summary *string `json:"summary"`
	// Tri-state: absent keeps the date, null clears it (un-teaser /
	// un-publish), a value sets it.
	TeaserDate      patch.Field[time.Time] `json:"teaser_date"`
	PublicationDate patch.Field[time.Time] `json:"publication_date"`
}

// POST /works
func CreateWork(c *gin.Context) {
	viewer, ok := middleware.MustViewer(c)
	if !ok {
		return
	}

	var req CreateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var penName pennames.PenName
	err := database.DB.First(&penName, "id = ? AND user_id = ?", req.PenNameID, viewer.UserID).Error
	if err != nil {
		// Writing under a pen name you do not own is forbidden whether
		// or not the pen name exists.
		respond.Error(c, access.ErrForbidden)
		return
	}

	w := works.Work{
		PenNameID:      penName.ID,
		Title:          req.Title,
		LastEditedDate: time.Now(),
	}
	if err := database.DB.Create(&w).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create work"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": w.ID})
}

// GET /works/:id
func GetWorkByID(c *gin.Context) {
	viewer, ok := middleware.MustViewer(c)
	if !ok {
		return
	}

	var w works.Work
	if err := workWithPenName(database.DB).First(&w, "works.id = ?", c.Param("id")).Error; err != nil {
		respond.Error(c, err)
		return
	}

	visible, vis := works.ApplyVisibility(w, viewer)
	if vis == works.Invisible {
		respond.Error(c, access.ErrNotFound)
		return
	}

	c.JSON(http.StatusOK, visible)
}

// GET /works?ordered_by=last_edited|creation|publication
func ListWorks(c *gin.Context) {
	viewer, ok := middleware.MustViewer(c)
	if !ok {
		return
	}

	order := "works.last_edited_date DESC"
	switch c.Query("ordered_by") {
	case "creation":
		order = "works.creation_date DESC"
	case "publication":
		// Unpublished rows sort after every published one, not first
		// as a bare DESC over NULLs would put them.
		order = "works.publication_date DESC NULLS LAST"
	}

	listVisible(c, viewer, workWithPenName(database.DB).Order(order))
}

// GET /works/mine
func ListMyWorks(c *gin.Context) {
	viewer, ok := middleware.MustViewer(c)
	if !ok {
		return
	}
	listVisible(c, viewer, workWithPenName(database.DB).
		Where("pen_names.user_id = ?", viewer.UserID).
		Order("works.last_edited_date DESC"))
}

// GET /pen-names/:id/works
func ListWorksByPenName(c *gin.Context) {
	viewer, ok := middleware.MustViewer(c)
	if !ok {
		return
	}
	listVisible(c, viewer, workWithPenName(database.DB).
		Where("works.pen_name_id = ?", c.Param("id")).
		Order("works.last_edited_date DESC"))
}

// GET /users/:id/works
//
// Non-owners only get works written under revealed pen names; listing
// by user must not link a user to their anonymous pen names.
func ListWorksByUser(c *gin.Context) {
	viewer, ok := middleware.MustViewer(c)
	if !ok {
		return
	}

	q := workWithPenName(database.DB).
		Where("pen_names.user_id = ?", c.Param("id")).
		Order("works.last_edited_date DESC")
	if !viewer.Owns(c.Param("id")) {
		q = q.Where("pen_names.reveal_date IS NOT NULL")
	}

	listVisible(c, viewer, q)
}

func listVisible(c *gin.Context, viewer access.Viewer, q *gorm.DB) {
	var rows []works.Work
	if err := q.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load works"})
		return
	}

	out := make([]works.Work, 0, len(rows))
	for _, w := range rows {
		visible, vis := works.ApplyVisibility(w, viewer)
		if vis == works.Invisible {
			continue
		}
		out = append(out, visible)
	}
	c.JSON(http.StatusOK, out)
}

// PUT /works/:id
func UpdateWork(c *gin.Context) {
	viewer, ok := middleware.MustViewer(c)
	if !ok {
		return
	}

	var req UpdateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var w works.Work
		if err := workWithPenName(tx).First(&w, "works.id = ?", c.Param("id")).Error; err != nil {
			return err
		}
		if w.PenName == nil || !viewer.Owns(w.PenName.UserID) {
			return access.ErrForbidden
		}

		// Hiding a teased work needs the cross-reference check: the
		// work may be sitting in someone else's collection.
		if req.TeaserDate.Present && req.TeaserDate.Value == nil {
			checker := foreignCollectionChecker{db: tx}
			if err := works.CheckUnteaser(c.Request.Context(), checker, w.ID, w.PenName.UserID); err != nil {
				return err
			}
		}

		updates := map[string]interface{}{
			"last_edited_date": time.Now(),
		}
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.Content != nil {
			updates["content"] = *req.Content
		}
		if req.Summary != nil {
			updates["summary"] = *req.Summary
		}
		if req.TeaserDate.Present {
			updates["teaser_date"] = req.TeaserDate.Value
		}
		if req.PublicationDate.Present {
			updates["publication_date"] = req.PublicationDate.Value
		}

		return tx.Model(&works.Work{}).Where("id = ?", w.ID).Updates(updates).Error
	})

	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DELETE /works/:id
func DeleteWork(c *gin.Context) {
	viewer, ok := middleware.MustViewer(c)
	if !ok {
		return
	}

	var w works.Work
	if err := workWithPenName(database.DB).First(&w, "works.id = ?", c.Param("id")).Error; err != nil {
		respond.Error(c, err)
		return
	}
	if w.PenName == nil || !viewer.Owns(w.PenName.UserID) {
		respond.Error(c, access.ErrForbidden)
		return
	}

	if err := database.DB.Delete(&works.Work{}, "id = ?", w.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete work"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
