package collections

import (
	"errors"
	"net/http"

	"inkwell-app/database"
	"inkwell-app/internal/api/respond"
	"inkwell-app/internal/app/http/middleware"
	"inkwell-app/internal/domain/access"
	"inkwell-app/internal/domain/collections"
	"inkwell-app/internal/domain/pennames"
	"inkwell-app/internal/domain/works"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateCollectionRequest struct {
	Title                    string `json:"title" binding:"required"`
	Description              string `json:"description"`
	PublicSubmissionsAllowed bool   `json:"public_submissions_allowed"`
}

type UpdateCollectionRequest struct {
	Title                    *string `json:"title"`
	Description              *string `json:"description"`
	PublicSubmissionsAllowed *bool   `json:"public_submissions_allowed"`
	OwnerHidden              *bool   `json:"owner_hidden"`
}

type AddWorkRequest struct {
	WorkID    string `json:"work_id" binding:"required"`
	PenNameID string `json:"pen_name_id" binding:"required"`
}

type RemoveWorkRequest struct {
	WorkID string `json:"work_id" binding:"required"`
}

// POST /collections
func CreateCollection(c *gin.Context) {
	viewer, ok := middleware.MustViewer(c)
	if !ok {
		return
	}

	var req CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	col := collections.Collection{
		UserID:                   viewer.UserID,
		Title:                    req.Title,
		Description:              req.Description,
		PublicSubmissionsAllowed: req.PublicSubmissionsAllowed,
	}
	if err := database.DB.Create(&col).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create collection"})
		return
	}

	c.JSON(http.StatusCreated, collections.RedactOwner(col, 0))
}

// PUT /collections/:id
func UpdateCollection(c *gin.Context) {
	viewer, ok := middleware.MustViewer(c)
	if !ok {
		return
	}

	var req UpdateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var updated collections.Collection
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var col collections.Collection
		if err := tx.First(&col, "id = ?", c.Param("id")).Error; err != nil {
			return err
		}
		if !viewer.Owns(col.UserID) {
			return access.ErrForbidden
		}

		updates := map[string]interface{}{}
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.PublicSubmissionsAllowed != nil {
			updates["public_submissions_allowed"] = *req.PublicSubmissionsAllowed
		}
		if req.OwnerHidden != nil {
			if *req.OwnerHidden {
				updates["owner_hidden_date"] = gorm.Expr("COALESCE(owner_hidden_date, NOW())")
			} else {
				updates["owner_hidden_date"] = nil
			}
		}
		if len(updates) > 0 {
			if err := tx.Model(&collections.Collection{}).
				Where("id = ?", col.ID).
				Updates(updates).Error; err != nil {
				return err
			}
		}

		return tx.First(&updated, "id = ?", col.ID).Error
	})

	if err != nil {
		respond.Error(c, err)
		return
	}

	count, _ := membershipCount(database.DB, updated.ID)
	c.JSON(http.StatusOK, collections.RedactOwner(updated, count))
}

// DELETE /collections/:id
func DeleteCollection(c *gin.Context) {
	viewer, ok := middleware.MustViewer(c)
	if !ok {
		return
	}

	var col collections.Collection
	if err := database.DB.First(&col, "id = ?", c.Param("id")).Error; err != nil {
		respond.Error(c, err)
		return
	}
	if !viewer.Owns(col.UserID) {
		respond.Error(c, access.ErrForbidden)
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&collections.CollectionWork{}, "collection_id = ?", col.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&collections.Collection{}, "id = ?", col.ID).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete collection"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// POST /collections/:id/works
func AddWorkToCollection(c *gin.Context) {
	viewer, ok := middleware.MustViewer(c)
	if !ok {
		return
	}

	var req AddWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var col collections.Collection
		if err := tx.First(&col, "id = ?", c.Param("id")).Error; err != nil {
			return err
		}

		var penName pennames.PenName
		if err := tx.First(&penName, "id = ?", req.PenNameID).Error; err != nil {
			// An unknown pen name and someone else's pen name look the
			// same to the caller.
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return access.ErrForbidden
			}
			return err
		}

		var w works.Work
		if err := tx.Preload("PenName").First(&w, "id = ?", req.WorkID).Error; err != nil {
			return err
		}

		if err := collections.CanAddWork(col, w, penName, viewer); err != nil {
			return err
		}

		membership := collections.CollectionWork{
			CollectionID:     col.ID,
			WorkID:           w.ID,
			AddedByPenNameID: penName.ID,
		}
		if err := tx.Create(&membership).Error; err != nil {
			// Already a member: idempotent success, the unique key is
			// the race-safety backstop.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil
			}
			return err
		}
		return nil
	})

	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DELETE /collections/:id/works
func RemoveWorkFromCollection(c *gin.Context) {
	viewer, ok := middleware.MustViewer(c)
	if !ok {
		return
	}

	var req RemoveWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var col collections.Collection
		if err := tx.First(&col, "id = ?", c.Param("id")).Error; err != nil {
			return err
		}

		var membership collections.CollectionWork
		err := tx.First(&membership, "collection_id = ? AND work_id = ?", col.ID, req.WorkID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Already removed.
			return nil
		}
		if err != nil {
			return err
		}

		var addedBy pennames.PenName
		if err := tx.First(&addedBy, "id = ?", membership.AddedByPenNameID).Error; err != nil {
			return err
		}

		if err := collections.CanRemoveWork(col, addedBy, viewer); err != nil {
			return err
		}

		return tx.Delete(&collections.CollectionWork{},
			"collection_id = ? AND work_id = ?", col.ID, req.WorkID).Error
	})

	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET /collections
func ListCollections(c *gin.Context) {
	if _, ok := middleware.MustViewer(c); !ok {
		return
	}
	listRedacted(c, database.DB.Preload("User").Order("creation_date DESC"))
}

// GET /users/:id/collections
func ListCollectionsByUser(c *gin.Context) {
	if _, ok := middleware.MustViewer(c); !ok {
		return
	}
	listRedacted(c, database.DB.Preload("User").
		Where("user_id = ?", c.Param("id")).
		Order("creation_date DESC"))
}

func listRedacted(c *gin.Context, q *gorm.DB) {
	var rows []collections.Collection
	if err := q.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load collections"})
		return
	}

	counts, err := membershipCounts(database.DB, rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load collections"})
		return
	}

	out := make([]collections.Projection, 0, len(rows))
	for _, col := range rows {
		out = append(out, collections.RedactOwner(col, counts[col.ID]))
	}
	c.JSON(http.StatusOK, out)
}

// GET /works/:id/collections
//
// Collections a work appears in, with the pen name that added it.
func ListCollectionsByWork(c *gin.Context) {
	viewer, ok := middleware.MustViewer(c)
	if !ok {
		return
	}

	var memberships []collections.CollectionWork
	err := database.DB.
		Preload("AddedByPenName").
		Where("work_id = ?", c.Param("id")).
		Find(&memberships).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load collections"})
		return
	}

	type entry struct {
		collections.Projection
		AddedBy pennames.Profile `json:"added_by_pen_name"`
	}

	out := make([]entry, 0, len(memberships))
	for _, m := range memberships {
		var col collections.Collection
		if err := database.DB.Preload("User").First(&col, "id = ?", m.CollectionID).Error; err != nil {
			continue
		}
		count, _ := membershipCount(database.DB, col.ID)

		var addedBy pennames.Profile
		if m.AddedByPenName != nil {
			addedBy = pennames.Redact(*m.AddedByPenName, nil, 0, viewer)
		}
		out = append(out, entry{
			Projection: collections.RedactOwner(col, count),
			AddedBy:    addedBy,
		})
	}
	c.JSON(http.StatusOK, out)
}
