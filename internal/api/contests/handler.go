package contests

import (
	"errors"
	"net/http"
	"time"

	"inkwell-app/config"
	"inkwell-app/database"
	"inkwell-app/internal/api/respond"
	"inkwell-app/internal/app/http/middleware"
	"inkwell-app/internal/domain/access"
	"inkwell-app/internal/domain/contests"
	"inkwell-app/internal/domain/works"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateContestRequest struct {
	Name        string `json:"name" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Prompt      string `json:"prompt"`
	Rules       string `json:"rules"`

	PromptRevealDate    *time.Time `json:"prompt_reveal_date"`
	SubmissionStartDate *time.Time `json:"submission_start_date"`
	SubmissionEndDate   *time.Time `json:"submission_end_date"`
}

type UpdateContestRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Prompt      *string `json:"prompt"`
	Rules       *string `json:"rules"`

	PromptRevealDate    *time.Time `json:"prompt_reveal_date"`
	SubmissionStartDate *time.Time `json:"submission_start_date"`
	SubmissionEndDate   *time.Time `json:"submission_end_date"`
}

type SubmitWorkRequest struct {
	WorkID string `json:"work_id" binding:"required"`
}

// POST /contests
func CreateContest(c *gin.Context) {
	viewer, ok := middleware.MustViewer(c)
	if !ok {
		return
	}

	var req CreateContestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ct := contests.Contest{
		CreatorUserID:       viewer.UserID,
		Name:                req.Name,
		Title:               req.Title,
		Description:         req.Description,
		Prompt:              req.Prompt,
		Rules:               req.Rules,
		PromptRevealDate:    req.PromptRevealDate,
		SubmissionStartDate: req.SubmissionStartDate,
		SubmissionEndDate:   req.SubmissionEndDate,
		LastEditedDate:      time.Now(),
	}
	if err := database.DB.Create(&ct).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Contest name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contest"})
		return
	}

	c.JSON(http.StatusCreated, ct)
}

// PUT /contests/:id
func UpdateContest(c *gin.Context) {
	viewer, ok := middleware.MustViewer(c)
	if !ok {
		return
	}

	var req UpdateContestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var updated contests.Contest
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var ct contests.Contest
		if err := tx.First(&ct, "id = ?", c.Param("id")).Error; err != nil {
			return err
		}
		if !viewer.Owns(ct.CreatorUserID) {
			return access.ErrForbidden
		}

		updates := map[string]interface{}{
			"last_edited_date": time.Now(),
		}
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.Prompt != nil {
			updates["prompt"] = *req.Prompt
		}
		if req.Rules != nil {
			updates["rules"] = *req.Rules
		}
		if req.PromptRevealDate != nil {
			updates["prompt_reveal_date"] = *req.PromptRevealDate
		}
		if req.SubmissionStartDate != nil {
			updates["submission_start_date"] = *req.SubmissionStartDate
		}
		if req.SubmissionEndDate != nil {
			updates["submission_end_date"] = *req.SubmissionEndDate
		}

		if err := tx.Model(&contests.Contest{}).
			Where("id = ?", ct.ID).
			Updates(updates).Error; err != nil {
			return err
		}

		return tx.First(&updated, "id = ?", ct.ID).Error
	})

	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DELETE /contests/:id
func DeleteContest(c *gin.Context) {
	viewer, ok := middleware.MustViewer(c)
	if !ok {
		return
	}

	var ct contests.Contest
	if err := database.DB.First(&ct, "id = ?", c.Param("id")).Error; err != nil {
		respond.Error(c, err)
		return
	}
	if !viewer.Owns(ct.CreatorUserID) {
		respond.Error(c, access.ErrForbidden)
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&contests.ContestSubmission{}, "contest_id = ?", ct.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&contests.Contest{}, "id = ?", ct.ID).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contest"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// POST /contests/:id/submissions
func SubmitWork(c *gin.Context) {
	viewer, ok := middleware.MustViewer(c)
	if !ok {
		return
	}

	var req SubmitWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var ct contests.Contest
		if err := tx.First(&ct, "id = ?", c.Param("id")).Error; err != nil {
			return err
		}

		var w works.Work
		if err := tx.Preload("PenName").First(&w, "id = ?", req.WorkID).Error; err != nil {
			return err
		}

		if err := contests.CanSubmit(ct, w, viewer, time.Now()); err != nil {
			return err
		}

		submission := contests.ContestSubmission{
			ContestID: ct.ID,
			WorkID:    w.ID,
		}
		if err := tx.Create(&submission).Error; err != nil {
			// Resubmission of the same work: idempotent success.
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

// DELETE /contests/:id/submissions
func WithdrawWork(c *gin.Context) {
	viewer, ok := middleware.MustViewer(c)
	if !ok {
		return
	}

	var req SubmitWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var ct contests.Contest
		if err := tx.First(&ct, "id = ?", c.Param("id")).Error; err != nil {
			return err
		}

		var submission contests.ContestSubmission
		err := tx.First(&submission, "contest_id = ? AND work_id = ?", ct.ID, req.WorkID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Already withdrawn.
			return nil
		}
		if err != nil {
			return err
		}

		var w works.Work
		if err := tx.Preload("PenName").First(&w, "id = ?", req.WorkID).Error; err != nil {
			return err
		}
		workOwner := ""
		if w.PenName != nil {
			workOwner = w.PenName.UserID
		}

		if err := contests.CanWithdraw(ct, workOwner, viewer); err != nil {
			return err
		}

		return tx.Delete(&contests.ContestSubmission{},
			"contest_id = ? AND work_id = ?", ct.ID, req.WorkID).Error
	})

	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// POST /contests/:id/publicize
//
// Promotes every submitted work to teased and published by stamping the
// timestamps that are still null. Already-set dates are never touched,
// so running the sweep twice is harmless.
func PublicizeSubmissions(c *gin.Context) {
	viewer, ok := middleware.MustViewer(c)
	if !ok {
		return
	}

	var teased, published int64
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var ct contests.Contest
		if err := tx.First(&ct, "id = ?", c.Param("id")).Error; err != nil {
			return err
		}

		now := time.Now()
		if err := contests.CanPublicize(ct, viewer, now, config.PUBLICIZE_REQUIRES_CLOSED_WINDOW); err != nil {
			return err
		}

		submitted := tx.Model(&contests.ContestSubmission{}).
			Select("work_id").
			Where("contest_id = ?", ct.ID)

		res := tx.Model(&works.Work{}).
			Where("id IN (?) AND teaser_date IS NULL", submitted).
			Update("teaser_date", now)
		if res.Error != nil {
			return res.Error
		}
		teased = res.RowsAffected

		res = tx.Model(&works.Work{}).
			Where("id IN (?) AND publication_date IS NULL", submitted).
			Update("publication_date", now)
		if res.Error != nil {
			return res.Error
		}
		published = res.RowsAffected

		return nil
	})

	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"teased":    teased,
		"published": published,
	})
}

// GET /contests
func ListContests(c *gin.Context) {
	if _, ok := middleware.MustViewer(c); !ok {
		return
	}

	var rows []contests.Contest
	if err := database.DB.Order("creation_date DESC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load contests"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /users/:id/contests
func ListContestsByUser(c *gin.Context) {
	if _, ok := middleware.MustViewer(c); !ok {
		return
	}

	var rows []contests.Contest
	err := database.DB.
		Where("creator_user_id = ?", c.Param("id")).
		Order("creation_date DESC").
		Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load contests"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /works/:id/contests
func ListContestsByWork(c *gin.Context) {
	if _, ok := middleware.MustViewer(c); !ok {
		return
	}

	var rows []contests.Contest
	err := database.DB.
		Joins("JOIN contest_submissions ON contest_submissions.contest_id = contests.id").
		Where("contest_submissions.work_id = ?", c.Param("id")).
		Order("contests.creation_date DESC").
		Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load contests"})
		return
	}
	c.JSON(http.StatusOK, rows)
}
