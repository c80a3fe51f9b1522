package controllers

import (
	"net/http"
	"time"

	"school-outreach-api/config"
	"school-outreach-api/models"
	"school-outreach-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type reviewRequest struct {
	Score    *int   `json:"score"`
	Comments string `json:"comments"`
}

// ApproveSubmission approves a pending submission with a score and comments
// (evaluator/admin only)
func ApproveSubmission(c *gin.Context) {
	reviewSubmission(c, services.ReviewActionApprove)
}

// RequestRevision sends a pending submission back to the school with
// comments (evaluator/admin only)
func RequestRevision(c *gin.Context) {
	reviewSubmission(c, services.ReviewActionRequestRevision)
}

// RejectSubmission rejects a pending submission with comments
// (evaluator/admin only)
func RejectSubmission(c *gin.Context) {
	reviewSubmission(c, services.ReviewActionReject)
}

// reviewSubmission performs a review transition. Validation failures return
// 400 with no mutation; a submission that already left pending returns 409.
// Persistence failures are surfaced as 500 — the transition is never
// reported as successful unless it was stored.
func reviewSubmission(c *gin.Context, action string) {
	id := c.Param("id")

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Validate before touching anything
	if err := services.ValidateReviewAction(action, req.Score, req.Comments); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Find submission
	var submission models.EventSubmission
	if err := config.DB.Preload("Event").Preload("School").
		Where("submission_id = ? AND delete_at IS NULL", id).
		First(&submission).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}

	// Only pending submissions can be reviewed
	if submission.Status != models.SubmissionStatusPending {
		c.JSON(http.StatusConflict, gin.H{"error": "Submission has already been reviewed"})
		return
	}

	userID, _ := c.Get("userID")
	reviewerID := userID.(int)
	now := time.Now()
	newStatus := services.StatusForAction(action)

	previousStatus := submission.Status
	submission.Status = newStatus
	submission.AdminComment = &req.Comments
	submission.ReviewedAt = &now
	submission.ReviewedBy = &reviewerID
	submission.UpdateAt = &now
	if action == services.ReviewActionApprove {
		submission.Score = req.Score
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&submission).Error; err != nil {
			return err
		}
		record := models.ReviewRecord{
			SubmissionID: submission.SubmissionID,
			ReviewerID:   reviewerID,
			Action:       action,
			Score:        submission.Score,
			Comments:     req.Comments,
			ReviewedAt:   now,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		history := models.StatusHistory{
			EntityType: "submission",
			EntityID:   submission.SubmissionID,
			FromStatus: previousStatus,
			ToStatus:   newStatus,
			ChangedBy:  reviewerID,
			ChangedAt:  now,
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review decision"})
		return
	}

	services.NotifyReviewDecision(&submission, action)

	c.JSON(http.StatusOK, gin.H{
		"message":    "Review decision saved",
		"submission": submission,
	})
}

// GetReviewHistory returns the audit trail of review actions for a
// submission (evaluator/admin only)
func GetReviewHistory(c *gin.Context) {
	id := c.Param("id")

	var submission models.EventSubmission
	if err := config.DB.Where("submission_id = ? AND delete_at IS NULL", id).
		First(&submission).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}

	var records []models.ReviewRecord
	if err := config.DB.Preload("Reviewer").
		Where("submission_id = ?", submission.SubmissionID).
		Order("reviewed_at DESC").
		Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch review history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": records,
		"total":   len(records),
	})
}
