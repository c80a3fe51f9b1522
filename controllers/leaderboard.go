package controllers

import (
	"net/http"
	"time"

	"school-outreach-api/config"
	"school-outreach-api/models"
	"school-outreach-api/services"

	"github.com/gin-gonic/gin"
)

// GetLeaderboard returns schools ranked by average score over approved,
// scored submissions, optionally restricted to a time window and chapter.
// An empty result is returned as-is; there is no fixture substitution.
func GetLeaderboard(c *gin.Context) {
	var submissions []models.EventSubmission
	if err := config.DB.Preload("School").Preload("School.Chapter").
		Where("status = ? AND score IS NOT NULL AND delete_at IS NULL", models.SubmissionStatusApproved).
		Find(&submissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
		return
	}

	filter := services.LeaderboardFilter{
		Window:  c.Query("window"),
		Chapter: c.Query("chapter"),
		Now:     time.Now(),
	}

	entries := services.AggregateLeaderboard(submissions, filter)

	c.JSON(http.StatusOK, gin.H{
		"leaderboard": entries,
		"total":       len(entries),
	})
}
