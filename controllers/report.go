package controllers

import (
	"net/http"
	"time"

	"school-outreach-api/config"
	"school-outreach-api/models"
	"school-outreach-api/services"

	"github.com/gin-gonic/gin"
)

// GetRankingsReport returns individual submissions ranked by score, with
// conjunctive search/status/chapter/window filters (admin only)
func GetRankingsReport(c *gin.Context) {
	var submissions []models.EventSubmission
	if err := config.DB.Preload("Event").Preload("School").Preload("School.Chapter").
		Where("event_submissions.delete_at IS NULL").
		Find(&submissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
		return
	}

	filter := services.ReportFilter{
		Search:  c.Query("search"),
		Status:  c.Query("status"),
		Chapter: c.Query("chapter"),
		Window:  c.Query("window"),
		Now:     time.Now(),
	}

	rankings := services.RankSubmissions(submissions, filter)

	c.JSON(http.StatusOK, gin.H{
		"rankings": rankings,
		"total":    len(rankings),
	})
}
