package controllers

import (
	"net/http"
	"time"

	"school-outreach-api/config"
	"school-outreach-api/models"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats returns dashboard statistics for the caller's role
func GetDashboardStats(c *gin.Context) {
	userIDVal, userExists := c.Get("userID")
	roleIDVal, roleExists := c.Get("roleID")
	if !userExists || !roleExists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication context missing"})
		return
	}

	userID, okUser := userIDVal.(int)
	roleID, okRole := roleIDVal.(int)
	if !okUser || !okRole {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid user or role id"})
		return
	}

	var stats map[string]interface{}
	switch roleID {
	case models.RoleAdmin:
		stats = getAdminDashboard()
	case models.RoleEvaluator:
		stats = getEvaluatorDashboard(userID)
	default:
		schoolID, exists := c.Get("schoolID")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is not linked to a school"})
			return
		}
		stats = getSchoolDashboard(schoolID.(int))
	}

	stats["current_date"] = time.Now().Format("2006-01-02")

	c.JSON(http.StatusOK, gin.H{
		"stats": stats,
	})
}

// getAdminDashboard returns program-wide counts for administrators
func getAdminDashboard() map[string]interface{} {
	stats := make(map[string]interface{})

	var schoolStats struct {
		Total    int64 `json:"total"`
		Pending  int64 `json:"pending"`
		Approved int64 `json:"approved"`
		Rejected int64 `json:"rejected"`
	}
	config.DB.Model(&models.School{}).Where("delete_at IS NULL").Count(&schoolStats.Total)
	config.DB.Model(&models.School{}).Where("status = ? AND delete_at IS NULL", models.SchoolStatusPending).Count(&schoolStats.Pending)
	config.DB.Model(&models.School{}).Where("status = ? AND delete_at IS NULL", models.SchoolStatusApproved).Count(&schoolStats.Approved)
	config.DB.Model(&models.School{}).Where("status = ? AND delete_at IS NULL", models.SchoolStatusRejected).Count(&schoolStats.Rejected)
	stats["schools"] = schoolStats

	var submissionStats struct {
		Total             int64 `json:"total"`
		Pending           int64 `json:"pending"`
		Approved          int64 `json:"approved"`
		Rejected          int64 `json:"rejected"`
		RevisionRequested int64 `json:"revision_requested"`
	}
	config.DB.Model(&models.EventSubmission{}).Where("delete_at IS NULL").Count(&submissionStats.Total)
	config.DB.Model(&models.EventSubmission{}).Where("status = ? AND delete_at IS NULL", models.SubmissionStatusPending).Count(&submissionStats.Pending)
	config.DB.Model(&models.EventSubmission{}).Where("status = ? AND delete_at IS NULL", models.SubmissionStatusApproved).Count(&submissionStats.Approved)
	config.DB.Model(&models.EventSubmission{}).Where("status = ? AND delete_at IS NULL", models.SubmissionStatusRejected).Count(&submissionStats.Rejected)
	config.DB.Model(&models.EventSubmission{}).Where("status = ? AND delete_at IS NULL", models.SubmissionStatusRevisionRequested).Count(&submissionStats.RevisionRequested)
	stats["submissions"] = submissionStats

	var activeEvents int64
	config.DB.Model(&models.Event{}).
		Where("status = ? AND delete_at IS NULL", models.EventStatusActive).
		Count(&activeEvents)
	stats["active_events"] = activeEvents

	var donationTotal float64
	config.DB.Model(&models.Donation{}).
		Where("status = ? AND delete_at IS NULL", models.DonationStatusCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&donationTotal)
	stats["donations_total"] = donationTotal

	var certificatesIssued int64
	config.DB.Model(&models.Certificate{}).Count(&certificatesIssued)
	stats["certificates_issued"] = certificatesIssued

	var recent []models.EventSubmission
	config.DB.Preload("Event").Preload("School").
		Where("delete_at IS NULL").
		Order("submitted_at DESC").
		Limit(5).
		Find(&recent)
	stats["recent_submissions"] = recent

	return stats
}

// getEvaluatorDashboard returns the review queue summary for evaluators
func getEvaluatorDashboard(userID int) map[string]interface{} {
	stats := make(map[string]interface{})

	var pendingQueue int64
	config.DB.Model(&models.EventSubmission{}).
		Where("status = ? AND delete_at IS NULL", models.SubmissionStatusPending).
		Count(&pendingQueue)
	stats["pending_queue"] = pendingQueue

	var reviewedToday int64
	config.DB.Model(&models.ReviewRecord{}).
		Where("reviewer_id = ? AND reviewed_at >= ?", userID, startOfDay(time.Now())).
		Count(&reviewedToday)
	stats["reviewed_today"] = reviewedToday

	var reviewedTotal int64
	config.DB.Model(&models.ReviewRecord{}).
		Where("reviewer_id = ?", userID).
		Count(&reviewedTotal)
	stats["reviewed_total"] = reviewedTotal

	return stats
}

// startOfDay returns midnight of t's day in t's location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// getSchoolDashboard returns submission progress for a school account
func getSchoolDashboard(schoolID int) map[string]interface{} {
	stats := make(map[string]interface{})

	var submissionStats struct {
		Total             int64 `json:"total"`
		Pending           int64 `json:"pending"`
		Approved          int64 `json:"approved"`
		Rejected          int64 `json:"rejected"`
		RevisionRequested int64 `json:"revision_requested"`
	}
	config.DB.Model(&models.EventSubmission{}).Where("school_id = ? AND delete_at IS NULL", schoolID).Count(&submissionStats.Total)
	config.DB.Model(&models.EventSubmission{}).Where("school_id = ? AND status = ? AND delete_at IS NULL", schoolID, models.SubmissionStatusPending).Count(&submissionStats.Pending)
	config.DB.Model(&models.EventSubmission{}).Where("school_id = ? AND status = ? AND delete_at IS NULL", schoolID, models.SubmissionStatusApproved).Count(&submissionStats.Approved)
	config.DB.Model(&models.EventSubmission{}).Where("school_id = ? AND status = ? AND delete_at IS NULL", schoolID, models.SubmissionStatusRejected).Count(&submissionStats.Rejected)
	config.DB.Model(&models.EventSubmission{}).Where("school_id = ? AND status = ? AND delete_at IS NULL", schoolID, models.SubmissionStatusRevisionRequested).Count(&submissionStats.RevisionRequested)
	stats["submissions"] = submissionStats

	var averageScore float64
	config.DB.Model(&models.EventSubmission{}).
		Where("school_id = ? AND status = ? AND score IS NOT NULL AND delete_at IS NULL",
			schoolID, models.SubmissionStatusApproved).
		Select("COALESCE(AVG(score), 0)").
		Scan(&averageScore)
	stats["average_score"] = averageScore

	// Assigned events without a submission yet
	var school models.School
	if err := config.DB.Where("school_id = ?", schoolID).First(&school).Error; err == nil {
		var assignedCount int64
		config.DB.Model(&models.EventAssignment{}).
			Where("school_id = ? OR chapter_id = ?", school.SchoolID, school.ChapterID).
			Count(&assignedCount)
		stats["assigned_events"] = assignedCount
		awaiting := assignedCount - submissionStats.Total
		if awaiting < 0 {
			awaiting = 0
		}
		stats["awaiting_submission"] = awaiting
	}

	return stats
}
