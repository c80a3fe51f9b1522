package controllers

import (
	"net/http"
	"time"

	"school-outreach-api/config"
	"school-outreach-api/models"

	"github.com/gin-gonic/gin"
)

// GetSchools returns list of schools (admin/evaluator)
func GetSchools(c *gin.Context) {
	var schools []models.School
	query := config.DB.Preload("Chapter").
		Where("schools.delete_at IS NULL")

	// Apply filters from query params
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if chapter := c.Query("chapter_id"); chapter != "" {
		query = query.Where("chapter_id = ?", chapter)
	}

	if err := query.Order("create_at DESC").Find(&schools).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch schools"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"schools": schools,
		"total":   len(schools),
	})
}

// GetSchool returns single school by ID
func GetSchool(c *gin.Context) {
	id := c.Param("id")

	var school models.School
	if err := config.DB.Preload("Chapter").
		Where("school_id = ? AND delete_at IS NULL", id).
		First(&school).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "School not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"school": school,
	})
}

// ApproveSchool approves a pending school registration (admin only)
func ApproveSchool(c *gin.Context) {
	id := c.Param("id")

	// Find school
	var school models.School
	if err := config.DB.Where("school_id = ? AND delete_at IS NULL", id).
		First(&school).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "School not found"})
		return
	}

	// Check if already processed
	if school.Status != models.SchoolStatusPending {
		c.JSON(http.StatusConflict, gin.H{"error": "School registration already processed"})
		return
	}

	now := time.Now()
	userID, _ := c.Get("userID")

	school.Status = models.SchoolStatusApproved
	school.ApprovedAt = &now
	school.UpdateAt = &now

	if err := config.DB.Save(&school).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve school"})
		return
	}

	recordStatusChange("school", school.SchoolID, models.SchoolStatusPending, models.SchoolStatusApproved, userID.(int))

	c.JSON(http.StatusOK, gin.H{
		"message": "School approved successfully",
		"school":  school,
	})
}

// RejectSchool rejects a pending school registration (admin only)
func RejectSchool(c *gin.Context) {
	id := c.Param("id")

	type RejectRequest struct {
		Reason string `json:"reason" binding:"required"`
	}

	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Find school
	var school models.School
	if err := config.DB.Where("school_id = ? AND delete_at IS NULL", id).
		First(&school).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "School not found"})
		return
	}

	// Check if already processed
	if school.Status != models.SchoolStatusPending {
		c.JSON(http.StatusConflict, gin.H{"error": "School registration already processed"})
		return
	}

	now := time.Now()
	userID, _ := c.Get("userID")

	school.Status = models.SchoolStatusRejected
	school.RejectionReason = &req.Reason
	school.UpdateAt = &now

	if err := config.DB.Save(&school).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject school"})
		return
	}

	recordStatusChange("school", school.SchoolID, models.SchoolStatusPending, models.SchoolStatusRejected, userID.(int))

	c.JSON(http.StatusOK, gin.H{
		"message": "School registration rejected",
		"school":  school,
	})
}

// recordStatusChange writes an audit row for a status transition.
func recordStatusChange(entityType string, entityID int, from, to string, actorID int) {
	history := models.StatusHistory{
		EntityType: entityType,
		EntityID:   entityID,
		FromStatus: from,
		ToStatus:   to,
		ChangedBy:  actorID,
		ChangedAt:  time.Now(),
	}
	config.DB.Create(&history)
}
