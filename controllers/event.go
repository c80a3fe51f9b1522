package controllers

import (
	"net/http"
	"time"

	"school-outreach-api/config"
	"school-outreach-api/models"

	"github.com/gin-gonic/gin"
)

// GetEvents returns list of activities
func GetEvents(c *gin.Context) {
	var events []models.Event
	query := config.DB.Where("events.delete_at IS NULL")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if programType := c.Query("program_type"); programType != "" {
		query = query.Where("program_type = ?", programType)
	}

	if err := query.Order("create_at DESC").Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"total":  len(events),
	})
}

// GetEvent returns single activity with its assignments
func GetEvent(c *gin.Context) {
	id := c.Param("id")

	var event models.Event
	if err := config.DB.Where("event_id = ? AND delete_at IS NULL", id).
		First(&event).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	var assignments []models.EventAssignment
	config.DB.Preload("School").Preload("Chapter").
		Where("event_id = ?", event.EventID).
		Find(&assignments)

	c.JSON(http.StatusOK, gin.H{
		"event":       event,
		"assignments": assignments,
	})
}

// CreateEvent creates a new activity (admin only)
func CreateEvent(c *gin.Context) {
	type CreateEventRequest struct {
		Title       string     `json:"title" binding:"required"`
		Description string     `json:"description" binding:"required"`
		Location    string     `json:"location"`
		StartDate   *time.Time `json:"start_date"`
		EndDate     *time.Time `json:"end_date"`
		ProgramType *string    `json:"program_type"`
	}

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "End date cannot be before start date"})
		return
	}

	userID, _ := c.Get("userID")

	now := time.Now()
	event := models.Event{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		ProgramType: req.ProgramType,
		Status:      models.EventStatusActive,
		CreatedBy:   userID.(int),
		CreateAt:    &now,
		UpdateAt:    &now,
	}

	if err := config.DB.Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Event created successfully",
		"event":   event,
	})
}

// UpdateEvent updates an existing activity (admin only)
func UpdateEvent(c *gin.Context) {
	id := c.Param("id")

	type UpdateEventRequest struct {
		Title       string     `json:"title"`
		Description string     `json:"description"`
		Location    string     `json:"location"`
		StartDate   *time.Time `json:"start_date"`
		EndDate     *time.Time `json:"end_date"`
		ProgramType *string    `json:"program_type"`
		Status      string     `json:"status"`
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var event models.Event
	if err := config.DB.Where("event_id = ? AND delete_at IS NULL", id).
		First(&event).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	if req.Title != "" {
		event.Title = req.Title
	}
	if req.Description != "" {
		event.Description = req.Description
	}
	if req.Location != "" {
		event.Location = req.Location
	}
	if req.StartDate != nil {
		event.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		event.EndDate = req.EndDate
	}
	if req.ProgramType != nil {
		event.ProgramType = req.ProgramType
	}
	if req.Status != "" {
		switch req.Status {
		case models.EventStatusActive, models.EventStatusCompleted, models.EventStatusCancelled:
			event.Status = req.Status
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event status"})
			return
		}
	}

	now := time.Now()
	event.UpdateAt = &now

	if err := config.DB.Save(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event updated successfully",
		"event":   event,
	})
}

// DeleteEvent soft-deletes an activity (admin only)
func DeleteEvent(c *gin.Context) {
	id := c.Param("id")

	var event models.Event
	if err := config.DB.Where("event_id = ? AND delete_at IS NULL", id).
		First(&event).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	// Events with submissions cannot be removed
	var submissionCount int64
	config.DB.Model(&models.EventSubmission{}).
		Where("event_id = ? AND delete_at IS NULL", event.EventID).
		Count(&submissionCount)
	if submissionCount > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete an event with submissions"})
		return
	}

	// Soft delete
	now := time.Now()
	event.DeleteAt = &now

	if err := config.DB.Save(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

// AssignEvent assigns an activity to a school or to a whole chapter (admin only)
func AssignEvent(c *gin.Context) {
	id := c.Param("id")

	type AssignRequest struct {
		SchoolID  *int       `json:"school_id"`
		ChapterID *int       `json:"chapter_id"`
		Deadline  *time.Time `json:"deadline"`
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Exactly one target
	if (req.SchoolID == nil) == (req.ChapterID == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide exactly one of school_id or chapter_id"})
		return
	}

	var event models.Event
	if err := config.DB.Where("event_id = ? AND delete_at IS NULL", id).
		First(&event).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	if event.Status != models.EventStatusActive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only active events can be assigned"})
		return
	}

	if req.SchoolID != nil {
		var school models.School
		if err := config.DB.Where("school_id = ? AND status = ? AND delete_at IS NULL",
			*req.SchoolID, models.SchoolStatusApproved).First(&school).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "School not found or not approved"})
			return
		}
	} else {
		var chapter models.Chapter
		if err := config.DB.Where("chapter_id = ? AND delete_at IS NULL", *req.ChapterID).
			First(&chapter).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Chapter not found"})
			return
		}
	}

	userID, _ := c.Get("userID")

	assignment := models.EventAssignment{
		EventID:    event.EventID,
		SchoolID:   req.SchoolID,
		ChapterID:  req.ChapterID,
		Deadline:   req.Deadline,
		AssignedBy: userID.(int),
		AssignedAt: time.Now(),
	}

	if err := config.DB.Create(&assignment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign event"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Event assigned successfully",
		"assignment": assignment,
	})
}

// GetAssignedEvents returns activities assigned to the calling school
// account, directly or through its chapter.
func GetAssignedEvents(c *gin.Context) {
	schoolIDVal, exists := c.Get("schoolID")
	if !exists {
		c.JSON(http.StatusForbidden, gin.H{"error": "Account is not linked to a school"})
		return
	}
	schoolID := schoolIDVal.(int)

	var school models.School
	if err := config.DB.Where("school_id = ? AND delete_at IS NULL", schoolID).
		First(&school).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "School not found"})
		return
	}

	var assignments []models.EventAssignment
	if err := config.DB.Preload("Event").
		Where("school_id = ? OR chapter_id = ?", school.SchoolID, school.ChapterID).
		Order("assigned_at DESC").
		Find(&assignments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch assigned events"})
		return
	}

	// Drop assignments whose event was removed or cancelled
	active := make([]models.EventAssignment, 0, len(assignments))
	for _, a := range assignments {
		if a.Event.DeleteAt == nil && a.Event.Status == models.EventStatusActive {
			active = append(active, a)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"assignments": active,
		"total":       len(active),
	})
}
