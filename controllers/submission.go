package controllers

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"school-outreach-api/config"
	"school-outreach-api/models"
	"school-outreach-api/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Max evidence upload size (20 MB)
const maxMediaFileSize = 20 << 20

// CreateSubmission records a school's report for an assigned activity.
// One submission per (event, school).
func CreateSubmission(c *gin.Context) {
	type CreateSubmissionRequest struct {
		EventID     int     `json:"event_id" binding:"required"`
		Description string  `json:"description" binding:"required"`
		TeacherName *string `json:"teacher_name"`
		DocumentURL *string `json:"document_url"`
	}

	var req CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schoolIDVal, exists := c.Get("schoolID")
	if !exists {
		c.JSON(http.StatusForbidden, gin.H{"error": "Account is not linked to a school"})
		return
	}
	schoolID := schoolIDVal.(int)

	// School must be approved
	var school models.School
	if err := config.DB.Where("school_id = ? AND delete_at IS NULL", schoolID).
		First(&school).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "School not found"})
		return
	}
	if school.Status != models.SchoolStatusApproved {
		c.JSON(http.StatusForbidden, gin.H{"error": "School is not approved yet"})
		return
	}

	// Event must exist and be assigned to this school or its chapter
	var event models.Event
	if err := config.DB.Where("event_id = ? AND delete_at IS NULL", req.EventID).
		First(&event).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event not found"})
		return
	}

	var assignmentCount int64
	config.DB.Model(&models.EventAssignment{}).
		Where("event_id = ? AND (school_id = ? OR chapter_id = ?)",
			event.EventID, school.SchoolID, school.ChapterID).
		Count(&assignmentCount)
	if assignmentCount == 0 {
		c.JSON(http.StatusForbidden, gin.H{"error": "Event is not assigned to your school"})
		return
	}

	// One submission per event per school
	var existing models.EventSubmission
	if err := config.DB.Where("event_id = ? AND school_id = ? AND delete_at IS NULL",
		event.EventID, school.SchoolID).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A submission for this event already exists"})
		return
	}

	now := time.Now()
	submission := models.EventSubmission{
		EventID:     event.EventID,
		SchoolID:    school.SchoolID,
		TeacherName: req.TeacherName,
		Description: req.Description,
		DocumentURL: req.DocumentURL,
		Status:      models.SubmissionStatusPending,
		SubmittedAt: &now,
		CreateAt:    &now,
		UpdateAt:    &now,
	}

	if err := config.DB.Create(&submission).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create submission"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Submission created successfully",
		"submission": submission,
	})
}

// GetSubmissions returns list of submissions. School accounts see only
// their own; evaluators and admins see all with filters.
func GetSubmissions(c *gin.Context) {
	roleID, _ := c.Get("roleID")

	var submissions []models.EventSubmission
	query := config.DB.Preload("Event").Preload("School").Preload("School.Chapter").
		Where("event_submissions.delete_at IS NULL")

	// Scope school accounts to their own rows
	if roleID.(int) == models.RoleSchool {
		schoolID, exists := c.Get("schoolID")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is not linked to a school"})
			return
		}
		query = query.Where("school_id = ?", schoolID)
	}

	// Apply filters from query params
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if eventID := c.Query("event_id"); eventID != "" {
		query = query.Where("event_id = ?", eventID)
	}

	if schoolID := c.Query("school_id"); schoolID != "" && roleID.(int) != models.RoleSchool {
		query = query.Where("school_id = ?", schoolID)
	}

	if err := query.Order("submitted_at DESC").Find(&submissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
		return
	}

	// Search and chapter filters share the report predicate
	submissions = services.FilterSubmissions(submissions, c.Query("search"), c.Query("chapter"))

	c.JSON(http.StatusOK, gin.H{
		"submissions": submissions,
		"total":       len(submissions),
	})
}

// GetSubmission returns a single submission with evidence and publications
func GetSubmission(c *gin.Context) {
	id := c.Param("id")
	roleID, _ := c.Get("roleID")

	query := config.DB.Preload("Event").Preload("School").Preload("School.Chapter").
		Preload("Reviewer").Preload("MediaFiles").Preload("Publications").
		Where("submission_id = ? AND event_submissions.delete_at IS NULL", id)

	if roleID.(int) == models.RoleSchool {
		schoolID, exists := c.Get("schoolID")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is not linked to a school"})
			return
		}
		query = query.Where("school_id = ?", schoolID)
	}

	var submission models.EventSubmission
	if err := query.First(&submission).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"submission": submission,
	})
}

// UploadSubmissionMedia attaches an evidence file (image or video) to a
// submission owned by the calling school. The blob goes to object storage.
func UploadSubmissionMedia(c *gin.Context) {
	id := c.Param("id")
	userID, _ := c.Get("userID")

	schoolID, exists := c.Get("schoolID")
	if !exists {
		c.JSON(http.StatusForbidden, gin.H{"error": "Account is not linked to a school"})
		return
	}

	var submission models.EventSubmission
	if err := config.DB.Where("submission_id = ? AND school_id = ? AND delete_at IS NULL", id, schoolID).
		First(&submission).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	if fileHeader.Size > maxMediaFileSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds the 20 MB limit"})
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	media := models.MediaFile{
		SubmissionID: submission.SubmissionID,
		OriginalName: fileHeader.Filename,
		FileSize:     fileHeader.Size,
		MimeType:     mimeType,
		UploadedBy:   userID.(int),
		UploadedAt:   time.Now(),
	}

	switch {
	case media.IsValidImageType():
		media.FileType = "image"
	case media.IsValidVideoType():
		media.FileType = "video"
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only image and video files are accepted"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	storedName := fmt.Sprintf("%d-%s%s", submission.SubmissionID, uuid.New().String(), filepath.Ext(fileHeader.Filename))
	url, err := config.UploadToStorage(file, config.StorageFolderMedia, storedName, mimeType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	media.StoredURL = url
	if err := config.DB.Create(&media).Error; err != nil {
		// Keep storage consistent with the database
		if delErr := config.DeleteFromStorage(url); delErr != nil {
			log.Printf("Failed to remove orphaned file: %v", delErr)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record uploaded file"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "File uploaded successfully",
		"media_file": media,
	})
}

// AddPublication records external media coverage for a submission
func AddPublication(c *gin.Context) {
	id := c.Param("id")

	type PublicationRequest struct {
		OutletName  string     `json:"outlet_name" binding:"required"`
		PublishedOn *time.Time `json:"published_on"`
		ArticleURL  *string    `json:"article_url"`
		Citation    *string    `json:"citation"`
	}

	var req PublicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schoolID, exists := c.Get("schoolID")
	if !exists {
		c.JSON(http.StatusForbidden, gin.H{"error": "Account is not linked to a school"})
		return
	}

	var submission models.EventSubmission
	if err := config.DB.Where("submission_id = ? AND school_id = ? AND delete_at IS NULL", id, schoolID).
		First(&submission).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}

	now := time.Now()
	publication := models.Publication{
		SubmissionID: submission.SubmissionID,
		OutletName:   req.OutletName,
		PublishedOn:  req.PublishedOn,
		ArticleURL:   req.ArticleURL,
		Citation:     req.Citation,
		CreateAt:     &now,
	}

	if err := config.DB.Create(&publication).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record publication"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Publication recorded successfully",
		"publication": publication,
	})
}
