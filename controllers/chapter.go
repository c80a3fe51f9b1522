package controllers

import (
	"net/http"
	"time"

	"school-outreach-api/config"
	"school-outreach-api/models"

	"github.com/gin-gonic/gin"
)

// GetChapters returns all chapters
func GetChapters(c *gin.Context) {
	var chapters []models.Chapter
	if err := config.DB.Where("delete_at IS NULL").Order("name").Find(&chapters).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch chapters"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"chapters": chapters,
		"total":    len(chapters),
	})
}

// CreateChapter creates a new chapter (admin only)
func CreateChapter(c *gin.Context) {
	type CreateChapterRequest struct {
		Name     string `json:"name" binding:"required"`
		Location string `json:"location" binding:"required"`
		State    string `json:"state" binding:"required"`
	}

	var req CreateChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Chapter
	if err := config.DB.Where("name = ? AND delete_at IS NULL", req.Name).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Chapter already exists"})
		return
	}

	now := time.Now()
	chapter := models.Chapter{
		Name:     req.Name,
		Location: req.Location,
		State:    req.State,
		CreateAt: &now,
		UpdateAt: &now,
	}

	if err := config.DB.Create(&chapter).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create chapter"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Chapter created successfully",
		"chapter": chapter,
	})
}

// UpdateChapter updates an existing chapter (admin only)
func UpdateChapter(c *gin.Context) {
	id := c.Param("id")

	type UpdateChapterRequest struct {
		Name     string `json:"name"`
		Location string `json:"location"`
		State    string `json:"state"`
	}

	var req UpdateChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var chapter models.Chapter
	if err := config.DB.Where("chapter_id = ? AND delete_at IS NULL", id).
		First(&chapter).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chapter not found"})
		return
	}

	if req.Name != "" {
		chapter.Name = req.Name
	}
	if req.Location != "" {
		chapter.Location = req.Location
	}
	if req.State != "" {
		chapter.State = req.State
	}
	now := time.Now()
	chapter.UpdateAt = &now

	if err := config.DB.Save(&chapter).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update chapter"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Chapter updated successfully",
		"chapter": chapter,
	})
}

// DeleteChapter soft-deletes a chapter with no remaining schools (admin only)
func DeleteChapter(c *gin.Context) {
	id := c.Param("id")

	var chapter models.Chapter
	if err := config.DB.Where("chapter_id = ? AND delete_at IS NULL", id).
		First(&chapter).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chapter not found"})
		return
	}

	var schoolCount int64
	config.DB.Model(&models.School{}).
		Where("chapter_id = ? AND delete_at IS NULL", chapter.ChapterID).
		Count(&schoolCount)
	if schoolCount > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete a chapter with registered schools"})
		return
	}

	// Soft delete
	now := time.Now()
	chapter.DeleteAt = &now

	if err := config.DB.Save(&chapter).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete chapter"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Chapter deleted successfully"})
}
