package controllers

import (
	"net/http"
	"time"

	"school-outreach-api/config"
	"school-outreach-api/models"

	"github.com/gin-gonic/gin"
)

// GetDonors returns all donors (admin only)
func GetDonors(c *gin.Context) {
	var donors []models.Donor
	query := config.DB.Where("delete_at IS NULL")

	if donorType := c.Query("type"); donorType != "" {
		query = query.Where("donor_type = ?", donorType)
	}

	if err := query.Order("name").Find(&donors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch donors"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"donors": donors,
		"total":  len(donors),
	})
}

// CreateDonor registers a donor (admin only)
func CreateDonor(c *gin.Context) {
	type CreateDonorRequest struct {
		Name      string  `json:"name" binding:"required"`
		Email     *string `json:"email" binding:"omitempty,email"`
		Phone     *string `json:"phone"`
		DonorType string  `json:"donor_type" binding:"required,oneof=individual organization"`
	}

	var req CreateDonorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	donor := models.Donor{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		DonorType: req.DonorType,
		CreateAt:  &now,
		UpdateAt:  &now,
	}

	if err := config.DB.Create(&donor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create donor"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Donor created successfully",
		"donor":   donor,
	})
}

// GetDonations returns donations with filters (admin only)
func GetDonations(c *gin.Context) {
	var donations []models.Donation
	query := config.DB.Preload("Donor").Where("donations.delete_at IS NULL")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if donationType := c.Query("type"); donationType != "" {
		query = query.Where("donation_type = ?", donationType)
	}

	if donorID := c.Query("donor_id"); donorID != "" {
		query = query.Where("donor_id = ?", donorID)
	}

	if err := query.Order("received_at DESC").Find(&donations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch donations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"donations": donations,
		"total":     len(donations),
	})
}

// CreateDonation records a manual donation entry (admin only)
func CreateDonation(c *gin.Context) {
	type CreateDonationRequest struct {
		DonorID       int        `json:"donor_id" binding:"required"`
		Amount        float64    `json:"amount" binding:"required,gt=0"`
		DonationType  string     `json:"donation_type" binding:"required"`
		PaymentMethod string     `json:"payment_method" binding:"required"`
		Status        string     `json:"status" binding:"omitempty,oneof=pending completed failed"`
		Recurring     bool       `json:"recurring"`
		ReceivedAt    *time.Time `json:"received_at"`
		Notes         *string    `json:"notes"`
	}

	var req CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Donor must exist
	var donor models.Donor
	if err := config.DB.Where("donor_id = ? AND delete_at IS NULL", req.DonorID).
		First(&donor).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid donor"})
		return
	}

	status := req.Status
	if status == "" {
		status = models.DonationStatusCompleted
	}

	receivedAt := req.ReceivedAt
	if receivedAt == nil {
		now := time.Now()
		receivedAt = &now
	}

	userID, _ := c.Get("userID")

	now := time.Now()
	donation := models.Donation{
		DonorID:       req.DonorID,
		Amount:        req.Amount,
		DonationType:  req.DonationType,
		PaymentMethod: req.PaymentMethod,
		Status:        status,
		Recurring:     req.Recurring,
		ReceivedAt:    receivedAt,
		Notes:         req.Notes,
		RecordedBy:    userID.(int),
		CreateAt:      &now,
		UpdateAt:      &now,
	}

	if err := config.DB.Create(&donation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record donation"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Donation recorded successfully",
		"donation": donation,
	})
}

// UpdateDonationStatus updates a donation's status (admin only)
func UpdateDonationStatus(c *gin.Context) {
	id := c.Param("id")

	type StatusRequest struct {
		Status string `json:"status" binding:"required,oneof=pending completed failed"`
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var donation models.Donation
	if err := config.DB.Where("donation_id = ? AND delete_at IS NULL", id).
		First(&donation).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
		return
	}

	now := time.Now()
	donation.Status = req.Status
	donation.UpdateAt = &now

	if err := config.DB.Save(&donation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update donation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Donation updated successfully",
		"donation": donation,
	})
}

// GetDonationSummary returns totals grouped by status and by type (admin only)
func GetDonationSummary(c *gin.Context) {
	type statusTotal struct {
		Status string  `json:"status"`
		Count  int64   `json:"count"`
		Total  float64 `json:"total"`
	}
	type typeTotal struct {
		DonationType string  `json:"donation_type"`
		Count        int64   `json:"count"`
		Total        float64 `json:"total"`
	}

	var byStatus []statusTotal
	if err := config.DB.Model(&models.Donation{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Where("delete_at IS NULL").
		Group("status").
		Scan(&byStatus).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to summarize donations"})
		return
	}

	var byType []typeTotal
	if err := config.DB.Model(&models.Donation{}).
		Select("donation_type, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Where("status = ? AND delete_at IS NULL", models.DonationStatusCompleted).
		Group("donation_type").
		Scan(&byType).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to summarize donations"})
		return
	}

	var grandTotal float64
	config.DB.Model(&models.Donation{}).
		Where("status = ? AND delete_at IS NULL", models.DonationStatusCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&grandTotal)

	c.JSON(http.StatusOK, gin.H{
		"by_status":   byStatus,
		"by_type":     byType,
		"grand_total": grandTotal,
	})
}
