package controllers

import (
	"bytes"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"school-outreach-api/config"
	"school-outreach-api/models"
	"school-outreach-api/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IssueCertificate generates the certificate for an approved, scored
// submission, stores the PDF in object storage, and records it. Issuing
// twice for the same submission returns the existing certificate.
func IssueCertificate(c *gin.Context) {
	type IssueRequest struct {
		SubmissionID int `json:"submission_id" binding:"required"`
	}

	var req IssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Find submission
	var submission models.EventSubmission
	if err := config.DB.Preload("Event").Preload("School").
		Where("submission_id = ? AND delete_at IS NULL", req.SubmissionID).
		First(&submission).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}

	if submission.Status != models.SubmissionStatusApproved || submission.Score == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only approved, scored submissions can receive a certificate"})
		return
	}

	// Idempotent per submission
	var existing models.Certificate
	if err := config.DB.Where("submission_id = ?", submission.SubmissionID).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusOK, gin.H{
			"message":     "Certificate already issued",
			"certificate": existing,
		})
		return
	}

	userID, _ := c.Get("userID")

	// Number allocation, render, upload, and insert share one transaction
	// so concurrent issuers cannot claim the same certificate number.
	var certificate models.Certificate
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		certificate = models.Certificate{
			SubmissionID:      submission.SubmissionID,
			CertificateNumber: generateCertificateNumber(tx),
			Tier:              services.TierForScore(*submission.Score),
			Score:             *submission.Score,
			SchoolName:        submission.School.Name,
			KCNumber:          submission.School.KCNumber,
			EventTitle:        submission.Event.Title,
			IssuedBy:          userID.(int),
			IssuedAt:          time.Now(),
		}

		pdfData, err := services.BuildCertificatePDF(certificate)
		if err != nil {
			return err
		}

		storedName := fmt.Sprintf("%s-%s.pdf", certificate.CertificateNumber, uuid.New().String())
		url, err := config.UploadToStorage(bytes.NewReader(pdfData), config.StorageFolderCertificates, storedName, "application/pdf")
		if err != nil {
			return err
		}

		certificate.PdfURL = url
		return tx.Create(&certificate).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue certificate"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Certificate issued successfully",
		"certificate": certificate,
	})
}

// GetCertificates returns issued certificates, filterable by tier and school
func GetCertificates(c *gin.Context) {
	var certificates []models.Certificate
	query := config.DB

	if tier := c.Query("tier"); tier != "" {
		query = query.Where("tier = ?", tier)
	}

	if kcNumber := c.Query("kc_number"); kcNumber != "" {
		query = query.Where("kc_number = ?", kcNumber)
	}

	if err := query.Order("issued_at DESC").Find(&certificates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch certificates"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"certificates": certificates,
		"total":        len(certificates),
	})
}

// DownloadCertificate redirects to the stored certificate PDF
func DownloadCertificate(c *gin.Context) {
	id := c.Param("id")

	var certificate models.Certificate
	if err := config.DB.Where("certificate_id = ?", id).
		First(&certificate).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Certificate not found"})
		return
	}

	c.Redirect(http.StatusFound, certificate.PdfURL)
}

// generateCertificateNumber allocates the next certificate identifier
// for the current year (CERT-YYYY-NNNN). The MAX read runs under a row
// lock inside the caller's transaction so concurrent issuance cannot
// pick the same number.
func generateCertificateNumber(tx *gorm.DB) string {
	prefix := fmt.Sprintf("CERT-%s", time.Now().Format("2006"))

	var current sql.NullString
	tx.Model(&models.Certificate{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("certificate_number LIKE ?", prefix+"-%").
		Select("MAX(certificate_number)").
		Scan(&current)

	return nextSerial(prefix, current.String)
}
