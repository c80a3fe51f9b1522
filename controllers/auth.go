package controllers

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"school-outreach-api/config"
	"school-outreach-api/middleware"
	"school-outreach-api/models"
	"school-outreach-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token   string      `json:"token"`
	User    models.User `json:"user"`
	Message string      `json:"message"`
}

// RegisterSchool creates a school (status pending) together with its login
// account in one transaction. The school stays invisible to activity
// assignment until an admin approves it.
func RegisterSchool(c *gin.Context) {
	type RegisterSchoolRequest struct {
		SchoolName    string `json:"school_name" binding:"required"`
		PrincipalName string `json:"principal_name" binding:"required"`
		ContactPhone  string `json:"contact_phone" binding:"required"`
		Email         string `json:"email" binding:"required"`
		ChapterID     int    `json:"chapter_id" binding:"required"`
		Password      string `json:"password" binding:"required"`
	}

	var req RegisterSchoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.ValidateEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
		return
	}

	if ok, msg := utils.ValidatePassword(req.Password); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	// Chapter must exist
	var chapter models.Chapter
	if err := config.DB.Where("chapter_id = ? AND delete_at IS NULL", req.ChapterID).
		First(&chapter).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chapter"})
		return
	}

	// Email must be unused
	var existing models.User
	if err := config.DB.Where("email = ? AND delete_at IS NULL", req.Email).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email is already registered"})
		return
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process password"})
		return
	}

	now := time.Now()
	school := models.School{
		Name:          utils.SanitizeInput(req.SchoolName),
		PrincipalName: utils.SanitizeInput(req.PrincipalName),
		ContactPhone:  utils.SanitizeInput(req.ContactPhone),
		Email:         req.Email,
		ChapterID:     req.ChapterID,
		Status:        models.SchoolStatusPending,
		CreateAt:      &now,
		UpdateAt:      &now,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		school.KCNumber = generateKCNumber(tx)
		if err := tx.Create(&school).Error; err != nil {
			return err
		}
		user := models.User{
			FullName: school.PrincipalName,
			Email:    req.Email,
			Password: hashed,
			RoleID:   models.RoleSchool,
			SchoolID: &school.SchoolID,
			CreateAt: &now,
			UpdateAt: &now,
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register school"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "School registered successfully, pending approval",
		"school":  school,
	})
}

// Login handles user authentication
func Login(c *gin.Context) {
	var req LoginRequest

	// Bind request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Find user by email
	var user models.User
	if err := config.DB.Preload("Role").Preload("School").
		Where("email = ? AND delete_at IS NULL", req.Email).
		First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	// Check password
	if !CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	// Generate JWT token
	token, err := generateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	// Response
	c.JSON(http.StatusOK, LoginResponse{
		Token:   token,
		User:    user,
		Message: "Login successful",
	})
}

// GetProfile returns current user profile
func GetProfile(c *gin.Context) {
	userID, _ := c.Get("userID")

	var user models.User
	if err := config.DB.Preload("Role").Preload("School").Preload("School.Chapter").
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": user,
	})
}

// ChangePassword handles password change
func ChangePassword(c *gin.Context) {
	type PasswordChangeRequest struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required"`
	}

	var req PasswordChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if ok, msg := utils.ValidatePassword(req.NewPassword); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	userID, _ := c.Get("userID")

	// Get current user
	var user models.User
	if err := config.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	// Verify current password
	if !CheckPasswordHash(req.CurrentPassword, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect"})
		return
	}

	hashed, err := HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process password"})
		return
	}

	// Update password
	now := time.Now()
	user.Password = hashed
	user.UpdateAt = &now

	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

// generateToken creates JWT token
func generateToken(user models.User) (string, error) {
	// Get expiration hours from env
	expireHours, err := strconv.Atoi(os.Getenv("JWT_EXPIRE_HOURS"))
	if err != nil {
		expireHours = 24 // default 24 hours
	}

	// Create claims
	claims := middleware.Claims{
		UserID:   user.UserID,
		Email:    user.Email,
		RoleID:   user.RoleID,
		SchoolID: user.SchoolID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expireHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	// Create token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// Sign token
	tokenString, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// generateKCNumber allocates the next school identifier for the current
// year (KC-YYYY-NNNN). The MAX read runs under a row lock inside the
// caller's transaction so concurrent registrations cannot pick the same
// number.
func generateKCNumber(tx *gorm.DB) string {
	prefix := fmt.Sprintf("KC-%s", time.Now().Format("2006"))

	var current sql.NullString
	tx.Model(&models.School{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("kc_number LIKE ?", prefix+"-%").
		Select("MAX(kc_number)").
		Scan(&current)

	return nextSerial(prefix, current.String)
}

// HashPassword hashes password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares password with hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
