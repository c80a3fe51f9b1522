// seed-demo loads demonstration fixtures into the configured database.
// Demo data is loaded explicitly through this command; the API itself never
// substitutes fixtures for live data.
package main

import (
	"log"
	"time"

	"school-outreach-api/config"
	"school-outreach-api/models"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.InitDB()

	if err := config.DB.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Chapter{},
		&models.School{},
		&models.Event{},
		&models.EventAssignment{},
		&models.EventSubmission{},
		&models.MediaFile{},
		&models.Publication{},
		&models.ReviewRecord{},
		&models.StatusHistory{},
		&models.Donor{},
		&models.Donation{},
		&models.Certificate{},
	); err != nil {
		log.Fatal("Migration failed:", err)
	}

	seed()
	log.Println("Demo fixtures loaded")
}

func hash(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}
	return string(bytes)
}

func seed() {
	now := time.Now()

	roles := []models.Role{
		{RoleID: models.RoleSchool, Role: "school", CreateAt: &now},
		{RoleID: models.RoleEvaluator, Role: "evaluator", CreateAt: &now},
		{RoleID: models.RoleAdmin, Role: "admin", CreateAt: &now},
	}
	for _, role := range roles {
		config.DB.FirstOrCreate(&role, models.Role{RoleID: role.RoleID})
	}

	chapters := []models.Chapter{
		{Name: "Mumbai Karuna Kendra", Location: "Mumbai", State: "Maharashtra", CreateAt: &now, UpdateAt: &now},
		{Name: "Pune Karuna Kendra", Location: "Pune", State: "Maharashtra", CreateAt: &now, UpdateAt: &now},
		{Name: "Nagpur Karuna Kendra", Location: "Nagpur", State: "Maharashtra", CreateAt: &now, UpdateAt: &now},
	}
	for i := range chapters {
		config.DB.FirstOrCreate(&chapters[i], models.Chapter{Name: chapters[i].Name})
	}

	admin := models.User{
		FullName: "Program Administrator",
		Email:    "admin@outreach.example.org",
		Password: hash("admin-demo-pass"),
		RoleID:   models.RoleAdmin,
		CreateAt: &now,
		UpdateAt: &now,
	}
	config.DB.FirstOrCreate(&admin, models.User{Email: admin.Email})

	evaluator := models.User{
		FullName: "Demo Evaluator",
		Email:    "evaluator@outreach.example.org",
		Password: hash("evaluator-demo-pass"),
		RoleID:   models.RoleEvaluator,
		CreateAt: &now,
		UpdateAt: &now,
	}
	config.DB.FirstOrCreate(&evaluator, models.User{Email: evaluator.Email})

	approvedAt := now.AddDate(0, -2, 0)
	schools := []models.School{
		{
			KCNumber: "KC-2025-0001", Name: "Green Valley School",
			PrincipalName: "A. Deshmukh", ContactPhone: "9820000001",
			Email: "greenvalley@outreach.example.org", ChapterID: chapters[0].ChapterID,
			Status: models.SchoolStatusApproved, ApprovedAt: &approvedAt,
			CreateAt: &now, UpdateAt: &now,
		},
		{
			KCNumber: "KC-2025-0002", Name: "Hillside Academy",
			PrincipalName: "R. Kulkarni", ContactPhone: "9820000002",
			Email: "hillside@outreach.example.org", ChapterID: chapters[1].ChapterID,
			Status: models.SchoolStatusApproved, ApprovedAt: &approvedAt,
			CreateAt: &now, UpdateAt: &now,
		},
		{
			KCNumber: "KC-2025-0003", Name: "Riverside School",
			PrincipalName: "S. Patil", ContactPhone: "9820000003",
			Email: "riverside@outreach.example.org", ChapterID: chapters[0].ChapterID,
			Status: models.SchoolStatusPending,
			CreateAt: &now, UpdateAt: &now,
		},
	}
	for i := range schools {
		config.DB.FirstOrCreate(&schools[i], models.School{KCNumber: schools[i].KCNumber})
		account := models.User{
			FullName: schools[i].PrincipalName,
			Email:    schools[i].Email,
			Password: hash("school-demo-pass"),
			RoleID:   models.RoleSchool,
			SchoolID: &schools[i].SchoolID,
			CreateAt: &now,
			UpdateAt: &now,
		}
		config.DB.FirstOrCreate(&account, models.User{Email: account.Email})
	}

	start := now.AddDate(0, -1, 0)
	end := now.AddDate(0, 1, 0)
	programType := "environment"
	event := models.Event{
		Title:       "Tree Plantation Drive",
		Description: "Plant and adopt saplings around the school campus.",
		Location:    "School campuses",
		StartDate:   &start,
		EndDate:     &end,
		ProgramType: &programType,
		Status:      models.EventStatusActive,
		CreatedBy:   admin.UserID,
		CreateAt:    &now,
		UpdateAt:    &now,
	}
	config.DB.FirstOrCreate(&event, models.Event{Title: event.Title})

	deadline := now.AddDate(0, 2, 0)
	for i := range chapters {
		assignment := models.EventAssignment{
			EventID:    event.EventID,
			ChapterID:  &chapters[i].ChapterID,
			Deadline:   &deadline,
			AssignedBy: admin.UserID,
			AssignedAt: now,
		}
		config.DB.FirstOrCreate(&assignment, models.EventAssignment{
			EventID:   event.EventID,
			ChapterID: &chapters[i].ChapterID,
		})
	}

	scores := []int{92, 78}
	comments := []string{"Excellent documentation and turnout.", "Good effort, add more photos next time."}
	for i := 0; i < 2; i++ {
		submitted := now.AddDate(0, 0, -10+i)
		reviewed := now.AddDate(0, 0, -5+i)
		submission := models.EventSubmission{
			EventID:      event.EventID,
			SchoolID:     schools[i].SchoolID,
			Description:  "Planted 50 saplings with student volunteers.",
			Status:       models.SubmissionStatusApproved,
			Score:        &scores[i],
			AdminComment: &comments[i],
			SubmittedAt:  &submitted,
			ReviewedAt:   &reviewed,
			ReviewedBy:   &evaluator.UserID,
			CreateAt:     &now,
			UpdateAt:     &now,
		}
		config.DB.FirstOrCreate(&submission, models.EventSubmission{
			EventID:  event.EventID,
			SchoolID: schools[i].SchoolID,
		})
	}

	email := "trust@donor.example.org"
	donor := models.Donor{
		Name:      "Seva Charitable Trust",
		Email:     &email,
		DonorType: "organization",
		CreateAt:  &now,
		UpdateAt:  &now,
	}
	config.DB.FirstOrCreate(&donor, models.Donor{Name: donor.Name})

	received := now.AddDate(0, 0, -15)
	donation := models.Donation{
		DonorID:       donor.DonorID,
		Amount:        50000,
		DonationType:  "general",
		PaymentMethod: "bank_transfer",
		Status:        models.DonationStatusCompleted,
		ReceivedAt:    &received,
		RecordedBy:    admin.UserID,
		CreateAt:      &now,
		UpdateAt:      &now,
	}
	config.DB.FirstOrCreate(&donation, models.Donation{
		DonorID: donor.DonorID,
		Amount:  donation.Amount,
	})
}
