package services_test

import (
	"testing"

	"quiz-platform-backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	// A fresh connection would be a fresh in-memory database.
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Company{},
		&models.Quiz{},
		&models.Session{},
		&models.Participant{},
		&models.Response{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func sampleContent() models.QuizContent {
	return models.QuizContent{
		Title:       "T",
		Description: "sample",
		Questions: []models.QuizQuestion{
			{
				Question:           "Q1",
				Options:            []string{"A", "B", "C", "D"},
				CorrectAnswerIndex: 1,
				Explanation:        "B is right",
			},
			{
				Question:           "Q2",
				Options:            []string{"Yes", "No"},
				CorrectAnswerIndex: 0,
			},
		},
	}
}
