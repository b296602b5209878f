package models

import "time"

type Session struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CompanyID uint      `gorm:"not null;index" json:"companyId"`
	Company   Company   `gorm:"foreignKey:CompanyID" json:"-"`
	QuizID    uint      `gorm:"not null;index" json:"quizId"`
	Quiz      Quiz      `gorm:"foreignKey:QuizID" json:"-"`
	Slug      string    `gorm:"size:12;uniqueIndex;not null" json:"slug"`
	Status    string    `gorm:"size:20;not null;default:'active'" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

const (
	SessionStatusActive = "active"
	SessionStatusClosed = "closed"
)
