package services

import (
	"quiz-platform-backend/internal/models"

	"gorm.io/gorm"
)

type CompanyService struct {
	db *gorm.DB
}

func NewCompanyService(db *gorm.DB) *CompanyService {
	return &CompanyService{db: db}
}

func (s *CompanyService) ListCompanies() ([]models.Company, error) {
	var companies []models.Company
	if err := s.db.Order("name ASC").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

func (s *CompanyService) CreateCompany(name string) (*models.Company, error) {
	company := models.Company{Name: name}
	if err := s.db.Create(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}
