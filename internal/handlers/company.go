package handlers

import (
	"log"
	"net/http"

	"quiz-platform-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyService *services.CompanyService
}

func NewCompanyHandler(companyService *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

type CreateCompanyRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255" example:"Acme"`
}

// ListCompanies godoc
// @Summary      List all companies
// @Description  Get all companies ordered by name
// @Tags         companies
// @Produce      json
// @Security     AdminToken
// @Success      200 {array} Company
// @Failure      401 {object} ErrorResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	companies, err := h.companyService.ListCompanies()
	if err != nil {
		log.Printf("list companies: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, companies)
}

// CreateCompany godoc
// @Summary      Create a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     AdminToken
// @Param        request body CreateCompanyRequest true "Company data"
// @Success      201 {object} Company
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/companies [post]
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "name required"})
		return
	}

	company, err := h.companyService.CreateCompany(req.Name)
	if err != nil {
		log.Printf("create company: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, company)
}
