package controllers

import (
	"net/http"

	"github.com/HoangPhanDev98/jobhunt-backend/db"
	"github.com/HoangPhanDev98/jobhunt-backend/forms"
	"github.com/HoangPhanDev98/jobhunt-backend/service"
	"github.com/gin-gonic/gin"
)

// CompanyController handles company CRUD endpoints.
type CompanyController struct {
	companies *service.CompanyService
}

func NewCompanyController(companies *service.CompanyService) *CompanyController {
	return &CompanyController{companies: companies}
}

func (ctrl CompanyController) Create(c *gin.Context) {
	var form forms.CompanyForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": forms.Message(err, nil)})
		return
	}

	company, err := ctrl.companies.Create(c.Request.Context(), form, identity(c))
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"_id": company.ID, "createdAt": company.CreatedAt})
}

func (ctrl CompanyController) List(c *gin.Context) {
	q := db.ParseCompanyQuery(c.Request.URL.Query())

	list, err := ctrl.companies.List(c.Request.Context(), q)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (ctrl CompanyController) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	company, err := ctrl.companies.Get(c.Request.Context(), id)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

func (ctrl CompanyController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var form forms.CompanyForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": forms.Message(err, nil)})
		return
	}

	if err := ctrl.companies.Update(c.Request.Context(), id, form, identity(c)); err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Company updated"})
}

func (ctrl CompanyController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ctrl.companies.Remove(c.Request.Context(), id, identity(c)); err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Company deleted"})
}

func (ctrl CompanyController) Restore(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ctrl.companies.Restore(c.Request.Context(), id); err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Company restored"})
}
