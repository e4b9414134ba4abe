package controllers

import (
	"net/http"

	"github.com/HoangPhanDev98/jobhunt-backend/db"
	"github.com/HoangPhanDev98/jobhunt-backend/forms"
	"github.com/HoangPhanDev98/jobhunt-backend/service"
	"github.com/gin-gonic/gin"
)

// JobController handles job-posting CRUD endpoints.
type JobController struct {
	jobs *service.JobService
}

func NewJobController(jobs *service.JobService) *JobController {
	return &JobController{jobs: jobs}
}

func (ctrl JobController) Create(c *gin.Context) {
	var form forms.JobForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": forms.Message(err, nil)})
		return
	}

	job, err := ctrl.jobs.Create(c.Request.Context(), form, identity(c))
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"_id": job.ID, "createdAt": job.CreatedAt})
}

func (ctrl JobController) List(c *gin.Context) {
	q := db.ParseJobQuery(c.Request.URL.Query())

	list, err := ctrl.jobs.List(c.Request.Context(), q)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (ctrl JobController) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	job, err := ctrl.jobs.Get(c.Request.Context(), id)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (ctrl JobController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var form forms.JobForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": forms.Message(err, nil)})
		return
	}

	if err := ctrl.jobs.Update(c.Request.Context(), id, form, identity(c)); err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job updated"})
}

func (ctrl JobController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ctrl.jobs.Remove(c.Request.Context(), id, identity(c)); err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

func (ctrl JobController) Restore(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ctrl.jobs.Restore(c.Request.Context(), id); err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job restored"})
}
