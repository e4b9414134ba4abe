package controllers

import (
	"net/http"

	"github.com/HoangPhanDev98/jobhunt-backend/db"
	"github.com/HoangPhanDev98/jobhunt-backend/forms"
	"github.com/HoangPhanDev98/jobhunt-backend/service"
	"github.com/gin-gonic/gin"
)

// UserController handles user CRUD endpoints.
type UserController struct {
	users *service.UserService
}

func NewUserController(users *service.UserService) *UserController {
	return &UserController{users: users}
}

func (ctrl UserController) Create(c *gin.Context) {
	var form forms.CreateUserForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": forms.Message(err, nil)})
		return
	}

	user, err := ctrl.users.Create(c.Request.Context(), form, identity(c))
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"_id": user.ID, "createdAt": user.CreatedAt})
}

func (ctrl UserController) List(c *gin.Context) {
	q := db.ParseUserQuery(c.Request.URL.Query())

	list, err := ctrl.users.List(c.Request.Context(), q)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (ctrl UserController) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := ctrl.users.Get(c.Request.Context(), id)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (ctrl UserController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var form forms.UpdateUserForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": forms.Message(err, nil)})
		return
	}

	if err := ctrl.users.Update(c.Request.Context(), id, form, identity(c)); err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated"})
}

func (ctrl UserController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ctrl.users.Remove(c.Request.Context(), id, identity(c)); err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

func (ctrl UserController) Restore(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ctrl.users.Restore(c.Request.Context(), id); err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User restored"})
}
