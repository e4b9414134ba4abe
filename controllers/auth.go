package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/HoangPhanDev98/jobhunt-backend/forms"
	"github.com/HoangPhanDev98/jobhunt-backend/service"
	"github.com/gin-gonic/gin"
)

const refreshCookie = "refresh_token"

// AuthController handles the session lifecycle endpoints and the access
// token middleware.
type AuthController struct {
	auth  *service.AuthService
	users *service.UserService
}

var authForm = new(forms.AuthForm)

func NewAuthController(auth *service.AuthService, users *service.UserService) *AuthController {
	return &AuthController{auth: auth, users: users}
}

// Register handles self-service account creation.
func (ctrl AuthController) Register(c *gin.Context) {
	var form forms.RegisterForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": authForm.Register(err)})
		return
	}

	user, err := ctrl.users.Register(c.Request.Context(), form)
	if err != nil {
		abortError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"_id": user.ID, "createdAt": user.CreatedAt})
}

// Login verifies credentials, opens a session and sets the refresh-token
// cookie. Invalid email and invalid password produce the same response.
func (ctrl AuthController) Login(c *gin.Context) {
	var form forms.LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": authForm.Login(err)})
		return
	}

	result, refresh, err := ctrl.auth.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
			return
		}
		abortError(c, err)
		return
	}

	ctrl.setRefreshCookie(c, refresh)
	c.JSON(http.StatusOK, result)
}

// Refresh rotates the session: the cookie token is exchanged for a new
// access/refresh pair and the cookie is replaced. Every failure mode is
// the same 401.
func (ctrl AuthController) Refresh(c *gin.Context) {
	token, _ := c.Cookie(refreshCookie)

	result, refresh, err := ctrl.auth.Refresh(c.Request.Context(), token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid refresh token"})
		return
	}

	ctrl.setRefreshCookie(c, refresh)
	c.JSON(http.StatusOK, result)
}

// Logout clears the stored refresh token and the cookie. Safe to call
// repeatedly.
func (ctrl AuthController) Logout(c *gin.Context) {
	if err := ctrl.auth.Logout(c.Request.Context(), identity(c).ID); err != nil {
		abortError(c, err)
		return
	}

	c.SetCookie(refreshCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

// Account returns the identity the access token already resolved to; no
// database read.
func (ctrl AuthController) Account(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": identity(c)})
}

// Authenticate is the gate in front of every protected route: it verifies
// the bearer access token and stores the caller identity in the context.
func (ctrl AuthController) Authenticate(c *gin.Context) {
	ident, err := ctrl.auth.VerifyAccessToken(bearerToken(c.Request))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Please login first"})
		return
	}

	c.Set(identityKey, ident)
	c.Next()
}

func (ctrl AuthController) setRefreshCookie(c *gin.Context, token string) {
	maxAge := int(ctrl.auth.RefreshExpire().Seconds())
	c.SetCookie(refreshCookie, token, maxAge, "/", "", false, true)
}

// bearerToken extracts the token from a well-formed bearer header. Any
// other Authorization scheme, or a bare token, yields an empty string.
func bearerToken(r *http.Request) string {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return ""
	}
	return token
}
