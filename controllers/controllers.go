package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/HoangPhanDev98/jobhunt-backend/db"
	"github.com/HoangPhanDev98/jobhunt-backend/models"
	"github.com/HoangPhanDev98/jobhunt-backend/service"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const identityKey = "identity"

// identity returns the caller identity stored by the Authenticate
// middleware. Handlers behind the middleware may assume it is present.
func identity(c *gin.Context) models.Identity {
	return c.MustGet(identityKey).(models.Identity)
}

// pathID parses the :id path parameter. A malformed id is reported as a
// plain not-found, same as a well-formed id that matches nothing.
func pathID(c *gin.Context) (bson.ObjectID, bool) {
	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "not found"})
		return bson.ObjectID{}, false
	}
	return id, true
}

// abortError maps service errors to HTTP responses. Unexpected errors are
// logged and surfaced as an opaque 500.
func abortError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, db.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "not found"})
	case errors.Is(err, service.ErrEmailTaken):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Email already exists"})
	case errors.Is(err, service.ErrInvalidDateRange):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "End date can't be before start date"})
	default:
		slog.Error("request failed", "error", err, "path", c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}
