package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

const serviceName = "jobhunt-backend"

// HealthController reports service liveness and database reachability.
type HealthController struct {
	ping func(context.Context) error
}

// NewHealthController builds a health endpoint around a readiness probe,
// typically the database ping.
func NewHealthController(ping func(context.Context) error) *HealthController {
	return &HealthController{ping: ping}
}

// Health returns 200 while the probe answers and 503 once it stops, so
// load balancers can drain the instance.
func (ctrl HealthController) Health(c *gin.Context) {
	if err := ctrl.ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "service": serviceName})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": serviceName})
}
