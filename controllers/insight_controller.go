package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type InsightController struct {
	Svc      *services.InsightService
	Progress *services.ProgressService
	Habits   *services.HabitService
	Users    *services.UserService
}

func NewInsightController(svc *services.InsightService, progress *services.ProgressService, habits *services.HabitService, users *services.UserService) *InsightController {
	return &InsightController{Svc: svc, Progress: progress, Habits: habits, Users: users}
}

func (i *InsightController) GetInsights(c *gin.Context) {
	if !i.Svc.Configured() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI service not configured"})
		return
	}

	userID := c.GetUint("userID")

	user, err := i.Users.FindByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	stats, err := i.Progress.Stats(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	recent, err := i.Habits.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, i.Svc.Generate(user.Name, stats, recent))
}
