package controllers

import (
	"errors"
	"net/http"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	Svc    *services.ProgressService
	Habits *services.HabitService
}

func NewProgressController(svc *services.ProgressService, habits *services.HabitService) *ProgressController {
	return &ProgressController{Svc: svc, Habits: habits}
}

func (p *ProgressController) GetProgress(c *gin.Context) {
	userID := c.GetUint("userID")

	stats, err := p.Svc.Stats(c.Request.Context(), userID)
	if err != nil {
		// a store failure is a service error, never an empty result
		if errors.Is(err, services.ErrDataUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetImpact returns a rough total of kg CO2e saved across the user's log.
func (p *ProgressController) GetImpact(c *gin.Context) {
	userID := c.GetUint("userID")

	logs, err := p.Habits.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	names := make([]string, 0, len(logs))
	for _, l := range logs {
		names = append(names, l.HabitName)
	}

	c.JSON(http.StatusOK, gin.H{
		"total_actions": len(logs),
		"co2_saved_kg":  utils.TotalCO2Savings(names),
	})
}
