package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type HabitController struct {
	Svc      *services.HabitService
	Vision   *services.VisionService
	Uploader *utils.Uploader
}

func NewHabitController(svc *services.HabitService, vision *services.VisionService, uploader *utils.Uploader) *HabitController {
	return &HabitController{Svc: svc, Vision: vision, Uploader: uploader}
}

type createHabitInput struct {
	services.HabitInput
	PhotoBase64 string `json:"photo_base64"`
}

func (h *HabitController) CreateHabit(c *gin.Context) {
	userID := c.GetUint("userID")

	var input createHabitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var photoURL string
	if input.PhotoBase64 != "" && h.Uploader != nil {
		url, err := h.Uploader.UploadBase64Image(input.PhotoBase64, fmt.Sprintf("habit-photos/%d", userID))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Photo upload failed", "detail": err.Error()})
			return
		}
		photoURL = url
	}

	log, err := h.Svc.Create(userID, input.HabitInput, photoURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, log)
}

func (h *HabitController) ListHabits(c *gin.Context) {
	userID := c.GetUint("userID")

	logs, err := h.Svc.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *HabitController) GetHabit(c *gin.Context) {
	userID := c.GetUint("userID")
	habitID, ok := habitIDParam(c)
	if !ok {
		return
	}

	log, err := h.Svc.Get(userID, habitID)
	if err != nil {
		if errors.Is(err, services.ErrHabitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Habit not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, log)
}

func (h *HabitController) UpdateHabit(c *gin.Context) {
	userID := c.GetUint("userID")
	habitID, ok := habitIDParam(c)
	if !ok {
		return
	}

	var upd services.HabitUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := h.Svc.Update(userID, habitID, upd)
	if err != nil {
		if errors.Is(err, services.ErrHabitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Habit not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, log)
}

func (h *HabitController) DeleteHabit(c *gin.Context) {
	userID := c.GetUint("userID")
	habitID, ok := habitIDParam(c)
	if !ok {
		return
	}

	if err := h.Svc.Delete(userID, habitID); err != nil {
		if errors.Is(err, services.ErrHabitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Habit not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Habit deleted successfully"})
}

func (h *HabitController) PresetHabits(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.PresetHabits())
}

type suggestInput struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// SuggestFromPhoto runs label detection on a photo of a green action and
// maps the labels to preset habits.
func (h *HabitController) SuggestFromPhoto(c *gin.Context) {
	if h.Vision == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image recognition not configured"})
		return
	}

	var input suggestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	labels, err := h.Vision.DetectActionLabels(c.Request.Context(), input.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"labels":      labels,
		"suggestions": services.MatchPresetsByLabels(labels),
	})
}

func habitIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid habit id"})
		return 0, false
	}
	return uint(id), true
}
