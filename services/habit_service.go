package services

import (
	"errors"
	"strings"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

var ErrHabitNotFound = errors.New("habit not found")

type HabitService struct{ db *gorm.DB }

func NewHabitService(db *gorm.DB) *HabitService { return &HabitService{db: db} }

type HabitInput struct {
	HabitType   string     `json:"habit_type" binding:"required,oneof=preset custom"`
	HabitName   string     `json:"habit_name" binding:"required"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
}

func (s *HabitService) Create(userID uint, input HabitInput, photoURL string) (*models.HabitLog, error) {
	date := time.Now().UTC()
	if input.Date != nil {
		date = input.Date.UTC()
	}

	log := models.HabitLog{
		UserID:      userID,
		HabitType:   input.HabitType,
		HabitName:   input.HabitName,
		Description: input.Description,
		Date:        date,
		PhotoURL:    photoURL,
	}
	if err := s.db.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (s *HabitService) List(userID uint) ([]models.HabitLog, error) {
	var logs []models.HabitLog
	err := s.db.
		Where("user_id = ?", userID).
		Order("date desc").
		Limit(fetchCap).
		Find(&logs).Error
	return logs, err
}

func (s *HabitService) Get(userID, habitID uint) (*models.HabitLog, error) {
	var log models.HabitLog
	err := s.db.Where("id = ? AND user_id = ?", habitID, userID).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, err
	}
	return &log, nil
}

type HabitUpdate struct {
	HabitName   *string `json:"habit_name"`
	Description *string `json:"description"`
}

func (s *HabitService) Update(userID, habitID uint, upd HabitUpdate) (*models.HabitLog, error) {
	log, err := s.Get(userID, habitID)
	if err != nil {
		return nil, err
	}

	if upd.HabitName != nil {
		log.HabitName = *upd.HabitName
	}
	if upd.Description != nil {
		log.Description = *upd.Description
	}
	if err := s.db.Save(log).Error; err != nil {
		return nil, err
	}
	return log, nil
}

func (s *HabitService) Delete(userID, habitID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", habitID, userID).Delete(&models.HabitLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrHabitNotFound
	}
	return nil
}

// presetHabits is the fixed catalogue of suggested green actions.
var presetHabits = []models.PresetHabit{
	{Name: "Recycled items", Description: "Recycled paper, plastic, or other materials"},
	{Name: "Used public transport", Description: "Took bus, train, or other public transportation"},
	{Name: "Saved water", Description: "Took a shorter shower or reused water"},
	{Name: "Ate plant-based meal", Description: "Had a vegetarian or vegan meal"},
	{Name: "Walked or biked", Description: "Chose walking or cycling over driving"},
	{Name: "Reduced energy usage", Description: "Turned off lights, unplugged devices, or used less AC"},
	{Name: "Bought local/organic", Description: "Purchased locally sourced or organic products"},
	{Name: "Avoided single-use plastic", Description: "Used reusable bags, bottles, or containers"},
	{Name: "Composted", Description: "Composted food scraps or organic waste"},
	{Name: "Planted something", Description: "Planted trees, flowers, or started a garden"},
}

func (s *HabitService) PresetHabits() []models.PresetHabit { return presetHabits }

// presetKeywords maps detected image labels to preset habits.
var presetKeywords = map[string]string{
	"bicycle":    "Walked or biked",
	"bike":       "Walked or biked",
	"walking":    "Walked or biked",
	"bus":        "Used public transport",
	"train":      "Used public transport",
	"tram":       "Used public transport",
	"recycling":  "Recycled items",
	"bottle":     "Avoided single-use plastic",
	"bag":        "Avoided single-use plastic",
	"vegetable":  "Ate plant-based meal",
	"salad":      "Ate plant-based meal",
	"fruit":      "Ate plant-based meal",
	"plant":      "Planted something",
	"tree":       "Planted something",
	"garden":     "Planted something",
	"flower":     "Planted something",
	"compost":    "Composted",
	"soil":       "Composted",
	"market":     "Bought local/organic",
}

// MatchPresetsByLabels returns the preset habits suggested by a set of image
// labels, deduplicated, in label order.
func MatchPresetsByLabels(labels []string) []models.PresetHabit {
	seen := map[string]bool{}
	var out []models.PresetHabit
	for _, label := range labels {
		name, ok := presetKeywords[strings.ToLower(strings.TrimSpace(label))]
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		for _, p := range presetHabits {
			if p.Name == name {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
