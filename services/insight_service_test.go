package services

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInsightsPlainJSON(t *testing.T) {
	raw := `[{"insight_type":"tip","title":"T","content":"C","emoji":"💡"}]`

	insights, err := parseInsights(raw)
	require.NoError(t, err)
	require.Len(t, insights, 1)
	assert.Equal(t, "tip", insights[0].InsightType)
	assert.Equal(t, "T", insights[0].Title)
}

func TestParseInsightsStripsCodeFence(t *testing.T) {
	raw := "```json\n[{\"insight_type\":\"motivation\",\"title\":\"Go\",\"content\":\"Nice\",\"emoji\":\"🌟\"}]\n```"

	insights, err := parseInsights(raw)
	require.NoError(t, err)
	require.Len(t, insights, 1)
	assert.Equal(t, "motivation", insights[0].InsightType)
}

func TestParseInsightsRejectsGarbage(t *testing.T) {
	_, err := parseInsights("the model rambled instead of returning JSON")
	assert.Error(t, err)

	_, err = parseInsights("[]")
	assert.Error(t, err)
}

func TestBuildInsightPromptIncludesStats(t *testing.T) {
	stats := &ProgressStats{TotalHabits: 12, ThisWeek: 4, ThisMonth: 9, CurrentStreak: 3}
	recent := []models.HabitLog{
		{HabitName: "Composted"},
		{HabitName: "Walked or biked"},
		{HabitName: "Composted"}, // duplicate, should appear once
	}

	prompt := buildInsightPrompt("Sam", stats, recent)
	assert.Contains(t, prompt, "User: Sam")
	assert.Contains(t, prompt, "Total habits logged: 12")
	assert.Contains(t, prompt, "Current streak: 3 days")
	assert.Contains(t, prompt, "Composted, Walked or biked")
}

func TestFallbackInsights(t *testing.T) {
	stats := &ProgressStats{ThisWeek: 5, CurrentStreak: 2}

	insights := fallbackInsights(stats)
	require.Len(t, insights, 3)
	assert.Equal(t, "tip", insights[0].InsightType)
	assert.Equal(t, "motivation", insights[1].InsightType)
	assert.Equal(t, "suggestion", insights[2].InsightType)
	assert.Contains(t, insights[0].Content, "5 habits this week")
	assert.Contains(t, insights[1].Content, "2-day streak")
}

func TestGenerateFallsBackWhenUnreachable(t *testing.T) {
	svc := NewInsightService("test-token")
	svc.model = "nonexistent/model"
	svc.client.Timeout = 1 // effectively unreachable

	insights := svc.Generate("Sam", &ProgressStats{ThisWeek: 1}, nil)
	require.Len(t, insights, 3)
}
