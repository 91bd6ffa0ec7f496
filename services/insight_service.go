package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"backend/models"
)

type InsightService struct {
	client *http.Client
	token  string
	model  string
}

func NewInsightService(token string) *InsightService {
	return &InsightService{
		client: &http.Client{Timeout: 15 * time.Second}, // cold models can be slow
		token:  token,
		model:  "google/flan-t5-small",
	}
}

func (s *InsightService) Configured() bool { return s.token != "" }

// Generate asks the model for three insights based on the user's stats and
// recent habits. Any generation or parsing failure degrades to the
// deterministic fallback set; the endpoint never fails once configured.
func (s *InsightService) Generate(userName string, stats *ProgressStats, recent []models.HabitLog) []models.AIInsight {
	prompt := buildInsightPrompt(userName, stats, recent)

	raw, err := s.generateText(prompt)
	if err != nil {
		return fallbackInsights(stats)
	}

	insights, err := parseInsights(raw)
	if err != nil {
		return fallbackInsights(stats)
	}
	return insights
}

func (s *InsightService) generateText(prompt string) (string, error) {
	body := map[string]any{
		"inputs": prompt,
		"parameters": map[string]any{
			"max_new_tokens": 256,
			"temperature":    0.2,
		},
	}
	b, _ := json.Marshal(body)

	req, _ := http.NewRequest(
		"POST",
		fmt.Sprintf("https://api-inference.huggingface.co/models/%s", s.model),
		bytes.NewReader(b),
	)
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")
	// wait for cold models instead of getting a "loading" error back
	req.Header.Set("x-wait-for-model", "true")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("hf request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read hf response error: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var hfErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBytes, &hfErr) == nil && hfErr.Error != "" {
			return "", fmt.Errorf("hf api error (%d): %s", resp.StatusCode, hfErr.Error)
		}
		return "", fmt.Errorf("hf api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var hfOut []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(respBytes, &hfOut); err != nil {
		return "", fmt.Errorf("decode hf response error: %w", err)
	}
	if len(hfOut) == 0 || strings.TrimSpace(hfOut[0].GeneratedText) == "" {
		return "", fmt.Errorf("empty response from hf")
	}
	return hfOut[0].GeneratedText, nil
}

func buildInsightPrompt(userName string, stats *ProgressStats, recent []models.HabitLog) string {
	var names []string
	seen := map[string]bool{}
	for _, h := range recent {
		if len(names) >= 5 {
			break
		}
		if seen[h.HabitName] {
			continue
		}
		seen[h.HabitName] = true
		names = append(names, h.HabitName)
	}

	var sb strings.Builder
	sb.WriteString("You are a sustainability coach for the GreenSteps app.\n\n")
	fmt.Fprintf(&sb, "User: %s\n", userName)
	fmt.Fprintf(&sb, "Total habits logged: %d\n", stats.TotalHabits)
	fmt.Fprintf(&sb, "Habits this week: %d\n", stats.ThisWeek)
	fmt.Fprintf(&sb, "Habits this month: %d\n", stats.ThisMonth)
	fmt.Fprintf(&sb, "Current streak: %d days\n", stats.CurrentStreak)
	fmt.Fprintf(&sb, "Recent habits: %s\n", strings.Join(names, ", "))
	sb.WriteString(`
Generate exactly 3 insights as a JSON array of objects with keys
"insight_type" ("tip", "motivation" or "suggestion"), "title", "content"
and "emoji". Keep each content under 150 characters, be specific to the
habit patterns above, use an encouraging tone, and return only the JSON
array.`)
	return sb.String()
}

// parseInsights accepts the raw model output, which may be wrapped in a
// Markdown code fence, and decodes the JSON array.
func parseInsights(raw string) ([]models.AIInsight, error) {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var insights []models.AIInsight
	if err := json.Unmarshal([]byte(text), &insights); err != nil {
		return nil, fmt.Errorf("decode insights: %w", err)
	}
	if len(insights) == 0 {
		return nil, fmt.Errorf("no insights in response")
	}
	return insights, nil
}

func fallbackInsights(stats *ProgressStats) []models.AIInsight {
	return []models.AIInsight{
		{
			InsightType: "tip",
			Title:       "Great Progress!",
			Content:     fmt.Sprintf("You've logged %d habits this week! Keep building that momentum.", stats.ThisWeek),
			Emoji:       "💡",
		},
		{
			InsightType: "motivation",
			Title:       "Streak Power",
			Content:     fmt.Sprintf("Your %d-day streak shows real commitment to sustainability!", stats.CurrentStreak),
			Emoji:       "🌟",
		},
		{
			InsightType: "suggestion",
			Title:       "Try Something New",
			Content:     "Consider starting a small herb garden - it's sustainable and rewarding!",
			Emoji:       "🌱",
		},
	}
}
