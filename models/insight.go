package models

// AIInsight is returned by the insights endpoint, never persisted.
type AIInsight struct {
	InsightType string `json:"insight_type"` // "tip" | "motivation" | "suggestion" | "impact"
	Title       string `json:"title"`
	Content     string `json:"content"`
	Emoji       string `json:"emoji"`
}
