// Package coach turns study aggregates into short natural-language
// observations using an LLM, with the static insight templates as the
// caller's fallback when no provider is available.
package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/enpeak/linglog/internal/llm"
	"github.com/enpeak/linglog/internal/report"
)

// Config holds configuration for the LLM coach.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   256,
		Temperature: 0.6,
	}
}

// Coach generates personalized study observations via an LLM.
type Coach struct {
	provider llm.Provider
	cfg      Config
}

// New creates a Coach over the given provider.
func New(provider llm.Provider, cfg Config) *Coach {
	return &Coach{provider: provider, cfg: cfg}
}

// insightOutput is the raw LLM response.
type insightOutput struct {
	Messages []string `json:"messages"`
}

// Messages asks the LLM for one to three observations about the
// learner's recent activity. Callers should fall back to the template
// insights on error.
func (c *Coach) Messages(ctx context.Context, in report.InsightInput) ([]string, error) {
	userMsg, err := buildCoachMessage(in)
	if err != nil {
		return nil, fmt.Errorf("build coach prompt: %w", err)
	}

	resp, err := c.provider.Generate(ctx, llm.Request{
		System: coachSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      InsightSchema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM coaching failed: %w", err)
	}

	var raw insightOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse coach response: %w", err)
	}
	if len(raw.Messages) == 0 {
		return nil, fmt.Errorf("coach response contained no messages")
	}
	if len(raw.Messages) > 3 {
		raw.Messages = raw.Messages[:3]
	}
	return raw.Messages, nil
}

const coachSystemPrompt = `You are a supportive English-learning coach reviewing a learner's recent study activity.

Instructions:
- Write 1 to 3 observations, each one sentence.
- Ground every observation in the numbers provided. Do not invent data.
- Be encouraging but concrete. Mention a specific number when possible.
- Never scold the learner for low activity; suggest one small next step instead.`

var coachUserTemplate = template.Must(template.New("coach").Parse(`Current streak: {{.Streak}} days (best: {{.BestStreak}})
Words studied (lifetime): {{.TotalWords}}
Active days this week: {{.Weekly.TotalDays}}
Sessions this week: {{.Comparison.ThisWeek.Sessions}} (last week: {{.Comparison.LastWeek.Sessions}})
Words this week: {{.Comparison.ThisWeek.Words}} (last week: {{.Comparison.LastWeek.Words}})
{{- if gt .PeakCount 0}}
Most active hour: {{.PeakHour}}:00 ({{.PeakCount}} sessions)
{{- end}}
{{- if gt .TopCount 0}}
Favorite activity: {{.TopType}} ({{.TopCount}} sessions)
{{- end}}`))

func buildCoachMessage(in report.InsightInput) (string, error) {
	var buf bytes.Buffer
	if err := coachUserTemplate.Execute(&buf, in); err != nil {
		return "", err
	}
	return buf.String(), nil
}
