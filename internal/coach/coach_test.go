package coach

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/enpeak/linglog/internal/llm"
	"github.com/enpeak/linglog/internal/report"
)

func sampleInput() report.InsightInput {
	return report.InsightInput{
		Streak:     5,
		BestStreak: 12,
		TotalWords: 87,
		Weekly:     report.WeeklySummary{TotalSessions: 9, TotalDays: 4},
		Comparison: report.WeekComparison{
			ThisWeek: report.WeekMetrics{Sessions: 9, Words: 20, Days: 4},
			LastWeek: report.WeekMetrics{Sessions: 6, Words: 15, Days: 3},
			Changes:  report.WeekMetrics{Sessions: 3, Words: 5, Days: 1},
		},
		PeakHour:  20,
		PeakCount: 4,
		TopType:   "vocabulary",
		TopCount:  5,
	}
}

func TestCoach_ReturnsMessages(t *testing.T) {
	resp := json.RawMessage(`{"messages":["Five days straight — your streak is alive.","Sessions are up 3 on last week."]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	c := New(mock, DefaultConfig())

	msgs, err := c.Messages(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("Messages failed: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if msgs[0] != "Five days straight — your streak is alive." {
		t.Errorf("unexpected first message: %q", msgs[0])
	}
}

func TestCoach_PromptCarriesAggregates(t *testing.T) {
	resp := json.RawMessage(`{"messages":["ok"]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	c := New(mock, DefaultConfig())

	if _, err := c.Messages(context.Background(), sampleInput()); err != nil {
		t.Fatalf("Messages failed: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("got %d calls, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema != InsightSchema {
		t.Error("request did not carry the insight schema")
	}
	if len(req.Messages) != 1 {
		t.Fatalf("got %d messages in request, want 1", len(req.Messages))
	}
	prompt := req.Messages[0].Content
	for _, want := range []string{"Current streak: 5 days", "Words studied (lifetime): 87", "Favorite activity: vocabulary"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestCoach_TruncatesToThree(t *testing.T) {
	resp := json.RawMessage(`{"messages":["a","b","c","d","e"]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	c := New(mock, DefaultConfig())

	msgs, err := c.Messages(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("Messages failed: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("got %d messages, want 3", len(msgs))
	}
}

func TestCoach_EmptyMessagesIsError(t *testing.T) {
	resp := json.RawMessage(`{"messages":[]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	c := New(mock, DefaultConfig())

	if _, err := c.Messages(context.Background(), sampleInput()); err == nil {
		t.Fatal("expected error for empty message list")
	}
}

func TestCoach_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue → unavailable
	c := New(mock, DefaultConfig())

	if _, err := c.Messages(context.Background(), sampleInput()); err == nil {
		t.Fatal("expected error when provider is unavailable")
	}
}
