package mirror

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enpeak/linglog/internal/history"
	"github.com/enpeak/linglog/internal/store"
)

func samplePayloadInput() ([]history.Record, store.StatsData) {
	records := []history.Record{
		{
			ID:          "1_abc",
			Type:        history.TypeVocabulary,
			Title:       "Daily words",
			Word:        "serendipity",
			Duration:    180,
			CompletedAt: time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC),
			Details:     &history.QuizDetails{Level: "B1", CorrectCount: 8, TotalCount: 10},
		},
	}
	stats := store.StatsData{
		LastActiveDate: "2026-08-28",
		Streak:         4,
		BestStreak:     9,
		TodayDate:      "2026-08-28",
		TodaySessions:  2,
		TodayMinutes:   11,
		TodayWords:     1,
		TodayScenarios: 1,
	}
	return records, stats
}

func TestHTTPSyncer_PostsAccountDocument(t *testing.T) {
	var got map[string]json.RawMessage
	var auth, contentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		contentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	syncer := NewHTTPSyncer(Config{URL: server.URL, Token: "tok123"})
	records, stats := samplePayloadInput()

	dispatcher := NewDispatcher(syncer, 4)
	dispatcher.Notify(records, stats)
	dispatcher.Close()

	require.NotNil(t, got["learningHistory"])
	require.NotNil(t, got["learningStats"])
	assert.Equal(t, "Bearer tok123", auth)
	assert.Equal(t, "application/json", contentType)

	var gotStats struct {
		LastActiveDate string `json:"lastActiveDate"`
		Streak         int    `json:"streak"`
		TodayStats     struct {
			Date            string `json:"date"`
			TotalSessions   int    `json:"totalSessions"`
			VocabularyWords int    `json:"vocabularyWords"`
		} `json:"todayStats"`
	}
	require.NoError(t, json.Unmarshal(got["learningStats"], &gotStats))
	assert.Equal(t, "2026-08-28", gotStats.LastActiveDate)
	assert.Equal(t, 4, gotStats.Streak)
	assert.Equal(t, 2, gotStats.TodayStats.TotalSessions)
	assert.Equal(t, 1, gotStats.TodayStats.VocabularyWords)
}

func TestHTTPSyncer_Non2xxIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	syncer := NewHTTPSyncer(Config{URL: server.URL})
	err := syncer.Sync(context.Background(), Payload{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

// recordingSyncer captures delivered payloads.
type recordingSyncer struct {
	mu       sync.Mutex
	payloads []Payload
	err      error
}

func (s *recordingSyncer) Sync(_ context.Context, p Payload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.payloads = append(s.payloads, p)
	return nil
}

func (s *recordingSyncer) delivered() []Payload {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Payload, len(s.payloads))
	copy(out, s.payloads)
	return out
}

func TestDispatcher_DeliversAll(t *testing.T) {
	syncer := &recordingSyncer{}
	dispatcher := NewDispatcher(syncer, 8)

	records, stats := samplePayloadInput()
	for i := 0; i < 5; i++ {
		stats.TodaySessions = i
		dispatcher.Notify(records, stats)
	}
	dispatcher.Close()

	assert.Len(t, syncer.delivered(), 5)
}

func TestDispatcher_FailuresDoNotBlock(t *testing.T) {
	syncer := &recordingSyncer{err: errors.New("endpoint down")}
	dispatcher := NewDispatcher(syncer, 2)

	records, stats := samplePayloadInput()
	for i := 0; i < 10; i++ {
		dispatcher.Notify(records, stats)
	}
	// Close must still drain and return.
	done := make(chan struct{})
	go func() {
		dispatcher.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("dispatcher did not drain after failures")
	}
}

func TestDispatcher_CloseIdempotent(t *testing.T) {
	dispatcher := NewDispatcher(&recordingSyncer{}, 1)
	dispatcher.Close()
	dispatcher.Close()
}

func TestDispatcher_NotifyAfterCloseIsDropped(t *testing.T) {
	syncer := &recordingSyncer{}
	dispatcher := NewDispatcher(syncer, 2)
	dispatcher.Close()

	records, stats := samplePayloadInput()
	dispatcher.Notify(records, stats)

	assert.Empty(t, syncer.delivered())
}
