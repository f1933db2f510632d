package store

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestHistoryInsertAndAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Insert(ctx, RecordData{
			RecordID:     fmt.Sprintf("rec-%d", i),
			Type:         "vocabulary",
			Title:        fmt.Sprintf("word %d", i),
			Word:         "hello",
			DurationSecs: 60,
			CompletedAt:  base.Add(time.Duration(i) * time.Minute),
			Details: &DetailsData{
				Kind: "quiz", Level: "A2", CorrectCount: i, TotalCount: 10,
			},
		})
		if err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	rows, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	// Newest first.
	if rows[0].RecordID != "rec-2" {
		t.Errorf("first row = %s, want rec-2", rows[0].RecordID)
	}
	if rows[2].RecordID != "rec-0" {
		t.Errorf("last row = %s, want rec-0", rows[2].RecordID)
	}

	// Details round-trip.
	if rows[0].Details == nil {
		t.Fatal("expected details on rec-2")
	}
	if rows[0].Details.Kind != "quiz" || rows[0].Details.Level != "A2" {
		t.Errorf("details = %+v, want quiz/A2", rows[0].Details)
	}
}

func TestHistorySameTimestampOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	at := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Insert(ctx, RecordData{
			RecordID:    fmt.Sprintf("same-%d", i),
			Type:        "chat",
			Title:       "tie",
			CompletedAt: at,
		})
		if err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	rows, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	// Insertion order breaks the tie, later insert first.
	if rows[0].RecordID != "same-2" {
		t.Errorf("first row = %s, want same-2", rows[0].RecordID)
	}
}

func TestHistoryPruneKeepsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 10; i++ {
		err := repo.Insert(ctx, RecordData{
			RecordID:    fmt.Sprintf("rec-%02d", i),
			Type:        "chat",
			Title:       "t",
			CompletedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 4); err != nil {
		t.Fatalf("prune: %v", err)
	}

	rows, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d rows after prune, want 4", len(rows))
	}
	if rows[0].RecordID != "rec-09" || rows[3].RecordID != "rec-06" {
		t.Errorf("prune kept wrong rows: %s .. %s", rows[0].RecordID, rows[3].RecordID)
	}
}

func TestHistoryPruneNoopUnderLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	err := repo.Insert(ctx, RecordData{
		RecordID: "only", Type: "chat", Title: "t", CompletedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := repo.Prune(ctx, 100); err != nil {
		t.Fatalf("prune: %v", err)
	}

	rows, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
}

func TestStatsLoadEmpty(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	data, err := s.StatsRepo().Load(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if data != nil {
		t.Fatal("expected nil stats when none saved yet")
	}
}

func TestStatsSaveLoadUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.StatsRepo()
	ctx := context.Background()

	first := StatsData{
		LastActiveDate: "2026-08-27",
		Streak:         3,
		BestStreak:     5,
		TodayDate:      "2026-08-27",
		TodaySessions:  2,
		TodayMinutes:   14,
		TodayWords:     1,
		TotalSessions:  40,
		TotalMinutes:   300,
		TotalWords:     25,
	}
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("expected saved stats")
	}
	if *got != first {
		t.Errorf("loaded = %+v, want %+v", *got, first)
	}

	// Save again: must update the singleton, not add a second row.
	second := first
	second.Streak = 4
	second.TodaySessions = 3
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("save again: %v", err)
	}

	got, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load again: %v", err)
	}
	if got.Streak != 4 || got.TodaySessions != 3 {
		t.Errorf("loaded = %+v, want updated singleton", *got)
	}

	n, err := s.Client().StatsSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("got %d stats rows, want 1", n)
	}
}

func TestWipe(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.HistoryRepo().Insert(ctx, RecordData{
		RecordID: "r1", Type: "chat", Title: "t", CompletedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := s.StatsRepo().Save(ctx, StatsData{TodayDate: "2026-08-28"}); err != nil {
		t.Fatalf("save stats: %v", err)
	}

	if err := s.Wipe(ctx); err != nil {
		t.Fatalf("wipe: %v", err)
	}

	rows, err := s.HistoryRepo().All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows after wipe, want 0", len(rows))
	}
	data, err := s.StatsRepo().Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if data != nil {
		t.Error("expected nil stats after wipe")
	}
}
