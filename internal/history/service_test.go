package history

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enpeak/linglog/internal/store"
)

// fakeHistoryRepo is an in-memory store.HistoryRepo.
type fakeHistoryRepo struct {
	rows    []store.RecordData
	failing bool
}

func (f *fakeHistoryRepo) Insert(_ context.Context, data store.RecordData) error {
	if f.failing {
		return errors.New("disk full")
	}
	f.rows = append(f.rows, data)
	return nil
}

func (f *fakeHistoryRepo) All(_ context.Context) ([]store.RecordData, error) {
	if f.failing {
		return nil, errors.New("disk full")
	}
	out := make([]store.RecordData, len(f.rows))
	copy(out, f.rows)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CompletedAt.After(out[j].CompletedAt)
	})
	return out, nil
}

func (f *fakeHistoryRepo) Prune(_ context.Context, keep int) error {
	if f.failing {
		return errors.New("disk full")
	}
	if len(f.rows) <= keep {
		return nil
	}
	sort.SliceStable(f.rows, func(i, j int) bool {
		return f.rows[i].CompletedAt.After(f.rows[j].CompletedAt)
	})
	f.rows = f.rows[:keep]
	return nil
}

// fakeStatsRepo is an in-memory store.StatsRepo.
type fakeStatsRepo struct {
	data    *store.StatsData
	failing bool
}

func (f *fakeStatsRepo) Load(_ context.Context) (*store.StatsData, error) {
	if f.failing {
		return nil, errors.New("disk full")
	}
	if f.data == nil {
		return nil, nil
	}
	cp := *f.data
	return &cp, nil
}

func (f *fakeStatsRepo) Save(_ context.Context, data store.StatsData) error {
	if f.failing {
		return errors.New("disk full")
	}
	f.data = &data
	return nil
}

// fakeClock is a settable clock.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advanceDays(n int) { c.now = c.now.AddDate(0, 0, n) }

func newTestService() (*Service, *fakeHistoryRepo, *fakeStatsRepo, *fakeClock) {
	hr := &fakeHistoryRepo{}
	sr := &fakeStatsRepo{}
	clock := &fakeClock{now: time.Date(2026, 8, 28, 10, 0, 0, 0, time.Local)}
	svc := NewService(hr, sr, WithClock(clock.Now))
	return svc, hr, sr, clock
}

func TestAdd_AssignsIDAndTimestamp(t *testing.T) {
	svc, _, _, clock := newTestService()

	rec := svc.Add(context.Background(), NewRecord{Type: TypeChat, Title: "Free talk"})
	require.NotEmpty(t, rec.ID)
	assert.Equal(t, clock.now, rec.CompletedAt)
	assert.Equal(t, TypeChat, rec.Type)
}

func TestAdd_UniqueIDs(t *testing.T) {
	svc, _, _, _ := newTestService()

	seen := make(map[string]bool)
	for range 50 {
		rec := svc.Add(context.Background(), NewRecord{Type: TypeChat, Title: "x"})
		require.False(t, seen[rec.ID], "duplicate ID %s", rec.ID)
		seen[rec.ID] = true
	}
}

func TestAdd_CapsLogAtMaxRecords(t *testing.T) {
	svc, hr, _, clock := newTestService()

	for range MaxRecords + 10 {
		svc.Add(context.Background(), NewRecord{Type: TypeChat, Title: "session"})
		clock.now = clock.now.Add(time.Minute)
	}

	require.Len(t, hr.rows, MaxRecords)

	// The survivors are the newest hundred.
	records := svc.All(context.Background())
	require.Len(t, records, MaxRecords)
	for i := 1; i < len(records); i++ {
		assert.False(t, records[i].CompletedAt.After(records[i-1].CompletedAt),
			"records out of order at %d", i)
	}
}

func TestAll_NewestFirst(t *testing.T) {
	svc, _, _, clock := newTestService()

	svc.Add(context.Background(), NewRecord{Type: TypeChat, Title: "first"})
	clock.now = clock.now.Add(time.Hour)
	svc.Add(context.Background(), NewRecord{Type: TypeChat, Title: "second"})

	records := svc.All(context.Background())
	require.Len(t, records, 2)
	assert.Equal(t, "second", records[0].Title)
	assert.Equal(t, "first", records[1].Title)
}

func TestAdd_DetailsRoundTrip(t *testing.T) {
	svc, _, _, _ := newTestService()

	svc.Add(context.Background(), NewRecord{
		Type:  TypeVocabulary,
		Title: "Level quiz",
		Details: &QuizDetails{
			Level: "B1", CorrectCount: 8, TotalCount: 10,
		},
	})

	records := svc.All(context.Background())
	require.Len(t, records, 1)
	quiz, ok := records[0].Details.(*QuizDetails)
	require.True(t, ok, "details lost in round trip")
	assert.Equal(t, "B1", quiz.Level)
	assert.Equal(t, 8, quiz.CorrectCount)
	assert.Equal(t, "B1", records[0].Level())
}

func TestStats_CountersAccumulate(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	svc.Add(ctx, NewRecord{Type: TypeVocabulary, Title: "word", Duration: 120})
	svc.Add(ctx, NewRecord{Type: TypeConversation, Title: "cafe", Duration: 300})
	svc.Add(ctx, NewRecord{Type: TypeChat, Title: "talk"})

	stats := svc.Stats(ctx)
	assert.Equal(t, 3, stats.TotalSessions)
	assert.Equal(t, 7, stats.TotalMinutes) // 2 + 5
	assert.Equal(t, 1, stats.VocabularyWords)
	assert.Equal(t, 1, stats.ConversationScenarios)
	assert.Equal(t, 1, stats.Streak)
}

func TestStats_DurationRoundsToNearestMinute(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	svc.Add(ctx, NewRecord{Type: TypeChat, Title: "short", Duration: 89}) // 1.48min → 1
	svc.Add(ctx, NewRecord{Type: TypeChat, Title: "long", Duration: 91})  // 1.52min → 2

	assert.Equal(t, 3, svc.Stats(ctx).TotalMinutes)
}

func TestStats_SameDayStreakAdvancesOnce(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	svc.Add(ctx, NewRecord{Type: TypeChat, Title: "a"})
	svc.Add(ctx, NewRecord{Type: TypeChat, Title: "b"})
	svc.Add(ctx, NewRecord{Type: TypeChat, Title: "c"})

	assert.Equal(t, 1, svc.Stats(ctx).Streak)
}

func TestStats_ConsecutiveDaysGrowStreak(t *testing.T) {
	svc, _, _, clock := newTestService()
	ctx := context.Background()

	for day := range 5 {
		svc.Add(ctx, NewRecord{Type: TypeChat, Title: "daily"})
		if day < 4 {
			clock.advanceDays(1)
		}
	}

	stats := svc.Stats(ctx)
	assert.Equal(t, 5, stats.Streak)
	assert.Equal(t, 5, stats.BestStreak)
}

func TestStats_SkippedDayRestartsStreak(t *testing.T) {
	svc, _, _, clock := newTestService()
	ctx := context.Background()

	svc.Add(ctx, NewRecord{Type: TypeChat, Title: "a"})
	clock.advanceDays(1)
	svc.Add(ctx, NewRecord{Type: TypeChat, Title: "b"})
	clock.advanceDays(2) // skip a day
	svc.Add(ctx, NewRecord{Type: TypeChat, Title: "c"})

	stats := svc.Stats(ctx)
	assert.Equal(t, 1, stats.Streak)
	assert.Equal(t, 2, stats.BestStreak)
}

func TestStats_ReadRolloverResetsCounters(t *testing.T) {
	svc, _, _, clock := newTestService()
	ctx := context.Background()

	svc.Add(ctx, NewRecord{Type: TypeVocabulary, Title: "word", Duration: 300})
	clock.advanceDays(1)

	stats := svc.Stats(ctx)
	assert.Equal(t, 0, stats.TotalSessions)
	assert.Equal(t, 0, stats.TotalMinutes)
	assert.Equal(t, 0, stats.VocabularyWords)
	// Yesterday's activity keeps the streak alive on read.
	assert.Equal(t, 1, stats.Streak)
}

func TestStats_ReadRolloverAfterGapZeroesStreak(t *testing.T) {
	svc, _, _, clock := newTestService()
	ctx := context.Background()

	svc.Add(ctx, NewRecord{Type: TypeChat, Title: "a"})
	clock.advanceDays(3)

	assert.Equal(t, 0, svc.Stats(ctx).Streak)
}

func TestStats_ReadRolloverThenAddStillAdvancesOnce(t *testing.T) {
	svc, _, _, clock := newTestService()
	ctx := context.Background()

	svc.Add(ctx, NewRecord{Type: TypeChat, Title: "day one"})
	clock.advanceDays(1)

	// Reading first must not consume the day's streak advance.
	require.Equal(t, 1, svc.Stats(ctx).Streak)
	svc.Add(ctx, NewRecord{Type: TypeChat, Title: "day two"})
	assert.Equal(t, 2, svc.Stats(ctx).Streak)

	// And repeated adds still only advance once.
	svc.Add(ctx, NewRecord{Type: TypeChat, Title: "again"})
	assert.Equal(t, 2, svc.Stats(ctx).Streak)
}

func TestStats_EmptyStore(t *testing.T) {
	svc, _, _, _ := newTestService()

	assert.Equal(t, TodayStats{}, svc.Stats(context.Background()))
	assert.Empty(t, svc.All(context.Background()))
	assert.Equal(t, LifetimeStats{}, svc.Lifetime(context.Background()))
}

func TestLifetime_SurvivesEviction(t *testing.T) {
	svc, _, _, clock := newTestService()
	ctx := context.Background()

	for range MaxRecords + 20 {
		svc.Add(ctx, NewRecord{Type: TypeVocabulary, Title: "word", Duration: 60})
		clock.now = clock.now.Add(time.Minute)
	}

	life := svc.Lifetime(ctx)
	assert.Equal(t, MaxRecords+20, life.TotalSessions)
	assert.Equal(t, MaxRecords+20, life.TotalWords)
	assert.Len(t, svc.All(ctx), MaxRecords)
}

func TestToday_FiltersByDate(t *testing.T) {
	svc, _, _, clock := newTestService()
	ctx := context.Background()

	svc.Add(ctx, NewRecord{Type: TypeChat, Title: "yesterday's"})
	clock.advanceDays(1)
	svc.Add(ctx, NewRecord{Type: TypeChat, Title: "today's"})

	today := svc.Today(ctx)
	require.Len(t, today, 1)
	assert.Equal(t, "today's", today[0].Title)
}

func TestDegradedStorage_ReadsEmptyWritesSilent(t *testing.T) {
	hr := &fakeHistoryRepo{failing: true}
	sr := &fakeStatsRepo{failing: true}
	svc := NewService(hr, sr)
	ctx := context.Background()

	rec := svc.Add(ctx, NewRecord{Type: TypeChat, Title: "lost"})
	assert.NotEmpty(t, rec.ID, "record should be formed even when persistence fails")
	assert.Empty(t, svc.All(ctx))
	assert.Equal(t, TodayStats{}, svc.Stats(ctx))
}

type captureNotifier struct {
	calls   int
	records []Record
	stats   store.StatsData
}

func (n *captureNotifier) Notify(records []Record, stats store.StatsData) {
	n.calls++
	n.records = records
	n.stats = stats
}

func TestAdd_NotifiesAfterPersist(t *testing.T) {
	hr := &fakeHistoryRepo{}
	sr := &fakeStatsRepo{}
	notifier := &captureNotifier{}
	clock := &fakeClock{now: time.Date(2026, 8, 28, 10, 0, 0, 0, time.Local)}
	svc := NewService(hr, sr, WithClock(clock.Now), WithNotifier(notifier))
	ctx := context.Background()

	svc.Add(ctx, NewRecord{Type: TypeVocabulary, Title: "word"})

	require.Equal(t, 1, notifier.calls)
	require.Len(t, notifier.records, 1)
	assert.Equal(t, "word", notifier.records[0].Title)
	assert.Equal(t, 1, notifier.stats.TodayWords)
	assert.Equal(t, 1, notifier.stats.Streak)
}

func TestAdd_NoNotifyWhenInsertFails(t *testing.T) {
	hr := &fakeHistoryRepo{failing: true}
	sr := &fakeStatsRepo{}
	notifier := &captureNotifier{}
	svc := NewService(hr, sr, WithNotifier(notifier))

	svc.Add(context.Background(), NewRecord{Type: TypeChat, Title: "x"})
	assert.Equal(t, 0, notifier.calls)
}
