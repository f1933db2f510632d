package history

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/enpeak/linglog/internal/store"
)

// Notifier receives the full record list and stats aggregate after each
// successful append, for mirroring to a remote account. Implementations
// must not block; failures never affect the local write.
type Notifier interface {
	Notify(records []Record, stats store.StatsData)
}

// Service owns the activity log and its derived stats aggregate. It is
// constructed once by the composition root and passed to consumers.
//
// Reads degrade to empty results and writes to best-effort no-ops when
// storage misbehaves; callers never see an error. The worst case is
// statistics showing as zero.
type Service struct {
	history  store.HistoryRepo
	stats    store.StatsRepo
	clock    Clock
	notifier Notifier
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the wall clock.
func WithClock(c Clock) Option {
	return func(s *Service) { s.clock = c }
}

// WithNotifier registers an account-sync notifier.
func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// NewService creates a Service over the given repositories.
func NewService(history store.HistoryRepo, stats store.StatsRepo, opts ...Option) *Service {
	s := &Service{
		history: history,
		stats:   stats,
		clock:   SystemClock,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now exposes the service clock, so views derived from the log use the
// same notion of "today" as the aggregate.
func (s *Service) Now() time.Time {
	return s.clock()
}

// Add appends a learning record. The record gets its ID and completion
// time here; the log is truncated to MaxRecords and the stats aggregate
// is updated in the same call. The returned record is fully formed even
// when persistence failed.
func (s *Service) Add(ctx context.Context, nr NewRecord) Record {
	now := s.clock()
	rec := Record{
		ID:          newRecordID(now),
		Type:        nr.Type,
		Title:       nr.Title,
		Category:    nr.Category,
		ScenarioID:  nr.ScenarioID,
		Word:        nr.Word,
		Duration:    nr.Duration,
		CompletedAt: now,
		Details:     nr.Details,
	}

	if err := s.history.Insert(ctx, recordToData(rec)); err != nil {
		warnf("append record: %v", err)
		return rec
	}
	if err := s.history.Prune(ctx, MaxRecords); err != nil {
		warnf("prune records: %v", err)
	}

	stats := s.applyRecord(ctx, rec)

	if s.notifier != nil {
		s.notifier.Notify(s.All(ctx), stats)
	}

	return rec
}

// All returns the full log, most recent first. An empty slice is
// returned when storage is unavailable.
func (s *Service) All(ctx context.Context) []Record {
	rows, err := s.history.All(ctx)
	if err != nil {
		warnf("read records: %v", err)
		return nil
	}

	out := make([]Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, dataToRecord(row))
	}
	return out
}

// Today returns the subset of All completed on the current calendar date.
func (s *Service) Today(ctx context.Context) []Record {
	today := DateOf(s.clock())
	var out []Record
	for _, rec := range s.All(ctx) {
		if !rec.CompletedAt.IsZero() && DateOf(rec.CompletedAt) == today {
			out = append(out, rec)
		}
	}
	return out
}

// Stats returns today's counters and the streak, rolling the aggregate
// over to the current date first when the stored day is stale.
func (s *Service) Stats(ctx context.Context) TodayStats {
	now := s.clock()
	today := DateOf(now)
	yesterday := DateOf(now.AddDate(0, 0, -1))

	cur, err := s.stats.Load(ctx)
	if err != nil {
		warnf("read stats: %v", err)
		return TodayStats{}
	}
	if cur == nil {
		return TodayStats{}
	}

	data := *cur
	if data.TodayDate != today {
		// Day rollover on read: fold the streak, zero the counters.
		// lastActiveDate is left alone so a later Add can still apply
		// the one allowed streak advance for this transition.
		data.Streak = rollStreak(data.Streak, data.LastActiveDate, today, yesterday, false)
		data.TodayDate = today
		data.TodaySessions = 0
		data.TodayMinutes = 0
		data.TodayWords = 0
		data.TodayScenarios = 0
		if err := s.stats.Save(ctx, data); err != nil {
			warnf("save stats rollover: %v", err)
		}
	}

	return TodayStats{
		TotalSessions:         data.TodaySessions,
		TotalMinutes:          data.TodayMinutes,
		VocabularyWords:       data.TodayWords,
		ConversationScenarios: data.TodayScenarios,
		Streak:                data.Streak,
		BestStreak:            data.BestStreak,
	}
}

// Lifetime returns the counters that survive log eviction.
func (s *Service) Lifetime(ctx context.Context) LifetimeStats {
	cur, err := s.stats.Load(ctx)
	if err != nil {
		warnf("read stats: %v", err)
		return LifetimeStats{}
	}
	if cur == nil {
		return LifetimeStats{}
	}
	return LifetimeStats{
		TotalSessions: cur.TotalSessions,
		TotalMinutes:  cur.TotalMinutes,
		TotalWords:    cur.TotalWords,
	}
}

// applyRecord folds one appended record into the stats aggregate.
func (s *Service) applyRecord(ctx context.Context, rec Record) store.StatsData {
	now := rec.CompletedAt
	today := DateOf(now)
	yesterday := DateOf(now.AddDate(0, 0, -1))

	cur, err := s.stats.Load(ctx)
	if err != nil {
		warnf("read stats: %v", err)
		cur = nil
	}

	var data store.StatsData
	if cur != nil {
		data = *cur
	}

	data.Streak = rollStreak(data.Streak, data.LastActiveDate, today, yesterday, true)
	if data.TodayDate != today {
		data.TodayDate = today
		data.TodaySessions = 0
		data.TodayMinutes = 0
		data.TodayWords = 0
		data.TodayScenarios = 0
	}
	data.LastActiveDate = today
	if data.Streak > data.BestStreak {
		data.BestStreak = data.Streak
	}

	data.TodaySessions++
	data.TotalSessions++
	if rec.Duration > 0 {
		minutes := int(math.Round(float64(rec.Duration) / 60))
		data.TodayMinutes += minutes
		data.TotalMinutes += minutes
	}
	if rec.Type == TypeVocabulary {
		data.TodayWords++
		data.TotalWords++
	}
	if rec.Type == TypeConversation {
		data.TodayScenarios++
	}

	if err := s.stats.Save(ctx, data); err != nil {
		warnf("save stats: %v", err)
	}
	return data
}

// newRecordID builds a collision-resistant identifier: the append
// timestamp plus a short random suffix.
func newRecordID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%d_%s", now.UnixMilli(), suffix)
}

func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}

// recordToData converts a domain record to its flat persisted form.
func recordToData(rec Record) store.RecordData {
	data := store.RecordData{
		RecordID:     rec.ID,
		Type:         string(rec.Type),
		Title:        rec.Title,
		Category:     rec.Category,
		ScenarioID:   rec.ScenarioID,
		Word:         rec.Word,
		DurationSecs: rec.Duration,
		CompletedAt:  rec.CompletedAt,
	}
	switch d := rec.Details.(type) {
	case *QuizDetails:
		data.Details = &store.DetailsData{
			Kind:         "quiz",
			Level:        d.Level,
			CorrectCount: d.CorrectCount,
			TotalCount:   d.TotalCount,
		}
	case *StageDetails:
		data.Details = &store.DetailsData{
			Kind:        "stage",
			Level:       d.Level,
			Stage:       d.Stage,
			TotalStages: d.TotalStages,
		}
	}
	return data
}

// dataToRecord converts the flat persisted form back to a domain
// record. Unknown detail kinds are dropped rather than failing the read.
func dataToRecord(data store.RecordData) Record {
	rec := Record{
		ID:          data.RecordID,
		Type:        RecordType(data.Type),
		Title:       data.Title,
		Category:    data.Category,
		ScenarioID:  data.ScenarioID,
		Word:        data.Word,
		Duration:    data.DurationSecs,
		CompletedAt: data.CompletedAt,
	}
	if data.Details != nil {
		switch data.Details.Kind {
		case "quiz":
			rec.Details = &QuizDetails{
				Level:        data.Details.Level,
				CorrectCount: data.Details.CorrectCount,
				TotalCount:   data.Details.TotalCount,
			}
		case "stage":
			rec.Details = &StageDetails{
				Level:       data.Details.Level,
				Stage:       data.Details.Stage,
				TotalStages: data.Details.TotalStages,
			}
		}
	}
	return rec
}
