package store

import (
	"context"
	"fmt"

	"github.com/enpeak/linglog/ent"
)

// statsRepo implements StatsRepo using the ent client. The aggregate is
// a single row; Save creates it on first write and updates it after.
type statsRepo struct {
	client *ent.Client
}

func (r *statsRepo) Load(ctx context.Context) (*StatsData, error) {
	row, err := r.client.StatsSnapshot.Query().First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query stats snapshot: %w", err)
	}

	return &StatsData{
		LastActiveDate: row.LastActiveDate,
		Streak:         row.Streak,
		BestStreak:     row.BestStreak,
		TodayDate:      row.TodayDate,
		TodaySessions:  row.TodaySessions,
		TodayMinutes:   row.TodayMinutes,
		TodayWords:     row.TodayWords,
		TodayScenarios: row.TodayScenarios,
		TotalSessions:  row.TotalSessions,
		TotalMinutes:   row.TotalMinutes,
		TotalWords:     row.TotalWords,
	}, nil
}

func (r *statsRepo) Save(ctx context.Context, data StatsData) error {
	existing, err := r.client.StatsSnapshot.Query().First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query stats snapshot: %w", err)
	}

	if ent.IsNotFound(err) {
		_, err = r.client.StatsSnapshot.Create().
			SetLastActiveDate(data.LastActiveDate).
			SetStreak(data.Streak).
			SetBestStreak(data.BestStreak).
			SetTodayDate(data.TodayDate).
			SetTodaySessions(data.TodaySessions).
			SetTodayMinutes(data.TodayMinutes).
			SetTodayWords(data.TodayWords).
			SetTodayScenarios(data.TodayScenarios).
			SetTotalSessions(data.TotalSessions).
			SetTotalMinutes(data.TotalMinutes).
			SetTotalWords(data.TotalWords).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create stats snapshot: %w", err)
		}
		return nil
	}

	_, err = existing.Update().
		SetLastActiveDate(data.LastActiveDate).
		SetStreak(data.Streak).
		SetBestStreak(data.BestStreak).
		SetTodayDate(data.TodayDate).
		SetTodaySessions(data.TodaySessions).
		SetTodayMinutes(data.TodayMinutes).
		SetTodayWords(data.TodayWords).
		SetTodayScenarios(data.TodayScenarios).
		SetTotalSessions(data.TotalSessions).
		SetTotalMinutes(data.TotalMinutes).
		SetTotalWords(data.TotalWords).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update stats snapshot: %w", err)
	}
	return nil
}
