package store

import (
	"context"
	"fmt"

	"github.com/enpeak/linglog/ent"
	"github.com/enpeak/linglog/ent/learningrecord"
	entschema "github.com/enpeak/linglog/ent/schema"
)

// historyRepo implements HistoryRepo using the ent client.
type historyRepo struct {
	client *ent.Client
}

func (r *historyRepo) Insert(ctx context.Context, data RecordData) error {
	builder := r.client.LearningRecord.Create().
		SetRecordID(data.RecordID).
		SetType(data.Type).
		SetTitle(data.Title).
		SetDurationSecs(data.DurationSecs).
		SetCompletedAt(data.CompletedAt)

	if data.Category != "" {
		builder = builder.SetCategory(data.Category)
	}
	if data.ScenarioID != "" {
		builder = builder.SetScenarioID(data.ScenarioID)
	}
	if data.Word != "" {
		builder = builder.SetWord(data.Word)
	}
	if data.Details != nil {
		builder = builder.SetDetails(&entschema.RecordDetails{
			Kind:         data.Details.Kind,
			Level:        data.Details.Level,
			CorrectCount: data.Details.CorrectCount,
			TotalCount:   data.Details.TotalCount,
			Stage:        data.Details.Stage,
			TotalStages:  data.Details.TotalStages,
		})
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save learning record: %w", err)
	}
	return nil
}

func (r *historyRepo) All(ctx context.Context) ([]RecordData, error) {
	rows, err := r.client.LearningRecord.Query().
		Order(ent.Desc(learningrecord.FieldCompletedAt), ent.Desc(learningrecord.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query learning records: %w", err)
	}

	out := make([]RecordData, 0, len(rows))
	for _, row := range rows {
		out = append(out, entRecordToData(row))
	}
	return out, nil
}

func (r *historyRepo) Prune(ctx context.Context, keep int) error {
	// Collect the IDs beyond the N most recent and delete exactly those.
	ids, err := r.client.LearningRecord.Query().
		Order(ent.Desc(learningrecord.FieldCompletedAt), ent.Desc(learningrecord.FieldID)).
		Offset(keep).
		IDs(ctx)
	if err != nil {
		return fmt.Errorf("query records for prune: %w", err)
	}
	if len(ids) == 0 {
		return nil // fewer than keep records exist
	}

	_, err = r.client.LearningRecord.Delete().
		Where(learningrecord.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune records: %w", err)
	}
	return nil
}

// entRecordToData converts an ent LearningRecord to the flat repo form.
func entRecordToData(row *ent.LearningRecord) RecordData {
	data := RecordData{
		RecordID:     row.RecordID,
		Type:         row.Type,
		Title:        row.Title,
		Category:     row.Category,
		ScenarioID:   row.ScenarioID,
		Word:         row.Word,
		DurationSecs: row.DurationSecs,
		CompletedAt:  row.CompletedAt,
	}
	if row.Details != nil {
		data.Details = &DetailsData{
			Kind:         row.Details.Kind,
			Level:        row.Details.Level,
			CorrectCount: row.Details.CorrectCount,
			TotalCount:   row.Details.TotalCount,
			Stage:        row.Details.Stage,
			TotalStages:  row.Details.TotalStages,
		}
	}
	return data
}
