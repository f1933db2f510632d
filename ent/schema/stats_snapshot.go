package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// StatsSnapshot is the single derived aggregate maintained
// transactionally with each appended record: today's counters plus the
// consecutive-day streak. Exactly one row exists per database.
type StatsSnapshot struct {
	ent.Schema
}

func (StatsSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("last_active_date").
			Default("").
			Comment("YYYY-MM-DD of the most recent append, empty before first write"),
		field.Int("streak").
			Default(0).
			Comment("Consecutive calendar days with at least one record"),
		field.Int("best_streak").
			Default(0).
			Comment("Longest streak ever reached"),
		field.String("today_date").
			Default("").
			Comment("YYYY-MM-DD the today_* counters belong to"),
		field.Int("today_sessions").
			Default(0),
		field.Int("today_minutes").
			Default(0),
		field.Int("today_words").
			Default(0),
		field.Int("today_scenarios").
			Default(0),
		field.Int("total_sessions").
			Default(0).
			Comment("Lifetime session count, survives log eviction"),
		field.Int("total_minutes").
			Default(0).
			Comment("Lifetime study minutes"),
		field.Int("total_words").
			Default(0).
			Comment("Lifetime vocabulary count, drives word badges"),
	}
}
