// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LearningRecord is the predicate function for learningrecord builders.
type LearningRecord func(*sql.Selector)

// StatsSnapshot is the predicate function for statssnapshot builders.
type StatsSnapshot func(*sql.Selector)
