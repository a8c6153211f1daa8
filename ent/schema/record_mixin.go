package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// RecordMixin provides the timestamps shared by every scored game row.
type RecordMixin struct {
	mixin.Schema
}

func (RecordMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Time("started_at").
			Immutable().
			Comment("When the first operand was armed"),
		field.Time("ended_at").
			Default(time.Now).
			Immutable().
			Comment("When the game was scored"),
	}
}

func (RecordMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ended_at"),
	}
}
