package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Game is one scored Number Rush session. Rows are only ever appended.
type Game struct {
	ent.Schema
}

func (Game) Mixin() []ent.Mixin {
	return []ent.Mixin{RecordMixin{}}
}

func (Game) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the game session"),
		field.String("difficulty").
			Comment("single, double or triple"),
		field.String("operation").
			Comment("addition, subtraction or multiplication"),
		field.JSON("operands", []int{}).
			Comment("Operands in reveal order"),
		field.Int("correct_answer"),
		field.Int("selected_answer").
			Optional().
			Nillable().
			Comment("Unset when the clock ran out"),
		field.Bool("correct").
			Default(false),
		field.Int("score").
			Default(0),
		field.Int("reward").
			Default(0).
			Comment("Coins earned"),
		field.Float("time_taken").
			Comment("Seconds from start to scoring"),
	}
}

func (Game) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
