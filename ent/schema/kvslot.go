package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// KVSlot holds one opaque value per key, replaced wholesale on write.
type KVSlot struct {
	ent.Schema
}

func (KVSlot) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			NotEmpty().
			Unique().
			Comment("Slot name, e.g. numberRushStats"),
		field.Bytes("value").
			Comment("Serialized slot contents"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
