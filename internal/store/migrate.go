package store

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent"
	entsql "entgo.io/ent/dialect/sql"
	migrate "entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	"github.com/abhisek/numberrush/ent/schema"
)

const (
	kvTable    = "kv_slots"
	gamesTable = "games"
)

// tables returns the tables described by the ent schemas in ent/schema.
func tables() []*migrate.Table {
	return []*migrate.Table{
		tableFor(kvTable, schema.KVSlot{}),
		tableFor(gamesTable, schema.Game{}),
	}
}

// tableFor lays out s the way ent's generated migrate package does: an
// auto-increment id, mixin fields first, then the schema's own fields.
func tableFor(name string, s ent.Interface) *migrate.Table {
	id := &migrate.Column{Name: "id", Type: field.TypeInt, Increment: true}
	t := &migrate.Table{
		Name:       name,
		Columns:    []*migrate.Column{id},
		PrimaryKey: []*migrate.Column{id},
	}

	var (
		fields  []ent.Field
		indexes []ent.Index
	)
	for _, m := range s.Mixin() {
		fields = append(fields, m.Fields()...)
		indexes = append(indexes, m.Indexes()...)
	}
	fields = append(fields, s.Fields()...)
	indexes = append(indexes, s.Indexes()...)

	columns := make(map[string]*migrate.Column, len(fields))
	for _, f := range fields {
		d := f.Descriptor()
		c := &migrate.Column{
			Name:     d.Name,
			Type:     d.Info.Type,
			Unique:   d.Unique,
			Nullable: d.Optional,
		}
		t.Columns = append(t.Columns, c)
		columns[d.Name] = c
	}

	for _, ix := range indexes {
		d := ix.Descriptor()
		idx := &migrate.Index{
			Name:   name + "_" + strings.Join(d.Fields, "_"),
			Unique: d.Unique,
		}
		for _, f := range d.Fields {
			idx.Columns = append(idx.Columns, columns[f])
		}
		t.Indexes = append(t.Indexes, idx)
	}
	return t
}

// autoMigrate creates or updates the tables on drv.
func autoMigrate(ctx context.Context, drv *entsql.Driver) error {
	m, err := migrate.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("new migrate: %w", err)
	}
	return m.Create(ctx, tables()...)
}
