package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// AppointmentType is a bookable visit kind (consultation, procedure, ...).
type AppointmentType struct {
	ent.Schema
}

func (AppointmentType) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (AppointmentType) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			NotEmpty().
			MaxLen(100),

		field.String("slug").
			Unique().
			NotEmpty().
			MaxLen(100),

		field.Text("description").
			Optional().
			Nillable(),

		field.Int("duration_min").
			Positive().
			Comment("Default duration in minutes"),

		field.String("color").
			Default("#3498db").
			MaxLen(7).
			Comment("Hex color for calendar display"),

		field.Bool("is_consultation").Default(true),

		field.Bool("requires_preparation").Default(false),

		field.Text("preparation_instructions").
			Optional().
			Nillable(),

		field.Bool("is_active").Default(true),
	}
}
