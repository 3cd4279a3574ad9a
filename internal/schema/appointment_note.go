package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// AppointmentNote is a staff note attached to an appointment.
type AppointmentNote struct {
	ent.Schema
}

func (AppointmentNote) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (AppointmentNote) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("appointment_id", uuid.UUID{}).
			Comment("FK → appointments.id"),

		field.Enum("note_type").
			Values("general", "medical", "billing", "follow_up", "reminder").
			Default("general"),

		field.Text("content").
			NotEmpty(),

		field.Bool("is_private").
			Default(false).
			Comment("Private notes are only visible to staff"),

		field.UUID("created_by_id", uuid.UUID{}).
			Comment("FK → users.id"),
	}
}

func (AppointmentNote) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("appointment", Appointment.Type).
			Ref("appointment_notes").
			Unique().
			Required().
			Field("appointment_id"),
	}
}

func (AppointmentNote) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("appointment_id"),
	}
}
