package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// AppointmentReschedule is the audit row written every time an
// appointment is moved to a new time.
type AppointmentReschedule struct {
	ent.Schema
}

func (AppointmentReschedule) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (AppointmentReschedule) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("appointment_id", uuid.UUID{}).
			Comment("FK → appointments.id (the original appointment)"),

		field.Time("old_start_time"),

		field.Time("new_start_time"),

		field.Text("reason").
			Optional().
			Nillable(),

		field.UUID("rescheduled_by_id", uuid.UUID{}).
			Comment("FK → users.id"),
	}
}

func (AppointmentReschedule) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("appointment", Appointment.Type).
			Ref("reschedules").
			Unique().
			Required().
			Field("appointment_id"),
	}
}

func (AppointmentReschedule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("appointment_id"),
	}
}
