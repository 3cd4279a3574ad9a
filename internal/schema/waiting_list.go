package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// WaitingList holds patients waiting for a slot with a specific doctor.
type WaitingList struct {
	ent.Schema
}

func (WaitingList) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (WaitingList) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctors.id"),

		field.UUID("service_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → services.id"),

		field.Time("preferred_date").
			Optional().
			Nillable(),

		field.String("preferred_time").
			Optional().
			Nillable().
			MaxLen(5).
			Comment(`Time of day, "15:04"`),

		field.Time("earliest_date"),

		field.Time("latest_date"),

		field.Text("notes").
			Optional().
			Nillable(),

		field.Bool("is_active").Default(true),

		field.Bool("notified").Default(false),
	}
}

func (WaitingList) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("patient", Patient.Type).
			Unique().
			Required().
			Field("patient_id"),
		edge.To("doctor", Doctor.Type).
			Unique().
			Required().
			Field("doctor_id"),
		edge.To("service", Service.Type).
			Unique().
			Field("service_id"),
	}
}

func (WaitingList) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doctor_id", "is_active"),
		index.Fields("patient_id"),
	}
}
