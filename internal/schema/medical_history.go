package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// MedicalHistory is one diagnosed condition, allergy, surgery or
// medication entry on a patient's record.
type MedicalHistory struct {
	ent.Schema
}

func (MedicalHistory) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (MedicalHistory) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.Enum("condition_type").
			Values("skin", "allergy", "surgery", "medication", "family_history", "other"),

		field.String("condition_name").
			NotEmpty().
			MaxLen(200),

		field.Text("description").
			Optional().
			Nillable(),

		field.Time("date_diagnosed").
			Optional().
			Nillable(),

		field.Bool("is_current").Default(true),

		field.Enum("severity").
			Values("mild", "moderate", "severe").
			Optional().
			Nillable(),

		field.Text("notes").
			Optional().
			Nillable(),
	}
}

func (MedicalHistory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("medical_history").
			Unique().
			Required().
			Field("patient_id"),
	}
}

func (MedicalHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id"),
		index.Fields("patient_id", "condition_type"),
	}
}
