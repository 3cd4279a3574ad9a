package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Testimonial is a patient review, published only after moderation.
type Testimonial struct {
	ent.Schema
}

func (Testimonial) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Testimonial) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.Text("content").
			NotEmpty(),

		field.Int("rating").
			Default(5).
			Min(1).
			Max(5).
			Comment("Rating out of 5"),

		field.Enum("status").
			Values("pending", "approved", "rejected").
			Default("pending"),

		field.UUID("service_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → services.id"),

		field.UUID("doctor_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → doctors.id"),

		field.String("image_key").
			Optional().
			Nillable().
			MaxLen(500),

		field.Time("submitted_at").
			Immutable(),

		field.Time("approved_at").
			Optional().
			Nillable(),

		field.UUID("approved_by_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → users.id"),
	}
}

func (Testimonial) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("patient", Patient.Type).
			Unique().
			Required().
			Field("patient_id"),
		edge.To("service", Service.Type).
			Unique().
			Field("service_id"),
		edge.To("doctor", Doctor.Type).
			Unique().
			Field("doctor_id"),
	}
}

func (Testimonial) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("doctor_id", "status"),
	}
}
