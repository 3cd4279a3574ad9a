package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// DoctorAvailability — weekly working window per doctor
// ---------------------------------------------------------------------------

type DoctorAvailability struct {
	ent.Schema
}

func (DoctorAvailability) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (DoctorAvailability) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctors.id"),

		field.Int8("day_of_week").
			Min(0).
			Max(6).
			Comment("0=Monday .. 6=Sunday"),

		field.String("start_time").
			NotEmpty().
			MaxLen(5).
			Comment(`Time of day, "15:04"`),

		field.String("end_time").
			NotEmpty().
			MaxLen(5),

		field.Bool("is_available").Default(true),

		field.Int("max_patients").
			Default(20).
			Positive(),
	}
}

func (DoctorAvailability) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("doctor", Doctor.Type).
			Ref("availability").
			Unique().
			Required().
			Field("doctor_id"),
	}
}

func (DoctorAvailability) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doctor_id", "day_of_week", "start_time").Unique(),
		index.Fields("doctor_id"),
	}
}

// ---------------------------------------------------------------------------
// DoctorLeave
// ---------------------------------------------------------------------------

type DoctorLeave struct {
	ent.Schema
}

func (DoctorLeave) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (DoctorLeave) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctors.id"),

		field.Enum("leave_type").
			Values("vacation", "sick", "conference", "emergency", "other"),

		field.Time("start_date"),

		field.Time("end_date"),

		field.Text("reason").
			Optional().
			Nillable(),

		field.Bool("is_approved").
			Default(false).
			Comment("Only approved leave blocks bookings"),
	}
}

func (DoctorLeave) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("doctor", Doctor.Type).
			Ref("leaves").
			Unique().
			Required().
			Field("doctor_id"),
	}
}

func (DoctorLeave) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doctor_id", "start_date"),
	}
}
