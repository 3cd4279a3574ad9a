package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is a booked visit between a patient and a doctor.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.String("appointment_id").
			Unique().
			NotEmpty().
			MaxLen(20).
			Immutable().
			Comment("Human-readable id, APT<year><month:02d><seq:04d>, assigned once at create"),

		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctors.id"),

		field.UUID("service_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → services.id"),

		field.UUID("appointment_type_id", uuid.UUID{}).
			Comment("FK → appointment_types.id"),

		field.Time("start_time"),

		field.Int("duration_min").
			Positive(),

		field.Time("end_time").
			Comment("Derived as start_time + duration when not supplied by the caller"),

		field.Enum("status").
			Values("scheduled", "confirmed", "checked_in", "in_progress", "completed", "cancelled", "no_show", "rescheduled").
			Default("scheduled"),

		field.Enum("priority").
			Values("low", "normal", "high", "urgent").
			Default("normal"),

		field.Enum("consultation_type").
			Values("in_person", "virtual", "phone").
			Default("in_person"),

		field.Text("chief_complaint").
			Optional().
			Nillable().
			Comment("Primary reason for visit"),

		field.Text("symptoms").
			Optional().
			Nillable(),

		field.Text("notes").
			Optional().
			Nillable(),

		field.Bool("is_follow_up").Default(false),

		field.UUID("previous_appointment_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Self-FK → appointments.id for follow-ups"),

		field.UUID("booked_by_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → users.id"),

		field.Enum("booking_source").
			Values("online", "phone", "walk_in", "staff", "referral").
			Default("online"),

		field.Bool("is_confirmed").Default(false),

		field.Time("confirmed_at").
			Optional().
			Nillable(),

		field.Bool("reminder_sent").Default(false),

		field.Time("reminder_sent_at").
			Optional().
			Nillable(),

		field.Time("checked_in_at").
			Optional().
			Nillable(),

		field.UUID("checked_in_by_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → users.id"),

		field.Time("started_at").
			Optional().
			Nillable(),

		field.Time("completed_at").
			Optional().
			Nillable(),

		field.Int("actual_duration_min").
			Optional().
			Nillable(),

		field.Time("cancelled_at").
			Optional().
			Nillable(),

		field.UUID("cancelled_by_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → users.id"),

		field.Text("cancellation_reason").
			Optional().
			Nillable(),

		field.String("meeting_link").
			Optional().
			Nillable().
			MaxLen(500).
			Comment("Link for virtual consultations"),

		field.String("meeting_id").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("meeting_password").
			Optional().
			Nillable().
			MaxLen(50).
			Sensitive(),

		field.Int64("estimated_cost").
			Optional().
			Nillable().
			Comment("Estimated cost in KES cents"),
	}
}

func (Appointment) Edges() []ent.Edge {
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
		edge.To("appointment_type", AppointmentType.Type).
			Unique().
			Required().
			Field("appointment_type_id"),
		edge.To("follow_ups", Appointment.Type).
			From("previous_appointment").
			Unique().
			Field("previous_appointment_id"),
		edge.To("reschedules", AppointmentReschedule.Type),
		edge.To("appointment_notes", AppointmentNote.Type),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		// One booking per doctor per start time.
		index.Fields("doctor_id", "start_time").Unique(),
		index.Fields("appointment_id"),
		index.Fields("patient_id", "status"),
		index.Fields("doctor_id", "status", "start_time"),
		index.Fields("status", "reminder_sent", "start_time"),
	}
}
