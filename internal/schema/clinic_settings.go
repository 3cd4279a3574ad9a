package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// ClinicSettings — singleton: at most one row, enforced in the service layer
// ---------------------------------------------------------------------------

type ClinicSettings struct {
	ent.Schema
}

func (ClinicSettings) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (ClinicSettings) Fields() []ent.Field {
	return []ent.Field{
		// Clinic identity
		field.String("clinic_name").
			Default("DermaCare Clinic").
			MaxLen(200),

		field.String("tagline").
			Optional().
			Nillable().
			MaxLen(300),

		field.Text("description").
			Optional().
			Nillable(),

		field.String("logo_key").
			Optional().
			Nillable().
			MaxLen(500).
			Comment("S3 key for the clinic logo"),

		field.String("favicon_key").
			Optional().
			Nillable().
			MaxLen(500),

		// Contact
		field.String("phone").
			NotEmpty().
			MaxLen(20),

		field.String("email").
			NotEmpty().
			MaxLen(255),

		field.String("website").
			Optional().
			Nillable().
			MaxLen(255),

		// Address
		field.String("address_line_1").
			NotEmpty().
			MaxLen(200),

		field.String("address_line_2").
			Optional().
			Nillable().
			MaxLen(200),

		field.String("city").
			NotEmpty().
			MaxLen(100),

		field.String("state").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("postal_code").
			Optional().
			Nillable().
			MaxLen(20),

		field.String("country").
			Default("Kenya").
			MaxLen(100),

		// Social media
		field.String("facebook_url").Optional().Nillable().MaxLen(255),
		field.String("twitter_url").Optional().Nillable().MaxLen(255),
		field.String("instagram_url").Optional().Nillable().MaxLen(255),
		field.String("linkedin_url").Optional().Nillable().MaxLen(255),
		field.String("youtube_url").Optional().Nillable().MaxLen(255),

		field.String("timezone").
			Default("Africa/Nairobi").
			MaxLen(50),

		// Appointment policy
		field.Int("appointment_buffer_min").
			Default(15).
			NonNegative().
			Comment("Buffer between appointments in minutes"),

		field.Int("max_advance_booking_days").
			Default(60).
			Positive().
			Comment("How far ahead patients may book"),

		field.Int("min_advance_booking_hours").
			Default(24).
			NonNegative(),

		field.Int("cancellation_deadline_hours").
			Default(24).
			NonNegative().
			Comment("Hours before start_time until which cancellation is allowed"),

		// Notifications
		field.Bool("send_appointment_confirmations").Default(true),
		field.Bool("send_appointment_reminders").Default(true),

		field.Int("reminder_hours_before").
			Default(24).
			Positive(),

		field.Bool("send_follow_up_reminders").Default(true),

		// Financial
		field.String("currency").
			Default("KES").
			MaxLen(3),

		field.Int("tax_rate_percent").
			Default(0).
			Min(0).
			Max(100),

		// Emergency contact
		field.String("emergency_phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.String("emergency_email").
			Optional().
			Nillable().
			MaxLen(255),

		// System
		field.Bool("maintenance_mode").Default(false),

		field.Text("maintenance_message").
			Optional().
			Nillable(),
	}
}

func (ClinicSettings) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("business_hours", BusinessHours.Type),
	}
}

// ---------------------------------------------------------------------------
// BusinessHours — per-weekday opening window
// ---------------------------------------------------------------------------

type BusinessHours struct {
	ent.Schema
}

func (BusinessHours) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
	}
}

func (BusinessHours) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("settings_id", uuid.UUID{}).
			Comment("FK → clinic_settings.id"),

		field.Int8("day_of_week").
			Min(0).
			Max(6).
			Comment("0=Monday .. 6=Sunday"),

		field.Bool("is_open").Default(true),

		field.String("opening_time").
			Optional().
			Nillable().
			MaxLen(5).
			Comment(`Time of day, "15:04"`),

		field.String("closing_time").
			Optional().
			Nillable().
			MaxLen(5),

		field.Bool("lunch_break").Default(false),

		field.String("lunch_start").
			Optional().
			Nillable().
			MaxLen(5),

		field.String("lunch_end").
			Optional().
			Nillable().
			MaxLen(5),

		field.String("notes").
			Optional().
			Nillable().
			MaxLen(200),
	}
}

func (BusinessHours) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("settings", ClinicSettings.Type).
			Ref("business_hours").
			Unique().
			Required().
			Field("settings_id"),
	}
}

func (BusinessHours) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("settings_id", "day_of_week").Unique(),
	}
}

// ---------------------------------------------------------------------------
// Holiday
// ---------------------------------------------------------------------------

type Holiday struct {
	ent.Schema
}

func (Holiday) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Holiday) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			MaxLen(200),

		field.Time("date"),

		field.Bool("is_recurring").
			Default(false).
			Comment("Recurring annually (matched by month and day)"),

		field.Text("description").
			Optional().
			Nillable(),

		field.Bool("affects_appointments").Default(true),
	}
}

func (Holiday) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("date"),
	}
}
