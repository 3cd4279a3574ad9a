package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// User is the login account behind every person in the system.
// The role decides which profile record (patient/doctor) hangs off it.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("user_type").
			Values("patient", "doctor", "admin", "staff").
			Default("patient"),

		field.String("first_name").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("last_name").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("email").
			Unique().
			NotEmpty().
			MaxLen(255),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20).
			Comment("E.164 formatted, validated via pkg/phone"),

		field.Time("date_of_birth").
			Optional().
			Nillable(),

		field.String("profile_picture_key").
			Optional().
			Nillable().
			MaxLen(500).
			Comment("S3 key for the profile picture"),

		field.String("password_hash").
			Optional().
			Nillable().
			Sensitive(),

		field.Bool("is_active").Default(true),

		field.Time("last_login_at").
			Optional().
			Nillable(),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
		index.Fields("user_type"),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("profile", UserProfile.Type).Unique(),
	}
}

// ---------------------------------------------------------------------------
// UserProfile — one-to-one with User
// ---------------------------------------------------------------------------

type UserProfile struct {
	ent.Schema
}

func (UserProfile) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (UserProfile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id"),

		field.Enum("gender").
			Values("male", "female", "other", "undisclosed").
			Optional().
			Nillable(),

		field.Text("address").
			Optional().
			Nillable(),

		field.String("city").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("emergency_contact_name").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("emergency_contact_phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.String("emergency_contact_relationship").
			Optional().
			Nillable().
			MaxLen(50),

		field.Text("medical_conditions").
			Optional().
			Nillable().
			Comment("Free-text list of existing medical conditions"),

		field.Text("allergies").
			Optional().
			Nillable(),

		field.Text("medications").
			Optional().
			Nillable().
			Comment("Current medications"),
	}
}

func (UserProfile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("profile").
			Unique().
			Required().
			Field("user_id"),
	}
}
