package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Specialization
// ---------------------------------------------------------------------------

type Specialization struct {
	ent.Schema
}

func (Specialization) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Specialization) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			NotEmpty().
			MaxLen(100),

		field.Text("description").
			Optional().
			Nillable(),
	}
}

func (Specialization) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("doctors", Doctor.Type).
			Ref("specializations"),
	}
}

// ---------------------------------------------------------------------------
// Doctor
// ---------------------------------------------------------------------------

// Doctor is the professional profile attached to a user account.
type Doctor struct {
	ent.Schema
}

func (Doctor) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Doctor) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id"),

		field.String("title").
			Default("Dr.").
			MaxLen(50),

		field.String("license_number").
			Unique().
			NotEmpty().
			MaxLen(50),

		field.Int("years_of_experience").
			NonNegative(),

		field.Text("biography"),

		field.Text("education").
			Comment("Educational background"),

		field.Text("certifications").
			Optional().
			Nillable(),

		field.Int64("consultation_fee").
			NonNegative().
			Comment("Consultation fee in KES cents"),

		field.Bool("is_available").Default(true),

		field.String("profile_image_key").
			Optional().
			Nillable().
			MaxLen(500).
			Comment("S3 key for the profile image"),

		field.String("twitter_url").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("linkedin_url").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("facebook_url").
			Optional().
			Nillable().
			MaxLen(255),

		field.Text("hospital_affiliations").
			Optional().
			Nillable(),

		field.Text("research_interests").
			Optional().
			Nillable(),

		field.Text("publications").
			Optional().
			Nillable(),
	}
}

func (Doctor) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("user", User.Type).
			Unique().
			Required().
			Field("user_id"),
		edge.To("specializations", Specialization.Type),
		edge.To("availability", DoctorAvailability.Type),
		edge.To("leaves", DoctorLeave.Type),
	}
}

func (Doctor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("is_available"),
	}
}
