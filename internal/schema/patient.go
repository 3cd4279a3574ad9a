package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Patient is the clinical record attached to a user account.
type Patient struct {
	ent.Schema
}

func (Patient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id"),

		field.String("patient_id").
			Unique().
			NotEmpty().
			MaxLen(20).
			Immutable().
			Comment("Human-readable id, PAT<year><seq:04d>, assigned once at create"),

		field.String("middle_name").
			Optional().
			Nillable().
			MaxLen(50),

		field.String("preferred_name").
			Optional().
			Nillable().
			MaxLen(50),

		field.String("occupation").
			Optional().
			Nillable().
			MaxLen(100),

		field.Enum("blood_type").
			Values("a_pos", "a_neg", "b_pos", "b_neg", "ab_pos", "ab_neg", "o_pos", "o_neg", "unknown").
			Default("unknown"),

		field.Enum("skin_type").
			Values("I", "II", "III", "IV", "V", "VI").
			Optional().
			Nillable().
			Comment("Fitzpatrick skin phototype"),

		field.Float("height_cm").
			Optional().
			Nillable(),

		field.Float("weight_kg").
			Optional().
			Nillable(),

		field.Enum("preferred_contact_method").
			Values("email", "sms", "call").
			Default("email"),

		field.String("preferred_language").
			Default("English").
			MaxLen(50),

		field.String("insurance_provider").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("insurance_number").
			Optional().
			Nillable().
			MaxLen(200).
			Sensitive().
			Comment("AES-256-GCM encrypted at rest (pkg/crypto)"),

		field.Time("insurance_valid_until").
			Optional().
			Nillable(),

		field.UUID("referred_by_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Self-FK → patients.id"),

		field.Enum("referral_source").
			Values("doctor", "friend", "online", "social_media", "advertisement", "other").
			Optional().
			Nillable(),

		field.Bool("is_active").Default(true),
	}
}

func (Patient) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("user", User.Type).
			Unique().
			Required().
			Field("user_id"),
		edge.To("referrals", Patient.Type).
			From("referred_by").
			Unique().
			Field("referred_by_id"),
		edge.To("medical_history", MedicalHistory.Type),
		edge.To("documents", PatientDocument.Type),
	}
}

func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id"),
		index.Fields("user_id"),
		index.Fields("is_active"),
	}
}
