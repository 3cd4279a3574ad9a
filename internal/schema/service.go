package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// ServiceCategory
// ---------------------------------------------------------------------------

type ServiceCategory struct {
	ent.Schema
}

func (ServiceCategory) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (ServiceCategory) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			NotEmpty().
			MaxLen(100),

		field.String("slug").
			Unique().
			NotEmpty().
			MaxLen(100),

		field.Text("description"),

		field.String("icon").
			MaxLen(50).
			Comment("Font Awesome icon class"),

		field.Bool("is_active").Default(true),

		field.Int("display_order").
			Default(0).
			NonNegative(),
	}
}

func (ServiceCategory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("services", Service.Type),
	}
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

type Service struct {
	ent.Schema
}

func (Service) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Service) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			MaxLen(200),

		field.String("slug").
			Unique().
			NotEmpty().
			MaxLen(200),

		field.UUID("category_id", uuid.UUID{}).
			Comment("FK → service_categories.id"),

		field.String("short_description").
			MaxLen(300),

		field.Text("detailed_description"),

		field.Int64("price").
			NonNegative().
			Comment("Price in KES cents"),

		field.Int("duration_min").
			Positive(),

		field.Text("preparation_instructions").
			Optional().
			Nillable().
			Comment("What the patient should do before the appointment"),

		field.Text("post_treatment_care").
			Optional().
			Nillable(),

		field.Text("contraindications").
			Optional().
			Nillable().
			Comment("When this service must not be performed"),

		field.Bool("is_consultation_required").Default(true),

		field.Bool("requires_referral").Default(false),

		field.Int("min_age").
			Optional().
			Nillable(),

		field.Int("max_age").
			Optional().
			Nillable(),

		field.Bool("is_active").Default(true),

		field.Bool("is_featured").Default(false),

		field.Bool("available_online").
			Default(false).
			Comment("Can be delivered via telemedicine"),

		field.String("meta_description").
			Optional().
			Nillable().
			MaxLen(160),

		field.String("image_key").
			Optional().
			Nillable().
			MaxLen(500).
			Comment("S3 key for the service image"),
	}
}

func (Service) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("category", ServiceCategory.Type).
			Ref("services").
			Unique().
			Required().
			Field("category_id"),
		edge.From("packages", ServicePackage.Type).
			Ref("services"),
	}
}

func (Service) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category_id"),
		index.Fields("is_active", "is_featured"),
		index.Fields("slug"),
	}
}

// ---------------------------------------------------------------------------
// ServiceDoctorSpecialty — junction: which doctors perform which services
// ---------------------------------------------------------------------------

type ServiceDoctorSpecialty struct {
	ent.Schema
}

func (ServiceDoctorSpecialty) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (ServiceDoctorSpecialty) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("service_id", uuid.UUID{}).
			Comment("FK → services.id"),

		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctors.id"),

		field.Enum("proficiency_level").
			Values("basic", "intermediate", "advanced", "expert").
			Default("basic"),

		field.Bool("is_preferred_provider").Default(false),
	}
}

func (ServiceDoctorSpecialty) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("service", Service.Type).
			Unique().
			Required().
			Field("service_id"),
		edge.To("doctor", Doctor.Type).
			Unique().
			Required().
			Field("doctor_id"),
	}
}

func (ServiceDoctorSpecialty) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("service_id", "doctor_id").Unique(),
		index.Fields("doctor_id"),
	}
}

// ---------------------------------------------------------------------------
// ServicePackage — bundled services sold at a discount
// ---------------------------------------------------------------------------

type ServicePackage struct {
	ent.Schema
}

func (ServicePackage) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (ServicePackage) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			MaxLen(200),

		field.String("slug").
			Unique().
			NotEmpty().
			MaxLen(200),

		field.Text("description"),

		field.Int64("original_price").
			NonNegative().
			Comment("Sum of individual service prices in KES cents"),

		field.Int64("package_price").
			NonNegative().
			Comment("Bundled price in KES cents"),

		field.Int("validity_days").
			Default(30).
			Positive(),

		field.Bool("is_active").Default(true),

		field.String("image_key").
			Optional().
			Nillable().
			MaxLen(500),
	}
}

func (ServicePackage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("services", Service.Type),
	}
}
