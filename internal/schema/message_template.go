package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// templateTypes is shared between EmailTemplate and SMSTemplate.
var templateTypes = []string{
	"appointment_confirmation",
	"appointment_reminder",
	"appointment_cancellation",
	"appointment_rescheduled",
	"welcome_new_patient",
	"follow_up_reminder",
	"birthday_wishes",
	"newsletter",
	"lab_results_ready",
	"payment_receipt",
	"custom",
}

// ---------------------------------------------------------------------------
// EmailTemplate
// ---------------------------------------------------------------------------

type EmailTemplate struct {
	ent.Schema
}

func (EmailTemplate) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (EmailTemplate) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			MaxLen(200),

		field.Enum("template_type").
			Values(templateTypes...),

		field.String("subject").
			NotEmpty().
			MaxLen(200),

		field.Text("body_html"),

		field.Text("body_text"),

		field.Bool("is_active").Default(true),

		field.Text("variables_help").
			Optional().
			Nillable().
			Comment("Available template variables, shown in the admin UI"),
	}
}

func (EmailTemplate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("template_type").Unique(),
	}
}

// ---------------------------------------------------------------------------
// SMSTemplate
// ---------------------------------------------------------------------------

type SMSTemplate struct {
	ent.Schema
}

func (SMSTemplate) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (SMSTemplate) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			MaxLen(200),

		field.Enum("template_type").
			Values(templateTypes...),

		field.String("body").
			NotEmpty().
			MaxLen(480).
			Comment("Up to 3 concatenated SMS segments"),

		field.Bool("is_active").Default(true),

		field.Text("variables_help").
			Optional().
			Nillable(),
	}
}

func (SMSTemplate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("template_type").Unique(),
	}
}
