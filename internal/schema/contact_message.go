package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ContactMessage stores messages submitted via the public contact form.
type ContactMessage struct {
	ent.Schema
}

func (ContactMessage) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (ContactMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			MaxLen(200),

		field.String("email").
			NotEmpty().
			MaxLen(255),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.String("subject").
			NotEmpty().
			MaxLen(200),

		field.Text("message"),

		field.Enum("status").
			Values("new", "read", "responded", "closed").
			Default("new"),

		field.UUID("assigned_to_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → users.id (staff member handling the message)"),
	}
}

func (ContactMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("assigned_to", User.Type).
			Unique().
			Field("assigned_to_id"),
		edge.To("responses", ContactResponse.Type),
	}
}

func (ContactMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}

// ---------------------------------------------------------------------------
// ContactResponse
// ---------------------------------------------------------------------------

type ContactResponse struct {
	ent.Schema
}

func (ContactResponse) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (ContactResponse) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("contact_message_id", uuid.UUID{}).
			Comment("FK → contact_messages.id"),

		field.Text("response"),

		field.UUID("responded_by_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → users.id"),

		field.Bool("is_sent").Default(false),

		field.Time("sent_at").
			Optional().
			Nillable(),
	}
}

func (ContactResponse) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("contact_message", ContactMessage.Type).
			Ref("responses").
			Unique().
			Required().
			Field("contact_message_id"),
	}
}

func (ContactResponse) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("contact_message_id"),
	}
}
