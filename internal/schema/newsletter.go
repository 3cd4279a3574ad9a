package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// NewsletterSubscriber
// ---------------------------------------------------------------------------

type NewsletterSubscriber struct {
	ent.Schema
}

func (NewsletterSubscriber) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
	}
}

func (NewsletterSubscriber) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Unique().
			NotEmpty().
			MaxLen(255),

		field.String("first_name").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("last_name").
			Optional().
			Nillable().
			MaxLen(100),

		field.Bool("is_active").Default(true),

		field.String("unsubscribe_token").
			Unique().
			Immutable().
			MaxLen(64).
			Comment("Random token for one-click unsubscribe links"),

		field.Time("subscribed_at").
			Immutable().
			Comment("Set once on first subscribe; re-subscribing only flips is_active"),

		field.Time("unsubscribed_at").
			Optional().
			Nillable(),
	}
}

func (NewsletterSubscriber) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("campaigns", NewsletterCampaign.Type).
			Ref("subscribers"),
	}
}

// ---------------------------------------------------------------------------
// Newsletter
// ---------------------------------------------------------------------------

type Newsletter struct {
	ent.Schema
}

func (Newsletter) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Newsletter) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			NotEmpty().
			MaxLen(200),

		field.String("subject").
			NotEmpty().
			MaxLen(200),

		field.Text("content_html"),

		field.Text("content_text"),

		field.Enum("status").
			Values("draft", "scheduled", "sent", "cancelled").
			Default("draft"),

		field.Time("scheduled_at").
			Optional().
			Nillable(),

		field.Time("sent_at").
			Optional().
			Nillable(),

		field.UUID("created_by_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → users.id"),
	}
}

func (Newsletter) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("campaigns", NewsletterCampaign.Type),
	}
}

func (Newsletter) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}

// ---------------------------------------------------------------------------
// NewsletterCampaign — one send run of a newsletter
// ---------------------------------------------------------------------------

type NewsletterCampaign struct {
	ent.Schema
}

func (NewsletterCampaign) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (NewsletterCampaign) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("newsletter_id", uuid.UUID{}).
			Comment("FK → newsletters.id"),

		field.Int("sent_count").
			Default(0).
			NonNegative(),

		field.Int("open_count").
			Default(0).
			NonNegative(),

		field.Int("click_count").
			Default(0).
			NonNegative(),

		field.Time("started_at").
			Optional().
			Nillable(),

		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (NewsletterCampaign) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("newsletter", Newsletter.Type).
			Ref("campaigns").
			Unique().
			Required().
			Field("newsletter_id"),
		edge.To("subscribers", NewsletterSubscriber.Type),
	}
}
